// Package validation checks user-supplied paths and settings before a run.
package validation

import (
	"fmt"
	"os"
	"strings"
)

// IsValidDirectory checks that path is usable as a directory: either it
// does not exist yet, or it exists and is a directory.
func IsValidDirectory(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("directory path must not be empty")
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path %s is not a directory", path)
	}

	return nil
}

// IsValidExtensions checks that every extension is one of supported,
// compared case-insensitively with or without the leading dot.
func IsValidExtensions(extensions, supported []string) error {
	if len(extensions) == 0 {
		return fmt.Errorf("at least one extension is required")
	}

	known := make(map[string]bool, len(supported))
	for _, ext := range supported {
		known[normalizeExtension(ext)] = true
	}

	for _, ext := range extensions {
		if !known[normalizeExtension(ext)] {
			return fmt.Errorf("unsupported extension: %s. Supported extensions are %s",
				ext, strings.Join(supported, ", "))
		}
	}
	return nil
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
