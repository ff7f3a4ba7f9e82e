// Package fileutils provides common file operations used throughout the application.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// FileInfo describes a discovered file.
type FileInfo struct {
	Path    string
	ModTime time.Time
}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// ListFilesWithExtensions returns the files directly inside dirPath whose
// extension matches one of extensions, case-insensitively. Office lock files
// ("~$name.xlsx") are skipped. Results keep the directory listing order.
func ListFilesWithExtensions(dirPath string, extensions []string) ([]FileInfo, error) {
	if !DirectoryExists(dirPath) {
		return nil, fmt.Errorf("directory does not exist: %s", dirPath)
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		wanted[ext] = true
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), "~$") {
			continue
		}
		if !wanted[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(dirPath, entry.Name()),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}

// MostRecent returns up to n files ordered by modification time, newest
// first. Files with equal times keep their relative input order.
func MostRecent(files []FileInfo, n int) []FileInfo {
	sorted := make([]FileInfo, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ModTime.After(sorted[j].ModTime)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

var (
	illegalChars   = regexp.MustCompile(`[\\/:*?"<>|]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	counterSuffix  = regexp.MustCompile(`\s*\(\d+\)$`)
)

// SafeFilename removes characters that are illegal in file names and
// collapses whitespace.
func SafeFilename(name string) string {
	name = illegalChars.ReplaceAllString(name, "")
	name = whitespaceRuns.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// UniqueFilePath returns a path in dir for name+ext that does not exist yet.
// The name is sanitized and stripped of a trailing " (n)"; on collision
// " (1)", " (2)", ... is appended until a free path is found.
func UniqueFilePath(dir, name, ext string) string {
	base := counterSuffix.ReplaceAllString(SafeFilename(name), "")

	candidate := filepath.Join(dir, base+ext)
	for counter := 1; pathExists(candidate); counter++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, counter, ext))
	}
	return candidate
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
