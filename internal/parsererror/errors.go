// Package parsererror defines the typed errors raised while reading and
// writing renewal spreadsheets.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoHeader is returned for a spreadsheet without a header row.
var ErrNoHeader = errors.New("spreadsheet has no header row")

// ReadError represents a failure to read a source spreadsheet
type ReadError struct {
	FilePath string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.FilePath, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError represents a failure to write the output spreadsheet
type WriteError struct {
	FilePath string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.FilePath, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file whose extension no reader supports.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// SchemaMismatchError describes a source whose header differs from the
// header of the first source. It is reported as a warning, never returned
// as a failure.
type SchemaMismatchError struct {
	FilePath string
	Expected []string
	Actual   []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("header of %s differs from the first file: expected [%s], got [%s]",
		e.FilePath, strings.Join(e.Expected, ", "), strings.Join(e.Actual, ", "))
}
