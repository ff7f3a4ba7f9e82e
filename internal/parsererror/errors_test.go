package parsererror

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadError(t *testing.T) {
	err := &ReadError{FilePath: "/in/a.xlsx", Err: fs.ErrPermission}

	assert.Equal(t, "failed to read /in/a.xlsx: permission denied", err.Error())
	assert.True(t, errors.Is(err, fs.ErrPermission))

	wrapped := fmt.Errorf("merge: %w", err)
	var target *ReadError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "/in/a.xlsx", target.FilePath)
}

func TestWriteError(t *testing.T) {
	original := errors.New("disk full")
	err := &WriteError{FilePath: "/out/renewal_list.xlsx", Err: original}

	assert.Equal(t, "failed to write /out/renewal_list.xlsx: disk full", err.Error())
	assert.Equal(t, original, err.Unwrap())
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		FilePath:       "list.ods",
		ExpectedFormat: ".xlsx, .xls",
		Msg:            "unsupported extension",
	}

	assert.Equal(t, "invalid format in file 'list.ods': unsupported extension. Expected: .xlsx, .xls", err.Error())
}

func TestSchemaMismatchError(t *testing.T) {
	err := &SchemaMismatchError{
		FilePath: "b.xlsx",
		Expected: []string{"policynum", "name"},
		Actual:   []string{"name", "policynum"},
	}

	assert.Equal(t, "header of b.xlsx differs from the first file: expected [policynum, name], got [name, policynum]", err.Error())
}
