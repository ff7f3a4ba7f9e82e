// Package workbook reads renewal spreadsheets into rows and writes the
// formatted renewal list workbook.
package workbook

import (
	"fmt"
	"path/filepath"
	"strings"

	"webdevbernard/renewal-list/internal/logging"
	"webdevbernard/renewal-list/internal/models"
	"webdevbernard/renewal-list/internal/parsererror"
)

// Supported source extensions.
const (
	ExtXLSX = ".xlsx"
	ExtXLSM = ".xlsm"
	ExtXLS  = ".xls"
)

// SupportedExtensions lists every extension ReadSheet accepts.
var SupportedExtensions = []string{ExtXLSX, ExtXLSM, ExtXLS}

// Reader loads the first worksheet of a spreadsheet file.
type Reader struct {
	logger logging.Logger
}

// NewReader creates a Reader.
func NewReader(logger logging.Logger) *Reader {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Reader{logger: logger}
}

// ReadSheet reads the first worksheet of path. The first row is the header;
// every following non-blank row becomes a models.Row keyed by that header.
func (r *Reader) ReadSheet(path string) (*models.Sheet, error) {
	var (
		raw *rawSheet
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ExtXLSX, ExtXLSM:
		raw, err = r.readXLSX(path)
	case ExtXLS:
		raw, err = r.readXLS(path)
	default:
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: strings.Join(SupportedExtensions, ", "),
			Msg:            "unsupported spreadsheet extension",
		}
	}
	if err != nil {
		return nil, &parsererror.ReadError{FilePath: path, Err: err}
	}
	if len(raw.cells) == 0 {
		return nil, &parsererror.ReadError{FilePath: path, Err: parsererror.ErrNoHeader}
	}

	sheet := &models.Sheet{
		Path:   path,
		Header: headerNames(raw.cells[0]),
	}
	for _, cells := range raw.cells[1:] {
		row := make(models.Row, len(sheet.Header))
		for j, value := range cells {
			if value == nil || j >= len(sheet.Header) || sheet.Header[j] == "" {
				continue
			}
			row[sheet.Header[j]] = value
		}
		if row.IsBlank() {
			continue
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	r.logger.Debug("Read spreadsheet",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldSheet, Value: raw.name},
		logging.Field{Key: logging.FieldCount, Value: len(sheet.Rows)})

	return sheet, nil
}

// rawSheet holds typed cell values row by row, header row first.
type rawSheet struct {
	name  string
	cells [][]any
}

// headerNames turns the header cells into column names. Blank headers stay
// blank (their column is ignored); repeated names get a ".n" suffix so no
// column silently overwrites another.
func headerNames(cells []any) []string {
	names := make([]string, len(cells))
	seen := make(map[string]int, len(cells))
	for i, cell := range cells {
		name := strings.TrimSpace(models.ValueString(cell))
		if name == "" {
			continue
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		names[i] = name
	}
	// the header row may be shorter than later rows are wide
	for len(names) > 0 && names[len(names)-1] == "" {
		names = names[:len(names)-1]
	}
	return names
}
