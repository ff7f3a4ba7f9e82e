package workbook

import (
	"strconv"
	"strings"

	"webdevbernard/renewal-list/internal/dateutils"

	"github.com/xuri/excelize/v2"
)

func (r *Reader) readXLSX(path string) (*rawSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.logger.WithError(cerr).Warn("Failed to close workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &rawSheet{}, nil
	}
	sheet := sheets[0]

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	cv := &cellDecoder{f: f, sheet: sheet, date1904: date1904, dateStyles: map[int]bool{}}
	out := &rawSheet{name: sheet, cells: make([][]any, 0, len(rows))}
	for i, row := range rows {
		values := make([]any, len(row))
		for j, raw := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			values[j] = cv.decode(cell, raw)
		}
		out.cells = append(out.cells, values)
	}
	return out, nil
}

// cellDecoder turns raw cell text into a typed value using the cell's type
// and number format.
type cellDecoder struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

func (d *cellDecoder) decode(cell, raw string) any {
	if raw == "" {
		return nil
	}

	typ, err := d.f.GetCellType(d.sheet, cell)
	if err != nil {
		return raw
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return raw
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeDate:
		if t, err := dateutils.ParseISODate(raw); err == nil {
			return t
		}
		return raw
	}

	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	if d.isDateCell(cell) {
		if t, err := excelize.ExcelDateToTime(num, d.date1904); err == nil {
			return t
		}
	}
	return num
}

func (d *cellDecoder) isDateCell(cell string) bool {
	styleID, err := d.f.GetCellStyle(d.sheet, cell)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := d.dateStyles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := d.f.GetStyle(styleID); err == nil && style != nil {
		isDate = dateutils.IsDateNumFmt(style.NumFmt) ||
			(style.CustomNumFmt != nil && dateutils.IsDateFormatCode(*style.CustomNumFmt))
	}
	d.dateStyles[styleID] = isDate
	return isDate
}
