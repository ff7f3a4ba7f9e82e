package workbook

import (
	"github.com/extrame/xls"
)

// readXLS reads a legacy BIFF workbook. The format carries no reliable type
// information through this library, so every cell is read as its text.
func (r *Reader) readXLS(path string) (*rawSheet, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, err
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return &rawSheet{}, nil
	}

	out := &rawSheet{name: sheet.Name}
	header := sheet.Row(0)
	if header == nil {
		return out, nil
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			out.cells = append(out.cells, nil)
			continue
		}
		values := make([]any, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			if text := row.Col(j); text != "" {
				values[j] = text
			}
		}
		out.cells = append(out.cells, values)
	}
	return out, nil
}
