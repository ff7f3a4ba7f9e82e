package models

import (
	"strconv"
	"strings"
	"time"
)

// Layouts used when a cell value is turned into text.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	// DisplayLayout matches the dd-mmm number format of the output workbook.
	DisplayLayout = "02-Jan"
)

// Row maps a column name to a cell value. A value is nil (empty cell),
// string, float64, bool or time.Time.
type Row map[string]any

// Get returns the value stored under column, or nil when absent.
func (r Row) Get(column string) any {
	if r == nil {
		return nil
	}
	return r[column]
}

// String returns the text form of the value stored under column.
func (r Row) String(column string) string {
	return ValueString(r.Get(column))
}

// Project returns a new row holding exactly the given columns. Columns the
// receiver lacks are nil in the result.
func (r Row) Project(columns []string) Row {
	out := make(Row, len(columns))
	for _, c := range columns {
		out[c] = r.Get(c)
	}
	return out
}

// IsBlank reports whether every value in the row is empty.
func (r Row) IsBlank() bool {
	for _, v := range r {
		if !IsEmpty(v) {
			return false
		}
	}
	return true
}

// BlankRow returns a row with every column set to nil.
func BlankRow(columns []string) Row {
	out := make(Row, len(columns))
	for _, c := range columns {
		out[c] = nil
	}
	return out
}

// IsEmpty reports whether v is nil or a whitespace-only string.
func IsEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	default:
		return false
	}
}

// ValueString is the plain text form of a cell value.
func ValueString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 {
			return val.Format(DateLayout)
		}
		return val.Format(DateTimeLayout)
	default:
		return ""
	}
}

// DisplayString is the text a reader sees in the output workbook. Dates are
// shown as dd-mmm; everything else as its plain text form.
func DisplayString(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format(DisplayLayout)
	}
	return ValueString(v)
}
