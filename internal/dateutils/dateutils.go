// Package dateutils provides the date handling shared by the spreadsheet
// reader and the renewal sorter.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layout constants used throughout the application
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutISOTime   = "2006-01-02T15:04:05"
	DateLayoutFull      = "2006-01-02 15:04:05"
	MonthDayLayout      = "0102"
	DisplayNumberFormat = "dd-mmm"
)

// isoLayouts are the layouts Excel uses for cells stored with t="d".
var isoLayouts = []string{
	time.RFC3339Nano,
	DateLayoutISOTime,
	DateLayoutFull,
	DateLayoutISO,
}

// MonthDay formats t as a fixed-width MMDD sort token, e.g. "0105" for Jan 5.
func MonthDay(t time.Time) string {
	return t.Format(MonthDayLayout)
}

// ParseISODate parses the ISO 8601 text Excel stores for typed date cells.
func ParseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", s)
}

// Built-in number format ids that Excel renders as dates or times.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// IsDateNumFmt reports whether a built-in number format id is a date format.
func IsDateNumFmt(id int) bool {
	return builtInDateFormats[id]
}

var (
	quotedText   = regexp.MustCompile(`"[^"]*"`)
	bracketed    = regexp.MustCompile(`\[[^\]]*\]`)
	escapedChars = regexp.MustCompile(`\\.`)
	dateTokens   = regexp.MustCompile(`[dmyhs]`)
)

// IsDateFormatCode reports whether a custom number format code renders a
// date or time, e.g. "dd-mmm-yy" or "yyyy/mm/dd hh:mm".
func IsDateFormatCode(code string) bool {
	if code == "" {
		return false
	}
	// only the positive section decides
	if i := strings.Index(code, ";"); i >= 0 {
		code = code[:i]
	}
	code = quotedText.ReplaceAllString(code, "")
	code = bracketed.ReplaceAllString(code, "")
	code = escapedChars.ReplaceAllString(code, "")
	lower := strings.ToLower(code)
	if lower == "general" || lower == "@" {
		return false
	}
	return dateTokens.MatchString(lower)
}

// CleanDateString trims and collapses whitespace in a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	re := regexp.MustCompile(`\s+`)
	return re.ReplaceAllString(dateStr, " ")
}
