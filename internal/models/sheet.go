package models

import "time"

// Sheet is the content of one source spreadsheet: its header row and its
// data rows keyed by that header.
type Sheet struct {
	Path    string
	ModTime time.Time
	Header  []string
	Rows    []Row
}

// SameHeader reports whether two headers hold the same names in the same order.
func SameHeader(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
