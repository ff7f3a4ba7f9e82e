package renewal

import (
	"sort"
	"strings"
	"time"

	"webdevbernard/renewal-list/internal/dateutils"
	"webdevbernard/renewal-list/internal/logging"
	"webdevbernard/renewal-list/internal/models"
	"webdevbernard/renewal-list/internal/parsererror"
)

// Merge concatenates the rows of every sheet in order. Each sheet's rows
// are already keyed by its own header. A header that differs from the first
// sheet's is logged as a warning and the merge continues.
func Merge(sheets []*models.Sheet, logger logging.Logger) []models.Row {
	if len(sheets) == 0 {
		return nil
	}

	var rows []models.Row
	reference := sheets[0].Header
	for i, sheet := range sheets {
		if i > 0 && !models.SameHeader(reference, sheet.Header) {
			mismatch := &parsererror.SchemaMismatchError{
				FilePath: sheet.Path,
				Expected: reference,
				Actual:   sheet.Header,
			}
			logger.WithError(mismatch).Warn("Source headers differ, merging by column name",
				logging.Field{Key: logging.FieldFile, Value: sheet.Path})
		}
		rows = append(rows, sheet.Rows...)
	}
	return rows
}

// Dedupe keeps only the rows whose policy key occurs exactly once. When a
// key repeats, every row carrying it is dropped; an empty key counts as a
// key like any other. Row order is preserved.
func Dedupe(rows []models.Row) (kept []models.Row, dropped int) {
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.String(models.ColumnPolicyNum)]++
	}

	kept = make([]models.Row, 0, len(rows))
	for _, row := range rows {
		if counts[row.String(models.ColumnPolicyNum)] == 1 {
			kept = append(kept, row)
		}
	}
	return kept, len(rows) - len(kept)
}

// SortToken is the renewal component of the sort key. Empty values become
// models.EmptyRenewalToken, dates become MMDD, and anything else sorts by
// its text as typed.
func SortToken(v any) string {
	if models.IsEmpty(v) {
		return models.EmptyRenewalToken
	}
	if t, ok := v.(time.Time); ok {
		return dateutils.MonthDay(t)
	}
	return models.ValueString(v)
}

// SortKey is the composite ordering key of a row.
type SortKey struct {
	Insurer string
	Renewal string
	Name    string
}

// Less orders keys component by component with byte-wise comparison.
func (k SortKey) Less(other SortKey) bool {
	if k.Insurer != other.Insurer {
		return k.Insurer < other.Insurer
	}
	if k.Renewal != other.Renewal {
		return k.Renewal < other.Renewal
	}
	return k.Name < other.Name
}

// KeyOf derives the sort key of a row: lower-cased insurer, renewal token
// and lower-cased name.
func KeyOf(row models.Row) SortKey {
	return SortKey{
		Insurer: strings.ToLower(row.String(models.ColumnInsurer)),
		Renewal: SortToken(row.Get(models.ColumnRenewal)),
		Name:    strings.ToLower(row.String(models.ColumnName)),
	}
}

// SortRows returns the rows ordered by KeyOf. Rows with equal keys keep
// their input order.
func SortRows(rows []models.Row) []models.Row {
	keys := make([]SortKey, len(rows))
	idx := make([]int, len(rows))
	for i, row := range rows {
		keys[i] = KeyOf(row)
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]].Less(keys[idx[b]])
	})

	sorted := make([]models.Row, len(rows))
	for i, j := range idx {
		sorted[i] = rows[j]
	}
	return sorted
}

// InsertSeparators returns rows with a blank row before every row whose
// insurer text differs from the previous row's. The comparison is
// case-sensitive. The second result is the number of separators inserted.
func InsertSeparators(rows []models.Row, columns []string) ([]models.Row, int) {
	out := make([]models.Row, 0, len(rows)*2)
	separators := 0
	for i, row := range rows {
		if i > 0 && row.String(models.ColumnInsurer) != rows[i-1].String(models.ColumnInsurer) {
			out = append(out, models.BlankRow(columns))
			separators++
		}
		out = append(out, row)
	}
	return out, separators
}

// Project maps every row onto columns. Missing columns become nil and
// extra columns are dropped.
func Project(rows []models.Row, columns []string) []models.Row {
	out := make([]models.Row, len(rows))
	for i, row := range rows {
		out[i] = row.Project(columns)
	}
	return out
}
