package workbook

import (
	"errors"
	"path/filepath"
	"testing"

	"webdevbernard/renewal-list/internal/logging"
	"webdevbernard/renewal-list/internal/models"
	"webdevbernard/renewal-list/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRows() []models.Row {
	return []models.Row{
		{
			models.ColumnPolicyNum: "POL-000123",
			models.ColumnCCode:     "SMITHJ1",
			models.ColumnName:      "John Smith",
			models.ColumnPCode:     "P1",
			models.ColumnInsurer:   "Acme",
			models.ColumnRenewal:   date(2025, 1, 5),
		},
		models.BlankRow(models.TargetColumns),
		{
			models.ColumnPolicyNum: "B2",
			models.ColumnName:      "Ann",
			models.ColumnInsurer:   "Beta",
			models.ColumnRenewal:   "TBD",
			models.ColumnPulled:    "x",
		},
	}
}

func TestWriter_ColumnWidths(t *testing.T) {
	w := NewWriter(DefaultLayout(), logging.NewMockLogger())

	widths := w.ColumnWidths(models.TargetColumns, sampleRows())
	require.Len(t, widths, len(models.TargetColumns))

	want := map[string]float64{
		models.ColumnPolicyNum: 10 + 2.5, // "POL-000123"
		models.ColumnCCode:     7 + 4,    // "SMITHJ1"
		models.ColumnName:      10 + 1,   // "John Smith"
		models.ColumnPCode:     5,
		models.ColumnCSRCode:   5,
		models.ColumnInsurer:   7 + 1, // header is longer than the values
		models.ColumnBusCode:   7 + 1,
		models.ColumnRenewal:   7 + 1, // "renewal" beats "05-Jan" and "TBD"
		models.ColumnPulled:    5,
		models.ColumnDL:        5,
	}
	for i, col := range models.TargetColumns {
		assert.Equal(t, want[col], widths[i], col)
	}
}

func TestWriter_Build(t *testing.T) {
	w := NewWriter(DefaultLayout(), logging.NewMockLogger())
	rows := sampleRows()

	f, err := w.Build(models.TargetColumns, rows)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Sheet1"}, f.GetSheetList())

	t.Run("header and values", func(t *testing.T) {
		got, err := f.GetRows("Sheet1")
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(got), 4)
		assert.Equal(t, models.TargetColumns, got[0])
		assert.Equal(t, "POL-000123", got[1][0])
		assert.Equal(t, "05-Jan", got[1][7])
		assert.Empty(t, filterNonEmpty(got[2]))
		assert.Equal(t, "Beta", got[3][5])
	})

	t.Run("table", func(t *testing.T) {
		tables, err := f.GetTables("Sheet1")
		require.NoError(t, err)
		require.Len(t, tables, 1)
		assert.Equal(t, "Table1", tables[0].Name)
		assert.Equal(t, "A1:J4", tables[0].Range)
		assert.Equal(t, "TableStyleLight1", tables[0].StyleName)
		require.NotNil(t, tables[0].ShowRowStripes)
		assert.True(t, *tables[0].ShowRowStripes)
		assert.False(t, tables[0].ShowColumnStripes)
	})

	t.Run("column widths", func(t *testing.T) {
		width, err := f.GetColWidth("Sheet1", "A")
		require.NoError(t, err)
		assert.InDelta(t, 12.5, width, 0.001)

		width, err = f.GetColWidth("Sheet1", "D")
		require.NoError(t, err)
		assert.InDelta(t, 5, width, 0.001)
	})

	t.Run("borders only on Pulled and D/L", func(t *testing.T) {
		for _, cell := range []string{"I1", "I4", "J1", "J3"} {
			style := cellStyle(t, f, cell)
			assert.Len(t, style.Border, 4, cell)
		}
		for _, cell := range []string{"A1", "H2", "F4"} {
			style := cellStyle(t, f, cell)
			assert.Empty(t, style.Border, cell)
		}
	})

	t.Run("font and alignment", func(t *testing.T) {
		style := cellStyle(t, f, "C2")
		require.NotNil(t, style.Font)
		assert.Equal(t, 12.0, style.Font.Size)
		require.NotNil(t, style.Alignment)
		assert.Equal(t, "left", style.Alignment.Horizontal)
	})

	t.Run("print setup", func(t *testing.T) {
		var titles *excelize.DefinedName
		for _, dn := range f.GetDefinedName() {
			if dn.Name == "_xlnm.Print_Titles" {
				dn := dn
				titles = &dn
			}
		}
		require.NotNil(t, titles)
		assert.Contains(t, titles.RefersTo, "$1:$1")

		layout, err := f.GetPageLayout("Sheet1")
		require.NoError(t, err)
		require.NotNil(t, layout.FitToWidth)
		assert.Equal(t, 1, *layout.FitToWidth)

		props, err := f.GetSheetProps("Sheet1")
		require.NoError(t, err)
		require.NotNil(t, props.FitToPage)
		assert.True(t, *props.FitToPage)

		margins, err := f.GetPageMargins("Sheet1")
		require.NoError(t, err)
		require.NotNil(t, margins.Top)
		assert.InDelta(t, 1.91/2.54, *margins.Top, 0.0001)
		assert.InDelta(t, 1.91/2.54, *margins.Bottom, 0.0001)
		assert.InDelta(t, 1.78/2.54, *margins.Left, 0.0001)
		assert.InDelta(t, 0.64/2.54, *margins.Right, 0.0001)
	})
}

func TestWriter_Build_HeaderOnly(t *testing.T) {
	w := NewWriter(DefaultLayout(), logging.NewMockLogger())

	f, err := w.Build(models.TargetColumns, nil)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	tables, err := f.GetTables("Sheet1")
	require.NoError(t, err)
	assert.Len(t, tables, 1)
}

func TestWriter_Build_NoColumns(t *testing.T) {
	w := NewWriter(DefaultLayout(), logging.NewMockLogger())
	_, err := w.Build(nil, nil)
	assert.Error(t, err)
}

func TestWriter_WriteAndReadBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "renewal_list.xlsx")

	w := NewWriter(DefaultLayout(), logging.NewMockLogger())
	require.NoError(t, w.Write(path, models.TargetColumns, sampleRows()))

	reader, _ := newTestReader()
	sheet, err := reader.ReadSheet(path)
	require.NoError(t, err)

	assert.Equal(t, models.TargetColumns, sheet.Header)
	require.Len(t, sheet.Rows, 2, "separator rows are blank and skipped on read")
	assert.Equal(t, date(2025, 1, 5), sheet.Rows[0].Get(models.ColumnRenewal))
	assert.Equal(t, "TBD", sheet.Rows[1].Get(models.ColumnRenewal))
}

func TestWriter_Write_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "renewal_list.xlsx")

	w := NewWriter(DefaultLayout(), logging.NewMockLogger())
	err := w.Write(path, models.TargetColumns, sampleRows())

	var writeErr *parsererror.WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, path, writeErr.FilePath)
}

func TestPrintTitlesRef(t *testing.T) {
	assert.Equal(t, "'Sheet1'!$1:$1", PrintTitlesRef("Sheet1"))
	assert.Equal(t, "'Bob''s list'!$1:$1", PrintTitlesRef("Bob's list"))
}

func cellStyle(t *testing.T, f *excelize.File, cell string) *excelize.Style {
	t.Helper()
	id, err := f.GetCellStyle("Sheet1", cell)
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	return style
}

func filterNonEmpty(cells []string) []string {
	var out []string
	for _, c := range cells {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
