package workbook

import (
	"path/filepath"
	"testing"
	"time"

	"webdevbernard/renewal-list/internal/logging"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeFixture saves a workbook whose first sheet holds header and rows.
// time.Time values get Excel's default date format, as a user-typed date would.
func writeFixture(t *testing.T, dir, name string, header []string, rows ...[]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &headerCells))

	for i, row := range rows {
		for j, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func newTestReader() (*Reader, *logging.MockLogger) {
	logger := logging.NewMockLogger()
	return NewReader(logger), logger
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
