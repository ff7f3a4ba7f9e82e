package workbook

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"webdevbernard/renewal-list/internal/dateutils"
	"webdevbernard/renewal-list/internal/logging"
	"webdevbernard/renewal-list/internal/models"
	"webdevbernard/renewal-list/internal/parsererror"

	"github.com/xuri/excelize/v2"
)

const cmPerInch = 2.54

// Layout controls the presentation of the renewal list workbook.
type Layout struct {
	SheetName  string
	TableName  string
	TableStyle string
	FontSize   float64

	// NarrowColumns get NarrowWidth regardless of content.
	NarrowColumns []string
	NarrowWidth   float64
	// Padding is added to the content width of the named columns;
	// DefaultPadding applies to every other column.
	Padding        map[string]float64
	DefaultPadding float64
	// BorderedColumns get a thin border on every row, header included.
	BorderedColumns []string

	// Margins in centimetres.
	MarginTop, MarginBottom, MarginLeft, MarginRight float64
}

// DefaultLayout returns the layout of the printed renewal list.
func DefaultLayout() Layout {
	return Layout{
		SheetName:  "Sheet1",
		TableName:  "Table1",
		TableStyle: "TableStyleLight1",
		FontSize:   12,
		NarrowColumns: []string{
			models.ColumnPCode, models.ColumnCSRCode, models.ColumnPulled, models.ColumnDL,
		},
		NarrowWidth: 5,
		Padding: map[string]float64{
			models.ColumnCCode:     4,
			models.ColumnPolicyNum: 2.5,
		},
		DefaultPadding:  1,
		BorderedColumns: []string{models.ColumnPulled, models.ColumnDL},
		MarginTop:       1.91,
		MarginBottom:    1.91,
		MarginLeft:      1.78,
		MarginRight:     0.64,
	}
}

// Writer renders rows into a formatted workbook.
type Writer struct {
	layout Layout
	logger logging.Logger
}

// NewWriter creates a Writer for the given layout.
func NewWriter(layout Layout, logger logging.Logger) *Writer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Writer{layout: layout, logger: logger}
}

// Write builds the workbook in memory and saves it to path in one step, so a
// failure never leaves a half-written file behind.
func (w *Writer) Write(path string, columns []string, rows []models.Row) error {
	f, err := w.Build(columns, rows)
	if err != nil {
		return &parsererror.WriteError{FilePath: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			w.logger.WithError(cerr).Warn("Failed to close workbook")
		}
	}()

	if err := f.SaveAs(path); err != nil {
		return &parsererror.WriteError{FilePath: path, Err: err}
	}

	w.logger.Debug("Saved workbook",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

// Build renders the header and rows into a new workbook: values, a striped
// table over the whole range, column widths, borders and print setup.
func (w *Writer) Build(columns []string, rows []models.Row) (*excelize.File, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("no columns to write")
	}

	f := excelize.NewFile()
	sheet := w.layout.SheetName
	if sheet == "" {
		sheet = "Sheet1"
	}
	if defaultSheet := f.GetSheetName(0); defaultSheet != sheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	steps := []func(*excelize.File, string, []string, []models.Row) error{
		w.writeValues,
		w.applyStyles,
		w.addTable,
		w.setColumnWidths,
		w.setupPrint,
	}
	for _, step := range steps {
		if err := step(f, sheet, columns, rows); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return f, nil
}

func (w *Writer) writeValues(f *excelize.File, sheet string, columns []string, rows []models.Row) error {
	for j, col := range columns {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, col); err != nil {
			return err
		}
	}

	for i, row := range rows {
		for j, col := range columns {
			value := row.Get(col)
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

type cellStyles struct {
	plain, bordered, date, borderedDate int
}

func (w *Writer) newStyles(f *excelize.File) (cellStyles, error) {
	font := &excelize.Font{Size: w.layout.FontSize}
	align := &excelize.Alignment{Horizontal: "left"}
	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	dateFmt := dateutils.DisplayNumberFormat

	var (
		s   cellStyles
		err error
	)
	if s.plain, err = f.NewStyle(&excelize.Style{Font: font, Alignment: align}); err != nil {
		return s, err
	}
	if s.bordered, err = f.NewStyle(&excelize.Style{Font: font, Alignment: align, Border: thin}); err != nil {
		return s, err
	}
	if s.date, err = f.NewStyle(&excelize.Style{Font: font, Alignment: align, CustomNumFmt: &dateFmt}); err != nil {
		return s, err
	}
	if s.borderedDate, err = f.NewStyle(&excelize.Style{Font: font, Alignment: align, Border: thin, CustomNumFmt: &dateFmt}); err != nil {
		return s, err
	}
	return s, nil
}

func (w *Writer) applyStyles(f *excelize.File, sheet string, columns []string, rows []models.Row) error {
	styles, err := w.newStyles(f)
	if err != nil {
		return err
	}
	lastRow := len(rows) + 1

	topLeft, bottomRight, err := rangeCorners(len(columns), lastRow)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, topLeft, bottomRight, styles.plain); err != nil {
		return err
	}

	bordered := make(map[string]bool, len(w.layout.BorderedColumns))
	for _, col := range w.layout.BorderedColumns {
		bordered[col] = true
	}

	for j, col := range columns {
		if !bordered[col] {
			continue
		}
		top, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		bottom, err := excelize.CoordinatesToCellName(j+1, lastRow)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, top, bottom, styles.bordered); err != nil {
			return err
		}
	}

	for i, row := range rows {
		for j, col := range columns {
			if _, isDate := row.Get(col).(time.Time); !isDate {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			style := styles.date
			if bordered[col] {
				style = styles.borderedDate
			}
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Writer) addTable(f *excelize.File, sheet string, columns []string, rows []models.Row) error {
	topLeft, bottomRight, err := rangeCorners(len(columns), len(rows)+1)
	if err != nil {
		return err
	}
	showRowStripes := true
	return f.AddTable(sheet, &excelize.Table{
		Range:             topLeft + ":" + bottomRight,
		Name:              w.layout.TableName,
		StyleName:         w.layout.TableStyle,
		ShowRowStripes:    &showRowStripes,
		ShowColumnStripes: false,
	})
}

// ColumnWidths computes the display width of every column: the longest of
// the header and each non-empty cell's display text, then the narrow,
// padded or default adjustment of the layout.
func (w *Writer) ColumnWidths(columns []string, rows []models.Row) []float64 {
	narrow := make(map[string]bool, len(w.layout.NarrowColumns))
	for _, col := range w.layout.NarrowColumns {
		narrow[col] = true
	}

	widths := make([]float64, len(columns))
	for j, col := range columns {
		if narrow[col] {
			widths[j] = w.layout.NarrowWidth
			continue
		}
		maxLen := utf8.RuneCountInString(col)
		for _, row := range rows {
			value := row.Get(col)
			if models.IsEmpty(value) {
				continue
			}
			if n := utf8.RuneCountInString(models.DisplayString(value)); n > maxLen {
				maxLen = n
			}
		}
		padding, ok := w.layout.Padding[col]
		if !ok {
			padding = w.layout.DefaultPadding
		}
		widths[j] = float64(maxLen) + padding
	}
	return widths
}

func (w *Writer) setColumnWidths(f *excelize.File, sheet string, columns []string, rows []models.Row) error {
	for j, width := range w.ColumnWidths(columns, rows) {
		name, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) setupPrint(f *excelize.File, sheet string, _ []string, _ []models.Row) error {
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Titles",
		RefersTo: PrintTitlesRef(sheet),
		Scope:    sheet,
	}); err != nil {
		return err
	}

	fitToWidth, fitToHeight := 1, 0
	if err := f.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		FitToWidth:  &fitToWidth,
		FitToHeight: &fitToHeight,
	}); err != nil {
		return err
	}

	fitToPage := true
	if err := f.SetSheetProps(sheet, &excelize.SheetPropsOptions{FitToPage: &fitToPage}); err != nil {
		return err
	}

	top := w.layout.MarginTop / cmPerInch
	bottom := w.layout.MarginBottom / cmPerInch
	left := w.layout.MarginLeft / cmPerInch
	right := w.layout.MarginRight / cmPerInch
	return f.SetPageMargins(sheet, &excelize.PageLayoutMarginsOptions{
		Top:    &top,
		Bottom: &bottom,
		Left:   &left,
		Right:  &right,
	})
}

// PrintTitlesRef is the reference that repeats the header row on every page.
func PrintTitlesRef(sheet string) string {
	return fmt.Sprintf("'%s'!$1:$1", strings.ReplaceAll(sheet, "'", "''"))
}

func rangeCorners(cols, rows int) (string, string, error) {
	topLeft, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return "", "", err
	}
	bottomRight, err := excelize.CoordinatesToCellName(cols, rows)
	if err != nil {
		return "", "", err
	}
	return topLeft, bottomRight, nil
}
