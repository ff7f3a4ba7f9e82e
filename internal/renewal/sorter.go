// Package renewal builds the sorted renewal list: it picks the most recent
// source spreadsheets, merges and deduplicates their rows, sorts them by
// insurer, renewal date and name, and hands the grouped result to a writer.
package renewal

import (
	"fmt"
	"path/filepath"

	"webdevbernard/renewal-list/internal/common"
	"webdevbernard/renewal-list/internal/fileutils"
	"webdevbernard/renewal-list/internal/logging"
	"webdevbernard/renewal-list/internal/models"
)

// Defaults used when Options leave a field unset.
const (
	DefaultOutputName = "renewal_list"
	DefaultMaxSources = 2
	OutputExtension   = ".xlsx"
	CSVExtension      = ".csv"
)

// DefaultExtensions are the source spreadsheet extensions picked up by discovery.
var DefaultExtensions = []string{".xlsx", ".xls"}

// SheetReader loads one source spreadsheet.
type SheetReader interface {
	ReadSheet(path string) (*models.Sheet, error)
}

// SheetWriter saves the final rows under the given columns.
type SheetWriter interface {
	Write(path string, columns []string, rows []models.Row) error
}

// Options tune discovery, naming and the optional CSV export.
type Options struct {
	Extensions   []string
	MaxSources   int
	OutputName   string
	ExportCSV    bool
	CSVDelimiter rune
}

// Result summarizes one run. OutputPath is empty when no source was found.
type Result struct {
	Sources      []string
	OutputPath   string
	CSVPath      string
	RowsRead     int
	Duplicates   int
	RowsWritten  int
	InsurerCount int
}

// Sorter runs the renewal list pipeline.
type Sorter struct {
	reader  SheetReader
	writer  SheetWriter
	logger  logging.Logger
	options Options
}

// NewSorter creates a Sorter. Zero-valued options fall back to the defaults.
func NewSorter(reader SheetReader, writer SheetWriter, logger logging.Logger, options Options) *Sorter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if len(options.Extensions) == 0 {
		options.Extensions = DefaultExtensions
	}
	if options.MaxSources < 1 {
		options.MaxSources = DefaultMaxSources
	}
	if options.OutputName == "" {
		options.OutputName = DefaultOutputName
	}
	if options.CSVDelimiter == 0 {
		options.CSVDelimiter = common.DefaultDelimiter
	}
	return &Sorter{reader: reader, writer: writer, logger: logger, options: options}
}

// Options returns the effective options of the sorter.
func (s *Sorter) Options() Options {
	return s.options
}

// Run reads the newest sources in inputDir and writes the sorted renewal
// list into outputDir under a name that does not collide with an existing
// file. Having no source at all is not an error: a warning is logged and an
// empty Result returned.
func (s *Sorter) Run(inputDir, outputDir string) (Result, error) {
	var result Result

	sources, err := s.discover(inputDir)
	if err != nil {
		return result, err
	}
	if len(sources) == 0 {
		return result, nil
	}

	sheets := make([]*models.Sheet, 0, len(sources))
	for _, source := range sources {
		sheet, err := s.reader.ReadSheet(source.Path)
		if err != nil {
			return result, err
		}
		sheet.ModTime = source.ModTime
		sheets = append(sheets, sheet)
		result.Sources = append(result.Sources, source.Path)
	}

	merged := Merge(sheets, s.logger)
	result.RowsRead = len(merged)

	unique, dropped := Dedupe(merged)
	result.Duplicates = dropped
	if dropped > 0 {
		s.logger.Debug("Dropped rows with a repeated policy number",
			logging.Field{Key: logging.FieldDropped, Value: dropped})
	}

	grouped, separators := InsertSeparators(SortRows(unique), models.TargetColumns)
	rows := Project(grouped, models.TargetColumns)
	result.RowsWritten = len(unique)
	if len(unique) > 0 {
		result.InsurerCount = separators + 1
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return result, fmt.Errorf("failed to prepare output directory %s: %w", outputDir, err)
	}

	outputPath := fileutils.UniqueFilePath(outputDir, s.options.OutputName, OutputExtension)
	if err := s.writer.Write(outputPath, models.TargetColumns, rows); err != nil {
		return result, err
	}
	result.OutputPath = outputPath

	if s.options.ExportCSV {
		csvPath := fileutils.UniqueFilePath(outputDir, s.options.OutputName, CSVExtension)
		if err := common.WriteRecordsToCSV(common.RecordsFromRows(rows), csvPath, s.options.CSVDelimiter, s.logger); err != nil {
			return result, fmt.Errorf("failed to export CSV: %w", err)
		}
		result.CSVPath = csvPath
	}

	s.logger.Info("Renewal list written",
		logging.Field{Key: logging.FieldOutputFile, Value: result.OutputPath},
		logging.Field{Key: logging.FieldCount, Value: result.RowsWritten},
		logging.Field{Key: logging.FieldDropped, Value: result.Duplicates},
		logging.Field{Key: logging.FieldGroups, Value: result.InsurerCount})

	return result, nil
}

// discover returns the sources to merge, newest first.
func (s *Sorter) discover(inputDir string) ([]fileutils.FileInfo, error) {
	if !fileutils.DirectoryExists(inputDir) {
		s.logger.Warn("Input directory does not exist, nothing to sort",
			logging.Field{Key: logging.FieldInputDir, Value: inputDir})
		return nil, nil
	}

	files, err := fileutils.ListFilesWithExtensions(inputDir, s.options.Extensions)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", inputDir, err)
	}

	switch len(files) {
	case 0:
		s.logger.Warn("No spreadsheet files found",
			logging.Field{Key: logging.FieldInputDir, Value: inputDir})
		return nil, nil
	case 1:
		s.logger.Info("Only one spreadsheet found, using it",
			logging.Field{Key: logging.FieldFile, Value: filepath.Base(files[0].Path)})
		return files, nil
	}

	selected := fileutils.MostRecent(files, s.options.MaxSources)
	for _, f := range selected {
		s.logger.Debug("Selected source",
			logging.Field{Key: logging.FieldFile, Value: filepath.Base(f.Path)},
			logging.Field{Key: "modified", Value: f.ModTime})
	}
	return selected, nil
}
