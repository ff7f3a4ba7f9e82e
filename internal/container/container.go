// Package container provides dependency injection for the renewal-list
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"webdevbernard/renewal-list/internal/config"
	"webdevbernard/renewal-list/internal/logging"
	"webdevbernard/renewal-list/internal/renewal"
	"webdevbernard/renewal-list/internal/workbook"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; its fields are only reachable
// through getter methods.
type Container struct {
	logger logging.Logger
	config *config.Config
	reader *workbook.Reader
	writer *workbook.Writer
	sorter *renewal.Sorter
}

// NewContainer creates and wires all application dependencies.
//
// Parameters:
//   - cfg: Application configuration
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	reader := workbook.NewReader(logger)
	writer := workbook.NewWriter(LayoutFromConfig(cfg), logger)
	sorter := renewal.NewSorter(reader, writer, logger, OptionsFromConfig(cfg))

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldInputDir, Value: cfg.Renewal.InputDir},
		logging.Field{Key: logging.FieldOutputDir, Value: cfg.Renewal.OutputDir})

	return &Container{
		logger: logger,
		config: cfg,
		reader: reader,
		writer: writer,
		sorter: sorter,
	}, nil
}

// LayoutFromConfig applies the workbook settings on top of the default layout.
func LayoutFromConfig(cfg *config.Config) workbook.Layout {
	layout := workbook.DefaultLayout()
	if cfg.Workbook.SheetName != "" {
		layout.SheetName = cfg.Workbook.SheetName
	}
	if cfg.Workbook.TableName != "" {
		layout.TableName = cfg.Workbook.TableName
	}
	if cfg.Workbook.TableStyle != "" {
		layout.TableStyle = cfg.Workbook.TableStyle
	}
	if cfg.Workbook.FontSize > 0 {
		layout.FontSize = cfg.Workbook.FontSize
	}
	return layout
}

// OptionsFromConfig maps the renewal and export settings onto sorter options.
func OptionsFromConfig(cfg *config.Config) renewal.Options {
	opts := renewal.Options{
		Extensions: cfg.Renewal.Extensions,
		MaxSources: cfg.Renewal.MaxSources,
		OutputName: cfg.Renewal.OutputName,
		ExportCSV:  cfg.Export.CSV,
	}
	if runes := []rune(cfg.Export.Delimiter); len(runes) > 0 {
		opts.CSVDelimiter = runes[0]
	}
	return opts
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetReader returns the spreadsheet reader.
func (c *Container) GetReader() *workbook.Reader {
	return c.reader
}

// GetWriter returns the renewal list workbook writer.
func (c *Container) GetWriter() *workbook.Writer {
	return c.writer
}

// GetSorter returns the configured renewal list sorter.
func (c *Container) GetSorter() *renewal.Sorter {
	return c.sorter
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
