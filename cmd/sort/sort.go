// Package sortlist handles the renewal list sort command
package sortlist

import (
	"fmt"

	"webdevbernard/renewal-list/cmd/root"
	"webdevbernard/renewal-list/internal/config"
	"webdevbernard/renewal-list/internal/container"
	"webdevbernard/renewal-list/internal/fileutils"
	"webdevbernard/renewal-list/internal/logging"
	"webdevbernard/renewal-list/internal/renewal"
	"webdevbernard/renewal-list/internal/validation"
	"webdevbernard/renewal-list/internal/workbook"

	"github.com/spf13/cobra"
)

// ExportCSV requests a CSV copy of the renewal list next to the workbook.
var ExportCSV bool

// Cmd represents the sort command
var Cmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort the latest renewal spreadsheets into one renewal list",
	Long: `Sort the most recent renewal spreadsheets from the input directory into
one renewal list in the output directory.

Rows whose policy number appears more than once are dropped. The remaining
rows are sorted by insurer, renewal date and client name, with a blank row
between insurers, and saved as renewal_list.xlsx (or renewal_list (1).xlsx
when that name is taken).

Example:
  renewal-list sort -i ~/Downloads -o ~/Desktop --csv`,
	Run: sortFunc,
}

func init() {
	Cmd.Flags().BoolVar(&ExportCSV, "csv", false, "Also write the renewal list as CSV")
}

func sortFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
		return
	}

	cfg := appContainer.GetConfig()
	inputDir, outputDir := ResolveDirs(cfg, root.SharedFlags.Input, root.SharedFlags.Output)
	exportCSV := cfg.Export.CSV
	if cmd.Flags().Changed("csv") {
		exportCSV = ExportCSV
	}

	if err := Validate(cfg, outputDir); err != nil {
		logger.Fatalf("Invalid sort settings: %v", err)
		return
	}

	result, err := Run(appContainer, inputDir, outputDir, exportCSV)
	if err != nil {
		logger.Fatalf("Error sorting renewal list: %v", err)
		return
	}
	if result.OutputPath == "" {
		return
	}

	logger.Info(fmt.Sprintf("Renewal list saved to %s", result.OutputPath),
		logging.Field{Key: logging.FieldCount, Value: result.RowsWritten})
	if result.CSVPath != "" {
		logger.Info(fmt.Sprintf("CSV copy saved to %s", result.CSVPath))
	}
}

// ResolveDirs picks the flag values over the configured directories and
// expands a leading "~".
func ResolveDirs(cfg *config.Config, inputFlag, outputFlag string) (string, string) {
	inputDir, outputDir := cfg.Renewal.InputDir, cfg.Renewal.OutputDir
	if inputFlag != "" {
		inputDir = inputFlag
	}
	if outputFlag != "" {
		outputDir = outputFlag
	}
	return fileutils.ExpandHome(inputDir), fileutils.ExpandHome(outputDir)
}

// Validate checks the output directory and the configured source
// extensions before anything is read.
func Validate(cfg *config.Config, outputDir string) error {
	if err := validation.IsValidDirectory(outputDir); err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if err := validation.IsValidExtensions(cfg.Renewal.Extensions, workbook.SupportedExtensions); err != nil {
		return fmt.Errorf("renewal.extensions: %w", err)
	}
	return nil
}

// Run sorts the renewal list with the container's sorter. A sorter with the
// requested CSV setting is derived when it differs from the configured one.
func Run(c *container.Container, inputDir, outputDir string, exportCSV bool) (renewal.Result, error) {
	sorter := c.GetSorter()
	if opts := sorter.Options(); opts.ExportCSV != exportCSV {
		opts.ExportCSV = exportCSV
		sorter = renewal.NewSorter(c.GetReader(), c.GetWriter(), c.GetLogger(), opts)
	}

	c.GetLogger().Debug("Sorting renewal list",
		logging.Field{Key: logging.FieldInputDir, Value: inputDir},
		logging.Field{Key: logging.FieldOutputDir, Value: outputDir})

	return sorter.Run(inputDir, outputDir)
}
