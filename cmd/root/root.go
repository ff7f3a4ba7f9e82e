// Package root contains the root command for the application
package root

import (
	"webdevbernard/renewal-list/internal/config"
	"webdevbernard/renewal-list/internal/container"
	"webdevbernard/renewal-list/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig is the configuration loaded before any command runs
	AppConfig *config.Config

	// AppContainer holds the wired application dependencies
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "renewal-list",
		Short: "A CLI tool to build a sorted, print-ready insurance renewal list.",
		Long: `renewal-list merges the renewal spreadsheets exported from the broker
management system, drops ambiguous policies, sorts the rest by insurer,
renewal date and client name, and writes a formatted workbook ready to print.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to renewal-list!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			AppConfig = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			c, err := container.NewContainerWithLogger(cfg, logging.NewLogrusAdapterFromLogger(Log))
			if err != nil {
				Log.Fatalf("Failed to initialize application: %v", err)
			}
			AppContainer = c
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.Warnf("Failed to close container: %v", err)
				}
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input directory (default from renewal.input_dir)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output directory (default from renewal.output_dir)")
}

// GetContainer returns the application container, or nil before PersistentPreRun.
func GetContainer() *container.Container {
	return AppContainer
}

// GetLogrusAdapter returns the shared logger behind the logging.Logger interface.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
