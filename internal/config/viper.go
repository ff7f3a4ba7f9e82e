package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "RENEWAL"

// Config represents the complete application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Renewal  RenewalConfig  `mapstructure:"renewal" yaml:"renewal"`
	Workbook WorkbookConfig `mapstructure:"workbook" yaml:"workbook"`
	Export   ExportConfig   `mapstructure:"export" yaml:"export"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// RenewalConfig controls where renewal lists are read from and written to.
type RenewalConfig struct {
	InputDir   string   `mapstructure:"input_dir" yaml:"input_dir"`
	OutputDir  string   `mapstructure:"output_dir" yaml:"output_dir"`
	OutputName string   `mapstructure:"output_name" yaml:"output_name"`
	MaxSources int      `mapstructure:"max_sources" yaml:"max_sources"`
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
}

// WorkbookConfig controls the layout of the generated spreadsheet.
type WorkbookConfig struct {
	SheetName  string  `mapstructure:"sheet_name" yaml:"sheet_name"`
	TableName  string  `mapstructure:"table_name" yaml:"table_name"`
	TableStyle string  `mapstructure:"table_style" yaml:"table_style"`
	FontSize   float64 `mapstructure:"font_size" yaml:"font_size"`
}

// ExportConfig controls the optional CSV copy of the renewal list.
type ExportConfig struct {
	CSV       bool   `mapstructure:"csv" yaml:"csv"`
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml, then RENEWAL_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.renewal-list")
	v.AddConfigPath(".renewal-list")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the configuration used when no file or environment
// override is present.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// Defaults always decode.
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	home := HomeDir()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("renewal.input_dir", filepath.Join(home, "Downloads"))
	v.SetDefault("renewal.output_dir", filepath.Join(home, "Desktop"))
	v.SetDefault("renewal.output_name", "renewal_list")
	v.SetDefault("renewal.max_sources", 2)
	v.SetDefault("renewal.extensions", []string{".xlsx", ".xls"})

	v.SetDefault("workbook.sheet_name", "Sheet1")
	v.SetDefault("workbook.table_name", "Table1")
	v.SetDefault("workbook.table_style", "TableStyleLight1")
	v.SetDefault("workbook.font_size", 12)

	v.SetDefault("export.csv", false)
	v.SetDefault("export.delimiter", ",")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Renewal.MaxSources < 1 {
		return fmt.Errorf("renewal.max_sources must be at least 1, got: %d", config.Renewal.MaxSources)
	}

	if len(config.Renewal.Extensions) == 0 {
		return fmt.Errorf("renewal.extensions must list at least one extension")
	}

	if strings.TrimSpace(config.Renewal.OutputName) == "" {
		return fmt.Errorf("renewal.output_name must not be empty")
	}

	if config.Workbook.SheetName == "" || config.Workbook.TableName == "" {
		return fmt.Errorf("workbook.sheet_name and workbook.table_name must not be empty")
	}

	if config.Workbook.FontSize <= 0 {
		return fmt.Errorf("workbook.font_size must be positive, got: %v", config.Workbook.FontSize)
	}

	if len([]rune(config.Export.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.Export.Delimiter)
	}

	return nil
}

// ConfigureLoggingFromConfig builds a logrus logger from the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
