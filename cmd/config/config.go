// Package configcmd handles the command that shows the effective configuration
package configcmd

import (
	"fmt"
	"io"

	"webdevbernard/renewal-list/cmd/root"
	"webdevbernard/renewal-list/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration as YAML, after defaults, config.yaml and
RENEWAL_* environment variables have been applied.

Example:
  renewal-list config > ~/.renewal-list/config.yaml`,
	Run: configFunc,
}

func configFunc(cmd *cobra.Command, args []string) {
	cfg := root.AppConfig
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := Print(cmd.OutOrStdout(), cfg); err != nil {
		root.Log.Fatalf("Failed to print configuration: %v", err)
	}
}

// Print writes cfg to w as YAML.
func Print(w io.Writer, cfg *config.Config) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return encoder.Close()
}
