// Package cmd implements the tally CLI commands.
package cmd

import (
	"fmt"

	"tally/internal/cli"
	"tally/internal/config"
	"tally/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DataDir != "" {
		fmt.Printf("    Data directory: %s\n", cfg.General.DataDir)
	} else {
		fmt.Printf("    Data directory: %s (default)\n", store.DefaultDir())
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:   %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Compact: %v\n", cfg.Appearance.Compact)
	fmt.Println()

	fmt.Println("  [Budget]")
	if cfg.Budget.Cap > 0 {
		fmt.Printf("    Cap: %s\n", cli.FormatNaira(cfg.Budget.Cap))
	} else {
		fmt.Println("    Cap: not set")
	}
	fmt.Println()

	fmt.Println("  [Export]")
	fmt.Printf("    Format:    %s\n", cfg.Export.Format)
	fmt.Printf("    Clipboard: %v\n", cfg.Export.Clipboard)
	fmt.Println()

	fmt.Println("  Run `tally setup` to reconfigure.")
	return nil
}
