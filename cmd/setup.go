package cmd

import (
	"errors"
	"fmt"

	"tally/internal/config"
	"tally/internal/pipeline"
	"tally/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Setup still works with nothing imported; the count is just flavor.
	itemCount := 0
	src := "no ledger yet"
	if res, err := pipeline.Load(loadOpts()); err == nil {
		itemCount = len(res.Items)
		src = res.Source
	}

	if err := tui.RunSetup(itemCount, src); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled.")
			return nil
		}
		return err
	}

	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `tally` for a summary or `tally tui` for the dashboard.")
	return nil
}
