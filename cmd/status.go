package cmd

import (
	"fmt"

	"tally/internal/cli"
	"tally/internal/config"
	"tally/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show store and config status",
	Long: `Show where tally reads its data from: the item store, when it was
last imported, and which config file is in effect.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	st, err := store.Open(loadOpts().DataDir)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	count, err := st.Count()
	if err != nil {
		return err
	}

	imported := "never"
	if at, err := st.LastImportedAt(); err != nil {
		return err
	} else if !at.IsZero() {
		imported = humanize.Time(at)
	}

	cfgState := "defaults (no file)"
	if config.Exists() {
		cfgState = config.ConfigPath()
	}

	source := "built-in sample"
	if count > 0 {
		source = "imported ledger"
	}
	if flagLedger != "" {
		source = flagLedger + " (--ledger)"
	}

	fmt.Println(cli.RenderTitle("TALLY STATUS"))
	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Store",
		Headers: []string{"Field", "Value"},
		Rows: [][]string{
			{"Path", st.Path()},
			{"Items", cli.FormatNumber(int64(count))},
			{"Last import", imported},
			{"---", ""},
			{"Active source", source},
			{"Config", cfgState},
		},
		Widths: []int{14, 52},
	}))

	if count == 0 && flagLedger == "" {
		dim := lipgloss.NewStyle().Foreground(cli.ColorTextDim)
		fmt.Println(dim.Render("  Store is empty; commands fall back to the sample ledger."))
		fmt.Println(dim.Render("  Run `tally import <file>` to load yours."))
	}
	return nil
}
