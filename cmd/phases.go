package cmd

import (
	"fmt"

	"tally/internal/cli"
	"tally/internal/pipeline"

	"github.com/spf13/cobra"
)

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Cost breakdown by event phase",
	RunE:  runPhases,
}

func init() {
	rootCmd.AddCommand(phasesCmd)
}

func runPhases(_ *cobra.Command, _ []string) error {
	res, err := loadItems()
	if err != nil {
		return err
	}
	if len(res.Items) == 0 {
		fmt.Println("\n  Ledger is empty.")
		return nil
	}

	visible, _ := applyFilter(res.Items)
	phases := pipeline.PhaseBreakdown(visible)

	if len(phases) == 0 {
		fmt.Println("\n  No items match the filter.")
		return nil
	}

	maxTotal := 0.0
	sumTotal := 0.0
	for _, p := range phases {
		if p.Total > maxTotal {
			maxTotal = p.Total
		}
		sumTotal += p.Total
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PHASES"))
	fmt.Println()

	rows := make([][]string, 0, len(phases))
	for _, p := range phases {
		name := p.Phase
		if name == "" {
			name = "(no phase)"
		}
		share := ""
		if sumTotal > 0 && p.Total > 0 {
			share = fmt.Sprintf("%.1f%%", p.Total/sumTotal*100)
		}
		rows = append(rows, []string{
			cli.Truncate(name, 22),
			cli.FormatNumber(int64(p.Items)),
			cli.FormatNumber(int64(p.Unpriced)),
			cli.FormatNaira(p.Total),
			cli.RenderShareBar(p.Total, maxTotal, 16),
			share,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Phase", "Items", "Unpriced", "Confirmed", "", "Share"},
		Rows:    rows,
	}))

	return nil
}
