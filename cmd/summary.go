package cmd

import (
	"fmt"

	"tally/internal/cli"
	"tally/internal/config"
	"tally/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Budget summary with top cost groupings",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	res, err := loadItems()
	if err != nil {
		return err
	}

	if len(res.Items) == 0 {
		fmt.Println("\n  Ledger is empty.")
		fmt.Println("  Import one with `tally import <file>`, or point at a file with --ledger.")
		return nil
	}

	visible, f := applyFilter(res.Items)
	metrics := pipeline.Aggregate(visible)

	if len(visible) == 0 {
		fmt.Println("\n  No items match the filter.")
		return nil
	}

	title := "PROCUREMENT LEDGER"
	if !f.IsAll() {
		title = fmt.Sprintf("PROCUREMENT LEDGER  [%s / %s]", f.Type, f.Cost)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	done := 0
	rollups := 0
	for _, it := range visible {
		if it.Done {
			done++
		}
		if it.IsRollup() {
			rollups++
		}
	}

	rows := [][]string{
		{"Confirmed Budget", cli.FormatNaira(metrics.TotalConfirmed)},
		{"---"},
		{"Line Items", cli.FormatNumber(int64(len(visible)))},
		{"Completed", cli.FormatNumber(int64(done))},
		{"Unpriced", cli.FormatNumber(int64(len(metrics.UnpricedItems)))},
		{"Rollup Rows", cli.FormatNumber(int64(rollups))},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if cfg, err := config.Load(); err == nil && cfg.Budget.Cap > 0 {
		fmt.Println()
		fmt.Printf("  Cap  %s\n", cli.RenderBudgetBar(metrics.TotalConfirmed, cfg.Budget.Cap, 32))
	}

	if len(metrics.TopGroupings) > 0 {
		maxTotal := metrics.TopGroupings[0].Total
		topRows := make([][]string, 0, len(metrics.TopGroupings))
		for i, g := range metrics.TopGroupings {
			topRows = append(topRows, []string{
				fmt.Sprintf("#%d", i+1),
				g.Phase,
				cli.FormatNaira(g.Total),
				cli.RenderShareBar(g.Total, maxTotal, 18),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Top Cost Groupings",
			Headers: []string{"", "Phase", "Confirmed", ""},
			Rows:    topRows,
		}))
	}

	if n := len(metrics.UnpricedItems); n > 0 {
		fmt.Printf("\n  %d items still need quotes. Run `tally unpriced` to list them.\n", n)
	}

	return nil
}
