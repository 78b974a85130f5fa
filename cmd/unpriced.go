package cmd

import (
	"fmt"

	"tally/internal/cli"
	"tally/internal/pipeline"

	"github.com/spf13/cobra"
)

var unpricedCmd = &cobra.Command{
	Use:   "unpriced",
	Short: "Items still waiting on a quote",
	RunE:  runUnpriced,
}

func init() {
	rootCmd.AddCommand(unpricedCmd)
}

func runUnpriced(_ *cobra.Command, _ []string) error {
	res, err := loadItems()
	if err != nil {
		return err
	}
	if len(res.Items) == 0 {
		fmt.Println("\n  Ledger is empty.")
		return nil
	}

	visible, _ := applyFilter(res.Items)
	metrics := pipeline.Aggregate(visible)

	if len(metrics.UnpricedItems) == 0 {
		fmt.Println("\n  Every item has a confirmed quote.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("UNPRICED  %d items", len(metrics.UnpricedItems))))
	fmt.Println()

	rows := make([][]string, 0, len(metrics.UnpricedItems))
	for _, it := range metrics.UnpricedItems {
		rows = append(rows, []string{
			it.ID,
			cli.Truncate(it.Description, 40),
			cli.Truncate(it.Event, 18),
			it.Type,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Description", "Phase", "Type"},
		Rows:    rows,
	}))

	fmt.Println("\n  These rows export with a QUOTE NEEDED note.")

	return nil
}
