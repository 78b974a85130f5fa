package cmd

import (
	"fmt"

	"tally/internal/cli"

	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Line item table",
	RunE:  runItems,
}

var itemsLimit int

func init() {
	itemsCmd.Flags().IntVarP(&itemsLimit, "limit", "n", 0, "Show at most this many items (0 shows all)")
	rootCmd.AddCommand(itemsCmd)
}

func runItems(_ *cobra.Command, _ []string) error {
	res, err := loadItems()
	if err != nil {
		return err
	}
	if len(res.Items) == 0 {
		fmt.Println("\n  Ledger is empty.")
		return nil
	}

	visible, f := applyFilter(res.Items)
	if len(visible) == 0 {
		fmt.Println("\n  No items match the filter.")
		return nil
	}

	shown := visible
	if itemsLimit > 0 && len(shown) > itemsLimit {
		shown = shown[:itemsLimit]
	}

	title := fmt.Sprintf("ITEMS  %d of %d", len(shown), len(res.Items))
	if !f.IsAll() {
		title += fmt.Sprintf("  [%s / %s]", f.Type, f.Cost)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	rows := make([][]string, 0, len(shown))
	for _, it := range shown {
		box := "[ ]"
		if it.Done {
			box = "[x]"
		}
		rows = append(rows, []string{
			box,
			it.ID,
			cli.Truncate(it.Description, 34),
			cli.Truncate(it.Event, 16),
			it.Type,
			it.CostType,
			cli.FormatCost(it.Cost),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"", "ID", "Description", "Phase", "Type", "Cost Type", "Cost"},
		Rows:    rows,
	}))

	if itemsLimit > 0 && len(visible) > itemsLimit {
		fmt.Printf("\n  %d more hidden. Raise --limit to see them.\n", len(visible)-itemsLimit)
	}

	return nil
}
