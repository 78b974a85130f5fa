package cmd

import (
	"fmt"
	"os"

	"tally/internal/cli"
	"tally/internal/config"
	"tally/internal/model"
	"tally/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagLedger  string
	flagMapping string
	flagType    string
	flagCost    string
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Procurement ledger CLI",
	Long:  "Track an event procurement budget: confirmed totals, unpriced items, and the costliest phases.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagLedger, "ledger", "l", "", "Ledger file (.csv or .xlsx) instead of the stored ledger")
	rootCmd.PersistentFlags().StringVarP(&flagMapping, "mapping", "m", "", "YAML column mapping for ledger file headers")
	rootCmd.PersistentFlags().StringVarP(&flagType, "type", "t", pipeline.FilterAll, "Filter by item type")
	rootCmd.PersistentFlags().StringVarP(&flagCost, "cost", "c", pipeline.FilterAll, "Filter by cost status (Priced or Unpriced)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Ledger store directory")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadOpts resolves the ledger source from flags and config.
func loadOpts() pipeline.LoadOptions {
	dataDir := flagDataDir
	if dataDir == "" {
		if cfg, err := config.Load(); err == nil {
			dataDir = cfg.General.DataDir
		}
	}
	return pipeline.LoadOptions{
		LedgerPath:  flagLedger,
		MappingPath: flagMapping,
		DataDir:     dataDir,
	}
}

// loadItems is the shared loading path used by all commands.
func loadItems() (*pipeline.LoadResult, error) {
	res, err := pipeline.Load(loadOpts())
	if err != nil {
		return nil, err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loaded %s items from %s\n",
			cli.FormatNumber(int64(len(res.Items))), res.Source)
		for _, re := range res.RowErrors {
			fmt.Fprintf(os.Stderr, "  %s\n", re.Error())
		}
	}

	return res, nil
}

// applyFilter narrows items the way the dashboard dropdowns do.
func applyFilter(items []model.LineItem) ([]model.LineItem, pipeline.Filter) {
	f := pipeline.Filter{Type: flagType, Cost: flagCost}
	if f.Type == "" {
		f.Type = pipeline.FilterAll
	}
	if f.Cost == "" {
		f.Cost = pipeline.FilterAll
	}
	return f.Apply(items), f
}
