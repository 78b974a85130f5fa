package cmd

import (
	"fmt"
	"os"

	"tally/internal/cli"
	"tally/internal/source"
	"tally/internal/store"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a ledger file into the local store",
	Long: `Import a .csv or .xlsx ledger into the local store, replacing the
built-in sample as the default dataset. Headers are matched by the usual
names (ID, Description, Event Phase, Type, Cost Type, Projected Cost);
use --mapping for spreadsheets with different column names.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var (
	importReplace bool
	importDryRun  bool
)

func init() {
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Overwrite an existing stored ledger")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Parse and report without writing the store")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	path := args[0]

	var mapping source.Mapping
	if flagMapping != "" {
		m, err := source.LoadMapping(flagMapping)
		if err != nil {
			return err
		}
		mapping = m
	}

	res, err := source.ParseLedgerFile(path, mapping)
	if err != nil {
		return err
	}

	fmt.Printf("\n  Parsed %s items from %s\n", cli.FormatNumber(int64(len(res.Items))), path)

	if len(res.Unrecognized) > 0 {
		fmt.Printf("  Ignored columns: %v\n", res.Unrecognized)
	}
	for _, re := range res.Errors {
		fmt.Fprintf(os.Stderr, "  %s\n", re.Error())
	}

	if importDryRun {
		fmt.Println("\n  Dry run; store not touched.")
		return nil
	}

	st, err := store.Open(loadOpts().DataDir)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	n, err := st.Count()
	if err != nil {
		return err
	}
	if n > 0 && !importReplace {
		return fmt.Errorf("store already holds %d items; pass --replace to overwrite", n)
	}

	if err := st.SaveItems(res.Items); err != nil {
		return err
	}

	fmt.Printf("\n  Stored %d items in %s\n", len(res.Items), st.Path())
	fmt.Println("  `tally` and `tally tui` now read this ledger.")

	return nil
}
