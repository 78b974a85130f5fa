package cmd

import (
	"errors"
	"fmt"

	"tally/internal/store"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle an item's completed flag",
	Long: `Toggle the completed checkbox of one stored item. Only that item
changes; totals and groupings are unaffected. Works on the stored ledger,
not on --ledger files.`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

var doneUnset bool

func init() {
	doneCmd.Flags().BoolVar(&doneUnset, "unset", false, "Clear the flag instead of toggling")
	rootCmd.AddCommand(doneCmd)
}

func runDone(_ *cobra.Command, args []string) error {
	id := args[0]

	st, err := store.Open(loadOpts().DataDir)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if doneUnset {
		if err := st.SetDone(id, false); err != nil {
			return describeDoneErr(id, err)
		}
		fmt.Printf("  %s marked not done.\n", id)
		return nil
	}

	done, err := st.ToggleDone(id)
	if err != nil {
		return describeDoneErr(id, err)
	}

	if done {
		fmt.Printf("  %s marked done.\n", id)
	} else {
		fmt.Printf("  %s marked not done.\n", id)
	}
	return nil
}

func describeDoneErr(id string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no stored item %q; `tally items` lists IDs, `tally import` fills the store", id)
	}
	return err
}
