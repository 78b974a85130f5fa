package cmd

import (
	"fmt"
	"strings"

	"tally/internal/config"
	"tally/internal/export"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as CSV, XLSX, or PDF",
	Long: `Export the ledger to a file. The CSV layout is eight fixed columns with
every field quoted; XLSX adds a styled workbook with a summary sheet; PDF
renders a printable report.

With --clipboard the CSV text goes to the system clipboard instead of a file.`,
	RunE: runExport,
}

var (
	exportFormat    string
	exportOutput    string
	exportClipboard bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format: csv, xlsx, or pdf (default from config)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path (default tally-<date>.<format>)")
	exportCmd.Flags().BoolVar(&exportClipboard, "clipboard", false, "Copy CSV to the clipboard instead of writing a file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	res, err := loadItems()
	if err != nil {
		return err
	}
	if len(res.Items) == 0 {
		fmt.Println("\n  Ledger is empty; nothing to export.")
		return nil
	}

	// Exports carry the full ledger; --type/--cost narrow it first when set.
	items, f := applyFilter(res.Items)

	cfg, _ := config.Load()
	format := strings.ToLower(exportFormat)
	if format == "" {
		format = cfg.Export.Format
	}

	if exportClipboard || (cfg.Export.Clipboard && format == config.FormatCSV && exportOutput == "") {
		if err := clipboard.WriteAll(export.CSV(items)); err != nil {
			return fmt.Errorf("clipboard copy failed: %w", err)
		}
		fmt.Printf("  Copied %d rows to the clipboard as CSV.\n", len(items))
		return nil
	}

	path := exportOutput
	if path == "" {
		path = export.DefaultFilename(format)
	}

	if err := export.WriteFile(path, format, items); err != nil {
		return err
	}

	scope := "full ledger"
	if !f.IsAll() {
		scope = fmt.Sprintf("%d filtered rows", len(items))
	}
	fmt.Printf("  Wrote %s (%s).\n", path, scope)

	return nil
}
