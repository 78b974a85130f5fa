package export

import (
	"fmt"
	"os"
	"time"

	"tally/internal/config"
	"tally/internal/model"
)

// DefaultFilename returns a dated export name like tally-20260824.csv.
func DefaultFilename(format string) string {
	return fmt.Sprintf("tally-%s.%s", time.Now().Format("20060102"), format)
}

// WriteFile renders the ledger in the given format and writes it to path.
func WriteFile(path, format string, items []model.LineItem) error {
	var data []byte
	switch format {
	case config.FormatCSV:
		data = []byte(CSV(items))
	case config.FormatXLSX:
		b, err := XLSX(items)
		if err != nil {
			return err
		}
		data = b
	case config.FormatPDF:
		b, err := PDF(items)
		if err != nil {
			return err
		}
		data = b
	default:
		return fmt.Errorf("unknown export format %q: want csv, xlsx, or pdf", format)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
