package tui

import (
	"fmt"
	"strconv"
	"strings"

	"tally/internal/config"
	"tally/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues receives the first-run form answers.
type setupValues struct {
	theme     string
	cap       string
	format    string
	clipboard bool
}

// newSetupForm builds the first-run wizard shown when no config file
// exists yet. The form writes into vals; saveSetupConfig applies them.
func newSetupForm(itemCount int, src string, vals *setupValues) *huh.Form {
	vals.theme = theme.Active.Name
	vals.format = config.FormatCSV

	themeNames := make([]string, len(theme.All))
	for i, th := range theme.All {
		themeNames[i] = th.Name
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to tally!").
				Description(fmt.Sprintf("Loaded %d line items from %s.\nA few preferences and you're in.", itemCount, src)),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(themeNames...)...).
				Value(&vals.theme),

			huh.NewInput().
				Title("Budget cap (naira)").
				Description("Shown as a gauge on the Overview tab. Leave empty for none.").
				Placeholder("25000000").
				Validate(validateCap).
				Value(&vals.cap),

			huh.NewSelect[string]().
				Title("Default export format").
				Options(
					huh.NewOption("CSV (plain text rows)", config.FormatCSV),
					huh.NewOption("XLSX (styled workbook)", config.FormatXLSX),
					huh.NewOption("PDF (printable report)", config.FormatPDF),
				).
				Value(&vals.format),

			huh.NewConfirm().
				Title("Copy CSV to the clipboard on export?").
				Affirmative("Yes").
				Negative("No").
				Value(&vals.clipboard),
		),
	)
}

func validateCap(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a plain number of naira, or leave empty")
	}
	return nil
}

// saveSetupValues persists the wizard answers and returns the resulting
// config.
func saveSetupValues(vals setupValues) (config.Config, error) {
	cfg := loadConfigOrDefault()

	if vals.theme != "" {
		cfg.Appearance.Theme = vals.theme
		theme.SetActive(vals.theme)
	}

	if v := strings.TrimSpace(vals.cap); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Budget.Cap = f
		}
	}

	if vals.format != "" {
		cfg.Export.Format = vals.format
	}

	cfg.Export.Clipboard = vals.clipboard

	return cfg, config.Save(cfg)
}

// saveSetupConfig persists the wizard answers and applies them to the
// running app.
func (a *App) saveSetupConfig() error {
	cfg, err := saveSetupValues(a.setupVals)
	a.budgetCap = cfg.Budget.Cap
	a.exportFormat = cfg.Export.Format
	a.exportClipboard = cfg.Export.Clipboard
	return err
}

// RunSetup runs the setup wizard standalone, outside the dashboard.
func RunSetup(itemCount int, src string) error {
	var vals setupValues
	if err := newSetupForm(itemCount, src, &vals).Run(); err != nil {
		return err
	}
	_, err := saveSetupValues(vals)
	return err
}
