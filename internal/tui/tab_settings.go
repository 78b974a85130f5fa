package tui

import (
	"fmt"
	"strconv"
	"strings"

	"tally/internal/cli"
	"tally/internal/config"
	"tally/internal/store"
	"tally/internal/tui/components"
	"tally/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldBudgetCap
	settingsFieldExportFormat
	settingsFieldClipboard
	settingsFieldCompact
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 50
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, tokyo-night, terminal"
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldBudgetCap:
		ti.Placeholder = "25000000 (naira, empty clears the gauge)"
		if a.budgetCap > 0 {
			ti.SetValue(strconv.FormatFloat(a.budgetCap, 'f', -1, 64))
		}
	case settingsFieldExportFormat:
		ti.Placeholder = "csv, xlsx, or pdf"
		ti.SetValue(a.exportFormat)
	case settingsFieldClipboard:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(a.exportClipboard))
	case settingsFieldCompact:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(a.forceCompact))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		for _, th := range theme.All {
			if th.Name == val {
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	case settingsFieldBudgetCap:
		if val == "" {
			cfg.Budget.Cap = 0
			a.budgetCap = 0
		} else if v, err := strconv.ParseFloat(val, 64); err == nil && v >= 0 {
			cfg.Budget.Cap = v
			a.budgetCap = v
		}
	case settingsFieldExportFormat:
		switch strings.ToLower(val) {
		case config.FormatCSV, config.FormatXLSX, config.FormatPDF:
			cfg.Export.Format = strings.ToLower(val)
			a.exportFormat = cfg.Export.Format
		}
	case settingsFieldClipboard:
		cfg.Export.Clipboard = val == "true" || val == "1" || val == "yes"
		a.exportClipboard = cfg.Export.Clipboard
	case settingsFieldCompact:
		cfg.Appearance.Compact = val == "true" || val == "1" || val == "yes"
		a.forceCompact = cfg.Appearance.Compact
	}

	a.settings.saveErr = config.Save(cfg)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	orangeStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	capDisplay := "(not set)"
	if a.budgetCap > 0 {
		capDisplay = cli.FormatNaira(a.budgetCap)
	}

	// Live App state for everything a keypress can change, so the display
	// matches behavior even when a save failed.
	fields := []field{
		{"Theme", cfg.Appearance.Theme},
		{"Budget Cap", capDisplay},
		{"Export Format", a.exportFormat},
		{"Clipboard Copy", strconv.FormatBool(a.exportClipboard)},
		{"Compact Layout", strconv.FormatBool(a.forceCompact)},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-16s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			// Selected row with marker and highlight
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-16s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			padLen := innerW - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			// Normal row
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-16s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		formBody.WriteString("\n")
		formBody.WriteString(orangeStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// General info card
	storeDir := a.opts.DataDir
	if storeDir == "" {
		storeDir = store.DefaultDir()
	}

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Source:       ") + valueStyle.Render(a.src) + "\n")
	infoBody.WriteString(labelStyle.Render("Items loaded: ") + valueStyle.Render(cli.FormatNumber(int64(len(a.items)))) + "\n")
	if a.rowErrors > 0 {
		infoBody.WriteString(labelStyle.Render("Row problems: ") + orangeStyle.Render(strconv.Itoa(a.rowErrors)) + "\n")
	}
	infoBody.WriteString(labelStyle.Render("Load time:    ") + valueStyle.Render(fmt.Sprintf("%.0fms", float64(a.loadTime.Microseconds())/1000)) + "\n")
	infoBody.WriteString(labelStyle.Render("Ledger store: ") + valueStyle.Render(storeDir) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.ConfigPath()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
