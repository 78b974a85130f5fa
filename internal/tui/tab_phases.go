package tui

import (
	"fmt"
	"strings"

	"tally/internal/cli"
	"tally/internal/model"
	"tally/internal/pipeline"
	"tally/internal/tui/components"
	"tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderPhasesTab(cw int) string {
	var b strings.Builder
	b.WriteString(a.renderPhaseTable(cw))
	b.WriteString("\n")
	b.WriteString(a.renderCostTypeTable(cw))
	return b.String()
}

func (a App) renderPhaseTable(cw int) string {
	t := theme.Active
	phases := a.phases

	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	amtStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	shareStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface)

	// Phase name colors cycle for visual interest
	phaseColors := []lipgloss.Color{t.BlueBright, t.Cyan, t.Magenta, t.Yellow, t.Green}
	nameStyles := make([]lipgloss.Style, len(phaseColors))
	for i, color := range phaseColors {
		nameStyles[i] = lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	}

	maxTotal := 0.0
	sumTotal := 0.0
	for _, p := range phases {
		if p.Total > maxTotal {
			maxTotal = p.Total
		}
		sumTotal += p.Total
	}

	var tableBody strings.Builder
	if a.isCompactLayout() {
		itemsW := 6
		amtW := 14
		nameW := innerW - itemsW - amtW - 2
		if nameW < 12 {
			nameW = 12
		}
		tableBody.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %6s %14s", nameW, "Phase", "Items", "Confirmed")))
		tableBody.WriteString("\n")
		tableBody.WriteString(mutedStyle.Render(strings.Repeat("─", nameW+itemsW+amtW+2)))
		tableBody.WriteString("\n")

		for i, p := range phases {
			tableBody.WriteString(nameStyles[i%len(phaseColors)].Render(fmt.Sprintf("%-*s", nameW, truncStr(phaseLabel(p.Phase), nameW))))
			tableBody.WriteString(rowStyle.Render(fmt.Sprintf(" %6d", p.Items)))
			tableBody.WriteString(amtStyle.Render(fmt.Sprintf(" %14s", cli.FormatNaira(p.Total))))
			tableBody.WriteString("\n")
		}
	} else {
		barW := 14
		fixedCols := 6 + 8 + 16 + barW + 6
		gaps := 5
		nameW := innerW - fixedCols - gaps
		if nameW < 14 {
			nameW = 14
		}

		tableBody.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %6s %8s %16s %-*s %6s",
			nameW, "Phase", "Items", "Unpriced", "Confirmed", barW, "", "Share")))
		tableBody.WriteString("\n")
		tableBody.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
		tableBody.WriteString("\n")

		for i, p := range phases {
			barLen := 0
			if maxTotal > 0 {
				barLen = int(p.Total / maxTotal * float64(barW))
			}
			share := 0.0
			if sumTotal > 0 {
				share = p.Total / sumTotal * 100
			}

			unpricedStr := rowStyle.Render(fmt.Sprintf(" %8d", p.Unpriced))
			if p.Unpriced > 0 {
				unpricedStr = warnStyle.Render(fmt.Sprintf(" %8d", p.Unpriced))
			}

			tableBody.WriteString(nameStyles[i%len(phaseColors)].Render(fmt.Sprintf("%-*s", nameW, truncStr(phaseLabel(p.Phase), nameW))))
			tableBody.WriteString(rowStyle.Render(fmt.Sprintf(" %6d", p.Items)))
			tableBody.WriteString(unpricedStr)
			tableBody.WriteString(amtStyle.Render(fmt.Sprintf(" %16s", cli.FormatNaira(p.Total))))
			tableBody.WriteString(barStyle.Render(fmt.Sprintf(" %-*s", barW, strings.Repeat("█", barLen))))
			tableBody.WriteString(shareStyle.Render(fmt.Sprintf(" %5.1f%%", share)))
			tableBody.WriteString("\n")
		}
	}

	if len(phases) == 0 {
		tableBody.WriteString(mutedStyle.Render("No items to group."))
		tableBody.WriteString("\n")
	}

	return components.ContentCard("Phases", tableBody.String(), cw)
}

// renderCostTypeTable breaks the visible items down by cost type. Rollup
// types normally carry no confirmed total because their rows are excluded
// from sums.
func (a App) renderCostTypeTable(cw int) string {
	t := theme.Active

	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	nameStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface)
	amtStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	orangeStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	type ctRow struct {
		name      string
		items     int
		confirmed float64
		rollup    bool
	}

	rows := make([]ctRow, 0, 6)
	idx := make(map[string]int, 6)
	for _, ct := range pipeline.DistinctCostTypes(a.visible) {
		idx[ct] = len(rows)
		rows = append(rows, ctRow{
			name:   ct,
			rollup: ct == model.CostTypeSummary || ct == model.CostTypeBudget,
		})
	}
	for _, it := range a.visible {
		r := &rows[idx[it.CostType]]
		r.items++
		if it.Countable() {
			r.confirmed += it.Cost.Amount
		}
	}

	itemsW := 6
	amtW := 16
	nameW := innerW - itemsW - amtW - 2
	if nameW < 12 {
		nameW = 12
	}

	var tableBody strings.Builder
	tableBody.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %6s %16s", nameW, "Cost Type", "Items", "Confirmed")))
	tableBody.WriteString("\n")
	tableBody.WriteString(mutedStyle.Render(strings.Repeat("─", nameW+itemsW+amtW+2)))
	tableBody.WriteString("\n")

	for _, r := range rows {
		label := r.name
		if label == "" {
			label = "(none)"
		}
		ns := nameStyle
		if r.rollup {
			ns = orangeStyle
			label += " ⊘"
		}
		amtStr := amtStyle.Render(fmt.Sprintf(" %16s", cli.FormatNaira(r.confirmed)))
		if r.rollup && r.confirmed == 0 {
			amtStr = mutedStyle.Render(fmt.Sprintf(" %16s", "excluded"))
		}
		tableBody.WriteString(ns.Render(fmt.Sprintf("%-*s", nameW, truncStr(label, nameW))))
		tableBody.WriteString(rowStyle.Render(fmt.Sprintf(" %6d", r.items)))
		tableBody.WriteString(amtStr)
		tableBody.WriteString("\n")
	}

	if len(rows) == 0 {
		tableBody.WriteString(mutedStyle.Render("No items to group."))
		tableBody.WriteString("\n")
	} else {
		tableBody.WriteString("\n")
		tableBody.WriteString(mutedStyle.Render("⊘ rollup rows are excluded from confirmed sums"))
		tableBody.WriteString("\n")
	}

	return components.ContentCard("By Cost Type", tableBody.String(), cw)
}

// phaseLabel names the empty phase bucket for display.
func phaseLabel(phase string) string {
	if phase == "" {
		return "(no phase)"
	}
	return phase
}
