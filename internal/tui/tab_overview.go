package tui

import (
	"fmt"
	"strings"

	"tally/internal/cli"
	"tally/internal/tui/components"
	"tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	m := a.metrics
	var b strings.Builder

	// Row 1: Metric cards
	doneCount := 0
	for _, it := range a.visible {
		if it.Done {
			doneCount++
		}
	}

	itemsSub := fmt.Sprintf("%d done", doneCount)
	if len(a.visible) != len(a.items) {
		itemsSub = fmt.Sprintf("of %d · %d done", len(a.items), doneCount)
	}

	confirmedSub := "confirmed spend"
	if a.budgetCap > 0 {
		pct := m.TotalConfirmed / a.budgetCap * 100
		confirmedSub = fmt.Sprintf("%.0f%% of %s cap", pct, cli.FormatNaira(a.budgetCap))
	}

	topPhase := "—"
	topSub := "no confirmed costs"
	if len(m.TopGroupings) > 0 {
		topPhase = m.TopGroupings[0].Phase
		topSub = cli.FormatNaira(m.TopGroupings[0].Total)
	}

	cards := []struct{ Label, Value, Sub string }{
		{"Confirmed", cli.FormatNaira(m.TotalConfirmed), confirmedSub},
		{"Items", cli.FormatNumber(int64(len(a.visible))), itemsSub},
		{"Unpriced", cli.FormatNumber(int64(len(m.UnpricedItems))), "quotes pending"},
		{"Top Phase", topPhase, topSub},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Progress gauges
	gaugeW := components.CardInnerWidth(cw) - 30
	if gaugeW < 10 {
		gaugeW = 10
	}
	gaugeLabelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	donePct := 0.0
	if len(a.visible) > 0 {
		donePct = float64(doneCount) / float64(len(a.visible))
	}
	var gauges strings.Builder
	if a.budgetCap > 0 {
		gauges.WriteString(components.BudgetBar("Confirmed", m.TotalConfirmed, a.budgetCap, 10, gaugeW))
		gauges.WriteString("\n")
	}
	gauges.WriteString(gaugeLabelStyle.Render(fmt.Sprintf("%-10s", "Completed")))
	gauges.WriteString(" ")
	gauges.WriteString(components.ProgressBar(donePct, gaugeW))

	b.WriteString(components.ContentCard("Progress", gauges.String(), cw))
	b.WriteString("\n")

	// Row 3: Confirmed spend per phase, skipping phases with nothing confirmed
	var chartVals []float64
	var chartLabels []string
	for _, p := range a.phases {
		if p.Total <= 0 {
			continue
		}
		chartVals = append(chartVals, p.Total)
		chartLabels = append(chartLabels, phaseInitials(p.Phase))
	}
	if len(chartVals) > 0 {
		chartH := 10
		if a.isCompactLayout() {
			chartH = 7
		}
		chartInnerW := components.CardInnerWidth(cw)
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Confirmed by Phase (%d phases)", len(chartVals)),
			components.BarChart(chartVals, chartLabels, t.Blue, chartInnerW, chartH),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 4: Top Cost Groupings + Unpriced Items
	halves := components.LayoutRow(cw, 2)
	innerW := components.CardInnerWidth(halves[0])

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var topBody strings.Builder
	if len(m.TopGroupings) == 0 {
		topBody.WriteString(dimStyle.Render("No phases with confirmed costs."))
		topBody.WriteString("\n")
	} else {
		maxTotal := m.TopGroupings[0].Total
		amtW := 0
		for _, g := range m.TopGroupings {
			if w := len(cli.FormatNaira(g.Total)); w > amtW {
				amtW = w
			}
		}
		nameW := innerW / 3
		if nameW < 10 {
			nameW = 10
		}
		barMaxLen := innerW - nameW - amtW - 2
		if barMaxLen < 1 {
			barMaxLen = 1
		}
		for _, g := range m.TopGroupings {
			barLen := 0
			if maxTotal > 0 {
				barLen = int(g.Total / maxTotal * float64(barMaxLen))
			}
			fmt.Fprintf(&topBody, "%s %s %s\n",
				nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(g.Phase, nameW))),
				barStyle.Render(strings.Repeat("█", barLen)),
				amtStyle.Render(fmt.Sprintf("%*s", amtW, cli.FormatNaira(g.Total))))
		}
	}

	unpricedInnerW := components.CardInnerWidth(halves[1])
	var unpricedBody strings.Builder
	if len(m.UnpricedItems) == 0 {
		unpricedBody.WriteString(dimStyle.Render("Every item has a confirmed quote."))
		unpricedBody.WriteString("\n")
	} else {
		limit := 6
		if len(m.UnpricedItems) < limit {
			limit = len(m.UnpricedItems)
		}
		idW := 0
		for _, it := range m.UnpricedItems[:limit] {
			if w := len(it.ID); w > idW {
				idW = w
			}
		}
		for _, it := range m.UnpricedItems[:limit] {
			descW := unpricedInnerW - idW - 1
			if descW < 1 {
				descW = 1
			}
			fmt.Fprintf(&unpricedBody, "%s %s\n",
				amtStyle.Render(fmt.Sprintf("%-*s", idW, it.ID)),
				nameStyle.Render(truncStr(it.Description, descW)))
		}
		if rest := len(m.UnpricedItems) - limit; rest > 0 {
			unpricedBody.WriteString(dimStyle.Render(fmt.Sprintf("… and %d more (see Items tab)", rest)))
			unpricedBody.WriteString("\n")
		}
	}

	topTitle := "Top Cost Groupings"
	unpricedTitle := fmt.Sprintf("Unpriced Items (%d)", len(m.UnpricedItems))
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard(topTitle, topBody.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard(unpricedTitle, unpricedBody.String(), cw))
	} else {
		topCard := components.ContentCard(topTitle, topBody.String(), halves[0])
		unpricedCard := components.ContentCard(unpricedTitle, unpricedBody.String(), halves[1])
		b.WriteString(components.CardRow([]string{topCard, unpricedCard}))
	}

	return b.String()
}

// phaseInitials compresses a phase name into a short chart label, e.g.
// "Pre-Production" becomes "PP" and "Show Day" becomes "SD".
func phaseInitials(phase string) string {
	if phase == "" {
		return "?"
	}
	parts := strings.FieldsFunc(phase, func(r rune) bool {
		return r == ' ' || r == '-' || r == '/'
	})
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(string([]rune(p)[0])))
		if b.Len() >= 3 {
			break
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}
