package tui

import (
	"fmt"
	"strings"

	"tally/internal/cli"
	"tally/internal/model"
	"tally/internal/tui/components"
	"tally/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Items view modes. Split is the zero value and therefore the default.
const (
	itemsViewSplit  = iota // List + detail side by side (default)
	itemsViewDetail        // Full-screen detail
)

// itemsState holds the items tab state.
type itemsState struct {
	cursor       int
	viewMode     int
	offset       int // scroll offset for the list
	detailScroll int
	searching    bool
	searchInput  textinput.Model
	searchQuery  string
}

func newItemsSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "id, description, phase, or type"
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

// updateItemsKeys handles the items tab keybindings. The bool reports
// whether the key was consumed here.
func (a App) updateItemsKeys(key string) (tea.Model, tea.Cmd, bool) {
	compact := a.isCompactLayout()
	listed := a.searchFilteredItems()

	switch key {
	case "/":
		a.itemsState.searching = true
		a.itemsState.searchInput = newItemsSearchInput()
		a.itemsState.searchInput.Focus()
		return a, a.itemsState.searchInput.Cursor.BlinkCmd(), true

	case " ":
		if len(listed) == 0 || a.itemsState.cursor >= len(listed) {
			return a, nil, true
		}
		sel := listed[a.itemsState.cursor]
		if a.fromStore {
			return a, toggleDoneCmd(a.opts.DataDir, sel.ID), true
		}
		for i := range a.items {
			if a.items[i].ID == sel.ID {
				a.items[i].Done = !a.items[i].Done
				break
			}
		}
		a.recompute()
		return a, nil, true

	case "q":
		if !compact && a.itemsState.viewMode == itemsViewDetail {
			a.itemsState.viewMode = itemsViewSplit
			return a, nil, true
		}
		return a, tea.Quit, true

	case "enter":
		if compact {
			return a, nil, true
		}
		if a.itemsState.viewMode == itemsViewSplit {
			a.itemsState.viewMode = itemsViewDetail
		}
		return a, nil, true

	case "esc":
		// Clear search if active, otherwise exit detail view
		if a.itemsState.searchQuery != "" {
			a.itemsState.searchQuery = ""
			a.itemsState.cursor = 0
			a.itemsState.offset = 0
			return a, nil, true
		}
		if compact {
			return a, nil, true
		}
		if a.itemsState.viewMode == itemsViewDetail {
			a.itemsState.viewMode = itemsViewSplit
		}
		return a, nil, true

	case "j", "down":
		if a.itemsState.cursor < len(listed)-1 {
			a.itemsState.cursor++
			a.itemsState.detailScroll = 0
		}
		return a, nil, true

	case "k", "up":
		if a.itemsState.cursor > 0 {
			a.itemsState.cursor--
			a.itemsState.detailScroll = 0
		}
		return a, nil, true

	case "g":
		a.itemsState.cursor = 0
		a.itemsState.offset = 0
		a.itemsState.detailScroll = 0
		return a, nil, true

	case "G":
		a.itemsState.cursor = len(listed) - 1
		if a.itemsState.cursor < 0 {
			a.itemsState.cursor = 0
		}
		a.itemsState.detailScroll = 0
		return a, nil, true

	case "J":
		a.itemsState.detailScroll++
		return a, nil, true

	case "K":
		if a.itemsState.detailScroll > 0 {
			a.itemsState.detailScroll--
		}
		return a, nil, true

	case "ctrl+d":
		halfPage := (a.height - scrollOverhead) / 2
		if halfPage < minHalfPageScroll {
			halfPage = minHalfPageScroll
		}
		a.itemsState.detailScroll += halfPage
		return a, nil, true

	case "ctrl+u":
		halfPage := (a.height - scrollOverhead) / 2
		if halfPage < minHalfPageScroll {
			halfPage = minHalfPageScroll
		}
		a.itemsState.detailScroll -= halfPage
		if a.itemsState.detailScroll < 0 {
			a.itemsState.detailScroll = 0
		}
		return a, nil, true
	}

	return a, nil, false
}

func (a App) renderItemsContent(listed []model.LineItem, cw, h int) string {
	t := theme.Active

	var b strings.Builder
	if bar := a.renderItemsSearchBar(cw); bar != "" {
		b.WriteString(bar)
		b.WriteString("\n")
		h -= 2
	}

	if len(listed) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("No items match. [F] resets filters, [Esc] clears the search.")
		b.WriteString(components.ContentCard("Items", empty, cw))
		return b.String()
	}

	if a.itemsState.viewMode == itemsViewDetail && !a.isCompactLayout() {
		b.WriteString(a.renderItemDetail(listed, cw))
	} else {
		b.WriteString(a.renderItemsSplit(listed, cw, h))
	}
	return b.String()
}

// renderItemsSearchBar renders the search input or the applied query, or
// returns "" when neither is active.
func (a App) renderItemsSearchBar(cw int) string {
	t := theme.Active

	promptStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	queryStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Background(t.Surface).Width(cw)

	if a.itemsState.searching {
		line := promptStyle.Render(" / ") + a.itemsState.searchInput.View() +
			hintStyle.Render("  [Enter] apply  [Esc] cancel")
		return rowStyle.Render(line)
	}
	if a.itemsState.searchQuery != "" {
		line := promptStyle.Render(" search ") + queryStyle.Render(a.itemsState.searchQuery) +
			hintStyle.Render("  [Esc] clears")
		return rowStyle.Render(line)
	}
	return ""
}

func (a App) renderItemsSplit(listed []model.LineItem, cw, h int) string {
	is := a.itemsState

	if is.cursor >= len(listed) {
		return ""
	}

	leftW := cw / 3
	if leftW < 30 {
		leftW = 30
	}
	rightW := cw - leftW

	leftInner := components.CardInnerWidth(leftW)

	visible := h - 6 // card border (2) + header row (2) + footer hint (2)
	if visible < 5 {
		visible = 5
	}

	offset := is.offset
	if is.cursor < offset {
		offset = is.cursor
	}
	if is.cursor >= offset+visible {
		offset = is.cursor - visible + 1
	}

	end := offset + visible
	if end > len(listed) {
		end = len(listed)
	}

	var leftBody strings.Builder
	for i := offset; i < end; i++ {
		leftBody.WriteString(a.renderItemLine(listed[i], leftInner, i == is.cursor))
		leftBody.WriteString("\n")
	}

	title := fmt.Sprintf("Items (%d)", len(listed))
	leftCard := components.ContentCard(title, leftBody.String(), leftW)

	sel := listed[is.cursor]
	rightBody := scrollLines(a.renderItemBody(sel, rightW), is.detailScroll)
	rightCard := components.ContentCard(fmt.Sprintf("Item %s", sel.ID), rightBody, rightW)

	return components.CardRow([]string{leftCard, rightCard})
}

func (a App) renderItemDetail(listed []model.LineItem, cw int) string {
	is := a.itemsState

	if is.cursor >= len(listed) {
		return ""
	}
	sel := listed[is.cursor]

	body := scrollLines(a.renderItemBody(sel, cw), is.detailScroll)
	return components.ContentCard(fmt.Sprintf("Item %s", sel.ID), body, cw)
}

// renderItemLine renders one row of the item list: checkbox, ID, then as
// much of the description as fits.
func (a App) renderItemLine(it model.LineItem, width int, selected bool) string {
	t := theme.Active

	box := "[ ]"
	if it.Done {
		box = "[x]"
	}
	line := fmt.Sprintf("%s %-8s %s", box, it.ID, it.Description)
	line = truncStr(line, width)
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}

	switch {
	case selected:
		return lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true).Render(line)
	case it.IsRollup():
		return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(line)
	case it.Status == model.StatusUnpriced:
		return lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface).Render(line)
	case it.Done:
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(line)
	default:
		return lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Render(line)
	}
}

// renderItemBody generates the full detail content for a line item. Used by
// both the split right pane and the full-screen detail view.
func (a App) renderItemBody(sel model.LineItem, w int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	yellowStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface)
	redStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	orangeStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var body strings.Builder
	body.WriteString(valueStyle.Render(sel.Description))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n\n")

	phase := sel.Event
	if phase == "" {
		phase = "(no phase)"
	}
	body.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Phase:    "), valueStyle.Render(phase)))
	body.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Type:     "), valueStyle.Render(orDash(sel.Type))))
	body.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Cost Type:"), valueStyle.Render(orDash(sel.CostType))))

	var costStr string
	switch sel.Cost.Kind {
	case model.CostAmount:
		costStr = greenStyle.Render(cli.FormatCost(sel.Cost))
	case model.CostNA:
		costStr = yellowStyle.Render("N/A (quote needed)")
	default:
		costStr = redStyle.Render(fmt.Sprintf("%s (unparseable)", sel.Cost.Raw))
	}
	body.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Cost:     "), costStr))

	statusStr := valueStyle.Render(orDash(sel.Status))
	if sel.Status == model.StatusUnpriced {
		statusStr = yellowStyle.Render(sel.Status)
	}
	body.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Status:   "), statusStr))

	doneStr := mutedStyle.Render("no")
	if sel.Done {
		doneStr = greenStyle.Render("yes")
	}
	body.WriteString(fmt.Sprintf("%s %s\n\n",
		labelStyle.Render("Done:     "), doneStr))

	if sel.ExcludeFromSum {
		body.WriteString(orangeStyle.Render("Excluded from totals"))
		if sel.IsRollup() {
			body.WriteString(orangeStyle.Render(" (rollup row)"))
		}
		body.WriteString("\n")
	} else if sel.Countable() {
		body.WriteString(greenStyle.Render("Counted in totals"))
		body.WriteString("\n")
	} else {
		body.WriteString(mutedStyle.Render("No confirmed cost; contributes nothing to totals"))
		body.WriteString("\n")
	}

	// Phase context from the current filter view
	for _, p := range a.phases {
		if p.Phase != sel.Event {
			continue
		}
		body.WriteString("\n")
		body.WriteString(mutedStyle.Render(fmt.Sprintf("Phase %q: %s across %d items, %d unpriced",
			p.Phase, cli.FormatNaira(p.Total), p.Items, p.Unpriced)))
		body.WriteString("\n")
		break
	}

	body.WriteString("\n")
	body.WriteString(mutedStyle.Render("[Space] toggle done  [Enter] expand  [j/k] navigate"))

	return body.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// scrollLines drops the first n lines of a rendered body, keeping at least
// the final line visible.
func scrollLines(body string, n int) string {
	if n <= 0 {
		return body
	}
	lines := strings.Split(body, "\n")
	if n >= len(lines) {
		n = len(lines) - 1
	}
	return strings.Join(lines[n:], "\n")
}
