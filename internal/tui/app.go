// Package tui provides the interactive Bubble Tea dashboard for tally.
package tui

import (
	"fmt"
	"strings"
	"time"

	"tally/internal/config"
	"tally/internal/export"
	"tally/internal/model"
	"tally/internal/pipeline"
	"tally/internal/store"
	"tally/internal/tui/components"
	"tally/internal/tui/theme"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dataLoadedMsg is sent when the ledger load finishes.
type dataLoadedMsg struct {
	result   *pipeline.LoadResult
	err      error
	loadTime time.Duration
}

// toggleDoneMsg reports the outcome of persisting a done toggle.
type toggleDoneMsg struct {
	id   string
	done bool
	err  error
}

// clipboardDoneMsg reports the outcome of a clipboard copy.
type clipboardDoneMsg struct {
	rows int
	err  error
}

// exportDoneMsg reports the outcome of writing an export file.
type exportDoneMsg struct {
	path string
	err  error
}

// noteExpiredMsg clears the transient status note it was scheduled for.
type noteExpiredMsg struct{ seq int }

// App is the root Bubble Tea model.
type App struct {
	// Data
	opts      pipeline.LoadOptions
	items     []model.LineItem
	src       string
	fromStore bool
	rowErrors int
	loaded    bool
	loadTime  time.Duration

	// Derived for the current filter
	filter      pipeline.Filter
	typeOptions []string
	costOptions []string
	visible     []model.LineItem
	metrics     model.BudgetMetrics
	phases      []model.PhaseCost

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	itemsState itemsState
	settings   settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	// Transient status note (clipboard results, export paths, errors)
	note    string
	noteErr bool
	noteSeq int

	spinner spinner.Model

	// Config-derived behavior
	budgetCap       float64
	forceCompact    bool
	exportFormat    string
	exportClipboard bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 160

	// Scroll navigation
	scrollOverhead    = 8 // approximate header + status bar height for half-page calc
	minHalfPageScroll = 1
	minContentHeight  = 5

	noteLifetime = 4 * time.Second
)

// loadConfigOrDefault loads config, returning defaults on error.
// The TUI can always start even if the config file is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model.
func NewApp(opts pipeline.LoadOptions) App {
	needSetup := !config.Exists()

	cfg := loadConfigOrDefault()
	theme.SetActive(cfg.Appearance.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		opts:            opts,
		needSetup:       needSetup,
		filter:          pipeline.NewFilter(),
		spinner:         sp,
		budgetCap:       cfg.Budget.Cap,
		forceCompact:    cfg.Appearance.Compact,
		exportFormat:    cfg.Export.Format,
		exportClipboard: cfg.Export.Clipboard,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.opts),
		a.spinner.Tick,
	)
}

func (a *App) recompute() {
	a.typeOptions = append([]string{pipeline.FilterAll}, pipeline.DistinctTypes(a.items)...)
	a.costOptions = append([]string{pipeline.FilterAll}, pipeline.DistinctStatuses(a.items)...)

	a.visible = a.filter.Apply(a.items)
	a.metrics = pipeline.Aggregate(a.visible)
	a.phases = pipeline.PhaseBreakdown(a.visible)

	// Clamp the items cursor to the new visible list bounds
	listed := a.searchFilteredItems()
	if a.itemsState.cursor >= len(listed) {
		a.itemsState.cursor = len(listed) - 1
	}
	if a.itemsState.cursor < 0 {
		a.itemsState.cursor = 0
	}
	a.itemsState.detailScroll = 0
}

// setNote installs a transient status note and schedules its expiry.
func (a *App) setNote(text string, isErr bool) tea.Cmd {
	a.note = text
	a.noteErr = isErr
	a.noteSeq++
	return expireNoteCmd(a.noteSeq)
}

// cycleOption advances to the next value in opts, wrapping around.
func cycleOption(current string, opts []string) string {
	for i, o := range opts {
		if o == current {
			return opts[(i+1)%len(opts)]
		}
	}
	if len(opts) > 0 {
		return opts[0]
	}
	return current
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == 1 && !a.itemsState.searching {
				if a.itemsState.cursor > 0 {
					a.itemsState.cursor--
					a.itemsState.detailScroll = 0
				}
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == 1 && !a.itemsState.searching {
				if a.itemsState.cursor < len(a.searchFilteredItems())-1 {
					a.itemsState.cursor++
					a.itemsState.detailScroll = 0
				}
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Tab bar occupies the first header line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)

	case dataLoadedMsg:
		a.loaded = true
		a.loadTime = msg.loadTime
		if msg.err != nil {
			a.items = nil
			a.src = ""
			a.recompute()
			return a, a.setNote(fmt.Sprintf("Load failed: %v", msg.err), true)
		}
		a.items = msg.result.Items
		a.src = msg.result.Source
		a.fromStore = msg.result.FromStore
		a.rowErrors = len(msg.result.RowErrors)
		a.recompute()

		// Activate first-run setup after data loads
		if a.needSetup {
			a.setupForm = newSetupForm(len(a.items), a.src, &a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		if a.rowErrors > 0 {
			return a, a.setNote(fmt.Sprintf("Loaded with %d row problems", a.rowErrors), true)
		}
		return a, nil

	case toggleDoneMsg:
		if msg.err != nil {
			return a, a.setNote(fmt.Sprintf("Could not save toggle: %v", msg.err), true)
		}
		for i := range a.items {
			if a.items[i].ID == msg.id {
				a.items[i].Done = msg.done
				break
			}
		}
		a.recompute()
		return a, nil

	case clipboardDoneMsg:
		if msg.err != nil {
			// Surfaced once; the user can retry with c if they want.
			return a, a.setNote(fmt.Sprintf("Clipboard copy failed: %v", msg.err), true)
		}
		return a, a.setNote(fmt.Sprintf("Copied %d rows to clipboard as CSV", msg.rows), false)

	case exportDoneMsg:
		if msg.err != nil {
			return a, a.setNote(fmt.Sprintf("Export failed: %v", msg.err), true)
		}
		return a, a.setNote(fmt.Sprintf("Exported %s", msg.path), false)

	case noteExpiredMsg:
		if msg.seq == a.noteSeq {
			a.note = ""
			a.noteErr = false
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.loaded {
		return a, nil
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Settings edit mode has its own keybindings (text input)
	if a.activeTab == 3 && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	// Items search mode intercepts all keys when active
	if a.activeTab == 1 && a.itemsState.searching {
		return a.updateItemsSearch(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Items tab has its own keybindings
	if a.activeTab == 1 {
		if m, cmd, handled := a.updateItemsKeys(key); handled {
			return m, cmd
		}
	}

	// Settings tab navigation (non-editing mode)
	if a.activeTab == 3 {
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
			return a, nil
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		}
	}

	switch key {
	case "q":
		return a, tea.Quit

	case "f":
		a.filter.Type = cycleOption(a.filter.Type, a.typeOptions)
		a.recompute()
		return a, nil

	case "u":
		a.filter.Cost = cycleOption(a.filter.Cost, a.costOptions)
		a.recompute()
		return a, nil

	case "F":
		a.filter = pipeline.NewFilter()
		a.recompute()
		return a, nil

	case "c":
		// The clipboard CSV always carries the whole ledger, not the
		// filtered view.
		return a, copyCSVCmd(a.items)

	case "x":
		return a, exportFileCmd(a.exportFormat, a.items)

	case "r":
		a.loaded = false
		return a, tea.Batch(loadDataCmd(a.opts), a.spinner.Tick)

	case "o", "i", "p", "s":
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
		}
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		_ = a.saveSetupConfig()
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.forceCompact || a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  tally needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ tally"))
	b.WriteString(subtitleStyle.Render(" · Procurement Ledger"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Loading ledger..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o i p s", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate item list"},
		{"g G", "First / Last item"},
		{"J K", "Scroll detail pane"},
		{"^d ^u", "Half-page scroll"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"/", "Search items"},
		{"Space", "Toggle item done"},
		{"f", "Cycle type filter"},
		{"u", "Cycle cost status filter"},
		{"F", "Reset filters"},
		{"c", "Copy CSV to clipboard"},
		{"x", "Export to file"},
		{"r", "Reload ledger"},
		{"Enter", "Expand / Confirm"},
		{"Esc", "Back / Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Render header (tab bar + filter pill)
	filterPillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	filterAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	filterStr := filterPillStyle.Render(" ")
	if a.filter.IsAll() {
		filterStr += filterPillStyle.Render("all items")
	} else {
		filterStr += filterPillStyle.Render("type ") + filterAccentStyle.Render(a.filter.Type) +
			filterPillStyle.Render(" │ cost ") + filterAccentStyle.Render(a.filter.Cost)
	}
	filterStr += filterPillStyle.Render(fmt.Sprintf(" · %d of %d rows ", len(a.visible), len(a.items)))

	filterRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab) + "\n" +
		filterRowStyle.Render(filterStr)

	// 2. Render status bar
	right := a.src
	if right != "" {
		right += fmt.Sprintf(" · %.0fms", float64(a.loadTime.Microseconds())/1000)
	}
	statusBar := components.RenderStatusBar(w, a.note, a.noteErr, right)

	// 3. Calculate content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Render tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderItemsContent(a.searchFilteredItems(), cw, contentH)
	case 2:
		content = a.renderPhasesTab(cw)
	case 3:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	// 9. Fill any remaining rows with background
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Commands ───────────────────────────────────────────────────

func loadDataCmd(opts pipeline.LoadOptions) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		res, err := pipeline.Load(opts)
		return dataLoadedMsg{result: res, err: err, loadTime: time.Since(start)}
	}
}

// toggleDoneCmd persists a done flip for store-backed ledgers.
func toggleDoneCmd(dataDir, id string) tea.Cmd {
	return func() tea.Msg {
		st, err := store.Open(dataDir)
		if err != nil {
			return toggleDoneMsg{id: id, err: err}
		}
		defer func() { _ = st.Close() }()

		done, err := st.ToggleDone(id)
		return toggleDoneMsg{id: id, done: done, err: err}
	}
}

// copyCSVCmd copies the current rows to the system clipboard. Failure is
// reported through the status bar and never retried automatically.
func copyCSVCmd(items []model.LineItem) tea.Cmd {
	return func() tea.Msg {
		return clipboardDoneMsg{rows: len(items), err: clipboard.WriteAll(export.CSV(items))}
	}
}

func exportFileCmd(format string, items []model.LineItem) tea.Cmd {
	return func() tea.Msg {
		path := export.DefaultFilename(format)
		if err := export.WriteFile(path, format, items); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func expireNoteCmd(seq int) tea.Cmd {
	return tea.Tick(noteLifetime, func(time.Time) tea.Msg {
		return noteExpiredMsg{seq: seq}
	})
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes mirror RenderTabBar: one leading space, two spaces between tabs.
func (a App) tabAtX(x int) int {
	pos := 1
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		if i < len(components.Tabs)-1 {
			pos += 2
		}
	}
	return -1
}

// ─── Item Search ────────────────────────────────────────────────

// updateItemsSearch handles key events while in search mode.
func (a App) updateItemsSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.itemsState.searchQuery = strings.TrimSpace(a.itemsState.searchInput.Value())
		a.itemsState.searching = false
		a.itemsState.cursor = 0
		a.itemsState.offset = 0
		a.itemsState.detailScroll = 0
		return a, nil

	case "esc":
		a.itemsState.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.itemsState.searchInput, cmd = a.itemsState.searchInput.Update(msg)
	return a, cmd
}

// searchFilteredItems returns the visible rows narrowed by the search query.
func (a App) searchFilteredItems() []model.LineItem {
	if a.itemsState.searchQuery == "" {
		return a.visible
	}
	return filterItemsBySearch(a.visible, a.itemsState.searchQuery)
}

// filterItemsBySearch matches the query against ID, description, phase,
// and type, case-insensitively.
func filterItemsBySearch(items []model.LineItem, query string) []model.LineItem {
	q := strings.ToLower(query)
	var out []model.LineItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.ID), q) ||
			strings.Contains(strings.ToLower(it.Description), q) ||
			strings.Contains(strings.ToLower(it.Event), q) ||
			strings.Contains(strings.ToLower(it.Type), q) {
			out = append(out, it)
		}
	}
	return out
}
