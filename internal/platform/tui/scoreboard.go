package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-breaker/internal/registry"
	"github.com/vovakirdan/fruit-breaker/internal/storage"
)

const (
	minWidthForStats = 100 // below this the stats panel folds into one line
	statsPanelWidth  = 28
	maxScores        = 100
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists the best sessions of one mode next to the mode's
// lifetime fruit statistics.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	cursor    int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	tickRate  int
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over store showing the first
// registered mode. tickRate converts stored session ticks to seconds.
func NewScoreboardModel(store *storage.Store, width, height, tickRate int) ScoreboardModel {
	m := ScoreboardModel{
		modes:    registry.List(),
		store:    store,
		tickRate: max(1, tickRate),
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

// SelectMode switches to the mode with the given ID. Unknown IDs are ignored.
func (m *ScoreboardModel) SelectMode(gameID string) {
	for i, info := range m.modes {
		if info.ID == gameID {
			m.cursor = i
			m.reload()
			return
		}
	}
}

// Mode returns the ID of the mode on display.
func (m ScoreboardModel) Mode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.cursor].ID
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForStats
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Wave", Width: 5},
		{Title: "Apl", Width: 4},
		{Title: "Org", Width: 4},
		{Title: "Pear", Width: 4},
		{Title: "Blu", Width: 4},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-12)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("130")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches the scores and stats of the current mode.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if id := m.Mode(); id != "" && m.store != nil {
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = scoreRow(i+1, s, m.tickRate)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// scoreRow formats one stored session for display.
func scoreRow(rank int, s storage.ScoreEntry, tickRate int) table.Row {
	secs := s.Ticks / int64(max(1, tickRate))
	return table.Row{
		fmt.Sprint(rank),
		fmt.Sprint(s.Score),
		fmt.Sprint(s.Wave),
		fmt.Sprint(s.Fruits.Apple),
		fmt.Sprint(s.Fruits.Orange),
		fmt.Sprint(s.Fruits.Pear),
		fmt.Sprint(s.Fruits.Blueberry),
		fmt.Sprintf("%d:%02d", secs/60, secs%60),
		s.CreatedAt.Format("Jan 02 15:04"),
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.modes)) % len(m.modes)
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	scores := boxStyle.Render(m.renderScores())
	if m.wide() {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			lipgloss.JoinHorizontal(lipgloss.Top,
				scores, "  ",
				boxStyle.Width(statsPanelWidth).Render(m.renderStats()),
			)))
	} else {
		if line := m.statsLine(); line != "" {
			b.WriteString(centerText(dimStyle.Render(line), m.width))
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, scores))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, info := range m.modes {
		if i == m.cursor {
			tabs[i] = accentStyle.Render("[ " + info.Title + " ]")
		} else {
			tabs[i] = dimStyle.Render("  " + info.Title + "  ")
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) renderScores() string {
	if len(m.scores) == 0 {
		return dimStyle.Italic(true).Padding(2, 4).Render("No scores recorded yet.\nPlay a round to set a high score!")
	}
	return m.table.View()
}

// renderStats draws the lifetime totals of the mode with the fruit tally
// in fruit colors.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return dimStyle.Render("No games yet")
	}
	s := m.stats

	var b strings.Builder
	b.WriteString(accentStyle.Render("Totals"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%-11s %6d\n", "Games", s.GamesCount)
	fmt.Fprintf(&b, "%-11s %6d\n", "Best", s.HighScore)
	fmt.Fprintf(&b, "%-11s %6.0f\n", "Average", s.AvgScore)
	fmt.Fprintf(&b, "%-11s %6d\n", "Best wave", s.BestWave)
	b.WriteString("\n")

	counts := []int{s.Fruits.Apple, s.Fruits.Orange, s.Fruits.Pear, s.Fruits.Blueberry}
	for i, fs := range fruitStyles {
		b.WriteString(fs.style.Render(fmt.Sprintf("%-11s %6d", fs.name, counts[i])))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%-11s %6d", "Fruit", s.Fruits.Total())

	if !s.LastPlayed.IsZero() {
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Last played " + s.LastPlayed.Format("Jan 02 15:04")))
	}
	return b.String()
}

// statsLine is the one-line summary used on narrow screens.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	s := m.stats
	return fmt.Sprintf("%d games  |  best wave %d  |  %d fruit caught",
		s.GamesCount, s.BestWave, s.Fruits.Total())
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen opened on gameID.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, gameID string, width, height, tickRate int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height, tickRate)
	model.SelectMode(gameID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
