package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-breaker/internal/core"
	"github.com/vovakirdan/fruit-breaker/internal/games/fruitbreaker/sim"
	"github.com/vovakirdan/fruit-breaker/internal/registry"
	"github.com/vovakirdan/fruit-breaker/internal/storage"
)

// Options carries the services shared by every screen of a session.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger

	// Difficulties offered by the menu. Empty hides the selector.
	Difficulties []string
	Difficulty   string
	// OnDifficulty is called when the player picks another difficulty.
	OnDifficulty func(name string)
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// reporter is implemented by games that produce a game-over report.
type reporter interface {
	Report() (sim.GameOverReport, bool)
}

// Model is the Bubble Tea model for running one game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	held       HeldKeys
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	end        *EndResult // Set once per session at game over
	embedded   bool       // Inside a session: B returns to the menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		opts:       opts,
		config:     cfg,
		keys:       NewKeyMapper(),
		held:       NewHeldKeys(cfg.TickRate),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// playRows leaves the last terminal row for the key help line.
func playRows(height int) int {
	return max(1, height-1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.end != nil {
		return m.handleEndKey(action)
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.held.Press(action)
	case core.ActionBack:
		if m.embedded && m.gameState.Paused {
			m.backToMenu = true
		}
	case core.ActionNone, core.ActionRestart, core.ActionConfirm:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleEndKey handles the end screen: restart, back to menu or quit.
func (m Model) handleEndKey(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionRestart, core.ActionConfirm:
		m.restart()
		return m, tickCmd(m.config.TickRate)
	case core.ActionBack:
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.end = nil
	m.held.Release()
	m.inputFrame.Clear()
}

// handleTick processes simulation ticks. The tick loop stops at game over
// and restarts with the next session.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.end != nil || m.backToMenu {
		return m, nil
	}

	m.held.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.end = m.finish()
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// finish builds the end screen from the game-over report and records it.
func (m Model) finish() *EndResult {
	res := storage.Result{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Wave:   m.gameState.Wave,
		Fruits: m.gameState.Fruits,
	}
	if r, ok := m.game.(reporter); ok {
		if rep, ok := r.Report(); ok {
			res.Score, res.Wave, res.Fruits, res.Ticks = rep.Score, rep.Wave, rep.Fruits, rep.Ticks
		}
	}

	end := &EndResult{Title: m.game.Title(), Result: res, TickRate: m.config.TickRate}
	store := m.opts.Store
	if store == nil {
		return end
	}

	logger := m.opts.logger()
	best, err := store.HighScore(res.GameID)
	if err != nil {
		logger.Warn("could not read high score", "game", res.GameID, "err", err)
	}
	end.Best = max(best, res.Score)
	end.NewBest = res.Score > best

	if _, err := store.SaveResult(res); err != nil {
		logger.Warn("could not save result", "game", res.GameID, "err", err)
		return end
	}
	end.Saved = true
	return end
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".fruitbreaker", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.logger().Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.logger().Warn("could not save screenshot", "err", err)
		return
	}
	m.opts.logger().Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.end != nil {
		return renderEndScreen(*m.end, m.embedded, m.config.ScreenW, m.config.ScreenH)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + dimStyle.Render(m.help.View(m.keys.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// End returns the end screen data once the session is over.
func (m Model) End() (EndResult, bool) {
	if m.end == nil {
		return EndResult{}, false
	}
	return *m.end, true
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
