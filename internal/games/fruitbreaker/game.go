// Package fruitbreaker adapts the Fruit Breaker simulation to the arcade
// platform: it loads configuration, maps platform input to simulation
// events and draws the playfield into a character screen.
package fruitbreaker

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-breaker/internal/config"
	"github.com/vovakirdan/fruit-breaker/internal/core"
	"github.com/vovakirdan/fruit-breaker/internal/games/fruitbreaker/sim"
	"github.com/vovakirdan/fruit-breaker/internal/registry"
)

// Registered mode IDs.
const (
	IDClassic = "fruitbreaker"
	IDTimed   = "fruitbreaker_timed"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// cueSink receives sound cues from every new session.
var cueSink sim.CueSink

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to normal and return the parse error.
func SetDifficultyPreset(name string) error {
	p, err := config.ParsePreset(name)
	if err != nil {
		difficultyPreset = config.DifficultyNormal
		return err
	}
	difficultyPreset = p
	return nil
}

// SetCueSink installs the sound cue receiver used by sessions created
// afterwards. Nil disables sound.
func SetCueSink(s sim.CueSink) {
	cueSink = s
}

// SetLogger replaces the package logger. Nil silences logging.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game wraps a simulation session behind the registry.Game interface.
type Game struct {
	mode    sim.Mode
	runtime core.RuntimeConfig
	sim     *sim.Game

	heldLeft  bool
	heldRight bool

	minScreenW int
	minScreenH int
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: sim.ModeClassic, minScreenW: 40, minScreenH: 20}
}

// NewTimed creates a timed mode game.
func NewTimed() *Game {
	return &Game{mode: sim.ModeTimed, minScreenW: 40, minScreenH: 20}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == sim.ModeTimed {
		return IDTimed
	}
	return IDClassic
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == sim.ModeTimed {
		return "Fruit Breaker (Timed)"
	}
	return "Fruit Breaker"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == sim.ModeTimed {
		return "Beat the clock: score as much as you can before time runs out"
	}
	return "Break fruit bricks, catch the falling fruit, survive the waves"
}

// Reset loads configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.heldLeft, g.heldRight = false, false

	cfg, err := config.LoadFruitBreaker(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}
	config.ApplyPreset(&cfg, difficultyPreset)

	g.sim = sim.New(SimConfig(cfg, g.mode, runtime.TickRate), sim.NewSimpleRNG(runtime.Seed))
	if cueSink != nil {
		g.sim.SetCueSink(cueSink)
	}
	g.sim.SetGameOverSink(sim.GameOverFunc(func(r sim.GameOverReport) {
		logger.Info("session over", "mode", r.Mode, "score", r.Score, "wave", r.Wave,
			"fruits", r.Fruits.Total(), "ticks", r.Ticks)
	}))

	logger.Debug("session started", "mode", g.mode, "difficulty", difficultyPreset,
		"seed", runtime.Seed, "screen", [2]int{runtime.ScreenW, runtime.ScreenH})
}

// SimConfig converts the file configuration into simulation parameters.
func SimConfig(cfg config.FruitBreakerConfig, mode sim.Mode, tickRate int) sim.Config {
	return sim.Config{
		ScreenW:        cfg.Playfield.Width,
		ScreenH:        cfg.Playfield.Height,
		Rows:           cfg.Grid.Rows,
		Cols:           cfg.Grid.Cols,
		BrickW:         cfg.Grid.BrickWidth,
		BrickH:         cfg.Grid.BrickHeight,
		BrickSpacingX:  cfg.Grid.SpacingX,
		BrickSpacingY:  cfg.Grid.SpacingY,
		GridTop:        cfg.Grid.Top,
		PaddleW:        cfg.Paddle.Width,
		PaddleH:        cfg.Paddle.Height,
		PaddleY:        cfg.Paddle.Y,
		PaddleSpeed:    cfg.Paddle.Speed,
		CollisionInset: cfg.Paddle.CollisionInset,
		CollectMargin:  cfg.Paddle.CollectMargin,
		CollectLift:    cfg.Paddle.CollectLift,
		MegaTicks:      cfg.Mega.DurationTicks,
		MegaMultiplier: cfg.Mega.Multiplier,
		BallSize:       cfg.Ball.Size,
		PickupSize:     cfg.Pickups.Size,
		PickupSpeed:    cfg.Pickups.Speed,
		DropChance:     cfg.Pickups.DropChance,
		MaxLives:       cfg.Gameplay.Lives,
		StartWave:      cfg.Gameplay.StartWave,
		Mode:           mode,
		TimeLimitSecs:  cfg.Gameplay.TimeLimitSecs,
		TickRate:       tickRate,
		BannerTicks:    cfg.Gameplay.BannerTicks,
	}
}

// Step maps one frame of platform input to simulation events and advances
// the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(core.DefaultConfig())
	}

	if left := in.Has(core.ActionLeft); left != g.heldLeft {
		g.heldLeft = left
		g.sim.Push(sim.MoveLeft(left))
	}
	if right := in.Has(core.ActionRight); right != g.heldRight {
		g.heldRight = right
		g.sim.Push(sim.MoveRight(right))
	}
	if in.Has(core.ActionLaunch) {
		g.sim.Push(sim.Launch())
	}
	if in.Has(core.ActionPause) {
		g.sim.Push(sim.TogglePause())
	}
	if in.Has(core.ActionDebug) {
		g.sim.Push(sim.ToggleDebug())
	}

	ev := g.sim.Step()
	g.logEvents(ev)

	return core.StepResult{State: g.State()}
}

func (g *Game) logEvents(ev sim.StepEvents) {
	if ev.BrickBroken {
		logger.Debug("brick broken", "variant", ev.BrokenVariant)
	}
	for _, k := range ev.Captured {
		logger.Debug("pickup captured", "kind", k)
	}
	if ev.LifeLost {
		logger.Debug("life lost", "lives", g.sim.Stats().Lives)
	}
	if ev.WaveCleared {
		logger.Debug("wave cleared", "next", g.sim.Stats().Wave)
	}
}

// State returns the current session summary.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return g.sim.GameState()
}

// Report returns the game-over report once the session has ended.
func (g *Game) Report() (sim.GameOverReport, bool) {
	if g.sim == nil {
		return sim.GameOverReport{}, false
	}
	return g.sim.Report()
}

// View exposes the simulation render snapshot.
func (g *Game) View() sim.View {
	if g.sim == nil {
		g.Reset(core.DefaultConfig())
	}
	return g.sim.View()
}

// Snapshot returns the simulation snapshot for determinism checks.
func (g *Game) Snapshot() sim.Snapshot {
	if g.sim == nil {
		g.Reset(core.DefaultConfig())
	}
	return g.sim.Snapshot()
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDTimed, func() registry.Game {
		return NewTimed()
	})
}
