package sim

import "github.com/vovakirdan/fruit-breaker/internal/core"

// State is the session state.
type State int

const (
	StateNotStarted State = iota // Ball parked, waiting for launch
	StateRunning
	StatePaused
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game owns all simulation state for one session. It is not safe for
// concurrent use; a single loop pushes events and calls Step.
type Game struct {
	cfg     Config
	rng     Random
	factory *Factory

	ball    *Ball
	paddle  *Paddle
	grid    [][]Brick
	pickups []Pickup
	stats   Stats
	state   State
	queue   eventQueue

	tick       uint64
	timeLeft   int // Seconds, timed mode only
	clockTicks int
	banner     int
	debug      bool

	cues     CueSink
	overSink GameOverSink
	report   *GameOverReport
}

// New creates a game and starts a fresh session. A nil rng falls back to
// a fixed-seed generator.
func New(cfg Config, rng Random) *Game {
	cfg = cfg.sanitized()
	if rng == nil {
		rng = NewSimpleRNG(1)
	}
	g := &Game{
		cfg:     cfg,
		rng:     rng,
		factory: NewFactory(cfg, rng),
	}
	g.Reset()
	return g
}

// SetCueSink installs the receiver of sound cues.
func (g *Game) SetCueSink(s CueSink) {
	g.cues = s
}

// SetGameOverSink installs the receiver of the game-over report.
func (g *Game) SetGameOverSink(s GameOverSink) {
	g.overSink = s
}

// Reset starts a new session: full lives, the starting wave, a fresh grid
// and the ball parked on a centred paddle.
func (g *Game) Reset() {
	g.stats = NewStats(g.cfg)
	g.paddle = NewPaddle(g.cfg)
	g.ball = NewBall(g.cfg.BallRadius())
	g.ball.RelaunchFrom(g.paddle)
	g.grid = g.factory.BuildGrid(g.stats.Wave)
	g.pickups = nil
	g.queue = eventQueue{}
	g.state = StateNotStarted
	g.tick = 0
	g.timeLeft = g.cfg.TimeLimitSecs
	g.clockTicks = 0
	g.banner = g.cfg.BannerTicks
	g.report = nil
}

// Push queues an input event for the next tick.
func (g *Game) Push(ev Event) {
	g.queue.push(ev)
}

// Step drains queued input and advances the simulation by one tick.
func (g *Game) Step() StepEvents {
	var ev StepEvents

	for _, in := range g.queue.drain() {
		g.apply(in)
	}

	if g.state == StateGameOver {
		return ev
	}
	g.tick++

	if g.state != StatePaused && g.banner > 0 {
		g.banner--
	}
	if g.state != StateRunning {
		return ev
	}

	g.paddle.Advance()
	g.ball.Advance()
	ResolveWalls(g.ball, g.cfg.ScreenW)
	ResolvePaddle(g.ball, g.paddle)

	if contact, ok := ResolveBricks(g.ball, g.grid); ok {
		g.onBrickHit(contact, &ev)
	}

	g.updatePickups(&ev)

	if g.ball.Y > g.cfg.ScreenH {
		ev.LifeLost = true
		if g.stats.LoseLife() {
			g.endSession(&ev)
			return ev
		}
		g.ball.RelaunchFrom(g.paddle)
		g.state = StateNotStarted
	}

	if g.allBroken() {
		g.nextWave()
		ev.WaveCleared = true
	}

	if g.cfg.Mode == ModeTimed && g.state == StateRunning {
		g.clockTicks++
		if g.clockTicks >= g.cfg.TickRate {
			g.clockTicks = 0
			g.timeLeft--
			if g.timeLeft <= 0 {
				g.timeLeft = 0
				g.endSession(&ev)
			}
		}
	}

	return ev
}

func (g *Game) apply(in Event) {
	switch in.Kind {
	case EventMoveLeft:
		g.paddle.SetDirection(DirLeft, in.Active)
	case EventMoveRight:
		g.paddle.SetDirection(DirRight, in.Active)
	case EventLaunch:
		if g.state == StateNotStarted {
			g.ball.Launch()
			g.state = StateRunning
		}
	case EventTogglePause:
		switch g.state {
		case StateRunning:
			g.state = StatePaused
		case StatePaused:
			g.state = StateRunning
		}
	case EventToggleDebug:
		g.debug = !g.debug
	}
}

func (g *Game) onBrickHit(contact BrickContact, ev *StepEvents) {
	brick := &g.grid[contact.Row][contact.Col]
	ev.BrickHit = true
	if brick.Penalty {
		g.emit(CuePeachHit)
	} else {
		g.emit(CueBrickHit)
	}
	if !contact.Broken {
		return
	}

	ev.BrickBroken = true
	ev.BrokenVariant = brick.Variant
	g.stats.AddScore(brick.Points)

	if g.rollDrop(brick.Drop) {
		cx, cy := brick.Center()
		g.pickups = append(g.pickups, NewPickup(brick.Pickup, cx, cy, g.cfg.PickupSize, g.cfg.PickupSpeed))
		ev.Spawned = append(ev.Spawned, brick.Pickup)
	}
}

func (g *Game) rollDrop(policy DropPolicy) bool {
	switch policy {
	case DropAlways:
		return true
	case DropChance:
		return g.rng.Float64() < g.cfg.DropChance
	default:
		return false
	}
}

func (g *Game) updatePickups(ev *StepEvents) {
	kept := g.pickups[:0]
	for i := range g.pickups {
		pk := g.pickups[i]
		pk.Advance()
		if Captures(&pk, g.paddle) {
			g.collect(pk.Kind())
			ev.Captured = append(ev.Captured, pk.Kind())
			continue
		}
		if pk.Y >= g.cfg.ScreenH {
			continue
		}
		kept = append(kept, pk)
	}
	g.pickups = kept
}

func (g *Game) collect(kind PickupKind) {
	e, ok := pickupEffects[kind]
	if !ok {
		return
	}
	if e.count != nil {
		e.count(&g.stats.Fruits)
	}
	g.stats.AddScore(e.score)
	if e.effect != nil {
		e.effect(g)
	}
	g.emit(e.cue)
}

func (g *Game) allBroken() bool {
	for row := range g.grid {
		for col := range g.grid[row] {
			if !g.grid[row][col].Broken {
				return false
			}
		}
	}
	return true
}

func (g *Game) nextWave() {
	g.stats.Wave++
	g.grid = g.factory.BuildGrid(g.stats.Wave)
	g.ball.RelaunchFrom(g.paddle)
	g.state = StateNotStarted
	g.banner = g.cfg.BannerTicks
}

func (g *Game) endSession(ev *StepEvents) {
	g.state = StateGameOver
	ev.GameOver = true
	r := GameOverReport{
		Mode:   g.cfg.Mode,
		Score:  g.stats.Score,
		Wave:   g.stats.Wave,
		Fruits: g.stats.Fruits,
		Ticks:  g.tick,
	}
	g.report = &r
	if g.overSink != nil {
		g.overSink.GameOver(r)
	}
}

func (g *Game) emit(c Cue) {
	if g.cues != nil {
		g.cues.Cue(c)
	}
}

// State returns the session state.
func (g *Game) State() State {
	return g.state
}

// Stats returns a copy of the session counters.
func (g *Game) Stats() Stats {
	return g.stats
}

// Report returns the game-over report once the session has ended.
func (g *Game) Report() (GameOverReport, bool) {
	if g.report == nil {
		return GameOverReport{}, false
	}
	return *g.report, true
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}

// TimeLeft returns the remaining seconds in timed mode.
func (g *Game) TimeLeft() int {
	return g.timeLeft
}

// GameState converts the session into the platform-level summary.
func (g *Game) GameState() core.GameState {
	return core.GameState{
		Score:    g.stats.Score,
		Lives:    g.stats.Lives,
		Wave:     g.stats.Wave,
		Fruits:   g.stats.Fruits,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}
