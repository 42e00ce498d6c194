package sim

import (
	"math"

	"github.com/vovakirdan/fruit-breaker/internal/core"
)

// PaddleView is the read-only paddle state handed to renderers.
type PaddleView struct {
	Bounds        core.RectF
	Collision     core.RectF
	Collection    core.RectF
	MegaRemaining int
}

// View is a read-only copy of everything a renderer needs for one frame.
// Mutating it does not affect the game.
type View struct {
	Ball     Ball
	Paddle   PaddleView
	Bricks   [][]Brick
	Pickups  []Pickup
	Stats    Stats
	State    State
	Mode     Mode
	TimeLeft int
	Banner   int // Ticks left on the "Wave N" banner
	Debug    bool
	Tick     uint64
	ScreenW  float64
	ScreenH  float64
}

// View returns the current render snapshot.
func (g *Game) View() View {
	bricks := make([][]Brick, len(g.grid))
	for row := range g.grid {
		bricks[row] = append([]Brick(nil), g.grid[row]...)
	}
	return View{
		Ball: *g.ball,
		Paddle: PaddleView{
			Bounds:        g.paddle.Bounds(),
			Collision:     g.paddle.CollisionBounds(),
			Collection:    g.paddle.CollectionBounds(),
			MegaRemaining: g.paddle.MegaRemaining(),
		},
		Bricks:   bricks,
		Pickups:  append([]Pickup(nil), g.pickups...),
		Stats:    g.stats,
		State:    g.state,
		Mode:     g.cfg.Mode,
		TimeLeft: g.timeLeft,
		Banner:   g.banner,
		Debug:    g.debug,
		Tick:     g.tick,
		ScreenW:  g.cfg.ScreenW,
		ScreenH:  g.cfg.ScreenH,
	}
}

// Snapshot contains the complete game state for determinism checks.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick     uint64
	State    int
	Score    int
	Lives    int
	Wave     int
	Fruits   [4]int
	TimeLeft int

	// Ball: X, Y, DX, DY as float bits
	Ball     [4]uint64
	Launched bool

	PaddleX    uint64
	PaddleMega int

	// Brick states (row-major): Variant, CurrentHits, Broken
	BrickData []int

	// Pickups: Kind, X bits, Y bits
	PickupData []uint64

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, 0, g.cfg.Rows*g.cfg.Cols*3)
	for row := range g.grid {
		for _, b := range g.grid[row] {
			broken := 0
			if b.Broken {
				broken = 1
			}
			brickData = append(brickData, int(b.Variant), b.CurrentHits, broken)
		}
	}

	pickupData := make([]uint64, 0, len(g.pickups)*3)
	for _, p := range g.pickups {
		pickupData = append(pickupData,
			uint64(p.kind), //#nosec G115 -- kind is a small enum
			math.Float64bits(p.X),
			math.Float64bits(p.Y))
	}

	var rngState uint64
	if r, ok := g.rng.(*SimpleRNG); ok {
		rngState = r.State()
	}

	f := g.stats.Fruits
	return Snapshot{
		Tick:     g.tick,
		State:    int(g.state),
		Score:    g.stats.Score,
		Lives:    g.stats.Lives,
		Wave:     g.stats.Wave,
		Fruits:   [4]int{f.Apple, f.Orange, f.Pear, f.Blueberry},
		TimeLeft: g.timeLeft,
		Ball: [4]uint64{
			math.Float64bits(g.ball.X),
			math.Float64bits(g.ball.Y),
			math.Float64bits(g.ball.DX),
			math.Float64bits(g.ball.DY),
		},
		Launched:   g.ball.Launched,
		PaddleX:    math.Float64bits(g.paddle.X),
		PaddleMega: g.paddle.MegaRemaining(),
		BrickData:  brickData,
		PickupData: pickupData,
		RNGState:   rngState,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TimeLeft) //#nosec G115 -- hash computation

	for _, v := range snap.Fruits {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Ball {
		h = h*31 + v
	}
	if snap.Launched {
		h = h*31 + 1
	}
	h = h*31 + snap.PaddleX
	h = h*31 + uint64(snap.PaddleMega) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PickupData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState
	return h
}
