package sim

import "math"

const eps = 1e-9

// fixedRNG replays a list of values, repeating the last one.
type fixedRNG struct {
	vals []float64
	i    int
}

func (r *fixedRNG) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// newRunningGame returns a game whose ball has been launched.
func newRunningGame(cfg Config, rng Random) *Game {
	g := New(cfg, rng)
	g.apply(Launch())
	return g
}

// clearGrid replaces the grid with a single row of the given bricks.
func clearGrid(g *Game, bricks ...Brick) {
	g.grid = [][]Brick{bricks}
}
