// Package sim is the fixed-tick simulation of Fruit Breaker: ball and paddle
// motion, collisions against walls, paddle and bricks, falling pickups, waves
// and game over. It performs no I/O and has no dependencies outside core, so
// every run is reproducible from a seed and an input sequence.
package sim

// Mode selects the session rules.
type Mode int

const (
	ModeClassic Mode = iota // Play until lives run out
	ModeTimed               // Play until lives run out or the clock reaches zero
)

// String returns the mode name used in logs and score storage.
func (m Mode) String() string {
	if m == ModeTimed {
		return "timed"
	}
	return "classic"
}

// Default launch velocity in pixels per tick.
const (
	DefaultDX = 2.0
	DefaultDY = -5.0
)

// Config holds playfield geometry and tunables. All distances are in
// playfield pixels, all durations in ticks unless noted.
type Config struct {
	ScreenW float64
	ScreenH float64

	Rows, Cols    int
	BrickW        float64
	BrickH        float64
	BrickSpacingX float64
	BrickSpacingY float64
	GridTop       float64

	PaddleW        float64
	PaddleH        float64
	PaddleY        float64
	PaddleSpeed    float64
	CollisionInset float64 // Shrinks the paddle on each side for ball bounce
	CollectMargin  float64 // Grows the paddle on each side for pickup capture
	CollectLift    float64 // Extra collection height above the paddle
	MegaTicks      int
	MegaMultiplier float64
	BallSize       float64
	PickupSize     float64
	PickupSpeed    float64
	DropChance     float64
	MaxLives       int
	StartWave      int
	Mode           Mode
	TimeLimitSecs  int
	TickRate       int
	BannerTicks    int
}

// DefaultConfig returns the standard 600x600 playfield with a 3x7 grid.
func DefaultConfig() Config {
	return Config{
		ScreenW: 600,
		ScreenH: 600,

		Rows:          3,
		Cols:          7,
		BrickW:        59.7,
		BrickH:        29.9,
		BrickSpacingX: 15,
		BrickSpacingY: 10,
		GridTop:       100,

		PaddleW:        122.3,
		PaddleH:        19.3,
		PaddleY:        550,
		PaddleSpeed:    6,
		CollisionInset: 8,
		CollectMargin:  12,
		CollectLift:    10,
		MegaTicks:      600,
		MegaMultiplier: 1.5,
		BallSize:       20.1,
		PickupSize:     30,
		PickupSpeed:    3,
		DropChance:     0.2,
		MaxLives:       3,
		StartWave:      1,
		Mode:           ModeClassic,
		TimeLimitSecs:  60,
		TickRate:       60,
		BannerTicks:    90,
	}
}

// BallRadius returns the integer radius derived from the ball diameter.
func (c Config) BallRadius() float64 {
	return float64(int(c.BallSize / 2))
}

// sanitized fills zero-valued fields from the defaults so a partially
// populated Config never yields a degenerate playfield.
func (c Config) sanitized() Config {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.Rows <= 0 {
		c.Rows = d.Rows
	}
	if c.Cols <= 0 {
		c.Cols = d.Cols
	}
	if c.BrickW <= 0 {
		c.BrickW = d.BrickW
	}
	if c.BrickH <= 0 {
		c.BrickH = d.BrickH
	}
	if c.PaddleW <= 0 {
		c.PaddleW = d.PaddleW
	}
	if c.PaddleH <= 0 {
		c.PaddleH = d.PaddleH
	}
	if c.PaddleY <= 0 {
		c.PaddleY = d.PaddleY
	}
	if c.PaddleSpeed <= 0 {
		c.PaddleSpeed = d.PaddleSpeed
	}
	if c.MegaMultiplier <= 0 {
		c.MegaMultiplier = d.MegaMultiplier
	}
	if c.BallSize <= 0 {
		c.BallSize = d.BallSize
	}
	if c.PickupSize <= 0 {
		c.PickupSize = d.PickupSize
	}
	if c.PickupSpeed <= 0 {
		c.PickupSpeed = d.PickupSpeed
	}
	if c.MaxLives <= 0 {
		c.MaxLives = d.MaxLives
	}
	if c.StartWave <= 0 {
		c.StartWave = d.StartWave
	}
	if c.TimeLimitSecs <= 0 {
		c.TimeLimitSecs = d.TimeLimitSecs
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	return c
}
