// Package config loads Fruit Breaker tunables from YAML.
package config

// FruitBreakerConfig holds all configurable parameters for Fruit Breaker.
// Distances are in playfield pixels, durations in ticks unless noted.
type FruitBreakerConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Grid      GridConfig      `yaml:"grid"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Ball      BallConfig      `yaml:"ball"`
	Pickups   PickupConfig    `yaml:"pickups"`
	Mega      MegaConfig      `yaml:"mega"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
}

// PlayfieldConfig defines the logical playfield size.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GridConfig defines the brick grid layout.
type GridConfig struct {
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	BrickWidth  float64 `yaml:"brick_width"`
	BrickHeight float64 `yaml:"brick_height"`
	SpacingX    float64 `yaml:"spacing_x"`
	SpacingY    float64 `yaml:"spacing_y"`
	Top         float64 `yaml:"top"` // Y of the first row
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Y              float64 `yaml:"y"`
	Speed          float64 `yaml:"speed"`           // Pixels per tick while a key is held
	CollisionInset float64 `yaml:"collision_inset"` // Ball bounce rect shrink per side
	CollectMargin  float64 `yaml:"collect_margin"`  // Pickup capture rect growth per side
	CollectLift    float64 `yaml:"collect_lift"`    // Pickup capture rect growth upward
}

// BallConfig defines the ball.
type BallConfig struct {
	Size float64 `yaml:"size"` // Diameter
}

// PickupConfig defines falling pickups.
type PickupConfig struct {
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"`
	DropChance float64 `yaml:"drop_chance"` // For ordinary fruit bricks
}

// MegaConfig defines the mega-basket effect.
type MegaConfig struct {
	DurationTicks int     `yaml:"duration_ticks"`
	Multiplier    float64 `yaml:"multiplier"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives         int `yaml:"lives"`
	StartWave     int `yaml:"start_wave"`
	TimeLimitSecs int `yaml:"time_limit_secs"` // Timed mode only
	BannerTicks   int `yaml:"banner_ticks"`
}
