package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FruitCounts holds the per-fruit collection counters of a session.
type FruitCounts struct {
	Apple     int `yaml:"apple"`
	Orange    int `yaml:"orange"`
	Pear      int `yaml:"pear"`
	Blueberry int `yaml:"blueberry"`
}

// Total returns the number of fruits collected.
func (f FruitCounts) Total() int {
	return f.Apple + f.Orange + f.Pear + f.Blueberry
}

// GameState is returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int
	Lives    int
	Wave     int
	Fruits   FruitCounts
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
