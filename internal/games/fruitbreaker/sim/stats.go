package sim

import "github.com/vovakirdan/fruit-breaker/internal/core"

// Stats tracks the session counters.
type Stats struct {
	Score    int
	Lives    int
	MaxLives int
	Wave     int
	Fruits   core.FruitCounts
}

// NewStats returns the counters for a fresh session.
func NewStats(cfg Config) Stats {
	return Stats{
		Lives:    cfg.MaxLives,
		MaxLives: cfg.MaxLives,
		Wave:     cfg.StartWave,
	}
}

// AddScore applies a score delta. The score never goes below zero.
func (s *Stats) AddScore(delta int) {
	s.Score = max(0, s.Score+delta)
}

// AddLife grants one life up to the cap.
func (s *Stats) AddLife() {
	if s.Lives < s.MaxLives {
		s.Lives++
	}
}

// LoseLife removes one life and reports whether the session is over.
func (s *Stats) LoseLife() bool {
	s.Lives--
	return s.Lives <= 0
}
