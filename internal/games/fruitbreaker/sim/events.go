package sim

import "github.com/vovakirdan/fruit-breaker/internal/core"

// EventKind is a discrete input event fed to the game between ticks.
type EventKind int

const (
	EventMoveLeft EventKind = iota
	EventMoveRight
	EventLaunch
	EventTogglePause
	EventToggleDebug
)

// Event is one queued input. Active is only meaningful for move events.
type Event struct {
	Kind   EventKind
	Active bool
}

// MoveLeft returns a held/released left event.
func MoveLeft(active bool) Event { return Event{Kind: EventMoveLeft, Active: active} }

// MoveRight returns a held/released right event.
func MoveRight(active bool) Event { return Event{Kind: EventMoveRight, Active: active} }

// Launch returns a launch event.
func Launch() Event { return Event{Kind: EventLaunch} }

// TogglePause returns a pause toggle event.
func TogglePause() Event { return Event{Kind: EventTogglePause} }

// ToggleDebug returns a debug overlay toggle event.
func ToggleDebug() Event { return Event{Kind: EventToggleDebug} }

// Cue is a named sound effect emitted by the simulation.
type Cue int

const (
	CueBrickHit Cue = iota
	CuePeachHit
	CueFruitCollected
	CueHeartCollected
	CueMegaBasketActivated
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueBrickHit:
		return "brick_hit"
	case CuePeachHit:
		return "peach_hit"
	case CueFruitCollected:
		return "fruit_collected"
	case CueHeartCollected:
		return "heart_collected"
	case CueMegaBasketActivated:
		return "mega_basket_activated"
	default:
		return "unknown"
	}
}

// CueSink receives sound cues. Implementations must not block.
type CueSink interface {
	Cue(c Cue)
}

// CueFunc adapts a function to CueSink.
type CueFunc func(Cue)

// Cue calls f(c).
func (f CueFunc) Cue(c Cue) { f(c) }

// GameOverReport is the final payload of a session.
type GameOverReport struct {
	Mode   Mode
	Score  int
	Wave   int
	Fruits core.FruitCounts
	Ticks  uint64
}

// GameOverSink is notified once when a session ends.
type GameOverSink interface {
	GameOver(r GameOverReport)
}

// GameOverFunc adapts a function to GameOverSink.
type GameOverFunc func(GameOverReport)

// GameOver calls f(r).
func (f GameOverFunc) GameOver(r GameOverReport) { f(r) }

// StepEvents summarises what happened during one tick.
type StepEvents struct {
	BrickHit      bool
	BrickBroken   bool
	BrokenVariant Variant
	Spawned       []PickupKind
	Captured      []PickupKind
	LifeLost      bool
	WaveCleared   bool
	GameOver      bool
}
