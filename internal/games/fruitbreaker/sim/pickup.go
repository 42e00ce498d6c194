package sim

import "github.com/vovakirdan/fruit-breaker/internal/core"

// PickupKind identifies what a falling pickup grants.
type PickupKind int

const (
	PickupNone PickupKind = iota
	PickupApple
	PickupOrange
	PickupPear
	PickupBlueberry
	PickupExtraLife
	PickupMegaBasket
)

// Pickup is a falling collectible spawned from a broken brick.
type Pickup struct {
	X, Y  float64 // Top-left corner
	Size  float64
	Speed float64
	kind  PickupKind
}

// NewPickup creates a pickup centred on (cx, cy).
func NewPickup(kind PickupKind, cx, cy, size, speed float64) Pickup {
	return Pickup{X: cx - size/2, Y: cy - size/2, Size: size, Speed: speed, kind: kind}
}

// Kind returns the pickup kind.
func (p *Pickup) Kind() PickupKind {
	return p.kind
}

// Advance moves the pickup down by one tick.
func (p *Pickup) Advance() {
	p.Y += p.Speed
}

// Bounds returns the pickup rectangle.
func (p *Pickup) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Size, p.Size)
}

type pickupEffect struct {
	name   string
	score  int
	count  func(*core.FruitCounts)
	effect func(*Game)
	cue    Cue
}

var pickupEffects = map[PickupKind]pickupEffect{
	PickupApple: {
		name: "apple", score: 10, cue: CueFruitCollected,
		count: func(f *core.FruitCounts) { f.Apple++ },
	},
	PickupOrange: {
		name: "orange", score: 20, cue: CueFruitCollected,
		count: func(f *core.FruitCounts) { f.Orange++ },
	},
	PickupPear: {
		name: "pear", score: 30, cue: CueFruitCollected,
		count: func(f *core.FruitCounts) { f.Pear++ },
	},
	PickupBlueberry: {
		name: "blueberry", score: 30, cue: CueFruitCollected,
		count: func(f *core.FruitCounts) { f.Blueberry++ },
	},
	PickupExtraLife: {
		name: "extra-life", cue: CueHeartCollected,
		effect: func(g *Game) { g.stats.AddLife() },
	},
	PickupMegaBasket: {
		name: "mega-basket", cue: CueMegaBasketActivated,
		effect: func(g *Game) { g.paddle.ActivateMegaEffect(g.cfg.MegaTicks) },
	},
}

// String returns the pickup name.
func (k PickupKind) String() string {
	if e, ok := pickupEffects[k]; ok {
		return e.name
	}
	return "none"
}
