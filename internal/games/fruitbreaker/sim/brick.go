package sim

import "github.com/vovakirdan/fruit-breaker/internal/core"

// Variant identifies a brick type.
type Variant int

const (
	VariantApple     Variant = iota // common, 1 hit
	VariantOrange                   // common, 1 hit
	VariantPear                     // mid, 2 hits
	VariantBlueberry                // rare, 3 hits
	VariantHeart                    // always drops an extra life
	VariantPlus                     // always drops a mega basket
	VariantPeach                    // penalty, never drops
)

// DropPolicy decides whether a broken brick spawns a pickup.
type DropPolicy int

const (
	DropChance DropPolicy = iota // Roll against Config.DropChance
	DropAlways
	DropNever
)

type variantDef struct {
	name    string
	hits    int
	points  int
	penalty bool
	drop    DropPolicy
	pickup  PickupKind
}

var variantDefs = [...]variantDef{
	VariantApple:     {name: "apple", hits: 1, points: 10, drop: DropChance, pickup: PickupApple},
	VariantOrange:    {name: "orange", hits: 1, points: 10, drop: DropChance, pickup: PickupOrange},
	VariantPear:      {name: "pear", hits: 2, points: 20, drop: DropChance, pickup: PickupPear},
	VariantBlueberry: {name: "blueberry", hits: 3, points: 30, drop: DropChance, pickup: PickupBlueberry},
	VariantHeart:     {name: "heart", hits: 1, points: 15, drop: DropAlways, pickup: PickupExtraLife},
	VariantPlus:      {name: "plus", hits: 1, points: 15, drop: DropAlways, pickup: PickupMegaBasket},
	VariantPeach:     {name: "peach", hits: 1, points: -10, penalty: true, drop: DropNever},
}

// String returns the fruit name of the variant.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantDefs) {
		return "unknown"
	}
	return variantDefs[v].name
}

// Brick is one cell of the wave grid.
type Brick struct {
	X, Y        float64
	W, H        float64
	Variant     Variant
	HitsNeeded  int
	CurrentHits int
	Broken      bool
	Points      int
	Penalty     bool
	Drop        DropPolicy
	Pickup      PickupKind
}

// NewBrick creates an unbroken brick of the given variant.
func NewBrick(v Variant, x, y, w, h float64) Brick {
	def := variantDefs[v]
	return Brick{
		X:          x,
		Y:          y,
		W:          w,
		H:          h,
		Variant:    v,
		HitsNeeded: def.hits,
		Points:     def.points,
		Penalty:    def.penalty,
		Drop:       def.drop,
		Pickup:     def.pickup,
	}
}

// Hit registers one hit and reports whether this hit broke the brick.
// Hits on a broken brick are ignored.
func (b *Brick) Hit() bool {
	if b.Broken {
		return false
	}
	b.CurrentHits++
	if b.CurrentHits >= b.HitsNeeded {
		b.CurrentHits = b.HitsNeeded
		b.Broken = true
		return true
	}
	return false
}

// Bounds returns the brick rectangle.
func (b *Brick) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Center returns the brick centre.
func (b *Brick) Center() (float64, float64) {
	return b.Bounds().Center()
}
