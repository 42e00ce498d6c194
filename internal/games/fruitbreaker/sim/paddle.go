package sim

import "github.com/vovakirdan/fruit-breaker/internal/core"

// Direction is a horizontal paddle direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Paddle is the player-controlled basket at the bottom of the playfield.
// X is the left edge of the effective (possibly widened) paddle.
type Paddle struct {
	X, Y      float64
	BaseWidth float64
	Height    float64
	Speed     float64

	screenW        float64
	inset          float64
	collectMargin  float64
	collectLift    float64
	megaMultiplier float64
	megaRemaining  int

	left, right bool
}

// NewPaddle creates a paddle centred horizontally on the playfield.
func NewPaddle(cfg Config) *Paddle {
	return &Paddle{
		X:              float64(int((cfg.ScreenW - cfg.PaddleW) / 2)),
		Y:              cfg.PaddleY,
		BaseWidth:      cfg.PaddleW,
		Height:         cfg.PaddleH,
		Speed:          cfg.PaddleSpeed,
		screenW:        cfg.ScreenW,
		inset:          cfg.CollisionInset,
		collectMargin:  cfg.CollectMargin,
		collectLift:    cfg.CollectLift,
		megaMultiplier: cfg.MegaMultiplier,
	}
}

// SetDirection records whether a direction key is held.
func (p *Paddle) SetDirection(dir Direction, active bool) {
	switch dir {
	case DirLeft:
		p.left = active
	case DirRight:
		p.right = active
	}
}

// Held reports the held-direction flags.
func (p *Paddle) Held() (left, right bool) {
	return p.left, p.right
}

// Advance applies one tick of held movement, counts down the mega effect and
// clamps the paddle to the playfield.
func (p *Paddle) Advance() {
	if p.left {
		p.X -= p.Speed
	}
	if p.right {
		p.X += p.Speed
	}

	if p.megaRemaining > 0 {
		before := p.Width()
		p.megaRemaining--
		if p.megaRemaining == 0 {
			// Shrink around the centre.
			p.X += (before - p.Width()) / 2
		}
	}

	p.clamp()
}

// ActivateMegaEffect widens the paddle for the given number of ticks.
// A second activation refreshes the duration instead of stacking.
func (p *Paddle) ActivateMegaEffect(ticks int) {
	if ticks <= 0 {
		return
	}
	before := p.Width()
	p.megaRemaining = ticks
	p.X -= (p.Width() - before) / 2
	p.clamp()
}

// MegaRemaining returns the ticks left on the mega effect.
func (p *Paddle) MegaRemaining() int {
	return p.megaRemaining
}

// Width returns the effective width, including the mega effect.
func (p *Paddle) Width() float64 {
	if p.megaRemaining > 0 {
		return p.BaseWidth * p.megaMultiplier
	}
	return p.BaseWidth
}

// CenterX returns the horizontal centre of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width()/2
}

// Bounds returns the visible paddle rectangle.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width(), p.Height)
}

// CollisionBounds returns the narrower rectangle the ball bounces off.
func (p *Paddle) CollisionBounds() core.RectF {
	return p.Bounds().Inset(p.inset, 0)
}

// CollectionBounds returns the wider rectangle that captures pickups.
func (p *Paddle) CollectionBounds() core.RectF {
	r := p.Bounds().Inset(-p.collectMargin, 0)
	r.Y -= p.collectLift
	r.H += p.collectLift
	return r
}

func (p *Paddle) clamp() {
	p.X = core.ClampF(p.X, 0, max(0, p.screenW-p.Width()))
}
