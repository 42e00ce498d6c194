package sim

import (
	"math"

	"github.com/vovakirdan/fruit-breaker/internal/core"
)

// Ball is the bouncing ball. X and Y are the centre of the ball.
type Ball struct {
	X, Y     float64
	DX, DY   float64
	Radius   float64
	Launched bool
}

// NewBall creates a parked ball with the default launch velocity.
func NewBall(radius float64) *Ball {
	return &Ball{DX: DefaultDX, DY: DefaultDY, Radius: radius}
}

// Advance moves the ball by one tick of velocity. A parked ball stays put.
func (b *Ball) Advance() {
	if !b.Launched {
		return
	}
	b.X += b.DX
	b.Y += b.DY
}

// ReflectHorizontal negates the horizontal velocity.
func (b *Ball) ReflectHorizontal() {
	b.DX = -b.DX
}

// ReflectVertical negates the vertical velocity.
func (b *Ball) ReflectVertical() {
	b.DY = -b.DY
}

// Reposition moves the ball centre to (x, y).
func (b *Ball) Reposition(x, y float64) {
	b.X = x
	b.Y = y
}

// RelaunchFrom parks the ball just above the paddle centre with the default
// velocity, waiting for a launch command.
func (b *Ball) RelaunchFrom(p *Paddle) {
	b.X = p.CenterX()
	b.Y = p.Y - 2*b.Radius
	b.DX = DefaultDX
	b.DY = DefaultDY
	b.Launched = false
}

// Launch releases a parked ball.
func (b *Ball) Launch() {
	b.Launched = true
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.RectF {
	return core.NewRectF(b.X-b.Radius, b.Y-b.Radius, 2*b.Radius, 2*b.Radius)
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}
