package sim

import (
	"math"

	"github.com/vovakirdan/fruit-breaker/internal/core"
)

// maxBounceAngle is the steepest paddle deflection from vertical.
const maxBounceAngle = math.Pi / 4

// ResolveWalls reflects the ball off the left, right and top walls on
// touch, then moves it back inside so it cannot touch the same wall again
// before it has advanced. There is no bottom wall.
func ResolveWalls(b *Ball, width float64) bool {
	hit := false
	if b.X-b.Radius <= 0 {
		b.ReflectHorizontal()
		b.X = b.Radius
		hit = true
	} else if b.X+b.Radius >= width {
		b.ReflectHorizontal()
		b.X = width - b.Radius
		hit = true
	}
	if b.Y-b.Radius <= 0 {
		b.ReflectVertical()
		b.Y = b.Radius
		hit = true
	}
	return hit
}

// ResolvePaddle bounces the ball off the paddle's collision rectangle.
// The outgoing angle depends on where the ball struck relative to the paddle
// centre, the speed is preserved, and the ball is moved on top of the paddle.
func ResolvePaddle(b *Ball, p *Paddle) bool {
	if !b.Bounds().Intersects(p.CollisionBounds()) {
		return false
	}

	speed := b.Speed()
	if speed == 0 {
		speed = math.Hypot(DefaultDX, DefaultDY)
	}

	half := p.Width() / 2
	offset := 0.0
	if half > 0 {
		offset = core.ClampF((b.X-p.CenterX())/half, -1, 1)
	}
	angle := offset * maxBounceAngle

	b.DX = speed * math.Sin(angle)
	b.DY = -speed * math.Cos(angle)
	b.Y = p.Y - b.Radius
	return true
}

// BrickContact identifies the brick hit during a tick.
type BrickContact struct {
	Row, Col int
	Broken   bool
}

// ResolveBricks scans unbroken bricks in row-major order and resolves the
// first one the ball overlaps. At most one brick is hit per tick. A contact
// wider than it is tall reflects vertically, otherwise horizontally.
func ResolveBricks(b *Ball, grid [][]Brick) (BrickContact, bool) {
	ball := b.Bounds()
	for row := range grid {
		for col := range grid[row] {
			brick := &grid[row][col]
			if brick.Broken {
				continue
			}
			rect := brick.Bounds()
			if !ball.Intersects(rect) {
				continue
			}

			broken := brick.Hit()
			overlap := ball.Intersection(rect)
			if overlap.W > overlap.H {
				b.ReflectVertical()
			} else {
				b.ReflectHorizontal()
			}
			return BrickContact{Row: row, Col: col, Broken: broken}, true
		}
	}
	return BrickContact{}, false
}

// Captures reports whether the paddle catches the pickup.
func Captures(pk *Pickup, p *Paddle) bool {
	return pk.Bounds().Intersects(p.CollectionBounds())
}
