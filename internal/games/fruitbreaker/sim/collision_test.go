package sim

import (
	"math"
	"testing"
)

func TestWallReflection(t *testing.T) {
	tests := []struct {
		name           string
		x, y, dx, dy   float64
		wantDX, wantDY float64
		wantX, wantY   float64
	}{
		{"left edge moving left", 10, 300, -2, -5, 2, -5, 10, 300},
		{"right edge moving right", 590, 300, 2, -5, -2, -5, 590, 300},
		{"top edge moving up", 300, 10, 2, -5, 2, 5, 300, 10},
		{"top-left corner", 5, 5, -2, -5, 2, 5, 10, 10},
		{"touch alone reflects", 10, 300, 2, -5, -2, -5, 10, 300},
		{"past the right wall", 597, 300, 2, -5, -2, -5, 590, 300},
		{"middle of playfield", 300, 300, -2, -5, -2, -5, 300, 300},
		{"bottom is open", 300, 595, 2, 5, 2, 5, 300, 595},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Ball{X: tc.x, Y: tc.y, DX: tc.dx, DY: tc.dy, Radius: 10, Launched: true}
			ResolveWalls(b, 600)
			if b.DX != tc.wantDX || b.DY != tc.wantDY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", b.DX, b.DY, tc.wantDX, tc.wantDY)
			}
			if b.X != tc.wantX || b.Y != tc.wantY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", b.X, b.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestWallBounceLeavesWall(t *testing.T) {
	b := &Ball{X: 12, Y: 300, DX: -4, DY: -5, Radius: 10, Launched: true}

	reflections := 0
	for range 5 {
		b.Advance()
		if ResolveWalls(b, 600) {
			reflections++
		}
	}
	if reflections != 1 {
		t.Errorf("reflections = %d, expected a single bounce", reflections)
	}
	if b.DX <= 0 {
		t.Errorf("DX = %v, expected the ball heading away from the wall", b.DX)
	}
}

func TestReflectionIsInvolution(t *testing.T) {
	b := &Ball{DX: -2, DY: -5}

	b.ReflectHorizontal()
	b.ReflectHorizontal()
	if b.DX != -2 {
		t.Errorf("double horizontal reflection DX = %v, expected -2", b.DX)
	}

	b.ReflectVertical()
	b.ReflectVertical()
	if b.DY != -5 {
		t.Errorf("double vertical reflection DY = %v, expected -5", b.DY)
	}
}

func TestPaddleBounceDeadCenter(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPaddle(cfg)
	b := &Ball{X: p.CenterX(), Y: p.Y, DX: 2, DY: 5, Radius: 10, Launched: true}

	if !ResolvePaddle(b, p) {
		t.Fatal("expected paddle contact")
	}
	if math.Abs(b.DX) > eps {
		t.Errorf("DX = %v, expected 0 for a dead-center hit", b.DX)
	}
	if b.DY >= 0 {
		t.Errorf("DY = %v, expected upward velocity", b.DY)
	}
	if b.Y != p.Y-b.Radius {
		t.Errorf("ball Y = %v, expected to sit on the paddle at %v", b.Y, p.Y-b.Radius)
	}
	if ResolvePaddle(b, p) {
		t.Error("repositioned ball should not hit the paddle again")
	}
}

func TestPaddleBounceSpeedPreserving(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPaddle(cfg)
	half := p.Width() / 2
	inset := cfg.CollisionInset

	// Offsets beyond the collision inset miss the narrower rectangle.
	for offset := -half + inset; offset <= half-inset; offset += 5 {
		b := &Ball{X: p.CenterX() + offset, Y: p.Y + 2, DX: 3, DY: 4, Radius: 10, Launched: true}
		before := b.Speed()

		if !ResolvePaddle(b, p) {
			t.Fatalf("offset %v: expected paddle contact", offset)
		}
		if !approx(b.Speed(), before) {
			t.Errorf("offset %v: speed = %v, expected %v", offset, b.Speed(), before)
		}
		if b.DY >= 0 {
			t.Errorf("offset %v: DY = %v, expected upward", offset, b.DY)
		}
		if offset < 0 && b.DX >= 0 || offset > 0 && b.DX <= 0 {
			t.Errorf("offset %v: DX = %v has the wrong sign", offset, b.DX)
		}
		maxDX := before * math.Sin(math.Pi/4)
		if math.Abs(b.DX) > maxDX+eps {
			t.Errorf("offset %v: DX = %v exceeds the 45 degree limit", offset, b.DX)
		}
	}
}

func TestPaddleBounceZeroSpeedFallback(t *testing.T) {
	p := NewPaddle(DefaultConfig())
	b := &Ball{X: p.CenterX(), Y: p.Y, Radius: 10, Launched: true}

	ResolvePaddle(b, p)

	want := math.Hypot(DefaultDX, DefaultDY)
	if !approx(b.Speed(), want) {
		t.Errorf("speed = %v, expected fallback %v", b.Speed(), want)
	}
}

func TestPaddleCollisionRectIsNarrow(t *testing.T) {
	p := NewPaddle(DefaultConfig())

	// Touches the visible paddle edge but not the inset collision rectangle.
	b := &Ball{X: p.X - 5, Y: p.Y + 5, DX: 0, DY: 5, Radius: 10, Launched: true}
	if !b.Bounds().Intersects(p.Bounds()) {
		t.Fatal("test setup: ball should overlap the visible paddle")
	}
	if ResolvePaddle(b, p) {
		t.Error("ball grazing the visible edge should not bounce")
	}
}

func TestResolveBricksFirstMatchWins(t *testing.T) {
	// Two bricks side by side, the ball overlapping both.
	grid := [][]Brick{{
		NewBrick(VariantApple, 0, 0, 50, 30),
		NewBrick(VariantApple, 50, 0, 50, 30),
	}}
	b := &Ball{X: 50, Y: 35, DX: 0, DY: -5, Radius: 10, Launched: true}

	contact, ok := ResolveBricks(b, grid)
	if !ok {
		t.Fatal("expected a brick contact")
	}
	if contact.Row != 0 || contact.Col != 0 {
		t.Errorf("contact = (%d, %d), expected first brick in scan order", contact.Row, contact.Col)
	}
	if !grid[0][0].Broken {
		t.Error("first brick should be broken")
	}
	if grid[0][1].Broken || grid[0][1].CurrentHits != 0 {
		t.Error("second brick should be untouched: one hit per tick")
	}
}

func TestResolveBricksRowMajorOrder(t *testing.T) {
	grid := [][]Brick{
		{NewBrick(VariantApple, 0, 0, 50, 30), NewBrick(VariantApple, 60, 0, 50, 30)},
		{NewBrick(VariantApple, 0, 40, 50, 30), NewBrick(VariantApple, 60, 40, 50, 30)},
	}
	grid[0][0].Broken = true
	grid[0][0].CurrentHits = 1

	// Overlaps bricks (0,1) and (1,0).
	b := &Ball{X: 55, Y: 35, DX: 0, DY: -5, Radius: 10, Launched: true}

	contact, ok := ResolveBricks(b, grid)
	if !ok {
		t.Fatal("expected a brick contact")
	}
	if contact.Row != 0 || contact.Col != 1 {
		t.Errorf("contact = (%d, %d), expected (0, 1)", contact.Row, contact.Col)
	}
}

func TestResolveBricksReflectionAxis(t *testing.T) {
	tests := []struct {
		name           string
		x, y           float64
		wantDX, wantDY float64
	}{
		// Ball below the brick, overlap wider than tall.
		{"hit from below", 30, 38, 2, 5},
		// Ball right of the brick, overlap taller than wide.
		{"hit from the side", 58, 15, -2, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			grid := [][]Brick{{NewBrick(VariantBlueberry, 0, 0, 60, 30)}}
			b := &Ball{X: tc.x, Y: tc.y, DX: 2, DY: -5, Radius: 10, Launched: true}

			if _, ok := ResolveBricks(b, grid); !ok {
				t.Fatal("expected a brick contact")
			}
			if b.DX != tc.wantDX || b.DY != tc.wantDY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", b.DX, b.DY, tc.wantDX, tc.wantDY)
			}
			if grid[0][0].Broken {
				t.Error("a 3-hit brick should survive one hit")
			}
		})
	}
}

func TestCapturesUsesWideRect(t *testing.T) {
	p := NewPaddle(DefaultConfig())

	// Just past the visible edge but inside the collection margin.
	pk := NewPickup(PickupApple, p.X-15-10, p.Y+5, 30, 3)
	if !Captures(&pk, p) {
		t.Error("pickup inside the collection margin should be captured")
	}

	// Above the paddle, within the lift.
	pk = NewPickup(PickupApple, p.CenterX(), p.Y-20, 30, 3)
	if !Captures(&pk, p) {
		t.Error("pickup inside the collection lift should be captured")
	}

	pk = NewPickup(PickupApple, p.CenterX(), p.Y-60, 30, 3)
	if Captures(&pk, p) {
		t.Error("pickup well above the paddle should not be captured")
	}
}
