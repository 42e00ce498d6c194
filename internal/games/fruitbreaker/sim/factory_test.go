package sim

import (
	"math"
	"testing"
)

func TestBandsRespectFloorsAndCaps(t *testing.T) {
	f := NewFactory(DefaultConfig(), NewSimpleRNG(1))
	prevApple := math.Inf(1)

	for wave := 1; wave <= 50; wave++ {
		bands := f.Bands(wave)
		if len(bands) != 7 {
			t.Fatalf("wave %d: %d bands, expected 7", wave, len(bands))
		}

		apple := bands[0].Width
		if apple < 0.10-eps {
			t.Errorf("wave %d: apple %v below floor 0.10", wave, apple)
		}
		if apple > prevApple+eps {
			t.Errorf("wave %d: apple %v increased from %v", wave, apple, prevApple)
		}
		prevApple = apple

		caps := map[Variant]float64{VariantOrange: 0.40, VariantPear: 0.20, VariantBlueberry: 0.20}
		sum := 0.0
		for _, b := range bands {
			if c, ok := caps[b.Variant]; ok && b.Width > c+eps {
				t.Errorf("wave %d: %s %v exceeds cap %v", wave, b.Variant, b.Width, c)
			}
			if b.Width < 0 {
				t.Errorf("wave %d: %s has negative width %v", wave, b.Variant, b.Width)
			}
			sum += b.Width
		}
		if bands[6].Variant != VariantPeach {
			t.Errorf("wave %d: last band is %s, expected peach", wave, bands[6].Variant)
		}
		if sum < 1-eps {
			t.Errorf("wave %d: bands sum to %v, expected at least 1", wave, sum)
		}
	}
}

func TestBandsWaveOne(t *testing.T) {
	f := NewFactory(DefaultConfig(), NewSimpleRNG(1))
	want := []float64{0.45, 0.22, 0.11, 0.065, 0.05, 0.05, 0.055}
	for i, b := range f.Bands(1) {
		if !approx(b.Width, want[i]) {
			t.Errorf("band %s = %v, expected %v", b.Variant, b.Width, want[i])
		}
	}
}

func TestBandsRemainderCanBeEmpty(t *testing.T) {
	f := NewFactory(DefaultConfig(), NewSimpleRNG(1))
	peach := f.Bands(40)[6]
	if peach.Width > eps {
		t.Errorf("peach band at wave 40 = %v, expected zero width", peach.Width)
	}
}

func TestPick(t *testing.T) {
	f := NewFactory(DefaultConfig(), NewSimpleRNG(1))
	tests := []struct {
		roll float64
		wave int
		want Variant
	}{
		{0, 1, VariantApple},
		{0.449, 1, VariantApple},
		{0.451, 1, VariantOrange},
		{0.70, 1, VariantPear},
		{0.80, 1, VariantBlueberry},
		{0.85, 1, VariantHeart},
		{0.90, 1, VariantPlus},
		{0.96, 1, VariantPeach},
		{0.999999, 40, VariantPlus},
	}

	for _, tc := range tests {
		if got := f.Pick(tc.roll, tc.wave); got != tc.want {
			t.Errorf("Pick(%v, %d) = %s, expected %s", tc.roll, tc.wave, got, tc.want)
		}
	}
}

func TestBuildGrid(t *testing.T) {
	cfg := DefaultConfig()
	f := NewFactory(cfg, NewSimpleRNG(42))
	grid := f.BuildGrid(1)

	if len(grid) != 3 {
		t.Fatalf("rows = %d, expected 3", len(grid))
	}
	for row := range grid {
		if len(grid[row]) != 7 {
			t.Fatalf("row %d has %d bricks, expected 7", row, len(grid[row]))
		}
		for col, b := range grid[row] {
			if b.Broken || b.CurrentHits != 0 {
				t.Errorf("brick (%d, %d) is not fresh", row, col)
			}
			if b.W != cfg.BrickW || b.H != cfg.BrickH {
				t.Errorf("brick (%d, %d) size %vx%v", row, col, b.W, b.H)
			}
		}
	}

	first := grid[0][0]
	if first.X != 46 || first.Y != 100 {
		t.Errorf("first brick at (%v, %v), expected (46, 100)", first.X, first.Y)
	}
	last := grid[2][6]
	if last.X != 494 || last.Y != 179 {
		t.Errorf("last brick at (%v, %v), expected (494, 179)", last.X, last.Y)
	}
	if right := last.Bounds().Right(); right > cfg.ScreenW {
		t.Errorf("grid overflows the playfield: right edge %v", right)
	}
}

func TestVariantTable(t *testing.T) {
	tests := []struct {
		v       Variant
		hits    int
		points  int
		penalty bool
		drop    DropPolicy
		pickup  PickupKind
	}{
		{VariantApple, 1, 10, false, DropChance, PickupApple},
		{VariantOrange, 1, 10, false, DropChance, PickupOrange},
		{VariantPear, 2, 20, false, DropChance, PickupPear},
		{VariantBlueberry, 3, 30, false, DropChance, PickupBlueberry},
		{VariantHeart, 1, 15, false, DropAlways, PickupExtraLife},
		{VariantPlus, 1, 15, false, DropAlways, PickupMegaBasket},
		{VariantPeach, 1, -10, true, DropNever, PickupNone},
	}

	for _, tc := range tests {
		b := NewBrick(tc.v, 0, 0, 10, 10)
		if b.HitsNeeded != tc.hits || b.Points != tc.points || b.Penalty != tc.penalty ||
			b.Drop != tc.drop || b.Pickup != tc.pickup {
			t.Errorf("%s: got %+v", tc.v, b)
		}
	}
}

func TestBrickHit(t *testing.T) {
	b := NewBrick(VariantBlueberry, 0, 0, 10, 10)

	for i := 1; i <= 2; i++ {
		if b.Hit() {
			t.Fatalf("hit %d broke a 3-hit brick", i)
		}
	}
	if !b.Hit() {
		t.Fatal("third hit should break the brick")
	}
	if b.Hit() {
		t.Error("hitting a broken brick should not report a break")
	}
	if b.CurrentHits != b.HitsNeeded || !b.Broken {
		t.Errorf("CurrentHits = %d, Broken = %v", b.CurrentHits, b.Broken)
	}
}
