package sim

import "math"

// Band is one slice of the variant probability distribution.
type Band struct {
	Variant Variant
	Width   float64
}

// Factory creates bricks for a wave. Variant selection draws one value from
// the injected random source per brick.
type Factory struct {
	cfg Config
	rng Random
}

// NewFactory creates a brick factory.
func NewFactory(cfg Config, rng Random) *Factory {
	return &Factory{cfg: cfg, rng: rng}
}

// Bands returns the variant probabilities for a wave in selection order.
// The trailing peach band takes the remaining mass and may be zero wide.
func (f *Factory) Bands(wave int) []Band {
	w := float64(wave)
	bands := []Band{
		{VariantApple, math.Max(0.10, 0.50-0.05*w)},
		{VariantOrange, math.Min(0.40, 0.20+0.02*w)},
		{VariantPear, math.Min(0.20, 0.10+0.01*w)},
		{VariantBlueberry, math.Min(0.20, 0.05+0.015*w)},
		{VariantHeart, 0.05},
		{VariantPlus, 0.05},
	}
	sum := 0.0
	for _, b := range bands {
		sum += b.Width
	}
	return append(bands, Band{VariantPeach, math.Max(0, 1-sum)})
}

// Pick maps a roll in [0, 1) onto the wave's cumulative bands.
func (f *Factory) Pick(roll float64, wave int) Variant {
	cum := 0.0
	for _, b := range f.Bands(wave) {
		cum += b.Width
		if roll < cum {
			return b.Variant
		}
	}
	return VariantPeach
}

// CreateBrick creates one brick at (x, y) for the given wave.
func (f *Factory) CreateBrick(x, y float64, wave int) Brick {
	v := f.Pick(f.rng.Float64(), wave)
	return NewBrick(v, x, y, f.cfg.BrickW, f.cfg.BrickH)
}

// BuildGrid creates a fresh, horizontally centred grid for the wave.
// Bricks are created in row-major order.
func (f *Factory) BuildGrid(wave int) [][]Brick {
	c := f.cfg
	stepX := c.BrickW + c.BrickSpacingX
	stepY := c.BrickH + c.BrickSpacingY
	totalW := float64(c.Cols)*c.BrickW + float64(c.Cols-1)*c.BrickSpacingX
	startX := float64(int((c.ScreenW - totalW) / 2))

	grid := make([][]Brick, c.Rows)
	for row := range c.Rows {
		grid[row] = make([]Brick, c.Cols)
		for col := range c.Cols {
			x := startX + float64(int(float64(col)*stepX))
			y := c.GridTop + float64(int(float64(row)*stepY))
			grid[row][col] = f.CreateBrick(x, y, wave)
		}
	}
	return grid
}
