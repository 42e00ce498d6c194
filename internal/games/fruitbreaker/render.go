package fruitbreaker

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/fruit-breaker/internal/core"
	"github.com/vovakirdan/fruit-breaker/internal/games/fruitbreaker/sim"
)

// Visual characters for rendering
const (
	BallChar    = '●'
	PaddleChar  = '▀'
	BrickChar   = '█'
	HeartChar   = '♥'
	BorderHoriz = '─'
	DebugChar   = '·'
)

var brickColors = map[sim.Variant]core.Color{
	sim.VariantApple:     core.ColorRed,
	sim.VariantOrange:    core.ColorOrange,
	sim.VariantPear:      core.ColorGreen,
	sim.VariantBlueberry: core.ColorBlue,
	sim.VariantHeart:     core.ColorPink,
	sim.VariantPlus:      core.ColorBrightYellow,
	sim.VariantPeach:     core.ColorPeach,
}

type pickupGlyph struct {
	r rune
	c core.Color
}

var pickupGlyphs = map[sim.PickupKind]pickupGlyph{
	sim.PickupApple:      {'●', core.ColorBrightRed},
	sim.PickupOrange:     {'●', core.ColorOrange},
	sim.PickupPear:       {'●', core.ColorBrightGreen},
	sim.PickupBlueberry:  {'●', core.ColorBrightBlue},
	sim.PickupExtraLife:  {HeartChar, core.ColorPink},
	sim.PickupMegaBasket: {'✚', core.ColorBrightYellow},
}

// viewport maps playfield pixels onto screen cells.
type viewport struct {
	ox, oy int
	w, h   int
	sx, sy float64
}

func newViewport(area core.Rect, fieldW, fieldH float64) viewport {
	return viewport{
		ox: area.X, oy: area.Y,
		w: area.W, h: area.H,
		sx: float64(area.W) / fieldW,
		sy: float64(area.H) / fieldH,
	}
}

// rect converts a playfield rectangle to cells. Every non-empty rectangle
// covers at least one cell; adjacent rectangles do not overlap.
func (v viewport) rect(r core.RectF) core.Rect {
	x0 := int(math.Round(r.X * v.sx))
	x1 := int(math.Round(r.Right() * v.sx))
	y0 := int(math.Round(r.Y * v.sy))
	y1 := int(math.Round(r.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	x0 = core.Clamp(x0, 0, v.w)
	x1 = core.Clamp(x1, 0, v.w)
	y0 = core.Clamp(y0, 0, v.h)
	y1 = core.Clamp(y1, 0, v.h)
	return core.NewRect(v.ox+x0, v.oy+y0, x1-x0, y1-y0)
}

// point converts a playfield point to the cell containing it, clamped to
// the viewport.
func (v viewport) point(x, y float64) (int, int) {
	cx := core.Clamp(int(x*v.sx), 0, v.w-1)
	cy := core.Clamp(int(y*v.sy), 0, v.h-1)
	return v.ox + cx, v.oy + cy
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < g.minScreenW || dst.Height() < g.minScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	v := g.View()

	g.renderHUD(dst, v)

	// Playfield box below the HUD row
	box := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(box, core.ColorGray)
	vp := newViewport(core.NewRect(1, 2, box.W-2, box.H-2), v.ScreenW, v.ScreenH)

	renderBricks(dst, vp, v)
	renderPickups(dst, vp, v)
	renderPaddle(dst, vp, v)
	if v.Debug {
		renderDebug(dst, vp, v)
	}
	bx, by := vp.point(v.Ball.X, v.Ball.Y)
	dst.SetColored(bx, by, BallChar, core.ColorWhite)

	renderOverlay(dst, v)
}

func (g *Game) renderHUD(dst *core.Screen, v sim.View) {
	left := fmt.Sprintf("Score: %d  Lives: %s  Wave: %d",
		v.Stats.Score, strings.Repeat(string(HeartChar), v.Stats.Lives), v.Stats.Wave)
	dst.DrawText(1, 0, left)

	if v.Mode == sim.ModeTimed {
		dst.DrawTextCentered(0, fmt.Sprintf("Time: %d", v.TimeLeft))
	}

	f := v.Stats.Fruits
	right := fmt.Sprintf("A:%d O:%d P:%d B:%d", f.Apple, f.Orange, f.Pear, f.Blueberry)
	if v.Paddle.MegaRemaining > 0 {
		right = fmt.Sprintf("MEGA(%d) %s", v.Paddle.MegaRemaining/60, right)
	}
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right)
}

func renderBricks(dst *core.Screen, vp viewport, v sim.View) {
	for _, row := range v.Bricks {
		for _, b := range row {
			if b.Broken {
				continue
			}
			r := vp.rect(b.Bounds())
			dst.DrawRect(r, BrickChar, brickColors[b.Variant])

			// Multi-hit bricks show the hits they still need
			if left := b.HitsNeeded - b.CurrentHits; b.HitsNeeded > 1 && r.W > 0 && r.H > 0 {
				dst.SetColored(r.X+r.W/2, r.Y+r.H/2, rune('0'+left), core.ColorWhite)
			}
		}
	}
}

func renderPickups(dst *core.Screen, vp viewport, v sim.View) {
	for _, p := range v.Pickups {
		glyph, ok := pickupGlyphs[p.Kind()]
		if !ok {
			continue
		}
		cx, cy := p.Bounds().Center()
		x, y := vp.point(cx, cy)
		dst.SetColored(x, y, glyph.r, glyph.c)
	}
}

func renderPaddle(dst *core.Screen, vp viewport, v sim.View) {
	color := core.ColorWhite
	if v.Paddle.MegaRemaining > 0 {
		color = core.ColorBrightYellow
	}
	r := vp.rect(v.Paddle.Bounds)
	r.H = 1
	dst.DrawRect(r, PaddleChar, color)
}

// renderDebug outlines the ball bounce rect and the pickup capture rect.
func renderDebug(dst *core.Screen, vp viewport, v sim.View) {
	coll := vp.rect(v.Paddle.Collection)
	for x := coll.X; x < coll.Right(); x++ {
		dst.SetColored(x, coll.Y, DebugChar, core.ColorGray)
	}
	hit := vp.rect(v.Paddle.Collision)
	dst.DrawHLine(hit.X, hit.Bottom(), hit.W, BorderHoriz, core.ColorCyan)

	info := fmt.Sprintf("tick %d ball %.0f,%.0f v %.1f,%.1f", v.Tick, v.Ball.X, v.Ball.Y, v.Ball.DX, v.Ball.DY)
	dst.DrawTextColored(1, dst.Height()-1, info, core.ColorCyan)
}

func renderOverlay(dst *core.Screen, v sim.View) {
	midY := dst.Height() / 2

	switch v.State {
	case sim.StateGameOver:
		dst.DrawTextCentered(midY-1, "GAME OVER")
		dst.DrawTextCentered(midY+1, fmt.Sprintf("Final Score: %d", v.Stats.Score))
		return
	case sim.StatePaused:
		dst.DrawTextCentered(midY, "PAUSED")
		dst.DrawTextCentered(midY+2, "Press P to resume")
		return
	}

	if v.Banner > 0 {
		dst.DrawTextCentered(midY, fmt.Sprintf("Wave %d", v.Stats.Wave))
	}
	if v.State == sim.StateNotStarted {
		dst.DrawTextCentered(midY+2, "Press SPACE to launch")
	}
}
