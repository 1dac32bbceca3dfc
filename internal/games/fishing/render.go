package fishing

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/tui-fisherman/internal/config"
	"github.com/vovakirdan/tui-fisherman/internal/core"
)

// Smallest terminal the scene stays readable in.
const (
	MinWidth  = 40
	MinHeight = 12
)

// Low-time warning threshold for the HUD clock.
const lowTimeSeconds = 10

// Visual characters for rendering
const (
	WaveChar     = '~'
	RippleChar   = '-'
	LineChar     = '│'
	HookChar     = 'J'
	BaitIcon     = '●'
	UsedBaitIcon = '✗'
)

var laneColors = []core.Color{core.ColorOrange, core.ColorYellow, core.ColorMagenta}

// cloud positions are fractions of the world width plus an offset, sizes in world units.
var clouds = []struct {
	div, offset int
	y, size     int
}{
	{10, 0, 135, 70},
	{3, 0, 125, 60},
	{2, 0, 125, 50},
	{2, 275, 135, 60},
}

// Renderer turns a Snapshot into terminal cells. It keeps only immutable
// noise generators, so the same snapshot always draws the same frame.
type Renderer struct {
	cfg     config.FishingConfig
	seed    int64
	surface *perlin.Perlin
	ripples *perlin.Perlin
}

// NewRenderer creates a renderer for cfg with decorative noise seeded by seed.
func NewRenderer(cfg config.FishingConfig, seed int64) *Renderer {
	return &Renderer{
		cfg:     cfg,
		seed:    seed,
		surface: perlin.NewPerlin(2, 2, 3, seed),
		ripples: perlin.NewPerlin(1.5, 2, 2, seed+1),
	}
}

// projection maps world units onto a w×h grid.
type projection struct {
	worldW, worldH int
	w, h           int
}

func (p projection) x(v int) int { return core.Scale(v, p.worldW, p.w) }
func (p projection) y(v int) int { return core.Scale(v, p.worldH, p.h) }

func (p projection) rect(r core.Rect) core.Rect {
	x0, y0 := p.x(r.X), p.y(r.Y)
	x1, y1 := p.x(r.Right()), p.y(r.Bottom())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Draw renders snap into dst.
func (r *Renderer) Draw(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < MinWidth || h < MinHeight {
		drawTooSmall(dst)
		return
	}

	world := r.cfg.World
	p := projection{worldW: world.Width, worldH: world.Height, w: w, h: h}

	r.drawClouds(dst, p)
	r.drawWater(dst, p, snap.Ticks)
	for _, f := range snap.Fish {
		drawFish(dst, p, f)
	}
	r.drawBoat(dst, p, snap)
	r.drawLine(dst, p, snap.Bait)
	drawHUD(dst, snap)

	switch {
	case snap.Phase == PhaseEnded:
		drawMessage(dst, core.ColorBrightWhite,
			EndMessage(snap.Reason),
			Summary(snap.Score, snap.BaitLeft),
			"R: play again  Enter: new player  Q: quit")
	case snap.Paused:
		drawMessage(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	}
}

// EndMessage is the headline shown when a session stops.
func EndMessage(reason core.EndReason) string {
	switch reason {
	case core.EndTimeExpired:
		return "Time is up."
	case core.EndBaitDepleted:
		return "You ran out of baits."
	default:
		return "Game over."
	}
}

// Summary is the end-of-session result line.
func Summary(score, baitLeft int) string {
	return fmt.Sprintf("Fish caught: %d, Baits left: %d.", score, baitLeft)
}

func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d", MinWidth, MinHeight), core.ColorGray)
}

func (r *Renderer) drawClouds(dst *core.Screen, p projection) {
	for _, c := range clouds {
		x := p.x(r.cfg.World.Width/c.div + c.offset)
		y := p.y(c.y)
		cw := core.Max(4, p.x(c.size*2))
		dst.DrawHLine(x+cw/4, y, cw/2, '▄', core.ColorWhite)
		dst.DrawHLine(x, y+1, cw, '▀', core.ColorWhite)
	}
}

// surfaceAt returns the water surface height in world units at world x.
// A sine swell gives the base shape; perlin noise keeps it from looking regular.
func (r *Renderer) surfaceAt(x, ticks int) float64 {
	world := r.cfg.World
	t := float64(ticks)
	swell := world.WaveAmplitude * math.Sin(world.WaveFrequency*float64(x)+t*0.05)
	jitter := world.WaveAmplitude * 0.5 * r.surface.Noise2D(float64(x)*0.01, t*0.01)
	return float64(world.WaterLine) - swell - jitter
}

func (r *Renderer) drawWater(dst *core.Screen, p projection, ticks int) {
	for col := 0; col < p.w; col++ {
		wx := core.Scale(col, p.w, p.worldW)
		top := p.y(int(r.surfaceAt(wx, ticks)))
		dst.SetColored(col, top, WaveChar, core.ColorBrightCyan)
		for row := top + 1; row < p.h; row++ {
			n := r.ripples.Noise2D(float64(col)*0.15, float64(row)*0.4+float64(ticks)*0.02)
			if n > 0.25 {
				dst.SetColored(col, row, RippleChar, core.ColorBlue)
			}
		}
	}
}

// fishGlyph draws a right-facing fish exactly n cells wide.
func fishGlyph(n int) string {
	switch {
	case n <= 1:
		return ">"
	case n == 2:
		return "<>"
	case n == 3:
		return "><>"
	}
	return "><" + strings.Repeat("(", n-4) + "°>"
}

func drawFish(dst *core.Screen, p projection, f Fish) {
	rect := p.rect(f.Rect())
	c := laneColors[(f.Lane-1+len(laneColors))%len(laneColors)]
	dst.DrawTextColored(rect.X, rect.Y+rect.H/2, fishGlyph(rect.W), c)
}

func (r *Renderer) drawBoat(dst *core.Screen, p projection, snap Snapshot) {
	b := p.rect(snap.Boat.Rect())
	bottom := b.Bottom() - 1

	// hull
	dst.DrawHLine(b.X, bottom-1, b.W, '_', core.ColorBrown)
	dst.SetColored(b.X, bottom, '\\', core.ColorBrown)
	dst.DrawHLine(b.X+1, bottom, b.W-2, '▀', core.ColorBrown)
	dst.SetColored(b.Right()-1, bottom, '/', core.ColorBrown)

	// fisherman sits mid-deck, rod held toward the facing side
	mid := b.X + b.W/2
	anchor := p.y(snap.Bait.Anchor)
	head := core.Max(b.Y, anchor-1)
	dst.SetColored(mid, head, 'o', core.ColorBrightWhite)
	if head+1 < bottom-1 {
		dst.SetColored(mid, head+1, '|', core.ColorBrightWhite)
	}

	rod := p.x(snap.Bait.RodX)
	if snap.Boat.Facing == FacingLeft {
		dst.DrawHLine(rod+1, anchor, mid-rod-1, '─', core.ColorBrown)
		dst.SetColored(rod, anchor, '╭', core.ColorBrown)
	} else {
		dst.DrawHLine(mid+1, anchor, rod-mid-1, '─', core.ColorBrown)
		dst.SetColored(rod, anchor, '╮', core.ColorBrown)
	}
}

func (r *Renderer) drawLine(dst *core.Screen, p projection, bait Bait) {
	if !bait.Cast {
		return
	}
	col := p.x(bait.RodX)
	top := p.y(bait.Anchor) + 1
	hook := p.y(bait.Depth)
	if hook < top {
		return
	}
	dst.DrawVLine(col, top, hook-top, LineChar, core.ColorGray)
	dst.SetColored(col, hook, HookChar, core.ColorBrightWhite)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	w := dst.Width()

	score := fmt.Sprintf("Fish caught: %d / %d", snap.Score, snap.Total())
	dst.DrawTextColored(1, 0, score, core.ColorGray)

	const label = "Baits: "
	bx := (w - len(label) - snap.BaitTotal) / 2
	dst.DrawTextColored(bx, 0, label, core.ColorGray)
	for i := 0; i < snap.BaitTotal; i++ {
		if i < snap.BaitLeft {
			dst.SetColored(bx+len(label)+i, 0, BaitIcon, core.ColorWhite)
		} else {
			dst.SetColored(bx+len(label)+i, 0, UsedBaitIcon, core.ColorRed)
		}
	}

	secs := snap.SecondsLeft()
	clock := fmt.Sprintf("Time left: %d seconds", secs)
	c := core.ColorGray
	if secs <= lowTimeSeconds {
		c = core.ColorRed
	}
	dst.DrawTextColored(w-utf8.RuneCountInString(clock)-1, 0, clock, c)
}

// drawMessage draws a framed block of centered lines in the middle of the screen.
func drawMessage(dst *core.Screen, c core.Color, lines ...string) {
	w, h := dst.Width(), dst.Height()

	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, utf8.RuneCountInString(l))
	}
	boxW := core.Min(inner+4, w)
	boxH := len(lines) + 2 + (len(lines) - 1)
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		lc := core.ColorGray
		if i == 0 {
			lc = c
		}
		x := box.X + (box.W-utf8.RuneCountInString(l))/2
		dst.DrawTextColored(x, box.Y+1+i*2, l, lc)
	}
}
