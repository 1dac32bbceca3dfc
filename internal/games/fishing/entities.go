package fishing

import (
	"github.com/vovakirdan/tui-fisherman/internal/config"
	"github.com/vovakirdan/tui-fisherman/internal/core"
)

// Facing is the side of the boat the rod points to.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Fish swims across one lane from left to right. Y never changes.
type Fish struct {
	Lane     int     // 1-based lane index
	X        float64 // Left edge
	Y        int     // Top edge, fixed per lane
	W, H     int
	Velocity float64 // World units per tick
	StartX   float64
	ResetX   float64
}

// Rect returns the fish hitbox.
func (f Fish) Rect() core.Rect {
	return core.NewRect(int(f.X), f.Y, f.W, f.H)
}

func (f *Fish) reset() {
	f.X = f.ResetX
}

// Boat carries the player. It only moves horizontally in whole steps.
type Boat struct {
	X, Y   int
	W, H   int
	Facing Facing
}

// Rect returns the boat footprint.
func (b Boat) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Bait is the end of the fishing line. While not cast it hangs at Anchor.
type Bait struct {
	Cast   bool
	RodX   int
	Anchor int
	Depth  int
}

// Tip returns the hitbox of the hook at the current depth.
func (b Bait) Tip(w, h int) core.Rect {
	return core.NewRect(b.RodX, b.Depth, w, h)
}

func (b *Bait) retract() {
	b.Cast = false
	b.Depth = b.Anchor
}

func newFish(cfg config.FishConfig) []Fish {
	fish := make([]Fish, len(cfg.Lanes))
	for i, lane := range cfg.Lanes {
		fish[i] = Fish{
			Lane:     i + 1,
			X:        float64(cfg.StartX),
			Y:        lane.Y,
			W:        cfg.Width,
			H:        cfg.Height,
			Velocity: lane.Velocity,
			StartX:   float64(cfg.StartX),
			ResetX:   float64(cfg.ResetX),
		}
	}
	return fish
}

func newBoat(cfg config.BoatConfig) Boat {
	return Boat{
		X:      cfg.X,
		Y:      cfg.Y,
		W:      cfg.Width,
		H:      cfg.Height,
		Facing: FacingRight,
	}
}

// rodX returns the x of the rod tip for the boat's position and facing.
func rodX(b Boat, inset int) int {
	if b.Facing == FacingLeft {
		return b.X + inset
	}
	return b.X + b.W - inset
}
