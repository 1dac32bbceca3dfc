package fishing

import "github.com/vovakirdan/tui-fisherman/internal/core"

// tick advances a running session by one fixed step.
func (g *Game) tick() {
	s := g.session

	s.Ticks++
	s.Remaining -= g.cfg.Session.Tick()
	if s.Remaining <= 0 {
		s.Remaining = 0
		s.end(core.EndTimeExpired)
		return
	}

	g.moveFish()

	if g.difficulty.ShouldRamp(s.Ticks) {
		for i := range s.fish {
			s.fish[i].Velocity = g.difficulty.Apply(s.fish[i].Velocity)
		}
	}

	if s.bait.Cast {
		g.advanceBait()
	}
}

func (g *Game) moveFish() {
	s := g.session
	limit := float64(g.cfg.World.Width + g.cfg.World.PassMargin)
	for i := range s.fish {
		f := &s.fish[i]
		f.X += f.Velocity
		if f.X > limit {
			f.reset()
			s.Passed++
		}
	}
}

// advanceBait lowers the hook and resolves what it reached.
func (g *Game) advanceBait() {
	s := g.session
	s.bait.Depth += g.cfg.Bait.Speed

	if f := g.laneAt(s.bait.Depth); f != nil {
		tip := s.bait.Tip(g.cfg.Bait.TipWidth, g.cfg.Bait.TipHeight)
		if tip.Intersects(f.Rect()) {
			g.catch(f)
			return
		}
	}

	if s.bait.Depth >= g.cfg.Bait.MaxDepth {
		s.bait.retract()
		s.consumeBait()
	}
}

// laneAt returns the fish of the first lane whose bottom edge is at or below
// depth, or nil when the hook is deeper than every lane.
func (g *Game) laneAt(depth int) *Fish {
	s := g.session
	for i := range s.fish {
		if depth <= s.fish[i].Y+s.fish[i].H {
			return &s.fish[i]
		}
	}
	return nil
}

// catch lands f: the fish goes back to its reset position without counting
// as passed, the line comes up and no bait is spent.
func (g *Game) catch(f *Fish) {
	s := g.session
	f.reset()
	s.bait.retract()
	s.Score++
	g.emit(core.CueFishCaught)
}
