package fishing

import "github.com/vovakirdan/tui-fisherman/internal/core"

// applyInput handles the frame's actions in arrival order and reports whether
// one of them restarted the session. Processing stops at the action that ends
// the session, so its result is reported before any restart can replace it.
func (g *Game) applyInput(in core.InputFrame) (restarted bool) {
	for _, a := range in.Actions {
		s := g.session

		if a == core.ActionRestart {
			g.restart()
			restarted = true
			continue
		}
		if !s.Running() {
			continue
		}
		if a == core.ActionPause {
			s.Paused = !s.Paused
			continue
		}
		if s.Paused {
			continue
		}

		switch a {
		case core.ActionLeft:
			g.move(-1)
		case core.ActionRight:
			g.move(1)
		case core.ActionCast:
			g.cast()
		}

		if !s.Running() {
			return restarted
		}
	}
	return restarted
}

func (g *Game) restart() {
	g.session = newSession(g.cfg, g.runtime.Player)
}

// move shifts the boat one step. A move that would leave the world is
// dropped without touching the facing or the bait.
func (g *Game) move(dir int) {
	s := g.session
	b := &s.boat

	next := b.X + dir*g.cfg.Boat.Step
	if next < 0 || next > g.cfg.World.Width-b.W {
		return
	}

	b.X = next
	if dir < 0 {
		b.Facing = FacingLeft
	} else {
		b.Facing = FacingRight
	}
	s.bait.RodX = rodX(*b, g.cfg.Boat.RodInset)

	if s.bait.Cast {
		s.bait.retract()
		s.consumeBait()
	}
}

func (g *Game) cast() {
	s := g.session
	if s.bait.Cast {
		return
	}
	s.bait.Cast = true
	s.bait.Depth = s.bait.Anchor
}
