package fishing

import (
	"time"

	"github.com/vovakirdan/tui-fisherman/internal/config"
	"github.com/vovakirdan/tui-fisherman/internal/core"
)

// Phase is the lifecycle position of a session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseEnded
)

// Session holds every counter of one play-through. It is owned by a single
// Game and mutated only from Step.
type Session struct {
	Player    string
	Score     int
	Passed    int
	BaitLeft  int
	BaitTotal int
	Remaining time.Duration
	Ticks     int
	Phase     Phase
	Reason    core.EndReason
	Paused    bool

	boat Boat
	fish []Fish
	bait Bait
}

func newSession(cfg config.FishingConfig, player string) *Session {
	s := &Session{
		Player:    player,
		BaitLeft:  cfg.Bait.Count,
		BaitTotal: cfg.Bait.Count,
		Remaining: cfg.Session.Duration(),
		Phase:     PhaseRunning,
		boat:      newBoat(cfg.Boat),
		fish:      newFish(cfg.Fish),
	}
	s.bait = Bait{
		RodX:   rodX(s.boat, cfg.Boat.RodInset),
		Anchor: cfg.Boat.Y + cfg.Boat.RodOffset,
	}
	s.bait.Depth = s.bait.Anchor
	return s
}

// Running reports whether the session still accepts gameplay input.
func (s *Session) Running() bool {
	return s.Phase == PhaseRunning
}

// end moves the session to PhaseEnded. Only the first call has an effect.
func (s *Session) end(reason core.EndReason) bool {
	if s.Phase == PhaseEnded {
		return false
	}
	s.Phase = PhaseEnded
	s.Reason = reason
	s.Paused = false
	s.bait.retract()
	return true
}

// consumeBait is the only place bait is spent.
func (s *Session) consumeBait() bool {
	if s.BaitLeft > 0 {
		s.BaitLeft--
	}
	if s.BaitLeft == 0 {
		return s.end(core.EndBaitDepleted)
	}
	return false
}

func (s *Session) state() core.GameState {
	return core.GameState{
		Score:    s.Score,
		Passed:   s.Passed,
		BaitLeft: s.BaitLeft,
		GameOver: s.Phase == PhaseEnded,
		Reason:   s.Reason,
		Paused:   s.Paused,
		Ticks:    s.Ticks,
	}
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Player    string
	Boat      Boat
	Fish      []Fish
	Bait      Bait
	Score     int
	Passed    int
	BaitLeft  int
	BaitTotal int
	Remaining time.Duration
	Ticks     int
	Phase     Phase
	Reason    core.EndReason
	Paused    bool
}

// Snapshot copies the session so callers cannot mutate it.
func (s *Session) Snapshot() Snapshot {
	fish := make([]Fish, len(s.fish))
	copy(fish, s.fish)
	return Snapshot{
		Player:    s.Player,
		Boat:      s.boat,
		Fish:      fish,
		Bait:      s.bait,
		Score:     s.Score,
		Passed:    s.Passed,
		BaitLeft:  s.BaitLeft,
		BaitTotal: s.BaitTotal,
		Remaining: s.Remaining,
		Ticks:     s.Ticks,
		Phase:     s.Phase,
		Reason:    s.Reason,
		Paused:    s.Paused,
	}
}

// SecondsLeft rounds the remaining time up, so the clock shows 60 at the
// start and reaches 0 only when the session is over.
func (s Snapshot) SecondsLeft() int {
	return int((s.Remaining + time.Second - 1) / time.Second)
}

// Total is the number of fish that either got caught or swam by.
func (s Snapshot) Total() int {
	return s.Score + s.Passed
}
