package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Screen dimensions are only used for rendering; the simulation runs in
// world units so a resize never disturbs a running session.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 40)
	Seed     int64  // Seed for decorative noise (water surface, clouds)
	Player   string // Name the session is played under
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 40,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return 25 * time.Millisecond
	}
	return time.Second / time.Duration(c.TickRate)
}

// EndReason explains why a session stopped.
type EndReason int

const (
	EndNone EndReason = iota
	EndTimeExpired
	EndBaitDepleted
)

// String returns a short identifier for the reason, used in storage.
func (r EndReason) String() string {
	switch r {
	case EndTimeExpired:
		return "time_expired"
	case EndBaitDepleted:
		return "bait_depleted"
	default:
		return "none"
	}
}

// ParseEndReason is the inverse of EndReason.String.
func ParseEndReason(s string) EndReason {
	switch s {
	case "time_expired":
		return EndTimeExpired
	case "bait_depleted":
		return EndBaitDepleted
	default:
		return EndNone
	}
}

// GameState represents the current game state.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int       // Fish caught
	Passed   int       // Fish that swam past
	BaitLeft int       // Remaining bait units
	GameOver bool      // Whether the session has ended
	Reason   EndReason // Set once GameOver is true
	Paused   bool      // Whether the game is paused
	Ticks    int       // Ticks simulated in this session
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Audio triggers raised during this tick
	Ended bool  // True only on the tick that ended the session
}
