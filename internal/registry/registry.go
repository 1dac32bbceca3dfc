// Package registry maps game IDs to factories. Games register from init(),
// and the platform looks a factory up once and calls it for every session it
// starts, so each session plays on a fresh game value.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-fisherman/internal/core"
)

// Game is the interface the platform drives. Games contain pure logic with no
// terminal dependencies (especially no Bubble Tea); the platform handles input
// mapping, timing, persistence and audio.
type Game interface {
	// ID returns the registry identifier (e.g., "fisherman").
	ID() string

	// Title returns a human-readable name for display (e.g., "Fisherman").
	Title() string

	// Reset starts a fresh session for cfg.Player.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's actions in arrival order and advances the
	// simulation by one fixed tick. The result reports the state, raised cues
	// and whether the session ended during this step.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new game value.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game. It panics on an empty or duplicate ID, which can
// only be a programming error in an init() function.
func Register(info GameInfo, f Factory) {
	if info.ID == "" || f == nil {
		panic("registry: game needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[info.ID]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// Lookup returns the factory registered under id.
func Lookup(id string) (Factory, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory, nil
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}
