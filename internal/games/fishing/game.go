// Package fishing implements the fisherman game: a boat on the surface, a
// rod that casts straight down, and three lanes of fish swimming past.
//
// The simulation runs in world units taken from config.FishingConfig and is
// fully deterministic: the same inputs always produce the same session.
package fishing

import (
	"slices"
	"sync"

	"github.com/vovakirdan/tui-fisherman/internal/config"
	"github.com/vovakirdan/tui-fisherman/internal/core"
	"github.com/vovakirdan/tui-fisherman/internal/registry"
)

// Registry identity of the fishing game.
const (
	GameID    = "fisherman"
	GameTitle = "Fisherman"
)

var (
	configMu   sync.RWMutex
	configured = config.DefaultFishingConfig()
)

// SetConfig sets the configuration for games built through the registry.
// Games already built keep the config they were built with.
func SetConfig(cfg config.FishingConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	configured = cfg
}

// ActiveConfig returns the configuration registry-built games start from.
func ActiveConfig() config.FishingConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	cfg := configured
	cfg.Fish.Lanes = slices.Clone(configured.Fish.Lanes)
	return cfg
}

// Game implements registry.Game for the fishing game.
type Game struct {
	cfg        config.FishingConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	session    *Session
	renderer   *Renderer
	cues       []core.Cue
}

// New creates a game using cfg. Call Reset before the first Step.
func New(cfg config.FishingConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FishingConfig {
	return g.cfg
}

// Reset starts a fresh session for cfg.Player.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.session = newSession(g.cfg, cfg.Player)
	g.cues = nil
	if g.renderer == nil || g.renderer.seed != cfg.Seed {
		g.renderer = NewRenderer(g.cfg, cfg.Seed)
	}
}

// Step applies the queued input and then advances the session by one tick.
// Once the session has ended only ActionRestart has an effect. The step that
// restarts does not tick, so the new session is seen in its initial state.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.runtime)
	}
	g.cues = nil
	wasRunning := g.session.Running()

	restarted := g.applyInput(in)

	s := g.session
	if s.Running() && !s.Paused && !restarted {
		g.tick()
	}

	return core.StepResult{
		State: s.state(),
		Cues:  g.cues,
		Ended: wasRunning && !s.Running(),
	}
}

// Render draws the current session into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		dst.Clear()
		return
	}
	g.renderer.Draw(dst, g.session.Snapshot())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return g.session.state()
}

// Snapshot returns a copy of the current session for rendering or tests.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	return g.session.Snapshot()
}

func (g *Game) emit(c core.Cue) {
	g.cues = append(g.cues, c)
}

func init() {
	registry.Register(registry.GameInfo{ID: GameID, Title: GameTitle}, func() registry.Game {
		return New(ActiveConfig())
	})
}
