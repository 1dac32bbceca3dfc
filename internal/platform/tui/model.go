package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fisherman/internal/core"
	"github.com/vovakirdan/tui-fisherman/internal/registry"
	"github.com/vovakirdan/tui-fisherman/internal/storage"
)

// CuePlayer receives the audio cues raised by the game and the start screen.
type CuePlayer interface {
	Play(c core.Cue)
}

// GameModel runs one game for one player and hands finished sessions to the
// recorder. It never persists the same session twice.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	recorder   *storage.Recorder
	cues       CuePlayer
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	gen        int // current tick chain
	ticking    bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. cues and recorder may be nil.
func NewGameModel(game registry.Game, recorder *storage.Recorder, cues CuePlayer, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:   recorder,
		cues:       cues,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session started", "player", m.config.Player)
	return tickCmd(m.config.TickInterval(), m.gen)
}

// Start is Init for callers that keep the returned model: it also marks the
// tick chain as running.
func (m GameModel) Start() (GameModel, tea.Cmd) {
	cmd := m.Init()
	m.ticking = true
	return m, cmd
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game runs in world units; only the view changes size.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionConfirm:
		if m.gameState.GameOver {
			m.backToMenu = true
		}
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
	case core.ActionRestart:
		// The tick chain stops at game over; a restart starts a new one.
		if !m.ticking {
			return m.handleTick()
		}
	}

	return m, nil
}

// handleTick steps the simulation once and schedules the next tick while the
// session is still running.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if m.cues != nil {
		for _, c := range result.Cues {
			m.cues.Play(c)
		}
	}

	if result.Ended {
		m.record(result.State)
	}

	if m.gameState.GameOver {
		m.ticking = false
		return m, nil
	}

	if !m.ticking {
		m.gen++
		m.ticking = true
	}
	return m, tickCmd(m.config.TickInterval(), m.gen)
}

func (m GameModel) record(st core.GameState) {
	m.logger.Info("session ended",
		"player", m.config.Player,
		"score", st.Score,
		"reason", st.Reason,
	)
	m.recorder.Record(storage.SessionEntry{
		Player:   m.config.Player,
		Score:    st.Score,
		Passed:   st.Passed,
		BaitLeft: st.BaitLeft,
		Reason:   st.Reason,
		Ticks:    st.Ticks,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".fisherman", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the start screen.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
