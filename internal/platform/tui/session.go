package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fisherman/internal/core"
	"github.com/vovakirdan/tui-fisherman/internal/registry"
	"github.com/vovakirdan/tui-fisherman/internal/storage"
)

// screen identifies the view the session is showing.
type screen int

const (
	screenStart screen = iota
	screenGame
	screenScoreboard
)

// SessionDeps bundles what a session needs besides its runtime config.
type SessionDeps struct {
	NewGame  func() registry.Game // Fresh game per played session
	Recorder *storage.Recorder
	Cues     CuePlayer
	Logger   *log.Logger
}

// SessionModel manages the full flow: start screen -> game -> start screen,
// with the scoreboard reachable from the start screen. One SessionModel
// drives one terminal, local or remote.
type SessionModel struct {
	deps       SessionDeps
	config     core.RuntimeConfig
	current    screen
	start      StartModel
	game       *GameModel
	scoreboard ScoreboardModel
	lastName   string
	nextGen    int // first tick generation of the next game
	quitting   bool
}

// NewSessionModel creates a session that opens on the start screen.
// cfg.Player, if set, prefills the name field.
func NewSessionModel(deps SessionDeps, cfg core.RuntimeConfig) SessionModel {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	m := SessionModel{
		deps:     deps,
		config:   cfg,
		lastName: cfg.Player,
	}
	m.start = m.newStart()
	return m
}

func (m SessionModel) newStart() StartModel {
	return NewStartModel(m.deps.Recorder.Scores(), m.lastName, m.config.ScreenW, m.config.ScreenH, m.deps.Logger)
}

func (m SessionModel) cue(c core.Cue) {
	if m.deps.Cues != nil {
		m.deps.Cues.Play(c)
	}
}

// Init starts the start screen and its music.
func (m SessionModel) Init() tea.Cmd {
	m.cue(core.CueMusicStart)
	return m.start.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateStart(msg)
	}
}

// updateStart handles updates on the start screen.
func (m SessionModel) updateStart(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.start.Update(msg)
	if sm, ok := next.(StartModel); ok {
		m.start = sm
	}

	if m.start.IsQuitting() {
		m.quitting = true
		m.cue(core.CueMusicStop)
		return m, tea.Quit
	}

	if m.start.WantsScoreboard() {
		m.scoreboard = NewScoreboardModel(m.deps.Recorder.Store(), m.config.ScreenW, m.config.ScreenH)
		m.current = screenScoreboard
		return m, m.scoreboard.Init()
	}

	if name := m.start.Name(); name != "" {
		return m.startGame(name)
	}

	return m, cmd
}

// startGame leaves the start screen and runs a fresh game for name.
func (m SessionModel) startGame(name string) (tea.Model, tea.Cmd) {
	m.cue(core.CueMusicStop)

	m.lastName = name
	cfg := m.config
	cfg.Player = name

	gm := NewGameModel(m.deps.NewGame(), m.deps.Recorder, m.deps.Cues, m.deps.Logger, cfg)
	// A paused game left with Back still has a tick in flight.
	gm.gen = m.nextGen
	gm, cmd := gm.Start()
	m.game = &gm
	m.current = screenGame
	return m, cmd
}

// updateGame handles updates while a game is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.nextGen = m.game.gen + 1
		m.game = nil
		return m.showStart()
	}

	return m, cmd
}

// updateScoreboard handles updates on the scoreboard.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		m.cue(core.CueMusicStop)
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.start = m.newStart()
		m.current = screenStart
		return m, m.start.Init()
	}

	return m, cmd
}

// showStart returns to a freshly loaded start screen.
func (m SessionModel) showStart() (tea.Model, tea.Cmd) {
	m.start = m.newStart()
	m.current = screenStart
	m.cue(core.CueMusicStart)
	return m, m.start.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	default:
		return m.start.View()
	}
}

// InGame reports whether a game is on screen.
func (m SessionModel) InGame() bool {
	return m.current == screenGame
}

// IsQuitting returns true if the user quit.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// Run starts a local Bubble Tea program for the session flow.
func Run(deps SessionDeps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(deps, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
