package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fisherman/internal/core"
	"github.com/vovakirdan/tui-fisherman/internal/registry"
	"github.com/vovakirdan/tui-fisherman/internal/storage"
)

// scriptedGame ends after endAfter steps and remembers every frame it saw.
type scriptedGame struct {
	cfg      core.RuntimeConfig
	state    core.GameState
	endAfter int
	steps    int
	frames   [][]core.Action
	resets   int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.state = core.GameState{BaitLeft: 5}
	g.steps = 0
	g.resets++
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone().Actions)
	if in.Has(core.ActionRestart) {
		g.Reset(g.cfg)
	}
	if g.state.GameOver {
		return core.StepResult{State: g.state}
	}

	g.steps++
	g.state.Ticks = g.steps
	if in.Has(core.ActionCast) {
		g.state.Score++
	}
	ended := false
	if g.steps >= g.endAfter {
		g.state.GameOver = true
		g.state.Reason = core.EndTimeExpired
		ended = true
	}
	return core.StepResult{State: g.state, Ended: ended, Cues: []core.Cue{core.CueFishCaught}}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return g.state }

type cueRecorder struct {
	cues []core.Cue
}

func (c *cueRecorder) Play(cue core.Cue) { c.cues = append(c.cues, cue) }

func newTestRecorder(t *testing.T) (*storage.Recorder, *storage.ScoreFile, *storage.Store) {
	t.Helper()
	dir := t.TempDir()

	scores, err := storage.NewScoreFile(filepath.Join(dir, "score.txt"))
	if err != nil {
		t.Fatalf("NewScoreFile: %v", err)
	}
	store, err := storage.Open(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return storage.NewRecorder(scores, store, log.New(&strings.Builder{})), scores, store
}

func testConfig(player string) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 40, Seed: 1, Player: player}
}

func step(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm, cmd
}

func TestGameModelRecordsSessionOnce(t *testing.T) {
	recorder, scores, store := newTestRecorder(t)
	game := &scriptedGame{endAfter: 2}
	cues := &cueRecorder{}

	m, cmd := NewGameModel(game, recorder, cues, nil, testConfig("Alice")).Start()
	if cmd == nil {
		t.Fatal("Start should schedule the first tick")
	}

	m, _ = step(t, m, keyRunes(" "))
	m, cmd = step(t, m, TickMsg{Gen: 0})
	if cmd == nil {
		t.Fatal("running game should schedule another tick")
	}
	m, cmd = step(t, m, TickMsg{Gen: 0})
	if cmd != nil {
		t.Error("tick chain should stop at game over")
	}
	if !m.State().GameOver {
		t.Fatal("game should be over")
	}

	// A late tick from the same chain must not persist again.
	m, _ = step(t, m, TickMsg{Gen: 0})

	records, err := scores.LoadScores()
	if err != nil {
		t.Fatalf("LoadScores: %v", err)
	}
	if len(records) != 1 || records[0] != (storage.Record{Name: "Alice", Score: 1}) {
		t.Errorf("records = %v, want [Alice: 1]", records)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	if sessions[0].Reason != core.EndTimeExpired || sessions[0].Ticks != 2 {
		t.Errorf("session = %+v", sessions[0])
	}

	caught := 0
	for _, c := range cues.cues {
		if c == core.CueFishCaught {
			caught++
		}
	}
	if caught != 2 {
		t.Errorf("forwarded %d catch cues, want 2", caught)
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m, _ := NewGameModel(game, nil, nil, nil, testConfig("Bob")).Start()

	m, cmd := step(t, m, TickMsg{Gen: 7})
	if cmd != nil {
		t.Error("stale tick should not schedule anything")
	}
	if len(game.frames) != 0 {
		t.Errorf("stale tick stepped the game %d times", len(game.frames))
	}
	_ = m
}

func TestGameModelRestartAfterGameOver(t *testing.T) {
	game := &scriptedGame{endAfter: 1}
	m, _ := NewGameModel(game, nil, nil, nil, testConfig("Carol")).Start()

	m, _ = step(t, m, TickMsg{Gen: 0})
	if !m.State().GameOver {
		t.Fatal("game should be over after one tick")
	}

	m, cmd := step(t, m, keyRunes("r"))
	if cmd == nil {
		t.Fatal("restart should start a new tick chain")
	}
	if m.gen != 1 {
		t.Errorf("gen = %d, want 1", m.gen)
	}
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}

	// Ticks from the finished chain no longer reach the game.
	steps := len(game.frames)
	m, _ = step(t, m, TickMsg{Gen: 0})
	if len(game.frames) != steps {
		t.Error("old chain tick was applied after restart")
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	tests := []struct {
		name     string
		endAfter int
		ticks    int
		keys     []tea.KeyMsg
		want     bool
	}{
		{"enter while running", 10, 1, []tea.KeyMsg{{Type: tea.KeyEnter}}, false},
		{"enter after game over", 1, 1, []tea.KeyMsg{{Type: tea.KeyEnter}}, true},
		{"esc after game over", 1, 1, []tea.KeyMsg{{Type: tea.KeyEsc}}, true},
		{"esc while running", 10, 1, []tea.KeyMsg{{Type: tea.KeyEsc}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &scriptedGame{endAfter: tt.endAfter}
			m, _ := NewGameModel(game, nil, nil, nil, testConfig("Dan")).Start()
			for i := 0; i < tt.ticks; i++ {
				m, _ = step(t, m, TickMsg{Gen: 0})
			}
			for _, k := range tt.keys {
				m, _ = step(t, m, k)
			}
			if m.BackToMenu() != tt.want {
				t.Errorf("BackToMenu = %v, want %v", m.BackToMenu(), tt.want)
			}
		})
	}
}

func TestGameModelQuit(t *testing.T) {
	m, _ := NewGameModel(&scriptedGame{endAfter: 10}, nil, nil, nil, testConfig("Eve")).Start()
	m, cmd := step(t, m, keyRunes("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelResizeKeepsSimulation(t *testing.T) {
	game := &scriptedGame{endAfter: 10}
	m, _ := NewGameModel(game, nil, nil, nil, testConfig("Fay")).Start()

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if len(game.frames) != 0 {
		t.Error("resize must not step the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestStartModelRejectsEmptyName(t *testing.T) {
	m := NewStartModel(nil, "", 80, 24, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(StartModel)
	if m.Name() != "" {
		t.Errorf("Name = %q, want empty", m.Name())
	}
	if m.ErrorMessage() != emptyNameMessage {
		t.Errorf("ErrorMessage = %q", m.ErrorMessage())
	}

	next, _ = m.Update(keyRunes("Z"))
	m = next.(StartModel)
	if m.ErrorMessage() != "" {
		t.Error("typing should clear the error")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(StartModel)
	if m.Name() != "Z" {
		t.Errorf("Name = %q, want Z", m.Name())
	}
}

func TestStartModelListsScores(t *testing.T) {
	_, scores, _ := newTestRecorder(t)
	if err := scores.AppendScore("Alice", 5); err != nil {
		t.Fatal(err)
	}
	if err := scores.AppendScore("Bob", 3); err != nil {
		t.Fatal(err)
	}

	m := NewStartModel(scores, "Bob", 80, 24, nil)
	records := m.Records()
	if len(records) != 2 || records[0].Name != "Bob" {
		t.Errorf("records = %v, want newest first", records)
	}

	view := m.View()
	for _, want := range []string{"Alice", "Bob", "Latest catches"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStartModelLogsUnreadableScores(t *testing.T) {
	dir := t.TempDir()
	// A directory where the score file should be cannot be read as a file.
	scores, err := storage.NewScoreFile(dir)
	if err != nil {
		t.Fatalf("NewScoreFile: %v", err)
	}

	var out strings.Builder
	m := NewStartModel(scores, "", 80, 24, log.New(&out))

	if !strings.Contains(out.String(), "Failed to load scores") {
		t.Errorf("log = %q, want a load failure warning", out.String())
	}
	if !strings.Contains(m.View(), "scores unavailable") {
		t.Error("view should report the unreadable score file")
	}
}

func TestSessionModelFlow(t *testing.T) {
	recorder, scores, _ := newTestRecorder(t)
	cues := &cueRecorder{}
	var games []*scriptedGame
	deps := SessionDeps{
		NewGame: func() registry.Game {
			g := &scriptedGame{endAfter: 1}
			games = append(games, g)
			return g
		},
		Recorder: recorder,
		Cues:     cues,
		Logger:   log.New(&strings.Builder{}),
	}

	var model tea.Model = NewSessionModel(deps, testConfig("Gus"))
	model.Init()

	update := func(msg tea.Msg) {
		model, _ = model.Update(msg)
	}

	// Prefilled name starts the game right away.
	update(tea.KeyMsg{Type: tea.KeyEnter})
	sm := model.(SessionModel)
	if !sm.InGame() {
		t.Fatal("session should be in game after Enter")
	}
	if len(games) != 1 || games[0].cfg.Player != "Gus" {
		t.Fatalf("game not created for Gus")
	}

	update(TickMsg{Gen: 0})
	update(tea.KeyMsg{Type: tea.KeyEnter})
	sm = model.(SessionModel)
	if sm.InGame() {
		t.Fatal("Enter after game over should return to the start screen")
	}

	records, err := scores.LoadScores()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Name != "Gus" {
		t.Errorf("records = %v", records)
	}

	want := []core.Cue{core.CueMusicStart, core.CueMusicStop, core.CueFishCaught, core.CueMusicStart}
	if len(cues.cues) != len(want) {
		t.Fatalf("cues = %v, want %v", cues.cues, want)
	}
	for i := range want {
		if cues.cues[i] != want[i] {
			t.Errorf("cue[%d] = %v, want %v", i, cues.cues[i], want[i])
		}
	}

	// The next game's ticks start on a fresh generation.
	update(tea.KeyMsg{Type: tea.KeyEnter})
	sm = model.(SessionModel)
	if !sm.InGame() || sm.game.gen != 1 {
		t.Errorf("second game gen = %d, want 1", sm.game.gen)
	}
}

func TestSessionModelScoreboardRoundTrip(t *testing.T) {
	recorder, _, _ := newTestRecorder(t)
	deps := SessionDeps{
		NewGame:  func() registry.Game { return &scriptedGame{endAfter: 1} },
		Recorder: recorder,
	}

	var model tea.Model = NewSessionModel(deps, testConfig(""))
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if model.(SessionModel).current != screenScoreboard {
		t.Fatal("Tab should open the scoreboard")
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if model.(SessionModel).current != screenStart {
		t.Fatal("Esc should return to the start screen")
	}
}
