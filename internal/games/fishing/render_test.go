package fishing

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-fisherman/internal/core"
)

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	hud := scr.Row(0)
	for _, want := range []string{"Fish caught: 0 / 0", "Baits: ●●●●●", "Time left: 60 seconds"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if c := scr.GetCell(78, 0); c.Color != core.ColorGray {
		t.Errorf("clock color = %v, want gray", c.Color)
	}
}

func TestRenderUsedBaitAndLowTime(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionCast, core.ActionLeft))
	idle(g, 2000) // 50s elapsed

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	hud := scr.Row(0)
	if !strings.Contains(hud, "Baits: ●●●●✗") {
		t.Errorf("HUD %q does not cross out used bait", hud)
	}
	if !strings.Contains(hud, "Time left: 10 seconds") {
		t.Errorf("HUD %q", hud)
	}
	if c := scr.GetCell(78, 0); c.Color != core.ColorRed {
		t.Errorf("clock color = %v, want red", c.Color)
	}
}

func TestRenderCastLine(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionCast))
	idle(g, 20)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.ContainsRune(scr.String(), HookChar) {
		t.Error("hook not drawn while cast")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t)
	idle(g, 2400)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	for _, want := range []string{"Time is up.", "Fish caught: 0, Baits left: 5."} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionPause))
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(30, 8)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected too-small notice")
	}
}

func TestRenderDeterministic(t *testing.T) {
	g := newTestGame(t)
	idle(g, 123)
	a, b := core.NewScreen(100, 30), core.NewScreen(100, 30)
	g.Render(a)
	g.Render(b)
	if a.String() != b.String() {
		t.Error("same snapshot rendered differently")
	}
}

func TestEndMessage(t *testing.T) {
	if EndMessage(core.EndBaitDepleted) != "You ran out of baits." {
		t.Error("bait message")
	}
	if Summary(3, 2) != "Fish caught: 3, Baits left: 2." {
		t.Errorf("Summary = %q", Summary(3, 2))
	}
}

func TestFishGlyphWidth(t *testing.T) {
	for n := 1; n <= 10; n++ {
		if got := len([]rune(fishGlyph(n))); got != n {
			t.Errorf("fishGlyph(%d) has %d runes", n, got)
		}
	}
}
