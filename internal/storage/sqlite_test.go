package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-fisherman/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	sessions := []SessionEntry{
		{Player: "alice", Score: 4, Passed: 10, BaitLeft: 2, Reason: core.EndTimeExpired, Ticks: 2400},
		{Player: "bob", Score: 7, Passed: 5, BaitLeft: 0, Reason: core.EndBaitDepleted, Ticks: 1200},
		{Player: "carol", Score: 7, Passed: 8, BaitLeft: 1, Reason: core.EndTimeExpired, Ticks: 2400},
		{Player: "alice", Score: 1, Passed: 12, BaitLeft: 0, Reason: core.EndBaitDepleted, Ticks: 900},
	}
	for _, e := range sessions {
		if _, err := store.SaveSession(e); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	top, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(top))
	}

	// Equal scores keep insertion order
	want := []string{"bob", "carol", "alice"}
	for i, name := range want {
		if top[i].Player != name {
			t.Errorf("top[%d] = %s, want %s", i, top[i].Player, name)
		}
	}

	if top[0].Reason != core.EndBaitDepleted || top[0].Passed != 5 || top[0].Ticks != 1200 {
		t.Errorf("Round trip lost fields: %+v", top[0])
	}
}

func TestStoreRecentSessions(t *testing.T) {
	store := openTestStore(t)

	for i, name := range []string{"a", "b", "c"} {
		if _, err := store.SaveSession(SessionEntry{Player: name, Score: i, Reason: core.EndTimeExpired}); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Player != "c" || recent[1].Player != "b" {
		t.Errorf("RecentSessions = %+v", recent)
	}
}

func TestStorePlayerBest(t *testing.T) {
	store := openTestStore(t)

	best, err := store.PlayerBest("nobody")
	if err != nil {
		t.Fatalf("PlayerBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for unknown player, got %d", best)
	}

	for _, score := range []int{3, 9, 5} {
		store.SaveSession(SessionEntry{Player: "dana", Score: score, Reason: core.EndTimeExpired})
	}
	store.SaveSession(SessionEntry{Player: "eve", Score: 20, Reason: core.EndTimeExpired})

	best, err = store.PlayerBest("dana")
	if err != nil {
		t.Fatal(err)
	}
	if best != 9 {
		t.Errorf("PlayerBest = %d, want 9", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Sessions != 0 || st.BestPlayer != "" {
		t.Errorf("empty stats = %+v", st)
	}

	store.SaveSession(SessionEntry{Player: "a", Score: 2, Passed: 3, Reason: core.EndTimeExpired})
	store.SaveSession(SessionEntry{Player: "b", Score: 6, Passed: 1, Reason: core.EndBaitDepleted})
	store.SaveSession(SessionEntry{Player: "a", Score: 4, Passed: 0, Reason: core.EndTimeExpired})

	st, err = store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Sessions != 3 || st.Players != 2 {
		t.Errorf("counts = %+v", st)
	}
	if st.TotalFish != 12 || st.TotalPass != 4 {
		t.Errorf("totals = %+v", st)
	}
	if st.BestScore != 6 || st.BestPlayer != "b" {
		t.Errorf("best = %d by %q", st.BestScore, st.BestPlayer)
	}
	if st.AvgScore != 4 {
		t.Errorf("AvgScore = %v, want 4", st.AvgScore)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionEntry{Player: "a", Score: 1, Reason: core.EndTimeExpired})
	store.SaveSession(SessionEntry{Player: "b", Score: 2, Reason: core.EndTimeExpired})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	top, err := store.TopScores(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 0 {
		t.Errorf("Expected 0 entries after clear, got %d", len(top))
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	store1.SaveSession(SessionEntry{Player: "frank", Score: 11, Reason: core.EndTimeExpired})
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store2.Close()

	best, err := store2.PlayerBest("frank")
	if err != nil {
		t.Fatal(err)
	}
	if best != 11 {
		t.Errorf("Expected persisted score 11, got %d", best)
	}
}
