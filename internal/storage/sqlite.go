// Package storage persists finished fishing sessions.
//
// Two sinks exist: a flat "name: score" text file kept newest first, which is
// the record shown on the start screen, and a SQLite history used for
// rankings and statistics. The pure-Go modernc.org/sqlite driver avoids CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-fisherman/internal/core"
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionEntry is one finished session.
type SessionEntry struct {
	ID        int64
	Player    string
	Score     int
	Passed    int
	BaitLeft  int
	Reason    core.EndReason
	Ticks     int
	CreatedAt time.Time
}

// Stats aggregates the whole history.
type Stats struct {
	Sessions   int
	Players    int
	TotalFish  int
	TotalPass  int
	BestScore  int
	BestPlayer string
	AvgScore   float64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			passed INTEGER NOT NULL DEFAULT 0,
			bait_left INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(score DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_player ON sessions(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session and returns its row ID.
func (s *Store) SaveSession(e SessionEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (player, score, passed, bait_left, end_reason, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Player, e.Score, e.Passed, e.BaitLeft, e.Reason.String(), e.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const sessionColumns = `id, player, score, passed, bait_left, end_reason, ticks, created_at`

// TopScores retrieves the best N sessions, highest score first.
// Ties go to the earlier session.
func (s *Store) TopScores(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentSessions retrieves the latest N sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) querySessions(query string, args ...any) ([]SessionEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var reason string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &e.Passed, &e.BaitLeft, &reason, &e.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Reason = core.ParseEndReason(reason)
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles both time.Time and string values from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// PlayerBest returns the highest score of the given player.
// Returns 0 if the player has no sessions.
func (s *Store) PlayerBest(player string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM sessions WHERE player = ?",
		player,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query player best: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats summarizes every recorded session.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var avg sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player),
		        COALESCE(SUM(score), 0), COALESCE(SUM(passed), 0),
		        COALESCE(MAX(score), 0), AVG(score)
		 FROM sessions`,
	).Scan(&st.Sessions, &st.Players, &st.TotalFish, &st.TotalPass, &st.BestScore, &avg)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	if avg.Valid {
		st.AvgScore = avg.Float64
	}

	if st.Sessions == 0 {
		return st, nil
	}

	err = s.db.QueryRow(
		"SELECT player FROM sessions ORDER BY score DESC, id ASC LIMIT 1",
	).Scan(&st.BestPlayer)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query best player: %w", err)
	}

	return st, nil
}

// ClearScores deletes the whole history.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM sessions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
