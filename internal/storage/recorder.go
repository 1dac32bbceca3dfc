package storage

import (
	"github.com/charmbracelet/log"
)

// Recorder writes finished sessions to every configured sink. Failures are
// logged and dropped so ending a session never depends on disk state.
type Recorder struct {
	scores *ScoreFile
	store  *Store
	logger *log.Logger
}

// NewRecorder creates a recorder. Either sink may be nil.
func NewRecorder(scores *ScoreFile, store *Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{scores: scores, store: store, logger: logger}
}

// Record saves e to the score file and the history.
func (r *Recorder) Record(e SessionEntry) {
	if r == nil {
		return
	}

	if r.scores != nil {
		if err := r.scores.AppendScore(e.Player, e.Score); err != nil {
			r.logger.Warn("Failed to append score", "player", e.Player, "score", e.Score, "error", err)
		}
	}

	if r.store != nil {
		if _, err := r.store.SaveSession(e); err != nil {
			r.logger.Warn("Failed to save session", "player", e.Player, "error", err)
		}
	}

	r.logger.Info("Session recorded", "player", e.Player, "score", e.Score, "reason", e.Reason)
}

// Scores returns the flat score file, or nil.
func (r *Recorder) Scores() *ScoreFile {
	if r == nil {
		return nil
	}
	return r.scores
}

// Store returns the history store, or nil.
func (r *Recorder) Store() *Store {
	if r == nil {
		return nil
	}
	return r.store
}
