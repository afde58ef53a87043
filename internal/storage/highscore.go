package storage

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Backend is a place the high score can be read from and written to.
// Both *Store and *FileStore implement it.
type Backend interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

var (
	_ Backend = (*Store)(nil)
	_ Backend = (*FileStore)(nil)
)

// HighScoreStore adapts a Backend to the game's fire-and-forget persistence
// interface. Failures are logged and never returned.
type HighScoreStore struct {
	backend Backend
	logger  *log.Logger

	mu      sync.Mutex
	failing bool
}

// NewHighScoreStore wraps backend. A nil logger uses the default logger.
func NewHighScoreStore(backend Backend, logger *log.Logger) *HighScoreStore {
	if logger == nil {
		logger = log.Default()
	}
	return &HighScoreStore{backend: backend, logger: logger}
}

// LoadHighScore returns the persisted high score, or 0 if it is missing or unreadable.
func (h *HighScoreStore) LoadHighScore() int {
	score, err := h.backend.HighScore()
	if err != nil {
		h.logger.Warn("cannot load high score, starting from 0", "err", err)
		return 0
	}
	return score
}

// SaveHighScore writes score to the backend. Only the first failure of a
// streak is logged.
func (h *HighScoreStore) SaveHighScore(score int) {
	err := h.backend.SetHighScore(score)

	h.mu.Lock()
	defer h.mu.Unlock()

	if err != nil {
		if !h.failing {
			h.logger.Error("cannot save high score", "score", score, "err", err)
		}
		h.failing = true
		return
	}
	if h.failing {
		h.logger.Info("high score saved again", "score", score)
	}
	h.failing = false
}
