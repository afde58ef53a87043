package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-bash/internal/config"
	"github.com/vovakirdan/block-bash/internal/platform/tui"
	"github.com/vovakirdan/block-bash/internal/storage"
)

// scoreStores holds the persistence chosen by storage.backend.
type scoreStores struct {
	backend storage.Backend
	db      *storage.Store // nil unless the sqlite backend is open
}

// openStores opens the configured backend. A database that cannot be opened
// falls back to the plain high-score file so the game still runs.
func openStores(cfg config.StorageConfig, logger *log.Logger) *scoreStores {
	fileStore := storage.NewFileStore(config.ExpandPath(cfg.FilePath))

	if cfg.Backend != config.BackendSQLite {
		return &scoreStores{backend: fileStore}
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, using high score file", "err", err, "file", fileStore.Path())
		return &scoreStores{backend: fileStore}
	}
	return &scoreStores{backend: db, db: db}
}

// history returns the score history, or nil without a database.
func (s *scoreStores) history() tui.ScoreRecorder {
	if s.db == nil {
		return nil
	}
	return s.db
}

func (s *scoreStores) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}
