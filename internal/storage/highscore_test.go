package storage

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

type flakyBackend struct {
	score   int
	loadErr error
	saveErr error
	saves   []int
}

func (b *flakyBackend) HighScore() (int, error) { return b.score, b.loadErr }

func (b *flakyBackend) SetHighScore(score int) error {
	b.saves = append(b.saves, score)
	if b.saveErr != nil {
		return b.saveErr
	}
	b.score = score
	return nil
}

func newTestLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}), &buf
}

func TestHighScoreStoreLoad(t *testing.T) {
	logger, buf := newTestLogger()

	hs := NewHighScoreStore(&flakyBackend{score: 420}, logger)
	assert.Equal(t, 420, hs.LoadHighScore())

	hs = NewHighScoreStore(&flakyBackend{score: 420, loadErr: errors.New("disk gone")}, logger)
	assert.Equal(t, 0, hs.LoadHighScore(), "unreadable high score starts from 0")
	assert.Contains(t, buf.String(), "disk gone")
}

func TestHighScoreStoreSaveEveryCall(t *testing.T) {
	backend := &flakyBackend{}
	hs := NewHighScoreStore(backend, nil)

	hs.SaveHighScore(120)
	hs.SaveHighScore(120)
	hs.SaveHighScore(120)

	assert.Len(t, backend.saves, 3)
	assert.Equal(t, 120, backend.score)
}

func TestHighScoreStoreLogsFailureOncePerStreak(t *testing.T) {
	logger, buf := newTestLogger()
	backend := &flakyBackend{saveErr: errors.New("read-only")}
	hs := NewHighScoreStore(backend, logger)

	for range 5 {
		hs.SaveHighScore(80)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "cannot save high score"))

	backend.saveErr = nil
	hs.SaveHighScore(80)
	assert.Contains(t, buf.String(), "high score saved again")

	backend.saveErr = errors.New("read-only")
	hs.SaveHighScore(90)
	assert.Equal(t, 2, strings.Count(buf.String(), "cannot save high score"), "a new streak logs again")
}

func TestHighScoreStoreWithFileBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	hs := NewHighScoreStore(NewFileStore(path), nil)

	assert.Equal(t, 0, hs.LoadHighScore())
	hs.SaveHighScore(150)

	assert.Equal(t, 150, NewHighScoreStore(NewFileStore(path), nil).LoadHighScore())
}

func TestHighScoreStoreSharedByStaleReaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	shared := NewHighScoreStore(NewFileStore(path), nil)

	// Both players connect before either has finished a game.
	first := shared.LoadHighScore()
	second := shared.LoadHighScore()

	shared.SaveHighScore(max(first, 120))
	for range 3 {
		shared.SaveHighScore(max(second, 10))
	}

	assert.Equal(t, 120, shared.LoadHighScore())
}
