package gui

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/block-bash/internal/core"
	"github.com/vovakirdan/block-bash/internal/game"
)

type savedScore struct{ score, level int }

type fakeHistory struct {
	saved []savedScore
}

func (f *fakeHistory) SaveScore(score, level int) (int64, error) {
	f.saved = append(f.saved, savedScore{score, level})
	return int64(len(f.saved)), nil
}

// keys is a KeyState backed by a set of held keys.
type keys map[ebiten.Key]bool

func (k keys) pressed(key ebiten.Key) bool { return k[key] }

func newTestGame(t *testing.T, opts Options) (*Game, *game.Session, keys) {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	session := game.New(cfg)
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	held := keys{}
	g := NewGame(session, opts)
	g.pressed = held.pressed
	return g, session, held
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name string
		held keys
		want []core.Action
	}{
		{"nothing", keys{}, nil},
		{"arrow left", keys{ebiten.KeyArrowLeft: true}, []core.Action{core.ActionLeft}},
		{"a", keys{ebiten.KeyA: true}, []core.Action{core.ActionLeft}},
		{"arrow right", keys{ebiten.KeyArrowRight: true}, []core.Action{core.ActionRight}},
		{"d", keys{ebiten.KeyD: true}, []core.Action{core.ActionRight}},
		{"both directions", keys{ebiten.KeyA: true, ebiten.KeyD: true}, []core.Action{core.ActionLeft, core.ActionRight}},
		{"restart", keys{ebiten.KeyR: true}, []core.Action{core.ActionRestart}},
		{"q", keys{ebiten.KeyQ: true}, []core.Action{core.ActionQuit}},
		{"escape", keys{ebiten.KeyEscape: true}, []core.Action{core.ActionQuit}},
	}

	all := []core.Action{core.ActionLeft, core.ActionRight, core.ActionRestart, core.ActionQuit}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := ReadInput(tt.held.pressed)
			for _, a := range all {
				assert.Equal(t, contains(tt.want, a), frame.Has(a), "action %s", a)
			}
		})
	}
}

func contains(actions []core.Action, a core.Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

func TestUpdateMovesPaddleWhileHeld(t *testing.T) {
	g, session, held := newTestGame(t, Options{})

	held[ebiten.KeyArrowLeft] = true
	for range 2 {
		require.NoError(t, g.Update())
	}
	assert.Equal(t, float64(game.PaddleStartX-2*game.PaddleStep), session.Paddle().X)

	delete(held, ebiten.KeyArrowLeft)
	require.NoError(t, g.Update())
	assert.Equal(t, float64(game.PaddleStartX-2*game.PaddleStep), session.Paddle().X)
}

func TestUpdateQuitTerminates(t *testing.T) {
	g, session, held := newTestGame(t, Options{})
	held[ebiten.KeyQ] = true

	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, uint64(0), session.Snapshot().Tick, "quit happens before the step")
}

func TestUpdateRecordsGameOnceAndRestarts(t *testing.T) {
	history := &fakeHistory{}
	g, _, held := newTestGame(t, Options{History: history})

	held[ebiten.KeyArrowLeft] = true
	for i := 0; i < 50000 && !g.State().GameOver; i++ {
		require.NoError(t, g.Update())
	}
	require.True(t, g.State().GameOver, "ball should eventually be lost")

	for range 5 {
		require.NoError(t, g.Update())
	}
	if g.State().Score > 0 {
		require.Len(t, history.saved, 1)
		assert.Equal(t, g.State().Score, history.saved[0].score)
	} else {
		assert.Empty(t, history.saved)
	}

	held[ebiten.KeyR] = true
	require.NoError(t, g.Update())
	assert.False(t, g.State().GameOver)
	assert.Equal(t, 0, g.State().Score)
	assert.False(t, g.scoreSaved)
}

func TestLayoutIsWorldSize(t *testing.T) {
	g, _, _ := newTestGame(t, Options{})
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, game.WindowWidth, w)
	assert.Equal(t, game.WindowHeight, h)
}

func TestBlockColor(t *testing.T) {
	for v := range game.BlockVariants {
		assert.Equal(t, blockColors[v], BlockColor(v))
	}
	assert.Equal(t, blockColors[0], BlockColor(game.BlockVariants))
	assert.Equal(t, blockColors[1], BlockColor(-1))
}
