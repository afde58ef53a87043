package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/block-bash/internal/core"
)

func TestRenderHUD(t *testing.T) {
	s, _, _ := newTestSession(t, WithHighScore(70))
	screen := core.NewScreen(80, 24)

	s.Render(screen)

	hud := screen.Row(0)
	assert.Contains(t, hud, "Score: 0")
	assert.Contains(t, hud, "Level: 1")
	assert.Contains(t, hud, "High Score: 70")
}

func TestRenderEntities(t *testing.T) {
	s, _, _ := newTestSession(t)
	screen := core.NewScreen(80, 24)

	s.Render(screen)

	assert.Contains(t, screen.Row(22), string(PaddleChar))
	assert.Contains(t, screen.String(), string(BallChar))

	// The first block starts at world (50, 50).
	first := s.Blocks()[0]
	cell := screen.GetCell(6, 3)
	assert.Equal(t, BlockGlyphs[first.Variant], cell.Rune)
	assert.Equal(t, core.BlockPalette[first.Variant], cell.Color)
}

func TestRenderGameOver(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.score = 120
	s.level = 2
	s.ball.X, s.ball.Y = 10, 490
	s.ball.VY = 3
	s.Step(input())
	require.True(t, s.State().GameOver)

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "Game Over! Final Score: 120")
	assert.Contains(t, out, "Press R to Restart")
	assert.Contains(t, screen.Row(0), "High Score: 120")
}

func TestRenderTooSmall(t *testing.T) {
	s, _, _ := newTestSession(t)
	screen := core.NewScreen(20, 6)

	s.Render(screen)

	assert.Contains(t, screen.String(), "Window too small")
	assert.False(t, strings.ContainsRune(screen.String(), BallChar))
}
