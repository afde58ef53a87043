package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBall(x, y, vx, vy float64) *Ball {
	return &Ball{X: x, Y: y, VX: vx, VY: vy, W: DefaultBallSize, H: DefaultBallSize}
}

func TestCollideWalls(t *testing.T) {
	tests := []struct {
		name       string
		ball       *Ball
		wantVX     float64
		wantVY     float64
		wantExited bool
	}{
		{"left wall", newTestBall(0, 100, -3, -3), 3, -3, false},
		{"right wall", newTestBall(590, 100, 3, -3), -3, -3, false},
		{"top wall", newTestBall(100, -1, 3, -3), 3, 3, false},
		{"corner flips both", newTestBall(-1, -1, -3, -3), 3, 3, false},
		{"open field", newTestBall(100, 300, 3, -3), 3, -3, false},
		{"floor", newTestBall(10, 490, 3, 3), 3, 3, true},
	}

	paddle := NewPaddle(DefaultPaddleWidth, DefaultPaddleHeight)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Collide(tt.ball, paddle, nil)
			assert.Equal(t, tt.wantVX, tt.ball.VX)
			assert.Equal(t, tt.wantVY, tt.ball.VY)
			assert.Equal(t, tt.wantExited, out.ExitedBottom)
			assert.False(t, out.BlockHit)
			assert.Equal(t, -1, out.HitIndex)
		})
	}
}

func TestWallBounceAfterAdvance(t *testing.T) {
	ball := newTestBall(0, 100, -3, -3)
	ball.Advance()
	Collide(ball, NewPaddle(DefaultPaddleWidth, DefaultPaddleHeight), nil)

	assert.Equal(t, 3.0, ball.VX)
	assert.Equal(t, -3.0, ball.VY)
}

func TestCollidePaddle(t *testing.T) {
	paddle := NewPaddle(DefaultPaddleWidth, DefaultPaddleHeight)

	t.Run("deflects downward ball", func(t *testing.T) {
		ball := newTestBall(280, 450, 2, 4)
		ball.Advance()
		Collide(ball, paddle, nil)
		assert.Equal(t, 2.0, ball.VX)
		assert.Equal(t, -4.0, ball.VY)
	})

	t.Run("touching edge counts", func(t *testing.T) {
		ball := newTestBall(300, 448, 1, 2)
		Collide(ball, paddle, nil)
		assert.Equal(t, -2.0, ball.VY)
	})

	t.Run("upward ball keeps going up", func(t *testing.T) {
		ball := newTestBall(300, 470, 1, -4)
		Collide(ball, paddle, nil)
		assert.Equal(t, -4.0, ball.VY)
	})

	t.Run("miss", func(t *testing.T) {
		ball := newTestBall(100, 450, 1, 4)
		Collide(ball, paddle, nil)
		assert.Equal(t, 4.0, ball.VY)
	})
}

func TestCollideDestroysAtMostOneBlock(t *testing.T) {
	blocks := []*Block{{X: 50, Y: 50}, {X: 95, Y: 50}}
	ball := newTestBall(85, 55, 3, -3)

	out := Collide(ball, NewPaddle(DefaultPaddleWidth, DefaultPaddleHeight), blocks)

	require.True(t, out.BlockHit)
	assert.Equal(t, 0, out.HitIndex)
	assert.True(t, blocks[0].Destroyed())
	assert.False(t, blocks[1].Destroyed(), "only the first intersecting block is hit")
	assert.Equal(t, 3.0, ball.VY)
}

func TestCollideSkipsDestroyedBlocks(t *testing.T) {
	blocks := []*Block{{X: 50, Y: 50}, {X: 95, Y: 50}}
	blocks[0].Destroy()
	ball := newTestBall(85, 55, 3, -3)

	out := Collide(ball, NewPaddle(DefaultPaddleWidth, DefaultPaddleHeight), blocks)

	require.True(t, out.BlockHit)
	assert.Equal(t, 1, out.HitIndex)
	assert.True(t, blocks[1].Destroyed())
}

func TestCollideNoBlockHit(t *testing.T) {
	blocks := GenerateGrid(InitialRows, GridCols, newRNG(1))
	ball := newTestBall(300, 300, 3, -3)

	out := Collide(ball, NewPaddle(DefaultPaddleWidth, DefaultPaddleHeight), blocks)

	assert.False(t, out.BlockHit)
	assert.Equal(t, -1, out.HitIndex)
	for _, b := range blocks {
		assert.False(t, b.Destroyed())
	}
}

func TestCompact(t *testing.T) {
	blocks := []*Block{{X: 1}, {X: 2}, {X: 3}, {X: 4}}
	blocks[1].Destroy()
	blocks[3].Destroy()

	got := Compact(blocks)

	require.Len(t, got, 2)
	assert.Equal(t, 1.0, got[0].X)
	assert.Equal(t, 3.0, got[1].X)

	assert.Empty(t, Compact(nil))
}
