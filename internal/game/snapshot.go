package game

import (
	"math"

	"github.com/vovakirdan/block-bash/internal/core"
)

// BlockView is a read-only copy of one active block.
type BlockView struct {
	Rect    core.Rect
	Variant int
}

// Snapshot is a read-only copy of everything a front-end needs to draw a frame.
// It shares no memory with the session.
type Snapshot struct {
	Tick      uint64
	Paddle    core.Rect
	Ball      core.Rect
	BallVX    float64
	BallVY    float64
	Blocks    []BlockView
	Score     int
	HighScore int
	Level     int
	GameOver  bool
}

// Snapshot returns the current render state.
func (s *Session) Snapshot() Snapshot {
	blocks := make([]BlockView, len(s.blocks))
	for i, b := range s.blocks {
		blocks[i] = BlockView{Rect: b.Bounds(), Variant: b.Variant}
	}
	return Snapshot{
		Tick:      s.tickCount,
		Paddle:    s.paddle.Bounds(),
		Ball:      s.ball.Bounds(),
		BallVX:    s.ball.VX,
		BallVY:    s.ball.VY,
		Blocks:    blocks,
		Score:     s.score,
		HighScore: s.highScore,
		Level:     s.level,
		GameOver:  s.state == StateGameOver,
	}
}

// FinalScore returns the score shown on the game-over screen, or 0 while playing.
func (snap *Snapshot) FinalScore() int {
	if !snap.GameOver {
		return 0
	}
	return snap.Score
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = hashRect(h, snap.Paddle)
	h = hashRect(h, snap.Ball)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}

	for _, b := range snap.Blocks {
		h = hashRect(h, b.Rect)
		h = h*31 + uint64(b.Variant) //#nosec G115 -- hash computation
	}

	return h
}

func hashRect(h uint64, r core.Rect) uint64 {
	h = h*31 + math.Float64bits(r.X)
	h = h*31 + math.Float64bits(r.Y)
	h = h*31 + math.Float64bits(r.W)
	return h*31 + math.Float64bits(r.H)
}
