package game

import "math"

// Outcome reports what happened during one collision pass.
type Outcome struct {
	ExitedBottom bool // Ball reached the floor this tick
	BlockHit     bool // A block was destroyed this tick
	HitIndex     int  // Index of the destroyed block in the input slice, -1 if none
}

// Collide resolves collisions for one tick after the ball has moved.
//
// Checks run in a fixed order: side and top walls, floor, paddle, then blocks.
// At most one block is destroyed per call; the scan stops at the first
// non-destroyed block that intersects the ball.
func Collide(ball *Ball, paddle *Paddle, blocks []*Block) Outcome {
	out := Outcome{HitIndex: -1}

	checkWalls(ball)

	if ball.Bounds().Bottom() >= WindowHeight {
		out.ExitedBottom = true
	}

	// Deflect upward whatever the approach direction.
	if ball.Bounds().Intersects(paddle.Bounds()) {
		ball.VY = -math.Abs(ball.VY)
	}

	bounds := ball.Bounds()
	for i, b := range blocks {
		if b.Destroyed() || !bounds.Intersects(b.Bounds()) {
			continue
		}
		b.Destroy()
		ball.BounceY()
		out.BlockHit = true
		out.HitIndex = i
		break
	}

	return out
}

// checkWalls reflects the ball off the side walls and the ceiling.
// The two axes are checked independently so a corner flips both.
func checkWalls(ball *Ball) {
	r := ball.Bounds()
	if r.X <= 0 || r.Right() >= WindowWidth {
		ball.BounceX()
	}
	if r.Y <= 0 {
		ball.BounceY()
	}
}

// Compact removes destroyed blocks in place, keeping the order of the rest.
func Compact(blocks []*Block) []*Block {
	n := 0
	for _, b := range blocks {
		if !b.Destroyed() {
			blocks[n] = b
			n++
		}
	}
	clear(blocks[n:])
	return blocks[:n]
}
