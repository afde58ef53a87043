package game

import "github.com/vovakirdan/block-bash/internal/core"

// Paddle is the player-controlled paddle. It only moves horizontally.
type Paddle struct {
	X, Y float64
	W, H float64
}

// NewPaddle creates a paddle of the given size at the start position.
func NewPaddle(w, h float64) *Paddle {
	return &Paddle{X: PaddleStartX, Y: PaddleStartY, W: w, H: h}
}

// MoveLeft moves the paddle one step left, stopping at the left wall.
func (p *Paddle) MoveLeft() {
	p.X = core.ClampF(p.X-PaddleStep, 0, WindowWidth-p.W)
}

// MoveRight moves the paddle one step right, stopping at the right wall.
func (p *Paddle) MoveRight() {
	p.X = core.ClampF(p.X+PaddleStep, 0, WindowWidth-p.W)
}

// Reset puts the paddle back at its start position.
func (p *Paddle) Reset() {
	p.X = PaddleStartX
	p.Y = PaddleStartY
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Ball is the moving ball. X, Y is the top-left corner of its sprite.
type Ball struct {
	X, Y   float64
	VX, VY float64 // Velocity per tick
	W, H   float64
}

// NewBall creates a ball of the given size at the start position.
func NewBall(w, h float64) *Ball {
	b := &Ball{W: w, H: h}
	b.Reset()
	return b
}

// Reset puts the ball back at the window center with the initial velocity.
func (b *Ball) Reset() {
	b.X = BallStartX
	b.Y = BallStartY
	b.VX = InitialVX
	b.VY = InitialVY
}

// Advance moves the ball by its velocity.
func (b *Ball) Advance() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Scale multiplies both velocity components by f.
func (b *Ball) Scale(f float64) {
	b.VX *= f
	b.VY *= f
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Block is a single breakable block.
type Block struct {
	X, Y      float64
	Variant   int // Cosmetic only
	destroyed bool
}

// Destroy marks the block as destroyed. Calling it again has no effect.
func (b *Block) Destroy() {
	b.destroyed = true
}

// Destroyed reports whether the block has been hit.
func (b *Block) Destroyed() bool {
	return b.destroyed
}

// Bounds returns the block's bounding box.
func (b *Block) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, BlockWidth, BlockHeight)
}

var (
	_ core.HasBounds = (*Paddle)(nil)
	_ core.HasBounds = (*Ball)(nil)
	_ core.HasBounds = (*Block)(nil)
)
