package game

import (
	"fmt"

	"github.com/vovakirdan/block-bash/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	PaddleChar = '▀'
	BallChar   = '●'
)

// BlockGlyphs holds one glyph per block variant.
var BlockGlyphs = []rune{'█', '▓', '▒', '█', '▓'}

// Minimum screen size the renderer can fit the field into.
const (
	MinScreenW = 30
	MinScreenH = 10
)

// Render draws the session onto a terminal cell grid.
func (s *Session) Render(dst *core.Screen) {
	snap := s.Snapshot()
	RenderSnapshot(dst, &snap)
}

// RenderSnapshot draws a snapshot onto a terminal cell grid. Row 0 holds the
// HUD; the remaining rows show the 600x500 world scaled to fit.
func RenderSnapshot(dst *core.Screen, snap *Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	v := newViewport(dst.Width(), dst.Height())

	renderHUD(dst, snap)
	renderBlocks(dst, v, snap.Blocks)
	renderPaddle(dst, v, snap.Paddle)
	renderBall(dst, v, snap.Ball)

	if snap.GameOver {
		drawCenteredBox(dst,
			fmt.Sprintf("Game Over! Final Score: %d", snap.FinalScore()),
			"Press R to Restart")
	}
}

// viewport maps world coordinates to screen cells below the HUD row.
type viewport struct {
	cols, rows int
	top        int
}

func newViewport(w, h int) viewport {
	return viewport{cols: w, rows: h - 1, top: 1}
}

func (v viewport) col(x float64) int {
	return int(x * float64(v.cols) / WindowWidth)
}

func (v viewport) row(y float64) int {
	return v.top + int(y*float64(v.rows)/WindowHeight)
}

// span returns the cell rectangle covered by r, at least one cell in each direction.
func (v viewport) span(r core.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.col(r.X), v.row(r.Y)
	x1 = max(v.col(r.Right()), x0+1)
	y1 = max(v.row(r.Bottom()), y0+1)
	return x0, y0, x1, y1
}

// renderHUD draws score, level and high score on the top row.
func renderHUD(dst *core.Screen, snap *Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite)

	levelText := fmt.Sprintf("Level: %d", snap.Level)
	dst.DrawTextColored((dst.Width()-len(levelText))/2, 0, levelText, core.ColorCyan)

	highText := fmt.Sprintf("High Score: %d", snap.HighScore)
	dst.DrawTextColored(dst.Width()-len(highText)-1, 0, highText, core.ColorYellow)
}

func renderBlocks(dst *core.Screen, v viewport, blocks []BlockView) {
	for _, b := range blocks {
		variant := b.Variant % BlockVariants
		x0, y0, x1, y1 := v.span(b.Rect)
		// Leave a one-cell gap so neighbouring blocks stay distinguishable.
		if x1-x0 > 1 {
			x1--
		}
		dst.DrawCells(x0, y0, x1, y1, BlockGlyphs[variant], core.BlockPalette[variant])
	}
}

func renderPaddle(dst *core.Screen, v viewport, r core.Rect) {
	x0, y0, x1, _ := v.span(r)
	dst.DrawCells(x0, y0, x1, y0+1, PaddleChar, core.ColorBlue)
}

func renderBall(dst *core.Screen, v viewport, r core.Rect) {
	cx, cy := r.Center()
	dst.SetColored(v.col(cx), v.row(cy), BallChar, core.ColorWhite)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawCells(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
