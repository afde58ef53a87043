// Package gui runs a session in a desktop window using ebiten.
//
// The window shows the world 1:1 at 600x500. ebiten drives the tick loop
// at the configured TPS and keys are sampled as true held state, so no
// press-and-hold emulation is needed.
package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/block-bash/internal/core"
	"github.com/vovakirdan/block-bash/internal/game"
)

// Title is the window title.
const Title = "Block Bash"

const (
	hudMargin  = 8
	lineHeight = 16
)

var (
	colorBackground = color.RGBA{0x10, 0x10, 0x18, 0xff}
	colorPaddle     = color.RGBA{0x40, 0x80, 0xff, 0xff}
	colorBall       = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	colorText       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorGameOver   = color.RGBA{0xff, 0x50, 0x50, 0xff}
	colorOverlay    = color.RGBA{0x00, 0x00, 0x00, 0xc0}
)

// blockColors holds one fill per block variant.
var blockColors = []color.RGBA{
	{0xe0, 0x40, 0x40, 0xff},
	{0xf0, 0x90, 0x30, 0xff},
	{0xf0, 0xe0, 0x40, 0xff},
	{0x50, 0xd0, 0x60, 0xff},
	{0x40, 0xd0, 0xe0, 0xff},
}

// hudFace wraps the fixed 7x13 bitmap font for text/v2.
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// ScoreRecorder stores finished games. *storage.Store implements it.
type ScoreRecorder interface {
	SaveScore(score, level int) (int64, error)
}

// Options configures a Game.
type Options struct {
	// History records each finished game once. Optional.
	History ScoreRecorder
	Logger  *log.Logger
}

// KeyState reports whether a key is currently held.
type KeyState func(ebiten.Key) bool

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session    *game.Session
	opts       Options
	pressed    KeyState
	state      core.GameState
	scoreSaved bool
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wraps a session for the window loop.
func NewGame(session *game.Session, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Game{
		session: session,
		opts:    opts,
		pressed: ebiten.IsKeyPressed,
		state:   session.State(),
	}
}

// ReadInput builds the input frame for one tick from the held keys.
func ReadInput(pressed KeyState) core.InputFrame {
	frame := core.NewInputFrame()
	if pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA) {
		frame.Set(core.ActionLeft)
	}
	if pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD) {
		frame.Set(core.ActionRight)
	}
	if pressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}
	if pressed(ebiten.KeyQ) || pressed(ebiten.KeyEscape) {
		frame.Set(core.ActionQuit)
	}
	return frame
}

// Update runs one simulation tick.
func (g *Game) Update() error {
	frame := ReadInput(g.pressed)
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	g.state = g.session.Step(frame).State

	switch {
	case g.state.GameOver && !g.scoreSaved:
		g.recordScore()
		g.scoreSaved = true
	case !g.state.GameOver:
		g.scoreSaved = false
	}
	return nil
}

func (g *Game) recordScore() {
	if g.opts.History == nil || g.state.Score <= 0 {
		return
	}
	if _, err := g.opts.History.SaveScore(g.state.Score, g.state.Level); err != nil {
		g.opts.Logger.Error("cannot record score", "score", g.state.Score, "err", err)
	}
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	drawSnapshot(screen, &snap)
}

// Layout keeps the logical screen at world size; ebiten scales the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return game.WindowWidth, game.WindowHeight
}

// State returns the last game state seen by the loop.
func (g *Game) State() core.GameState {
	return g.state
}

func drawSnapshot(screen *ebiten.Image, snap *game.Snapshot) {
	screen.Fill(colorBackground)

	for _, b := range snap.Blocks {
		fillRect(screen, b.Rect, BlockColor(b.Variant))
	}
	fillRect(screen, snap.Paddle, colorPaddle)

	cx, cy := snap.Ball.Center()
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(snap.Ball.W/2), colorBall, true)

	drawText(screen, fmt.Sprintf("Score: %d", snap.Score), hudMargin, hudMargin, colorText)
	drawText(screen, fmt.Sprintf("High Score: %d", snap.HighScore), hudMargin, hudMargin+lineHeight, colorText)
	drawText(screen, fmt.Sprintf("Level: %d", snap.Level), hudMargin, hudMargin+2*lineHeight, colorText)

	if snap.GameOver {
		vector.DrawFilledRect(screen, 0, 0, game.WindowWidth, game.WindowHeight, colorOverlay, false)
		drawCentered(screen, fmt.Sprintf("Game Over! Final Score: %d", snap.FinalScore()), game.WindowHeight/2-lineHeight, colorGameOver)
		drawCentered(screen, "Press R to Restart", game.WindowHeight/2+lineHeight/2, colorText)
	}
}

// BlockColor returns the fill for a block variant.
func BlockColor(variant int) color.RGBA {
	if variant < 0 {
		variant = -variant
	}
	return blockColors[variant%len(blockColors)]
}

func fillRect(screen *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

func drawCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	w, _ := text.Measure(s, hudFace, lineHeight)
	drawText(screen, s, (game.WindowWidth-w)/2, y, clr)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(session *game.Session, tickRate int, opts Options) error {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}

	ebiten.SetWindowSize(game.WindowWidth, game.WindowHeight)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(tickRate)

	if err := ebiten.RunGame(NewGame(session, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
