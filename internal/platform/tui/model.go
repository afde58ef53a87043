package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-bash/internal/core"
	"github.com/vovakirdan/block-bash/internal/game"
)

// ScoreRecorder stores finished games. *storage.Store implements it.
type ScoreRecorder interface {
	SaveScore(score, level int) (int64, error)
}

// Options configures a Model.
type Options struct {
	// History records each finished game once. Optional.
	History ScoreRecorder
	// Logger receives non-fatal errors. Defaults to the charm default logger.
	Logger *log.Logger
	// HoldTicks is how long a key press keeps its direction active.
	HoldTicks int
	// ScreenshotDir is where ctrl+s writes screen dumps. Empty disables screenshots.
	ScreenshotDir string
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that drives one game session.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	held       *heldKeys
	pending    core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a model around an existing session. The bottom row of
// the terminal is kept for the help bar.
func NewModel(session *game.Session, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	held := newHeldKeys(opts.HoldTicks)

	return Model{
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		opts:      opts,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		held:      &held,
		pending:   core.NewInputFrame(),
		gameState: session.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.held.press(action)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.pending.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize keeps the screen buffer in step with the terminal.
// The world is scaled, so the session itself is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.held.apply(&frame)

	result := m.session.Step(frame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.recordScore()
		m.held.release()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	m.pending.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordScore adds the finished game to the history.
func (m Model) recordScore() {
	if m.opts.History == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.opts.History.SaveScore(m.gameState.Score, m.gameState.Level); err != nil {
		m.opts.Logger.Error("cannot record score", "score", m.gameState.Score, "err", err)
	}
}

// saveScreenshot writes the current screen to a timestamped text file.
func (m Model) saveScreenshot() error {
	if m.opts.ScreenshotDir == "" {
		return nil
	}

	m.session.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", m.opts.ScreenshotDir, err)
	}

	filename := fmt.Sprintf("blockbash_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.opts.ScreenshotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the session and blocks until the player quits.
func Run(session *game.Session, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(session, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
