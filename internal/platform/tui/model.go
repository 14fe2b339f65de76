package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Drag distance, in cells, that maps to a full-scale stick deflection.
// Cells are about twice as tall as wide.
const (
	dragRadiusCols = 8
	dragRadiusRows = 4
)

// Game is the contract the terminal loop drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	HUD() core.HUD
	TickInterval() time.Duration
	Err() error
	// Stop cancels pending timers when the model is done with the game.
	Stop()
}

// ScoreRecorder stores finished runs.
type ScoreRecorder interface {
	SaveScore(gameID string, score, level int, survival time.Duration) (int64, error)
}

// Options configures a game Model.
type Options struct {
	Store         ScoreRecorder      // Optional run history
	Logger        *log.Logger        // Defaults to a discarding logger
	Renderer      *lipgloss.Renderer // Defaults to the process renderer
	HoldWindow    time.Duration      // Defaults to DefaultHoldWindow
	ScreenshotDir string             // Defaults to ~/.arcade/screenshots
	Embedded      bool               // Quit returns control to a parent model
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     Game
	screen   *core.Screen
	store    ScoreRecorder
	logger   *log.Logger
	renderer *ScreenRenderer
	config   core.RuntimeConfig
	input    *InputState
	keys     KeyMap
	help     help.Model
	hud      hudView
	state    core.GameState

	screenshotDir string
	embedded      bool
	loop          uint64

	width, height    int
	dragging         bool
	anchorX, anchorY int

	quitting   bool
	done       bool
	scoreSaved bool // Whether the run has been recorded for the current game over
	lastErr    error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()
	renderer := NewScreenRenderer(opts.Renderer)

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:         opts.Store,
		logger:        logger,
		renderer:      renderer,
		config:        cfg,
		input:         NewInputState(keys, opts.HoldWindow),
		keys:          keys,
		help:          h,
		hud:           newHUDView(renderer.Lipgloss()),
		screenshotDir: opts.ScreenshotDir,
		embedded:      opts.Embedded,
		loop:          nextLoop(),
		width:         cfg.ScreenW,
		height:        cfg.ScreenH,
	}
	m.resizeScreen()
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.game.TickInterval(), m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
		// The canvas is resolution independent; only the screen changes.
		m.resizeScreen()
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop || m.done || m.quitting {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.game.Stop()
		if m.embedded {
			m.done = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
		return m, nil
	}

	m.input.Press(msg, time.Now())
	return m, nil
}

// handleMouse turns a left-button drag into an analog stick: the press
// point is the stick center and the pointer offset is the deflection.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.dragging = true
		m.anchorX, m.anchorY = msg.X, msg.Y
		m.input.SetStick(core.Vec{})
	case tea.MouseActionMotion:
		if m.dragging {
			m.input.SetStick(stickVector(msg.X-m.anchorX, msg.Y-m.anchorY))
		}
	case tea.MouseActionRelease:
		m.dragging = false
		m.input.ReleaseStick()
	}
	return m, nil
}

// stickVector maps a drag offset in cells to a direction with length at most 1.
func stickVector(dx, dy int) core.Vec {
	v := core.Vec{X: float64(dx) / dragRadiusCols, Y: float64(dy) / dragRadiusRows}
	if l := math.Hypot(v.X, v.Y); l > 1 {
		v = v.Scale(1 / l)
	}
	return v
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Frame(now))
	m.state = result.State

	if err := m.game.Err(); err != nil && err != m.lastErr {
		m.logger.Error("persistence failed", "game", m.game.ID(), "error", err)
		m.lastErr = err
	}

	switch {
	case m.state.GameOver && !m.scoreSaved:
		m.recordRun()
		m.scoreSaved = true
	case !m.state.GameOver && m.scoreSaved:
		// Restarted
		m.scoreSaved = false
		m.lastErr = nil
		m.logger.Info("game restarted", "game", m.game.ID())
	}

	return m, tickCmd(m.game.TickInterval(), m.loop)
}

// recordRun logs the finished run and adds it to the history.
func (m *Model) recordRun() {
	hud := m.game.HUD()
	m.logger.Info("game over",
		"game", m.game.ID(),
		"total", hud.TotalScore,
		"level", hud.Level,
		"survival", hud.Survival,
	)
	if m.store == nil || hud.TotalScore <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), hud.TotalScore, hud.Level, hud.Survival); err != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// resizeScreen fits the game screen above the HUD and help lines.
func (m *Model) resizeScreen() {
	chrome := 1 + lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.width, core.Max(m.height-chrome, 0))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.done {
		return ""
	}

	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.Render(m.screen),
		m.hud.View(m.game.HUD(), m.width),
		m.help.View(m.keys),
	)
}

// Done reports whether an embedded model asked to return to its parent.
func (m Model) Done() bool {
	return m.done
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	opts.Embedded = false
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to steer
	)

	_, err := p.Run()
	return err
}
