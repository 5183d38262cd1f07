package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/runner"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// helpRows is the number of terminal rows reserved for the help bar.
const helpRows = 1

// Options configures a game model.
type Options struct {
	Config  config.SnakeConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional
	Logger  *log.Logger    // Optional

	// ScreenshotDir is where ctrl+s dumps go. Defaults to ~/.snake/screenshots.
	ScreenshotDir      string
	DisableScreenshots bool
}

// Model is the Bubble Tea model for a snake game.
type Model struct {
	runner        *runner.Runner
	ticker        *ticker
	board         *board
	screen        *core.Screen
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	screenshotDir string
	screenshots   bool
	quitting      bool
}

// NewModel creates a new Bubble Tea model. The run starts in Init.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = opts.Config.TickPeriod()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("seed", cfg.Seed)

	rules := opts.Config.Rules()
	best := 0
	var recorder runner.Recorder
	if opts.Store != nil {
		recorder = opts.Store
		if high, err := opts.Store.HighScore(); err == nil {
			best = high
		} else {
			logger.Warn("could not read high score", "error", err)
		}
	}

	t := newTicker()
	b := newBoard(rules.Grid, best)
	r := runner.New(runner.Options{
		Rules:    rules,
		Period:   cfg.TickPeriod,
		Rand:     rand.New(rand.NewSource(cfg.Seed)),
		Ticks:    t,
		Renderer: b,
		Scores:   b,
		Recorder: recorder,
		Logger:   logger,
	})

	h := help.New()
	h.ShowAll = false

	return Model{
		runner:        r,
		ticker:        t,
		board:         b,
		screen:        core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		keys:          DefaultKeyMap(),
		help:          h,
		logger:        logger,
		screenshotDir: opts.ScreenshotDir,
		screenshots:   !opts.DisableScreenshots,
	}
}

// Init starts the first run and its tick loop.
func (m Model) Init() tea.Cmd {
	m.runner.Start()
	return m.ticker.Take()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.runner.Shutdown()
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		if m.screenshots {
			m.saveScreenshot()
		}
		return m, nil
	case core.ActionPause:
		m.runner.Pause()
	case core.ActionResume:
		m.runner.Resume()
	case core.ActionRestart:
		m.runner.Restart()
	default:
		if action.IsDirection() {
			d, _ := actionDirection(action)
			m.runner.Direction(d)
		}
	}

	// Resume and restart open a new tick generation.
	return m, m.ticker.Take()
}

// handleResize processes window resize events. The run is kept; a board
// that no longer fits is replaced by a notice until the window grows.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one update step if the tick belongs to the live source.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticker.Accept(msg) {
		return m, nil
	}
	m.runner.Tick()
	return m, m.ticker.Continue(msg.Gen)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.board.Draw(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.board.Draw(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Runner exposes the game runner, mainly for tests.
func (m Model) Runner() *runner.Runner {
	return m.runner
}

// Run starts the Bubble Tea program for one local game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
