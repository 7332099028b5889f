package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crabout/internal/core"
)

// Game is the simulation driven by the terminal front-end.
type Game interface {
	ID() string
	Title() string
	Step(in core.InputFrame, elapsed float64) core.StepResult
	State() core.GameState
	Render(dst *core.Screen)
}

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     *heldKeys
	pending  core.InputFrame // Edge-triggered actions since the last tick
	state    core.GameState
	lastTick time.Time
	logger   *log.Logger
	clock    func() time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.BaseTickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, 0),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		held:    newHeldKeys(DefaultHoldWindow),
		pending: core.NewInputFrame(),
		state:   game.State(),
		logger:  logger,
		clock:   time.Now,
	}
	m.layout()
	return m
}

// Init sets the terminal title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score, "phase", m.state.Phase, "finished", m.state.Finished())
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.held.Press(action, m.clock())
	}

	// Directions are also queued so a single tap moves at least one tick
	m.pending.Set(action)
	return m, nil
}

// handleResize processes window resize events. The field is scaled to the new
// grid, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout gives the game every row the help footer leaves free.
func (m Model) layout() {
	rows := m.config.ScreenH - lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, max(rows, 0))
}

// handleTick runs one simulation step scaled by the time since the last tick.
// The game turns the scale into whole ticks of motion.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := 1.0
	if !m.lastTick.IsZero() {
		elapsed = core.FrameScale(now.Sub(m.lastTick))
	}
	m.lastTick = now

	in := core.NewInputFrame()
	for a := range m.pending.Actions {
		in.Set(a)
	}
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if m.held.Active(a, now) {
			in.Set(a)
		}
	}

	result := m.game.Step(in, elapsed)
	m.state = result.State
	m.logEvents(result)

	// A fresh or finished round starts with no direction held
	if result.Has(core.EventRestarted) || result.Has(core.EventGameOver) {
		m.held.Release()
	}

	m.pending.Clear()
	return m, tickCmd(m.config.TickRate)
}

// logEvents reports what happened during a step. Session milestones go to
// info, per-collision events to debug.
func (m Model) logEvents(result core.StepResult) {
	for _, e := range result.Events {
		kv := []any{
			"event", e.Type,
			"tick", e.Tick,
			"score", result.State.Score,
			"lives", result.State.Lives,
		}
		switch e.Type {
		case core.EventGameOver, core.EventWon, core.EventRestarted:
			m.logger.Info("game", kv...)
		default:
			m.logger.Debug("game", kv...)
		}
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.crabout/screenshots and returns the file path.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".crabout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := m.clock().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game and blocks until the
// player quits.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
