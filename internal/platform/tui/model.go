package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is what the platform drives: discrete input frames in, a screen out.
type Game interface {
	ID() string
	Title() string

	// Reset starts a new session. Called on every affirmative start/restart answer.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

type stage int

const (
	stageStart stage = iota
	stagePlaying
	stagePaused
	stageGameOver
)

func (s stage) String() string {
	switch s {
	case stageStart:
		return "start"
	case stagePlaying:
		return "playing"
	case stagePaused:
		return "paused"
	case stageGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	stage      stage
	tickGen    int // Current tick loop; stale TickMsgs are dropped
	sessions   int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The last terminal row is reserved for the help line.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		stage:      stageStart,
	}
}

// Init waits for the start prompt; no ticks run until the player answers.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.game.Title())
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
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.stage {
	case stageStart, stageGameOver:
		switch action {
		case core.ActionConfirm:
			return m.startSession()
		case core.ActionDecline:
			m.logger.Info("player declined", "stage", m.stage)
			m.quitting = true
			return m, tea.Quit
		}

	case stagePlaying:
		switch action {
		case core.ActionJump:
			m.inputFrame.Set(core.ActionJump)
		case core.ActionPause:
			m.stage = stagePaused
			m.tickGen++
		}

	case stagePaused:
		if action == core.ActionPause {
			m.stage = stagePlaying
			m.tickGen++
			return m, tickCmd(m.config.TickRate, m.tickGen)
		}
	}

	return m, nil
}

// startSession resets the game and starts a fresh tick loop.
func (m Model) startSession() (tea.Model, tea.Cmd) {
	// A fixed seed only applies to the first session; restarts reseed from the clock.
	if m.sessions > 0 || m.config.Seed == 0 {
		m.config.Seed = time.Now().UnixNano()
	}
	m.sessions++

	m.game.Reset(m.config)
	m.inputFrame.Clear()
	m.stage = stagePlaying
	m.tickGen++

	m.logger.Info("session started", "session", m.sessions, "seed", m.config.Seed)
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// handleResize processes window resize events.
// The simulation uses logical units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width

	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.stage != stagePlaying || msg.Gen != m.tickGen {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if !result.State.Running {
		m.stage = stageGameOver
		m.logger.Info("game over", "session", m.sessions, "score", result.State.Score)
		return m, nil
	}

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
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

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	drawDialog(m.screen, promptLines(m.stage, m.game.Title(), m.game.State().Score))

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.ShortHelpView(m.keys.helpFor(m.stage)))
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
