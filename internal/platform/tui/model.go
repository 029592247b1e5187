package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// helpRows is the number of terminal rows reserved below the game screen.
const helpRows = 1

// timed is implemented by games that track play time.
type timed interface {
	Elapsed() time.Duration
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	fixedSeed bool // Seed came from the caller; keep it across restarts
	keys      KeyMap
	held      *HeldKeys
	help      help.Model
	logger    *log.Logger
	now       func() time.Time
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game. Movement keys
// stay held for hold after their last press.
func NewModel(game Game, cfg core.RuntimeConfig, hold time.Duration, logger *log.Logger) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		config:    cfg,
		fixedSeed: fixed,
		keys:      DefaultKeyMap(),
		held:      NewHeldKeys(hold),
		help:      help.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.screen.Width(), "height", m.screen.Height())

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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records a key press for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID())
		return m, tea.Quit
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
	}

	m.held.Press(action, m.now())
	return m, nil
}

// handleResize fits the screen buffer to the terminal. The game keeps
// running; the viewport adapts on the next frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width

	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one simulation tick with the keys held at now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	in := m.held.Frame(now)

	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.held.Release()
		m.logger.Info("run restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	m.gameState = result.State
	if result.Ended {
		m.logEnd(result.State)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEnd(st core.GameState) {
	outcome := "lost"
	if st.Won {
		outcome = "won"
	}
	kv := []any{"game", m.game.ID(), "outcome", outcome, "coins", st.Score}
	if t, ok := m.game.(timed); ok {
		kv = append(kv, "elapsed", t.Elapsed().Round(time.Millisecond))
	}
	m.logger.Info("run ended", kv...)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the game.
func Run(game Game, cfg core.RuntimeConfig, hold time.Duration, logger *log.Logger) error {
	model := NewModel(game, cfg, hold, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
