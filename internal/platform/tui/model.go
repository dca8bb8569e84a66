package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// footerHeight is the number of rows kept for the help line.
const footerHeight = 1

// Options configures a play session.
type Options struct {
	Runtime core.RuntimeConfig
	Input   config.TetrisInput
	Logger  *log.Logger // nil discards log output
}

// Model is the Bubble Tea model hosting one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	repeater   *Repeater
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-footerHeight)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		repeater:   NewRepeater(opts.Input),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger.With("game", game.ID()),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
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

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session ended", "reason", "quit")
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	if m.repeater.Press(action) {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize resizes the screen buffer. The session is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-footerHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.repeater.Tick(&m.inputFrame)

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	if wasOver && !m.gameState.GameOver {
		m.logger.Info("session restarted")
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventLocked:
			m.logger.Debug("piece locked", "count", ev.Value)
		case core.EventLinesCleared:
			m.logger.Info("rows cleared", "rows", ev.Value)
		case core.EventGameOver:
			m.logger.Info("game over", "pieces", ev.Value)
		}
	}
}

// View renders the game screen followed by the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
