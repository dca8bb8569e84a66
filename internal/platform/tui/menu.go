package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	menuSummaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuKeyMap defines the start menu bindings.
type MenuKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Settings key.Binding
	Quit     key.Binding
}

// ShortHelp returns bindings for the footer.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Settings, k.Quit}
}

// FullHelp returns all bindings.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Settings, k.Quit}}
}

// DefaultMenuKeyMap returns the default start menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Settings: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "settings"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the start screen: pick a game or inspect the settings.
type MenuModel struct {
	items        []registry.GameInfo
	cursor       int
	width        int
	keys         MenuKeyMap
	help         help.Model
	settings     SettingsView
	showSettings bool
	selected     string
	quitting     bool
}

// NewMenuModel creates a menu over the registered games.
func NewMenuModel(cfg config.TetrisConfig, width int) MenuModel {
	return MenuModel{
		items:    registry.List(),
		width:    width,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
		settings: NewSettingsView(cfg),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.showSettings && msg.String() == "esc" {
				m.showSettings = false
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Settings):
			m.showSettings = !m.showSettings
		case m.showSettings:
			var cmd tea.Cmd
			m.settings, cmd = m.settings.Update(msg)
			return m, cmd
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				m.selected = m.items[m.cursor].ID
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View renders the game list or the settings table.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T E T R I S"), m.width))
	b.WriteString("\n\n")

	if m.showSettings {
		b.WriteString(m.settings.View())
	} else {
		for i, item := range m.items {
			line := "  " + item.Title
			if i == m.cursor {
				line = menuSelectedStyle.Render("> " + item.Title)
			}
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
			if item.Summary != "" {
				b.WriteString(centerText(menuSummaryStyle.Render(item.Summary), m.width))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen game ID, or "" if none.
func (m MenuModel) Selected() string {
	return m.selected
}

// centerText pads text to center it within width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu shows the start menu and returns the chosen game ID.
// An empty ID means the user quit.
func RunMenu(cfg config.TetrisConfig, width int) (string, error) {
	p := tea.NewProgram(NewMenuModel(cfg, width), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("tui: run menu: %w", err)
	}

	m, ok := final.(MenuModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
