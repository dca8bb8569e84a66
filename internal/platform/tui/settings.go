package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// SettingsView is a read-only table of the effective configuration.
type SettingsView struct {
	table table.Model
}

// settingsRows flattens cfg into key/value/description rows.
func settingsRows(cfg config.TetrisConfig) []table.Row {
	itoa := strconv.Itoa
	return []table.Row{
		{"timing.frame_ms", itoa(cfg.Timing.FrameMS), "host frame period (ms)"},
		{"timing.gravity_every", itoa(cfg.Timing.GravityEvery), "frames per gravity step"},
		{"input.move_repeat_frames", itoa(cfg.Input.MoveRepeatFrames), "held move cadence"},
		{"input.rotate_repeat_frames", itoa(cfg.Input.RotateRepeatFrames), "held rotate cadence"},
		{"input.release_frames", itoa(cfg.Input.ReleaseFrames), "window for repeat/release"},
		{"spawn.x", itoa(cfg.Spawn.X), "spawn column"},
		{"spawn.y", itoa(cfg.Spawn.Y), "spawn row"},
		{"generator.discard_draw", strconv.FormatBool(cfg.Generator.DiscardDraw), "draw twice per lock"},
	}
}

// NewSettingsView builds the table for cfg.
func NewSettingsView(cfg config.TetrisConfig) SettingsView {
	rows := settingsRows(cfg)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 28},
			{Title: "Value", Width: 8},
			{Title: "Meaning", Width: 24},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return SettingsView{table: t}
}

// Update forwards navigation keys to the table.
func (v SettingsView) Update(msg tea.Msg) (SettingsView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the table.
func (v SettingsView) View() string {
	return v.table.View()
}

// Rows returns the table rows, mainly for tests.
func (v SettingsView) Rows() []table.Row {
	return v.table.Rows()
}
