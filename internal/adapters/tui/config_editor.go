// Package tui provides the interactive settings editor, a small
// Bubble Tea form separate from the fullscreen timer UI.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdhalbert/tomodoro/internal/config"
	"github.com/jdhalbert/tomodoro/internal/domain"
)

// Editor fields, top to bottom.
const (
	fieldWorkMinutes = iota
	fieldBreakMinutes
	fieldNotifications
	fieldSound
	fieldCount
)

type editorModel struct {
	cfg     *config.Config
	inputs  [2]textinput.Model
	toggles [2]bool
	cursor  int
	saved   bool
	aborted bool
	errMsg  string
}

func newEditorModel(cfg *config.Config) editorModel {
	m := editorModel{
		cfg:     cfg,
		toggles: [2]bool{cfg.Notifications.Enabled, cfg.Notifications.Sound},
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 2
		ti.Width = 4
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[0].SetValue(strconv.Itoa(cfg.Timer.WorkMinutes))
	m.inputs[1].SetValue(strconv.Itoa(cfg.Timer.BreakMinutes))
	m.inputs[0].Focus()
	return m
}

func (m editorModel) Init() tea.Cmd { return textinput.Blink }

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "up", "shift+tab":
			m.setCursor(m.cursor - 1)
			return m, nil
		case "down", "tab":
			m.setCursor(m.cursor + 1)
			return m, nil
		case " ":
			switch m.cursor {
			case fieldNotifications:
				m.toggles[0] = !m.toggles[0]
				return m, nil
			case fieldSound:
				m.toggles[1] = !m.toggles[1]
				return m, nil
			}
		case "enter":
			if err := m.apply(); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.saved = true
			return m, tea.Quit
		}
	}

	if m.cursor < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.cursor], cmd = m.inputs[m.cursor].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *editorModel) setCursor(cursor int) {
	if cursor < 0 || cursor >= fieldCount {
		return
	}
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.cursor = cursor
	if cursor < len(m.inputs) {
		m.inputs[cursor].Focus()
	}
	m.errMsg = ""
}

// apply validates the form and writes it back into the config.
func (m *editorModel) apply() error {
	work, err := strconv.Atoi(strings.TrimSpace(m.inputs[0].Value()))
	if err != nil || !domain.ValidMinutes(work) {
		return domain.ErrInvalidMinutes
	}
	brk, err := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value()))
	if err != nil || !domain.ValidMinutes(brk) {
		return domain.ErrInvalidMinutes
	}

	m.cfg.Timer.WorkMinutes = work
	m.cfg.Timer.BreakMinutes = brk
	m.cfg.Notifications.Enabled = m.toggles[0]
	m.cfg.Notifications.Sound = m.toggles[1]
	return nil
}

func (m editorModel) View() string {
	theme := m.cfg.Theme

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorTitle))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorWork)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorPrompt))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorWork))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  tomodoro settings") + "\n\n")

	rows := []string{
		fmt.Sprintf("%-20s %s", "Work minutes", m.inputs[0].View()),
		fmt.Sprintf("%-20s %s", "Break minutes", m.inputs[1].View()),
		fmt.Sprintf("%-20s %s", "Notifications", checkbox(m.toggles[0])),
		fmt.Sprintf("%-20s %s", "Sound", checkbox(m.toggles[1])),
	}
	for i, row := range rows {
		if i == m.cursor {
			b.WriteString("  " + activeStyle.Render("▸ ") + row + "\n")
		} else {
			b.WriteString("    " + dimStyle.Render(row) + "\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("  "+m.errMsg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  ↑/↓ navigate · space toggle · enter save · esc cancel") + "\n")
	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// RunConfigEditor runs the interactive settings form, mutating cfg in
// place on save. It returns true when settings were saved.
func RunConfigEditor(cfg *config.Config) (bool, error) {
	final, err := tea.NewProgram(newEditorModel(cfg)).Run()
	if err != nil {
		return false, fmt.Errorf("failed to run settings editor: %w", err)
	}
	m, ok := final.(editorModel)
	if !ok {
		return false, nil
	}
	return m.saved && !m.aborted, nil
}
