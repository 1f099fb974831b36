package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuikit/selectkit/selectfield"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// demoModel wraps the field the way an application form would: it forwards
// messages, records committed selections, and quits on ctrl+c.
type demoModel struct {
	field    selectfield.Model
	title    string
	last     any
	quitting bool
}

func (m demoModel) Init() tea.Cmd {
	return m.field.Init()
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q":
			// q quits only while the menu is closed; open menus may want
			// the rune (filter text, modal dismiss).
			if !m.field.MenuOpen() {
				m.quitting = true
				return m, tea.Quit
			}
		}

	case selectfield.ChangedMsg:
		m.last = msg.Selection
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m demoModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.field.View())
	b.WriteString("\n\n")
	if m.last != nil {
		b.WriteString(fmt.Sprintf("last change: %v\n", m.last))
	}
	b.WriteString(dimStyle.Render("enter open/select · esc close · q quit"))
	b.WriteString("\n")
	return b.String()
}
