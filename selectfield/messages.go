package selectfield

import tea "github.com/charmbracelet/bubbletea"

// ChangedMsg is emitted as a command on every committed selection change,
// including clears. Selection is the selected option in single mode, a
// []any in multi mode, or nil when cleared.
type ChangedMsg struct {
	Selection any
}

// DismissMsg is emitted when the menu is dismissed without a selection
// change.
type DismissMsg struct{}

// --- Presenter gestures ---
//
// A presenter translates one user gesture into exactly one of these; the
// field maps row indexes back onto the options collection and drives the
// state machine. Selection logic never lives in a presenter.

type pickMsg struct{ index int }

type toggleMsg struct{ index int }

type clearMsg struct{}

type dismissMsg struct{}

func pickCmd(index int) tea.Cmd {
	return func() tea.Msg { return pickMsg{index: index} }
}

func toggleCmd(index int) tea.Cmd {
	return func() tea.Msg { return toggleMsg{index: index} }
}

func clearCmd() tea.Msg { return clearMsg{} }

func dismissCmd() tea.Msg { return dismissMsg{} }
