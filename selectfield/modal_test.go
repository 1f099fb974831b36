package selectfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModal_ViewListsRowsAndTitle(t *testing.T) {
	m := newModal("Pick a region", false, false)
	m.SetRows(sampleRows())
	m.Open()

	view := m.View()
	assert.Contains(t, view, "Pick a region")
	assert.Contains(t, view, "US East")
	assert.Contains(t, view, "Europe")
	assert.Contains(t, view, "(None)")
	assert.Contains(t, view, "enter select")
}

func TestModal_EnterPicks(t *testing.T) {
	m := newModal("", false, false)
	m.SetRows(sampleRows())
	m.Open()
	require.Equal(t, 3, m.cursor, "cursor starts on the selected row")

	var p MenuPresenter = m
	p, _ = gesture(p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	_, msg := gesture(p, tea.KeyMsg{Type: tea.KeyEnter})

	require.IsType(t, pickMsg{}, msg)
	assert.Equal(t, 1, msg.(pickMsg).index)
}

func TestModal_SpaceTogglesInMulti(t *testing.T) {
	m := newModal("", true, true)
	m.SetRows(sampleRows()[1:])
	m.Open()

	var p MenuPresenter = m
	_, msg := gesture(p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	require.IsType(t, toggleMsg{}, msg)
	assert.Equal(t, 2, msg.(toggleMsg).index, "toggle targets the row under the cursor")
}

func TestModal_SpaceInertInSingleMode(t *testing.T) {
	m := newModal("", false, false)
	m.SetRows(sampleRows()[1:])
	m.Open()

	var p MenuPresenter = m
	_, msg := gesture(p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	assert.Nil(t, msg)
}

func TestModal_NoneRowClears(t *testing.T) {
	m := newModal("", false, false)
	rows := sampleRows()
	rows[3].Selected = false
	m.SetRows(rows)
	m.Open()

	var p MenuPresenter = m
	_, msg := gesture(p, tea.KeyMsg{Type: tea.KeyEnter})
	assert.IsType(t, clearMsg{}, msg)
}

func TestModal_EscAndQDismiss(t *testing.T) {
	m := newModal("", false, false)
	m.SetRows(sampleRows())

	var p MenuPresenter = m
	_, msg := gesture(p, tea.KeyMsg{Type: tea.KeyEsc})
	assert.IsType(t, dismissMsg{}, msg)

	_, msg = gesture(p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.IsType(t, dismissMsg{}, msg)
}

func TestModal_CentersWhenSized(t *testing.T) {
	m := newModal("Pick", false, false)
	m.SetRows(sampleRows())
	m.SetSize(80, 24)
	m.Open()

	view := m.View()
	assert.Contains(t, view, "Pick")
	// Placement pads the box into the full terminal size.
	assert.Greater(t, len(view), len(ModalStyle.Render("Pick")))
}
