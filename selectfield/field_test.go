package selectfield

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"
)

func keyEnter() tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyDown() tea.Msg  { return tea.KeyMsg{Type: tea.KeyDown} }
func keyEsc() tea.Msg   { return tea.KeyMsg{Type: tea.KeyEsc} }

func options(ss ...string) []any {
	opts := make([]any, len(ss))
	for i, s := range ss {
		opts[i] = s
	}
	return opts
}

// pump applies msg and feeds the field's internal gesture messages back
// through Update, returning the externally visible messages. Cursor-blink
// and other component commands are dropped.
func pump(m Model, msg tea.Msg) (Model, []tea.Msg) {
	var out []tea.Msg
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		var cmd tea.Cmd
		m, cmd = m.Update(next)
		if cmd == nil {
			continue
		}
		switch produced := cmd().(type) {
		case pickMsg, toggleMsg, clearMsg, dismissMsg:
			queue = append(queue, produced)
		case ChangedMsg, DismissMsg:
			out = append(out, produced)
		}
	}
	return m, out
}

func pumpAll(m Model, msgs ...tea.Msg) (Model, []tea.Msg) {
	var out []tea.Msg
	for _, msg := range msgs {
		var produced []tea.Msg
		m, produced = pump(m, msg)
		out = append(out, produced...)
	}
	return m, out
}

func changes(msgs []tea.Msg) []ChangedMsg {
	var out []ChangedMsg
	for _, msg := range msgs {
		if c, ok := msg.(ChangedMsg); ok {
			out = append(out, c)
		}
	}
	return out
}

func TestScenario_SingleSelect(t *testing.T) {
	var seen []any
	m := New(options("one", "two", "three"),
		WithOnChange(func(sel any) { seen = append(seen, sel) }))
	m.Focus()

	// Open the menu; rows are (None), one, two, three with the cursor on
	// the none row. Move to "two" and pick it.
	m, out := pumpAll(m, keyEnter(), keyDown(), keyDown(), keyEnter())

	cs := changes(out)
	require.Len(t, cs, 1)
	assert.Equal(t, "two", cs[0].Selection)
	assert.Equal(t, []any{"two"}, seen)
	assert.False(t, m.MenuOpen(), "single-mode pick closes the menu")
	assert.Equal(t, "two", m.Label())
	assert.Equal(t, "two", m.Value())
}

func TestScenario_SingleRepeatSelectFiresOnce(t *testing.T) {
	m := New(options("one", "two"), WithoutNoneOption())
	m.Focus()

	m, out := pumpAll(m, keyEnter(), keyEnter()) // open, pick "one"
	require.Len(t, changes(out), 1)
	require.False(t, m.MenuOpen())

	// Open again; the cursor lands on the selected row. Picking it again
	// is a no-op.
	m, out = pumpAll(m, keyEnter(), keyEnter())
	assert.Empty(t, changes(out))
	assert.Equal(t, "one", m.Label())
}

func TestScenario_MultiSelectKeepsMenuOpen(t *testing.T) {
	m := New(options("one", "two", "three"),
		WithMode(ModeMulti),
		WithoutNoneOption())
	m.Focus()

	// Open, toggle "one", move to "three", toggle it.
	m, out := pumpAll(m, keyEnter(), keyEnter(), keyDown(), keyDown(), keyEnter())

	cs := changes(out)
	require.Len(t, cs, 2)
	assert.Equal(t, []any{"one"}, cs[0].Selection)
	assert.Equal(t, []any{"one", "three"}, cs[1].Selection)
	assert.True(t, m.MenuOpen(), "multi-mode toggles keep the menu open")
	assert.Equal(t, "one, three", m.Label())
}

func TestScenario_MultiOrderFollowsOptions(t *testing.T) {
	m := New(options("x", "y", "z"), WithMode(ModeMulti))
	m.Select("z")
	m.Select("x")
	assert.Equal(t, []any{"x", "z"}, m.Selection())
	assert.Equal(t, "x, z", m.Label())
}

func TestScenario_ClearViaNoneRow(t *testing.T) {
	m := New(options("one", "two"), WithDefault("one"))
	m.Focus()

	// The none row sits above the options; Open puts the cursor on the
	// selected row, so move up to reach it.
	m, out := pumpAll(m, keyEnter(), tea.KeyMsg{Type: tea.KeyUp}, keyEnter())

	cs := changes(out)
	require.Len(t, cs, 1)
	assert.Nil(t, cs[0].Selection)
	assert.False(t, m.MenuOpen(), "clearing closes the menu")
	assert.Equal(t, "", m.Label())
}

func TestEscDismissesWithoutChange(t *testing.T) {
	m := New(options("one", "two"))
	m.Focus()

	m, out := pumpAll(m, keyEnter(), keyEsc())
	assert.Empty(t, changes(out))
	require.Len(t, out, 1)
	assert.IsType(t, DismissMsg{}, out[0])
	assert.False(t, m.MenuOpen())
	assert.Equal(t, "", m.Label())
}

func TestDisabledFieldNeverOpens(t *testing.T) {
	m := New(options("one"), WithDisabled(true))
	m.Focus()

	m, out := pump(m, keyEnter())
	assert.Empty(t, out)
	assert.False(t, m.MenuOpen())

	m.OpenMenu()
	assert.False(t, m.MenuOpen())
}

func TestMenuNoneNeverOpens(t *testing.T) {
	m := New(options("one"), WithMenu(MenuNone))
	m.Focus()
	m.OpenMenu()
	assert.False(t, m.MenuOpen())
}

func TestUnfocusedFieldIgnoresKeys(t *testing.T) {
	m := New(options("one"))
	m, _ = pump(m, keyEnter())
	assert.False(t, m.MenuOpen())
}

func TestControlledValueMirrorsExternalState(t *testing.T) {
	m := New(options("one", "two"), WithValue("one"))
	assert.Equal(t, "one", m.Label())

	// A pick reports the change but does not commit it locally.
	var reported any
	m = New(options("one", "two"),
		WithValue("one"),
		WithOnChange(func(sel any) { reported = sel }))
	m.Select("two")
	assert.Equal(t, "two", reported)
	assert.Equal(t, "one", m.Label(), "controlled state is externally owned")

	// The owner pushes the new value; the label follows on the next read.
	m.SetValue("two")
	assert.Equal(t, "two", m.Label())
}

func TestSelectNonMemberRejected(t *testing.T) {
	var calls int
	m := New(options("one", "two"),
		WithOnChange(func(any) { calls++ }))
	m.Select("stale")
	assert.Zero(t, calls)
	assert.Nil(t, m.Selection())
}

func TestObjectOptionsWithDefaultExtraction(t *testing.T) {
	opts := []any{
		map[string]any{"id": "a", "label": "A"},
		map[string]any{"id": "b", "label": "B"},
	}
	m := New(opts)
	m.Select(opts[1])
	assert.Equal(t, "b", m.Value())
	assert.Equal(t, "B", m.Label())
}

func TestShapeMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		New(options("a"), WithMode(ModeMulti), WithValue("a"))
	})
	assert.Panics(t, func() {
		New(options("a"), WithValue([]any{"a"}))
	})
	assert.Panics(t, func() {
		New(options("a"), WithMode(ModeMulti), WithDefault("a"))
	})
	assert.Panics(t, func() {
		New(options("a"), WithValue("a"), WithDefault("a"))
	})
	assert.NotPanics(t, func() {
		New(options("a"), WithMode(ModeMulti), WithValue([]any{"a"}))
		New(options("a"), WithDefault("a"))
	})
}

func TestDefaultMenuModeResolution(t *testing.T) {
	// Without a render hook the menu is an inline dropdown: the anchor
	// stays visible above the menu panel.
	m := New(options("one"))
	m.OpenMenu()
	assert.Contains(t, m.View(), "▴")

	// A render hook switches the default to the modal, which replaces the
	// whole view while open.
	custom := func(s Snapshot) string { return "custom anchor" }
	m = New(options("one"), WithRender(custom), WithTitle("Pick one"))
	assert.Contains(t, m.View(), "custom anchor")
	m.OpenMenu()
	view := m.View()
	assert.NotContains(t, view, "custom anchor")
	assert.Contains(t, view, "Pick one")
}

func TestRenderFuncSnapshot(t *testing.T) {
	var got Snapshot
	m := New(options("one", "two"),
		WithDefault("one"),
		WithRender(func(s Snapshot) string {
			got = s
			return s.Label
		}))

	view := m.View()
	assert.Equal(t, "one", view)
	assert.False(t, got.Active)
	assert.Equal(t, "one", got.Selected)

	// Snapshot closures drive the machine directly.
	got.Select("two")
	assert.Equal(t, "two", m.Label())
	got.Clear()
	assert.Nil(t, m.Selection())
}

func TestAnchorShowsPlaceholderWhenEmpty(t *testing.T) {
	m := New(options("one"), WithPlaceholder("Pick something"))
	assert.Contains(t, m.View(), "Pick something")

	m.Select("one")
	view := m.View()
	assert.Contains(t, view, "one")
	assert.NotContains(t, view, "Pick something")
}

func TestSetOptionsReconcilesSelection(t *testing.T) {
	m := New(options("a", "b", "c"), WithMode(ModeMulti), WithDefault([]any{"a", "c"}))
	m.SetOptions(options("c", "d"))
	assert.Equal(t, []any{"c"}, m.Selection())
}

func TestWithHeightCapsVisibleRows(t *testing.T) {
	m := New(options("alpha", "bravo", "charlie", "delta", "echo", "foxtrot"),
		WithoutNoneOption(),
		WithHeight(3))
	m.Focus()

	m, _ = pump(m, keyEnter())
	view := m.View()
	assert.Contains(t, view, "↓ more")
	assert.NotContains(t, view, "foxtrot")

	// The modal honors the same budget.
	m = New(options("alpha", "bravo", "charlie", "delta", "echo", "foxtrot"),
		WithoutNoneOption(),
		WithMenu(MenuModal),
		WithHeight(3))
	m.OpenMenu()
	view = m.View()
	assert.Contains(t, view, "↓ more")
}

func TestLabelJoinsInOptionsOrder(t *testing.T) {
	m := New(options("alpha", "beta", "gamma"), WithMode(ModeCheckboxes))
	m.Select("gamma")
	m.Select("alpha")
	assert.Equal(t, "alpha, gamma", m.Label())
	assert.True(t, strings.Index(m.Label(), "alpha") < strings.Index(m.Label(), "gamma"))
}
