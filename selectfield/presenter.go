package selectfield

import tea "github.com/charmbracelet/bubbletea"

// Row is one selectable line handed to a menu presenter: the derived label,
// the current selection mark, and the index of the underlying option in the
// options collection. The clear-selection affordance is a row with None set
// and Index -1.
type Row struct {
	Label    string
	Selected bool
	None     bool
	Index    int
}

// MenuPresenter renders the option menu and owns its transient view state
// (cursor, scroll offset, filter). It translates one user gesture into
// exactly one pick, toggle, clear, or dismiss message; the field maps those
// back onto the state machine, so selection and equality logic is never
// duplicated per presenter.
type MenuPresenter interface {
	// SetRows replaces the rows, keeping cursor position where possible.
	SetRows(rows []Row)
	// SetSize informs the presenter of the available terminal area.
	SetSize(width, height int)
	// Open resets transient state for a fresh menu session.
	Open()
	Update(msg tea.Msg) (MenuPresenter, tea.Cmd)
	View() string
}

// rowMark renders the selection mark for a row: checkbox glyphs for the
// checkbox variant, a check mark otherwise.
func rowMark(selected, checkboxes bool) string {
	if checkboxes {
		if selected {
			return SelectedMarkStyle.Render("[x]")
		}
		return UnselectedMarkStyle.Render("[ ]")
	}
	if selected {
		return SelectedMarkStyle.Render("✓")
	}
	return " "
}

// clampWindow adjusts a scroll offset so the cursor stays within a window
// of visible rows.
func clampWindow(cursor, offset, visible, total int) int {
	if visible < 1 {
		visible = 1
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+visible {
		offset = cursor - visible + 1
	}
	if max := total - visible; offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
