package selectfield

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Modal is the full-screen menu presenter: a centered bordered box listing
// every row, used where an inline dropdown has no anchor geometry to attach
// to (custom-rendered anchors, small screens).
type Modal struct {
	rows       []Row
	cursor     int
	offset     int
	width      int // terminal width
	height     int // terminal height
	multi      bool
	checkboxes bool
	maxRows    int // explicit row budget; 0 derives from terminal height
	title      string
}

func newModal(title string, multi, checkboxes bool) *Modal {
	return &Modal{
		title:      title,
		multi:      multi,
		checkboxes: checkboxes,
	}
}

// SetRows replaces the rows and clamps the cursor.
func (m *Modal) SetRows(rows []Row) {
	m.rows = rows
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.offset = clampWindow(m.cursor, m.offset, m.visibleRows(), len(m.rows))
}

// SetSize stores the terminal dimensions used for centering and the row
// window.
func (m *Modal) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Open places the cursor on the first selected row.
func (m *Modal) Open() {
	m.cursor = 0
	for i, row := range m.rows {
		if row.Selected {
			m.cursor = i
			break
		}
	}
	m.offset = clampWindow(m.cursor, 0, m.visibleRows(), len(m.rows))
}

// Update handles one key gesture, emitting at most one selection message.
func (m *Modal) Update(msg tea.Msg) (MenuPresenter, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc", "q":
		return m, dismissCmd
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(+1)
	case " ":
		if m.multi {
			if row, ok := m.current(); ok && !row.None {
				return m, toggleCmd(row.Index)
			}
		}
	case "enter":
		row, ok := m.current()
		if !ok {
			return m, nil
		}
		if row.None {
			return m, clearCmd
		}
		if m.multi {
			return m, toggleCmd(row.Index)
		}
		return m, pickCmd(row.Index)
	}
	return m, nil
}

// View renders the centered box. Without known terminal dimensions the box
// is returned unplaced.
func (m *Modal) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(ModalTitleStyle.Render(m.title))
		b.WriteString("\n\n")
	}

	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	if m.offset > 0 {
		b.WriteString(DimStyle.Render("↑ more") + "\n")
	}

	for i := m.offset; i < end; i++ {
		row := m.rows[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		label := row.Label
		if row.None {
			label = NoneRowStyle.Render(label)
		} else if i == m.cursor {
			label = CursorRowStyle.Render(label)
		}

		mark := ""
		if !row.None {
			mark = rowMark(row.Selected, m.checkboxes) + " "
		}

		b.WriteString(cursor + mark + label + "\n")
	}

	if end < len(m.rows) {
		b.WriteString(DimStyle.Render("↓ more") + "\n")
	}

	b.WriteString("\n")
	if m.multi {
		b.WriteString(DimStyle.Render("space toggle · enter toggle · esc close"))
	} else {
		b.WriteString(DimStyle.Render("enter select · esc close"))
	}

	box := ModalStyle.Width(m.boxWidth()).Render(strings.TrimRight(b.String(), "\n"))
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Modal) move(dir int) {
	next := m.cursor + dir
	if next < 0 || next >= len(m.rows) {
		return
	}
	m.cursor = next
	m.offset = clampWindow(m.cursor, m.offset, m.visibleRows(), len(m.rows))
}

func (m *Modal) current() (Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return Row{}, false
	}
	return m.rows[m.cursor], true
}

// visibleRows is the row budget inside the box, derived from the terminal
// height minus border, padding, title, and hint lines.
func (m *Modal) visibleRows() int {
	if m.maxRows > 0 {
		return m.maxRows
	}
	if m.height <= 0 {
		return defaultMenuHeight
	}
	v := m.height - 10
	if v < 3 {
		v = 3
	}
	return v
}

// boxWidth sizes the box to the widest row, clamped to the terminal.
func (m *Modal) boxWidth() int {
	w := ansi.StringWidth(m.title)
	for _, row := range m.rows {
		if rw := ansi.StringWidth(row.Label) + 6; rw > w {
			w = rw
		}
	}
	if w < 30 {
		w = 30
	}
	if m.width > 0 && w > m.width-6 {
		w = m.width - 6
	}
	return w
}
