package selectfield

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// defaultMenuHeight is the number of rows visible before scrolling.
const defaultMenuHeight = 8

// Dropdown is the inline menu presenter: a panel rendered directly under
// the field's anchor with cursor navigation and fuzzy filtering. Filtering
// only narrows what is visible; picks always refer to the master options
// collection.
type Dropdown struct {
	rows       []Row
	visible    []int // indexes into rows after filtering
	cursor     int   // index into visible
	offset     int
	height     int
	width      int
	multi      bool
	checkboxes bool
	filter     textinput.Model
}

// newDropdown creates the presenter. multi switches enter from pick to
// toggle gestures; checkboxes only changes the row glyphs.
func newDropdown(multi, checkboxes bool) *Dropdown {
	ti := textinput.New()
	ti.Placeholder = "Type to filter"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	return &Dropdown{
		height:     defaultMenuHeight,
		multi:      multi,
		checkboxes: checkboxes,
		filter:     ti,
	}
}

// SetRows replaces the rows, re-applies the current filter, and clamps the
// cursor.
func (d *Dropdown) SetRows(rows []Row) {
	d.rows = rows
	d.refilter()
	if d.cursor >= len(d.visible) {
		d.cursor = len(d.visible) - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
	d.offset = clampWindow(d.cursor, d.offset, d.height, len(d.visible))
}

// SetSize sets the available width; the dropdown keeps its own row budget.
func (d *Dropdown) SetSize(width, _ int) {
	d.width = width
}

// Open resets the filter and places the cursor on the first selected row,
// or the first row when nothing is selected. The filter input takes
// keyboard focus, which is what "dismiss the external keyboard" means in a
// terminal: keys stop reaching the anchor.
func (d *Dropdown) Open() {
	d.filter.SetValue("")
	d.filter.Focus()
	d.refilter()
	d.cursor = 0
	for i, ri := range d.visible {
		if d.rows[ri].Selected {
			d.cursor = i
			break
		}
	}
	d.offset = clampWindow(d.cursor, 0, d.height, len(d.visible))
}

// Update handles one key gesture, emitting at most one selection message.
func (d *Dropdown) Update(msg tea.Msg) (MenuPresenter, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch key.String() {
	case "esc":
		return d, dismissCmd
	case "up", "ctrl+p", "shift+tab":
		d.move(-1)
		return d, nil
	case "down", "ctrl+n", "tab":
		d.move(+1)
		return d, nil
	case " ":
		// In multi mode space toggles like the modal; single mode leaves
		// it to the filter so labels with spaces stay typable.
		if d.multi {
			if row, ok := d.current(); ok && !row.None {
				return d, toggleCmd(row.Index)
			}
			return d, nil
		}
	case "enter":
		if len(d.visible) == 0 {
			return d, nil
		}
		row := d.rows[d.visible[d.cursor]]
		if row.None {
			return d, clearCmd
		}
		if d.multi {
			return d, toggleCmd(row.Index)
		}
		return d, pickCmd(row.Index)
	}

	// Everything else edits the filter.
	before := d.filter.Value()
	var cmd tea.Cmd
	d.filter, cmd = d.filter.Update(msg)
	if d.filter.Value() != before {
		d.refilter()
		d.cursor = 0
		d.offset = 0
	}
	return d, cmd
}

// View renders the filter line and the visible row window.
func (d *Dropdown) View() string {
	var b strings.Builder
	b.WriteString(d.filter.View())
	b.WriteString("\n")

	if len(d.visible) == 0 {
		b.WriteString(DimStyle.Render("(no matches)"))
		return MenuStyle.Render(b.String())
	}

	end := d.offset + d.height
	if end > len(d.visible) {
		end = len(d.visible)
	}

	if d.offset > 0 {
		b.WriteString(DimStyle.Render("↑ more") + "\n")
	}

	for i := d.offset; i < end; i++ {
		row := d.rows[d.visible[i]]

		cursor := "  "
		if i == d.cursor {
			cursor = "> "
		}

		label := row.Label
		if row.None {
			label = NoneRowStyle.Render(label)
		} else if i == d.cursor {
			label = CursorRowStyle.Render(label)
		}

		mark := ""
		if !row.None {
			mark = rowMark(row.Selected, d.checkboxes) + " "
		}

		b.WriteString(cursor + mark + label + "\n")
	}

	if end < len(d.visible) {
		b.WriteString(DimStyle.Render("↓ more") + "\n")
	}

	out := strings.TrimRight(b.String(), "\n")
	style := MenuStyle
	if d.width > 0 {
		style = style.Width(d.width)
	}
	return style.Render(out)
}

// current returns the row under the cursor.
func (d *Dropdown) current() (Row, bool) {
	if d.cursor < 0 || d.cursor >= len(d.visible) {
		return Row{}, false
	}
	return d.rows[d.visible[d.cursor]], true
}

// move advances the cursor and keeps it within the scroll window.
func (d *Dropdown) move(dir int) {
	next := d.cursor + dir
	if next < 0 || next >= len(d.visible) {
		return
	}
	d.cursor = next
	d.offset = clampWindow(d.cursor, d.offset, d.height, len(d.visible))
}

// refilter recomputes the visible rows. An empty filter shows everything;
// otherwise rows are fuzzy-matched on their labels and the clear-selection
// row is hidden.
func (d *Dropdown) refilter() {
	pattern := d.filter.Value()
	if pattern == "" {
		d.visible = make([]int, len(d.rows))
		for i := range d.rows {
			d.visible[i] = i
		}
		return
	}

	var candidates []string
	var candidateRows []int
	for i, row := range d.rows {
		if row.None {
			continue
		}
		candidates = append(candidates, row.Label)
		candidateRows = append(candidateRows, i)
	}

	matches := fuzzy.Find(pattern, candidates)
	d.visible = d.visible[:0]
	for _, m := range matches {
		d.visible = append(d.visible, candidateRows[m.Index])
	}
}
