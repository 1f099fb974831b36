package selectfield

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewAnchor renders the default text-field-like anchor: the joined labels
// of the current selection (comma-separated in multi mode), or the
// placeholder, with a dropdown caret.
func (m Model) viewAnchor() string {
	text := m.Label()
	if text == "" {
		placeholder := m.placeholder
		if placeholder == "" {
			placeholder = "Select…"
		}
		text = PlaceholderStyle.Render(placeholder)
	}

	caret := CaretStyle.Render("▾")
	if m.machine.MenuOpen() {
		caret = CaretStyle.Render("▴")
	}

	style := AnchorStyle
	switch {
	case m.disabled:
		style = AnchorDisabledStyle
	case m.hasError:
		style = AnchorErrorStyle
	case m.focused:
		style = AnchorFocusedStyle
	}
	if m.width > 0 {
		style = style.Width(m.width)
	}

	gap := " "
	if m.width > 0 {
		inner := m.width - 2 // horizontal padding
		pad := inner - lipgloss.Width(text) - lipgloss.Width(caret)
		if pad > 1 {
			gap = strings.Repeat(" ", pad)
		}
	}

	return style.Render(text + gap + caret)
}
