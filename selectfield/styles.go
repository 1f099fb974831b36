package selectfield

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Anchor styles.
var (
	// AnchorStyle is the resting text-field look of the closed field.
	AnchorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	// AnchorFocusedStyle is used when the field has keyboard focus.
	AnchorFocusedStyle = AnchorStyle.
				BorderForeground(colorBlue)

	// AnchorErrorStyle is used when the field is in an error state.
	AnchorErrorStyle = AnchorStyle.
			BorderForeground(colorRed)

	// AnchorDisabledStyle is used when the field is disabled.
	AnchorDisabledStyle = AnchorStyle.
				BorderForeground(colorSurface1).
				Foreground(colorOverlay0)

	// PlaceholderStyle is used for the placeholder text of an empty field.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0)

	// CaretStyle is used for the dropdown caret on the anchor.
	CaretStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)
)

// Menu styles shared by both presenters.
var (
	// MenuStyle wraps the inline dropdown panel.
	MenuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	// ModalStyle is the border and background of the full-screen modal box.
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText).
			Padding(1, 2)

	// ModalTitleStyle is used for the title text of the modal.
	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// CursorRowStyle highlights the row under the cursor.
	CursorRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	// SelectedMarkStyle is used for the mark on selected rows.
	SelectedMarkStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	// UnselectedMarkStyle is used for the mark on unselected rows.
	UnselectedMarkStyle = lipgloss.NewStyle().
				Foreground(colorText)

	// NoneRowStyle is used for the clear-selection row.
	NoneRowStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Italic(true)

	// DimStyle is used for de-emphasized text (scroll hints, help lines).
	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)
)
