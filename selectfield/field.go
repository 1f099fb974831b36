// Package selectfield provides a selection-input component for Bubble Tea
// programs: a text-field-like anchor with a dropdown or modal option menu,
// single or multi selection, and a controlled/uncontrolled value contract.
package selectfield

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuikit/selectkit/option"
	"github.com/tuikit/selectkit/selection"
)

// Mode selects the field's selection behavior. ModeCheckboxes is ModeMulti
// with checkbox row glyphs; the selection semantics are identical.
type Mode int

const (
	ModeSingle Mode = iota
	ModeMulti
	ModeCheckboxes
)

func (m Mode) multi() bool { return m != ModeSingle }

func (m Mode) selectionMode() selection.Mode {
	if m.multi() {
		return selection.Multi
	}
	return selection.Single
}

// MenuMode selects how the option menu is presented.
type MenuMode int

const (
	// MenuDropdown renders the menu inline under the anchor.
	MenuDropdown MenuMode = iota
	// MenuModal renders the menu as a full-screen centered list.
	MenuModal
	// MenuNone disables menu rendering entirely.
	MenuNone
)

// DefaultNoneLabel is the label of the clear-selection row.
const DefaultNoneLabel = "(None)"

// Snapshot is the read-only state handed to a custom render hook, with
// closures for driving the field. Snapshot operations report committed
// changes through the OnChange callback.
type Snapshot struct {
	Active   bool // menu currently open
	Disabled bool
	Selected any    // current selection (option, []any, or nil)
	Label    string // joined labels of the selection

	OpenMenu  func()
	CloseMenu func()
	Clear     func()
	Select    func(opt any)
	Deselect  func(opt any)
}

// RenderFunc replaces the default anchor: a pure function from a state
// snapshot to a rendered view, called once per View.
type RenderFunc func(Snapshot) string

type config struct {
	mode        Mode
	value       any
	hasValue    bool
	defValue    any
	hasDefault  bool
	extractor   option.Extractor
	noneLabel   string
	menuMode    MenuMode
	menuModeSet bool
	renderFn    RenderFunc
	placeholder string
	title       string
	hasError    bool
	disabled    bool
	width       int
	height      int
	onChange    func(any)
}

// FieldOption configures a Model at construction.
type FieldOption func(*config)

// WithMode sets the selection mode (default ModeSingle).
func WithMode(m Mode) FieldOption { return func(c *config) { c.mode = m } }

// WithValue makes the field controlled: the value is externally owned and
// must be pushed back via SetValue after every change.
func WithValue(v any) FieldOption {
	return func(c *config) { c.value = v; c.hasValue = true }
}

// WithDefault seeds an uncontrolled field's initial selection.
func WithDefault(v any) FieldOption {
	return func(c *config) { c.defValue = v; c.hasDefault = true }
}

// WithExtractor overrides value/label derivation. Membership checks keep
// using the package comparator regardless.
func WithExtractor(e option.Extractor) FieldOption {
	return func(c *config) { c.extractor = e }
}

// WithNoneOption sets the label of the clear-selection row.
func WithNoneOption(label string) FieldOption {
	return func(c *config) { c.noneLabel = label }
}

// WithoutNoneOption removes the clear-selection row.
func WithoutNoneOption() FieldOption {
	return func(c *config) { c.noneLabel = "" }
}

// WithMenu forces a menu presentation mode.
func WithMenu(m MenuMode) FieldOption {
	return func(c *config) { c.menuMode = m; c.menuModeSet = true }
}

// WithRender installs a custom anchor render hook. Unless WithMenu says
// otherwise, a custom hook switches the default presentation to the modal,
// since the field no longer controls the anchor geometry a dropdown
// attaches to.
func WithRender(fn RenderFunc) FieldOption {
	return func(c *config) { c.renderFn = fn }
}

// WithPlaceholder sets the anchor text shown while nothing is selected.
func WithPlaceholder(p string) FieldOption {
	return func(c *config) { c.placeholder = p }
}

// WithTitle sets the modal title.
func WithTitle(t string) FieldOption { return func(c *config) { c.title = t } }

// WithError puts the field in an error state (anchor styling only).
func WithError(e bool) FieldOption { return func(c *config) { c.hasError = e } }

// WithDisabled disables the field; a disabled field never opens its menu.
func WithDisabled(d bool) FieldOption { return func(c *config) { c.disabled = d } }

// WithWidth sets the anchor and dropdown width.
func WithWidth(w int) FieldOption { return func(c *config) { c.width = w } }

// WithHeight caps the number of menu rows visible before scrolling.
func WithHeight(h int) FieldOption { return func(c *config) { c.height = h } }

// WithOnChange installs the selection callback, invoked synchronously once
// per committed change with the new selection (nil for clears).
func WithOnChange(fn func(selection any)) FieldOption {
	return func(c *config) { c.onChange = fn }
}

// Model is the selection controller: it binds the option normalizer and the
// selection state machine to a menu presenter and renders the anchor. Use
// it like any bubbles component: embed it in a parent model, forward
// messages to Update, and render View.
type Model struct {
	machine   *selection.Machine
	extractor option.Extractor
	mode      Mode
	menuMode  MenuMode
	renderFn  RenderFunc
	noneLabel string

	placeholder string
	hasError    bool
	disabled    bool
	focused     bool
	width       int

	presenter MenuPresenter
}

// New creates a select field over the given options. Passing both a value
// whose shape disagrees with the mode (a slice for single, a non-slice for
// multi) is a programming error and panics.
func New(options []any, opts ...FieldOption) Model {
	cfg := config{
		noneLabel: DefaultNoneLabel,
		extractor: option.DefaultExtractor,
	}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.hasValue {
		mustMatchShape(cfg.mode, cfg.value)
	}
	if cfg.hasDefault {
		mustMatchShape(cfg.mode, cfg.defValue)
	}
	if cfg.hasValue && cfg.hasDefault {
		panic("selectfield: a field cannot be both controlled (WithValue) and seeded (WithDefault)")
	}

	if !cfg.menuModeSet {
		if cfg.renderFn != nil {
			cfg.menuMode = MenuModal
		} else {
			cfg.menuMode = MenuDropdown
		}
	}

	var machine *selection.Machine
	if cfg.hasValue {
		machine = selection.NewControlled(cfg.mode.selectionMode(), options, cfg.value)
	} else {
		machine = selection.NewUncontrolled(cfg.mode.selectionMode(), options, cfg.defValue)
	}
	machine.SetDisabled(cfg.disabled)
	machine.SetMenuEnabled(cfg.menuMode != MenuNone)
	machine.SetOnChange(cfg.onChange)

	m := Model{
		machine:     machine,
		extractor:   cfg.extractor.Normalize(),
		mode:        cfg.mode,
		menuMode:    cfg.menuMode,
		renderFn:    cfg.renderFn,
		noneLabel:   cfg.noneLabel,
		placeholder: cfg.placeholder,
		hasError:    cfg.hasError,
		disabled:    cfg.disabled,
		width:       cfg.width,
	}

	checkboxes := cfg.mode == ModeCheckboxes
	switch cfg.menuMode {
	case MenuDropdown:
		d := newDropdown(cfg.mode.multi(), checkboxes)
		d.SetSize(cfg.width, 0)
		if cfg.height > 0 {
			d.height = cfg.height
		}
		m.presenter = d
	case MenuModal:
		mo := newModal(cfg.title, cfg.mode.multi(), checkboxes)
		if cfg.height > 0 {
			mo.maxRows = cfg.height
		}
		m.presenter = mo
	}

	return m
}

// mustMatchShape rejects a value whose shape disagrees with the mode.
func mustMatchShape(mode Mode, v any) {
	if v == nil {
		return
	}
	_, isSlice := v.([]any)
	if mode.multi() && !isSlice {
		panic(fmt.Sprintf("selectfield: multi-mode value must be []any, got %T", v))
	}
	if !mode.multi() && isSlice {
		panic(fmt.Sprintf("selectfield: single-mode value must not be a slice, got %T", v))
	}
}

// Init implements the usual component contract; the field has no initial
// commands.
func (m Model) Init() tea.Cmd { return nil }

// Update handles messages. When the menu is open, key input is routed to
// the presenter; the presenter's gesture messages come back through the
// program loop and drive the state machine here.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.presenter != nil {
			m.presenter.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case pickMsg:
		return m.applyPick(msg.index)

	case toggleMsg:
		return m.applyToggle(msg.index)

	case clearMsg:
		_, changed := m.machine.Clear()
		m.syncRows()
		if !changed {
			return m, nil
		}
		return m, changedCmd(nil)

	case dismissMsg:
		m.machine.CloseMenu()
		return m, func() tea.Msg { return DismissMsg{} }

	case tea.KeyMsg:
		if m.disabled {
			return m, nil
		}
		if m.machine.MenuOpen() && m.presenter != nil {
			p, cmd := m.presenter.Update(msg)
			m.presenter = p
			return m, cmd
		}
		if !m.focused {
			return m, nil
		}
		switch msg.String() {
		case "enter", " ", "down":
			m.openMenu()
		}
		return m, nil
	}
	return m, nil
}

// View renders the anchor (or the custom hook) plus the open menu.
func (m Model) View() string {
	if m.machine.MenuOpen() && m.presenter != nil && m.menuMode == MenuModal {
		return m.presenter.View()
	}

	var anchor string
	if m.renderFn != nil {
		anchor = m.renderFn(m.snapshot())
	} else {
		anchor = m.viewAnchor()
	}

	if m.machine.MenuOpen() && m.presenter != nil {
		return anchor + "\n" + m.presenter.View()
	}
	return anchor
}

// Label returns the joined labels of the current selection, recomputed from
// the machine on every call (never cached).
func (m Model) Label() string {
	return m.join(m.extractor.LabelOf)
}

// Value returns the joined derived values of the current selection.
func (m Model) Value() string {
	return m.join(m.extractor.ValueOf)
}

// Selection returns the current selection: the option, a []any, or nil.
func (m Model) Selection() any { return m.machine.Selection() }

// MenuOpen reports whether the menu is visible.
func (m Model) MenuOpen() bool { return m.machine.MenuOpen() }

// Focused reports keyboard focus.
func (m Model) Focused() bool { return m.focused }

// Focus gives the field keyboard focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes keyboard focus and closes the menu.
func (m *Model) Blur() {
	m.focused = false
	m.machine.CloseMenu()
}

// SetValue pushes a new externally owned value into a controlled field. The
// same shape rule as construction applies.
func (m *Model) SetValue(v any) {
	mustMatchShape(m.mode, v)
	m.machine.SetControlledValue(v)
	m.syncRows()
}

// SetOptions replaces the options collection.
func (m *Model) SetOptions(options []any) {
	m.machine.SetOptions(options)
	m.syncRows()
}

// SetError toggles the error styling.
func (m *Model) SetError(e bool) { m.hasError = e }

// SetDisabled toggles the disabled state; disabling closes the menu.
func (m *Model) SetDisabled(d bool) {
	m.disabled = d
	m.machine.SetDisabled(d)
	if d {
		m.machine.CloseMenu()
	}
}

// Select drives the state machine directly, as a presenter tap would.
// Programmatic calls run outside the message loop, so committed changes
// report through the OnChange callback rather than ChangedMsg; the same
// holds for Deselect, Clear, and the Snapshot closures.
func (m *Model) Select(opt any) {
	m.machine.Select(opt)
	m.syncRows()
}

// Deselect removes opt from a multi selection.
func (m *Model) Deselect(opt any) {
	m.machine.Deselect(opt)
	m.syncRows()
}

// Clear empties the selection and closes the menu.
func (m *Model) Clear() {
	m.machine.Clear()
	m.syncRows()
}

// OpenMenu opens the menu unless the field is disabled or menuless.
func (m *Model) OpenMenu() { m.openMenu() }

// CloseMenu hides the menu.
func (m *Model) CloseMenu() { m.machine.CloseMenu() }

// --- internals ---

func (m *Model) openMenu() {
	if !m.machine.OpenMenu() {
		return
	}
	if m.presenter != nil {
		m.presenter.SetRows(m.rows())
		m.presenter.Open()
	}
}

func (m Model) applyPick(index int) (Model, tea.Cmd) {
	opts := m.machine.Options()
	if index < 0 || index >= len(opts) {
		return m, nil
	}
	sel, changed := m.machine.Select(opts[index])
	m.syncRows()
	if !changed {
		return m, nil
	}
	return m, changedCmd(sel)
}

func (m Model) applyToggle(index int) (Model, tea.Cmd) {
	opts := m.machine.Options()
	if index < 0 || index >= len(opts) {
		return m, nil
	}
	opt := opts[index]
	var sel any
	var changed bool
	if m.machine.IsSelected(opt) {
		sel, changed = m.machine.Deselect(opt)
	} else {
		sel, changed = m.machine.Select(opt)
	}
	m.syncRows()
	if !changed {
		return m, nil
	}
	return m, changedCmd(sel)
}

// rows derives the presenter rows from the current options and selection.
func (m Model) rows() []Row {
	opts := m.machine.Options()
	rows := make([]Row, 0, len(opts)+1)
	if m.noneLabel != "" {
		rows = append(rows, Row{Label: m.noneLabel, None: true, Index: -1})
	}
	for i, opt := range opts {
		rows = append(rows, Row{
			Label:    m.extractor.LabelOf(opt),
			Selected: m.machine.IsSelected(opt),
			Index:    i,
		})
	}
	return rows
}

// syncRows refreshes the presenter's selection marks while the menu is
// open.
func (m Model) syncRows() {
	if m.machine.MenuOpen() && m.presenter != nil {
		m.presenter.SetRows(m.rows())
	}
}

func (m Model) snapshot() Snapshot {
	return Snapshot{
		Active:    m.machine.MenuOpen(),
		Disabled:  m.disabled,
		Selected:  m.machine.Selection(),
		Label:     m.Label(),
		OpenMenu:  func() { m.openMenu() },
		CloseMenu: m.machine.CloseMenu,
		Clear:     func() { m.machine.Clear() },
		Select:    func(opt any) { m.machine.Select(opt) },
		Deselect:  func(opt any) { m.machine.Deselect(opt) },
	}
}

func (m Model) join(f func(any) string) string {
	if m.mode.multi() {
		values := m.machine.Values()
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = f(v)
		}
		return strings.Join(parts, ", ")
	}
	v := m.machine.Value()
	if v == nil {
		return ""
	}
	return f(v)
}

func changedCmd(sel any) tea.Cmd {
	return func() tea.Msg { return ChangedMsg{Selection: sel} }
}
