// Package selection implements the selection state machine shared by every
// menu presentation: single or multi selection over an options collection,
// controlled/uncontrolled value resolution, and menu visibility.
package selection

import "github.com/tuikit/selectkit/option"

// Mode selects between single-value and multi-value selection.
type Mode int

const (
	Single Mode = iota
	Multi
)

// Source tags where the authoritative selection value lives. In controlled
// mode the machine never stores what an operation computes; the owner is
// expected to push the external value back via SetControlledValue.
type Source int

const (
	SourceUncontrolled Source = iota
	SourceControlled
)

// Machine owns the current selection and menu visibility. Operations report
// whether they committed an observable change; rejected and no-op
// transitions never fire the OnChange callback.
type Machine struct {
	mode        Mode
	source      Source
	options     []any
	selected    []any // nil = no selection; Single holds at most one entry
	menuOpen    bool
	disabled    bool
	menuEnabled bool
	onChange    func(selection any)
}

// NewUncontrolled creates a machine that owns its selection, seeded once
// from initial (nil for none).
func NewUncontrolled(mode Mode, options []any, initial any) *Machine {
	m := &Machine{
		mode:        mode,
		source:      SourceUncontrolled,
		options:     options,
		menuEnabled: true,
	}
	m.selected = m.normalize(initial)
	return m
}

// NewControlled creates a machine whose selection mirrors an external value.
func NewControlled(mode Mode, options []any, value any) *Machine {
	m := &Machine{
		mode:        mode,
		source:      SourceControlled,
		options:     options,
		menuEnabled: true,
	}
	m.selected = m.normalize(value)
	return m
}

// SetOnChange installs the selection callback. It is invoked exactly once
// per committed change, synchronously, with the new selection (a single
// option, a slice in Multi mode, or nil when cleared).
func (m *Machine) SetOnChange(fn func(selection any)) { m.onChange = fn }

// SetDisabled toggles the disabled state; a disabled machine refuses to
// open its menu.
func (m *Machine) SetDisabled(d bool) { m.disabled = d }

// SetMenuEnabled toggles whether the menu may be opened at all.
func (m *Machine) SetMenuEnabled(e bool) { m.menuEnabled = e }

// Mode returns the selection mode.
func (m *Machine) Mode() Mode { return m.mode }

// Source returns the value-source tag.
func (m *Machine) Source() Source { return m.source }

// Options returns the current options collection.
func (m *Machine) Options() []any { return m.options }

// SetOptions replaces the options collection. In uncontrolled multi mode the
// stored selection is re-filtered to the members of the new collection, in
// its order; this is a reconciliation, not a user transition, so no
// callback fires.
func (m *Machine) SetOptions(options []any) {
	m.options = options
	if m.source == SourceUncontrolled {
		m.selected = m.reconcile(m.selected)
	}
}

// SetControlledValue mirrors an externally owned value into the machine.
// No-op for uncontrolled machines.
func (m *Machine) SetControlledValue(value any) {
	if m.source != SourceControlled {
		return
	}
	m.selected = m.normalize(value)
}

// Selection returns the current selection: the selected option or nil in
// Single mode, a copy of the selected options or nil in Multi mode.
func (m *Machine) Selection() any { return m.projected(m.selected) }

// Value returns the single-mode selection, or nil.
func (m *Machine) Value() any {
	if len(m.selected) == 0 {
		return nil
	}
	return m.selected[0]
}

// Values returns the multi-mode selection, or nil when empty.
func (m *Machine) Values() []any {
	if len(m.selected) == 0 {
		return nil
	}
	out := make([]any, len(m.selected))
	copy(out, m.selected)
	return out
}

// IsSelected reports whether opt is a member of the current selection.
func (m *Machine) IsSelected(opt any) bool {
	for _, s := range m.selected {
		if option.Equal(s, opt) {
			return true
		}
	}
	return false
}

// MenuOpen reports menu visibility.
func (m *Machine) MenuOpen() bool { return m.menuOpen }

// OpenMenu opens the menu unless the machine is disabled or menu rendering
// is turned off. Returns whether the menu is now open.
func (m *Machine) OpenMenu() bool {
	if m.disabled || !m.menuEnabled {
		return false
	}
	m.menuOpen = true
	return true
}

// CloseMenu unconditionally hides the menu.
func (m *Machine) CloseMenu() { m.menuOpen = false }

// Select commits opt into the selection. Options that are not members of
// the current collection are silently rejected (a stale or late event). In
// Single mode re-selecting the current option is a no-op; a committed pick
// closes the menu. In Multi mode the new selection is the subsequence of
// the options collection whose members were already selected or equal opt,
// so order always follows the collection, not the pick order; the menu
// stays open. Returns the resulting selection and whether a change
// committed.
func (m *Machine) Select(opt any) (any, bool) {
	if !m.member(opt) {
		return m.Selection(), false
	}
	switch m.mode {
	case Single:
		if len(m.selected) == 1 && option.Equal(m.selected[0], opt) {
			return m.Selection(), false
		}
		sel := m.commit([]any{opt})
		m.menuOpen = false
		return sel, true
	default: // Multi
		if m.IsSelected(opt) {
			return m.Selection(), false
		}
		next := make([]any, 0, len(m.selected)+1)
		for _, o := range m.options {
			if m.isIn(m.selected, o) || option.Equal(o, opt) {
				next = append(next, o)
			}
		}
		return m.commit(next), true
	}
}

// Deselect removes opt from a multi selection. Identity in Single mode.
// The menu stays open.
func (m *Machine) Deselect(opt any) (any, bool) {
	if m.mode == Single {
		return m.Selection(), false
	}
	if !m.IsSelected(opt) {
		return m.Selection(), false
	}
	next := make([]any, 0, len(m.selected))
	for _, s := range m.selected {
		if !option.Equal(s, opt) {
			next = append(next, s)
		}
	}
	return m.commit(next), true
}

// Clear empties the selection (to nil, never an empty slice) and closes the
// menu. The callback fires only when there was something to clear.
func (m *Machine) Clear() (any, bool) {
	m.menuOpen = false
	if len(m.selected) == 0 {
		return nil, false
	}
	return m.commit(nil), true
}

// commit stores the new selection when uncontrolled, fires the callback,
// and returns the projected selection.
func (m *Machine) commit(next []any) any {
	if m.source == SourceUncontrolled {
		m.selected = next
	}
	sel := m.projected(next)
	if m.onChange != nil {
		m.onChange(sel)
	}
	return sel
}

// projected converts internal storage to the externally visible shape.
func (m *Machine) projected(sel []any) any {
	if len(sel) == 0 {
		return nil
	}
	if m.mode == Single {
		return sel[0]
	}
	out := make([]any, len(sel))
	copy(out, sel)
	return out
}

// member reports whether opt belongs to the options collection.
func (m *Machine) member(opt any) bool {
	return m.isIn(m.options, opt)
}

func (m *Machine) isIn(list []any, opt any) bool {
	for _, o := range list {
		if option.Equal(o, opt) {
			return true
		}
	}
	return false
}

// reconcile filters sel down to members of the options collection, in
// collection order.
func (m *Machine) reconcile(sel []any) []any {
	if len(sel) == 0 {
		return nil
	}
	var next []any
	for _, o := range m.options {
		if m.isIn(sel, o) {
			next = append(next, o)
		}
	}
	return next
}

// normalize converts an external value (nil, a scalar, or a slice) into
// internal storage.
func (m *Machine) normalize(value any) []any {
	if value == nil {
		return nil
	}
	if vs, ok := value.([]any); ok {
		if len(vs) == 0 {
			return nil
		}
		out := make([]any, len(vs))
		copy(out, vs)
		return out
	}
	return []any{value}
}
