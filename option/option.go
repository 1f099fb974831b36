// Package option derives a stable (value, label) identity from raw options
// of arbitrary shape and provides the equality comparator used for
// membership checks throughout the selection components.
package option

import (
	"fmt"
	"reflect"
)

// Valuer lets an option type supply its own stable value.
type Valuer interface {
	OptionValue() string
}

// Labeler lets an option type supply its own display label.
type Labeler interface {
	OptionLabel() string
}

// Extractor derives the identity of a raw option. Value must be stable and
// unique within an options collection (it is used as a list key); Label is
// the user-facing text. Nil funcs fall back to the defaults.
type Extractor struct {
	ValueOf func(opt any) string
	LabelOf func(opt any) string
}

// DefaultExtractor handles the two built-in shapes: plain strings and
// map-like records keyed by value/id/key and label. Everything else degrades
// to a string coercion rather than erroring.
var DefaultExtractor = Extractor{
	ValueOf: Value,
	LabelOf: Label,
}

// Normalize fills nil funcs with the default implementations.
func (e Extractor) Normalize() Extractor {
	if e.ValueOf == nil {
		e.ValueOf = Value
	}
	if e.LabelOf == nil {
		e.LabelOf = Label
	}
	return e
}

// valueKeys are probed in order on map-like options.
var valueKeys = []string{"value", "id", "key"}

// Value returns the default value of an option: the option itself for
// strings, OptionValue() when implemented, the first present of the
// value/id/key entries for map-like records, else a string coercion.
func Value(opt any) string {
	switch o := opt.(type) {
	case nil:
		return ""
	case string:
		return o
	case Valuer:
		return o.OptionValue()
	}
	if m, ok := asMap(opt); ok {
		for _, k := range valueKeys {
			if v, present := m[k]; present {
				return coerce(v)
			}
		}
	}
	return coerce(opt)
}

// Label returns the default label of an option: the option itself for
// strings, OptionLabel() when implemented, the label entry for map-like
// records, else the option's value.
func Label(opt any) string {
	switch o := opt.(type) {
	case string:
		return o
	case Labeler:
		return o.OptionLabel()
	}
	if m, ok := asMap(opt); ok {
		if v, present := m["label"]; present {
			return coerce(v)
		}
	}
	return Value(opt)
}

// Equal reports whether two options are the same for membership purposes.
// Two map-like options compare shallowly, entry by entry, with no recursion
// into nested values. Anything else compares loosely: nil equals nil, and
// mixed basic types (string vs numeric) are permitted to match on their
// string coercion.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	am, aok := asMap(a)
	bm, bok := asMap(b)
	if aok && bok {
		return shallowEqual(am, bm)
	}
	if aok != bok {
		return false
	}
	return looseEqual(a, b)
}

// asMap converts the supported map-like shapes to a common form.
func asMap(opt any) (map[string]any, bool) {
	switch m := opt.(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, true
	}
	return nil, false
}

func shallowEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, present := b[k]
		if !present || !looseEqual(av, bv) {
			return false
		}
	}
	return true
}

// looseEqual compares two values, permitting string/numeric coercion between
// basic kinds. Uncomparable composites (nested maps, slices) never match.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta.Comparable() && tb.Comparable() && a == b {
		return true
	}
	if basicKind(ta.Kind()) && basicKind(tb.Kind()) {
		return coerce(a) == coerce(b)
	}
	return false
}

func basicKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func coerce(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
