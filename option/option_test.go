package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type region struct {
	code string
	name string
}

func (r region) OptionValue() string { return r.code }
func (r region) OptionLabel() string { return r.name }

func TestValue_String(t *testing.T) {
	assert.Equal(t, "one", Value("one"))
}

func TestValue_MapKeys(t *testing.T) {
	assert.Equal(t, "a", Value(map[string]any{"value": "a", "label": "A"}))
	assert.Equal(t, "b", Value(map[string]any{"id": "b", "label": "B"}))
	assert.Equal(t, "c", Value(map[string]any{"key": "c"}))
	// value wins over id and key
	assert.Equal(t, "v", Value(map[string]any{"key": "k", "id": "i", "value": "v"}))
}

func TestValue_StringMap(t *testing.T) {
	assert.Equal(t, "us-east-1", Value(map[string]string{"id": "us-east-1", "label": "US East"}))
}

func TestValue_Valuer(t *testing.T) {
	assert.Equal(t, "eu-1", Value(region{code: "eu-1", name: "Europe"}))
}

func TestValue_Coercion(t *testing.T) {
	assert.Equal(t, "42", Value(42))
	assert.Equal(t, "", Value(nil))
	// map without any identity key coerces rather than erroring
	assert.NotEmpty(t, Value(map[string]any{"name": "x"}))
}

func TestLabel_String(t *testing.T) {
	assert.Equal(t, "one", Label("one"))
}

func TestLabel_Map(t *testing.T) {
	assert.Equal(t, "A", Label(map[string]any{"id": "a", "label": "A"}))
	// missing label falls back to the value
	assert.Equal(t, "a", Label(map[string]any{"id": "a"}))
}

func TestLabel_Labeler(t *testing.T) {
	assert.Equal(t, "Europe", Label(region{code: "eu-1", name: "Europe"}))
}

func TestEqual_Reflexive(t *testing.T) {
	opts := []any{
		"one",
		42,
		map[string]any{"id": "a", "label": "A"},
		map[string]string{"value": "b"},
		region{code: "eu-1", name: "Europe"},
		nil,
	}
	for _, o := range opts {
		assert.True(t, Equal(o, o), "Equal must be reflexive for %v", o)
	}
}

func TestEqual_Nil(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, "x"))
	assert.False(t, Equal("x", nil))
}

func TestEqual_ShallowMap(t *testing.T) {
	a := map[string]any{"id": "a", "label": "A"}
	b := map[string]any{"id": "a", "label": "A"}
	c := map[string]any{"id": "a", "label": "C"}
	d := map[string]any{"id": "a"}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, d))
}

func TestEqual_MapShapesInterchangeable(t *testing.T) {
	a := map[string]any{"id": "a"}
	b := map[string]string{"id": "a"}
	assert.True(t, Equal(a, b))
}

func TestEqual_MapVersusScalar(t *testing.T) {
	assert.False(t, Equal(map[string]any{"id": "a"}, "a"))
}

func TestEqual_LooseCoercion(t *testing.T) {
	assert.True(t, Equal(42, "42"))
	assert.True(t, Equal("x", "x"))
	assert.False(t, Equal("x", "y"))
}

func TestEqual_NestedValuesAreNotDeepCompared(t *testing.T) {
	a := map[string]any{"id": "a", "meta": map[string]any{"x": 1}}
	b := map[string]any{"id": "a", "meta": map[string]any{"x": 1}}
	// shallow comparison only: nested maps never match
	assert.False(t, Equal(a, b))
}

func TestExtractor_Normalize(t *testing.T) {
	e := Extractor{}.Normalize()
	assert.Equal(t, "one", e.ValueOf("one"))
	assert.Equal(t, "one", e.LabelOf("one"))

	custom := Extractor{ValueOf: func(any) string { return "fixed" }}.Normalize()
	assert.Equal(t, "fixed", custom.ValueOf("whatever"))
	assert.Equal(t, "whatever", custom.LabelOf("whatever"))
}
