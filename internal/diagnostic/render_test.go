package diagnostic

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type opt struct {
	tag    string
	fields []any
}

func (o opt) Tag() string   { return o.tag }
func (o opt) Fields() []any { return o.fields }

type ref struct {
	tag string
}

func (r *ref) Tag() string   { return r.tag }
func (r *ref) Fields() []any { return nil }

type fault struct {
	msg string
}

func (f *fault) Error() string { return f.msg }

type rec struct {
	names  []string
	fields []any
}

func (r rec) Tag() string          { return "Rec" }
func (r rec) Fields() []any        { return r.fields }
func (r rec) FieldNames() []string { return r.names }

type point struct {
	X, Y int
	note string
}

type box[T any] struct {
	V T
}

type level int

func (l level) String() string { return [...]string{"Low", "High"}[l] }

type secret string

func (secret) DebugString() string { return "<redacted>" }

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, "nil"},
		{"int", 42, "42"},
		{"float", 2.5, "2.5"},
		{"bool", true, "true"},
		{"string", "hi\n", `"hi\n"`},
		{"variant bare", opt{tag: "None"}, "None"},
		{"variant tuple", opt{tag: "Some", fields: []any{3}}, "Some(3)"},
		{"variant nested", opt{tag: "Some", fields: []any{opt{tag: "Ok", fields: []any{"x"}}}}, `Some(Ok("x"))`},
		{"variant named", rec{names: []string{"A", "B"}, fields: []any{1, "b"}}, `Rec{A: 1, B: "b"}`},
		{"struct", point{X: 1, Y: 2, note: "n"}, "point{X: 1, Y: 2}"},
		{"pointer", &point{X: 1}, "point{X: 1, Y: 0}"},
		{"nil pointer", (*point)(nil), "nil"},
		{"generic struct", box[int]{V: 1}, "box{V: 1}"},
		{"slice", []int{1, 2}, "[1, 2]"},
		{"nil slice", []int(nil), "nil"},
		{"array of strings", [2]string{"a", "b"}, `["a", "b"]`},
		{"map sorted", map[string]int{"b": 2, "a": 1}, "map[a:1 b:2]"},
		{"enum", level(1), "High"},
		{"debug stringer", secret("pw"), "<redacted>"},
		{"error", errors.New("boom"), "boom"},
		{"func", func(int) {}, "func(int)"},
		{"typed nil error", error((*fault)(nil)), "nil"},
		{"typed nil variant", (*ref)(nil), "nil"},
		{"pointer variant", &ref{tag: "Leaf"}, "Leaf"},
		{"nil map", map[string]int(nil), "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.value, RenderConfig{}))
		})
	}
}

func TestRenderMaxDepth(t *testing.T) {
	v := opt{tag: "A", fields: []any{opt{tag: "B", fields: []any{opt{tag: "C", fields: []any{1}}}}}}

	assert.Equal(t, "A(B(..))", Render(v, RenderConfig{MaxDepth: 1}))
	assert.Equal(t, "A(B(C(1)))", Render(v, RenderConfig{}))
}

func TestRenderSelfReferentialPointer(t *testing.T) {
	var a any
	a = &a

	assert.Equal(t, "..", Render(a, RenderConfig{MaxDepth: 3}))
}

func TestDump(t *testing.T) {
	out := Dump(map[string]int{"b": 2, "a": 1})

	assert.Less(t, strings.Index(out, `"a"`), strings.Index(out, `"b"`))
	assert.False(t, strings.HasSuffix(out, "\n"))
}
