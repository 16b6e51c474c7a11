package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func debugQuote(v any) string {
	return Render(v, RenderConfig{})
}

func TestMessageFormat(t *testing.T) {
	tests := []struct {
		name     string
		args     []any
		expected string
	}{
		{"plain", []any{"boom"}, "boom"},
		{"next positional", []any{"bad value: {}", 42}, "bad value: 42"},
		{"explicit positional", []any{"bad value: {0}", 42}, "bad value: 42"},
		{"reordered", []any{"{1} before {0}", "a", "b"}, "b before a"},
		{"repeated", []any{"{0}{0}{}", "x"}, "xxx"},
		{"named", []any{"got {n} of {total}", Named{"n", 2}, Named{"total", 3}}, "got 2 of 3"},
		{"named and positional", []any{"{} {who}", "hi", Named{"who", "bob"}}, "hi bob"},
		{"debug", []any{"got {:?}", "x"}, `got "x"`},
		{"debug explicit", []any{"got {0:?}", []int{1, 2}}, "got [1, 2]"},
		{"escapes", []any{"{{literal}} {}", 1}, "{literal} 1"},
		{"missing positional", []any{"{} and {}", 1}, "1 and %!{}(MISSING)"},
		{"missing named", []any{"{who}"}, "%!{who}(MISSING)"},
		{"out of range", []any{"{3}", 1}, "%!{3}(MISSING)"},
		{"unclosed", []any{"tail {", 1}, "tail {"},
		{"printf fallback", []any{"value %d", 7}, "value 7"},
		{"percent without args", []any{"100%"}, "100%"},
		{"non-string first", []any{42}, "42"},
		{"pattern is not injected", []any{"failed"}, "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewMessage(tt.args).Format(debugQuote))
		})
	}
}

func TestNewMessageEmpty(t *testing.T) {
	assert.Nil(t, NewMessage(nil))
	assert.Empty(t, NewMessage(nil).Format(nil))
}
