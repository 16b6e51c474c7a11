package pattern

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every error Parse returns.
var ErrInvalid = errors.New("invalid pattern")

// SyntaxError reports a lexical or grammatical problem at a byte offset.
type SyntaxError struct {
	Src string
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pattern syntax error at offset %d: %s (in %q)", e.Pos, e.Msg, snippet(e.Src, e.Pos))
}

func (e *SyntaxError) Unwrap() error { return ErrInvalid }

// BindingError reports alternatives or guards that disagree on bound names.
type BindingError struct {
	Msg string
}

func (e *BindingError) Error() string {
	return "pattern binding error: " + e.Msg
}

func (e *BindingError) Unwrap() error { return ErrInvalid }

// snippet returns a short window of src around pos with a caret marker.
func snippet(src string, pos int) string {
	const window = 12

	pos = min(max(pos, 0), len(src))
	lo := max(pos-window, 0)
	hi := min(pos+window, len(src))

	var b strings.Builder
	if lo > 0 {
		b.WriteString("...")
	}

	b.WriteString(src[lo:pos])
	b.WriteString("^")
	b.WriteString(src[pos:hi])

	if hi < len(src) {
		b.WriteString("...")
	}

	return b.String()
}
