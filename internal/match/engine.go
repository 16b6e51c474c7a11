package match

import (
	"errors"
	"fmt"

	"matches/internal/pattern"
	"matches/primitive"
)

var (
	// ErrUnmatchable is returned when a pattern needs to look inside a value
	// that exposes no shape, such as a func or a chan.
	ErrUnmatchable = errors.New("value cannot be inspected by pattern")
	// ErrUnknownField is returned when a struct pattern or guard selector
	// names a field the value does not have.
	ErrUnknownField = errors.New("unknown field")
	// ErrArity is returned when a tuple pattern lists a different number of
	// fields than the value's variant has.
	ErrArity = errors.New("wrong number of fields")
	// ErrGuard is returned when a guard cannot be evaluated to a boolean.
	ErrGuard = errors.New("guard evaluation failed")
)

// FieldError is an ErrUnknownField with a suggested replacement.
type FieldError struct {
	Field      string
	Tag        string
	Suggestion string // empty when nothing is close enough
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%v %q on %s", ErrUnknownField, e.Field, e.Tag)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg
}

func (e *FieldError) Unwrap() error { return ErrUnknownField }

func unknownField(field string, s shape) *FieldError {
	tag := s.tag
	if tag == "" {
		tag = s.describe()
	}

	suggestion, _ := Suggest(field, s.names)

	return &FieldError{Field: field, Tag: tag, Suggestion: suggestion}
}

// Result is the outcome of matching one value against one pattern.
type Result struct {
	Matched bool
	// Alternative is the index of the alternative whose shape matched,
	// or -1 when none did.
	Alternative int
	// GuardFailed is set when an alternative matched but the guard was false.
	GuardFailed bool
	// Bindings holds the bound names when Matched.
	Bindings Bindings
}

// Match tests v against p. Alternatives are tried left to right; the first
// one whose shape matches is selected and the guard, if any, is evaluated
// once with its bindings. A false guard ends the match: later alternatives
// are not tried. Errors are construction errors in the pattern or in the
// value's type, never ordinary mismatches.
func Match(v any, p *pattern.Pattern) (Result, error) {
	var b Bindings

	m := &matcher{b: &b}

	for i, alt := range p.Alts {
		ok, err := m.match(v, alt)
		if err != nil {
			return Result{Alternative: -1}, err
		}

		if !ok {
			b.truncate(0)
			continue
		}

		res := Result{Alternative: i}

		if p.Guard != nil {
			pass, err := evalGuard(p.Guard, b)
			if err != nil {
				return Result{Alternative: i}, err
			}

			if !pass {
				res.GuardFailed = true
				return res, nil
			}
		}

		res.Matched = true
		res.Bindings = b.ordered(p.Names)

		return res, nil
	}

	return Result{Alternative: -1}, nil
}

type matcher struct {
	b *Bindings
}

func (m *matcher) match(v any, n pattern.Node) (bool, error) {
	switch n := n.(type) {
	case *pattern.Wildcard:
		return true, nil

	case *pattern.Binding:
		if n.Sub != nil {
			ok, err := m.match(v, n.Sub)
			if !ok || err != nil {
				return false, err
			}
		}

		m.b.add(n.Name, v)

		return true, nil

	case *pattern.Group:
		return m.match(v, n.Inner)

	case *pattern.Or:
		mark := m.b.Len()

		for _, alt := range n.Alts {
			ok, err := m.match(v, alt)
			if err != nil {
				return false, err
			}

			if ok {
				return true, nil
			}

			m.b.truncate(mark)
		}

		return false, nil

	case *pattern.Constructor:
		return m.constructor(v, n)

	case *pattern.Literal:
		return matchLiteral(v, n)

	case *pattern.Range:
		return matchRange(v, n)

	case *pattern.Slice:
		return m.slice(v, n)

	default:
		return false, fmt.Errorf("unsupported pattern node %T", n)
	}
}

func (m *matcher) constructor(v any, c *pattern.Constructor) (bool, error) {
	s := inspect(v)

	switch s.kind {
	case shapeOpaque:
		return false, fmt.Errorf("%w: %s against %s", ErrUnmatchable, pattern.PrintNode(c), s.describe())
	case shapeVariant:
	default:
		return false, nil
	}

	if s.tag != c.Name() {
		return false, nil
	}

	switch c.Style {
	case pattern.CtorTuple:
		if len(c.Args) != len(s.fields) {
			return false, fmt.Errorf("%w: %s lists %d, %s has %d",
				ErrArity, pattern.PrintNode(c), len(c.Args), s.tag, len(s.fields))
		}

		for i, arg := range c.Args {
			ok, err := m.match(s.fields[i], arg)
			if !ok || err != nil {
				return false, err
			}
		}

	case pattern.CtorStruct:
		for _, f := range c.Fields {
			fv, ok := s.field(f.Name)
			if !ok {
				return false, unknownField(f.Name, s)
			}

			ok, err := m.match(fv, f.Pattern)
			if !ok || err != nil {
				return false, err
			}
		}

	case pattern.CtorBare:
	}

	return true, nil
}

func (m *matcher) slice(v any, sl *pattern.Slice) (bool, error) {
	s := inspect(v)

	switch s.kind {
	case shapeOpaque:
		return false, fmt.Errorf("%w: %s against %s", ErrUnmatchable, pattern.PrintNode(sl), s.describe())
	case shapeSeq:
	default:
		return false, nil
	}

	n := s.seq.Len()

	if sl.Rest < 0 && n != len(sl.Elems) {
		return false, nil
	}

	if n < len(sl.Elems) {
		return false, nil
	}

	for i, elem := range sl.Elems {
		idx := i
		if sl.Rest >= 0 && i >= sl.Rest {
			idx = n - (len(sl.Elems) - i)
		}

		ev := s.seq.Index(idx)
		if !ev.CanInterface() {
			return false, fmt.Errorf("%w: element %d of %s", ErrUnmatchable, idx, s.describe())
		}

		ok, err := m.match(ev.Interface(), elem)
		if !ok || err != nil {
			return false, err
		}
	}

	return true, nil
}

func matchLiteral(v any, lit *pattern.Literal) (bool, error) {
	s := inspect(v)

	if lit.Kind == pattern.LitNil {
		return s.kind == shapeNil || s.nilSeq, nil
	}

	if s.kind == shapeOpaque {
		return false, fmt.Errorf("%w: %s against %s", ErrUnmatchable, lit.Text, s.describe())
	}

	if !s.hasScalar {
		return false, nil
	}

	want, _ := primitive.Of(lit.Value)

	return primitive.Equal(s.scalar, want), nil
}

func matchRange(v any, r *pattern.Range) (bool, error) {
	s := inspect(v)

	if s.kind == shapeOpaque {
		return false, fmt.Errorf("%w: %s against %s", ErrUnmatchable, pattern.PrintNode(r), s.describe())
	}

	if !s.hasScalar {
		return false, nil
	}

	lo, _ := primitive.Of(r.Lo.Value)
	hi, _ := primitive.Of(r.Hi.Value)

	if c, err := primitive.Compare(lo, s.scalar); err != nil || c > 0 {
		return false, nil
	}

	c, err := primitive.Compare(s.scalar, hi)
	if err != nil {
		return false, nil
	}

	if r.Inclusive {
		return c <= 0, nil
	}

	return c < 0, nil
}
