package casefile

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"matches"
	"matches/primitive"
)

// Verdict is the result of running one case.
type Verdict struct {
	Case   string
	Passed bool
	Got    Outcome
	// Bindings holds the bound values on a match.
	Bindings map[string]any
	// Diagnostic is the failure message on a non-match.
	Diagnostic string
	// Err is the construction error when Got is OutcomeError.
	Err error
	// Reason explains a failed verdict.
	Reason string
}

// RunFile runs every case of f in order.
func RunFile(f *File) []Verdict {
	out := make([]Verdict, 0, len(f.Cases))
	for i := range f.Cases {
		out = append(out, Run(f, &f.Cases[i]))
	}

	return out
}

// Run evaluates one case with the file's settings.
func Run(f *File, c *Case) Verdict {
	v := Verdict{Case: c.Name}

	p, err := matches.Compile(c.Pattern, matches.WithConfig(f.Settings))
	if err != nil {
		v.Got, v.Err = OutcomeError, err
		return judge(c, v)
	}

	switch c.Mode {
	case ModeUnwrap:
		b, err := matches.TryUnwrapWith(p, c.Value.V, func(b matches.Bindings) matches.Bindings { return b }, c.Message...)
		v = outcome(v, b, err)

	case ModeOptional:
		b, err := optional(p, c.Value.V)
		if err != nil {
			v.Got, v.Err = OutcomeError, err
			break
		}

		if bound, ok := b.Get(); ok {
			v.Got, v.Bindings = OutcomeMatch, bound.Map()
		} else {
			v.Got = OutcomeNoMatch
		}

	default:
		err := p.Check(c.Value.V, c.Message...)
		if err == nil {
			// Check drops the bindings; match again to report them
			b, _, _ := p.Match(c.Value.V)
			v = outcome(v, b, nil)
		} else {
			v = outcome(v, matches.Bindings{}, err)
		}
	}

	return judge(c, v)
}

func optional(p *matches.Pattern, v any) (opt matches.Option[matches.Bindings], err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if !ok {
				panic(r)
			}

			err = rerr
		}
	}()

	return matches.OptionalWith(p, v, func(b matches.Bindings) matches.Bindings { return b }), nil
}

func outcome(v Verdict, b matches.Bindings, err error) Verdict {
	var me *matches.MatchError

	switch {
	case err == nil:
		v.Got, v.Bindings = OutcomeMatch, b.Map()
	case errors.As(err, &me):
		v.Got, v.Diagnostic = OutcomeNoMatch, me.Error()
	default:
		v.Got, v.Err = OutcomeError, err
	}

	return v
}

// judge compares what happened with what the case expects.
func judge(c *Case, v Verdict) Verdict {
	if v.Got != c.Expect {
		v.Reason = fmt.Sprintf("expected %s, got %s", c.Expect, v.Got)
		if v.Err != nil {
			v.Reason += ": " + v.Err.Error()
		}

		return v
	}

	if v.Got == OutcomeMatch {
		for name, want := range c.Bind {
			got, ok := v.Bindings[name]
			if !ok {
				v.Reason = fmt.Sprintf("%s is not bound", name)
				return v
			}

			if !sameValue(got, want.V) {
				v.Reason = fmt.Sprintf("%s bound to %v, expected %v", name, got, want.V)
				return v
			}
		}
	}

	if c.Diagnostic != "" && v.Diagnostic != c.Diagnostic {
		v.Reason = fmt.Sprintf("diagnostic %q, expected %q", v.Diagnostic, c.Diagnostic)
		return v
	}

	for _, s := range c.Contains {
		if !strings.Contains(v.Diagnostic, s) {
			v.Reason = fmt.Sprintf("diagnostic %q does not contain %q", v.Diagnostic, s)
			return v
		}
	}

	v.Passed = true

	return v
}

// sameValue compares scalars by value across Go types and everything else
// structurally.
func sameValue(a, b any) bool {
	x, xok := primitive.Of(a)
	y, yok := primitive.Of(b)

	if xok && yok {
		return primitive.Equal(x, y)
	}

	return reflect.DeepEqual(a, b)
}
