package matches

import (
	"matches/internal/diagnostic"
	"matches/internal/match"
)

// Matches reports whether v matches src.
func Matches(v any, src string) bool {
	return MustCompile(src).Matches(v)
}

// Assert panics with a *MatchError when v does not match src.
//
// The failure message is
//
//	assertion failed: `<pattern>` does not match `<value>`
//
// unless msg supplies a custom template and arguments, which then replace it.
func Assert(v any, src string, msg ...any) {
	MustCompile(src).Assert(v, msg...)
}

// DebugAssert is Assert in builds tagged matchesdebug or when MATCHES_DEBUG=1
// is set at startup, and a no-op otherwise.
func DebugAssert(v any, src string, msg ...any) {
	if debugEnabled {
		Assert(v, src, msg...)
	}
}

// Check is Assert returning the error instead of panicking. Pattern errors are
// returned as well.
func Check(v any, src string, msg ...any) error {
	p, err := Compile(src)
	if err != nil {
		return err
	}

	return p.Check(v, msg...)
}

// Unwrap returns then(bindings) when v matches src, and panics with a
// *MatchError otherwise.
func Unwrap[T any](v any, src string, then func(Bindings) T, msg ...any) T {
	return UnwrapWith(MustCompile(src), v, then, msg...)
}

// TryUnwrap is Unwrap returning the error instead of panicking.
func TryUnwrap[T any](v any, src string, then func(Bindings) T, msg ...any) (T, error) {
	p, err := Compile(src)
	if err != nil {
		var zero T
		return zero, err
	}

	return TryUnwrapWith(p, v, then, msg...)
}

// Optional returns Some(then(bindings)) when v matches src and None otherwise.
// The value is never rendered.
func Optional[T any](v any, src string, then func(Bindings) T) Option[T] {
	return OptionalWith(MustCompile(src), v, then)
}

// UnwrapWith is Unwrap with a compiled pattern.
func UnwrapWith[T any](p *Pattern, v any, then func(Bindings) T, msg ...any) T {
	out, err := TryUnwrapWith(p, v, then, msg...)
	if err != nil {
		panic(err)
	}

	return out
}

// TryUnwrapWith is TryUnwrap with a compiled pattern.
func TryUnwrapWith[T any](p *Pattern, v any, then func(Bindings) T, msg ...any) (T, error) {
	var zero T

	res, err := match.Match(v, p.tree)
	if err != nil {
		return zero, err
	}

	if !res.Matched {
		return zero, p.failure(diagnostic.KindUnwrap, v, res, msg)
	}

	return then(res.Bindings), nil
}

// OptionalWith is Optional with a compiled pattern.
func OptionalWith[T any](p *Pattern, v any, then func(Bindings) T) Option[T] {
	res, ok := p.mustMatch(v)
	if !ok {
		return None[T]()
	}

	return Some(then(res.Bindings))
}
