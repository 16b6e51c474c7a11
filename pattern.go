package matches

import (
	"matches/internal/diagnostic"
	"matches/internal/match"
	"matches/internal/pattern"
)

// Pattern is a compiled pattern. It is immutable and safe for concurrent use.
type Pattern struct {
	src  string
	text string
	tree *pattern.Pattern
	cfg  Config
}

// Compile parses src. Syntax errors and alternatives binding different names
// are reported here, never at match time.
func Compile(src string, opts ...CompileOption) (*Pattern, error) {
	tree, err := pattern.Parse(src)
	if err != nil {
		return nil, err
	}

	p := &Pattern{src: src, text: pattern.Print(tree), tree: tree}
	for _, opt := range opts {
		opt(&p.cfg)
	}

	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string, opts ...CompileOption) *Pattern {
	p, err := Compile(src, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// Source returns the pattern as written.
func (p *Pattern) Source() string { return p.src }

// String returns the pattern with canonical spacing.
func (p *Pattern) String() string { return p.text }

// Names returns the names the pattern binds.
func (p *Pattern) Names() []string {
	return append([]string(nil), p.tree.Names...)
}

// Match tests v and returns the bindings on success. The error is non-nil
// only for values the pattern cannot inspect or guards that cannot be
// evaluated.
func (p *Pattern) Match(v any) (Bindings, bool, error) {
	res, err := match.Match(v, p.tree)
	if err != nil {
		return Bindings{}, false, err
	}

	return res.Bindings, res.Matched, nil
}

// Matches reports whether v matches. It panics on the errors Match returns.
func (p *Pattern) Matches(v any) bool {
	_, ok := p.mustMatch(v)
	return ok
}

// Assert panics with a *MatchError when v does not match. msg is an optional
// custom message template followed by its arguments.
func (p *Pattern) Assert(v any, msg ...any) {
	if err := p.Check(v, msg...); err != nil {
		panic(err)
	}
}

// Check is Assert returning the error instead of panicking.
func (p *Pattern) Check(v any, msg ...any) error {
	res, err := match.Match(v, p.tree)
	if err != nil {
		return err
	}

	if !res.Matched {
		return p.failure(diagnostic.KindAssert, v, res, msg)
	}

	return nil
}

func (p *Pattern) mustMatch(v any) (match.Result, bool) {
	res, err := match.Match(v, p.tree)
	if err != nil {
		panic(err)
	}

	return res, res.Matched
}

// failure renders v and builds the error for a failed assert or unwrap.
func (p *Pattern) failure(kind diagnostic.Kind, v any, res match.Result, msg []any) *MatchError {
	d := diagnostic.Format(kind, p.text, p.cfg.render(v), diagnostic.NewMessage(msg), p.cfg.render)
	if p.cfg.Verbose {
		d.Detail = diagnostic.Dump(v)
	}

	return newMatchError(d, res.GuardFailed)
}
