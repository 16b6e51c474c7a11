package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlternatives(t *testing.T) {
	pat, err := Parse("Foo.B(i) | Foo.A(i) if i < 100")
	require.NoError(t, err)

	require.Len(t, pat.Alts, 2)
	assert.Equal(t, []string{"i"}, pat.Names)
	require.NotNil(t, pat.Guard)

	ctor, ok := pat.Alts[0].(*Constructor)
	require.True(t, ok)
	assert.Equal(t, []string{"Foo", "B"}, ctor.Path)
	assert.Equal(t, "B", ctor.Name())
	assert.Equal(t, ".", ctor.Sep)
	assert.Equal(t, CtorTuple, ctor.Style)
	require.Len(t, ctor.Args, 1)
	assert.Equal(t, &Binding{Name: "i"}, ctor.Args[0])

	guard, ok := pat.Guard.(*Binary)
	require.True(t, ok)
	assert.Equal(t, Lt, guard.Op)
}

func TestParseLeadingPipe(t *testing.T) {
	pat, err := Parse("| None | Some(_)")
	require.NoError(t, err)
	assert.Len(t, pat.Alts, 2)
	assert.Empty(t, pat.Names)
}

func TestParseIdentClassification(t *testing.T) {
	tests := []struct {
		src  string
		want Node
	}{
		{"_", &Wildcard{}},
		{"x", &Binding{Name: "x"}},
		{"_rest", &Binding{Name: "_rest"}},
		{"None", &Constructor{Path: []string{"None"}, Style: CtorBare}},
		{"Color::Red", &Constructor{Path: []string{"Color", "Red"}, Sep: "::", Style: CtorBare}},
		{"leaf()", &Constructor{Path: []string{"leaf"}, Style: CtorTuple}},
		{"true", &Literal{Kind: LitBool, Value: true, Text: "true"}},
		{"nil", &Literal{Kind: LitNil, Value: nil, Text: "nil"}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			pat, err := Parse(tt.src)
			require.NoError(t, err)
			require.Len(t, pat.Alts, 1)
			assert.Equal(t, tt.want, pat.Alts[0])
		})
	}
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		src  string
		kind LitKind
		want any
	}{
		{"42", LitInt, int64(42)},
		{"-3", LitInt, int64(-3)},
		{"0x10", LitInt, int64(16)},
		{"1_000", LitInt, int64(1000)},
		{"18446744073709551615", LitInt, uint64(18446744073709551615)},
		{"0.5", LitFloat, 0.5},
		{"-2.5e3", LitFloat, -2500.0},
		{`"-AB"`, LitString, "-AB"},
		{"`raw\\n`", LitString, `raw\n`},
		{"'a'", LitChar, 'a'},
		{`'\n'`, LitChar, '\n'},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			pat, err := Parse(tt.src)
			require.NoError(t, err)

			lit, ok := pat.Alts[0].(*Literal)
			require.True(t, ok, "got %T", pat.Alts[0])
			assert.Equal(t, tt.kind, lit.Kind)
			assert.Equal(t, tt.want, lit.Value)
		})
	}
}

func TestParseRangesAndSlices(t *testing.T) {
	pat, err := Parse("'0'..='9'")
	require.NoError(t, err)

	rng, ok := pat.Alts[0].(*Range)
	require.True(t, ok)
	assert.True(t, rng.Inclusive)
	assert.Equal(t, '0', rng.Lo.Value)
	assert.Equal(t, '9', rng.Hi.Value)

	pat, err = Parse("-5..5")
	require.NoError(t, err)

	rng, ok = pat.Alts[0].(*Range)
	require.True(t, ok)
	assert.False(t, rng.Inclusive)
	assert.Equal(t, int64(-5), rng.Lo.Value)

	pat, err = Parse("[first, .., last]")
	require.NoError(t, err)

	sl, ok := pat.Alts[0].(*Slice)
	require.True(t, ok)
	assert.Equal(t, 1, sl.Rest)
	assert.Len(t, sl.Elems, 2)
	assert.Equal(t, []string{"first", "last"}, pat.Names)

	pat, err = Parse("[a, b]")
	require.NoError(t, err)
	assert.Equal(t, -1, pat.Alts[0].(*Slice).Rest)
}

func TestParseStructAndAt(t *testing.T) {
	pat, err := Parse("Point{X: 0, Y: y @ 1..=9, ..}")
	require.NoError(t, err)

	ctor := pat.Alts[0].(*Constructor)
	assert.Equal(t, CtorStruct, ctor.Style)
	assert.True(t, ctor.Rest)
	require.Len(t, ctor.Fields, 2)
	assert.Equal(t, "Y", ctor.Fields[1].Name)

	b, ok := ctor.Fields[1].Pattern.(*Binding)
	require.True(t, ok)
	assert.Equal(t, "y", b.Name)
	assert.IsType(t, &Range{}, b.Sub)
}

func TestParseNestedOr(t *testing.T) {
	pat, err := Parse("Some(A(x) | B(x))")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, pat.Names)

	ctor := pat.Alts[0].(*Constructor)
	or, ok := ctor.Args[0].(*Or)
	require.True(t, ok)
	assert.Len(t, or.Alts, 2)
}

func TestParseGuardCalls(t *testing.T) {
	pat, err := Parse(`Some(bar) if matches(bar, "A | B") && len(bar) > 0`)
	require.NoError(t, err)

	and := pat.Guard.(*Binary)
	assert.Equal(t, AndAnd, and.Op)

	call, ok := and.X.(*Call)
	require.True(t, ok)
	assert.Equal(t, BuiltinMatches, call.Func)
	require.NotNil(t, call.Sub)
	assert.Len(t, call.Sub.Alts, 2)
	assert.Len(t, call.Args, 1)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		binding bool
	}{
		{"empty", "", false},
		{"blank", "   ", false},
		{"unclosed tuple", "Some(", false},
		{"unclosed struct", "P{X: 1", false},
		{"missing colon", "P{X 1}", false},
		{"trailing garbage", "Some(x) x", false},
		{"unterminated string", `"abc`, false},
		{"bad rune", "'ab'", false},
		{"bad char", "Some(#)", false},
		{"incomparable range", `1..="z"`, false},
		{"double rest", "[.., a, ..]", false},
		{"duplicate field", "P{X: a, X: b}", false},
		{"mixed separators", "A.B::C", false},
		{"unknown guard func", "x if foo(x)", false},
		{"matches needs literal", "x if matches(x, x)", false},
		{"len arity", "x if len(x, x) > 1", false},
		{"keyword as pattern", "if", false},
		{"missing guard", "x if", false},
		{"inconsistent alternatives", "A(x) | B", true},
		{"inconsistent or", "Some(A(x) | B(y))", true},
		{"duplicate binding", "Pair(x, x)", true},
		{"duplicate via at", "x @ Some(x)", true},
		{"unbound guard name", "A(x) if y > 1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "error should wrap ErrInvalid: %v", err)

			var bindErr *BindingError
			assert.Equal(t, tt.binding, errors.As(err, &bindErr), "error: %v", err)
		})
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := Parse("Some(x")

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, 6, synErr.Pos)
	assert.Contains(t, err.Error(), `expected ")", found end of pattern`)
	assert.Contains(t, err.Error(), "Some(x^")
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("A::b(1..=2, x) || y != 'c'")
	require.NoError(t, err)

	var kinds []Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}

	assert.Equal(t, []Kind{
		IDENT, PathSep, IDENT, LParen, INT, DotDotEq, INT, Comma, IDENT, RParen,
		OrOr, IDENT, Neq, CHAR, EOF,
	}, kinds)
}
