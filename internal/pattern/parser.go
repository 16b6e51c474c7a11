package pattern

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"matches/internal/common"
)

const keywordIf = "if"

// Parse parses a pattern source of the form
//
//	[|] alternative {| alternative} [if guard]
//
// and checks that all alternatives bind the same names and that the guard
// only uses bound names. Every returned error wraps ErrInvalid.
func Parse(src string) (*Pattern, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &parser{src: src, tokens: tokens}

	pat, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	if !p.at(EOF) {
		return nil, p.unexpected("end of pattern")
	}

	if err := resolveNames(pat); err != nil {
		return nil, err
	}

	return pat, nil
}

type parser struct {
	src    string
	tokens []Token
	pos    int
}

func (p *parser) cur() Token {
	return p.tokens[p.pos]
}

func (p *parser) peek(offset int) Token {
	if i := p.pos + offset; i < len(p.tokens) {
		return p.tokens[i]
	}

	return p.tokens[len(p.tokens)-1]
}

func (p *parser) at(kind Kind) bool {
	return p.cur().Kind == kind
}

func (p *parser) atKeyword(word string) bool {
	return p.at(IDENT) && p.cur().Text == word
}

func (p *parser) advance() Token {
	tok := p.cur()
	if tok.Kind != EOF {
		p.pos++
	}

	return tok
}

func (p *parser) expect(kind Kind) (Token, error) {
	if !p.at(kind) {
		return Token{}, p.unexpected(fmt.Sprintf("%q", kind.String()))
	}

	return p.advance(), nil
}

func (p *parser) errorf(pos int, format string, args ...any) error {
	return &SyntaxError{Src: p.src, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) unexpected(want string) error {
	tok := p.cur()
	if tok.Kind == EOF {
		return p.errorf(tok.Pos, "expected %s, found end of pattern", want)
	}

	return p.errorf(tok.Pos, "expected %s, found %q", want, tok.Text)
}

func (p *parser) parsePattern() (*Pattern, error) {
	if p.at(EOF) {
		return nil, p.errorf(0, "empty pattern")
	}

	// a leading "|" is allowed and dropped
	if p.at(Pipe) {
		p.advance()
	}

	pat := &Pattern{}

	for {
		alt, err := p.parseAlt()
		if err != nil {
			return nil, err
		}

		pat.Alts = append(pat.Alts, alt)

		if !p.at(Pipe) {
			break
		}

		p.advance()
	}

	if p.atKeyword(keywordIf) {
		p.advance()

		guard, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}

		pat.Guard = guard
	}

	return pat, nil
}

// parseOr parses a nested pattern that may itself be an or-pattern.
func (p *parser) parseOr() (Node, error) {
	first, err := p.parseAlt()
	if err != nil {
		return nil, err
	}

	if !p.at(Pipe) {
		return first, nil
	}

	or := &Or{Alts: []Node{first}}
	for p.at(Pipe) {
		p.advance()

		alt, err := p.parseAlt()
		if err != nil {
			return nil, err
		}

		or.Alts = append(or.Alts, alt)
	}

	return or, nil
}

func (p *parser) parseAlt() (Node, error) {
	tok := p.cur()

	switch tok.Kind {
	case IDENT:
		switch tok.Text {
		case "_":
			p.advance()
			return &Wildcard{}, nil
		case "true", "false", "nil":
			return p.parseLiteral()
		case keywordIf:
			return nil, p.unexpected("pattern")
		}

		return p.parseIdentPattern()

	case INT, FLOAT, STRING, CHAR, Minus:
		return p.parseLiteralOrRange()

	case LParen:
		p.advance()

		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(RParen); err != nil {
			return nil, err
		}

		return &Group{Inner: inner}, nil

	case LBrack:
		return p.parseSlice()

	default:
		return nil, p.unexpected("pattern")
	}
}

func (p *parser) parseIdentPattern() (Node, error) {
	ctor := &Constructor{Path: []string{p.advance().Text}}

	for (p.at(Dot) || p.at(PathSep)) && p.peek(1).Kind == IDENT {
		sep := p.advance().Text
		if ctor.Sep == "" {
			ctor.Sep = sep
		} else if ctor.Sep != sep {
			return nil, p.errorf(p.tokens[p.pos-1].Pos, "mixed path separators %q and %q", ctor.Sep, sep)
		}

		ctor.Path = append(ctor.Path, p.advance().Text)
	}

	switch {
	case p.at(LParen):
		ctor.Style = CtorTuple
		return ctor, p.parseTupleArgs(ctor)

	case p.at(LBrace):
		ctor.Style = CtorStruct
		return ctor, p.parseStructFields(ctor)

	case common.IsSingle(ctor.Path) && isBindingName(ctor.Path[0]):
		b := &Binding{Name: ctor.Path[0]}
		if p.at(At) {
			p.advance()

			sub, err := p.parseAlt()
			if err != nil {
				return nil, err
			}

			b.Sub = sub
		}

		return b, nil
	}

	return ctor, nil
}

func (p *parser) parseTupleArgs(ctor *Constructor) error {
	p.advance() // (

	for !p.at(RParen) {
		arg, err := p.parseOr()
		if err != nil {
			return err
		}

		ctor.Args = append(ctor.Args, arg)

		if !p.at(Comma) {
			break
		}

		p.advance()
	}

	_, err := p.expect(RParen)

	return err
}

func (p *parser) parseStructFields(ctor *Constructor) error {
	p.advance() // {

	seen := map[string]struct{}{}

	for !p.at(RBrace) {
		if p.at(DotDot) {
			p.advance()
			ctor.Rest = true

			break
		}

		name, err := p.expect(IDENT)
		if err != nil {
			return err
		}

		if _, dup := seen[name.Text]; dup {
			return p.errorf(name.Pos, "field %q listed twice", name.Text)
		}

		seen[name.Text] = struct{}{}

		if _, err := p.expect(Colon); err != nil {
			return err
		}

		sub, err := p.parseOr()
		if err != nil {
			return err
		}

		ctor.Fields = append(ctor.Fields, FieldPattern{Name: name.Text, Pattern: sub})

		if !p.at(Comma) {
			break
		}

		p.advance()
	}

	_, err := p.expect(RBrace)

	return err
}

func (p *parser) parseSlice() (Node, error) {
	p.advance() // [

	s := &Slice{Rest: -1}

	for !p.at(RBrack) {
		if p.at(DotDot) && (p.peek(1).Kind == Comma || p.peek(1).Kind == RBrack) {
			if s.Rest >= 0 {
				return nil, p.errorf(p.cur().Pos, "more than one \"..\" in slice pattern")
			}

			s.Rest = len(s.Elems)
			p.advance()
		} else {
			elem, err := p.parseOr()
			if err != nil {
				return nil, err
			}

			s.Elems = append(s.Elems, elem)
		}

		if !p.at(Comma) {
			break
		}

		p.advance()
	}

	if _, err := p.expect(RBrack); err != nil {
		return nil, err
	}

	return s, nil
}

func (p *parser) parseLiteralOrRange() (Node, error) {
	lo, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}

	if !p.at(DotDot) && !p.at(DotDotEq) {
		return lo, nil
	}

	opTok := p.cur()
	if next := p.peek(1).Kind; !next.IsLiteral() && next != Minus {
		return lo, nil
	}

	p.advance()

	hi, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}

	if !rangeCompatible(lo, hi) {
		return nil, p.errorf(opTok.Pos, "range bounds %s and %s are not comparable", lo.Text, hi.Text)
	}

	return &Range{Lo: lo, Hi: hi, Inclusive: opTok.Kind == DotDotEq}, nil
}

func (p *parser) parseLiteral() (*Literal, error) {
	tok := p.cur()
	negative := false

	if tok.Kind == Minus {
		p.advance()

		negative = true
		tok = p.cur()

		if tok.Kind != INT && tok.Kind != FLOAT {
			return nil, p.unexpected("number after \"-\"")
		}
	}

	lit, err := literalOf(tok, negative)
	if err != nil {
		return nil, p.errorf(tok.Pos, "%v", err)
	}

	if lit == nil {
		return nil, p.unexpected("literal")
	}

	p.advance()

	return lit, nil
}

// literalOf converts a literal token. It returns nil, nil when tok is not a literal.
func literalOf(tok Token, negative bool) (*Literal, error) {
	text := tok.Text
	if negative {
		text = "-" + text
	}

	switch tok.Kind {
	case INT:
		if v, err := strconv.ParseInt(text, 0, 64); err == nil {
			return &Literal{Kind: LitInt, Value: v, Text: text}, nil
		}

		if !negative {
			if v, err := strconv.ParseUint(text, 0, 64); err == nil {
				return &Literal{Kind: LitInt, Value: v, Text: text}, nil
			}
		}

		return nil, fmt.Errorf("integer literal %s out of range", text)

	case FLOAT:
		v, err := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float literal %s", text)
		}

		return &Literal{Kind: LitFloat, Value: v, Text: text}, nil

	case STRING:
		v, err := strconv.Unquote(text)
		if err != nil {
			return nil, fmt.Errorf("invalid string literal %s", text)
		}

		return &Literal{Kind: LitString, Value: v, Text: text}, nil

	case CHAR:
		v, err := strconv.Unquote(text)
		if err != nil || utf8.RuneCountInString(v) != 1 {
			return nil, fmt.Errorf("invalid rune literal %s", text)
		}

		r, _ := utf8.DecodeRuneInString(v)

		return &Literal{Kind: LitChar, Value: r, Text: text}, nil

	case IDENT:
		switch text {
		case "true", "false":
			return &Literal{Kind: LitBool, Value: text == "true", Text: text}, nil
		case "nil":
			return &Literal{Kind: LitNil, Value: nil, Text: text}, nil
		}
	}

	return nil, nil
}

func rangeCompatible(lo, hi *Literal) bool {
	numeric := func(l *Literal) bool {
		return l.Kind == LitInt || l.Kind == LitFloat || l.Kind == LitChar
	}

	switch {
	case numeric(lo) && numeric(hi):
		return true
	case lo.Kind == LitString && hi.Kind == LitString:
		return true
	default:
		return false
	}
}

// isBindingName reports whether an identifier introduces a binding rather
// than naming a constructor: bindings start with a lower-case letter or "_".
func isBindingName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r == '_' || unicode.IsLower(r)
}

// --- guard expressions ---

func (p *parser) parseExpr(minPrec int) (Expr, error) {
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		op := p.cur().Kind

		prec := op.precedence()
		if prec == 0 || prec < minPrec {
			return x, nil
		}

		p.advance()

		y, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}

		x = &Binary{Op: op, X: x, Y: y}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	if p.at(Not) || p.at(Minus) {
		op := p.advance().Kind

		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &Unary{Op: op, X: x}, nil
	}

	return p.parsePostfix()
}

func (p *parser) parsePostfix() (Expr, error) {
	x, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.at(Dot):
			p.advance()

			field, err := p.expect(IDENT)
			if err != nil {
				return nil, err
			}

			x = &Selector{X: x, Field: field.Text}

		case p.at(LBrack):
			p.advance()

			idx, err := p.parseExpr(1)
			if err != nil {
				return nil, err
			}

			if _, err := p.expect(RBrack); err != nil {
				return nil, err
			}

			x = &Index{X: x, Index: idx}

		default:
			return x, nil
		}
	}
}

func (p *parser) parseOperand() (Expr, error) {
	tok := p.cur()

	switch tok.Kind {
	case IDENT:
		if lit, _ := literalOf(tok, false); lit != nil {
			p.advance()
			return lit, nil
		}

		p.advance()

		if p.at(LParen) {
			return p.parseCall(tok)
		}

		return &Ident{Name: tok.Text}, nil

	case INT, FLOAT, STRING, CHAR:
		return p.parseLiteral()

	case LParen:
		p.advance()

		x, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(RParen); err != nil {
			return nil, err
		}

		return &Paren{X: x}, nil

	default:
		return nil, p.unexpected("guard operand")
	}
}

func (p *parser) parseCall(fn Token) (Expr, error) {
	p.advance() // (

	call := &Call{Func: fn.Text}

	for !p.at(RParen) {
		arg, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}

		call.Args = append(call.Args, arg)

		if !p.at(Comma) {
			break
		}

		p.advance()
	}

	if _, err := p.expect(RParen); err != nil {
		return nil, err
	}

	switch call.Func {
	case BuiltinLen:
		if len(call.Args) != 1 {
			return nil, p.errorf(fn.Pos, "len takes 1 argument, got %d", len(call.Args))
		}

	case BuiltinMatches:
		if len(call.Args) != 2 {
			return nil, p.errorf(fn.Pos, "matches takes 2 arguments, got %d", len(call.Args))
		}

		lit, ok := call.Args[1].(*Literal)
		if !ok || lit.Kind != LitString {
			return nil, p.errorf(fn.Pos, "second argument of matches must be a string literal pattern")
		}

		sub, err := Parse(lit.Value.(string))
		if err != nil {
			return nil, p.errorf(fn.Pos, "in nested pattern: %v", err)
		}

		call.Sub = sub
		call.Args = call.Args[:1]

	default:
		return nil, p.errorf(fn.Pos, "unknown guard function %q", fn.Text)
	}

	return call, nil
}
