package pattern

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits a pattern source into tokens. The final token is always EOF.
func Tokenize(src string) ([]Token, error) {
	lx := &lexer{src: src}

	var tokens []Token

	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)

		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

type lexer struct {
	src string
	pos int
}

func (lx *lexer) errorf(pos int, format string, args ...any) error {
	return &SyntaxError{Src: lx.src, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (lx *lexer) peekByte(offset int) byte {
	if lx.pos+offset < len(lx.src) {
		return lx.src[lx.pos+offset]
	}

	return 0
}

func (lx *lexer) emit(kind Kind, start int) Token {
	return Token{Kind: kind, Text: lx.src[start:lx.pos], Pos: start}
}

func (lx *lexer) next() (Token, error) {
	lx.skipSpace()

	start := lx.pos
	if lx.pos >= len(lx.src) {
		return Token{Kind: EOF, Pos: start}, nil
	}

	r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])

	switch {
	case isIdentStart(r):
		lx.pos += size
		for lx.pos < len(lx.src) {
			r, size = utf8.DecodeRuneInString(lx.src[lx.pos:])
			if !isIdentStart(r) && !unicode.IsDigit(r) {
				break
			}

			lx.pos += size
		}

		return lx.emit(IDENT, start), nil

	case isDigit(r):
		return lx.number(start)

	case r == '"' || r == '`':
		return lx.quoted(start, byte(r), STRING)

	case r == '\'':
		return lx.quoted(start, '\'', CHAR)
	}

	return lx.punct(start)
}

func (lx *lexer) skipSpace() {
	for lx.pos < len(lx.src) {
		r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
		if !unicode.IsSpace(r) {
			return
		}

		lx.pos += size
	}
}

func (lx *lexer) number(start int) (Token, error) {
	kind := INT

	// hex, octal and binary prefixes
	if lx.peekByte(0) == '0' && strings.ContainsRune("xXoObB", rune(lx.peekByte(1))) {
		lx.pos += 2
		for lx.pos < len(lx.src) && (isHexDigit(lx.src[lx.pos]) || lx.src[lx.pos] == '_') {
			lx.pos++
		}

		return lx.emit(kind, start), nil
	}

	lx.digits()

	// "1..=9" is a range, not a float
	if lx.peekByte(0) == '.' && lx.peekByte(1) != '.' && isDigit(rune(lx.peekByte(1))) {
		kind = FLOAT
		lx.pos++
		lx.digits()
	}

	if c := lx.peekByte(0); c == 'e' || c == 'E' {
		kind = FLOAT
		lx.pos++

		if c := lx.peekByte(0); c == '+' || c == '-' {
			lx.pos++
		}

		if !isDigit(rune(lx.peekByte(0))) {
			return Token{}, lx.errorf(start, "malformed exponent in %q", lx.src[start:lx.pos])
		}

		lx.digits()
	}

	return lx.emit(kind, start), nil
}

func (lx *lexer) digits() {
	for lx.pos < len(lx.src) && (isDigit(rune(lx.src[lx.pos])) || lx.src[lx.pos] == '_') {
		lx.pos++
	}
}

func (lx *lexer) quoted(start int, quote byte, kind Kind) (Token, error) {
	lx.pos++

	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]

		switch {
		case c == '\\' && quote != '`':
			lx.pos += 2
		case c == quote:
			lx.pos++
			return lx.emit(kind, start), nil
		default:
			lx.pos++
		}
	}

	return Token{}, lx.errorf(start, "unterminated %s literal", kind)
}

func (lx *lexer) punct(start int) (Token, error) {
	c := lx.src[lx.pos]
	two := lx.src[lx.pos:min(lx.pos+2, len(lx.src))]

	if lx.src[lx.pos:min(lx.pos+3, len(lx.src))] == "..=" {
		lx.pos += 3
		return lx.emit(DotDotEq, start), nil
	}

	twoChar := map[string]Kind{
		"..": DotDot,
		"::": PathSep,
		"||": OrOr,
		"&&": AndAnd,
		"==": Eq,
		"!=": Neq,
		"<=": Le,
		">=": Ge,
	}
	if kind, ok := twoChar[two]; ok {
		lx.pos += 2
		return lx.emit(kind, start), nil
	}

	oneChar := map[byte]Kind{
		'(': LParen,
		')': RParen,
		'[': LBrack,
		']': RBrack,
		'{': LBrace,
		'}': RBrace,
		',': Comma,
		':': Colon,
		'.': Dot,
		'|': Pipe,
		'@': At,
		'!': Not,
		'<': Lt,
		'>': Gt,
		'+': Plus,
		'-': Minus,
		'*': Star,
		'/': Slash,
		'%': Rem,
	}
	if kind, ok := oneChar[c]; ok {
		lx.pos++
		return lx.emit(kind, start), nil
	}

	r, _ := utf8.DecodeRuneInString(lx.src[lx.pos:])

	return Token{}, lx.errorf(start, "unexpected character %q", r)
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(rune(c)) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
