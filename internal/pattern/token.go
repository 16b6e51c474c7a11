package pattern

import "matches/internal/common"

// Kind identifies the lexical class of a token.
type Kind int

const (
	EOF Kind = iota
	IDENT
	INT
	FLOAT
	STRING
	CHAR

	LParen   // (
	RParen   // )
	LBrack   // [
	RBrack   // ]
	LBrace   // {
	RBrace   // }
	Comma    // ,
	Colon    // :
	Dot      // .
	PathSep  // ::
	Pipe     // |
	At       // @
	DotDot   // ..
	DotDotEq // ..=

	OrOr   // ||
	AndAnd // &&
	Not    // !
	Eq     // ==
	Neq    // !=
	Lt     // <
	Le     // <=
	Gt     // >
	Ge     // >=
	Plus   // +
	Minus  // -
	Star   // *
	Slash  // /
	Rem    // %
)

var kindText = map[Kind]string{
	EOF:      "end of pattern",
	IDENT:    "identifier",
	INT:      "integer",
	FLOAT:    "float",
	STRING:   "string",
	CHAR:     "rune",
	LParen:   "(",
	RParen:   ")",
	LBrack:   "[",
	RBrack:   "]",
	LBrace:   "{",
	RBrace:   "}",
	Comma:    ",",
	Colon:    ":",
	Dot:      ".",
	PathSep:  "::",
	Pipe:     "|",
	At:       "@",
	DotDot:   "..",
	DotDotEq: "..=",
	OrOr:     "||",
	AndAnd:   "&&",
	Not:      "!",
	Eq:       "==",
	Neq:      "!=",
	Lt:       "<",
	Le:       "<=",
	Gt:       ">",
	Ge:       ">=",
	Plus:     "+",
	Minus:    "-",
	Star:     "*",
	Slash:    "/",
	Rem:      "%",
}

// String returns the punctuation the kind stands for, or a class name.
func (k Kind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}

	return common.UnknownStr
}

// IsLiteral reports whether the kind is a literal token.
func (k Kind) IsLiteral() bool {
	switch k {
	case INT, FLOAT, STRING, CHAR:
		return true
	default:
		return false
	}
}

// Token is a single lexical element of a pattern source.
type Token struct {
	Kind Kind
	Text string // raw source text
	Pos  int    // byte offset into the source
}

// binary operator precedence for guard expressions; 0 means not binary.
func (k Kind) precedence() int {
	switch k {
	case OrOr:
		return 1
	case AndAnd:
		return 2
	case Eq, Neq, Lt, Le, Gt, Ge:
		return 3
	case Plus, Minus:
		return 4
	case Star, Slash, Rem:
		return 5
	default:
		return 0
	}
}
