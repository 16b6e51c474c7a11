package pattern

// Pattern is a parsed pattern: one or more alternatives and an optional guard.
type Pattern struct {
	Alts  []Node
	Guard Expr

	// Names lists the bound names in the order the first alternative binds them.
	Names []string
}

// Node is a structural sub-pattern.
type Node interface {
	node()
}

// Wildcard matches any value and binds nothing: "_".
type Wildcard struct{}

// Binding matches any value (or the values Sub matches) and binds it to Name.
type Binding struct {
	Name string
	Sub  Node // nil unless written as "name @ sub"
}

// CtorStyle tells how a constructor pattern lists its fields.
type CtorStyle int

const (
	CtorBare   CtorStyle = iota // Name
	CtorTuple                   // Name(a, b)
	CtorStruct                  // Name{F: a}
)

// Constructor matches values whose tag equals the last element of Path.
type Constructor struct {
	Path   []string
	Sep    string // path separator as written: "." or "::"
	Style  CtorStyle
	Args   []Node
	Fields []FieldPattern
	Rest   bool // struct pattern ends with ".."
}

// Name returns the tag the constructor compares against.
func (c *Constructor) Name() string {
	return c.Path[len(c.Path)-1]
}

// FieldPattern is one "Field: pattern" entry of a struct pattern.
type FieldPattern struct {
	Name    string
	Pattern Node
}

// LitKind classifies literal values.
type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitChar
	LitBool
	LitNil
)

// Literal is a constant. Value holds int64, uint64, float64, string, rune,
// bool or nil according to Kind. Literal is usable both as a pattern and as a
// guard operand.
type Literal struct {
	Kind  LitKind
	Value any
	Text  string
}

// Range matches values between Lo and Hi. Hi is excluded unless Inclusive.
type Range struct {
	Lo, Hi    *Literal
	Inclusive bool
}

// Slice matches sequences element-wise. Rest is the index of ".." within the
// element list, or -1 when the sequence length must match exactly.
type Slice struct {
	Elems []Node
	Rest  int
}

// Or matches when any of its alternatives does.
type Or struct {
	Alts []Node
}

// Group is a parenthesised sub-pattern.
type Group struct {
	Inner Node
}

func (*Wildcard) node()    {}
func (*Binding) node()     {}
func (*Constructor) node() {}
func (*Literal) node()     {}
func (*Range) node()       {}
func (*Slice) node()       {}
func (*Or) node()          {}
func (*Group) node()       {}

// Expr is a guard expression.
type Expr interface {
	expr()
}

// Ident refers to a bound name.
type Ident struct {
	Name string
}

// Unary is "!x" or "-x".
type Unary struct {
	Op Kind
	X  Expr
}

// Binary is "x op y".
type Binary struct {
	Op   Kind
	X, Y Expr
}

// Selector is "x.Field".
type Selector struct {
	X     Expr
	Field string
}

// Index is "x[i]".
type Index struct {
	X, Index Expr
}

// Call invokes a builtin. For "matches(x, `pattern`)" Sub holds the parsed
// pattern and Args holds only x.
type Call struct {
	Func string
	Args []Expr
	Sub  *Pattern
}

// Paren is a parenthesised expression.
type Paren struct {
	X Expr
}

func (*Ident) expr()    {}
func (*Literal) expr()  {}
func (*Unary) expr()    {}
func (*Binary) expr()   {}
func (*Selector) expr() {}
func (*Index) expr()    {}
func (*Call) expr()     {}
func (*Paren) expr()    {}

// Builtin guard functions.
const (
	BuiltinLen     = "len"
	BuiltinMatches = "matches"
)
