package pattern

import (
	"slices"
	"strconv"
	"strings"
)

// Print renders a pattern in canonical form: alternatives joined by " | ",
// no padding inside brackets, ", " between elements, one space around
// binary guard operators and no space after unary ones.
func Print(p *Pattern) string {
	var pr printer

	for i, alt := range p.Alts {
		if i > 0 {
			pr.WriteString(" | ")
		}

		pr.node(alt)
	}

	if p.Guard != nil {
		pr.WriteString(" if ")
		pr.expr(p.Guard)
	}

	return pr.String()
}

// PrintNode renders a single sub-pattern in canonical form.
func PrintNode(n Node) string {
	var pr printer
	pr.node(n)

	return pr.String()
}

// PrintExpr renders a guard expression in canonical form.
func PrintExpr(e Expr) string {
	var pr printer
	pr.expr(e)

	return pr.String()
}

type printer struct {
	strings.Builder
}

func (pr *printer) node(n Node) {
	switch n := n.(type) {
	case *Wildcard:
		pr.WriteString("_")

	case *Binding:
		pr.WriteString(n.Name)

		if n.Sub != nil {
			pr.WriteString(" @ ")
			pr.node(n.Sub)
		}

	case *Constructor:
		pr.constructor(n)

	case *Literal:
		pr.WriteString(n.Text)

	case *Range:
		pr.WriteString(n.Lo.Text)

		if n.Inclusive {
			pr.WriteString(DotDotEq.String())
		} else {
			pr.WriteString(DotDot.String())
		}

		pr.WriteString(n.Hi.Text)

	case *Slice:
		parts := make([]string, 0, len(n.Elems)+1)
		for _, elem := range n.Elems {
			parts = append(parts, PrintNode(elem))
		}

		if n.Rest >= 0 {
			parts = slices.Insert(parts, n.Rest, DotDot.String())
		}

		pr.WriteString("[")
		pr.WriteString(strings.Join(parts, ", "))
		pr.WriteString("]")

	case *Or:
		for i, alt := range n.Alts {
			if i > 0 {
				pr.WriteString(" | ")
			}

			pr.node(alt)
		}

	case *Group:
		pr.WriteString("(")
		pr.node(n.Inner)
		pr.WriteString(")")
	}
}

func (pr *printer) constructor(c *Constructor) {
	sep := c.Sep
	if sep == "" {
		sep = "."
	}

	pr.WriteString(strings.Join(c.Path, sep))

	switch c.Style {
	case CtorTuple:
		pr.WriteString("(")

		for i, arg := range c.Args {
			if i > 0 {
				pr.WriteString(", ")
			}

			pr.node(arg)
		}

		pr.WriteString(")")

	case CtorStruct:
		pr.WriteString("{")

		for i, f := range c.Fields {
			if i > 0 {
				pr.WriteString(", ")
			}

			pr.WriteString(f.Name)
			pr.WriteString(": ")
			pr.node(f.Pattern)
		}

		if c.Rest {
			if len(c.Fields) > 0 {
				pr.WriteString(", ")
			}

			pr.WriteString("..")
		}

		pr.WriteString("}")

	case CtorBare:
	}
}

func (pr *printer) expr(e Expr) {
	switch e := e.(type) {
	case *Ident:
		pr.WriteString(e.Name)

	case *Literal:
		pr.WriteString(e.Text)

	case *Unary:
		pr.WriteString(e.Op.String())
		pr.expr(e.X)

	case *Binary:
		pr.expr(e.X)
		pr.WriteString(" ")
		pr.WriteString(e.Op.String())
		pr.WriteString(" ")
		pr.expr(e.Y)

	case *Selector:
		pr.expr(e.X)
		pr.WriteString(".")
		pr.WriteString(e.Field)

	case *Index:
		pr.expr(e.X)
		pr.WriteString("[")
		pr.expr(e.Index)
		pr.WriteString("]")

	case *Call:
		pr.WriteString(e.Func)
		pr.WriteString("(")

		for i, arg := range e.Args {
			if i > 0 {
				pr.WriteString(", ")
			}

			pr.expr(arg)
		}

		if e.Sub != nil {
			if len(e.Args) > 0 {
				pr.WriteString(", ")
			}

			pr.WriteString(strconv.Quote(Print(e.Sub)))
		}

		pr.WriteString(")")

	case *Paren:
		pr.WriteString("(")
		pr.expr(e.X)
		pr.WriteString(")")
	}
}
