package pattern

import (
	"fmt"
	"slices"
	"strings"
)

// resolveNames fills pat.Names and rejects patterns whose alternatives bind
// different names, that bind a name twice, or whose guard uses unbound names.
func resolveNames(pat *Pattern) error {
	var first []string

	for i, alt := range pat.Alts {
		var names []string
		if err := collectNames(alt, &names); err != nil {
			return err
		}

		if i == 0 {
			first = names
			continue
		}

		if !sameNames(first, names) {
			return &BindingError{Msg: fmt.Sprintf(
				"alternative %d binds %s but alternative 1 binds %s",
				i+1, nameSet(names), nameSet(first),
			)}
		}
	}

	pat.Names = first

	if pat.Guard != nil {
		return checkGuardNames(pat.Guard, first)
	}

	return nil
}

func collectNames(n Node, names *[]string) error {
	switch n := n.(type) {
	case *Binding:
		if slices.Contains(*names, n.Name) {
			return &BindingError{Msg: fmt.Sprintf("name %q is bound more than once in the same alternative", n.Name)}
		}

		*names = append(*names, n.Name)

		if n.Sub != nil {
			return collectNames(n.Sub, names)
		}

	case *Constructor:
		for _, arg := range n.Args {
			if err := collectNames(arg, names); err != nil {
				return err
			}
		}

		for _, f := range n.Fields {
			if err := collectNames(f.Pattern, names); err != nil {
				return err
			}
		}

	case *Slice:
		for _, elem := range n.Elems {
			if err := collectNames(elem, names); err != nil {
				return err
			}
		}

	case *Group:
		return collectNames(n.Inner, names)

	case *Or:
		var first []string

		for i, alt := range n.Alts {
			var branch []string
			if err := collectNames(alt, &branch); err != nil {
				return err
			}

			if i == 0 {
				first = branch
			} else if !sameNames(first, branch) {
				return &BindingError{Msg: fmt.Sprintf(
					"or-pattern %s binds %s but its first alternative binds %s",
					PrintNode(n), nameSet(branch), nameSet(first),
				)}
			}
		}

		for _, name := range first {
			if slices.Contains(*names, name) {
				return &BindingError{Msg: fmt.Sprintf("name %q is bound more than once in the same alternative", name)}
			}

			*names = append(*names, name)
		}

	case *Wildcard, *Literal, *Range:
	}

	return nil
}

func checkGuardNames(e Expr, bound []string) error {
	switch e := e.(type) {
	case *Ident:
		if !slices.Contains(bound, e.Name) {
			return &BindingError{Msg: fmt.Sprintf("guard references unbound name %q", e.Name)}
		}

	case *Unary:
		return checkGuardNames(e.X, bound)

	case *Binary:
		if err := checkGuardNames(e.X, bound); err != nil {
			return err
		}

		return checkGuardNames(e.Y, bound)

	case *Selector:
		return checkGuardNames(e.X, bound)

	case *Index:
		if err := checkGuardNames(e.X, bound); err != nil {
			return err
		}

		return checkGuardNames(e.Index, bound)

	case *Call:
		for _, arg := range e.Args {
			if err := checkGuardNames(arg, bound); err != nil {
				return err
			}
		}

	case *Paren:
		return checkGuardNames(e.X, bound)

	case *Literal:
	}

	return nil
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for _, name := range a {
		if !slices.Contains(b, name) {
			return false
		}
	}

	return true
}

func nameSet(names []string) string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)

	return "{" + strings.Join(sorted, ", ") + "}"
}
