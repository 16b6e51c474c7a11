package primitive

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
)

var (
	// ErrIncomparable is returned when two scalars have no defined ordering.
	ErrIncomparable = errors.New("incomparable values")
	// ErrDivisionByZero is returned by Arith for "/" and "%" with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)

// Scalar is a kind-tagged view of a boolean, numeric or string value that can
// be compared across Go types: int8(3) equals uint64(3) equals 3.0.
type Scalar struct {
	Kind KindEnum

	i int64
	u uint64
	f float64
	s string
	b bool
}

// Of returns the scalar view of v, or false when v is not a scalar.
func Of(v any) (Scalar, bool) {
	if v == nil {
		return Scalar{}, false
	}

	return OfValue(reflect.ValueOf(v))
}

// OfValue is Of for an already reflected value.
func OfValue(rv reflect.Value) (Scalar, bool) {
	if !rv.IsValid() {
		return Scalar{}, false
	}

	kind := FromReflectType(rv.Type())

	switch {
	case kind.IsSigned():
		return Scalar{Kind: kind, i: rv.Int()}, true
	case kind.IsUnsigned():
		return Scalar{Kind: kind, u: rv.Uint()}, true
	case kind.IsFloat():
		return Scalar{Kind: kind, f: rv.Float()}, true
	case kind == KindBool:
		return Scalar{Kind: kind, b: rv.Bool()}, true
	case kind == KindString:
		return Scalar{Kind: kind, s: rv.String()}, true
	default:
		return Scalar{}, false
	}
}

// Interface returns the scalar as int64, uint64, float64, bool or string.
func (s Scalar) Interface() any {
	switch {
	case s.Kind.IsSigned():
		return s.i
	case s.Kind.IsUnsigned():
		return s.u
	case s.Kind.IsFloat():
		return s.f
	case s.Kind == KindBool:
		return s.b
	case s.Kind == KindString:
		return s.s
	default:
		return nil
	}
}

// Bool returns the boolean value and whether s is a boolean at all.
func (s Scalar) Bool() (bool, bool) {
	return s.b, s.Kind == KindBool
}

func (s Scalar) float() float64 {
	switch {
	case s.Kind.IsSigned():
		return float64(s.i)
	case s.Kind.IsUnsigned():
		return float64(s.u)
	default:
		return s.f
	}
}

// Compare orders a and b. Numbers compare by value regardless of their Go
// type, strings lexically; booleans only support equality.
func Compare(a, b Scalar) (int, error) {
	switch {
	case a.Kind.IsNumber() && b.Kind.IsNumber():
		if c, ok := compareNumbers(a, b); ok {
			return c, nil
		}

		return 0, fmt.Errorf("%w: NaN", ErrIncomparable)

	case a.Kind == KindString && b.Kind == KindString:
		return strings.Compare(a.s, b.s), nil

	case a.Kind == KindBool && b.Kind == KindBool:
		if a.b == b.b {
			return 0, nil
		}

		return 0, fmt.Errorf("%w: booleans are unordered", ErrIncomparable)

	default:
		return 0, fmt.Errorf("%w: %s and %s", ErrIncomparable, a.Kind, b.Kind)
	}
}

// Equal reports whether a and b hold the same value.
func Equal(a, b Scalar) bool {
	if a.Kind == KindBool && b.Kind == KindBool {
		return a.b == b.b
	}

	c, err := Compare(a, b)

	return err == nil && c == 0
}

func compareNumbers(a, b Scalar) (int, bool) {
	switch {
	case a.Kind.IsFloat() || b.Kind.IsFloat():
		x, y := a.float(), b.float()

		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		case x == y:
			return 0, true
		default:
			return 0, false
		}

	case a.Kind.IsSigned() && b.Kind.IsSigned():
		return cmp3(a.i, b.i), true

	case a.Kind.IsUnsigned() && b.Kind.IsUnsigned():
		return cmp3(a.u, b.u), true

	case a.Kind.IsSigned():
		if a.i < 0 {
			return -1, true
		}

		return cmp3(uint64(a.i), b.u), true

	default:
		if b.i < 0 {
			return 1, true
		}

		return cmp3(a.u, uint64(b.i)), true
	}
}

func cmp3[T int64 | uint64](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Arith applies a binary arithmetic operator ("+", "-", "*", "/", "%").
// Mixed integer and float operands compute in float64; two unsigned operands
// compute in uint64; any other integer pair computes in int64. "+" also
// concatenates strings.
func Arith(op string, a, b Scalar) (Scalar, error) {
	if a.Kind == KindString && b.Kind == KindString {
		if op == "+" {
			return Scalar{Kind: KindString, s: a.s + b.s}, nil
		}

		return Scalar{}, fmt.Errorf("operator %s is not defined on strings", op)
	}

	if !a.Kind.IsNumber() || !b.Kind.IsNumber() {
		return Scalar{}, fmt.Errorf("operator %s is not defined on %s and %s", op, a.Kind, b.Kind)
	}

	switch {
	case a.Kind.IsFloat() || b.Kind.IsFloat():
		return arithFloat(op, a.float(), b.float())
	case a.Kind.IsUnsigned() && b.Kind.IsUnsigned():
		return arithUint(op, a.u, b.u)
	}

	x, err := a.toInt64()
	if err != nil {
		return Scalar{}, err
	}

	y, err := b.toInt64()
	if err != nil {
		return Scalar{}, err
	}

	return arithInt(op, x, y)
}

// Negate returns -s for numbers.
func Negate(s Scalar) (Scalar, error) {
	switch {
	case s.Kind.IsFloat():
		return Scalar{Kind: KindFloat64, f: -s.f}, nil
	case s.Kind.IsInteger():
		x, err := s.toInt64()
		if err != nil {
			return Scalar{}, err
		}

		return Scalar{Kind: KindInt64, i: -x}, nil
	default:
		return Scalar{}, fmt.Errorf("cannot negate %s", s.Kind)
	}
}

func (s Scalar) toInt64() (int64, error) {
	if s.Kind.IsUnsigned() {
		if s.u > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", s.u)
		}

		return int64(s.u), nil
	}

	return s.i, nil
}

func arithInt(op string, x, y int64) (Scalar, error) {
	var r int64

	switch op {
	case "+":
		r = x + y
	case "-":
		r = x - y
	case "*":
		r = x * y
	case "/", "%":
		if y == 0 {
			return Scalar{}, ErrDivisionByZero
		}

		if op == "/" {
			r = x / y
		} else {
			r = x % y
		}
	default:
		return Scalar{}, fmt.Errorf("unknown operator %s", op)
	}

	return Scalar{Kind: KindInt64, i: r}, nil
}

func arithUint(op string, x, y uint64) (Scalar, error) {
	var r uint64

	switch op {
	case "+":
		r = x + y
	case "-":
		r = x - y
	case "*":
		r = x * y
	case "/", "%":
		if y == 0 {
			return Scalar{}, ErrDivisionByZero
		}

		if op == "/" {
			r = x / y
		} else {
			r = x % y
		}
	default:
		return Scalar{}, fmt.Errorf("unknown operator %s", op)
	}

	return Scalar{Kind: KindUint64, u: r}, nil
}

func arithFloat(op string, x, y float64) (Scalar, error) {
	var r float64

	switch op {
	case "+":
		r = x + y
	case "-":
		r = x - y
	case "*":
		r = x * y
	case "/":
		r = x / y
	case "%":
		if y == 0 {
			return Scalar{}, ErrDivisionByZero
		}

		r = math.Mod(x, y)
	default:
		return Scalar{}, fmt.Errorf("unknown operator %s", op)
	}

	return Scalar{Kind: KindFloat64, f: r}, nil
}
