package match

import (
	"fmt"
	"reflect"

	"matches/internal/pattern"
	"matches/primitive"
)

// evalGuard evaluates a guard with the bindings of the selected alternative.
func evalGuard(g pattern.Expr, b Bindings) (bool, error) {
	ev := evaluator{b: b}

	v, err := ev.eval(g)
	if err != nil {
		return false, fmt.Errorf("%w: if %s: %w", ErrGuard, pattern.PrintExpr(g), err)
	}

	pass, ok := asBool(v)
	if !ok {
		return false, fmt.Errorf("%w: if %s: result is %T, not bool", ErrGuard, pattern.PrintExpr(g), v)
	}

	return pass, nil
}

type evaluator struct {
	b Bindings
}

func (ev evaluator) eval(e pattern.Expr) (any, error) {
	switch e := e.(type) {
	case *pattern.Ident:
		return ev.b.Get(e.Name), nil

	case *pattern.Literal:
		return e.Value, nil

	case *pattern.Paren:
		return ev.eval(e.X)

	case *pattern.Unary:
		return ev.unary(e)

	case *pattern.Binary:
		return ev.binary(e)

	case *pattern.Selector:
		x, err := ev.eval(e.X)
		if err != nil {
			return nil, err
		}

		return selectField(x, e.Field)

	case *pattern.Index:
		x, err := ev.eval(e.X)
		if err != nil {
			return nil, err
		}

		idx, err := ev.eval(e.Index)
		if err != nil {
			return nil, err
		}

		return index(x, idx)

	case *pattern.Call:
		return ev.call(e)

	default:
		return nil, fmt.Errorf("unsupported expression %T", e)
	}
}

func (ev evaluator) unary(e *pattern.Unary) (any, error) {
	x, err := ev.eval(e.X)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case pattern.Not:
		b, ok := asBool(x)
		if !ok {
			return nil, fmt.Errorf("operator ! needs bool, got %T", x)
		}

		return !b, nil

	case pattern.Minus:
		s, ok := primitive.Of(x)
		if !ok {
			return nil, fmt.Errorf("operator - needs a number, got %T", x)
		}

		r, err := primitive.Negate(s)
		if err != nil {
			return nil, err
		}

		return r.Interface(), nil

	default:
		return nil, fmt.Errorf("unknown unary operator %s", e.Op)
	}
}

func (ev evaluator) binary(e *pattern.Binary) (any, error) {
	x, err := ev.eval(e.X)
	if err != nil {
		return nil, err
	}

	// && and || short-circuit
	if e.Op == pattern.AndAnd || e.Op == pattern.OrOr {
		l, ok := asBool(x)
		if !ok {
			return nil, fmt.Errorf("operator %s needs bool operands, got %T", e.Op, x)
		}

		if (e.Op == pattern.AndAnd && !l) || (e.Op == pattern.OrOr && l) {
			return l, nil
		}

		y, err := ev.eval(e.Y)
		if err != nil {
			return nil, err
		}

		r, ok := asBool(y)
		if !ok {
			return nil, fmt.Errorf("operator %s needs bool operands, got %T", e.Op, y)
		}

		return r, nil
	}

	y, err := ev.eval(e.Y)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case pattern.Eq:
		return equal(x, y), nil

	case pattern.Neq:
		return !equal(x, y), nil

	case pattern.Lt, pattern.Le, pattern.Gt, pattern.Ge:
		a, aok := primitive.Of(x)
		b, bok := primitive.Of(y)

		if !aok || !bok {
			return nil, fmt.Errorf("operator %s needs ordered operands, got %T and %T", e.Op, x, y)
		}

		c, err := primitive.Compare(a, b)
		if err != nil {
			return nil, err
		}

		switch e.Op {
		case pattern.Lt:
			return c < 0, nil
		case pattern.Le:
			return c <= 0, nil
		case pattern.Gt:
			return c > 0, nil
		default:
			return c >= 0, nil
		}

	case pattern.Plus, pattern.Minus, pattern.Star, pattern.Slash, pattern.Rem:
		a, aok := primitive.Of(x)
		b, bok := primitive.Of(y)

		if !aok || !bok {
			return nil, fmt.Errorf("operator %s needs numbers or strings, got %T and %T", e.Op, x, y)
		}

		r, err := primitive.Arith(e.Op.String(), a, b)
		if err != nil {
			return nil, err
		}

		return r.Interface(), nil

	default:
		return nil, fmt.Errorf("unknown binary operator %s", e.Op)
	}
}

func (ev evaluator) call(c *pattern.Call) (any, error) {
	arg, err := ev.eval(c.Args[0])
	if err != nil {
		return nil, err
	}

	switch c.Func {
	case pattern.BuiltinLen:
		rv := reflect.Indirect(reflect.ValueOf(arg))

		switch rv.Kind() {
		case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
			return rv.Len(), nil
		default:
			return nil, fmt.Errorf("len of %T", arg)
		}

	case pattern.BuiltinMatches:
		res, err := Match(arg, c.Sub)
		if err != nil {
			return nil, err
		}

		return res.Matched, nil

	default:
		return nil, fmt.Errorf("unknown function %s", c.Func)
	}
}

func asBool(v any) (bool, bool) {
	s, ok := primitive.Of(v)
	if !ok {
		return false, false
	}

	return s.Bool()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func equal(x, y any) bool {
	if x == nil || y == nil {
		return isNil(x) && isNil(y)
	}

	a, aok := primitive.Of(x)
	b, bok := primitive.Of(y)

	if aok && bok {
		return primitive.Equal(a, b)
	}

	return reflect.DeepEqual(x, y)
}

// selectField resolves "x.Field" on variants, structs and string-keyed maps.
func selectField(x any, name string) (any, error) {
	if isNil(x) {
		return nil, fmt.Errorf("field %s of nil", name)
	}

	rv := reflect.Indirect(reflect.ValueOf(x))
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		fv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !fv.IsValid() {
			return nil, &FieldError{Field: name, Tag: rv.Type().String()}
		}

		return fv.Interface(), nil
	}

	s := inspect(x)
	if s.kind != shapeVariant {
		return nil, fmt.Errorf("%w: %s has no fields", ErrUnknownField, s.describe())
	}

	fv, ok := s.field(name)
	if !ok {
		return nil, unknownField(name, s)
	}

	return fv, nil
}

// index resolves "x[i]" on slices, arrays, strings and maps. Missing map
// keys yield the element type's zero value.
func index(x, idx any) (any, error) {
	if isNil(x) {
		return nil, fmt.Errorf("index of nil")
	}

	rv := reflect.Indirect(reflect.ValueOf(x))

	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.String:
		s, ok := primitive.Of(idx)
		if !ok || !s.Kind.IsInteger() {
			return nil, fmt.Errorf("index must be an integer, got %T", idx)
		}

		c, _ := primitive.Compare(s, mustScalar(0))
		hi, _ := primitive.Compare(s, mustScalar(rv.Len()))

		if c < 0 || hi >= 0 {
			return nil, fmt.Errorf("index %v out of range [0:%d]", idx, rv.Len())
		}

		i := int(reflect.ValueOf(s.Interface()).Convert(reflect.TypeOf(0)).Int())

		return rv.Index(i).Interface(), nil

	case reflect.Map:
		kt := rv.Type().Key()

		kv := reflect.ValueOf(idx)
		if !kv.IsValid() || !kv.Type().ConvertibleTo(kt) {
			return nil, fmt.Errorf("cannot use %T as %s map key", idx, kt)
		}

		fv := rv.MapIndex(kv.Convert(kt))
		if !fv.IsValid() {
			return reflect.Zero(rv.Type().Elem()).Interface(), nil
		}

		return fv.Interface(), nil

	default:
		return nil, fmt.Errorf("cannot index %T", x)
	}
}

func mustScalar(v any) primitive.Scalar {
	s, _ := primitive.Of(v)
	return s
}
