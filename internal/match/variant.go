package match

import (
	"fmt"
	"reflect"
	"strings"

	"matches/primitive"
)

// Variant is implemented by values that expose a discriminant tag and
// positional fields, the way a sum-type case does.
type Variant interface {
	Tag() string
	Fields() []any
}

// FieldNamer is optionally implemented by a Variant whose fields also have
// names. FieldNames must be parallel to Fields, or nil for positional-only.
type FieldNamer interface {
	FieldNames() []string
}

type shapeKind int

const (
	shapeNil     shapeKind = iota // nil pointer, interface, map, func or chan
	shapeVariant                  // Variant, struct or Stringer enum
	shapeSeq                      // slice or array
	shapeScalar                   // bool, number or string
	shapeOpaque                   // func, chan, unsafe pointer
	shapeOther                    // maps and anything else without a tag
)

func (k shapeKind) String() string {
	switch k {
	case shapeNil:
		return "nil"
	case shapeVariant:
		return "variant"
	case shapeSeq:
		return "sequence"
	case shapeScalar:
		return "scalar"
	case shapeOpaque:
		return "opaque"
	default:
		return "value"
	}
}

// shape is the runtime layout a pattern is tested against.
type shape struct {
	kind   shapeKind
	typ    reflect.Type
	tag    string
	fields []any
	names  []string // parallel to fields, nil when positional only
	seq    reflect.Value
	nilSeq bool // nil slice: matches both nil and []

	scalar    primitive.Scalar
	hasScalar bool
}

// maxIndirections bounds how many pointers and interfaces inspect follows,
// so a value that points to itself still has a shape.
const maxIndirections = 64

// inspect computes the shape of v, looking through pointers and interfaces.
func inspect(v any) shape {
	for hops := 0; ; hops++ {
		if v == nil {
			return shape{kind: shapeNil}
		}

		rv := reflect.ValueOf(v)

		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
			if rv.IsNil() {
				return shape{kind: shapeNil, typ: rv.Type()}
			}
		}

		if vr, ok := v.(Variant); ok {
			return variantShape(vr, rv.Type())
		}

		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			if hops >= maxIndirections {
				return shape{kind: shapeOther, typ: rv.Type()}
			}

			elem := rv.Elem()
			if !elem.CanInterface() {
				return shape{kind: shapeOpaque, typ: rv.Type()}
			}

			v = elem.Interface()

			continue

		case reflect.Func, reflect.Chan, reflect.UnsafePointer:
			return shape{kind: shapeOpaque, typ: rv.Type()}

		case reflect.Slice:
			return shape{kind: shapeSeq, typ: rv.Type(), seq: rv, nilSeq: rv.IsNil()}

		case reflect.Array:
			return shape{kind: shapeSeq, typ: rv.Type(), seq: rv}

		case reflect.Struct:
			return structShape(rv)

		case reflect.Map:
			return shape{kind: shapeOther, typ: rv.Type()}
		}

		return scalarShape(v, rv)
	}
}

func variantShape(vr Variant, typ reflect.Type) shape {
	s := shape{kind: shapeVariant, typ: typ, tag: vr.Tag(), fields: vr.Fields()}

	if fn, ok := vr.(FieldNamer); ok {
		if names := fn.FieldNames(); len(names) == len(s.fields) {
			s.names = names
		}
	}

	return s
}

func structShape(rv reflect.Value) shape {
	rt := rv.Type()
	s := shape{kind: shapeVariant, typ: rt, tag: TypeTag(rt), names: []string{}}

	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}

		s.names = append(s.names, f.Name)
		s.fields = append(s.fields, rv.Field(i).Interface())
	}

	return s
}

func scalarShape(v any, rv reflect.Value) shape {
	s := shape{kind: shapeScalar, typ: rv.Type()}
	s.scalar, s.hasScalar = primitive.OfValue(rv)

	if !s.hasScalar {
		s.kind = shapeOther
	}

	// named enums expose their String() as the tag
	if str, ok := v.(fmt.Stringer); ok && rv.Type().Name() != "" && rv.Type().PkgPath() != "" {
		s.kind = shapeVariant
		s.tag = str.String()
	}

	return s
}

// TypeTag returns the tag a struct type is matched by: its name without
// package qualifier or type arguments.
func TypeTag(rt reflect.Type) string {
	name := rt.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}

	return name
}

func (s shape) describe() string {
	if s.typ != nil {
		return s.typ.String()
	}

	return s.kind.String()
}

// field returns the field with the given name.
func (s shape) field(name string) (any, bool) {
	for i, n := range s.names {
		if n == name {
			return s.fields[i], true
		}
	}

	return nil, false
}
