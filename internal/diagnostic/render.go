package diagnostic

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// DefaultMaxDepth is how deep Render descends before eliding nested values.
const DefaultMaxDepth = 8

// RenderConfig controls value rendering.
type RenderConfig struct {
	// MaxDepth bounds nesting; zero means DefaultMaxDepth.
	MaxDepth int
	// Verbose adds a full dump of the value as the diagnostic detail.
	Verbose bool
}

// DebugStringer is implemented by values that provide their own diagnostic
// rendering.
type DebugStringer interface {
	DebugString() string
}

type variant interface {
	Tag() string
	Fields() []any
}

type fieldNamer interface {
	FieldNames() []string
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Render returns the compact debug form of v used in failure messages.
func Render(v any, cfg RenderConfig) string {
	depth := cfg.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}

	var sb strings.Builder

	r := renderer{sb: &sb, maxDepth: depth}
	r.value(v, 0)

	return sb.String()
}

// Dump returns a multi-line dump of v with sorted map keys.
func Dump(v any) string {
	return strings.TrimRight(dumper.Sdump(v), "\n")
}

type renderer struct {
	sb       *strings.Builder
	maxDepth int
}

func (r renderer) write(s string) {
	r.sb.WriteString(s)
}

func (r renderer) value(v any, depth int) {
	if depth > r.maxDepth {
		r.write("..")
		return
	}

	// pointer hops do not nest, so they are bounded separately
	for hops := 0; ; hops++ {
		if isNil(v) {
			r.write("nil")
			return
		}

		if r.method(v, depth) {
			return
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer && rv.Kind() != reflect.Interface {
			r.reflectValue(v, rv, depth)
			return
		}

		if hops >= r.maxDepth {
			r.write("..")
			return
		}

		if !rv.Elem().CanInterface() {
			r.write(rv.Type().String())
			return
		}

		v = rv.Elem().Interface()
	}
}

// method renders v through an interface it implements, if any.
func (r renderer) method(v any, depth int) bool {
	switch t := v.(type) {
	case DebugStringer:
		r.write(t.DebugString())
	case fmt.GoStringer:
		r.write(t.GoString())
	case variant:
		r.variant(t, depth)
	case error:
		r.write(t.Error())
	case string:
		r.write(strconv.Quote(t))
	default:
		return false
	}

	return true
}

func (r renderer) reflectValue(v any, rv reflect.Value, depth int) {
	switch rv.Kind() {
	case reflect.Struct:
		r.structValue(rv, depth)

	case reflect.Slice, reflect.Array:
		r.write("[")

		for i := range rv.Len() {
			if i > 0 {
				r.write(", ")
			}

			r.value(rv.Index(i).Interface(), depth+1)
		}

		r.write("]")

	case reflect.Map:
		r.write(dumper.Sprint(v))

	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		r.write(rv.Type().String())

	case reflect.String:
		if s, ok := v.(fmt.Stringer); ok {
			r.write(s.String())
			return
		}

		r.write(strconv.Quote(rv.String()))

	default:
		// numbers, bools and named enums with String()
		r.write(fmt.Sprint(v))
	}
}

// isNil reports whether v is nil or a typed nil, whose methods must not be
// called.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

func (r renderer) variant(vr variant, depth int) {
	fields := vr.Fields()

	var names []string
	if fn, ok := vr.(fieldNamer); ok {
		names = fn.FieldNames()
	}

	r.write(vr.Tag())

	switch {
	case len(fields) == 0 && names == nil:
	case names != nil && len(names) == len(fields):
		r.write("{")

		for i, f := range fields {
			if i > 0 {
				r.write(", ")
			}

			r.write(names[i] + ": ")
			r.value(f, depth+1)
		}

		r.write("}")

	default:
		r.write("(")

		for i, f := range fields {
			if i > 0 {
				r.write(", ")
			}

			r.value(f, depth+1)
		}

		r.write(")")
	}
}

func (r renderer) structValue(rv reflect.Value, depth int) {
	rt := rv.Type()

	name := rt.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}

	r.write(name + "{")

	first := true

	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}

		if !first {
			r.write(", ")
		}

		first = false

		r.write(f.Name + ": ")
		r.value(rv.Field(i).Interface(), depth+1)
	}

	r.write("}")
}
