package matches

import (
	"reflect"

	"matches/internal/diagnostic"
	"matches/internal/match"
	"matches/primitive"
)

// Bindings maps the names bound by a match to their values, in the order the
// pattern declares them.
type Bindings = match.Bindings

// Variant is implemented by values that expose a tag and positional fields.
type Variant = match.Variant

// FieldNamer is optionally implemented by a Variant with named fields.
type FieldNamer = match.FieldNamer

// Named supplies a value for a "{name}" placeholder in a custom message.
type Named = diagnostic.Named

// Lookup returns the value bound to name as a T. Numbers convert between Go
// numeric types when the value is preserved, so a bound int8 can be read as
// an int, and an int as an int8 only if it fits.
func Lookup[T any](b Bindings, name string) (T, bool) {
	var zero T

	v, ok := b.Lookup(name)
	if !ok {
		return zero, false
	}

	if t, ok := v.(T); ok {
		return t, true
	}

	if v == nil {
		// nil reads as the zero value of interface types only
		return zero, reflect.TypeOf(&zero).Elem().Kind() == reflect.Interface
	}

	out, ok := primitive.Convert(reflect.ValueOf(v), reflect.TypeOf(&zero).Elem(), primitive.CategoryAll)
	if !ok {
		return zero, false
	}

	t, ok := out.Interface().(T)

	return t, ok
}

// Get is Lookup without the ok flag.
func Get[T any](b Bindings, name string) T {
	v, _ := Lookup[T](b, name)
	return v
}
