package matches

// Option holds either a value (Some) or nothing (None). It implements Variant,
// so "Some(x)" and "None" patterns match it.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the value and whether there is one.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// OrElse returns the value, or def when o is empty.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}

	return def
}

// Tag implements Variant.
func (o Option[T]) Tag() string {
	if o.ok {
		return "Some"
	}

	return "None"
}

// Fields implements Variant.
func (o Option[T]) Fields() []any {
	if o.ok {
		return []any{o.value}
	}

	return nil
}
