package immu

// Option represents an optional value of T: Some(v) holds a value, None holds
// nothing. The zero value is None. Option values are immutable; chaining
// helpers return new options.
type Option[T any] struct {
	v     T
	valid bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{v: v, valid: true} }

// None returns the empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// OptionOf adapts a comma-ok pair into an Option: Some(v) when ok, None
// otherwise. Handy at map-lookup and type-assertion call sites.
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.valid }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.valid }

// Unwrap returns the value and whether it was present.
func (o Option[T]) Unwrap() (T, bool) { return o.v, o.valid }

// Or returns the value if present, otherwise fallback. This is the
// nil-coalescing form: o.Or(def).
func (o Option[T]) Or(fallback T) T {
	if o.valid {
		return o.v
	}
	return fallback
}

// OrElse returns the value if present, otherwise the result of fn. Use it
// when computing the fallback is not free.
func (o Option[T]) OrElse(fn func() T) T {
	if o.valid {
		return o.v
	}
	return fn()
}

// MapOption applies fn to the value when present; None maps to None.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.valid {
		return None[U]()
	}
	return Some(fn(o.v))
}

// FlatMap chains an option-producing fn: None short-circuits, Some feeds its
// value to fn and the result is returned unwrapped (no nested Option).
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.valid {
		return None[U]()
	}
	return fn(o.v)
}

// Compact drops the Nones from opts and returns the present values in order.
func Compact[T any](opts []Option[T]) []T {
	out := make([]T, 0, len(opts))
	for _, o := range opts {
		if o.valid {
			out = append(out, o.v)
		}
	}
	return out
}
