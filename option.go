package either

// Option represents an optional value that may or may not be present.
// It provides a type-safe alternative to nil pointers.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{present: false}
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Unwrap returns the contained value.
// Panics with ErrNoSuchValue if the Option is empty.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(errf(ErrNoSuchValue, "called Unwrap on None"))
	}
	return o.value
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// UnwrapOrElse returns the contained value or computes a default.
// Panics with ErrNilArgument if the default is needed and fn is nil.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	if fn == nil {
		panic(errf(ErrNilArgument, "UnwrapOrElse: nil fn"))
	}
	return fn()
}

// ToSlice converts the Option to a slice of zero or one element.
func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}
