package either

import "reflect"

// Type-changing combinators are package-level functions because Go
// methods cannot introduce type parameters.

// MapRight applies a function to the right value, passing a left value
// through unchanged. Panics with ErrNilArgument if the Either holds a
// right value and fn is nil, and with ErrNilValue if fn returns nil.
func MapRight[L, R, T any](e Either[L, R], fn func(R) T) Either[L, T] {
	if !e.isRight {
		return Left[L, T](e.left)
	}
	if fn == nil {
		panic(errf(ErrNilArgument, "MapRight: nil fn"))
	}
	return Right[L](fn(e.right))
}

// MapLeft applies a function to the left value, passing a right value
// through unchanged. Panics with ErrNilArgument if the Either holds a
// left value and fn is nil, and with ErrNilValue if fn returns nil.
func MapLeft[L, R, T any](e Either[L, R], fn func(L) T) Either[T, R] {
	if e.isRight {
		return Right[T](e.right)
	}
	if fn == nil {
		panic(errf(ErrNilArgument, "MapLeft: nil fn"))
	}
	return Left[T, R](fn(e.left))
}

// FlatMapRight applies a function returning an Either to the right
// value, returning its result directly; a left value passes through
// re-typed. Panics with ErrNilArgument if the Either holds a right
// value and fn is nil.
func FlatMapRight[L, R, T any](e Either[L, R], fn func(R) Either[L, T]) Either[L, T] {
	if !e.isRight {
		return Left[L, T](e.left)
	}
	if fn == nil {
		panic(errf(ErrNilArgument, "FlatMapRight: nil fn"))
	}
	return fn(e.right)
}

// FlatMapLeft applies a function returning an Either to the left value,
// returning its result directly; a right value passes through re-typed.
// Panics with ErrNilArgument if the Either holds a left value and fn is
// nil.
func FlatMapLeft[L, R, T any](e Either[L, R], fn func(L) Either[T, R]) Either[T, R] {
	if e.isRight {
		return Right[T](e.right)
	}
	if fn == nil {
		panic(errf(ErrNilArgument, "FlatMapLeft: nil fn"))
	}
	return fn(e.left)
}

// ApplyRight applies a function wrapped in an Either to the right
// value. A left fn takes priority over a left e, so when both hold left
// values the result carries fn's. Panics with ErrNilValue if the
// wrapped function is nil when it must be applied.
func ApplyRight[L, R, T any](e Either[L, R], fn Either[L, func(R) T]) Either[L, T] {
	if !fn.isRight {
		return Left[L, T](fn.left)
	}
	if !e.isRight {
		return Left[L, T](e.left)
	}
	f := fn.right
	if f == nil {
		panic(errf(ErrNilValue, "ApplyRight: nil wrapped fn"))
	}
	return Right[L](f(e.right))
}

// ApplyLeft applies a function wrapped in an Either to the left value.
// A right fn takes priority over a right e, so when both hold right
// values the result carries fn's. Panics with ErrNilValue if the
// wrapped function is nil when it must be applied.
func ApplyLeft[L, R, T any](e Either[L, R], fn Either[func(L) T, R]) Either[T, R] {
	if fn.isRight {
		return Right[T](fn.right)
	}
	if e.isRight {
		return Right[T](e.right)
	}
	f := fn.left
	if f == nil {
		panic(errf(ErrNilValue, "ApplyLeft: nil wrapped fn"))
	}
	return Left[T, R](f(e.left))
}

// Fold collapses the Either to a single value by applying whichever
// function matches the held direction. Panics with ErrNilArgument if
// the applicable function is nil.
func Fold[L, R, T any](e Either[L, R], leftFn func(L) T, rightFn func(R) T) T {
	if e.isRight {
		if rightFn == nil {
			panic(errf(ErrNilArgument, "Fold: nil rightFn"))
		}
		return rightFn(e.right)
	}
	if leftFn == nil {
		panic(errf(ErrNilArgument, "Fold: nil leftFn"))
	}
	return leftFn(e.left)
}

// Cast returns the held value asserted to T regardless of direction.
// Panics with ErrTypeMismatch if the held value is not a T.
func Cast[T any, L, R any](e Either[L, R]) T {
	t, ok := e.Value().(T)
	if !ok {
		panic(errf(ErrTypeMismatch, "cannot cast %T to %v", e.Value(), reflect.TypeFor[T]()))
	}
	return t
}

// FoldAs collapses the Either by applying one function to the held
// value of whichever direction, asserted to T. Panics with
// ErrNilArgument if fn is nil and with ErrTypeMismatch if the held
// value is not a T.
func FoldAs[T, U any, L, R any](e Either[L, R], fn func(T) U) U {
	if fn == nil {
		panic(errf(ErrNilArgument, "FoldAs: nil fn"))
	}
	return fn(Cast[T](e))
}

// MapAs applies one function to the held value of whichever direction,
// asserted to T, and rewraps the result in the same direction. Panics
// with ErrNilArgument if fn is nil, ErrTypeMismatch if the held value
// is not a T, and ErrNilValue if fn returns nil.
func MapAs[T, U any, L, R any](e Either[L, R], fn func(T) U) Either[U, U] {
	if fn == nil {
		panic(errf(ErrNilArgument, "MapAs: nil fn"))
	}
	u := fn(Cast[T](e))
	if e.isRight {
		return Right[U](u)
	}
	return Left[U, U](u)
}

// Swap exchanges the left and right sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Either[R, L]{left: e.right, isRight: false}
	}
	return Either[R, L]{right: e.left, isRight: true}
}
