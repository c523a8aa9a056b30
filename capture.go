package either

import "fmt"

// Capture converts fallible computations into Either values at two
// widths: Of and Lift capture returned errors only, letting panics
// propagate; OfChecked and LiftChecked additionally recover panics,
// for cases where even fatal conditions should be represented as data.

// Of invokes fn and wraps its result: a non-nil error becomes a left
// value, a successful result becomes a right value. Panics from fn are
// not captured. Panics with ErrNilArgument if fn is nil and with
// ErrNilValue if fn succeeds with a nil result.
func Of[R any](fn func() (R, error)) Either[error, R] {
	if fn == nil {
		panic(errf(ErrNilArgument, "Of: nil fn"))
	}
	v, err := fn()
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](v)
}

// OfChecked behaves like Of but also captures panics raised by fn,
// converting the panic value to a left-held error.
func OfChecked[R any](fn func() (R, error)) (e Either[error, R]) {
	if fn == nil {
		panic(errf(ErrNilArgument, "OfChecked: nil fn"))
	}
	defer func() {
		if p := recover(); p != nil {
			e = Left[error, R](panicError(p))
		}
	}()
	v, err := fn()
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](v)
}

// Lift wraps an ordinary fallible function into one returning an
// Either: errors become left values, successes right values. Panics
// from fn propagate through the lifted function. Panics with
// ErrNilArgument if fn is nil.
func Lift[A, R any](fn func(A) (R, error)) func(A) Either[error, R] {
	if fn == nil {
		panic(errf(ErrNilArgument, "Lift: nil fn"))
	}
	return func(a A) Either[error, R] {
		return Of(func() (R, error) { return fn(a) })
	}
}

// LiftChecked behaves like Lift but the lifted function also captures
// panics as left-held errors.
func LiftChecked[A, R any](fn func(A) (R, error)) func(A) Either[error, R] {
	if fn == nil {
		panic(errf(ErrNilArgument, "LiftChecked: nil fn"))
	}
	return func(a A) Either[error, R] {
		return OfChecked(func() (R, error) { return fn(a) })
	}
}

// FromOption converts an Option to an Either: a present value becomes a
// right value, an empty Option a left value holding the fallback.
// Panics with ErrNilValue if the fallback is needed and nil.
func FromOption[L, R any](o Option[R], left L) Either[L, R] {
	if o.IsSome() {
		return Right[L](o.Unwrap())
	}
	return Left[L, R](left)
}

// FromOptionElse converts an Option to an Either, computing the left
// fallback lazily. Panics with ErrNilArgument if the fallback is needed
// and fn is nil, and with ErrNilValue if fn returns nil.
func FromOptionElse[L, R any](o Option[R], fn func() L) Either[L, R] {
	if o.IsSome() {
		return Right[L](o.Unwrap())
	}
	if fn == nil {
		panic(errf(ErrNilArgument, "FromOptionElse: nil fn"))
	}
	return Left[L, R](fn())
}

func panicError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", p)
}
