// Package either provides a generic binary sum type holding exactly one
// value of one of two types, together with combinators for mapping,
// binding, folding, applicative application, consumption, ordering and
// partitioning. By convention Left carries an error or alternative
// signal and Right carries a success value (mnemonic: right is correct).
//
// Either values never hold nil payloads: constructing a variant from a
// nil value panics. Values are immutable; every transformation produces
// a new Either or a plain value, so copies may be shared freely.
package either

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Either holds a concrete value of one of two types. If it holds a left
// value, IsLeft reports true and IsRight false, and vice-versa.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either holding a left value.
// Panics with ErrNilValue if the value is nil.
func Left[L, R any](value L) Either[L, R] {
	if isAbsent(value) {
		panic(errf(ErrNilValue, "Left: nil payload"))
	}
	return Either[L, R]{left: value, isRight: false}
}

// Right creates an Either holding a right value.
// Panics with ErrNilValue if the value is nil.
func Right[L, R any](value R) Either[L, R] {
	if isAbsent(value) {
		panic(errf(ErrNilValue, "Right: nil payload"))
	}
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft returns true if the Either holds a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if the Either holds a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the held left value.
// Panics with ErrNoSuchValue if the Either holds a right value.
func (e Either[L, R]) LeftValue() L {
	if e.isRight {
		panic(errf(ErrNoSuchValue, "called LeftValue on Right"))
	}
	return e.left
}

// RightValue returns the held right value.
// Panics with ErrNoSuchValue if the Either holds a left value.
func (e Either[L, R]) RightValue() R {
	if !e.isRight {
		panic(errf(ErrNoSuchValue, "called RightValue on Left"))
	}
	return e.right
}

// LeftOr returns the held left value or a default.
func (e Either[L, R]) LeftOr(fallback L) L {
	if !e.isRight {
		return e.left
	}
	return fallback
}

// RightOr returns the held right value or a default.
func (e Either[L, R]) RightOr(fallback R) R {
	if e.isRight {
		return e.right
	}
	return fallback
}

// LeftOrElse returns the held left value or computes a default.
// Panics with ErrNilArgument if the default is needed and fn is nil.
func (e Either[L, R]) LeftOrElse(fn func() L) L {
	if !e.isRight {
		return e.left
	}
	if fn == nil {
		panic(errf(ErrNilArgument, "LeftOrElse: nil fn"))
	}
	return fn()
}

// RightOrElse returns the held right value or computes a default.
// Panics with ErrNilArgument if the default is needed and fn is nil.
func (e Either[L, R]) RightOrElse(fn func() R) R {
	if e.isRight {
		return e.right
	}
	if fn == nil {
		panic(errf(ErrNilArgument, "RightOrElse: nil fn"))
	}
	return fn()
}

// LeftOrError returns the held left value, or the error produced by fn
// if the Either holds a right value. Panics with ErrNilArgument if the
// error is needed and fn is nil or produces a nil error.
func (e Either[L, R]) LeftOrError(fn func() error) (L, error) {
	if !e.isRight {
		return e.left, nil
	}
	var zero L
	return zero, supplyError(fn, "LeftOrError")
}

// RightOrError returns the held right value, or the error produced by
// fn if the Either holds a left value. Panics with ErrNilArgument if
// the error is needed and fn is nil or produces a nil error.
func (e Either[L, R]) RightOrError(fn func() error) (R, error) {
	if e.isRight {
		return e.right, nil
	}
	var zero R
	return zero, supplyError(fn, "RightOrError")
}

// LeftOption converts the left side to an Option, None if the Either
// holds a right value.
func (e Either[L, R]) LeftOption() Option[L] {
	if e.isRight {
		return None[L]()
	}
	return Some(e.left)
}

// RightOption converts the right side to an Option, None if the Either
// holds a left value.
func (e Either[L, R]) RightOption() Option[R] {
	if !e.isRight {
		return None[R]()
	}
	return Some(e.right)
}

// Value returns the held value regardless of direction.
func (e Either[L, R]) Value() any {
	if e.isRight {
		return e.right
	}
	return e.left
}

// Equal reports whether two Eithers hold the same direction and equal
// values. Cross-direction comparisons are always false. Either values
// whose type parameters are both comparable also support ==, with
// identical semantics.
func Equal[L, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return a.right == b.right
	}
	return a.left == b.left
}

// Hash returns a hash code consistent with Equal: the value hash of the
// held side is combined with a direction discriminant, the unheld side
// contributing zero.
func (e Either[L, R]) Hash() uint64 {
	var leftHash, rightHash uint64
	if e.isRight {
		rightHash = xxhash.Sum64String(fmt.Sprint(e.right))
	} else {
		leftHash = xxhash.Sum64String(fmt.Sprint(e.left))
	}
	h := uint64(1)
	h = 31*h + leftHash
	h = 31*h + rightHash
	return h
}

// String returns "Either.Left[v]" or "Either.Right[v]".
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Either.Right[%v]", e.right)
	}
	return fmt.Sprintf("Either.Left[%v]", e.left)
}

// isAbsent reports whether v is nil, including typed nils of nillable
// kinds hidden behind a type parameter.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func supplyError(fn func() error, op string) error {
	if fn == nil {
		panic(errf(ErrNilArgument, "%s: nil fn", op))
	}
	err := fn()
	if err == nil {
		panic(errf(ErrNilArgument, "%s: fn produced a nil error", op))
	}
	return err
}
