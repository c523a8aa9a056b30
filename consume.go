package either

import "iter"

// ConsumeLeft invokes action with the left value, doing nothing if the
// Either holds a right value. Panics with ErrNilArgument if the Either
// holds a left value and action is nil.
func (e Either[L, R]) ConsumeLeft(action func(L)) {
	if e.isRight {
		return
	}
	if action == nil {
		panic(errf(ErrNilArgument, "ConsumeLeft: nil action"))
	}
	action(e.left)
}

// ConsumeRight invokes action with the right value, doing nothing if
// the Either holds a left value. Panics with ErrNilArgument if the
// Either holds a right value and action is nil.
func (e Either[L, R]) ConsumeRight(action func(R)) {
	if !e.isRight {
		return
	}
	if action == nil {
		panic(errf(ErrNilArgument, "ConsumeRight: nil action"))
	}
	action(e.right)
}

// Consume invokes exactly one of the two actions, matching the held
// direction. Panics with ErrNilArgument if the matching action is nil.
func (e Either[L, R]) Consume(onLeft func(L), onRight func(R)) {
	if e.isRight {
		if onRight == nil {
			panic(errf(ErrNilArgument, "Consume: nil onRight"))
		}
		onRight(e.right)
		return
	}
	if onLeft == nil {
		panic(errf(ErrNilArgument, "Consume: nil onLeft"))
	}
	onLeft(e.left)
}

// ConsumeAs invokes action with the held value of whichever direction,
// asserted to T. Panics with ErrNilArgument if action is nil and with
// ErrTypeMismatch if the held value is not a T.
func ConsumeAs[T any, L, R any](e Either[L, R], action func(T)) {
	if action == nil {
		panic(errf(ErrNilArgument, "ConsumeAs: nil action"))
	}
	action(Cast[T](e))
}

// StreamLeft returns a fresh single-use sequence of zero elements
// (right-holding) or exactly one element (left-holding). Each call
// produces a new sequence, so iteration can be restarted.
func (e Either[L, R]) StreamLeft() iter.Seq[L] {
	return func(yield func(L) bool) {
		if !e.isRight {
			yield(e.left)
		}
	}
}

// StreamRight returns a fresh single-use sequence of zero elements
// (left-holding) or exactly one element (right-holding). Each call
// produces a new sequence, so iteration can be restarted.
func (e Either[L, R]) StreamRight() iter.Seq[R] {
	return func(yield func(R) bool) {
		if e.isRight {
			yield(e.right)
		}
	}
}
