package either

import "cmp"

// Comparator returns a comparison function imposing a total order on
// Either values over ordered types, usable with slices.SortFunc. With
// both flags false, left-holding values order strictly before
// right-holding values and values within a direction follow their
// natural order. reverseDirection flips which direction sorts first;
// reverseContents flips the order within a direction.
func Comparator[L, R cmp.Ordered](reverseContents, reverseDirection bool) func(a, b Either[L, R]) int {
	dirMult := 1
	if reverseDirection {
		dirMult = -1
	}
	valMult := 1
	if reverseContents {
		valMult = -1
	}
	return func(a, b Either[L, R]) int {
		switch {
		case a.isRight != b.isRight:
			if a.isRight {
				return dirMult
			}
			return -dirMult
		case a.isRight:
			return valMult * cmp.Compare(a.right, b.right)
		default:
			return valMult * cmp.Compare(a.left, b.left)
		}
	}
}

// NullableComparator behaves like Comparator over possibly-nil Either
// pointers, treating nil as a third direction ordered strictly before
// left-holding values under natural ordering. reverseDirection also
// reverses whether nil sorts first or last. Two nils compare equal.
func NullableComparator[L, R cmp.Ordered](reverseContents, reverseDirection bool) func(a, b *Either[L, R]) int {
	concrete := Comparator[L, R](reverseContents, reverseDirection)
	return func(a, b *Either[L, R]) int {
		if a == nil || b == nil {
			if a == b {
				return 0
			}
			first := a
			if reverseDirection {
				first = b
			}
			if first == nil {
				return -1
			}
			return 1
		}
		return concrete(*a, *b)
	}
}
