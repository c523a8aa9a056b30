package either

// Partition accumulates the values of a collection of Either pointers
// split by direction, counting nil entries separately. Within each
// slice, values keep their encounter order. Partition is ordinary
// mutable state with no synchronization; concurrent use is the caller's
// responsibility.
type Partition[L, R any] struct {
	lefts     []L
	rights    []R
	nullCount int
}

// NewPartition partitions a collection of Either pointers by direction.
// A nil collection yields an empty Partition.
func NewPartition[L, R any](eithers []*Either[L, R]) *Partition[L, R] {
	p := &Partition[L, R]{}
	if eithers != nil {
		p.nullCount = PartitionInto(eithers, &p.lefts, &p.rights)
	}
	return p
}

// Lefts returns the accumulated left values in encounter order.
func (p *Partition[L, R]) Lefts() []L {
	return p.lefts
}

// Rights returns the accumulated right values in encounter order.
func (p *Partition[L, R]) Rights() []R {
	return p.rights
}

// NullCount returns the number of nil entries encountered.
func (p *Partition[L, R]) NullCount() int {
	return p.nullCount
}

// Add partitions another collection into the Partition, accumulating
// onto the existing slices and nil count. Does nothing if the
// collection is nil. Panics with ErrNilArgument if the collection is
// non-nil and the Partition is nil.
func (p *Partition[L, R]) Add(eithers []*Either[L, R]) {
	if eithers == nil {
		return
	}
	if p == nil {
		panic(errf(ErrNilArgument, "Add: nil partition"))
	}
	p.nullCount += PartitionInto(eithers, &p.lefts, &p.rights)
}

// PartitionInto partitions a collection of Either pointers by direction
// into the caller-supplied slices and returns the number of nil entries
// encountered, or 0 with no appends if the collection is nil. Panics
// with ErrNilArgument if the collection is non-nil and either target is
// nil.
func PartitionInto[L, R any](eithers []*Either[L, R], lefts *[]L, rights *[]R) int {
	if eithers == nil {
		return 0
	}
	if lefts == nil {
		panic(errf(ErrNilArgument, "PartitionInto: nil lefts"))
	}
	if rights == nil {
		panic(errf(ErrNilArgument, "PartitionInto: nil rights"))
	}
	nulls := 0
	for _, e := range eithers {
		switch {
		case e == nil:
			nulls++
		case e.isRight:
			*rights = append(*rights, e.right)
		default:
			*lefts = append(*lefts, e.left)
		}
	}
	return nulls
}
