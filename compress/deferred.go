package compress

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/aglyzov/go-cp/contract"
)

// Deferred collects values to be numbered by rank once all are known.
type Deferred[T cmp.Ordered] struct {
	store []T
}

// NewDeferred returns a Deferred holding the values of all groups.
func NewDeferred[T cmp.Ordered](groups ...[]T) *Deferred[T] {
	total := 0
	for _, g := range groups {
		total += len(g)
	}

	d := &Deferred[T]{store: make([]T, 0, total)}
	for _, g := range groups {
		d.store = append(d.store, g...)
	}

	return d
}

func (d *Deferred[T]) Insert(vals ...T) {
	d.store = append(d.store, vals...)
}

// Finalize sorts and deduplicates the collected values. The Deferred stays
// usable and later inserts do not affect the result.
func (d *Deferred[T]) Finalize() *Finalized[T] {
	sorted := slices.Clone(d.store)
	slices.Sort(sorted)

	return &Finalized[T]{sorted: slices.Compact(sorted)}
}

// Finalized numbers the distinct values by their rank.
type Finalized[T cmp.Ordered] struct {
	sorted []T
}

var _ Compressor[int] = (*Finalized[int])(nil)

// Compress returns the rank of val among the distinct values.
func (f *Finalized[T]) Compress(val T) int {
	idx, found := slices.BinarySearch(f.sorted, val)
	if contract.Enabled && !found {
		contract.Fail(contract.ErrNotFound, fmt.Sprintf("compress %v", val))
	}
	return idx
}

// Value returns the value of rank idx.
func (f *Finalized[T]) Value(idx int) T {
	contract.Index(idx, len(f.sorted), "idx")
	return f.sorted[idx]
}

// Values returns the distinct values in increasing order.
func (f *Finalized[T]) Values() []T {
	return slices.Clone(f.sorted)
}

func (f *Finalized[T]) Len() int {
	return len(f.sorted)
}
