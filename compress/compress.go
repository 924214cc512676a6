// Package compress maps sparse values to dense indices 0..n-1.
//
// Live assigns indices in insertion order as values arrive. Strings does the
// same for string keys and also keeps them in byte order. Deferred collects
// values first; its Finalized form numbers the distinct values by rank.
//
// Compressing a value that was never inserted is a contract violation.
package compress

import (
	"fmt"

	"github.com/aglyzov/go-cp/contract"
)

// Compressor is implemented by *Live, *Strings and *Finalized.
type Compressor[T any] interface {
	Compress(val T) int
	Len() int
}

// All compresses every value of vals.
func All[T any](c Compressor[T], vals []T) []int {
	res := make([]int, len(vals))
	for i, val := range vals {
		res[i] = c.Compress(val)
	}
	return res
}

// Live numbers values by first insertion.
type Live[T comparable] struct {
	index map[T]int
}

var _ Compressor[int] = (*Live[int])(nil)

func NewLive[T comparable](vals ...T) *Live[T] {
	c := &Live[T]{index: make(map[T]int, len(vals))}
	c.Insert(vals...)
	return c
}

// Insert gives an index to every value not seen before.
func (c *Live[T]) Insert(vals ...T) {
	for _, val := range vals {
		if _, ok := c.index[val]; !ok {
			c.index[val] = len(c.index)
		}
	}
}

// Lookup returns the index of val and whether it was inserted.
func (c *Live[T]) Lookup(val T) (int, bool) {
	idx, ok := c.index[val]
	return idx, ok
}

// Compress returns the index of val, which must have been inserted.
func (c *Live[T]) Compress(val T) int {
	idx, ok := c.index[val]
	if contract.Enabled && !ok {
		contract.Fail(contract.ErrNotFound, fmt.Sprintf("compress %v", val))
	}
	return idx
}

func (c *Live[T]) Len() int {
	return len(c.index)
}
