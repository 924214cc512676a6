package alloc

import (
	"fmt"

	"github.com/aglyzov/go-cp/contract"
)

// Fixed is a pool of exactly Cap() slots allocated up front.
type Fixed[T any] struct {
	buffer []T // buffer[0] is unused so that Nil stays invalid
	next   Ref // the lowest never used slot
	free   freeList
}

var _ Allocator[int] = (*Fixed[int])(nil)

// NewFixed returns a pool of capacity slots.
func NewFixed[T any](capacity int) *Fixed[T] {
	if capacity < 0 {
		capacity = 0
	}

	f := &Fixed[T]{
		buffer: make([]T, capacity+1),
		next:   1,
	}
	f.free.live = make([]bool, capacity+1)

	return f
}

// Alloc panics with contract.ErrExhausted when the pool is full; unlike other
// checks this one is always on.
func (f *Fixed[T]) Alloc(val T) Ref {
	ref, ok := f.free.pop()
	if !ok {
		if int(f.next) >= len(f.buffer) {
			contract.Fail(contract.ErrExhausted, fmt.Sprintf("fixed pool of %d slots is full", f.Cap()))
		}
		ref = f.next
		f.next++
	}

	f.buffer[ref] = val
	f.free.live[ref] = true

	return ref
}

func (f *Fixed[T]) Free(ref Ref) {
	f.free.checkLive(ref, int(f.next)-1)

	var zero T

	f.buffer[ref] = zero
	f.free.live[ref] = false
	f.free.push(ref)
}

func (f *Fixed[T]) At(ref Ref) *T {
	f.free.checkLive(ref, int(f.next)-1)

	return &f.buffer[ref]
}

func (f *Fixed[T]) Len() int {
	return int(f.next) - 1 - len(f.free.idx)
}

// Cap returns the total number of slots.
func (f *Fixed[T]) Cap() int {
	return len(f.buffer) - 1
}
