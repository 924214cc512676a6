// Package alloc provides node allocators addressed by small integer handles.
//
// A container stores Refs instead of pointers, so ownership of a node is just
// the fact that exactly one parent slot holds its Ref. Two implementations
// share the same interface:
//
//   - Heap  - unbounded, one new(T) per fresh slot, freed slots are reused;
//   - Fixed - a single preallocated []T, panics once every slot is taken.
package alloc

import (
	"github.com/aglyzov/go-cp/contract"
)

// Ref is a handle of an allocated value. The zero Ref is never handed out.
type Ref uint32

// Nil is the empty reference.
const Nil Ref = 0

// Allocator hands out Refs to values of type T.
type Allocator[T any] interface {
	// Alloc stores val in a free slot and returns its handle.
	Alloc(val T) Ref
	// Free releases the slot. The ref must not be used afterwards.
	Free(ref Ref)
	// At returns a pointer to the stored value. The pointer stays valid
	// until the ref is freed.
	At(ref Ref) *T
	// Len returns the number of live refs.
	Len() int
}

// freeList keeps released slots; it is the NodePool.FreeIdx idea from the
// critbit counter.
type freeList struct {
	idx  []Ref
	live []bool
}

func (fl *freeList) pop() (Ref, bool) {
	n := len(fl.idx)
	if n == 0 {
		return Nil, false
	}
	ref := fl.idx[n-1]
	fl.idx = fl.idx[:n-1]
	return ref, true
}

func (fl *freeList) push(ref Ref) {
	fl.idx = append(fl.idx, ref)
}

func (fl *freeList) checkLive(ref Ref, total int) {
	if !contract.Enabled {
		return
	}
	contract.Require(ref != Nil, contract.ErrBadRef, "nil ref")
	contract.Requiref(int(ref) <= total, contract.ErrBadRef, "ref %d was never allocated", ref)
	contract.Requiref(fl.live[ref], contract.ErrBadRef, "ref %d is not live", ref)
}
