// Package segtree implements a segment tree over a fixed-size sequence with
// point updates and inclusive range queries in O(log n).
//
// Nodes live in one slice laid out in pre-order: the node covering [l, r] at
// index idx has its left child at idx+1 and its right child right after the
// whole left subtree, at idx+2*(m-l+1). A tree over n elements needs exactly
// 2n-1 slots.
package segtree

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/aglyzov/go-cp/contract"
)

type SegTree[V any] struct {
	store []V
	op    func(V, V) V
	nil   V
	size  int
}

// New returns a tree of size elements, each set to nilVal.
// The op must be associative with nilVal as its identity.
func New[V any](size int, op func(V, V) V, nilVal V) *SegTree[V] {
	t := &SegTree[V]{
		store: make([]V, 2*size),
		op:    op,
		nil:   nilVal,
		size:  size,
	}

	for i := range t.store {
		t.store[i] = nilVal
	}

	return t
}

// NewFrom builds a tree over a copy of src in O(n).
func NewFrom[V any](src []V, op func(V, V) V, nilVal V) *SegTree[V] {
	t := &SegTree[V]{
		store: make([]V, 2*len(src)),
		op:    op,
		nil:   nilVal,
		size:  len(src),
	}

	if t.size > 0 {
		t.build(src, 0, 0, t.size-1)
	}

	return t
}

// Children returns the slots of both children of the node idx covering
// [l, r] and the split point m.
func Children(idx, l, r int) (lc, rc, m int) {
	m = l + (r-l)/2
	return idx + 1, idx + 2*(m-l+1), m
}

// Len returns the number of elements.
func (t *SegTree[V]) Len() int {
	return t.size
}

// Set replaces the element at pos.
func (t *SegTree[V]) Set(pos int, val V) {
	contract.Index(pos, t.size, "pos")
	t.mutate(pos, val, true, 0, 0, t.size-1)
}

// Update combines the element at pos with val: a[pos] = op(a[pos], val).
func (t *SegTree[V]) Update(pos int, val V) {
	contract.Index(pos, t.size, "pos")
	t.mutate(pos, val, false, 0, 0, t.size-1)
}

// Get returns the element at pos.
func (t *SegTree[V]) Get(pos int) V {
	contract.Index(pos, t.size, "pos")

	idx, l, r := 0, 0, t.size-1
	for l != r {
		lc, rc, m := Children(idx, l, r)
		if pos <= m {
			idx, r = lc, m
		} else {
			idx, l = rc, m+1
		}
	}

	return t.store[idx]
}

// Query folds the elements of [left, right] (inclusive) with op.
func (t *SegTree[V]) Query(left, right int) V {
	contract.Range(left, right, t.size)
	return t.query(left, right, 0, 0, t.size-1)
}

func (t *SegTree[V]) build(src []V, idx, l, r int) {
	if l == r {
		t.store[idx] = src[l]
		return
	}

	lc, rc, m := Children(idx, l, r)

	t.build(src, lc, l, m)
	t.build(src, rc, m+1, r)

	t.store[idx] = t.op(t.store[lc], t.store[rc])
}

func (t *SegTree[V]) mutate(pos int, val V, replace bool, idx, l, r int) {
	if l == r {
		if replace {
			t.store[idx] = val
		} else {
			t.store[idx] = t.op(t.store[idx], val)
		}
		return
	}

	lc, rc, m := Children(idx, l, r)

	if pos <= m {
		t.mutate(pos, val, replace, lc, l, m)
	} else {
		t.mutate(pos, val, replace, rc, m+1, r)
	}

	t.store[idx] = t.op(t.store[lc], t.store[rc])
}

func (t *SegTree[V]) query(u, v, idx, l, r int) V {
	if u > r || v < l {
		return t.nil
	}
	if u <= l && r <= v {
		return t.store[idx]
	}

	lc, rc, m := Children(idx, l, r)

	return t.op(t.query(u, v, lc, l, m), t.query(u, v, rc, m+1, r))
}

// Dump renders the node aggregates as an indented tree.
func (t *SegTree[V]) Dump() string {
	tree := treeprint.NewWithRoot(fmt.Sprintf("segtree(len=%d)", t.size))
	if t.size > 0 {
		t.dump(tree, 0, 0, t.size-1)
	}
	return tree.String()
}

func (t *SegTree[V]) dump(branch treeprint.Tree, idx, l, r int) {
	label := fmt.Sprintf("[%d,%d] %v", l, r, t.store[idx])
	if l == r {
		branch.AddNode(label)
		return
	}

	sub := branch.AddBranch(label)
	lc, rc, m := Children(idx, l, r)

	t.dump(sub, lc, l, m)
	t.dump(sub, rc, m+1, r)
}
