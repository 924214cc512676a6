// Package lazy implements a segment tree with lazy propagation: range updates
// and range queries in O(log n).
//
// The tree uses the same pre-order layout as package segtree. Every node's
// aggregate is always up to date; a tag stored on a node is pending for its
// children only and is pushed down before anything below the node is read or
// modified.
package lazy

import (
	"github.com/aglyzov/go-cp/contract"
	"github.com/aglyzov/go-cp/segtree"
)

// Ops bundles the operators of a lazy tree.
//
//   - Op must be associative with Nil as its identity.
//   - Apply returns the aggregate of the node covering [l, r] after tag was
//     applied to each of its elements. Apply(v, Empty, l, r) must be v.
//   - Compose merges a pending older tag with a newer one, the result acting
//     as "older, then newer". Compose(Empty, t) must be t.
type Ops[V any, T comparable] struct {
	Op      func(a, b V) V
	Nil     V
	Apply   func(v V, tag T, l, r int) V
	Compose func(older, newer T) T
	Empty   T
}

type SegTree[V any, T comparable] struct {
	vals []V
	tags []T
	ops  Ops[V, T]
	size int
}

// New returns a tree of size elements set to ops.Nil.
func New[V any, T comparable](size int, ops Ops[V, T]) *SegTree[V, T] {
	t := newTree(size, ops)

	for i := range t.vals {
		t.vals[i] = ops.Nil
	}

	return t
}

// NewFrom builds a tree over a copy of src in O(n).
func NewFrom[V any, T comparable](src []V, ops Ops[V, T]) *SegTree[V, T] {
	t := newTree(len(src), ops)

	if t.size > 0 {
		t.build(src, 0, 0, t.size-1)
	}

	return t
}

func newTree[V any, T comparable](size int, ops Ops[V, T]) *SegTree[V, T] {
	t := &SegTree[V, T]{
		vals: make([]V, 2*size),
		tags: make([]T, 2*size),
		ops:  ops,
		size: size,
	}

	for i := range t.tags {
		t.tags[i] = ops.Empty
	}

	return t
}

func (t *SegTree[V, T]) Len() int {
	return t.size
}

// Set replaces the element at pos.
func (t *SegTree[V, T]) Set(pos int, val V) {
	contract.Index(pos, t.size, "pos")
	t.set(pos, val, 0, 0, t.size-1)
}

// Update applies tag to every element of [left, right].
func (t *SegTree[V, T]) Update(left, right int, tag T) {
	contract.Range(left, right, t.size)
	t.update(left, right, tag, 0, 0, t.size-1)
}

// Query folds the elements of [left, right] with Op.
func (t *SegTree[V, T]) Query(left, right int) V {
	contract.Range(left, right, t.size)
	return t.query(left, right, 0, 0, t.size-1)
}

// Get returns the current element at pos.
func (t *SegTree[V, T]) Get(pos int) V {
	contract.Index(pos, t.size, "pos")

	idx, l, r := 0, 0, t.size-1
	for l != r {
		t.propagate(idx, l, r)

		lc, rc, m := segtree.Children(idx, l, r)
		if pos <= m {
			idx, r = lc, m
		} else {
			idx, l = rc, m+1
		}
	}

	return t.vals[idx]
}

// Values returns all current elements in order, pushing every pending tag
// down to the leaves.
func (t *SegTree[V, T]) Values() []V {
	res := make([]V, 0, t.size)
	if t.size > 0 {
		res = t.collect(res, 0, 0, t.size-1)
	}
	return res
}

func (t *SegTree[V, T]) build(src []V, idx, l, r int) {
	if l == r {
		t.vals[idx] = src[l]
		return
	}

	lc, rc, m := segtree.Children(idx, l, r)

	t.build(src, lc, l, m)
	t.build(src, rc, m+1, r)

	t.vals[idx] = t.ops.Op(t.vals[lc], t.vals[rc])
}

// applyTag updates the aggregate of the node at once and, for inner nodes,
// remembers the tag for the children.
func (t *SegTree[V, T]) applyTag(idx, l, r int, tag T) {
	t.vals[idx] = t.ops.Apply(t.vals[idx], tag, l, r)
	if l != r {
		t.tags[idx] = t.ops.Compose(t.tags[idx], tag)
	}
}

// propagate pushes the pending tag of idx to both children and clears it.
func (t *SegTree[V, T]) propagate(idx, l, r int) {
	tag := t.tags[idx]
	if tag == t.ops.Empty {
		return
	}

	lc, rc, m := segtree.Children(idx, l, r)

	t.applyTag(lc, l, m, tag)
	t.applyTag(rc, m+1, r, tag)

	t.tags[idx] = t.ops.Empty
}

func (t *SegTree[V, T]) set(pos int, val V, idx, l, r int) {
	if l == r {
		t.vals[idx] = val
		return
	}

	t.propagate(idx, l, r)

	lc, rc, m := segtree.Children(idx, l, r)

	if pos <= m {
		t.set(pos, val, lc, l, m)
	} else {
		t.set(pos, val, rc, m+1, r)
	}

	t.vals[idx] = t.ops.Op(t.vals[lc], t.vals[rc])
}

func (t *SegTree[V, T]) update(u, v int, tag T, idx, l, r int) {
	if u > r || v < l {
		return
	}
	if u <= l && r <= v {
		t.applyTag(idx, l, r, tag)
		return
	}

	t.propagate(idx, l, r)

	lc, rc, m := segtree.Children(idx, l, r)

	t.update(u, v, tag, lc, l, m)
	t.update(u, v, tag, rc, m+1, r)

	t.vals[idx] = t.ops.Op(t.vals[lc], t.vals[rc])
}

func (t *SegTree[V, T]) query(u, v, idx, l, r int) V {
	if u > r || v < l {
		return t.ops.Nil
	}
	if u <= l && r <= v {
		return t.vals[idx]
	}

	t.propagate(idx, l, r)

	lc, rc, m := segtree.Children(idx, l, r)

	return t.ops.Op(t.query(u, v, lc, l, m), t.query(u, v, rc, m+1, r))
}

func (t *SegTree[V, T]) collect(res []V, idx, l, r int) []V {
	if l == r {
		return append(res, t.vals[idx])
	}

	t.propagate(idx, l, r)

	lc, rc, m := segtree.Children(idx, l, r)

	res = t.collect(res, lc, l, m)
	return t.collect(res, rc, m+1, r)
}
