// Package treap implements an implicit treap: a randomized balanced binary
// tree keyed by in-order position only. It supports insert, erase, point
// update, range aggregate, split, join and (optionally) range reversal at any
// position in expected O(log n).
//
// Every positional operation is the same three steps: split the tree to
// isolate the target range, touch the root of the isolated part, merge the
// pieces back.
//
// Nodes are kept in an alloc.Allocator and linked by alloc.Ref handles, so a
// subtree is owned by whichever single slot holds its Ref. Split and Join move
// ownership of whole subtrees; no node is ever reachable from two live trees.
//
// A Treap is not safe for concurrent use.
package treap

import (
	"math/rand/v2"

	"github.com/aglyzov/go-cp/alloc"
)

// Node is a treap node as stored by the allocator. It is exported only so
// that callers can build their own allocators (alloc.NewFixed[treap.Node[V]]).
type Node[V any] struct {
	val      V
	sum      V // op over the subtree in order
	rsum     V // op over the subtree in reverse order (reversible treaps only)
	left     alloc.Ref
	right    alloc.Ref
	priority uint64
	size     int
	flip     bool // children are still to be swapped and flipped
}

// Source draws node priorities. *rand.Rand satisfies it.
type Source interface {
	Uint64() uint64
}

type Treap[V any] struct {
	root       alloc.Ref
	pool       alloc.Allocator[Node[V]]
	op         func(V, V) V
	rng        Source
	reversible bool
}

type Option[V any] func(*Treap[V])

// WithAllocator makes the treap take its nodes from a. Trees that are to be
// joined must share the allocator.
func WithAllocator[V any](a alloc.Allocator[Node[V]]) Option[V] {
	return func(t *Treap[V]) {
		t.pool = a
	}
}

// WithRand sets the priority source. A fixed seed gives a reproducible shape.
func WithRand[V any](src Source) Option[V] {
	return func(t *Treap[V]) {
		t.rng = src
	}
}

// Reversible enables Reverse. A reversible treap also keeps the aggregate of
// every subtree in reverse order, which costs one more op call per update.
func Reversible[V any]() Option[V] {
	return func(t *Treap[V]) {
		t.reversible = true
	}
}

// New returns an empty treap aggregating values with op, which must be
// associative. It does not need an identity.
func New[V any](op func(V, V) V, opts ...Option[V]) *Treap[V] {
	t := &Treap[V]{op: op}

	for _, opt := range opts {
		opt(t)
	}

	if t.pool == nil {
		t.pool = alloc.NewHeap[Node[V]](0)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return t
}

// From returns a treap holding a copy of src, built in O(n).
func From[V any](op func(V, V) V, src []V, opts ...Option[V]) *Treap[V] {
	t := New(op, opts...)
	t.root = t.build(src)
	return t
}

// derive returns an empty treap sharing the configuration of t.
func (t *Treap[V]) derive(root alloc.Ref) *Treap[V] {
	return &Treap[V]{
		root:       root,
		pool:       t.pool,
		op:         t.op,
		rng:        t.rng,
		reversible: t.reversible,
	}
}

// IsReversible reports whether Reverse is available.
func (t *Treap[V]) IsReversible() bool {
	return t.reversible
}

// Len returns the number of elements.
func (t *Treap[V]) Len() int {
	return t.size(t.root)
}
