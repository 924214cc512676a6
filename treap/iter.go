package treap

import (
	"iter"

	"github.com/aglyzov/go-cp/alloc"
)

// All yields (position, element) pairs in order. The treap must not be
// modified while iterating.
func (t *Treap[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		pos := 0
		t.walk(t.root, func(n *Node[V]) bool {
			ok := yield(pos, n.val)
			pos++
			return ok
		})
	}
}

// Values yields the elements in order.
func (t *Treap[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		t.walk(t.root, func(n *Node[V]) bool {
			return yield(n.val)
		})
	}
}

// Slice returns the elements in order.
func (t *Treap[V]) Slice() []V {
	res := make([]V, 0, t.Len())
	for val := range t.Values() {
		res = append(res, val)
	}
	return res
}

// Map returns f applied to every element of t, in order.
func Map[V, R any](t *Treap[V], f func(V) R) []R {
	res := make([]R, 0, t.Len())
	for val := range t.Values() {
		res = append(res, f(val))
	}
	return res
}

// Clone returns a deep copy using the same allocator and priority source.
// The copy holds the same sequence with freshly drawn priorities, so its
// shape generally differs.
func (t *Treap[V]) Clone() *Treap[V] {
	c := t.derive(alloc.Nil)

	t.walk(t.root, func(n *Node[V]) bool {
		c.root = c.merge(c.root, c.newNode(n.val))
		return true
	})

	return c
}
