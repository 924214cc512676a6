package treap

import (
	"github.com/aglyzov/go-cp/alloc"
)

func (t *Treap[V]) node(ref alloc.Ref) *Node[V] {
	return t.pool.At(ref)
}

func (t *Treap[V]) size(ref alloc.Ref) int {
	if ref == alloc.Nil {
		return 0
	}
	return t.node(ref).size
}

func (t *Treap[V]) newNode(val V) alloc.Ref {
	return t.pool.Alloc(Node[V]{
		val:      val,
		sum:      val,
		rsum:     val,
		priority: t.rng.Uint64(),
		size:     1,
	})
}

// toggle marks the subtree as reversed. The subtree aggregate is fixed at
// once; the children are swapped only when the node is pushed.
func (t *Treap[V]) toggle(ref alloc.Ref) {
	n := t.node(ref)
	n.flip = !n.flip
	n.sum, n.rsum = n.rsum, n.sum
}

// push hands a pending flip down to the children. It must run before the
// children of a node are read or replaced.
func (t *Treap[V]) push(ref alloc.Ref) {
	n := t.node(ref)
	if !n.flip {
		return
	}

	n.left, n.right = n.right, n.left

	if n.left != alloc.Nil {
		t.toggle(n.left)
	}
	if n.right != alloc.Nil {
		t.toggle(n.right)
	}

	n.flip = false
}

// pull recomputes size and aggregates of a pushed node from its children.
func (t *Treap[V]) pull(ref alloc.Ref) {
	n := t.node(ref)

	n.size = 1
	n.sum = n.val
	n.rsum = n.val

	if n.left != alloc.Nil {
		l := t.node(n.left)
		n.size += l.size
		n.sum = t.op(l.sum, n.sum)
		if t.reversible {
			n.rsum = t.op(n.rsum, l.rsum)
		}
	}

	if n.right != alloc.Nil {
		r := t.node(n.right)
		n.size += r.size
		n.sum = t.op(n.sum, r.sum)
		if t.reversible {
			n.rsum = t.op(r.rsum, n.rsum)
		}
	}
}

// split cuts the subtree into its first k elements and the rest.
func (t *Treap[V]) split(ref alloc.Ref, k int) (left, right alloc.Ref) {
	if ref == alloc.Nil {
		return alloc.Nil, alloc.Nil
	}

	t.push(ref)

	var (
		n        = t.node(ref)
		leftSize = t.size(n.left)
	)

	if k <= leftSize {
		left, n.left = t.split(n.left, k)
		t.pull(ref)
		return left, ref
	}

	n.right, right = t.split(n.right, k-leftSize-1)
	t.pull(ref)

	return ref, right
}

// merge joins two subtrees where every element of left precedes every
// element of right. The node with the strictly higher priority becomes the
// root; on a tie the right one does.
func (t *Treap[V]) merge(left, right alloc.Ref) alloc.Ref {
	if left == alloc.Nil {
		return right
	}
	if right == alloc.Nil {
		return left
	}

	l, r := t.node(left), t.node(right)

	if l.priority > r.priority {
		t.push(left)
		l.right = t.merge(l.right, right)
		t.pull(left)
		return left
	}

	t.push(right)
	r.left = t.merge(left, r.left)
	t.pull(right)

	return right
}

// isolate splits the tree into [0, l), [l, r] and (r, Len).
func (t *Treap[V]) isolate(l, r int) (left, mid, right alloc.Ref) {
	left, rest := t.split(t.root, l)
	mid, right = t.split(rest, r-l+1)
	t.root = alloc.Nil
	return left, mid, right
}

// restore is the inverse of isolate.
func (t *Treap[V]) restore(left, mid, right alloc.Ref) {
	t.root = t.merge(t.merge(left, mid), right)
}

// build makes a treap out of src in O(n) by keeping the right spine on a
// stack, the usual Cartesian tree construction.
func (t *Treap[V]) build(src []V) alloc.Ref {
	spine := make([]alloc.Ref, 0, 64)

	for _, val := range src {
		var (
			ref  = t.newNode(val)
			prio = t.node(ref).priority
			last = alloc.Nil
		)

		for len(spine) > 0 {
			top := spine[len(spine)-1]
			if t.node(top).priority >= prio {
				break
			}
			t.pull(top)
			last = top
			spine = spine[:len(spine)-1]
		}

		t.node(ref).left = last
		if len(spine) > 0 {
			t.node(spine[len(spine)-1]).right = ref
		}

		spine = append(spine, ref)
	}

	for i := len(spine) - 1; i >= 0; i-- {
		t.pull(spine[i])
	}

	if len(spine) == 0 {
		return alloc.Nil
	}
	return spine[0]
}

// release frees the whole subtree in post-order.
func (t *Treap[V]) release(ref alloc.Ref) {
	if ref == alloc.Nil {
		return
	}

	n := t.node(ref)
	left, right := n.left, n.right

	t.release(left)
	t.release(right)
	t.pool.Free(ref)
}

// walk visits the subtree in order until visit returns false.
func (t *Treap[V]) walk(ref alloc.Ref, visit func(*Node[V]) bool) bool {
	if ref == alloc.Nil {
		return true
	}

	t.push(ref)

	n := t.node(ref)

	return t.walk(n.left, visit) && visit(n) && t.walk(n.right, visit)
}
