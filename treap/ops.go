package treap

import (
	"github.com/aglyzov/go-cp/alloc"
	"github.com/aglyzov/go-cp/contract"
)

// At returns the element at pos.
func (t *Treap[V]) At(pos int) V {
	contract.Index(pos, t.Len(), "pos")

	ref := t.root
	for {
		t.push(ref)

		n := t.node(ref)
		leftSize := t.size(n.left)

		switch {
		case pos < leftSize:
			ref = n.left
		case pos > leftSize:
			pos -= leftSize + 1
			ref = n.right
		default:
			return n.val
		}
	}
}

// Set replaces the element at pos.
func (t *Treap[V]) Set(pos int, val V) {
	contract.Index(pos, t.Len(), "pos")

	left, mid, right := t.isolate(pos, pos)

	t.node(mid).val = val
	t.pull(mid)

	t.restore(left, mid, right)
}

// Update combines the element at pos with val: a[pos] = op(a[pos], val).
func (t *Treap[V]) Update(pos int, val V) {
	contract.Index(pos, t.Len(), "pos")

	left, mid, right := t.isolate(pos, pos)

	n := t.node(mid)
	n.val = t.op(n.val, val)
	t.pull(mid)

	t.restore(left, mid, right)
}

// Query folds the elements of [l, r] (inclusive) with op.
func (t *Treap[V]) Query(l, r int) V {
	contract.Range(l, r, t.Len())

	left, mid, right := t.isolate(l, r)
	sum := t.node(mid).sum
	t.restore(left, mid, right)

	return sum
}

// Insert puts val at pos shifting the elements from pos on to the right.
// pos == Len() appends.
func (t *Treap[V]) Insert(pos int, val V) {
	contract.Index(pos, t.Len()+1, "pos")

	ref := t.newNode(val)
	left, right := t.split(t.root, pos)

	t.root = t.merge(t.merge(left, ref), right)
}

// PushBack appends val.
func (t *Treap[V]) PushBack(val V) {
	t.Insert(t.Len(), val)
}

// Erase removes the element at pos.
func (t *Treap[V]) Erase(pos int) {
	t.EraseRange(pos, pos)
}

// EraseRange removes the elements of [l, r] and frees their nodes.
func (t *Treap[V]) EraseRange(l, r int) {
	contract.Range(l, r, t.Len())

	left, mid, right := t.isolate(l, r)

	t.release(mid)
	t.root = t.merge(left, right)
}

// Reverse reverses the order of the elements of [l, r] in O(log n). The
// treap must have been built with Reversible().
func (t *Treap[V]) Reverse(l, r int) {
	contract.Require(t.reversible, contract.ErrNotReversible, "Reverse needs a treap built with Reversible()")
	contract.Range(l, r, t.Len())

	left, mid, right := t.isolate(l, r)
	t.toggle(mid)
	t.restore(left, mid, right)
}

// Split moves the first k elements into the first returned treap and the
// rest into the second. The receiver is left empty.
func (t *Treap[V]) Split(k int) (*Treap[V], *Treap[V]) {
	contract.Index(k, t.Len()+1, "k")

	left, right := t.split(t.root, k)
	t.root = alloc.Nil

	return t.derive(left), t.derive(right)
}

// Join appends all elements of other and leaves other empty. Both treaps
// must share the allocator and the reversibility setting.
func (t *Treap[V]) Join(other *Treap[V]) {
	if contract.Enabled {
		contract.Require(t != other, contract.ErrForeignTree, "cannot join a treap with itself")
		contract.Require(t.pool == other.pool && t.reversible == other.reversible, contract.ErrForeignTree,
			"Join needs treaps sharing the allocator and the reversibility")
	}

	t.root = t.merge(t.root, other.root)
	other.root = alloc.Nil
}

// Clear frees every node.
func (t *Treap[V]) Clear() {
	t.release(t.root)
	t.root = alloc.Nil
}
