package treap

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/aglyzov/go-cp/alloc"
)

// Dump renders the raw node structure, pending flips included, without
// pushing anything down. Children are marked [L] and [R].
func (t *Treap[V]) Dump() string {
	tree := treeprint.NewWithRoot(fmt.Sprintf("treap(len=%d)", t.Len()))
	t.dump(tree, "root", t.root)
	return tree.String()
}

func (t *Treap[V]) dump(branch treeprint.Tree, side string, ref alloc.Ref) {
	if ref == alloc.Nil {
		return
	}

	n := t.node(ref)
	label := fmt.Sprintf("%v sum=%v size=%d prio=%016x", n.val, n.sum, n.size, n.priority)
	if n.flip {
		label += " flip"
	}

	if n.left == alloc.Nil && n.right == alloc.Nil {
		branch.AddMetaNode(side, label)
		return
	}

	sub := branch.AddMetaBranch(side, label)
	t.dump(sub, "L", n.left)
	t.dump(sub, "R", n.right)
}
