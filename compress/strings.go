package compress

import (
	"fmt"
	"iter"

	"github.com/xlab/treeprint"

	"github.com/aglyzov/go-cp/contract"
)

// Strings numbers string keys by first insertion. The keys are held in a
// crit-bit tree, so they can also be walked in byte order and by prefix.
type Strings struct {
	size int
	root ref
}

var _ Compressor[string] = (*Strings)(nil)

// ref holds either a leaf (key, id) or an inner node.
type ref struct {
	node *node
	key  string
	id   int
}

type node struct {
	child [2]ref
	// off is the offset of the differing byte
	off int
	// bit is the single crit bit of the differing byte, see keyByte
	bit uint16
}

// keyByte returns the byte at off tagged with bit 8, or 0 past the end of
// key. A key therefore differs from any of its extensions, and sorts first.
func keyByte(key string, off int) uint16 {
	if off < len(key) {
		return 0x100 | uint16(key[off])
	}
	return 0
}

// dir calculates the direction for the given key
func (n *node) dir(key string) int {
	if keyByte(key, n.off)&n.bit != 0 {
		return 1
	}
	return 0
}

// critBit finds the first differing byte of a and b and its highest
// differing bit.
func critBit(a, b string) (off int, bit uint16, differ bool) {
	for off = 0; off < max(len(a), len(b)); off++ {
		bit = keyByte(a, off) ^ keyByte(b, off)
		if bit == 0 {
			continue
		}
		// keep the highest bit only
		bit |= bit >> 1
		bit |= bit >> 2
		bit |= bit >> 4
		bit |= bit >> 8
		return off, bit &^ (bit >> 1), true
	}
	return 0, 0, false
}

func NewStrings(keys ...string) *Strings {
	s := &Strings{}
	s.Insert(keys...)
	return s
}

// Len returns the number of distinct keys.
func (s *Strings) Len() int {
	return s.size
}

// Insert gives an index to every key not seen before.
func (s *Strings) Insert(keys ...string) {
	for _, key := range keys {
		s.insert(key)
	}
}

func (s *Strings) insert(key string) int {
	if s.size == 0 {
		s.root = ref{key: key}
		s.size++
		return 0
	}

	// walk for best member
	p := &s.root
	for p.node != nil {
		p = &p.node.child[p.node.dir(key)]
	}

	off, bit, differ := critBit(p.key, key)
	if !differ {
		return p.id
	}

	// direction of the existing keys below the new node
	var odir int
	if keyByte(p.key, off)&bit != 0 {
		odir = 1
	}

	nn := &node{off: off, bit: bit}
	nn.child[1-odir] = ref{key: key, id: s.size}

	// walk for best insertion node
	wp := &s.root
	for wp.node != nil {
		n := wp.node
		if n.off > off || n.off == off && n.bit < bit {
			break
		}
		wp = &n.child[n.dir(key)]
	}

	nn.child[odir] = *wp
	*wp = ref{node: nn}
	s.size++

	return s.size - 1
}

// Lookup returns the index of key and whether it was inserted.
func (s *Strings) Lookup(key string) (int, bool) {
	if s.size == 0 {
		return 0, false
	}

	p := s.root
	for p.node != nil {
		p = p.node.child[p.node.dir(key)]
	}

	if p.key != key {
		return 0, false
	}
	return p.id, true
}

// Compress returns the index of key, which must have been inserted.
func (s *Strings) Compress(key string) int {
	id, ok := s.Lookup(key)
	if contract.Enabled && !ok {
		contract.Fail(contract.ErrNotFound, fmt.Sprintf("compress %q", key))
	}
	return id
}

// Sorted yields (key, index) pairs in byte order of the keys.
func (s *Strings) Sorted() iter.Seq2[string, int] {
	return s.WithPrefix("")
}

// WithPrefix yields the (key, index) pairs of all keys starting with prefix,
// in byte order.
func (s *Strings) WithPrefix(prefix string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		if s.size == 0 {
			return
		}

		// walk for best member, remembering the last node above the prefix
		p, top := s.root, s.root
		for p.node != nil {
			above := p.node.off < len(prefix)
			p = p.node.child[p.node.dir(prefix)]
			if above {
				top = p
			}
		}

		if len(p.key) < len(prefix) || p.key[:len(prefix)] != prefix {
			return
		}

		// walk the subtree without function recursion
		toVisit := []*ref{&top}
		for l := len(toVisit); l > 0; l = len(toVisit) {
			r := toVisit[l-1]
			toVisit = toVisit[:l-1]

			if r.node == nil {
				if !yield(r.key, r.id) {
					return
				}
				continue
			}
			toVisit = append(toVisit, &r.node.child[1], &r.node.child[0])
		}
	}
}

// Ranks returns, for every index, the byte order rank of its key.
func (s *Strings) Ranks() []int {
	ranks := make([]int, s.size)

	rank := 0
	for _, id := range s.Sorted() {
		ranks[id] = rank
		rank++
	}

	return ranks
}

// Dump renders the crit-bit tree.
func (s *Strings) Dump() string {
	tree := treeprint.NewWithRoot(fmt.Sprintf("strings(len=%d)", s.size))
	if s.size > 0 {
		s.dump(tree, "T", s.root)
	}
	return tree.String()
}

func (s *Strings) dump(branch treeprint.Tree, tag string, r ref) {
	if r.node == nil {
		branch.AddMetaNode(tag, fmt.Sprintf("%q #%d", r.key, r.id))
		return
	}

	sub := branch.AddMetaBranch(tag, fmt.Sprintf("off=%d mask=%09b", r.node.off, r.node.bit))
	s.dump(sub, "L", r.node.child[0])
	s.dump(sub, "R", r.node.child[1])
}
