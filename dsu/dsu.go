// Package dsu implements a disjoint-set union (union-find) with union by size
// and path compression.
package dsu

import (
	"github.com/aglyzov/go-cp/contract"
)

type DisjointSet struct {
	parent []int
	count  []int // set sizes, valid for roots only
}

// New returns n singleton sets {0}, {1}, ... {n-1}.
func New(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, n),
		count:  make([]int, n),
	}

	for i := range ds.parent {
		ds.parent[i] = i
		ds.count[i] = 1
	}

	return ds
}

func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Root returns the representative of the set containing x.
func (ds *DisjointSet) Root(x int) int {
	contract.Index(x, len(ds.parent), "x")

	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}

	// compress the path
	for x != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}

	return root
}

// MakeRoot turns x into the representative of its set.
func (ds *DisjointSet) MakeRoot(x int) {
	root := ds.Root(x)
	if root == x {
		return
	}

	ds.parent[x] = x
	ds.parent[root] = x
	ds.count[x] = ds.count[root]
}

// Count returns the size of the set represented by root x.
func (ds *DisjointSet) Count(x int) int {
	contract.Index(x, len(ds.parent), "x")
	return ds.count[x]
}

// Same reports whether x and y belong to the same set.
func (ds *DisjointSet) Same(x, y int) bool {
	return ds.Root(x) == ds.Root(y)
}

// Join merges the sets of x and y. It returns false if they were already one
// set. The smaller set is attached below the root of the larger one.
func (ds *DisjointSet) Join(x, y int) bool {
	a, b := ds.Root(x), ds.Root(y)
	if a == b {
		return false
	}

	if ds.count[a] < ds.count[b] {
		a, b = b, a
	}

	ds.parent[b] = a
	ds.count[a] += ds.count[b]

	return true
}
