// Package lca answers lowest common ancestor and distance queries on a
// rooted tree in O(1) after an O(n log n) Euler tour preprocessing.
package lca

import (
	"math"

	"github.com/aglyzov/go-cp/contract"
	"github.com/aglyzov/go-cp/sparsetable"
)

// visit is one entry of the Euler tour.
type visit struct {
	depth  int
	vertex int
}

var noVisit = visit{depth: math.MaxInt, vertex: -1}

func minVisit(a, b visit) visit {
	if b.depth < a.depth || b.depth == a.depth && b.vertex < a.vertex {
		return b
	}
	return a
}

type LCA struct {
	first []int // index of the first tour entry of a vertex
	depth []int
	tour  *sparsetable.Table[visit]
}

// New preprocesses the tree given as an undirected adjacency list. Vertices
// unreachable from root keep depth -1 and must not be queried.
func New(adj [][]int, root int) *LCA {
	n := len(adj)
	contract.Index(root, n, "root")

	lca := &LCA{
		first: make([]int, n),
		depth: make([]int, n),
	}

	for i := range lca.depth {
		lca.depth[i] = -1
	}

	type frame struct {
		vertex, parent, next int
	}

	var (
		tour  = make([]visit, 0, 2*n)
		stack = []frame{{vertex: root, parent: -1}}
	)

	lca.depth[root] = 0
	lca.first[root] = 0
	tour = append(tour, visit{0, root})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		v := top.vertex

		if top.next == len(adj[v]) {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				// back in the parent
				p := stack[len(stack)-1].vertex
				tour = append(tour, visit{lca.depth[p], p})
			}
			continue
		}

		child := adj[v][top.next]
		top.next++

		if child == top.parent {
			continue
		}
		contract.Index(child, n, "vertex")

		lca.depth[child] = lca.depth[v] + 1
		lca.first[child] = len(tour)
		tour = append(tour, visit{lca.depth[child], child})

		stack = append(stack, frame{vertex: child, parent: v})
	}

	lca.tour = sparsetable.New(tour, minVisit, noVisit)

	return lca
}

// LCA returns the lowest common ancestor of u and v.
func (lca *LCA) LCA(u, v int) int {
	anc, _ := lca.LCADistance(u, v)
	return anc
}

// Distance returns the number of edges on the path between u and v.
func (lca *LCA) Distance(u, v int) int {
	_, dist := lca.LCADistance(u, v)
	return dist
}

// LCADistance returns both the lowest common ancestor and the distance.
func (lca *LCA) LCADistance(u, v int) (int, int) {
	contract.Index(u, len(lca.first), "u")
	contract.Index(v, len(lca.first), "v")

	l, r := lca.first[u], lca.first[v]
	if l > r {
		l, r = r, l
	}

	anc := lca.tour.Query(l, r).vertex

	return anc, lca.depth[u] + lca.depth[v] - 2*lca.depth[anc]
}

// Depth returns the distance from the root to v.
func (lca *LCA) Depth(v int) int {
	contract.Index(v, len(lca.depth), "v")
	return lca.depth[v]
}

// Len returns the number of vertices.
func (lca *LCA) Len() int {
	return len(lca.depth)
}
