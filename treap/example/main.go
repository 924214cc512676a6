package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/aglyzov/go-cp/alloc"
	"github.com/aglyzov/go-cp/monoid"
	"github.com/aglyzov/go-cp/treap"
)

func main() {
	pool := alloc.NewFixed[treap.Node[int]](16)

	t := treap.From(monoid.Sum[int], []int{10, 20, 30, 40},
		treap.WithAllocator[int](pool),
		treap.WithRand[int](rand.New(rand.NewPCG(1, 2))),
		treap.Reversible[int](),
	)

	t.Insert(2, 99)
	fmt.Println("insert:", t.Slice(), "sum:", t.Query(0, t.Len()-1))

	t.Reverse(1, 3)
	fmt.Println("reverse [1,3]:", t.Slice())

	t.EraseRange(0, 1)
	fmt.Println("erase [0,1]:", t.Slice(), "pool:", pool.Len(), "/", pool.Cap())

	left, right := t.Split(1)
	fmt.Println("split:", left.Slice(), right.Slice())

	right.Join(left)
	fmt.Println("join:", right.Slice())

	fmt.Println(right.Dump())
}
