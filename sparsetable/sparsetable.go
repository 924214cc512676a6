// Package sparsetable implements an immutable sparse table: O(n log n)
// preprocessing, O(1) range queries for idempotent operators (min, max, gcd,
// and, or) and O(log n) ordered queries for any associative operator.
package sparsetable

import (
	"math/bits"

	"github.com/hideo55/go-popcount"

	"github.com/aglyzov/go-cp/contract"
)

// Table keeps, in row i, the aggregate of every 2^i long window: rows[i][j]
// folds src[j : j+2^i].
type Table[V any] struct {
	rows [][]V
	op   func(V, V) V
	nil  V
	size int
}

// New builds a table over a copy of src.
func New[V any](src []V, op func(V, V) V, nilVal V) *Table[V] {
	var (
		size = len(src)
		rows = make([][]V, bits.Len(uint(size)))
	)

	if size > 0 {
		rows[0] = append(make([]V, 0, size), src...)
	}

	for i := 1; i < len(rows); i++ {
		var (
			prev = rows[i-1]
			half = 1 << (i - 1)
			row  = make([]V, size-(1<<i)+1)
		)

		for j := range row {
			row[j] = op(prev[j], prev[j+half])
		}

		rows[i] = row
	}

	return &Table[V]{
		rows: rows,
		op:   op,
		nil:  nilVal,
		size: size,
	}
}

func (t *Table[V]) Len() int {
	return t.size
}

// Query returns the aggregate of [l, r] combining two possibly overlapping
// blocks, so it is only correct when op(x, x) == x.
func (t *Table[V]) Query(l, r int) V {
	contract.Range(l, r, t.size)

	lg := bits.Len(uint(r-l+1)) - 1

	return t.op(t.rows[lg][l], t.rows[lg][r-(1<<lg)+1])
}

// QueryForward folds step elements starting at idx in increasing index
// order. The blocks it combines are disjoint, so any associative op works.
func (t *Table[V]) QueryForward(idx, step int) V {
	t.checkWindow(idx, step)

	acc := t.nil

	for step > 0 {
		i := bits.Len(uint(step)) - 1
		acc = t.op(acc, t.rows[i][idx])
		idx += 1 << i
		step &^= 1 << i
	}

	return acc
}

// Block is a power-of-two window src[Start : Start+1<<Row].
type Block struct {
	Row   int
	Start int
}

// Blocks returns the disjoint windows QueryForward(idx, step) combines, in
// order. There is one block per set bit of step.
func (t *Table[V]) Blocks(idx, step int) []Block {
	t.checkWindow(idx, step)

	blocks := make([]Block, popcount.Count(uint64(step)))

	for i := range blocks {
		row := bits.Len(uint(step)) - 1
		blocks[i] = Block{Row: row, Start: idx}
		idx += 1 << row
		step &^= 1 << row
	}

	return blocks
}

// At returns the aggregate of the window described by b.
func (t *Table[V]) At(b Block) V {
	if contract.Enabled {
		contract.Requiref(b.Row >= 0 && b.Row < len(t.rows) && b.Start >= 0 && b.Start < len(t.rows[b.Row]),
			contract.ErrOutOfRange, "block %+v is outside the table", b)
	}
	return t.rows[b.Row][b.Start]
}

func (t *Table[V]) checkWindow(idx, step int) {
	if contract.Enabled {
		contract.Requiref(idx >= 0 && step >= 0 && idx+step <= t.size, contract.ErrOutOfRange,
			"window [%d, %d) is outside [0, %d)", idx, idx+step, t.size)
	}
}
