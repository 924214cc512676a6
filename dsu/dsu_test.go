package dsu

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario(t *testing.T) {
	t.Parallel()

	ds := New(5)

	assert.True(t, ds.Join(0, 1))
	assert.True(t, ds.Join(1, 2))

	assert.Equal(t, ds.Root(0), ds.Root(2))
	assert.Equal(t, 3, ds.Count(ds.Root(0)))
	assert.NotEqual(t, ds.Root(0), ds.Root(3))
	assert.Equal(t, 1, ds.Count(ds.Root(3)))
}

func TestNew(t *testing.T) {
	t.Parallel()

	ds := New(4)

	assert.Equal(t, 4, ds.Len())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, ds.Root(i))
		assert.Equal(t, 1, ds.Count(i))
	}

	assert.Equal(t, 0, New(0).Len())
}

func TestJoin_AlreadyJoined(t *testing.T) {
	t.Parallel()

	ds := New(3)

	require.True(t, ds.Join(0, 1))
	assert.False(t, ds.Join(1, 0))
	assert.False(t, ds.Join(0, 0))
	assert.Equal(t, 2, ds.Count(ds.Root(1)))
}

func TestJoin_BySize(t *testing.T) {
	t.Parallel()

	ds := New(6)

	ds.Join(0, 1)
	ds.Join(0, 2)
	ds.Join(0, 3)
	big := ds.Root(0)

	// a singleton goes below the big set no matter the argument order
	ds.Join(4, 0)
	assert.Equal(t, big, ds.Root(4))
	assert.Equal(t, 5, ds.Count(big))
}

func TestMakeRoot(t *testing.T) {
	t.Parallel()

	ds := New(5)

	ds.Join(0, 1)
	ds.Join(2, 1)
	ds.Join(3, 4)

	ds.MakeRoot(2)

	for _, x := range []int{0, 1, 2} {
		assert.Equal(t, 2, ds.Root(x))
	}
	assert.Equal(t, 3, ds.Count(2))

	ds.MakeRoot(2) // already the root
	assert.Equal(t, 3, ds.Count(2))

	ds.Join(3, 2)
	assert.Equal(t, 2, ds.Root(4))
	assert.Equal(t, 5, ds.Count(2))
}

func TestSame(t *testing.T) {
	t.Parallel()

	ds := New(4)
	ds.Join(0, 3)

	assert.True(t, ds.Same(3, 0))
	assert.False(t, ds.Same(1, 2))
	assert.True(t, ds.Same(1, 1))
}

// TestRandom_AgainstLabels compares with a naive label-per-element model.
func TestRandom_AgainstLabels(t *testing.T) {
	t.Parallel()

	const n = 60

	var (
		fake  = gofakeit.New(1234567890)
		ds    = New(n)
		label = make([]int, n)
	)

	for i := range label {
		label[i] = i
	}

	for step := 0; step < 2000; step++ {
		x, y := fake.Number(0, n-1), fake.Number(0, n-1)

		switch fake.Number(0, 2) {
		case 0:
			lx, ly := label[x], label[y]
			exp := lx != ly
			for i := range label {
				if label[i] == ly {
					label[i] = lx
				}
			}
			require.Equal(t, exp, ds.Join(x, y), "step %d", step)
		case 1:
			ds.MakeRoot(x)
			require.Equal(t, x, ds.Root(x))
		default:
			require.Equal(t, label[x] == label[y], ds.Same(x, y), "step %d", step)

			size := 0
			for _, l := range label {
				if l == label[x] {
					size++
				}
			}
			require.Equal(t, size, ds.Count(ds.Root(x)))
		}
	}
}
