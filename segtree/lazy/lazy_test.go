package lazy

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aglyzov/go-cp/monoid"
)

func sumAdd() Ops[int, int] {
	return Ops[int, int]{
		Op:      monoid.Sum[int],
		Nil:     0,
		Apply:   monoid.AddApply[int],
		Compose: monoid.AddCompose[int],
		Empty:   0,
	}
}

func minAdd() Ops[int, int] {
	return Ops[int, int]{
		Op:      monoid.Min[int],
		Nil:     monoid.MaxOf[int](),
		Apply:   monoid.ShiftApply[int],
		Compose: monoid.AddCompose[int],
		Empty:   0,
	}
}

func sumAssign() Ops[int, monoid.Assign[int]] {
	return Ops[int, monoid.Assign[int]]{
		Op:      monoid.Sum[int],
		Nil:     0,
		Apply:   monoid.AssignSumApply[int],
		Compose: monoid.AssignCompose[int],
	}
}

func TestScenario_RangeAdd(t *testing.T) {
	t.Parallel()

	st := NewFrom([]int{1, 2, 3, 4, 5}, sumAdd())

	st.Update(1, 3, 10)

	assert.Equal(t, 45, st.Query(0, 4))
	assert.Equal(t, 39, st.Query(1, 3))
	assert.Equal(t, []int{1, 12, 13, 14, 5}, st.Values())
}

func TestNew(t *testing.T) {
	t.Parallel()

	st := New(6, minAdd())

	assert.Equal(t, 6, st.Len())
	assert.Equal(t, monoid.MaxOf[int](), st.Query(0, 5))

	for i := 0; i < 6; i++ {
		st.Set(i, i*i)
	}
	st.Update(0, 5, -3)

	assert.Equal(t, -3, st.Query(0, 5))
	assert.Equal(t, 6, st.Query(3, 4))
	assert.Equal(t, 22, st.Get(5))
}

func TestPropagate_Idempotent(t *testing.T) {
	t.Parallel()

	st := NewFrom([]int{1, 2, 3, 4, 5, 6, 7, 8}, sumAdd())
	st.Update(0, 7, 5) // the tag stays at the root

	require.Equal(t, 5, st.tags[0])

	st.propagate(0, 0, 7)

	var (
		vals = append([]int(nil), st.vals...)
		tags = append([]int(nil), st.tags...)
	)

	assert.Equal(t, 0, st.tags[0])

	st.propagate(0, 0, 7)

	assert.Equal(t, vals, st.vals)
	assert.Equal(t, tags, st.tags)
	assert.Equal(t, 76, st.Query(0, 7))
}

func TestTagComposeOrder(t *testing.T) {
	t.Parallel()

	st := NewFrom([]int{1, 1, 1, 1, 1, 1}, sumAssign())

	st.Update(0, 5, monoid.AssignTo(2))
	st.Update(2, 3, monoid.AssignTo(7)) // newer wins inside [2, 3]
	st.Update(0, 5, monoid.Assign[int]{})

	assert.Equal(t, []int{2, 2, 7, 7, 2, 2}, st.Values())
	assert.Equal(t, 22, st.Query(0, 5))

	st.Update(0, 2, monoid.AssignTo(0))
	assert.Equal(t, 11, st.Query(0, 5))
	assert.Equal(t, 7, st.Get(3))
}

func TestSet_AfterPendingTags(t *testing.T) {
	t.Parallel()

	st := NewFrom([]int{0, 0, 0, 0, 0}, sumAdd())

	st.Update(0, 4, 3)
	st.Set(2, 100)
	st.Update(1, 2, 1)

	assert.Equal(t, []int{3, 4, 101, 3, 3}, st.Values())
	assert.Equal(t, 114, st.Query(0, 4))
}

func TestNoOverlapLeavesStorage(t *testing.T) {
	t.Parallel()

	st := NewFrom([]int{4, 5, 6}, sumAdd())

	vals := append([]int(nil), st.vals...)
	tags := append([]int(nil), st.tags...)

	assert.Equal(t, 0, st.query(1, 2, 2, 0, 0)) // slot 2 covers [0,0]
	st.update(1, 2, 9, 2, 0, 0)

	assert.Equal(t, vals, st.vals)
	assert.Equal(t, tags, st.tags)
}

// TestRandom_AgainstSlice runs random scripts against a plain slice.
func TestRandom_AgainstSlice(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{1, 2, 3, 1234567890} {
		seed := seed

		t.Run(gofakeit.New(seed).Word(), func(t *testing.T) {
			t.Parallel()

			var (
				fake  = gofakeit.New(seed)
				n     = fake.Number(1, 50)
				model = make([]int, n)
			)

			for i := range model {
				model[i] = fake.Number(-100, 100)
			}

			var (
				sum = NewFrom(model, sumAdd())
				mn  = NewFrom(model, minAdd())
			)

			for step := 0; step < 1000; step++ {
				l := fake.Number(0, n-1)
				r := fake.Number(l, n-1)

				switch fake.Number(0, 2) {
				case 0:
					delta := fake.Number(-20, 20)
					for i := l; i <= r; i++ {
						model[i] += delta
					}
					sum.Update(l, r, delta)
					mn.Update(l, r, delta)
				case 1:
					val := fake.Number(-100, 100)
					model[l] = val
					sum.Set(l, val)
					mn.Set(l, val)
				default:
					expSum, expMin := 0, model[l]
					for _, v := range model[l : r+1] {
						expSum += v
						expMin = monoid.Min(expMin, v)
					}
					require.Equal(t, expSum, sum.Query(l, r), "step %d sum [%d,%d]", step, l, r)
					require.Equal(t, expMin, mn.Query(l, r), "step %d min [%d,%d]", step, l, r)
				}
			}

			assert.Equal(t, model, sum.Values())
			assert.Equal(t, model, mn.Values())
		})
	}
}
