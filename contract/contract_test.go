package contract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolation_Error(t *testing.T) {
	t.Parallel()

	v := &Violation{Err: ErrOutOfRange, Msg: "pos 5"}

	assert.Equal(t, "contract violation: pos 5: position out of range", v.Error())
	assert.True(t, errors.Is(v, ErrOutOfRange))
	assert.False(t, errors.Is(v, ErrExhausted))

	bare := &Violation{Msg: "oops"}
	assert.Equal(t, "contract violation: oops", bare.Error())
	assert.Nil(t, bare.Unwrap())
}

func TestFail(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		require.NotNil(t, r)

		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrExhausted)

		var v *Violation
		require.ErrorAs(t, err, &v)
		assert.Equal(t, "pool", v.Msg)
	}()

	Fail(ErrExhausted, "pool")
}

func TestRequire_Satisfied(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		Require(true, ErrOutOfRange, "never")
		Requiref(true, ErrOutOfRange, "never %d", 1)
		Index(0, 1, "pos")
		Range(0, 0, 1)
		Range(2, 5, 6)
	})
}
