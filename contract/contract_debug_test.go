//go:build cpdebug

package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func violationOf(t *testing.T, f func()) (v *Violation) {
	t.Helper()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		var ok bool
		if v, ok = r.(*Violation); !ok {
			t.Fatalf("unexpected panic value %#v", r)
		}
	}()

	f()

	return nil
}

func TestRequire_Violated(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name   string
		Call   func()
		ExpErr error
	}{
		{"Require", func() { Require(false, ErrBadRef, "bad") }, ErrBadRef},
		{"Requiref", func() { Requiref(false, ErrNotReversible, "at %d", 3) }, ErrNotReversible},
		{"Index/negative", func() { Index(-1, 4, "pos") }, ErrOutOfRange},
		{"Index/past-end", func() { Index(4, 4, "pos") }, ErrOutOfRange},
		{"Range/inverted", func() { Range(3, 2, 4) }, ErrInvertedRange},
		{"Range/past-end", func() { Range(1, 4, 4) }, ErrOutOfRange},
		{"Range/negative", func() { Range(-1, 2, 4) }, ErrOutOfRange},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			v := violationOf(t, tcase.Call)

			assert.ErrorIs(t, v, tcase.ExpErr)
		})
	}
}

func TestEnabled(t *testing.T) {
	assert.True(t, Enabled)
}
