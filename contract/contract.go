// Package contract implements the debug-only precondition checks shared by all
// containers of this module.
//
// Checks are compiled in only when building with the `cpdebug` tag:
//
//	go test -tags cpdebug ./...
//
// Without the tag Enabled is a false constant, every Require call inlines to
// nothing and a violated precondition is undefined behavior (usually an index
// out of range panic from the runtime, sometimes a silently wrong answer).
package contract

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange    = errors.New("position out of range")
	ErrInvertedRange = errors.New("inverted range")
	ErrExhausted     = errors.New("allocator exhausted")
	ErrBadRef        = errors.New("invalid node reference")
	ErrNotReversible = errors.New("treap is not reversible")
	ErrForeignTree   = errors.New("trees use different allocators")
	ErrNotFound      = errors.New("value was never inserted")
)

// Violation is the value passed to panic when a check fails.
type Violation struct {
	Err error
	Msg string
}

func (v *Violation) Error() string {
	if v.Err == nil {
		return "contract violation: " + v.Msg
	}
	return "contract violation: " + v.Msg + ": " + v.Err.Error()
}

func (v *Violation) Unwrap() error {
	return v.Err
}

// Require panics with a *Violation when checks are enabled and cond is false.
func Require(cond bool, err error, msg string) {
	if Enabled && !cond {
		panic(&Violation{Err: err, Msg: msg})
	}
}

// Requiref is Require with a formatted message.
func Requiref(cond bool, err error, format string, args ...any) {
	if Enabled && !cond {
		panic(&Violation{Err: err, Msg: fmt.Sprintf(format, args...)})
	}
}

// Fail panics unconditionally. It is meant for conditions that cannot be
// ignored even in release builds.
func Fail(err error, msg string) {
	panic(&Violation{Err: err, Msg: msg})
}

// Index checks 0 <= pos < size.
func Index(pos, size int, what string) {
	if Enabled && (pos < 0 || pos >= size) {
		panic(&Violation{Err: ErrOutOfRange, Msg: fmt.Sprintf("%s %d is outside [0, %d)", what, pos, size)})
	}
}

// Range checks 0 <= l <= r < size.
func Range(l, r, size int) {
	if !Enabled {
		return
	}
	if l > r {
		panic(&Violation{Err: ErrInvertedRange, Msg: fmt.Sprintf("left %d is greater than right %d", l, r)})
	}
	if l < 0 || r >= size {
		panic(&Violation{Err: ErrOutOfRange, Msg: fmt.Sprintf("range [%d, %d] is outside [0, %d)", l, r, size)})
	}
}
