// Package monoid provides ready-made associative operators and lazy-tag
// helpers for the range-query containers of this module.
//
// Every container takes its operator as a plain function value, so anything
// with the signature func(V, V) V works; the helpers here only cover the
// usual suspects.
package monoid

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](a, b T) T {
	return a + b
}

func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func Max[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}

func Xor[T constraints.Integer](a, b T) T {
	return a ^ b
}

// GCD treats 0 as the identity: GCD(0, x) == |x|.
func GCD[T constraints.Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Concat is a non-commutative operator; the result never aliases a or b.
func Concat[E any](a, b []E) []E {
	res := make([]E, 0, len(a)+len(b))
	res = append(res, a...)
	return append(res, b...)
}

// MaxOf returns the largest value of an integer type (the Min identity).
func MaxOf[T constraints.Integer]() T {
	var zero T
	if ^zero < zero {
		width := unsafe.Sizeof(zero) * 8
		return T(uint64(1)<<(width-1) - 1)
	}
	return ^zero
}

// MinOf returns the smallest value of an integer type (the Max identity).
func MinOf[T constraints.Integer]() T {
	var zero T
	if ^zero < zero {
		return -MaxOf[T]() - 1
	}
	return zero
}
