package monoid

// AddApply applies "add tag to every element" to a sum aggregate over [l, r].
func AddApply[T Number](v, tag T, l, r int) T {
	return v + tag*T(r-l+1)
}

// AddCompose stacks two pending additions.
func AddCompose[T Number](older, newer T) T {
	return older + newer
}

// ShiftApply applies "add tag to every element" to a min or max aggregate,
// which moves by tag regardless of the range length.
func ShiftApply[T Number](v, tag T, _, _ int) T {
	return v + tag
}

// Assign is a range-assignment tag. The zero value means "no assignment".
type Assign[T comparable] struct {
	Val T
	Set bool
}

// AssignTo returns a tag assigning val.
func AssignTo[T comparable](val T) Assign[T] {
	return Assign[T]{Val: val, Set: true}
}

// AssignCompose lets the newer assignment win.
func AssignCompose[T comparable](older, newer Assign[T]) Assign[T] {
	if newer.Set {
		return newer
	}
	return older
}

// AssignSumApply applies a range assignment to a sum aggregate.
func AssignSumApply[T Number](v T, tag Assign[T], l, r int) T {
	if !tag.Set {
		return v
	}
	return tag.Val * T(r-l+1)
}

// AssignPickApply applies a range assignment to a min, max or any other
// aggregate for which a block of equal elements folds to that element.
func AssignPickApply[T Number](v T, tag Assign[T], _, _ int) T {
	if !tag.Set {
		return v
	}
	return tag.Val
}
