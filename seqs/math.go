package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var min T
	first := true
	for v := range IfAny(seq) {
		if first || v < min {
			min = v
			first = false
		}
	}
	return min, !first
}

func Max[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var max T
	first := true
	for v := range IfAny(seq) {
		if first || v > max {
			max = v
			first = false
		}
	}
	return max, !first
}

// MinOrZero returns the smallest element, or the zero value when seq is empty or nil.
func MinOrZero[T constraints.Ordered](seq iter.Seq[T]) T {
	v, _ := Min(seq)
	return v
}

// MaxOrZero returns the largest element, or the zero value when seq is empty or nil.
func MaxOrZero[T constraints.Ordered](seq iter.Seq[T]) T {
	v, _ := Max(seq)
	return v
}
