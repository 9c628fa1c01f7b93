package seqs

import (
	"iter"
	"slices"
)

// ToSliceOrNil collects seq into a slice, returning nil instead of an empty slice.
func ToSliceOrNil[T any](seq iter.Seq[T]) []T {
	s := slices.Collect(IfAny(seq))
	if len(s) == 0 {
		return nil
	}
	return s
}

// Single returns a sequence holding only v.
func Single[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(v)
	}
}
