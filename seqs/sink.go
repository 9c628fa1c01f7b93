package seqs

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/is"
)

func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range IfAny(seq) {
		return v, true
	}
	var zero T
	return zero, false
}

func Last[T any](seq iter.Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range IfAny(seq) {
		last = v
		found = true
	}
	return last, found
}

// FirstNonZero returns the first projection of an element that is not the zero value of P.
func FirstNonZero[T any, P comparable](seq iter.Seq[T], project func(T) P) (P, bool) {
	if project == nil {
		panic(nilArg("seqs.FirstNonZero", "project"))
	}
	for v := range IfAny(seq) {
		if p := project(v); !is.Zero(p) {
			return p, true
		}
	}
	var zero P
	return zero, false
}

// AnyItem reports whether seq has at least one element. A nil seq has none.
func AnyItem[T any](seq iter.Seq[T]) bool {
	for range IfAny(seq) {
		return true
	}
	return false
}

// AnyNonZero reports whether seq has at least one element that is not the zero value.
func AnyNonZero[T comparable](seq iter.Seq[T]) bool {
	for v := range IfAny(seq) {
		if !is.Zero(v) {
			return true
		}
	}
	return false
}

func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	if predicate == nil {
		panic(nilArg("seqs.Any", "predicate"))
	}
	for v := range IfAny(seq) {
		if predicate(v) {
			return true
		}
	}
	return false
}

func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	if predicate == nil {
		panic(nilArg("seqs.All", "predicate"))
	}
	for v := range IfAny(seq) {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Count returns the number of elements; 0 for a nil seq.
func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range IfAny(seq) {
		count++
	}
	return count
}

// CountOrZero is Count under the name used next to the other OrZero helpers.
func CountOrZero[T any](seq iter.Seq[T]) int {
	return Count(seq)
}

// CountEqualsOrSingle reports whether every sequence holding more than one element has
// the same length. Empty, nil and single-element sequences are ignored.
func CountEqualsOrSingle[T any](seqs ...iter.Seq[T]) bool {
	all := 0
	for _, seq := range seqs {
		n := Count(seq)
		if n <= 1 {
			continue
		}
		if all == 0 {
			all = n
		} else if n != all {
			return false
		}
	}
	return true
}

// Indexes yields 0..n-1 where n is the length of the longest sequence.
// Every sequence is enumerated once, when Indexes is ranged over.
func Indexes[T any](seqs ...iter.Seq[T]) iter.Seq[int] {
	return func(yield func(int) bool) {
		longest := 0
		for _, seq := range seqs {
			longest = max(longest, Count(seq))
		}
		for i := range longest {
			if !yield(i) {
				return
			}
		}
	}
}

// ElementAtOrSingle returns the element at index, except that a single-element sequence
// returns its only element for any index. It reports false when seq is empty or index is
// out of range.
func ElementAtOrSingle[T any](seq iter.Seq[T], index int) (T, bool) {
	var (
		zero   T
		single T
		count  int
	)
	for i, v := range Enumerate(seq) {
		if i == 0 {
			single = v
		}
		if i == index {
			return v, true
		}
		count++
	}
	if count == 1 {
		return single, true
	}
	return zero, false
}

// ContainsOrEmpty reports whether seq contains target. An empty or nil seq counts as
// containing everything.
func ContainsOrEmpty[T comparable](seq iter.Seq[T], target T) bool {
	empty := true
	for v := range IfAny(seq) {
		if v == target {
			return true
		}
		empty = false
	}
	return empty
}

// SetEqualOrNil reports whether a and b hold the same set of elements, ignoring order and
// duplicates. A nil a is equal to anything.
func SetEqualOrNil[T comparable](a, b iter.Seq[T]) bool {
	if a == nil {
		return true
	}
	left := make(map[T]struct{})
	for v := range a {
		left[v] = struct{}{}
	}
	right := make(map[T]struct{}, len(left))
	for v := range IfAny(b) {
		if _, ok := left[v]; !ok {
			return false
		}
		right[v] = struct{}{}
	}
	return len(left) == len(right)
}

// SequenceEqualOrNil reports whether a and b yield equal elements in the same order.
// Two nil sequences are equal; a nil and a non-nil sequence are not.
func SequenceEqualOrNil[T comparable](a, b iter.Seq[T]) bool {
	return sequenceEqual(a, b, func(x, y T) bool { return x == y })
}

// SequenceEqualOrNilFunc is like SequenceEqualOrNil but compares with equal.
func SequenceEqualOrNilFunc[T any](a, b iter.Seq[T], equal func(x, y T) bool) bool {
	if equal == nil {
		panic(nilArg("seqs.SequenceEqualOrNilFunc", "equal"))
	}
	return sequenceEqual(a, b, equal)
}

func sequenceEqual[T any](a, b iter.Seq[T], equal func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	nextB, stopB := iter.Pull(b)
	defer stopB()
	for va := range a {
		vb, ok := nextB()
		if !ok || !equal(va, vb) {
			return false
		}
	}
	_, more := nextB()
	return !more
}
