package seqs

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/is"
)

// IfAny returns seq, or an empty sequence when seq is nil, so the result can always be ranged over.
func IfAny[T any](seq iter.Seq[T]) iter.Seq[T] {
	if seq == nil {
		return func(func(T) bool) {}
	}
	return seq
}

// Filter applies predicate to each element of seq, yielding only those that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	if predicate == nil {
		panic(nilArg("seqs.Filter", "predicate"))
	}
	return func(yield func(T) bool) {
		if seq == nil {
			return
		}
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// NonZero drops every element equal to the zero value of T.
func NonZero[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return Filter(seq, func(v T) bool { return !is.Zero(v) })
}

// IfAnyNonZero yields every element of seq, zero values included, but only when at
// least one element is non-zero. Otherwise it yields nothing.
//
// seq is enumerated twice, so it must be replayable.
func IfAnyNonZero[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !AnyNonZero(seq) {
			return
		}
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// Map applies transform to each element of seq, yielding the transformed elements.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	if transform == nil {
		panic(nilArg("seqs.Map", "transform"))
	}
	return func(yield func(R) bool) {
		if seq == nil {
			return
		}
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Reduce aggregates the elements of seq using the reducer function, starting from the initial value.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	if reducer == nil {
		panic(nilArg("seqs.Reduce", "reducer"))
	}
	acc := initial
	for v := range IfAny(seq) {
		acc = reducer(acc, v)
	}
	return acc
}
