package seqs

import (
	"iter"

	"github.com/eapache/queue"
)

func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if seq == nil || n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if seq == nil {
			return
		}
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// SkipLast yields every element except the last n.
// It holds back n elements at a time, so it can be used on sequences of unknown length.
func SkipLast[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return IfAny(seq)
	}
	return func(yield func(T) bool) {
		if seq == nil {
			return
		}
		held := queue.New()
		for v := range seq {
			held.Add(v)
			if held.Length() <= n {
				continue
			}
			if !yield(held.Remove().(T)) {
				return
			}
		}
	}
}

// TakeWhile continues to yield elements from the sequence
// as long as the predicate returns true.
func TakeWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	if predicate == nil {
		panic(nilArg("seqs.TakeWhile", "predicate"))
	}
	return func(yield func(T) bool) {
		if seq == nil {
			return
		}
		for v := range seq {
			if !predicate(v) {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// DropWhile skips elements from the sequence
// as long as the predicate returns true, then yields the rest.
func DropWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	if predicate == nil {
		panic(nilArg("seqs.DropWhile", "predicate"))
	}
	return func(yield func(T) bool) {
		if seq == nil {
			return
		}
		dropping := true
		for v := range seq {
			if dropping {
				if predicate(v) {
					continue
				}
				dropping = false
			}
			if !yield(v) {
				return
			}
		}
	}
}
