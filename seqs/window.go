package seqs

import (
	"iter"

	"github.com/eapache/queue"
	"github.com/go-softwarelab/common/pkg/optional"
)

// Paired yields fn(a, b) for every pair of adjacent elements.
// Sequences shorter than two elements yield nothing.
//
// Paired panics if fn is nil.
func Paired[T, R any](seq iter.Seq[T], fn func(a, b T) R) iter.Seq[R] {
	if fn == nil {
		panic(nilArg("seqs.Paired", "fn"))
	}
	return func(yield func(R) bool) {
		if seq == nil {
			return
		}
		var (
			prev T
			has  bool
		)
		for v := range seq {
			if has {
				if !yield(fn(prev, v)) {
					return
				}
			}
			prev, has = v, true
		}
	}
}

// ToPairs is an alias of Paired.
func ToPairs[T, R any](seq iter.Seq[T], fn func(a, b T) R) iter.Seq[R] {
	if fn == nil {
		panic(nilArg("seqs.ToPairs", "fn"))
	}
	return Paired(seq, fn)
}

// ToTriples yields fn(a, b, c) for every three adjacent elements.
// Sequences shorter than three elements yield nothing.
//
// ToTriples panics if fn is nil.
func ToTriples[T, R any](seq iter.Seq[T], fn func(a, b, c T) R) iter.Seq[R] {
	if fn == nil {
		panic(nilArg("seqs.ToTriples", "fn"))
	}
	return func(yield func(R) bool) {
		for w := range Window(seq, 3, 1) {
			if !yield(fn(w[0], w[1], w[2])) {
				return
			}
		}
	}
}

// Consecutive yields one result per element, pairing it with the element that follows.
// The last element is paired with None, so callers can react to the end of the
// sequence without special-casing it:
//
//	[a b c]  =>  fn(a, Some(b)), fn(b, Some(c)), fn(c, None)
//
// Consecutive panics if fn is nil.
func Consecutive[T, R any](seq iter.Seq[T], fn func(current T, next optional.Value[T]) R) iter.Seq[R] {
	if fn == nil {
		panic(nilArg("seqs.Consecutive", "fn"))
	}
	return func(yield func(R) bool) {
		if seq == nil {
			return
		}
		var (
			prev T
			has  bool
		)
		for v := range seq {
			if has {
				if !yield(fn(prev, optional.Some(v))) {
					return
				}
			}
			prev, has = v, true
		}
		if has {
			yield(fn(prev, optional.None[T]()))
		}
	}
}

// ToConsecutivePairs yields n+1 results for n elements: the first element paired with a
// leading None, every adjacent pair, and the last element paired with a trailing None.
//
//	[a b]  =>  fn(None, Some(a)), fn(Some(a), Some(b)), fn(Some(b), None)
//
// Empty input yields nothing. ToConsecutivePairs panics if fn is nil.
func ToConsecutivePairs[T, R any](seq iter.Seq[T], fn func(prev, current optional.Value[T]) R) iter.Seq[R] {
	if fn == nil {
		panic(nilArg("seqs.ToConsecutivePairs", "fn"))
	}
	return func(yield func(R) bool) {
		for w := range ConsecutiveWindows(seq, 2) {
			if !yield(fn(w[0], w[1])) {
				return
			}
		}
	}
}

// ToConsecutiveTriples yields n+2 results for n elements, padding each end with two None slots.
//
//	[a]  =>  fn(None, None, Some(a)), fn(None, Some(a), None), fn(Some(a), None, None)
//
// Empty input yields nothing. ToConsecutiveTriples panics if fn is nil.
func ToConsecutiveTriples[T, R any](seq iter.Seq[T], fn func(a, b, c optional.Value[T]) R) iter.Seq[R] {
	if fn == nil {
		panic(nilArg("seqs.ToConsecutiveTriples", "fn"))
	}
	return func(yield func(R) bool) {
		for w := range ConsecutiveWindows(seq, 3) {
			if !yield(fn(w[0], w[1], w[2])) {
				return
			}
		}
	}
}

// ConsecutiveWindows slides a window of the given width over seq padded with width-1
// None slots on both sides, yielding n+width-1 windows for n elements.
// A window made only of padding is never yielded, so empty input yields nothing.
//
// Each window is a new slice. ConsecutiveWindows panics if width < 1.
func ConsecutiveWindows[T any](seq iter.Seq[T], width int) iter.Seq[[]optional.Value[T]] {
	if width < 1 {
		panic(&ArgumentError{Op: "seqs.ConsecutiveWindows", Arg: "width", Reason: "must be at least 1"})
	}
	return func(yield func([]optional.Value[T]) bool) {
		if seq == nil {
			return
		}
		// ring buffer holding the current window, oldest slot first
		ring := queue.New()
		for range width - 1 {
			ring.Add(optional.None[T]())
		}
		emit := func() bool {
			w := make([]optional.Value[T], width)
			for i := range w {
				w[i] = ring.Get(i).(optional.Value[T])
			}
			ring.Remove()
			return yield(w)
		}

		seen := false
		for v := range seq {
			seen = true
			ring.Add(optional.Some(v))
			if !emit() {
				return
			}
		}
		if !seen {
			return
		}
		for range width - 1 {
			ring.Add(optional.None[T]())
			if !emit() {
				return
			}
		}
	}
}
