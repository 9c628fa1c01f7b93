package seqs

import "iter"

// ChunkBefore splits seq into contiguous runs, starting a new run right before every
// element that satisfies predicate. The first element never causes a split.
//
// Each yielded slice is freshly allocated and may be retained by the caller.
// A nil seq yields nothing. ChunkBefore panics if predicate is nil.
func ChunkBefore[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[[]T] {
	if predicate == nil {
		panic(nilArg("seqs.ChunkBefore", "predicate"))
	}
	return func(yield func([]T) bool) {
		if seq == nil {
			return
		}
		var group []T
		for v := range seq {
			if len(group) > 0 && predicate(v) {
				if !yield(group) {
					return
				}
				group = nil
			}
			group = append(group, v)
		}
		if len(group) > 0 {
			yield(group)
		}
	}
}

// ChunkAfter splits seq into contiguous runs, closing the current run right after every
// element that satisfies predicate.
//
// A nil seq yields nothing. ChunkAfter panics if predicate is nil.
func ChunkAfter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[[]T] {
	if predicate == nil {
		panic(nilArg("seqs.ChunkAfter", "predicate"))
	}
	return func(yield func([]T) bool) {
		if seq == nil {
			return
		}
		var group []T
		for v := range seq {
			group = append(group, v)
			if predicate(v) {
				if !yield(group) {
					return
				}
				group = nil
			}
		}
		if len(group) > 0 {
			yield(group)
		}
	}
}

// SplitAt splits seq after every boundary element (one that satisfies predicate) once the
// current run holds at least two elements. The boundary ends one run and also opens the
// next one, so boundaries are shared between neighbouring runs.
//
// Every yielded run has at least two elements, with one exception: an input of exactly
// one element is passed through as a single run. Any other trailing run of length one
// (a lone boundary) is dropped.
//
// For example, with predicate v == 0:
//
//	[1 0 2 3 0 4]  =>  [1 0] [0 2 3 0] [0 4]
//	[7]            =>  [7]
//
// A nil seq yields nothing. SplitAt panics if predicate is nil.
func SplitAt[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[[]T] {
	if predicate == nil {
		panic(nilArg("seqs.SplitAt", "predicate"))
	}
	return func(yield func([]T) bool) {
		if seq == nil {
			return
		}
		var group []T
		total := 0
		for v := range seq {
			total++
			group = append(group, v)
			if len(group) > 1 && predicate(v) {
				if !yield(group) {
					return
				}
				group = []T{v}
			}
		}
		if len(group) > 1 || total == 1 {
			yield(group)
		}
	}
}

// SplitAtChange splits seq into runs of adjacent elements sharing the same key.
// The first element always opens the first run.
//
// Example: [1 1 2 1] keyed by identity => [1 1] [2] [1]
//
// A nil seq yields nothing. SplitAtChange panics if key is nil.
func SplitAtChange[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[[]T] {
	if key == nil {
		panic(nilArg("seqs.SplitAtChange", "key"))
	}
	return splitAtChange(seq, key, func(a, b K) bool { return a == b })
}

// SplitAtChangeFunc is like SplitAtChange but compares keys with equal,
// for keys that are not comparable with ==.
func SplitAtChangeFunc[T, K any](seq iter.Seq[T], key func(T) K, equal func(a, b K) bool) iter.Seq[[]T] {
	if key == nil {
		panic(nilArg("seqs.SplitAtChangeFunc", "key"))
	}
	if equal == nil {
		panic(nilArg("seqs.SplitAtChangeFunc", "equal"))
	}
	return splitAtChange(seq, key, equal)
}

func splitAtChange[T, K any](seq iter.Seq[T], key func(T) K, equal func(a, b K) bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if seq == nil {
			return
		}
		var (
			group []T
			last  K
		)
		for v := range seq {
			current := key(v)
			if len(group) > 0 && !equal(current, last) {
				if !yield(group) {
					return
				}
				group = nil
			}
			group = append(group, v)
			last = current
		}
		if len(group) > 0 {
			yield(group)
		}
	}
}

// Chunked splits seq into runs of non-boundary content delimited by boundary elements
// (those satisfying predicate). A run is closed by the first boundary that follows some
// content; that boundary also opens the next run. Adjacent boundaries with no content
// between them collapse onto the one closest to the content, so every run is contiguous.
// Of a run of adjacent boundaries, the last one is kept and opens the next group:
// keyed on the number, {a,1} {b,1} {c,2} {d,1} gives [b c d], not [a c d].
//
// A leading run that does not start on a boundary and a trailing run that does not end on
// one are still yielded. Use Framed to keep only runs bounded on both ends.
//
// With predicate v == 1:
//
//	[2 1 1 1 2 1]  =>  [2 1] [1 2 1]
//	[1 1 2 1 1 2]  =>  [1 2 1] [1 2]
//
// A nil seq yields nothing. Chunked panics if predicate is nil.
func Chunked[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[[]T] {
	if predicate == nil {
		panic(nilArg("seqs.Chunked", "predicate"))
	}
	return frames(seq, predicate, false)
}

// Framed is Chunked restricted to runs whose first and last elements are both boundaries.
// Partial leading and trailing runs are dropped.
//
// With predicate v == 1:
//
//	[1 1 2 1]  =>  [1 2 1]
//	[1 2]      =>  (nothing)
//
// A nil seq yields nothing. Framed panics if predicate is nil.
func Framed[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[[]T] {
	if predicate == nil {
		panic(nilArg("seqs.Framed", "predicate"))
	}
	return frames(seq, predicate, true)
}

// frames evaluates predicate exactly once per element.
func frames[T any](seq iter.Seq[T], predicate func(T) bool, framedOnly bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if seq == nil {
			return
		}
		var (
			group      []T
			hasContent bool
			// the current run opened on a boundary
			opened bool
		)
		for v := range seq {
			if !predicate(v) {
				group = append(group, v)
				hasContent = true
				continue
			}
			if !hasContent {
				// nothing yielded from group yet, safe to reuse
				group = append(group[:0], v)
				opened = true
				continue
			}
			group = append(group, v)
			if opened || !framedOnly {
				if !yield(group) {
					return
				}
			}
			group = []T{v}
			hasContent = false
			opened = true
		}
		if hasContent && !framedOnly {
			yield(group)
		}
	}
}
