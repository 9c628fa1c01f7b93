package sliceutil

import "seqkit/seqs"

// The functions in this file mirror the segmenters of package seqs for data that is
// already in memory. Groups are subslices of the input, so no element is copied.
// Every group is capped at its own length: appending to one group never overwrites
// the next one. Mutating an element inside a group does change the input.

func nilArg(op, arg string) *seqs.ArgumentError {
	return &seqs.ArgumentError{Op: op, Arg: arg, Reason: "cannot be nil"}
}

// ChunkBefore splits collection before every element that satisfies predicate.
// The first element never causes a split.
func ChunkBefore[T any](collection []T, predicate func(T) bool) [][]T {
	if predicate == nil {
		panic(nilArg("sliceutil.ChunkBefore", "predicate"))
	}
	if len(collection) == 0 {
		return [][]T{}
	}
	_ = collection[len(collection)-1]

	var res [][]T
	start := 0
	for i := 1; i < len(collection); i++ {
		if predicate(collection[i]) {
			res = append(res, collection[start:i:i])
			start = i
		}
	}
	return append(res, collection[start:len(collection):len(collection)])
}

// ChunkAfter splits collection after every element that satisfies predicate.
func ChunkAfter[T any](collection []T, predicate func(T) bool) [][]T {
	if predicate == nil {
		panic(nilArg("sliceutil.ChunkAfter", "predicate"))
	}
	if len(collection) == 0 {
		return [][]T{}
	}
	_ = collection[len(collection)-1]

	res := [][]T{}
	start := 0
	for i, v := range collection {
		if predicate(v) {
			res = append(res, collection[start:i+1:i+1])
			start = i + 1
		}
	}
	if start < len(collection) {
		res = append(res, collection[start:len(collection):len(collection)])
	}
	return res
}

// SplitAt is the slice form of seqs.SplitAt: a boundary closes the current group once it
// holds two elements and also opens the next one. A one-element collection is returned
// as a single group; any other trailing lone boundary is dropped.
func SplitAt[T any](collection []T, predicate func(T) bool) [][]T {
	if predicate == nil {
		panic(nilArg("sliceutil.SplitAt", "predicate"))
	}
	if len(collection) == 0 {
		return [][]T{}
	}
	if len(collection) == 1 {
		return [][]T{collection[:1:1]}
	}
	_ = collection[len(collection)-1]

	res := [][]T{}
	start := 0
	for i := 1; i < len(collection); i++ {
		if predicate(collection[i]) {
			res = append(res, collection[start:i+1:i+1])
			start = i
		}
	}
	if len(collection)-start > 1 {
		res = append(res, collection[start:len(collection):len(collection)])
	}
	return res
}

// SplitAtChange splits collection wherever the key of an element differs from the key of
// the element before it.
func SplitAtChange[T any, K comparable](collection []T, key func(T) K) [][]T {
	if key == nil {
		panic(nilArg("sliceutil.SplitAtChange", "key"))
	}
	if len(collection) == 0 {
		return [][]T{}
	}
	_ = collection[len(collection)-1]

	var res [][]T
	start := 0
	last := key(collection[0])
	for i := 1; i < len(collection); i++ {
		current := key(collection[i])
		if current != last {
			res = append(res, collection[start:i:i])
			start = i
		}
		last = current
	}
	return append(res, collection[start:len(collection):len(collection)])
}

// Chunked is the slice form of seqs.Chunked.
// Of adjacent boundaries only the last one is kept, so {a,1} {b,1} {c,2} {d,1} with
// boundary 1 gives [b c d].
func Chunked[T any](collection []T, predicate func(T) bool) [][]T {
	if predicate == nil {
		panic(nilArg("sliceutil.Chunked", "predicate"))
	}
	return frames(collection, predicate, false)
}

// Framed is the slice form of seqs.Framed: only groups that start and end on a boundary.
func Framed[T any](collection []T, predicate func(T) bool) [][]T {
	if predicate == nil {
		panic(nilArg("sliceutil.Framed", "predicate"))
	}
	return frames(collection, predicate, true)
}

func frames[T any](collection []T, predicate func(T) bool, framedOnly bool) [][]T {
	res := [][]T{}
	if len(collection) == 0 {
		return res
	}
	_ = collection[len(collection)-1]

	var (
		start      int
		hasContent bool
		opened     bool
	)
	for i, v := range collection {
		if !predicate(v) {
			hasContent = true
			continue
		}
		if !hasContent {
			// adjacent boundaries collapse onto the last one
			start = i
			opened = true
			continue
		}
		if opened || !framedOnly {
			res = append(res, collection[start:i+1:i+1])
		}
		start = i
		hasContent = false
		opened = true
	}
	if hasContent && !framedOnly {
		res = append(res, collection[start:len(collection):len(collection)])
	}
	return res
}

// Chunk splits a slice into multiple chunks of specified size.
// Chunks share the backing array of collection.
// The last chunk may be smaller if there are not enough elements.
func Chunk[T any](collection []T, size int) [][]T {
	if size <= 0 {
		panic(&seqs.ArgumentError{Op: "sliceutil.Chunk", Arg: "size", Reason: "must be greater than 0"})
	}
	if len(collection) == 0 {
		return [][]T{}
	}
	batchSize := (len(collection) + size - 1) / size
	_ = collection[len(collection)-1]
	res := make([][]T, 0, batchSize)
	for i := 0; i < len(collection); i += size {
		end := min(i+size, len(collection))
		res = append(res, collection[i:end:end])
	}
	return res
}

// CloneGroups deep-copies groups returned by the functions above, detaching them from
// the input.
func CloneGroups[T any](groups [][]T) [][]T {
	res := make([][]T, len(groups))
	for i, g := range groups {
		res[i] = make([]T, len(g))
		copy(res[i], g)
	}
	return res
}
