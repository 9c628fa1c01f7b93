package seqs

import "iter"

// Concat yields the elements of every seq in turn. Nil sequences are skipped.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			if seq == nil {
				continue
			}
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pairs up the elements of seq1 and seq2 and stops with the shorter one.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		if seq1 == nil || seq2 == nil {
			return
		}
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{v1, v2}) {
				return
			}
		}
	}
}

func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if seq == nil {
			return
		}
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Chunk splits the input sequence into chunks of the specified size.
// The last chunk may be smaller if there are not enough elements.
//
// Chunk panics if size <= 0.
func Chunk[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	if size <= 0 {
		panic(&ArgumentError{Op: "seqs.Chunk", Arg: "size", Reason: "must be greater than 0"})
	}
	return func(yield func([]T) bool) {
		if seq == nil {
			return
		}
		batch := make([]T, 0, size)
		for v := range seq {
			batch = append(batch, v)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}

// Window creates a sliding window over the input sequence.
// size: window size.
// step: step size for each slide.
//
// Scenario 1 (step < size): overlapping windows. For example, [1,2,3], [2,3,4] (size=3, step=1)
// Scenario 2 (step == size): equivalent to Chunk, minus the short tail.
// Scenario 3 (step > size): gapped windows (some data is skipped in between).
//
// Window panics if size or step is not positive.
func Window[T any](seq iter.Seq[T], size, step int) iter.Seq[[]T] {
	if size <= 0 {
		panic(&ArgumentError{Op: "seqs.Window", Arg: "size", Reason: "must be greater than 0"})
	}
	if step <= 0 {
		panic(&ArgumentError{Op: "seqs.Window", Arg: "step", Reason: "must be greater than 0"})
	}
	return func(yield func([]T) bool) {
		if seq == nil {
			return
		}
		buffer := make([]T, 0, size)

		// when step > size, elements after a full window are skipped
		skipCount := 0

		for v := range seq {
			if skipCount > 0 {
				skipCount--
				continue
			}

			buffer = append(buffer, v)
			if len(buffer) < size {
				continue
			}

			output := make([]T, size)
			copy(output, buffer)
			if !yield(output) {
				return
			}

			if step < size {
				// keep the overlapping tail; copy handles overlapping memory
				copy(buffer, buffer[step:])
				buffer = buffer[:size-step]
			} else {
				buffer = buffer[:0]
				skipCount = step - size
			}
		}
	}
}

// Distinct returns a sequence that yields only unique elements.
// It maintains a map of seen elements, so memory usage is proportional to the number of unique elements.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if seq == nil {
			return
		}
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				if !yield(v) {
					return
				}
			}
		}
	}
}

// DistinctSuccessive drops elements equal to the element right before them.
// The first element is always kept; zero values compare like any other value.
//
//	[a a b a b b]  =>  [a b a b]
func DistinctSuccessive[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return distinctSuccessive(seq, func(a, b T) bool { return a == b })
}

// DistinctSuccessiveFunc is like DistinctSuccessive but compares with equal.
// It panics if equal is nil.
func DistinctSuccessiveFunc[T any](seq iter.Seq[T], equal func(a, b T) bool) iter.Seq[T] {
	if equal == nil {
		panic(nilArg("seqs.DistinctSuccessiveFunc", "equal"))
	}
	return distinctSuccessive(seq, equal)
}

func distinctSuccessive[T any](seq iter.Seq[T], equal func(a, b T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		if seq == nil {
			return
		}
		var (
			prior T
			first = true
		)
		for v := range seq {
			if first || !equal(v, prior) {
				if !yield(v) {
					return
				}
			}
			first = false
			prior = v
		}
	}
}
