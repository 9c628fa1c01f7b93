/*
Package seqs provides lazy combinators over Go 1.23+ iterators (iter.Seq).

It covers the patterns that plain range loops make awkward:

  - **Segmentation**: [ChunkBefore], [ChunkAfter], [SplitAt], [SplitAtChange], [Chunked],
    [Framed] and the fixed-size [Chunk].
  - **Windowing**: [Paired], [ToTriples], [Window], [Consecutive] and [ConsecutiveWindows],
    which pad the tail with an empty [optional.Value] instead of a zero value.
  - **Grouping**: [GroupByHash] groups by an ordered tuple of keys, [AsMap] by a single key.
  - **Merging**: [Merge], [MergeBy] and [MergeValues] join string forms with optional
    deduplication and sorting.
  - **Null-safe primitives**: [FirstNonZero], [AnyNonZero], [CountEqualsOrSingle],
    [SequenceEqualOrNil] and friends treat a nil sequence as empty.
  - **Scoped sources**: [FromCursor] and [Using] release the backing resource exactly once,
    including when the consumer stops early.

# Laziness

Every combinator returning an iter.Seq defers all work until it is ranged over and pulls no
further than the consumer asks. Each range restarts the pipeline from its source. Groups are
freshly allocated slices and may be retained.

# Invalid arguments

A nil function, a non-positive width or a similar programmer error panics at call time with
an *[ArgumentError] wrapping [ErrInvalidArgument]:

	defer func() {
		err, _ := recover().(error)
		errors.Is(err, seqs.ErrInvalidArgument) // true
	}()
	seqs.ChunkBefore[int](nil, nil)

A nil sequence is never an error.

# Logging

Scoped sources are silent by default. Pass [WithLogger] to get structured log/slog records or
[WithMonitor] to observe releases and errors directly.
*/
package seqs
