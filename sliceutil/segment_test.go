package sliceutil_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"seqkit/seqs"
	"seqkit/sliceutil"

	"github.com/stretchr/testify/require"
)

func isZero(v int) bool { return v == 0 }

func TestChunkBefore(t *testing.T) {
	require.Equal(t, [][]int{{1}, {0, 2}, {0}, {0, 3}}, sliceutil.ChunkBefore([]int{1, 0, 2, 0, 0, 3}, isZero))
	require.Equal(t, [][]int{{0, 1}}, sliceutil.ChunkBefore([]int{0, 1}, isZero))
	require.Equal(t, [][]int{}, sliceutil.ChunkBefore(nil, isZero))
}

func TestChunkAfter(t *testing.T) {
	require.Equal(t, [][]int{{1, 0}, {2, 0}, {0}, {3}}, sliceutil.ChunkAfter([]int{1, 0, 2, 0, 0, 3}, isZero))
	require.Equal(t, [][]int{{1, 0}}, sliceutil.ChunkAfter([]int{1, 0}, isZero))
	require.Equal(t, [][]int{}, sliceutil.ChunkAfter(nil, isZero))
}

func TestSplitAt(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  [][]int
	}{
		{"Empty", nil, [][]int{}},
		{"Single", []int{0}, [][]int{{0}}},
		{"SharedBoundaries", []int{1, 0, 2, 3, 0, 4}, [][]int{{1, 0}, {0, 2, 3, 0}, {0, 4}}},
		{"TrailingLoneBoundaryDropped", []int{1, 0}, [][]int{{1, 0}}},
		{"LeadingBoundaries", []int{0, 0, 1}, [][]int{{0, 0}, {0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, sliceutil.SplitAt(tt.input, isZero))
		})
	}
}

func TestSplitAtChange(t *testing.T) {
	got := sliceutil.SplitAtChange([]int{1, 1, 2, 1}, func(v int) int { return v })
	require.Equal(t, [][]int{{1, 1}, {2}, {1}}, got)
}

func TestChunkedFramed(t *testing.T) {
	isOne := func(v int) bool { return v == 1 }

	require.Equal(t, [][]int{{2, 1}, {1, 2, 1}}, sliceutil.Chunked([]int{2, 1, 1, 1, 2, 1}, isOne))
	require.Equal(t, [][]int{{1, 2, 1}, {1, 2}}, sliceutil.Chunked([]int{1, 1, 2, 1, 1, 2}, isOne))
	require.Equal(t, [][]int{{1, 2, 1}}, sliceutil.Framed([]int{1, 1, 2, 1}, isOne))
	require.Equal(t, [][]int{}, sliceutil.Framed([]int{1, 2}, isOne))
}

func TestChunked_KeepsLastAdjacentBoundary(t *testing.T) {
	type mark struct {
		Name string
		Kind int
	}
	input := []mark{{"a", 1}, {"b", 1}, {"c", 2}, {"d", 1}}
	got := sliceutil.Chunked(input, func(m mark) bool { return m.Kind == 1 })
	require.Equal(t, [][]mark{{input[1], input[2], input[3]}}, got)

	lazy := slices.Collect(seqs.Chunked(slices.Values(input), func(m mark) bool { return m.Kind == 1 }))
	require.Equal(t, got, lazy)
}

// the slice forms must agree with the lazy ones on every input
func TestSegments_MatchSeqs(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	key := func(v int) int { return v }
	for range 300 {
		input := make([]int, r.IntN(25))
		for i := range input {
			input[i] = r.IntN(3)
		}
		values := slices.Values(input)

		assertSame(t, input, slices.Collect(seqs.ChunkBefore(values, isZero)), sliceutil.ChunkBefore(input, isZero))
		assertSame(t, input, slices.Collect(seqs.ChunkAfter(values, isZero)), sliceutil.ChunkAfter(input, isZero))
		assertSame(t, input, slices.Collect(seqs.SplitAt(values, isZero)), sliceutil.SplitAt(input, isZero))
		assertSame(t, input, slices.Collect(seqs.SplitAtChange(values, key)), sliceutil.SplitAtChange(input, key))
		assertSame(t, input, slices.Collect(seqs.Chunked(values, isZero)), sliceutil.Chunked(input, isZero))
		assertSame(t, input, slices.Collect(seqs.Framed(values, isZero)), sliceutil.Framed(input, isZero))
	}
}

func assertSame(t *testing.T, input []int, lazy, eager [][]int) {
	t.Helper()
	if len(lazy) == 0 {
		require.Empty(t, eager, "input %v", input)
		return
	}
	require.Equal(t, lazy, eager, "input %v", input)
}

func TestSegments_GroupsAreCapped(t *testing.T) {
	input := []int{1, 0, 2, 0, 3}
	groups := sliceutil.ChunkAfter(input, isZero)

	_ = append(groups[0], 99)
	require.Equal(t, []int{1, 0, 2, 0, 3}, input)

	cloned := sliceutil.CloneGroups(groups)
	cloned[0][0] = -1
	require.Equal(t, 1, input[0])
}

func TestSegments_InvalidArguments(t *testing.T) {
	for name, fn := range map[string]func(){
		"ChunkBefore":   func() { sliceutil.ChunkBefore[int](nil, nil) },
		"ChunkAfter":    func() { sliceutil.ChunkAfter[int](nil, nil) },
		"SplitAt":       func() { sliceutil.SplitAt[int](nil, nil) },
		"SplitAtChange": func() { sliceutil.SplitAtChange[int, int](nil, nil) },
		"Chunked":       func() { sliceutil.Chunked[int](nil, nil) },
		"Framed":        func() { sliceutil.Framed[int](nil, nil) },
		"Chunk":         func() { sliceutil.Chunk([]int{1}, 0) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok)
				require.ErrorIs(t, err, seqs.ErrInvalidArgument)
			}()
			fn()
		})
	}
}

func TestChunk(t *testing.T) {
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, sliceutil.Chunk([]int{1, 2, 3, 4, 5}, 2))
	require.Equal(t, [][]int{}, sliceutil.Chunk([]int(nil), 2))
}
