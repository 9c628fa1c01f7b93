package seqs_test

import (
	"iter"
	"slices"
	"testing"

	"seqkit/seqs"

	"github.com/stretchr/testify/require"
)

// countingCloser counts how many times the resource behind a source was released.
type countingCloser struct {
	closes *int
}

func (c countingCloser) Close() error {
	*c.closes++
	return nil
}

// disposable returns a source over items that acquires a resource on every enumeration,
// and a counter of releases.
func disposable[T any](items ...T) (iter.Seq[T], *int) {
	closes := new(int)
	seq := seqs.Using(
		func() (countingCloser, error) { return countingCloser{closes: closes}, nil },
		func(countingCloser) iter.Seq[T] { return slices.Values(items) },
	)
	return seq, closes
}

func requireInvalidArgument(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, seqs.ErrInvalidArgument)
		var argErr *seqs.ArgumentError
		require.ErrorAs(t, err, &argErr)
	}()
	fn()
}

func collect[T any](seq iter.Seq[T]) []T {
	return slices.Collect(seq)
}

func flatten[T any](groups [][]T) []T {
	var out []T
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func eq(v int) func(int) bool {
	return func(x int) bool { return x == v }
}
