package seqs_test

import (
	"testing"

	"seqkit/seqs"

	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		opts   []seqs.MergeOption
		want   string
		wantOK bool
	}{
		{"SortsAndDedupes", []string{"b", "a", "b"}, nil, "a, b", true},
		{"PreventDistinct", []string{"b", "a", "b"}, []seqs.MergeOption{seqs.PreventDistinct()}, "a, b, b", true},
		{"PreventSort", []string{"b", "a", "b"}, []seqs.MergeOption{seqs.PreventSort()}, "b, a", true},
		{"Both", []string{"b", "a", "b"}, []seqs.MergeOption{seqs.PreventSort(), seqs.PreventDistinct()}, "b, a, b", true},
		{"DropsBlanks", []string{"", " ", "x", "\t"}, nil, "x", true},
		{"NothingLeft", []string{"", "  "}, nil, "", false},
		{"Empty", nil, nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := seqs.Merge(seqs.Values(tt.input...), ", ", tt.opts...)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMerge_DropsZeroValues(t *testing.T) {
	got, ok := seqs.Merge(seqs.Values(3, 0, 1, 3), "|")
	require.True(t, ok)
	require.Equal(t, "1|3", got)

	// nil interfaces and blank strings leave nothing to join
	_, ok = seqs.Merge(seqs.Values[any](nil, nil, ""), ",")
	require.False(t, ok)

	_, ok = seqs.Merge[int](nil, ",")
	require.False(t, ok)
}

func TestMerge_SortsByStringForm(t *testing.T) {
	got, ok := seqs.Merge(seqs.Values(10, 9, 100), ",")
	require.True(t, ok)
	require.Equal(t, "10,100,9", got)
}

func TestMergeBy(t *testing.T) {
	orders := seqs.Values(
		order{Customer: "bob"},
		order{Customer: ""},
		order{Customer: "ann"},
		order{Customer: "bob"},
	)
	got, ok := seqs.MergeBy(orders, func(o order) string { return o.Customer }, ";")
	require.True(t, ok)
	require.Equal(t, "ann;bob", got)

	requireInvalidArgument(t, func() { seqs.MergeBy[order, string](nil, nil, ";") })
}

func TestMergeValues(t *testing.T) {
	got, ok := seqs.MergeValues(" ", "select", "", "*", "select")
	require.True(t, ok)
	require.Equal(t, "select *", got)

	_, ok = seqs.MergeValues(" ")
	require.False(t, ok)
}
