package seqs

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/go-softwarelab/common/pkg/is"
	"github.com/go-softwarelab/common/pkg/to"
	"github.com/samber/lo"
)

// MergeConfig controls Merge. The zero value deduplicates and sorts.
type MergeConfig struct {
	PreventDistinct bool
	PreventSort     bool
}

type MergeOption = func(*MergeConfig)

// PreventDistinct keeps duplicate entries.
func PreventDistinct() MergeOption {
	return func(cfg *MergeConfig) {
		cfg.PreventDistinct = true
	}
}

// PreventSort keeps entries in input order instead of sorting them by their string form.
func PreventSort() MergeOption {
	return func(cfg *MergeConfig) {
		cfg.PreventSort = true
	}
}

// Merge joins the string forms of the elements of seq with delimiter.
// Zero-valued elements and blank strings are dropped, duplicates are removed and the rest
// is sorted, unless PreventDistinct or PreventSort say otherwise.
//
// Merge reports false when nothing is left to join, which is distinct from joining to "".
func Merge[T comparable](seq iter.Seq[T], delimiter string, opts ...MergeOption) (string, bool) {
	return merge(Map(NonZero(seq), func(v T) string { return fmt.Sprint(v) }), delimiter, opts)
}

// MergeBy merges the projections of the elements of seq. See Merge.
func MergeBy[T any, P comparable](seq iter.Seq[T], project func(T) P, delimiter string, opts ...MergeOption) (string, bool) {
	if project == nil {
		panic(nilArg("seqs.MergeBy", "project"))
	}
	return Merge(Map(seq, project), delimiter, opts...)
}

// MergeValues merges literal strings in the order given, dropping blanks and duplicates.
func MergeValues(delimiter string, items ...string) (string, bool) {
	return merge(Values(items...), delimiter, []MergeOption{PreventSort()})
}

func merge(seq iter.Seq[string], delimiter string, opts []MergeOption) (string, bool) {
	cfg := to.OptionsWithDefault(MergeConfig{}, opts...)

	relevant := lo.Filter(slices.Collect(seq), func(s string, _ int) bool {
		return !is.Zero(strings.TrimSpace(s))
	})
	if len(relevant) == 0 {
		return "", false
	}
	if !cfg.PreventDistinct {
		relevant = lo.Uniq(relevant)
	}
	if !cfg.PreventSort {
		slices.Sort(relevant)
	}
	return strings.Join(relevant, delimiter), true
}
