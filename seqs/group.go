package seqs

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// GroupByHash groups elements whose ordered tuple of projected keys is equal.
// Elements are bucketed by HashKey of the tuple; tuples are compared within a bucket, so a
// hash collision never merges two different tuples. Groups are yielded in the order their
// first element appeared, once seq is exhausted.
//
// The order of keys matters: (a, b) and (b, a) are different tuples.
// With no keys every element lands in one group.
//
// GroupByHash panics if any key function is nil.
func GroupByHash[T any, K comparable](seq iter.Seq[T], keys ...func(T) K) iter.Seq[[]T] {
	for i, key := range keys {
		if key == nil {
			panic(nilArg("seqs.GroupByHash", fmt.Sprintf("keys[%d]", i)))
		}
	}
	type group struct {
		tuple []K
		items []T
	}
	return func(yield func([]T) bool) {
		if seq == nil {
			return
		}
		var (
			ordered []*group
			buckets = make(map[uint64][]*group)
		)
		for v := range seq {
			tuple := make([]K, len(keys))
			for i, key := range keys {
				tuple[i] = key(v)
			}
			h := HashKey(tuple...)

			var target *group
			for _, g := range buckets[h] {
				if slices.Equal(g.tuple, tuple) {
					target = g
					break
				}
			}
			if target == nil {
				target = &group{tuple: tuple}
				buckets[h] = append(buckets[h], target)
				ordered = append(ordered, target)
			}
			target.items = append(target.items, v)
		}
		for _, g := range ordered {
			if !yield(g.items) {
				return
			}
		}
	}
}

// HashKey returns a composite 64-bit hash of values.
// Every value is length-prefixed before hashing, so the hash depends on the position of
// each value and ("ab", "c") does not collide with ("a", "bc"). The result is stable
// across processes.
func HashKey[K comparable](values ...K) uint64 {
	d := xxhash.New()
	var buf []byte
	for _, v := range values {
		buf = appendKey(buf[:0], v)
		var size [binary.MaxVarintLen64]byte
		n := binary.PutUvarint(size[:], uint64(len(buf)))
		_, _ = d.Write(size[:n])
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

// appendKey encodes the common key types directly and falls back to the %#v form.
func appendKey(buf []byte, v any) []byte {
	switch k := v.(type) {
	case string:
		return append(buf, k...)
	case int:
		return binary.AppendVarint(buf, int64(k))
	case int8:
		return binary.AppendVarint(buf, int64(k))
	case int16:
		return binary.AppendVarint(buf, int64(k))
	case int32:
		return binary.AppendVarint(buf, int64(k))
	case int64:
		return binary.AppendVarint(buf, k)
	case uint:
		return binary.AppendUvarint(buf, uint64(k))
	case uint8:
		return binary.AppendUvarint(buf, uint64(k))
	case uint16:
		return binary.AppendUvarint(buf, uint64(k))
	case uint32:
		return binary.AppendUvarint(buf, uint64(k))
	case uint64:
		return binary.AppendUvarint(buf, k)
	case float32:
		if k == 0 {
			k = 0 // -0 == +0, so they share a key
		}
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(k))
	case float64:
		if k == 0 {
			k = 0
		}
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(k))
	case bool:
		if k {
			return append(buf, 1)
		}
		return append(buf, 0)
	default:
		return fmt.Appendf(buf, "%#v", v)
	}
}

// AsMap groups the elements of seq by key. A nil seq gives an empty, non-nil map.
func AsMap[T any, K comparable](seq iter.Seq[T], key func(T) K) map[K][]T {
	if key == nil {
		panic(nilArg("seqs.AsMap", "key"))
	}
	result := make(map[K][]T)
	for v := range IfAny(seq) {
		k := key(v)
		result[k] = append(result[k], v)
	}
	return result
}
