// Package agg has generic group-by and join logic for tabular census data.
package agg

import (
	"cmp"
	"slices"
)

// SumBy groups rows by key and sums an integer value per group.
func SumBy[R any, K comparable](rows []R, key func(R) K, value func(R) int) map[K]int {
	totals := make(map[K]int)
	for _, r := range rows {
		totals[key(r)] += value(r)
	}
	return totals
}

// SumFloatBy groups rows by key and sums a float value per group.
func SumFloatBy[R any, K comparable](rows []R, key func(R) K, value func(R) float64) map[K]float64 {
	totals := make(map[K]float64)
	for _, r := range rows {
		totals[key(r)] += value(r)
	}
	return totals
}

// Joined pairs a left row with the matching right-hand value.
type Joined[L any, V any] struct {
	Left  L
	Right V
}

// InnerJoin matches each left row to the right-hand map by key. Left rows
// without a match are dropped. Input order is preserved.
func InnerJoin[L any, K comparable, V any](left []L, key func(L) K, right map[K]V) []Joined[L, V] {
	out := make([]Joined[L, V], 0, len(left))
	for _, l := range left {
		v, ok := right[key(l)]
		if !ok {
			continue
		}
		out = append(out, Joined[L, V]{Left: l, Right: v})
	}
	return out
}

// Entry is one key/value pair of an aggregation map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Entries flattens an aggregation map into a slice sorted with cmpKey.
func Entries[K comparable, V any](m map[K]V, cmpKey func(a, b K) int) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	slices.SortFunc(out, func(a, b Entry[K, V]) int {
		return cmpKey(a.Key, b.Key)
	})
	return out
}

// SortedUnique returns the distinct values of a slice in ascending order.
func SortedUnique[T cmp.Ordered](values []T) []T {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}
