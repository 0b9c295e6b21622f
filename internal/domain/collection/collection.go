// Package collection provides pure, order-preserving transformations over slices.
package collection

import (
	"cmp"
	"slices"
	"strings"
)

// Less reports whether a must appear before b.
type Less[T any] func(a, b T) bool

// Ascending builds a comparator ordering items by key, smallest first.
func Ascending[T any, K cmp.Ordered](key func(T) K) Less[T] {
	return func(a, b T) bool { return cmp.Less(key(a), key(b)) }
}

// Descending builds a comparator ordering items by key, largest first.
func Descending[T any, K cmp.Ordered](key func(T) K) Less[T] {
	return func(a, b T) bool { return cmp.Less(key(b), key(a)) }
}

// SortStable returns a sorted copy of items. Elements that compare equal keep
// their relative order. The input slice is never modified.
func SortStable[T any](items []T, less Less[T]) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
	return out
}

// Filter returns the items for which keep returns true, in input order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Map projects every item through fn.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, it := range items {
		out[i] = fn(it)
	}
	return out
}

// JoinBy renders each item with fn and joins the results with sep.
func JoinBy[T any](items []T, sep string, fn func(T) string) string {
	return strings.Join(Map(items, fn), sep)
}

// MaxBy returns the item with the greatest key. When several items share the
// maximum the first one encountered wins. ok is false for an empty input.
func MaxBy[T any, K cmp.Ordered](items []T, key func(T) K) (best T, ok bool) {
	for i, it := range items {
		if i == 0 || key(it) > key(best) {
			best = it
		}
		ok = true
	}
	return best, ok
}

// Average returns the arithmetic mean of key over items, or 0 when items is empty.
func Average[T any](items []T, key func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range items {
		sum += key(it)
	}
	return sum / float64(len(items))
}
