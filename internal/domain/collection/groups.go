package collection

import "slices"

// Groups is a partition of a sequence keyed by K. Keys are kept in the order
// they were first seen; members keep their input order.
type Groups[K comparable, T any] struct {
	keys    []K
	members map[K][]T
}

// GroupBy partitions items by key.
func GroupBy[T any, K comparable](items []T, key func(T) K) *Groups[K, T] {
	g := &Groups[K, T]{
		keys:    make([]K, 0),
		members: make(map[K][]T),
	}
	for _, it := range items {
		k := key(it)
		if _, seen := g.members[k]; !seen {
			g.keys = append(g.keys, k)
		}
		g.members[k] = append(g.members[k], it)
	}
	return g
}

// Keys returns the group keys in first-seen order.
func (g *Groups[K, T]) Keys() []K {
	return slices.Clone(g.keys)
}

// Get returns the members of group k and whether the group exists.
func (g *Groups[K, T]) Get(k K) ([]T, bool) {
	m, ok := g.members[k]
	if !ok {
		return nil, false
	}
	return slices.Clone(m), true
}

// Len returns the number of groups.
func (g *Groups[K, T]) Len() int { return len(g.keys) }

// Each calls fn for every group in key order.
func (g *Groups[K, T]) Each(fn func(k K, members []T)) {
	for _, k := range g.keys {
		fn(k, slices.Clone(g.members[k]))
	}
}
