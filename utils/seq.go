package utils

import (
	"sort"

	"github.com/maruel/natural"
)

// GroupBy buckets items by the given key function, keeping input order inside
// each bucket.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, it := range items {
		k := key(it)
		out[k] = append(out[k], it)
	}
	return out
}

// SortNatural sorts strings in place in natural order, so "item2" comes
// before "item10".
func SortNatural(items []string) {
	sort.Sort(natural.StringSlice(items))
}
