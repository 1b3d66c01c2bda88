package utils

import "maps"

// FrozenMap is a read-only view over a snapshot of a map. It is the closest
// rendition of an immutability freeze the language offers: the snapshot is
// private and only accessors are exposed.
type FrozenMap[K comparable, V any] struct {
	m map[K]V
}

// Frozen snapshots m into a read-only view. Later changes to m are not
// visible through the view.
func Frozen[K comparable, V any](m map[K]V) FrozenMap[K, V] {
	return FrozenMap[K, V]{m: maps.Clone(m)}
}

// Get returns the value for k and whether it is present.
func (f FrozenMap[K, V]) Get(k K) (V, bool) {
	v, ok := f.m[k]
	return v, ok
}

// Len returns the number of entries.
func (f FrozenMap[K, V]) Len() int {
	return len(f.m)
}

// Keys returns the keys in unspecified order.
func (f FrozenMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(f.m))
	for k := range f.m {
		keys = append(keys, k)
	}
	return keys
}
