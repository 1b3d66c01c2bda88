// Package utils holds small one-shot helpers used across the module. All
// functions here are stateless transformations over their inputs.
package utils

import "maps"

// Number covers the built-in numeric types MergeWithSum can add up.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ShallowCopy returns a copy of m one level deep. A nil map copies as nil.
func ShallowCopy[K comparable, V any](m map[K]V) map[K]V {
	return maps.Clone(m)
}

// MergeWithSum merges two maps; values present in both are summed.
func MergeWithSum[K comparable, N Number](a, b map[K]N) map[K]N {
	out := make(map[K]N, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] += v
	}
	return out
}

// RemoveKeys returns a copy of m without the given keys.
func RemoveKeys[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := maps.Clone(m)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// EqualMaps reports whether two maps hold the same key/value pairs.
func EqualMaps[K, V comparable](a, b map[K]V) bool {
	return maps.Equal(a, b)
}

// IsEmpty reports whether the map has no entries. A nil map is empty.
func IsEmpty[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}
