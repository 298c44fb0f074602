package util

/**
 * Generic shared utilities
 */

// SliceIncludes returns true is slice includes value
func SliceIncludes[T comparable](s []T, val T) bool {
	for _, v := range s {
		if v == val {
			return true
		}
	}
	return false
}

// Unique returns s without repeated keys, keeping the first occurrence
// and the original order
func Unique[T any, K comparable](s []T, key func(T) K) []T {
	seen := map[K]struct{}{}
	result := []T{}

	for _, v := range s {
		k := key(v)

		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		result = append(result, v)
	}

	return result
}
