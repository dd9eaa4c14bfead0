// pkg/util/generic.go

package util

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Select returns a if sel is true, otherwise b. Useful for avoiding
// multi-line if/else for simple value selection.
func Select[T any](sel bool, a, b T) T {
	if sel {
		return a
	}
	return b
}

// SortedMapKeys returns the keys of m in ascending order.
func SortedMapKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// DuplicateSlice returns a newly-allocated copy of s.
func DuplicateSlice[V any](s []V) []V {
	if s == nil {
		return nil
	}
	d := make([]V, len(s))
	copy(d, s)
	return d
}

// DuplicateMap returns a newly-allocated shallow copy of m.
func DuplicateMap[K comparable, V any](m map[K]V) map[K]V {
	d := make(map[K]V, len(m))
	for k, v := range m {
		d[k] = v
	}
	return d
}

// MapSlice applies xform to each element of from and returns the results.
func MapSlice[F, T any](from []F, xform func(F) T) []T {
	to := make([]T, len(from))
	for i, f := range from {
		to[i] = xform(f)
	}
	return to
}

// FilterSlice returns a new slice containing the elements of s for which
// pred returns true, preserving order.
func FilterSlice[V any](s []V, pred func(V) bool) []V {
	var out []V
	for _, v := range s {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// FilterSliceInPlace removes elements of s for which pred returns false,
// reusing s's backing array.
func FilterSliceInPlace[V any](s []V, pred func(V) bool) []V {
	n := 0
	for _, v := range s {
		if pred(v) {
			s[n] = v
			n++
		}
	}
	return s[:n]
}

// ReduceSlice folds s into a single value via reduce, starting from initial.
func ReduceSlice[V any, R any](s []V, reduce func(V, R) R, initial R) R {
	for _, v := range s {
		initial = reduce(v, initial)
	}
	return initial
}

// Clamp restricts x to the closed range [low, high].
func Clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}
