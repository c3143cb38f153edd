// Package mathx contains tiny generic numeric helpers used across the
// module.
package mathx

import "golang.org/x/exp/constraints"

// Min returns the lesser of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
