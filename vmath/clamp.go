package vmath

import "golang.org/x/exp/constraints"

// Clamp restricts v to [lo, hi]
// If lo > hi the range is degenerate and lo wins
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Abs returns the absolute value of a signed number
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
