package common

import "cmp"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
