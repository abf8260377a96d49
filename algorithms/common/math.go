package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Numeric helpers shared by the band generator, filter builder and transforms

// IsPowerOfTwo checks if n is a power of 2
func IsPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n == 1 yields [lo].
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	return floats.Span(out, lo, hi)
}

// Geomspace returns n values starting at lo with a constant ratio between neighbours.
func Geomspace(lo, ratio float64, n int) []float64 {
	out := make([]float64, max(n, 0))
	for i := range out {
		out[i] = lo * math.Pow(ratio, float64(i))
	}
	return out
}

// StrictlyIncreasing reports whether every element is larger than its predecessor.
func StrictlyIncreasing(data []float64) bool {
	for i := 1; i < len(data); i++ {
		if !(data[i] > data[i-1]) {
			return false
		}
	}
	return true
}

// Mod returns the non-negative remainder of a divided by n.
func Mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
