package stockwell

import (
	"math"
)

// gaussianFloor is the relative level below which band-limited Gaussian
// windows are cut
const gaussianFloor = 1e-16

// gaussianReach is the distance, in units of k*factor, where the Gaussian
// drops to gaussianFloor
var gaussianReach = math.Sqrt(-math.Log(gaussianFloor) / (2 * math.Pi * math.Pi))

// gaussianWindow builds the row for centre bin k:
// norm * exp(-2*pi^2 * d^2 / (k*factor)^2) with d the distance from k.
// The row is demodulated by round(k). Full windows cover every offset in
// [-n/2, n/2); band-limited ones stop where the Gaussian hits gaussianFloor.
func gaussianWindow(k float64, n int, factor, norm float64, bandLimited bool) window {
	k0 := int(math.Round(k))
	if k == 0 {
		// the zero-frequency voice is the signal mean
		return window{shift: 0, lo: 0, taps: []float64{norm}}
	}

	width := k * factor
	lo, hi := -n/2, n/2-1
	frac := float64(k0) - k
	if bandLimited {
		reach := gaussianReach * width
		lo = max(lo, int(math.Ceil(-reach-frac)))
		hi = min(hi, int(math.Floor(reach-frac)))
		if hi < lo {
			return window{shift: k0}
		}
	}

	taps := make([]float64, hi-lo+1)
	scale := -2 * math.Pi * math.Pi / (width * width)
	for i := range taps {
		d := float64(lo+i) + frac
		taps[i] = norm * math.Exp(scale*d*d)
	}

	return window{shift: k0, lo: lo, taps: taps}
}

func gaussianBank(bins []float64, n int, factor, norm float64, bandLimited bool) []window {
	rows := make([]window, len(bins))
	for i, k := range bins {
		rows[i] = gaussianWindow(k, n, factor, norm, bandLimited)
	}
	return rows
}
