package filterbank

import (
	"math"

	"github.com/RyanBlaney/sonido-stockwell/algorithms/spectral"
	"github.com/RyanBlaney/sonido-stockwell/algorithms/windowing"
	"gonum.org/v1/gonum/floats"
)

// Filter is one band's frequency response sampled on FFT bins
// Start..Start+len(Weights)-1, all within [0, fft_length/2].
type Filter struct {
	Start   int
	Weights []float64
}

// Empty reports whether the filter touches no bin
func (f Filter) Empty() bool {
	return len(f.Weights) == 0
}

// Dense expands the filter to a length-n vector
func (f Filter) Dense(n int) []float64 {
	out := make([]float64, n)
	for i, w := range f.Weights {
		if j := f.Start + i; j >= 0 && j < n {
			out[j] = w
		}
	}
	return out
}

// BankConfig selects filter shape and normalization
type BankConfig struct {
	Style     StyleType
	Normal    NormalType
	IsPadding bool
}

// gammatone order and the ERB bandwidth factor of a 4th order gammatone
const (
	gammatoneOrder = 4
	gammatoneBW    = 1.019
	// responses below this are cut from gammatone filters
	gammatoneFloor = 1e-4
)

// weights smaller than this at either end of a filter are rounding noise
const trimFloor = 1e-15

var windowStyles = map[StyleType]windowing.Type{
	StyleRect:     windowing.Rectangular,
	StyleHann:     windowing.Hann,
	StyleHamm:     windowing.Hamming,
	StyleBlackman: windowing.Blackman,
	StyleBohman:   windowing.Bohman,
	StyleKaiser:   windowing.Kaiser,
	StyleGauss:    windowing.Gauss,
}

// Build returns one filter per band
func Build(band *Band, cfg BankConfig) ([]Filter, error) {
	if !cfg.Style.Valid() {
		return nil, paramErr("style_type", int(cfg.Style), "unknown style type")
	}
	if !cfg.Normal.Valid() {
		return nil, paramErr("normal_type", int(cfg.Normal), "unknown normal type")
	}

	edgeBins := band.EdgeBins()
	half := band.FFTLength / 2
	filters := make([]Filter, band.Num())

	for i := range filters {
		l, c, r := edgeBins[i], edgeBins[i+1], edgeBins[i+2]
		if cfg.IsPadding {
			l = math.Min(l, c-1)
			r = math.Max(r, c+1)
		}

		var f Filter
		switch cfg.Style {
		case StyleSlaney:
			f = sample(l, r, half, func(j float64) float64 { return triangle(j, l, c, r) })
		case StyleETSI:
			f = etsi(l, c, r, half)
		case StyleGammatone:
			f = gammatone(band.Centers[i], band.Resolution(), half)
		case StylePoint:
			f = point(c, half)
		default:
			shape := windowStyles[cfg.Style]
			param := windowing.DefaultParam(shape)
			f = sample(l, r, half, func(j float64) float64 {
				return windowing.Shape(shape, position(j, l, c, r), param)
			})
		}

		f = trim(f)
		normalize(f.Weights, cfg.Normal, band.Edges[i], band.Edges[i+2])
		filters[i] = f
	}

	return filters, nil
}

// sample evaluates fn on every integer bin inside [l, r] clipped to [0, half]
func sample(l, r float64, half int, fn func(j float64) float64) Filter {
	start := max(int(math.Ceil(l)), 0)
	end := min(int(math.Floor(r)), half)
	if end < start {
		return Filter{Start: start}
	}

	weights := make([]float64, end-start+1)
	for i := range weights {
		weights[i] = fn(float64(start + i))
	}
	return Filter{Start: start, Weights: weights}
}

// triangle rises from 0 at l to 1 at c and falls back to 0 at r
func triangle(j, l, c, r float64) float64 {
	switch {
	case j == c:
		return 1
	case j < c:
		if c <= l {
			return 0
		}
		return math.Max(0, (j-l)/(c-l))
	default:
		if r <= c {
			return 0
		}
		return math.Max(0, (r-j)/(r-c))
	}
}

// position maps bin j onto [0, 1] with l -> 0, c -> 0.5 and r -> 1
func position(j, l, c, r float64) float64 {
	switch {
	case j == c:
		return 0.5
	case j < c:
		if c <= l {
			return 0
		}
		return 0.5 * (j - l) / (c - l)
	default:
		if r <= c {
			return 1
		}
		return 0.5 + 0.5*(j-c)/(r-c)
	}
}

// etsi builds the ETSI ES 201 108 triangle on rounded bin edges
func etsi(l, c, r float64, half int) Filter {
	lb := int(math.Round(l))
	cb := int(math.Round(c))
	rb := int(math.Round(r))

	start := max(lb, 0)
	end := min(rb, half)
	if end < start {
		return Filter{Start: start}
	}

	weights := make([]float64, end-start+1)
	for i := range weights {
		j := start + i
		if j < cb {
			weights[i] = float64(j-lb+1) / float64(cb-lb+1)
		} else {
			weights[i] = 1 - float64(j-cb)/float64(rb-cb+1)
		}
	}
	return Filter{Start: start, Weights: weights}
}

// gammatone samples the magnitude response of a 4th order gammatone filter
func gammatone(centerHz, resolution float64, half int) Filter {
	bw := gammatoneBW * spectral.NewErbScale().Bandwidth(centerHz) / resolution
	// (1 + x^2)^(-n/2) drops below the floor at this distance
	reach := bw * math.Sqrt(math.Pow(gammatoneFloor, -2.0/gammatoneOrder)-1)
	c := centerHz / resolution

	return sample(c-reach, c+reach, half, func(j float64) float64 {
		x := (j - c) / bw
		return math.Pow(1+x*x, -gammatoneOrder/2.0)
	})
}

func point(c float64, half int) Filter {
	j := int(math.Round(c))
	if j < 0 || j > half {
		return Filter{Start: max(j, 0)}
	}
	return Filter{Start: j, Weights: []float64{1}}
}

// trim drops zero and rounding-level weights from both ends
func trim(f Filter) Filter {
	lo, hi := 0, len(f.Weights)
	for lo < hi && math.Abs(f.Weights[lo]) < trimFloor {
		lo++
	}
	for hi > lo && math.Abs(f.Weights[hi-1]) < trimFloor {
		hi--
	}
	if lo == hi {
		return Filter{Start: f.Start}
	}
	return Filter{Start: f.Start + lo, Weights: f.Weights[lo:hi]}
}

// normalize scales weights in place; leftHz and rightHz are the band edges
func normalize(weights []float64, normal NormalType, leftHz, rightHz float64) {
	if len(weights) == 0 {
		return
	}

	switch normal {
	case NormalArea:
		if sum := floats.Sum(weights); sum > 0 {
			floats.Scale(1/sum, weights)
		}
	case NormalBandWidth:
		if width := rightHz - leftHz; width > 0 {
			floats.Scale(2/width, weights)
		}
	}
}
