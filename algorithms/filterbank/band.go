package filterbank

import (
	"math"

	"github.com/RyanBlaney/sonido-stockwell/algorithms/common"
	"github.com/RyanBlaney/sonido-stockwell/algorithms/spectral"
)

// BandConfig describes a frequency band layout.
// LowFre == 0 means "unset" for octave and log scales and selects C1, so a
// zero floor on those scales is never an error. HighFre == 0 selects
// SampleRate/2.
type BandConfig struct {
	Num          int
	FFTLength    int
	SampleRate   int
	LowFre       float64
	HighFre      float64
	BinPerOctave int
	Scale        ScaleType
}

// Band is an ordered set of band centre frequencies and their FFT positions.
// Edges has Num+2 entries: the left edge of the first band, the Num centres,
// and the right edge of the last band.
type Band struct {
	Centers    []float64
	Edges      []float64
	Bins       []float64
	FFTLength  int
	SampleRate int
	LowFre     float64
	HighFre    float64
	Scale      ScaleType
}

// Resolution returns the spacing of FFT bins in Hz
func (b *Band) Resolution() float64 {
	return float64(b.SampleRate) / float64(b.FFTLength)
}

// Num returns the number of bands
func (b *Band) Num() int {
	return len(b.Centers)
}

// IntBins returns the centre bins rounded to the nearest integer.
// Neighbouring bands may share a bin when they are closer than one bin apart.
func (b *Band) IntBins() []int {
	out := make([]int, len(b.Bins))
	for i, v := range b.Bins {
		out[i] = int(math.Round(v))
	}
	return out
}

// EdgeBins returns Edges mapped to fractional FFT bins
func (b *Band) EdgeBins() []float64 {
	out := make([]float64, len(b.Edges))
	scale := float64(b.FFTLength) / float64(b.SampleRate)
	for i, f := range b.Edges {
		out[i] = f * scale
	}
	return out
}

// ResolveDefaults fills in the derived low/high frequencies
func (cfg BandConfig) ResolveDefaults() BandConfig {
	if cfg.LowFre == 0 && (cfg.Scale == ScaleOctave || cfg.Scale == ScaleLog) {
		cfg.LowFre = spectral.C1Hz
	}
	if cfg.HighFre == 0 {
		cfg.HighFre = float64(cfg.SampleRate) / 2
	}
	return cfg
}

// Validate checks cfg after defaults have been resolved
func (cfg BandConfig) Validate() error {
	if cfg.Num < 1 {
		return paramErr("num", cfg.Num, "must be a positive integer")
	}
	if !common.IsPowerOfTwo(cfg.FFTLength) || cfg.FFTLength < 2 {
		return paramErr("fft_length", cfg.FFTLength, "must be a power of two >= 2")
	}
	if cfg.SampleRate <= 0 {
		return paramErr("samplate", cfg.SampleRate, "must be positive")
	}
	if !cfg.Scale.Valid() {
		return paramErr("scale_type", int(cfg.Scale), "unknown scale type")
	}
	if math.IsNaN(cfg.LowFre) || math.IsNaN(cfg.HighFre) {
		return paramErr("low_fre", cfg.LowFre, "frequencies must be numbers")
	}
	if cfg.LowFre < 0 {
		return paramErr("low_fre", cfg.LowFre, "%s low_fre must be a non-negative number", cfg.Scale)
	}

	nyquist := float64(cfg.SampleRate) / 2
	switch cfg.Scale {
	case ScaleOctave, ScaleLog:
		if cfg.LowFre < spectral.C1Hz {
			return paramErr("low_fre", cfg.LowFre, "%s low_fre must be greater than or equal to %.3f", cfg.Scale, spectral.C1Hz)
		}
	}
	if cfg.Scale == ScaleOctave && cfg.BinPerOctave < 1 {
		return paramErr("bin_per_octave", cfg.BinPerOctave, "must be a positive integer")
	}

	switch cfg.Scale {
	case ScaleLinear, ScaleOctave:
		// high_fre is derived for these scales
		if cfg.LowFre > nyquist {
			return paramErr("low_fre", cfg.LowFre, "must not exceed samplate/2=%v", nyquist)
		}
	default:
		if cfg.HighFre > nyquist {
			return paramErr("high_fre", cfg.HighFre, "must not exceed samplate/2=%v", nyquist)
		}
		if cfg.HighFre <= cfg.LowFre {
			return paramErr("high_fre", cfg.HighFre, "must be greater than low_fre=%v", cfg.LowFre)
		}
	}
	return nil
}

// GenerateBand computes the band layout for cfg
func GenerateBand(cfg BandConfig) (*Band, error) {
	cfg = cfg.ResolveDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		edges []float64
		err   error
	)
	switch cfg.Scale {
	case ScaleLinear:
		edges, err = linearEdges(cfg)
	case ScaleLinspace:
		edges = warpedEdges(spectral.LinearScale{}, cfg)
	case ScaleMel:
		edges = warpedEdges(spectral.NewMelScale(), cfg)
	case ScaleBark:
		edges = warpedEdges(spectral.NewBarkScale(), cfg)
	case ScaleErb:
		edges = warpedEdges(spectral.NewErbScale(), cfg)
	case ScaleLog:
		edges = logEdges(cfg)
	case ScaleOctave:
		edges, err = octaveEdges(cfg)
	}
	if err != nil {
		return nil, err
	}

	centers := make([]float64, cfg.Num)
	copy(centers, edges[1:cfg.Num+1])

	bins := make([]float64, cfg.Num)
	scale := float64(cfg.FFTLength) / float64(cfg.SampleRate)
	for i, f := range centers {
		bins[i] = f * scale
	}

	if !common.StrictlyIncreasing(centers) {
		return nil, paramErr("num", cfg.Num, "%s bands between %v and %v Hz are not distinct", cfg.Scale, cfg.LowFre, cfg.HighFre)
	}

	high := cfg.HighFre
	if cfg.Scale == ScaleLinear || cfg.Scale == ScaleOctave {
		high = centers[len(centers)-1]
	}

	return &Band{
		Centers:    centers,
		Edges:      edges,
		Bins:       bins,
		FFTLength:  cfg.FFTLength,
		SampleRate: cfg.SampleRate,
		LowFre:     cfg.LowFre,
		HighFre:    high,
		Scale:      cfg.Scale,
	}, nil
}

// linearEdges places one band on each FFT bin starting at the first bin >= low_fre
func linearEdges(cfg BandConfig) ([]float64, error) {
	df := float64(cfg.SampleRate) / float64(cfg.FFTLength)
	start := int(math.Ceil(cfg.LowFre/df - 1e-9))
	last := start + cfg.Num - 1
	if last > cfg.FFTLength/2 {
		return nil, paramErr("num", cfg.Num, "linear bands from bin %d exceed fft_length/2=%d", start, cfg.FFTLength/2)
	}

	edges := make([]float64, cfg.Num+2)
	for i := range edges {
		edges[i] = float64(start-1+i) * df
	}
	return edges, nil
}

// warpedEdges spaces Num+2 points evenly on the warped axis between low and high
func warpedEdges(w spectral.Warp, cfg BandConfig) []float64 {
	pts := common.Linspace(w.ToScale(cfg.LowFre), w.ToScale(cfg.HighFre), cfg.Num+2)
	edges := make([]float64, len(pts))
	for i, v := range pts {
		edges[i] = w.ToHz(v)
	}
	// pin the ends against round-trip error
	edges[0] = cfg.LowFre
	edges[len(edges)-1] = cfg.HighFre
	return edges
}

// logEdges puts Num centres geometrically between low and high inclusive
func logEdges(cfg BandConfig) []float64 {
	ratio := cfg.HighFre / cfg.LowFre
	if cfg.Num > 1 {
		ratio = math.Pow(cfg.HighFre/cfg.LowFre, 1/float64(cfg.Num-1))
	}
	edges := common.Geomspace(cfg.LowFre/ratio, ratio, cfg.Num+2)
	edges[1] = cfg.LowFre
	if cfg.Num > 1 {
		edges[cfg.Num] = cfg.HighFre
	}
	return edges
}

// octaveEdges steps bin_per_octave bands per octave up from low
func octaveEdges(cfg BandConfig) ([]float64, error) {
	ratio := math.Pow(2, 1/float64(cfg.BinPerOctave))
	edges := common.Geomspace(cfg.LowFre/ratio, ratio, cfg.Num+2)
	edges[1] = cfg.LowFre

	nyquist := float64(cfg.SampleRate) / 2
	if top := edges[cfg.Num]; top > nyquist {
		return nil, paramErr("num", cfg.Num, "octave band %d at %.3f Hz exceeds samplate/2=%v", cfg.Num-1, top, nyquist)
	}
	return edges, nil
}
