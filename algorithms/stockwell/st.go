package stockwell

import (
	"math"
	"sync"
	"time"

	"github.com/RyanBlaney/sonido-stockwell/logging"
)

// ST computes the S-Transform over the bins [minIndex, maxIndex]
type ST struct {
	mu     sync.RWMutex
	core   *core
	logger logging.Logger

	radix2Exp  int
	fftLength  int
	sampleRate int
	minIndex   int
	maxIndex   int
	factor     float64
	norm       float64

	bins []float64
	bank []window
}

// NewST creates an S-Transform with fft_length = 2^radix2Exp.
// maxIndex 0 selects fft_length/2 - 1.
func NewST(radix2Exp, sampleRate, minIndex, maxIndex int, factor, norm float64, opts ...Option) (*ST, error) {
	if err := checkRadix2Exp(radix2Exp); err != nil {
		return nil, err
	}
	if err := checkSampleRate(sampleRate); err != nil {
		return nil, err
	}

	fftLength := 1 << radix2Exp
	maxIndex, err := resolveMaxIndex(maxIndex, fftLength)
	if err != nil {
		return nil, err
	}
	if err := checkIndexRange(minIndex, maxIndex, fftLength/2-1); err != nil {
		return nil, err
	}
	if err := checkFactorNorm(factor, norm); err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	c, err := newCore(fftLength, o)
	if err != nil {
		return nil, err
	}

	st := &ST{
		core:       c,
		logger:     o.logger.WithFields(logging.Fields{"transform": "st"}),
		radix2Exp:  radix2Exp,
		fftLength:  fftLength,
		sampleRate: sampleRate,
		minIndex:   minIndex,
		maxIndex:   maxIndex,
		factor:     factor,
		norm:       norm,
		bins:       indexBins(minIndex, maxIndex),
	}
	st.bank = st.build(st.bins, factor, norm)

	return st, nil
}

// resolveMaxIndex maps the unset value 0 to fft_length/2 - 1
func resolveMaxIndex(maxIndex, fftLength int) (int, error) {
	switch {
	case maxIndex < 0:
		return 0, configErr("max_index", maxIndex, "must be positive, or 0 for fft_length/2 - 1")
	case maxIndex == 0:
		return fftLength/2 - 1, nil
	default:
		return maxIndex, nil
	}
}

func checkIndexRange(minIndex, maxIndex, limit int) error {
	if minIndex < 1 {
		return configErr("min_index", minIndex, "must be a positive integer")
	}
	if maxIndex > limit {
		return configErr("max_index", maxIndex, "must be less than or equal to %d", limit)
	}
	if minIndex >= maxIndex {
		return configErr("min_index", minIndex, "must be less than max_index=%d", maxIndex)
	}
	return nil
}

func checkFactorNorm(factor, norm float64) error {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return configErr("factor", factor, "must be a positive number")
	}
	if !(norm > 0) || math.IsInf(norm, 0) {
		return configErr("norm", norm, "must be a positive number")
	}
	return nil
}

func indexBins(minIndex, maxIndex int) []float64 {
	bins := make([]float64, maxIndex-minIndex+1)
	for i := range bins {
		bins[i] = float64(minIndex + i)
	}
	return bins
}

func (s *ST) build(bins []float64, factor, norm float64) []window {
	start := time.Now()
	bank := gaussianBank(bins, s.fftLength, factor, norm, false)
	s.logger.Debug("window bank built", logging.Fields{
		"num":        len(bank),
		"fft_length": s.fftLength,
		"factor":     factor,
		"norm":       norm,
		"elapsed":    time.Since(start),
	})
	return bank
}

// Transform returns the (num, fft_length) S-Transform of signal
func (s *ST) Transform(signal []float64) (*Result, error) {
	if err := checkSignal(signal, s.fftLength); err != nil {
		return nil, err
	}

	s.mu.RLock()
	bank := s.bank
	s.mu.RUnlock()

	return s.core.run(s.core.forward(signal), bank), nil
}

// UseBinArr replaces the row centres with caller-supplied (possibly
// fractional) FFT bins and rebuilds the window bank. The row count follows
// len(bins). On error the current bank is kept.
func (s *ST) UseBinArr(bins []float64) error {
	if len(bins) == 0 {
		return configErr("bin_arr", len(bins), "must not be empty")
	}
	half := float64(s.fftLength / 2)
	for i, b := range bins {
		if math.IsNaN(b) || b < 0 || b > half {
			return configErr("bin_arr", b, "element %d must be within [0, %v]", i, half)
		}
	}

	own := make([]float64, len(bins))
	copy(own, bins)

	s.mu.RLock()
	factor, norm := s.factor, s.norm
	s.mu.RUnlock()

	bank := s.build(own, factor, norm)

	s.mu.Lock()
	s.bins = own
	s.bank = bank
	s.mu.Unlock()
	return nil
}

// SetValue changes factor and norm and rebuilds the window bank
func (s *ST) SetValue(factor, norm float64) error {
	if err := checkFactorNorm(factor, norm); err != nil {
		return err
	}

	s.mu.RLock()
	bins := s.bins
	s.mu.RUnlock()

	bank := s.build(bins, factor, norm)

	s.mu.Lock()
	s.factor, s.norm = factor, norm
	s.bank = bank
	s.mu.Unlock()
	return nil
}

// Value returns the current factor and norm
func (s *ST) Value() (factor, norm float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.factor, s.norm
}

// Num returns the number of rows
func (s *ST) Num() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bins)
}

// FFTLength returns 2^radix2_exp
func (s *ST) FFTLength() int { return s.fftLength }

// SampleRate returns the sampling rate in Hz
func (s *ST) SampleRate() int { return s.sampleRate }

// FreBandArr returns the centre frequency of each row in Hz
func (s *ST) FreBandArr() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return binsToHz(s.bins, s.fftLength, s.sampleRate)
}

// XCoords returns fft_length+1 time edges in seconds
func (s *ST) XCoords() []float64 {
	return xCoords(s.fftLength, s.sampleRate)
}

// YCoords returns the row frequencies with the first repeated in front
func (s *ST) YCoords() []float64 {
	fre := s.FreBandArr()
	return yCoords(fre[0], fre)
}

func binsToHz(bins []float64, fftLength, sampleRate int) []float64 {
	out := make([]float64, len(bins))
	scale := float64(sampleRate) / float64(fftLength)
	for i, b := range bins {
		out[i] = b * scale
	}
	return out
}
