package stockwell

import (
	"time"

	"github.com/RyanBlaney/sonido-stockwell/logging"
)

// FST is the S-Transform limited to the bins [minIndex, maxIndex], with
// each Gaussian cut to the spectral band it actually weights.
type FST struct {
	core   *core
	logger logging.Logger

	radix2Exp  int
	fftLength  int
	sampleRate int
	minIndex   int
	maxIndex   int

	bins []float64
	bank []window
}

// NewFST creates a band-limited S-Transform; maxIndex may reach fft_length/2.
// maxIndex 0 selects fft_length/2 - 1.
func NewFST(radix2Exp, sampleRate, minIndex, maxIndex int, opts ...Option) (*FST, error) {
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
	if err := checkIndexRange(minIndex, maxIndex, fftLength/2); err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	c, err := newCore(fftLength, o)
	if err != nil {
		return nil, err
	}

	f := &FST{
		core:       c,
		logger:     o.logger.WithFields(logging.Fields{"transform": "fst"}),
		radix2Exp:  radix2Exp,
		fftLength:  fftLength,
		sampleRate: sampleRate,
		minIndex:   minIndex,
		maxIndex:   maxIndex,
		bins:       indexBins(minIndex, maxIndex),
	}

	start := time.Now()
	f.bank = gaussianBank(f.bins, fftLength, 1, 1, true)

	taps := 0
	for _, w := range f.bank {
		taps += len(w.taps)
	}
	f.logger.Debug("window bank built", logging.Fields{
		"num":        len(f.bank),
		"fft_length": fftLength,
		"taps":       taps,
		"elapsed":    time.Since(start),
	})

	return f, nil
}

// Transform returns the (num, fft_length) band-limited S-Transform of signal
func (f *FST) Transform(signal []float64) (*Result, error) {
	if err := checkSignal(signal, f.fftLength); err != nil {
		return nil, err
	}
	return f.core.run(f.core.forward(signal), f.bank), nil
}

// Num returns the number of rows
func (f *FST) Num() int { return len(f.bins) }

// FFTLength returns 2^radix2_exp
func (f *FST) FFTLength() int { return f.fftLength }

// SampleRate returns the sampling rate in Hz
func (f *FST) SampleRate() int { return f.sampleRate }

// FreBandArr returns the centre frequency of each row in Hz
func (f *FST) FreBandArr() []float64 {
	return binsToHz(f.bins, f.fftLength, f.sampleRate)
}

// XCoords returns fft_length+1 time edges in seconds
func (f *FST) XCoords() []float64 {
	return xCoords(f.fftLength, f.sampleRate)
}

// YCoords returns the row frequencies with the first repeated in front
func (f *FST) YCoords() []float64 {
	fre := f.FreBandArr()
	return yCoords(fre[0], fre)
}
