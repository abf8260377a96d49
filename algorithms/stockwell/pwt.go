package stockwell

import (
	"math"
	"sync"
	"time"

	"github.com/RyanBlaney/sonido-stockwell/algorithms/filterbank"
	"github.com/RyanBlaney/sonido-stockwell/logging"
)

// PWTConfig holds the construction parameters of a pseudo wavelet transform.
//
// Zero frequencies mean "unset": HighFre == 0 selects SampleRate/2, and
// LowFre == 0 selects C1 (32.703 Hz) for the octave and log scales. An
// explicit 0 Hz floor cannot be requested for those scales, since they
// reject anything below C1 anyway; other scales start at 0 Hz.
type PWTConfig struct {
	Num          int
	Radix2Exp    int
	SampleRate   int
	LowFre       float64
	HighFre      float64
	BinPerOctave int
	Scale        filterbank.ScaleType
	Style        filterbank.StyleType
	Normal       filterbank.NormalType
	IsPadding    bool
}

// DefaultPWTConfig returns num octave bands of a 4096-point block at 32 kHz
func DefaultPWTConfig(num int) PWTConfig {
	return PWTConfig{
		Num:          num,
		Radix2Exp:    12,
		SampleRate:   32000,
		HighFre:      16000,
		BinPerOctave: 12,
		Scale:        filterbank.ScaleOctave,
		Style:        filterbank.StyleSlaney,
		Normal:       filterbank.NormalNone,
		IsPadding:    true,
	}
}

// PWT applies a perceptual filter bank to one FFT of the block and inverse
// transforms every band. Rows keep their carrier, so the phase of row r
// advances at the band's frequency.
type PWT struct {
	mu     sync.RWMutex
	core   *core
	logger logging.Logger

	cfg       PWTConfig
	fftLength int
	band      *filterbank.Band
	filters   []filterbank.Filter

	bank []window
	det  []window
}

// NewPWT validates cfg, generates the band layout and builds the filter bank
func NewPWT(cfg PWTConfig, opts ...Option) (*PWT, error) {
	if err := checkRadix2Exp(cfg.Radix2Exp); err != nil {
		return nil, err
	}
	if err := checkSampleRate(cfg.SampleRate); err != nil {
		return nil, err
	}

	fftLength := 1 << cfg.Radix2Exp
	band, err := filterbank.GenerateBand(filterbank.BandConfig{
		Num:          cfg.Num,
		FFTLength:    fftLength,
		SampleRate:   cfg.SampleRate,
		LowFre:       cfg.LowFre,
		HighFre:      cfg.HighFre,
		BinPerOctave: cfg.BinPerOctave,
		Scale:        cfg.Scale,
	})
	if err != nil {
		return nil, fromParamError(err)
	}

	start := time.Now()
	filters, err := filterbank.Build(band, filterbank.BankConfig{
		Style:     cfg.Style,
		Normal:    cfg.Normal,
		IsPadding: cfg.IsPadding,
	})
	if err != nil {
		return nil, fromParamError(err)
	}

	o := buildOptions(opts)
	c, err := newCore(fftLength, o)
	if err != nil {
		return nil, err
	}

	cfg.LowFre = band.LowFre
	cfg.HighFre = band.HighFre

	p := &PWT{
		core:      c,
		logger:    o.logger.WithFields(logging.Fields{"transform": "pwt"}),
		cfg:       cfg,
		fftLength: fftLength,
		band:      band,
		filters:   filters,
	}
	p.bank = filterWindows(filters, nil)

	for i, f := range filters {
		if f.Empty() {
			p.logger.Warn("band filter covers no fft bin, row will be zero", logging.Fields{
				"row":       i,
				"frequency": band.Centers[i],
				"style":     cfg.Style.String(),
			})
		}
	}
	p.logger.Debug("filter bank built", logging.Fields{
		"num":        band.Num(),
		"fft_length": fftLength,
		"scale":      cfg.Scale.String(),
		"style":      cfg.Style.String(),
		"normal":     cfg.Normal.String(),
		"elapsed":    time.Since(start),
	})

	return p, nil
}

// filterWindows maps filters onto undemodulated rows. With gain set, tap j
// is multiplied by gain(j) and applied in quadrature.
func filterWindows(filters []filterbank.Filter, gain func(bin int) float64) []window {
	rows := make([]window, len(filters))
	for i, f := range filters {
		taps := make([]float64, len(f.Weights))
		copy(taps, f.Weights)
		if gain != nil {
			for j := range taps {
				taps[j] *= gain(f.Start + j)
			}
		}
		rows[i] = window{lo: f.Start, taps: taps, quadrature: gain != nil}
	}
	return rows
}

// Transform returns the (num, fft_length) PWT of signal
func (p *PWT) Transform(signal []float64) (*Result, error) {
	if err := checkSignal(signal, p.fftLength); err != nil {
		return nil, err
	}
	return p.core.run(p.core.forward(signal), p.bank), nil
}

// EnableDet builds (true) or drops (false) the det bank: every filter tap
// at bin j multiplied by i*2*pi*j/fft_length, the time derivative of the row
// in radians per sample.
func (p *PWT) EnableDet(flag bool) {
	var det []window
	if flag {
		start := time.Now()
		n := float64(p.fftLength)
		det = filterWindows(p.filters, func(bin int) float64 {
			return 2 * math.Pi * float64(bin) / n
		})
		p.logger.Debug("det bank built", logging.Fields{
			"num":        len(det),
			"fft_length": p.fftLength,
			"elapsed":    time.Since(start),
		})
	}

	p.mu.Lock()
	p.det = det
	p.mu.Unlock()
}

// DetEnabled reports whether TransformDet is available
func (p *PWT) DetEnabled() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.det != nil
}

// TransformDet returns the det variant of signal; EnableDet(true) must have
// been called first.
func (p *PWT) TransformDet(signal []float64) (*Result, error) {
	det, err := p.detBank()
	if err != nil {
		return nil, err
	}
	if err := checkSignal(signal, p.fftLength); err != nil {
		return nil, err
	}
	return p.core.run(p.core.forward(signal), det), nil
}

// TransformBoth returns the PWT and its det variant from one forward FFT
func (p *PWT) TransformBoth(signal []float64) (*Result, *Result, error) {
	det, err := p.detBank()
	if err != nil {
		return nil, nil, err
	}
	if err := checkSignal(signal, p.fftLength); err != nil {
		return nil, nil, err
	}

	spectrum := p.core.forward(signal)
	return p.core.run(spectrum, p.bank), p.core.run(spectrum, det), nil
}

func (p *PWT) detBank() ([]window, error) {
	p.mu.RLock()
	det := p.det
	p.mu.RUnlock()

	if det == nil {
		return nil, ErrDetDisabled
	}
	return det, nil
}

// Config returns the construction parameters with derived frequencies filled in
func (p *PWT) Config() PWTConfig { return p.cfg }

// Band returns the band layout backing the filters
func (p *PWT) Band() *filterbank.Band { return p.band }

// Num returns the number of rows
func (p *PWT) Num() int { return p.band.Num() }

// FFTLength returns 2^radix2_exp
func (p *PWT) FFTLength() int { return p.fftLength }

// FreBandArr returns the centre frequency of each band in Hz
func (p *PWT) FreBandArr() []float64 {
	out := make([]float64, len(p.band.Centers))
	copy(out, p.band.Centers)
	return out
}

// BinBandArr returns the nearest FFT bin of each band centre
func (p *PWT) BinBandArr() []int {
	return p.band.IntBins()
}

// XCoords returns fft_length+1 time edges in seconds
func (p *PWT) XCoords() []float64 {
	return xCoords(p.fftLength, p.cfg.SampleRate)
}

// YCoords returns the band frequencies with low_fre in front
func (p *PWT) YCoords() []float64 {
	return yCoords(p.band.LowFre, p.band.Centers)
}
