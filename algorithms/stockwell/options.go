package stockwell

import (
	"github.com/RyanBlaney/sonido-stockwell/algorithms/spectral"
	"github.com/RyanBlaney/sonido-stockwell/logging"
)

// maxRadix2Exp bounds fft_length at 2^24 samples
const maxRadix2Exp = 24

// Option customizes a transform at construction
type Option func(*options)

type options struct {
	logger  logging.Logger
	workers int
	engine  spectral.EngineKind
}

func defaultOptions() options {
	return options{
		logger:  logging.GetGlobalLogger(),
		workers: 1,
		engine:  spectral.EngineGonum,
	}
}

// WithLogger sets the logger used for window bank builds; the global
// logger is used otherwise
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWorkers computes rows on up to n goroutines per call; n <= 1 runs serially
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}

// WithEngine selects the FFT backend
func WithEngine(kind spectral.EngineKind) Option {
	return func(o *options) {
		o.engine = kind
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func checkRadix2Exp(radix2Exp int) error {
	if radix2Exp < 1 || radix2Exp > maxRadix2Exp {
		return configErr("radix2_exp", radix2Exp, "must be in [1, %d]", maxRadix2Exp)
	}
	return nil
}

func checkSampleRate(sampleRate int) error {
	if sampleRate <= 0 {
		return configErr("samplate", sampleRate, "must be positive")
	}
	return nil
}
