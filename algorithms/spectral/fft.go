package spectral

import (
	"fmt"
	"sync"

	"github.com/RyanBlaney/sonido-stockwell/algorithms/common"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// EngineKind selects an FFT backend
type EngineKind string

const (
	// EngineGonum uses gonum's FFTPACK port with pooled plans and caller-owned buffers
	EngineGonum EngineKind = "gonum"
	// EngineGoDSP uses mjibson/go-dsp, which allocates its results
	EngineGoDSP EngineKind = "godsp"
)

// Engine is a fixed-length complex FFT.
// Forward is the unnormalized DFT, Inverse is scaled by 1/N.
// Implementations are safe for concurrent use.
type Engine interface {
	Len() int
	Forward(dst []complex128, src []float64)
	Inverse(dst, src []complex128)
}

// NewEngine returns an engine of the given kind for power-of-two length n
func NewEngine(kind EngineKind, n int) (Engine, error) {
	if !common.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("fft length %d is not a power of two", n)
	}

	switch kind {
	case EngineGonum, "":
		return &gonumEngine{n: n, plans: planPool(n)}, nil
	case EngineGoDSP:
		return &goDSPEngine{n: n}, nil
	default:
		return nil, fmt.Errorf("unknown fft engine %q", kind)
	}
}

// ParseEngineKind validates an engine name
func ParseEngineKind(name string) (EngineKind, error) {
	switch EngineKind(name) {
	case EngineGonum, "":
		return EngineGonum, nil
	case EngineGoDSP:
		return EngineGoDSP, nil
	default:
		return "", fmt.Errorf("unknown fft engine %q", name)
	}
}

// gonum plans carry scratch space, so each length keeps a pool of them
var (
	planMu    sync.Mutex
	planCache = make(map[int]*sync.Pool)
)

type gonumPlan struct {
	fft *fourier.CmplxFFT
	buf []complex128
}

func planPool(n int) *sync.Pool {
	planMu.Lock()
	defer planMu.Unlock()

	if p, ok := planCache[n]; ok {
		return p
	}
	p := &sync.Pool{
		New: func() any {
			return &gonumPlan{
				fft: fourier.NewCmplxFFT(n),
				buf: make([]complex128, n),
			}
		},
	}
	planCache[n] = p
	return p
}

type gonumEngine struct {
	n     int
	plans *sync.Pool
}

func (g *gonumEngine) Len() int { return g.n }

func (g *gonumEngine) Forward(dst []complex128, src []float64) {
	plan := g.plans.Get().(*gonumPlan)
	defer g.plans.Put(plan)

	for i, v := range src {
		plan.buf[i] = complex(v, 0)
	}
	plan.fft.Coefficients(dst, plan.buf)
}

func (g *gonumEngine) Inverse(dst, src []complex128) {
	plan := g.plans.Get().(*gonumPlan)
	defer g.plans.Put(plan)

	plan.fft.Sequence(dst, src)
	scale := complex(1/float64(g.n), 0)
	for i := range dst {
		dst[i] *= scale
	}
}

type goDSPEngine struct {
	n int
}

func (e *goDSPEngine) Len() int { return e.n }

func (e *goDSPEngine) Forward(dst []complex128, src []float64) {
	copy(dst, fft.FFTReal(src))
}

func (e *goDSPEngine) Inverse(dst, src []complex128) {
	copy(dst, fft.IFFT(src))
}
