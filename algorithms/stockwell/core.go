package stockwell

import (
	"sync"

	"github.com/RyanBlaney/sonido-stockwell/algorithms/common"
	"github.com/RyanBlaney/sonido-stockwell/algorithms/spectral"
	"github.com/sourcegraph/conc/pool"
)

// window is one row's frequency-domain weighting.
// Offset m (lo <= m < lo+len(taps)) reads spectrum bin shift+m and writes
// buffer slot m, both modulo fft_length, so a non-zero shift demodulates
// the row by that many bins. Quadrature taps multiply by i*tap.
type window struct {
	shift      int
	lo         int
	taps       []float64
	quadrature bool
}

// core runs the shared forward FFT / per-row inverse FFT pipeline
type core struct {
	n       int
	engine  spectral.Engine
	workers int
	scratch sync.Pool
}

func newCore(n int, o options) (*core, error) {
	engine, err := spectral.NewEngine(o.engine, n)
	if err != nil {
		return nil, configErr("engine", o.engine, "%v", err)
	}
	c := &core{
		n:       n,
		engine:  engine,
		workers: o.workers,
	}
	c.scratch.New = func() any {
		buf := make([]complex128, n)
		return &buf
	}
	return c, nil
}

// forward returns the spectrum of a signal already checked for length
func (c *core) forward(signal []float64) []complex128 {
	spectrum := make([]complex128, c.n)
	c.engine.Forward(spectrum, signal)
	return spectrum
}

// run applies every window to spectrum and inverse transforms each row
func (c *core) run(spectrum []complex128, rows []window) *Result {
	result := newResult(len(rows), c.n)

	if c.workers <= 1 || len(rows) == 1 {
		buf := c.scratch.Get().(*[]complex128)
		for r := range rows {
			c.row(spectrum, rows[r], *buf, result, r)
		}
		c.scratch.Put(buf)
		return result
	}

	p := pool.New().WithMaxGoroutines(c.workers)
	for r := range rows {
		p.Go(func() {
			buf := c.scratch.Get().(*[]complex128)
			defer c.scratch.Put(buf)
			c.row(spectrum, rows[r], *buf, result, r)
		})
	}
	p.Wait()

	return result
}

func (c *core) row(spectrum []complex128, w window, buf []complex128, result *Result, r int) {
	clear(buf)
	for i, tap := range w.taps {
		m := w.lo + i
		v := spectrum[common.Mod(w.shift+m, c.n)]
		if w.quadrature {
			buf[common.Mod(m, c.n)] = v * complex(0, tap)
		} else {
			buf[common.Mod(m, c.n)] = v * complex(tap, 0)
		}
	}

	c.engine.Inverse(buf, buf)

	re := result.Real.RawRowView(r)
	im := result.Imag.RawRowView(r)
	for t, v := range buf {
		re[t] = real(v)
		im[t] = imag(v)
	}
}
