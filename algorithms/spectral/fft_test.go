package spectral

import (
	"math"
	"math/cmplx"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveDFT(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range n {
		var sum complex128
		for t, v := range x {
			angle := -2 * math.Pi * float64(k*t) / float64(n)
			sum += complex(v, 0) * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}

func randomSignal(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64()*2 - 1
	}
	return x
}

func TestEnginesMatchNaiveDFT(t *testing.T) {
	x := randomSignal(64, 1)
	want := naiveDFT(x)

	for _, kind := range []EngineKind{EngineGonum, EngineGoDSP} {
		engine, err := NewEngine(kind, len(x))
		require.NoError(t, err)
		assert.Equal(t, 64, engine.Len())

		got := make([]complex128, len(x))
		engine.Forward(got, x)
		for k := range want {
			assert.InDelta(t, real(want[k]), real(got[k]), 1e-9, "%s re[%d]", kind, k)
			assert.InDelta(t, imag(want[k]), imag(got[k]), 1e-9, "%s im[%d]", kind, k)
		}
	}
}

func TestEngineInverseIsScaled(t *testing.T) {
	x := randomSignal(128, 2)

	for _, kind := range []EngineKind{EngineGonum, EngineGoDSP} {
		engine, err := NewEngine(kind, len(x))
		require.NoError(t, err)

		spectrum := make([]complex128, len(x))
		engine.Forward(spectrum, x)
		back := make([]complex128, len(x))
		engine.Inverse(back, spectrum)

		for i := range x {
			assert.InDelta(t, x[i], real(back[i]), 1e-12, "%s sample %d", kind, i)
			assert.InDelta(t, 0, imag(back[i]), 1e-12)
		}
	}
}

func TestEngineRejectsBadLength(t *testing.T) {
	_, err := NewEngine(EngineGonum, 100)
	assert.Error(t, err)
	_, err = NewEngine("fftw", 64)
	assert.Error(t, err)
}

func TestGonumEngineConcurrentUse(t *testing.T) {
	engine, err := NewEngine(EngineGonum, 256)
	require.NoError(t, err)

	x := randomSignal(256, 3)
	want := make([]complex128, 256)
	engine.Forward(want, x)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := make([]complex128, 256)
			for range 20 {
				engine.Forward(got, x)
			}
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestParseEngineKind(t *testing.T) {
	kind, err := ParseEngineKind("godsp")
	require.NoError(t, err)
	assert.Equal(t, EngineGoDSP, kind)

	kind, err = ParseEngineKind("")
	require.NoError(t, err)
	assert.Equal(t, EngineGonum, kind)

	_, err = ParseEngineKind("cuda")
	assert.Error(t, err)
}
