package windowing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allTypes = []Type{Rectangular, Hann, Hamming, Blackman, Kaiser, Gauss, Bohman}

func TestShapePeaksAtCentre(t *testing.T) {
	for _, typ := range allTypes {
		centre := Shape(typ, 0.5, DefaultParam(typ))
		assert.InDelta(t, 1.0, centre, 1e-9, typ.String())
		for _, x := range []float64{0, 0.1, 0.3, 0.7, 0.9, 1} {
			v := Shape(typ, x, DefaultParam(typ))
			assert.LessOrEqual(t, v, centre+1e-12, "%s at %v", typ, x)
		}
	}
}

func TestShapeNeverNegative(t *testing.T) {
	for _, typ := range allTypes {
		for i := 0; i <= 1000; i++ {
			x := float64(i) / 1000
			assert.GreaterOrEqual(t, Shape(typ, x, DefaultParam(typ)), 0.0, "%s at %v", typ, x)
		}
	}

	// the raw Blackman sum rounds below zero at both edges
	assert.Equal(t, 0.0, Shape(Blackman, 0, 0))
	assert.Equal(t, 0.0, Shape(Blackman, 1, 0))
}

func TestShapeIsSymmetric(t *testing.T) {
	for _, typ := range allTypes {
		for _, x := range []float64{0.05, 0.2, 0.45} {
			assert.InDelta(t, Shape(typ, x, DefaultParam(typ)), Shape(typ, 1-x, DefaultParam(typ)), 1e-9, typ.String())
		}
	}
}

func TestShapeOutsideSupport(t *testing.T) {
	assert.Zero(t, Shape(Hann, -0.1, 0))
	assert.Zero(t, Shape(Rectangular, 1.1, 0))
	assert.Zero(t, Shape(Type(99), 0.5, 0))
}

func TestHannValues(t *testing.T) {
	got := make([]float64, 5)
	for i := range got {
		got[i] = Shape(Hann, float64(i)/4, 0)
	}
	assert.InDeltaSlice(t, []float64{0, 0.5, 1, 0.5, 0}, got, 1e-12)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "bohman", Bohman.String())
	assert.Equal(t, "window(99)", Type(99).String())
}
