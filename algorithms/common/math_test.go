package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 4096} {
		assert.True(t, IsPowerOfTwo(n), n)
	}
	for _, n := range []int{0, -4, 3, 4095} {
		assert.False(t, IsPowerOfTwo(n), n)
	}
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5))
	assert.Equal(t, []float64{3}, Linspace(3, 9, 1))
	assert.Empty(t, Linspace(0, 1, 0))
}

func TestGeomspace(t *testing.T) {
	got := Geomspace(100, 2, 4)
	assert.InDeltaSlice(t, []float64{100, 200, 400, 800}, got, 1e-9)
}

func TestStrictlyIncreasing(t *testing.T) {
	assert.True(t, StrictlyIncreasing([]float64{1, 2, 3}))
	assert.False(t, StrictlyIncreasing([]float64{1, 1, 3}))
	assert.True(t, StrictlyIncreasing(nil))
}

func TestMod(t *testing.T) {
	assert.Equal(t, 6, Mod(-2, 8))
	assert.Equal(t, 1, Mod(9, 8))
	assert.Equal(t, 0, Mod(-8, 8))
}
