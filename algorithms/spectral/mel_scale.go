package spectral

import (
	"math"
)

// Warp maps Hz onto a perceptual axis and back.
// Band generators space points evenly on the warped axis.
type Warp interface {
	ToScale(hz float64) float64
	ToHz(v float64) float64
}

// MelScale provides mel frequency conversion utilities (HTK formula)
type MelScale struct{}

// NewMelScale creates a new mel scale converter
func NewMelScale() *MelScale {
	return &MelScale{}
}

// HzToMel converts frequency in Hz to mel scale
func (ms *MelScale) HzToMel(hz float64) float64 {
	return 2595.0 * math.Log10(1.0+hz/700.0)
}

// MelToHz converts mel scale to frequency in Hz
func (ms *MelScale) MelToHz(mel float64) float64 {
	return 700.0 * (math.Pow(10.0, mel/2595.0) - 1.0)
}

func (ms *MelScale) ToScale(hz float64) float64 { return ms.HzToMel(hz) }
func (ms *MelScale) ToHz(v float64) float64     { return ms.MelToHz(v) }

// LinearScale is the identity warp, used for evenly spaced Hz bands
type LinearScale struct{}

func (LinearScale) ToScale(hz float64) float64 { return hz }
func (LinearScale) ToHz(v float64) float64     { return v }
