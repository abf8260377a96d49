package spectral

import (
	"math"
)

// BarkScale provides bark frequency conversion utilities
// Based on critical bands of human auditory perception
type BarkScale struct{}

// NewBarkScale creates a new bark scale converter
func NewBarkScale() *BarkScale {
	return &BarkScale{}
}

// HzToBark converts frequency in Hz to bark scale
// Using Traunmüller (1990) formula
func (bs *BarkScale) HzToBark(hz float64) float64 {
	return (26.81 * hz / (1960.0 + hz)) - 0.53
}

// BarkToHz converts bark scale to frequency in Hz
// Inverse of Traunmüller formula
func (bs *BarkScale) BarkToHz(bark float64) float64 {
	return 1960.0 * (bark + 0.53) / (26.28 - bark)
}

// HzToBarkZwicker converts frequency in Hz to bark scale using Zwicker & Terhardt (1980)
func (bs *BarkScale) HzToBarkZwicker(hz float64) float64 {
	return 13.0*math.Atan(0.00076*hz) + 3.5*math.Atan((hz/7500.0)*(hz/7500.0))
}

func (bs *BarkScale) ToScale(hz float64) float64 { return bs.HzToBark(hz) }
func (bs *BarkScale) ToHz(v float64) float64     { return bs.BarkToHz(v) }

// GetCriticalBandEdges returns the 24 critical band edge frequencies in Hz
func (bs *BarkScale) GetCriticalBandEdges() []float64 {
	return []float64{
		0, 100, 200, 300, 400, 510, 630, 770, 920, 1080,
		1270, 1480, 1720, 2000, 2320, 2700, 3150, 3700, 4400,
		5300, 6400, 7700, 9500, 12000, 15500,
	}
}
