package spectral

import "math"

// ErbScale converts between Hz and the equivalent-rectangular-bandwidth
// rate scale of Glasberg & Moore (1990)
type ErbScale struct{}

// NewErbScale creates a new ERB scale converter
func NewErbScale() *ErbScale {
	return &ErbScale{}
}

// HzToErb returns the ERB-rate (number of ERBs below hz)
func (es *ErbScale) HzToErb(hz float64) float64 {
	return 21.4 * math.Log10(1.0+0.00437*hz)
}

// ErbToHz inverts HzToErb
func (es *ErbScale) ErbToHz(erb float64) float64 {
	return (math.Pow(10.0, erb/21.4) - 1.0) / 0.00437
}

// Bandwidth returns the equivalent rectangular bandwidth in Hz at hz
func (es *ErbScale) Bandwidth(hz float64) float64 {
	return 24.7 * (0.00437*hz + 1.0)
}

func (es *ErbScale) ToScale(hz float64) float64 { return es.HzToErb(hz) }
func (es *ErbScale) ToHz(v float64) float64     { return es.ErbToHz(v) }
