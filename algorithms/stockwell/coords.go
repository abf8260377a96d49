package stockwell

import (
	"gonum.org/v1/gonum/floats"
)

// xCoords returns fftLength+1 time edges from 0 to fftLength/sampleRate
func xCoords(fftLength, sampleRate int) []float64 {
	end := float64(fftLength) / float64(sampleRate)
	out := floats.Span(make([]float64, fftLength+1), 0, end)
	out[fftLength] = end
	return out
}

// yCoords prepends first to the band frequencies
func yCoords(first float64, bands []float64) []float64 {
	out := make([]float64, 0, len(bands)+1)
	out = append(out, first)
	return append(out, bands...)
}
