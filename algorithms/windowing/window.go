package windowing

import (
	"fmt"
	"math"
)

// Type identifies a window shape
type Type int

const (
	Rectangular Type = iota
	Hann
	Hamming
	Blackman
	Kaiser
	Gauss
	Bohman
)

var typeNames = map[Type]string{
	Rectangular: "rectangular",
	Hann:        "hann",
	Hamming:     "hamming",
	Blackman:    "blackman",
	Kaiser:      "kaiser",
	Gauss:       "gauss",
	Bohman:      "bohman",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("window(%d)", int(t))
}

// DefaultParam returns the shape parameter used when none is given:
// Kaiser beta, Gauss sigma (relative to the half width).
func DefaultParam(t Type) float64 {
	switch t {
	case Kaiser:
		return 5.0
	case Gauss:
		return 0.4
	default:
		return 0
	}
}

// Shape evaluates window t at normalized position x in [0, 1].
// The window peaks at x = 0.5; positions outside [0, 1] give 0.
// Results are never negative.
func Shape(t Type, x, param float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	return max(shape(t, x, param), 0)
}

func shape(t Type, x, param float64) float64 {
	arg := 2 * math.Pi * x
	u := math.Abs(2*x - 1) // distance from the centre, 0..1

	switch t {
	case Rectangular:
		return 1.0
	case Hann:
		return 0.5 * (1.0 - math.Cos(arg))
	case Hamming:
		return 0.54 - 0.46*math.Cos(arg)
	case Blackman:
		// rounding leaves about -1.4e-17 at the edges
		return 0.42 - 0.5*math.Cos(arg) + 0.08*math.Cos(2*arg)
	case Kaiser:
		return besselI0(param*math.Sqrt(1-u*u)) / besselI0(param)
	case Gauss:
		if param <= 0 {
			param = DefaultParam(Gauss)
		}
		return math.Exp(-0.5 * (u / param) * (u / param))
	case Bohman:
		return (1-u)*math.Cos(math.Pi*u) + math.Sin(math.Pi*u)/math.Pi
	default:
		return 0
	}
}

// besselI0 computes the zero-order modified Bessel function of the first kind
func besselI0(x float64) float64 {
	// Series expansion approximation
	sum := 1.0
	term := 1.0

	for i := 1; i < 50; i++ {
		term *= (x / (2.0 * float64(i))) * (x / (2.0 * float64(i)))
		sum += term

		if term < 1e-12*sum {
			break
		}
	}

	return sum
}
