package stockwell

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Result is a (num, fft_length) complex matrix stored as separate real and
// imaginary planes. Rows are frequency bands, columns are time samples.
// Each call returns a fresh Result owned by the caller.
type Result struct {
	Real *mat.Dense
	Imag *mat.Dense
}

func newResult(rows, cols int) *Result {
	return &Result{
		Real: mat.NewDense(rows, cols, nil),
		Imag: mat.NewDense(rows, cols, nil),
	}
}

// Rows returns the number of frequency rows
func (r *Result) Rows() int {
	rows, _ := r.Real.Dims()
	return rows
}

// Cols returns the number of time columns
func (r *Result) Cols() int {
	_, cols := r.Real.Dims()
	return cols
}

// At returns the complex value at row i, column j
func (r *Result) At(i, j int) complex128 {
	return complex(r.Real.At(i, j), r.Imag.At(i, j))
}

// Row returns row i as complex values
func (r *Result) Row(i int) []complex128 {
	re := r.Real.RawRowView(i)
	im := r.Imag.RawRowView(i)
	out := make([]complex128, len(re))
	for j := range re {
		out[j] = complex(re[j], im[j])
	}
	return out
}

// Magnitude returns |value| for every cell
func (r *Result) Magnitude() *mat.Dense {
	rows, cols := r.Real.Dims()
	mag := mat.NewDense(rows, cols, nil)
	for i := range rows {
		re := r.Real.RawRowView(i)
		im := r.Imag.RawRowView(i)
		dst := mag.RawRowView(i)
		for j := range dst {
			dst[j] = math.Hypot(re[j], im[j])
		}
	}
	return mag
}

// RowStats returns the mean and standard deviation of row i's magnitude
func (r *Result) RowStats(i int) (mean, std float64) {
	return stat.MeanStdDev(r.rowMagnitude(i), nil)
}

// PeakRow returns the row with the largest mean magnitude
func (r *Result) PeakRow() int {
	means := make([]float64, r.Rows())
	for i := range means {
		means[i] = stat.Mean(r.rowMagnitude(i), nil)
	}
	return floats.MaxIdx(means)
}

func (r *Result) rowMagnitude(i int) []float64 {
	row := r.Row(i)
	mag := make([]float64, len(row))
	for j, v := range row {
		mag[j] = cmplx.Abs(v)
	}
	return mag
}

// InstantaneousFrequency estimates the frequency in Hz of each column of a
// row from the row and its det (time derivative) counterpart.
// Columns where the row vanishes yield 0.
func InstantaneousFrequency(row, det []complex128, sampleRate int) []float64 {
	n := min(len(row), len(det))
	out := make([]float64, n)
	for t := range n {
		if row[t] == 0 {
			continue
		}
		out[t] = imag(det[t]/row[t]) * float64(sampleRate) / (2 * math.Pi)
	}
	return out
}
