package xcov

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-dic/dic/grid"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by cross-covariance functions.
var (
	ErrEmptyInput        = errors.New("xcov: empty input")
	ErrDimensionMismatch = errors.New("xcov: matrix dimensions differ")
	ErrNoPeak            = errors.New("xcov: surface has no finite maximum")
)

// tieTolerance is the relative distance from the maximum within which surface
// values count as equal in ArgMax.
const tieTolerance = 1e-9

// Xcov2D returns the cross-covariance surface of a and b, which must have the
// same dimensions. The surface is 2P x 2P where P is the side of grid.Pad(a).
func Xcov2D(a, b mat.Matrix) (*mat.Dense, error) {
	return xcov2D(a, b, backendAuto)
}

func xcov2D(a, b mat.Matrix, be backend) (*mat.Dense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar == 0 || ac == 0 || br == 0 || bc == 0 {
		return nil, ErrEmptyInput
	}
	if ar != br || ac != bc {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, ar, ac, br, bc)
	}

	pa := grid.Pad(a)
	pb := grid.Flip(grid.Pad(b))
	p, _ := pa.Dims()
	n := 2 * p

	f, err := newFFT2(n, be)
	if err != nil {
		return nil, err
	}

	aFreq := load(pa, n)
	bFreq := load(pb, n)
	if err := f.forward(aFreq); err != nil {
		return nil, err
	}
	if err := f.forward(bFreq); err != nil {
		return nil, err
	}

	for i := range aFreq {
		aFreq[i] *= bFreq[i]
	}

	if err := f.inverse(aFreq); err != nil {
		return nil, err
	}

	// The circular convolution holds shift d at index P-1-d; flipping it
	// moves shift d to index P+d.
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(n-1-i, n-1-j, real(aFreq[i*n+j]))
		}
	}
	return out, nil
}

// load copies the p x p matrix m into the top-left corner of a zeroed n x n
// complex frame.
func load(m *mat.Dense, n int) []complex128 {
	r, c := m.Dims()
	data := make([]complex128, n*n)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*n+j] = complex(m.At(i, j), 0)
		}
	}
	return data
}

// ArgMax returns the position of the maximum of s. Cells are scanned column by
// column and the first cell within a relative tolerance of the maximum wins,
// so exact ties resolve to the lowest column, then the lowest row.
func ArgMax(s mat.Matrix) (row, col int) {
	r, c := s.Dims()
	if r == 0 || c == 0 {
		return -1, -1
	}

	best := math.Inf(-1)
	scale := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := s.At(i, j)
			best = math.Max(best, v)
			scale = math.Max(scale, math.Abs(v))
		}
	}

	threshold := best - tieTolerance*scale
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if s.At(i, j) >= threshold {
				return i, j
			}
		}
	}
	return -1, -1
}

// Offset returns the shift (dr, dc) at the maximum of a surface produced by
// Xcov2D, measured from the centre cell. It fails with ErrNoPeak when the
// surface holds non-finite values.
func Offset(s mat.Matrix) (dr, dc int, err error) {
	r, c := s.Dims()
	row, col := ArgMax(s)
	if row < 0 || !isFinite(s.At(row, col)) {
		return 0, 0, fmt.Errorf("%w: %dx%d surface", ErrNoPeak, r, c)
	}
	return row - r/2, col - c/2, nil
}

// Peak computes Xcov2D(a, b) and returns the offset of its maximum.
func Peak(a, b mat.Matrix) (dr, dc int, err error) {
	s, err := Xcov2D(a, b)
	if err != nil {
		return 0, 0, err
	}
	return Offset(s)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
