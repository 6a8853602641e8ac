package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by grid functions.
var (
	ErrInvalidTileSize   = errors.New("grid: tile dimensions must be positive odd integers")
	ErrInvalidBounds     = errors.New("grid: bounds outside grid")
	ErrStackTooShort     = errors.New("grid: stack has too few layers")
	ErrDimensionMismatch = errors.New("grid: layer dimensions differ")
)

// Bounds is an inclusive rectangle of row and column indices.
type Bounds struct {
	RowMin, RowMax int
	ColMin, ColMax int
}

// Rows returns the number of rows covered by b.
func (b Bounds) Rows() int { return b.RowMax - b.RowMin + 1 }

// Cols returns the number of columns covered by b.
func (b Bounds) Cols() int { return b.ColMax - b.ColMin + 1 }

// Within reports whether b is non-empty and lies inside a rows x cols grid.
func (b Bounds) Within(rows, cols int) bool {
	return b.RowMin >= 0 && b.ColMin >= 0 &&
		b.RowMin <= b.RowMax && b.ColMin <= b.ColMax &&
		b.RowMax < rows && b.ColMax < cols
}

// Pad returns a square matrix whose side is the smallest even number not less
// than max(rows, cols) of m. The values of m occupy the top-left corner and the
// rest is zero.
func Pad(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	n := max(r, c)
	if n%2 != 0 {
		n++
	}

	out := mat.NewDense(n, n, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}
	return out
}

// Flip reverses the row and the column order of m (a 180 degree rotation).
func Flip(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(r-1-i, c-1-j, m.At(i, j))
		}
	}
	return out
}

// Shift moves the content of m by dy rows and dx columns. Positive dy moves
// content towards higher row indices, positive dx towards higher column
// indices. Content leaving the matrix is discarded and vacated cells are zero.
func Shift(m mat.Matrix, dy, dx int) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		ti := i + dy
		if ti < 0 || ti >= r {
			continue
		}
		for j := 0; j < c; j++ {
			tj := j + dx
			if tj < 0 || tj >= c {
				continue
			}
			out.Set(ti, tj, m.At(i, j))
		}
	}
	return out
}

// ExtractZero returns a matrix of the same size as m that keeps the values
// inside b and is zero everywhere else. Bounds are clipped to m.
func ExtractZero(m mat.Matrix, b Bounds) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := max(b.RowMin, 0); i <= min(b.RowMax, r-1); i++ {
		for j := max(b.ColMin, 0); j <= min(b.ColMax, c-1); j++ {
			out.Set(i, j, m.At(i, j))
		}
	}
	return out
}

// Crop returns a copy of the sub-matrix of m covered by b.
// b must lie inside m.
func Crop(m *mat.Dense, b Bounds) *mat.Dense {
	return mat.DenseCopyOf(m.Slice(b.RowMin, b.RowMax+1, b.ColMin, b.ColMax+1))
}

// Sanitize replaces NaN and infinite cells of m with zero in place.
func Sanitize(m *mat.Dense) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				m.Set(i, j, 0)
			}
		}
	}
}

// Sanitized returns m if all its cells are finite. Otherwise it returns a copy
// of m with NaN and infinite cells set to zero; m itself is left unchanged.
func Sanitized(m *mat.Dense) *mat.Dense {
	if IsFinite(m) {
		return m
	}
	out := mat.DenseCopyOf(m)
	Sanitize(out)
	return out
}

// IsFinite reports whether no cell of m is NaN or infinite.
func IsFinite(m mat.Matrix) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// IsZero reports whether every cell of m is zero.
func IsZero(m mat.Matrix) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) != 0 {
				return false
			}
		}
	}
	return true
}

// Stack is an ordered sequence of grids, one per time step.
type Stack []*mat.Dense

// Dims returns the dimensions shared by the layers of s.
// It returns zeros for an empty stack.
func (s Stack) Dims() (rows, cols int) {
	if len(s) == 0 || s[0] == nil {
		return 0, 0
	}
	return s[0].Dims()
}

// Validate checks that s has at least minLen layers and that all layers share
// the same dimensions.
func (s Stack) Validate(minLen int) error {
	if len(s) < minLen {
		return fmt.Errorf("%w: got %d, need at least %d", ErrStackTooShort, len(s), minLen)
	}
	r, c := s.Dims()
	for i, layer := range s {
		if layer == nil {
			return fmt.Errorf("%w: layer %d is nil", ErrDimensionMismatch, i)
		}
		lr, lc := layer.Dims()
		if lr != r || lc != c {
			return fmt.Errorf("%w: layer %d is %dx%d, layer 0 is %dx%d",
				ErrDimensionMismatch, i, lr, lc, r, c)
		}
	}
	return nil
}

// Sanitized returns s with every layer passed through Sanitized. The
// returned stack shares the layers that were already finite.
func (s Stack) Sanitized() Stack {
	out := make(Stack, len(s))
	for i, layer := range s {
		out[i] = Sanitized(layer)
	}
	return out
}
