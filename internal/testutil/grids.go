package testutil

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Random returns a rows x cols matrix of uniform values in [0, 1) drawn with a
// fixed seed for reproducibility.
func Random(seed int64, rows, cols int) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()
	}
	return mat.NewDense(rows, cols, data)
}

// Stamp writes patch into m with its top-left cell at (row, col). Cells of the
// patch that fall outside m are skipped.
func Stamp(m *mat.Dense, patch [][]float64, row, col int) {
	r, c := m.Dims()
	for i, line := range patch {
		for j, v := range line {
			ti, tj := row+i, col+j
			if ti < 0 || tj < 0 || ti >= r || tj >= c {
				continue
			}
			m.Set(ti, tj, v)
		}
	}
}

// MovingPatch returns steps grids of size rows x cols in which patch starts
// with its top-left cell at (row, col) and moves by (dRow, dCol) cells per
// step.
func MovingPatch(rows, cols, steps int, patch [][]float64, row, col, dRow, dCol int) []*mat.Dense {
	out := make([]*mat.Dense, steps)
	for t := range out {
		m := mat.NewDense(rows, cols, nil)
		Stamp(m, patch, row+t*dRow, col+t*dCol)
		out[t] = m
	}
	return out
}

// ShiftedRows returns steps square size x size grids whose rows all repeat
// pattern moved right by t*dCol cells at step t.
func ShiftedRows(size, steps int, pattern []float64, dCol int) []*mat.Dense {
	out := make([]*mat.Dense, steps)
	for t := range out {
		m := mat.NewDense(size, size, nil)
		for i := 0; i < size; i++ {
			for j, v := range pattern {
				tj := j + t*dCol
				if tj >= 0 && tj < size {
					m.Set(i, tj, v)
				}
			}
		}
		out[t] = m
	}
	return out
}
