package field

import (
	"github.com/cwbudde/algo-dic/dic/grid"
	"github.com/cwbudde/algo-dic/dic/xcov"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// axis selects the direction a displacement component is measured along.
type axis int

const (
	// horizontal profiles hold one mean per column, averaged over rows.
	horizontal axis = iota
	// vertical profiles hold one mean per row, averaged over columns.
	vertical
)

// toPhysical converts a cell offset along ax into a signed distance. Column
// offsets grow rightward; row offsets grow downward, so they are negated to
// make upward movement positive.
func toPhysical(ax axis, offset int, res float64) float64 {
	if ax == vertical {
		offset = -offset
	}
	return float64(offset) * res
}

// profile returns the means of m along ax.
func profile(m mat.Matrix, ax axis) []float64 {
	r, c := m.Dims()
	switch ax {
	case horizontal:
		out := make([]float64, c)
		row := make([]float64, c)
		for i := 0; i < r; i++ {
			mat.Row(row, i, m)
			floats.Add(out, row)
		}
		floats.Scale(1/float64(r), out)
		return out
	default:
		out := make([]float64, r)
		row := make([]float64, c)
		for i := 0; i < r; i++ {
			mat.Row(row, i, m)
			out[i] = floats.Sum(row) / float64(c)
		}
		return out
	}
}

// spaceTime stacks the profiles of frames as the rows of a time x space
// matrix.
func spaceTime(frames []mat.Matrix, ax axis) *mat.Dense {
	var out *mat.Dense
	for t, f := range frames {
		p := profile(f, ax)
		if out == nil {
			out = mat.NewDense(len(frames), len(p), nil)
		}
		out.SetRow(t, p)
	}
	return out
}

// stVelocity estimates the velocity along ax from full-length focal and
// buffer time x space matrices. Focal times 0..T-lag-1 are compared with
// buffer times lag..T-1. The time offset of the best match is added to lag,
// so the reported velocity uses the observed separation.
func stVelocity(focal, buffer *mat.Dense, lag int, res float64, ax axis) (float64, error) {
	steps, fc := focal.Dims()
	_, bc := buffer.Dims()
	f := focal.Slice(0, steps-lag, 0, fc)
	b := buffer.Slice(lag, steps, 0, bc)
	if grid.IsZero(f) || grid.IsZero(b) {
		return 0, nil
	}

	dt, ds, err := xcov.Peak(f, b)
	if err != nil {
		return 0, err
	}

	elapsed := lag + dt
	if elapsed == 0 {
		return 0, nil
	}
	return toPhysical(ax, ds, res) / float64(elapsed), nil
}
