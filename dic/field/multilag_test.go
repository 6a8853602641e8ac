package field

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-dic/dic/grid"
	"github.com/cwbudde/algo-dic/internal/testutil"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestStrongest(t *testing.T) {
	tests := []struct {
		name  string
		cands []Record
		lag   int
	}{
		{
			name: "middle lag largest",
			cands: []Record{
				{DispX: 1, DispY: 0, Lag: 1},
				{DispX: -3, DispY: 0, Lag: 2},
				{DispX: 0, DispY: 2, Lag: 3},
			},
			lag: 2,
		},
		{
			name: "ties go to smallest lag",
			cands: []Record{
				{DispX: 1, DispY: 0, Lag: 1},
				{DispX: 0, DispY: -1, Lag: 2},
				{DispX: 0.6, DispY: 0.8, Lag: 3},
			},
			lag: 1,
		},
		{
			name: "all zero",
			cands: []Record{
				{Lag: 1},
				{Lag: 2},
			},
			lag: 1,
		},
		{
			name: "last lag largest",
			cands: []Record{
				{DispX: 0, DispY: 0, Lag: 1},
				{DispX: 1, DispY: 1, Lag: 2},
				{DispX: 2, DispY: 1, Lag: 3},
			},
			lag: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strongest(tt.cands)
			require.Equal(t, tt.lag, got.Lag)
			require.Equal(t, tt.cands[tt.lag-1], got)
		})
	}
}

func TestDispFieldSTAllConstantVelocity(t *testing.T) {
	s := grid.Stack(testutil.ShiftedRows(9, 5, ramp, 1))

	recs, err := DispFieldSTAll(s, unitRef, 3, 9, 9, quiet())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, 1, recs[0].Lag)
	require.Equal(t, 1.0, recs[0].DispX)
	require.Equal(t, 0.0, recs[0].DispY)
}

// rampAt returns 9x9 grids whose rows all hold the first five ramp values
// starting at column cols[t] in step t.
func rampAt(cols ...int) grid.Stack {
	s := make(grid.Stack, len(cols))
	for t, c := range cols {
		m := mat.NewDense(9, 9, nil)
		for i := 0; i < 9; i++ {
			for j, v := range ramp[:5] {
				m.Set(i, c+j, v)
			}
		}
		s[t] = m
	}
	return s
}

func TestDispFieldSTAllPicksFastestLag(t *testing.T) {
	// The pattern rests, jumps two columns between steps 1 and 2, then rests
	// again. Lag 1 sees no movement, lag 2 sees 2 columns in 2 steps and
	// lag 3 sees 2 columns in 3 steps.
	s := rampAt(0, 0, 2, 2, 2)

	for _, restricted := range []bool{false, true} {
		want := []float64{0, 1, 2.0 / 3}
		for lag := 1; lag <= 3; lag++ {
			recs, err := DispFieldST(s, unitRef, lag, 9, 9, WithRestricted(restricted), quiet())
			require.NoError(t, err)
			require.InDelta(t, want[lag-1], recs[0].DispX, 1e-12, "lag %d restricted=%v", lag, restricted)
			require.Equal(t, 0.0, recs[0].DispY, "lag %d restricted=%v", lag, restricted)
		}

		recs, err := DispFieldSTAll(s, unitRef, 3, 9, 9, WithRestricted(restricted), quiet())
		require.NoError(t, err)
		require.Len(t, recs, 1)
		require.Equal(t, 2, recs[0].Lag, "restricted=%v", restricted)
		require.Equal(t, 1.0, recs[0].DispX, "restricted=%v", restricted)
		require.Equal(t, 0.0, recs[0].DispY, "restricted=%v", restricted)
	}
}

func TestDispFieldSTAllNonFiniteCellsReadAsZero(t *testing.T) {
	s := rampAt(0, 0, 2, 2, 2)
	s[1].Set(4, 8, math.NaN())
	s[3].Set(0, 0, math.Inf(-1))

	recs, err := DispFieldSTAll(s, unitRef, 3, 9, 9, quiet())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, 2, recs[0].Lag)
	require.Equal(t, 1.0, recs[0].DispX)
	require.Equal(t, 0.0, recs[0].DispY)
}

func TestDispFieldSTAllMatchesPerLagRuns(t *testing.T) {
	s := grid.Stack{
		testutil.Random(21, 15, 15),
		testutil.Random(22, 15, 15),
		testutil.Random(23, 15, 15),
		testutil.Random(24, 15, 15),
		testutil.Random(25, 15, 15),
	}
	const lagMax = 3

	for _, restricted := range []bool{false, true} {
		perLag := make([][]Record, lagMax)
		for lag := 1; lag <= lagMax; lag++ {
			recs, err := DispFieldST(s, unitRef, lag, 5, 5, WithRestricted(restricted), quiet())
			require.NoError(t, err)
			perLag[lag-1] = recs
		}

		all, err := DispFieldSTAll(s, unitRef, lagMax, 5, 5, WithRestricted(restricted), quiet())
		require.NoError(t, err)
		require.Len(t, all, len(perLag[0]))

		for i, rec := range all {
			cands := make([]Record, lagMax)
			for l := range cands {
				cands[l] = perLag[l][i]
			}
			require.Equal(t, strongest(cands), rec, "tile %d restricted=%v", i, restricted)
		}
	}
}

func TestDispFieldSTBBAll(t *testing.T) {
	frames := testutil.ShiftedRows(9, 5, ramp, 1)
	s := make(grid.Stack, len(frames))
	for i, f := range frames {
		g := mat.NewDense(18, 9, nil)
		g.Slice(9, 18, 0, 9).(*mat.Dense).Copy(f)
		s[i] = g
	}

	box := grid.Bounds{RowMin: 9, RowMax: 17, ColMin: 0, ColMax: 8}
	recs, err := DispFieldSTBBAll(s, unitRef, 2, box, 9, 9, WithRestricted(true), quiet())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, 13, recs[0].RowCent)
	require.Equal(t, 1, recs[0].Lag)
	require.Equal(t, 1.0, recs[0].DispX)
}

func TestDispFieldSTAllValidation(t *testing.T) {
	s := grid.Stack{mat.NewDense(9, 9, nil), mat.NewDense(9, 9, nil), mat.NewDense(9, 9, nil), mat.NewDense(9, 9, nil)}

	for _, lagMax := range []int{0, 3, -1} {
		recs, err := DispFieldSTAll(s, unitRef, lagMax, 3, 3, quiet())
		require.Nil(t, recs)
		require.True(t, errors.Is(err, ErrInvalidLag), "lagMax %d: got %v", lagMax, err)
	}

	_, err := DispFieldSTAll(s, unitRef, 2, 13, 3, quiet())
	require.ErrorIs(t, err, ErrNoViableTiles)
}
