package field

import (
	"math"

	"github.com/cwbudde/algo-dic/dic/grid"
)

// Record is the displacement estimate of one tile.
type Record struct {
	grid.Tile

	// CentX and CentY are the physical coordinates of the tile centre.
	CentX, CentY float64

	// DispX and DispY are velocities in distance per time step, rightward
	// and upward positive. NaN means not yet estimated.
	DispX, DispY float64

	// Lag is the number of time steps separating the compared data.
	Lag int
}

// Speed returns the magnitude of the displacement vector.
func (r Record) Speed() float64 {
	return math.Hypot(r.DispX, r.DispY)
}

func newRecords(tiles []grid.Tile, ref Georef, lag int) []Record {
	recs := make([]Record, len(tiles))
	for i, t := range tiles {
		recs[i] = Record{
			Tile:  t,
			CentX: ref.X(t.ColCent),
			CentY: ref.Y(t.RowCent),
			DispX: math.NaN(),
			DispY: math.NaN(),
			Lag:   lag,
		}
	}
	return recs
}
