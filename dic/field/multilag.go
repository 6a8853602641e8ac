package field

import (
	"fmt"

	"github.com/cwbudde/algo-dic/dic/grid"
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/sirupsen/logrus"
)

// speedTolerance is the relative margin by which a later lag must beat the
// current best speed to replace it.
const speedTolerance = 1e-12

// DispFieldSTAll runs DispFieldST for every lag in 1..lagMax and keeps, per
// tile, the record with the largest speed. Ties go to the smallest lag.
func DispFieldSTAll(s grid.Stack, ref Georef, lagMax, factv, facth int, opts ...Option) ([]Record, error) {
	if err := validateLag(s, lagMax); err != nil {
		return nil, err
	}
	r, c := s.Dims()
	tiles, err := grid.ThinMat(r, c, factv, facth)
	if err != nil {
		return nil, err
	}
	return dispFieldSTAll(s, ref, lagMax, tiles, newConfig(opts))
}

// DispFieldSTBBAll is DispFieldSTAll with tiles laid out only inside box.
func DispFieldSTBBAll(s grid.Stack, ref Georef, lagMax int, box grid.Bounds, factv, facth int, opts ...Option) ([]Record, error) {
	if err := validateLag(s, lagMax); err != nil {
		return nil, err
	}
	r, c := s.Dims()
	tiles, err := grid.ThinBox(r, c, box, factv, facth)
	if err != nil {
		return nil, err
	}
	return dispFieldSTAll(s, ref, lagMax, tiles, newConfig(opts))
}

func dispFieldSTAll(s grid.Stack, ref Georef, lagMax int, tiles []grid.Tile, cfg config) ([]Record, error) {
	if err := validateGeoref(ref); err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, ErrNoViableTiles
	}

	dx, dy := ref.Resolution()
	src := newSTSource(s.Sanitized(), cfg.restricted)

	prepared := make([]stTile, len(tiles))
	err := forEach(len(tiles), cfg.workers, func(i int) error {
		prepared[i] = src.tile(tiles[i].Bounds)
		return nil
	})
	if err != nil {
		return nil, err
	}

	base := newRecords(tiles, ref, 0)
	cands := make([]Record, len(tiles)*lagMax)
	err = forEach(len(cands), cfg.workers, func(k int) error {
		i, lag := k/lagMax, k%lagMax+1
		rec := base[i]
		rec.Lag = lag

		vx, vy, err := prepared[i].estimate(lag, dx, dy)
		if err != nil {
			return fmt.Errorf("field: tile %d lag %d: %w", i, lag, err)
		}
		rec.DispX, rec.DispY = vx, vy
		cands[k] = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	recs := make([]Record, len(tiles))
	for i := range recs {
		recs[i] = strongest(cands[i*lagMax : (i+1)*lagMax])
		logTile(cfg.logger, i, &recs[i])
	}

	cfg.logger.WithFields(logrus.Fields{
		"tiles":      len(recs),
		"lagmax":     lagMax,
		"restricted": cfg.restricted,
	}).Info("multi-lag displacement field computed")
	return recs, nil
}

// strongest returns the candidate with the largest speed. Candidates are in
// lag order, so the first of equally fast candidates has the smallest lag.
func strongest(cands []Record) Record {
	vx := make([]float64, len(cands))
	vy := make([]float64, len(cands))
	for i, c := range cands {
		vx[i], vy[i] = c.DispX, c.DispY
	}
	speeds := make([]float64, len(cands))
	vecmath.Magnitude(speeds, vx, vy)

	best := 0
	for i := 1; i < len(speeds); i++ {
		if speeds[i] > speeds[best]*(1+speedTolerance) {
			best = i
		}
	}
	return cands[best]
}
