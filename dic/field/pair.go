package field

import (
	"fmt"

	"github.com/cwbudde/algo-dic/dic/grid"
	"github.com/cwbudde/algo-dic/dic/xcov"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// DispField estimates the displacement of every factv x facth tile between
// the snapshots g1 and g2.
func DispField(g1, g2 *mat.Dense, ref Georef, factv, facth int, opts ...Option) ([]Record, error) {
	if err := (grid.Stack{g1, g2}).Validate(2); err != nil {
		return nil, err
	}
	r, c := g1.Dims()
	tiles, err := grid.ThinMat(r, c, factv, facth)
	if err != nil {
		return nil, err
	}
	return dispField(g1, g2, ref, tiles, newConfig(opts))
}

// DispFieldBB is DispField with tiles laid out only inside box. In
// unrestricted mode the rest of g2 is still searched.
func DispFieldBB(g1, g2 *mat.Dense, ref Georef, box grid.Bounds, factv, facth int, opts ...Option) ([]Record, error) {
	if err := (grid.Stack{g1, g2}).Validate(2); err != nil {
		return nil, err
	}
	r, c := g1.Dims()
	tiles, err := grid.ThinBox(r, c, box, factv, facth)
	if err != nil {
		return nil, err
	}
	return dispField(g1, g2, ref, tiles, newConfig(opts))
}

func dispField(g1, g2 *mat.Dense, ref Georef, tiles []grid.Tile, cfg config) ([]Record, error) {
	if err := validateGeoref(ref); err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, ErrNoViableTiles
	}

	g1, g2 = grid.Sanitized(g1), grid.Sanitized(g2)
	dx, dy := ref.Resolution()
	recs := newRecords(tiles, ref, 1)

	err := forEach(len(tiles), cfg.workers, func(i int) error {
		rec := &recs[i]

		var a, b mat.Matrix
		if cfg.restricted {
			a = grid.Crop(g1, rec.Bounds)
			b = grid.Crop(g2, rec.Bounds)
		} else {
			a = grid.ExtractZero(g1, rec.Bounds)
			b = g2
		}

		if grid.IsZero(a) || grid.IsZero(b) {
			rec.DispX, rec.DispY = 0, 0
		} else {
			dr, dc, err := xcov.Peak(a, b)
			if err != nil {
				return fmt.Errorf("field: tile %d: %w", i, err)
			}
			rec.DispX = toPhysical(horizontal, dc, dx)
			rec.DispY = toPhysical(vertical, dr, dy)
		}

		logTile(cfg.logger, i, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	cfg.logger.WithFields(logrus.Fields{
		"tiles":      len(recs),
		"restricted": cfg.restricted,
	}).Info("displacement field computed")
	return recs, nil
}

func logTile(l logrus.FieldLogger, i int, rec *Record) {
	l.WithFields(logrus.Fields{
		"tile":    i,
		"rowcent": rec.RowCent,
		"colcent": rec.ColCent,
		"lag":     rec.Lag,
		"dispx":   rec.DispX,
		"dispy":   rec.DispY,
	}).Debug("tile displacement")
}
