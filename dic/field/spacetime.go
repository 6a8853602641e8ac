package field

import (
	"fmt"

	"github.com/cwbudde/algo-dic/dic/grid"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// DispFieldST estimates per-tile velocities from a stack of at least three
// snapshots, comparing data lag steps apart. lag must satisfy
// 1 <= lag <= len(s)-2.
func DispFieldST(s grid.Stack, ref Georef, lag, factv, facth int, opts ...Option) ([]Record, error) {
	if err := validateLag(s, lag); err != nil {
		return nil, err
	}
	r, c := s.Dims()
	tiles, err := grid.ThinMat(r, c, factv, facth)
	if err != nil {
		return nil, err
	}
	return dispFieldST(s, ref, lag, tiles, newConfig(opts))
}

// DispFieldSTBB is DispFieldST with tiles laid out only inside box.
func DispFieldSTBB(s grid.Stack, ref Georef, lag int, box grid.Bounds, factv, facth int, opts ...Option) ([]Record, error) {
	if err := validateLag(s, lag); err != nil {
		return nil, err
	}
	r, c := s.Dims()
	tiles, err := grid.ThinBox(r, c, box, factv, facth)
	if err != nil {
		return nil, err
	}
	return dispFieldST(s, ref, lag, tiles, newConfig(opts))
}

func validateLag(s grid.Stack, lag int) error {
	if err := s.Validate(3); err != nil {
		return err
	}
	if lag < 1 || lag > len(s)-2 {
		return fmt.Errorf("%w: lag %d with %d layers", ErrInvalidLag, lag, len(s))
	}
	return nil
}

func dispFieldST(s grid.Stack, ref Georef, lag int, tiles []grid.Tile, cfg config) ([]Record, error) {
	if err := validateGeoref(ref); err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, ErrNoViableTiles
	}

	dx, dy := ref.Resolution()
	src := newSTSource(s.Sanitized(), cfg.restricted)
	recs := newRecords(tiles, ref, lag)

	err := forEach(len(tiles), cfg.workers, func(i int) error {
		rec := &recs[i]
		vx, vy, err := src.tile(rec.Bounds).estimate(lag, dx, dy)
		if err != nil {
			return fmt.Errorf("field: tile %d: %w", i, err)
		}
		rec.DispX, rec.DispY = vx, vy
		logTile(cfg.logger, i, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	cfg.logger.WithFields(logrus.Fields{
		"tiles":      len(recs),
		"lag":        lag,
		"restricted": cfg.restricted,
	}).Info("space-time displacement field computed")
	return recs, nil
}

// stSource builds time x space matrices for tiles of one stack.
type stSource struct {
	stack      grid.Stack
	restricted bool

	// Whole-domain buffers shared by all tiles in unrestricted mode.
	bufferH, bufferV *mat.Dense
}

func newSTSource(s grid.Stack, restricted bool) *stSource {
	src := &stSource{stack: s, restricted: restricted}
	if !restricted {
		frames := make([]mat.Matrix, len(s))
		for t, f := range s {
			frames[t] = f
		}
		src.bufferH = spaceTime(frames, horizontal)
		src.bufferV = spaceTime(frames, vertical)
	}
	return src
}

// stTile holds the full-length focal and buffer matrices of one tile.
type stTile struct {
	focalH, focalV   *mat.Dense
	bufferH, bufferV *mat.Dense
}

func (src *stSource) tile(b grid.Bounds) stTile {
	frames := make([]mat.Matrix, len(src.stack))
	for t, f := range src.stack {
		if src.restricted {
			frames[t] = grid.Crop(f, b)
		} else {
			frames[t] = grid.ExtractZero(f, b)
		}
	}

	st := stTile{
		focalH: spaceTime(frames, horizontal),
		focalV: spaceTime(frames, vertical),
	}
	if src.restricted {
		st.bufferH, st.bufferV = st.focalH, st.focalV
	} else {
		st.bufferH, st.bufferV = src.bufferH, src.bufferV
	}
	return st
}

func (st stTile) estimate(lag int, dx, dy float64) (vx, vy float64, err error) {
	vx, err = stVelocity(st.focalH, st.bufferH, lag, dx, horizontal)
	if err != nil {
		return 0, 0, err
	}
	vy, err = stVelocity(st.focalV, st.bufferV, lag, dy, vertical)
	if err != nil {
		return 0, 0, err
	}
	return vx, vy, nil
}
