package field

import (
	"fmt"
	"math"
)

// Georef maps grid indices to physical coordinates.
type Georef interface {
	// Resolution returns the cell width dx and cell height dy.
	Resolution() (dx, dy float64)
	// X returns the horizontal coordinate of the centre of column col.
	X(col int) float64
	// Y returns the vertical coordinate of the centre of row row.
	Y(row int) float64
}

// Affine is a north-up raster georeference. OriginX and OriginY locate the
// top-left corner of cell (0, 0).
type Affine struct {
	OriginX, OriginY float64
	DX, DY           float64
}

// Resolution implements Georef.
func (a Affine) Resolution() (dx, dy float64) { return a.DX, a.DY }

// X implements Georef.
func (a Affine) X(col int) float64 { return a.OriginX + (float64(col)+0.5)*a.DX }

// Y implements Georef.
func (a Affine) Y(row int) float64 { return a.OriginY - (float64(row)+0.5)*a.DY }

func validateGeoref(ref Georef) error {
	if ref == nil {
		return ErrNilGeoref
	}
	dx, dy := ref.Resolution()
	if !(dx > 0) || !(dy > 0) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return fmt.Errorf("%w: dx = %v, dy = %v", ErrInvalidResolution, dx, dy)
	}
	return nil
}
