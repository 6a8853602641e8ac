package grid

import "fmt"

// Tile describes one focal sub-grid: its centre cell and its bounds.
type Tile struct {
	RowCent, ColCent int
	Bounds
}

// ThinMat partitions a rows x cols grid into non-overlapping factv x facth
// tiles anchored at the grid centre. Tiles that would extend past the grid are
// excluded. The result is ordered column band by column band, top to bottom
// within a band.
//
// An empty result means the tile is larger than the grid in at least one
// dimension; callers decide how to report that.
func ThinMat(rows, cols, factv, facth int) ([]Tile, error) {
	return ThinBox(rows, cols, Bounds{RowMin: 0, RowMax: rows - 1, ColMin: 0, ColMax: cols - 1}, factv, facth)
}

// ThinBox is ThinMat restricted to the box b of a rows x cols grid. The tiling
// is anchored at the box centre and tile descriptors use full-grid indices.
func ThinBox(rows, cols int, b Bounds, factv, facth int) ([]Tile, error) {
	if err := ValidateTileSize(factv, facth); err != nil {
		return nil, err
	}
	if !b.Within(rows, cols) {
		return nil, fmt.Errorf("%w: rows %d..%d, cols %d..%d in a %dx%d grid",
			ErrInvalidBounds, b.RowMin, b.RowMax, b.ColMin, b.ColMax, rows, cols)
	}

	rowCents := axisCentres(b.RowMin, b.Rows(), factv)
	colCents := axisCentres(b.ColMin, b.Cols(), facth)

	hv := (factv - 1) / 2
	hh := (facth - 1) / 2
	tiles := make([]Tile, 0, len(rowCents)*len(colCents))
	for _, cc := range colCents {
		for _, rc := range rowCents {
			tiles = append(tiles, Tile{
				RowCent: rc,
				ColCent: cc,
				Bounds: Bounds{
					RowMin: rc - hv,
					RowMax: rc + hv,
					ColMin: cc - hh,
					ColMax: cc + hh,
				},
			})
		}
	}
	return tiles, nil
}

// ValidateTileSize checks that both tile dimensions are positive and odd.
func ValidateTileSize(factv, facth int) error {
	if factv <= 0 || factv%2 == 0 {
		return fmt.Errorf("%w: factv = %d", ErrInvalidTileSize, factv)
	}
	if facth <= 0 || facth%2 == 0 {
		return fmt.Errorf("%w: facth = %d", ErrInvalidTileSize, facth)
	}
	return nil
}

// axisCentres returns, in ascending order, the centres of the size-f tiles
// that fit in [start, start+n) when one tile is centred on the middle cell.
func axisCentres(start, n, f int) []int {
	half := (f - 1) / 2
	mid := (n - 1) / 2

	first := mid
	for first-f-half >= 0 {
		first -= f
	}
	if first-half < 0 || first+half > n-1 {
		return nil
	}

	var out []int
	for c := first; c+half <= n-1; c += f {
		out = append(out, start+c)
	}
	return out
}
