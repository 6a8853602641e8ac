// Package grid provides the matrix geometry used by the displacement engine.
//
// A grid is one time snapshot of a spatial field stored as a gonum *mat.Dense,
// row 0 at the top. The package offers:
//
//   - Pad, Flip and Shift for preparing correlation operands
//   - ExtractZero and Crop for isolating a focal tile
//   - ThinMat and ThinBox for partitioning a grid into odd-sized, non-overlapping tiles
//   - Stack for an ordered sequence of equally sized grids
//
// # Tiling
//
// Tiles are anchored at the grid centre so the partition is symmetric, and
// tiles that would leave the grid are dropped:
//
//	tiles, err := grid.ThinMat(rows, cols, 9, 9)
//	if err != nil {
//		return err // even or non-positive tile size
//	}
//	if len(tiles) == 0 {
//		// tile larger than the grid
//	}
//
// Tiles are returned in column-major order: all tiles of the leftmost column
// band from top to bottom, then the next band.
package grid
