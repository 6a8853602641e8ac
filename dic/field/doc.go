// Package field estimates displacement vector fields from gridded time series.
//
// The domain is partitioned into odd-sized tiles (grid.ThinMat). For every
// tile the shift that maximises the cross-covariance (xcov.Xcov2D) between
// earlier and later data is converted to a velocity in physical units per
// time step. Rightward and upward movement are positive.
//
// # Variants
//
//   - DispField, DispFieldBB: two snapshots, 2-D correlation per tile
//   - DispFieldST, DispFieldSTBB: three or more snapshots at a fixed lag,
//     using time x space matrices of row and column means
//   - DispFieldSTAll, DispFieldSTBBAll: every lag from 1 to lagMax, keeping
//     per tile the lag with the largest speed
//
// The BB variants tile only a bounding box of the grid.
//
// NaN and infinite cells are read as zero. The caller's grids are not
// modified.
//
// # Restricted search
//
// By default the focal tile is compared against the whole domain, so a match
// may be found anywhere. This can report a displacement towards a stronger
// but unrelated pattern elsewhere. WithRestricted(true) confines both
// operands to the tile:
//
//	ref := field.Affine{OriginX: 0, OriginY: 90, DX: 10, DY: 10}
//	recs, err := field.DispField(before, after, ref, 9, 9, field.WithRestricted(true))
//
// # Concurrency
//
// Tiles are independent and run on a worker pool (WithWorkers). The returned
// records always follow the tile order of grid.ThinMat.
package field
