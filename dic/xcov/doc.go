// Package xcov computes FFT-based 2-D cross-covariance surfaces.
//
// Xcov2D correlates two equally sized real matrices. Both operands are padded
// to the next even square size P (grid.Pad), the second one is flipped
// (grid.Flip) so the product of spectra becomes a correlation, and the
// transform runs on a 2P x 2P frame so no shift wraps around.
//
// # Reading the surface
//
// The zero-shift cell sits at (P, P). Cell (P+dr, P+dc) holds
//
//	sum over i, j of a[i][j] * b[i+dr][j+dc]
//
// so positive dr and dc mean the content of b lies at higher row and column
// indices than the same content in a:
//
//	s, err := xcov.Xcov2D(a, b)
//	dr, dc, err := xcov.Offset(s)
//
// # Transforms
//
// The 2-D transform is computed row by row and then column by column.
// Power-of-two lengths use algo-fft plans; other lengths use gonum's
// mixed-radix fourier.CmplxFFT.
package xcov
