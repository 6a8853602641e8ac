package xcov

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// plan1D is a complex FFT of a fixed length. Inverse is normalised by 1/n.
type plan1D interface {
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

type backend int

const (
	backendAuto backend = iota
	backendAlgo
	backendGonum
)

// gonumPlan adapts fourier.CmplxFFT, whose transforms are unnormalised.
type gonumPlan struct {
	fft   *fourier.CmplxFFT
	scale complex128
}

func newGonumPlan(n int) *gonumPlan {
	return &gonumPlan{
		fft:   fourier.NewCmplxFFT(n),
		scale: complex(1/float64(n), 0),
	}
}

func (p *gonumPlan) Forward(dst, src []complex128) error {
	p.fft.Coefficients(dst, src)
	return nil
}

func (p *gonumPlan) Inverse(dst, src []complex128) error {
	p.fft.Sequence(dst, src)
	for i := range dst {
		dst[i] *= p.scale
	}
	return nil
}

func newPlan(n int, b backend) (plan1D, error) {
	if b == backendAuto {
		b = backendGonum
		if isPowerOf2(n) {
			b = backendAlgo
		}
	}

	switch b {
	case backendAlgo:
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("xcov: failed to create FFT plan: %w", err)
		}
		return plan, nil
	default:
		return newGonumPlan(n), nil
	}
}

// fft2 runs square n x n transforms on row-major data.
type fft2 struct {
	n    int
	plan plan1D
	line []complex128
	out  []complex128
}

func newFFT2(n int, b backend) (*fft2, error) {
	plan, err := newPlan(n, b)
	if err != nil {
		return nil, err
	}
	return &fft2{
		n:    n,
		plan: plan,
		line: make([]complex128, n),
		out:  make([]complex128, n),
	}, nil
}

func (f *fft2) forward(data []complex128) error {
	if err := f.apply(data, f.plan.Forward); err != nil {
		return fmt.Errorf("xcov: forward FFT failed: %w", err)
	}
	return nil
}

func (f *fft2) inverse(data []complex128) error {
	if err := f.apply(data, f.plan.Inverse); err != nil {
		return fmt.Errorf("xcov: inverse FFT failed: %w", err)
	}
	return nil
}

func (f *fft2) apply(data []complex128, op func(dst, src []complex128) error) error {
	n := f.n

	for r := 0; r < n; r++ {
		row := data[r*n : (r+1)*n]
		if err := op(f.out, row); err != nil {
			return err
		}
		copy(row, f.out)
	}

	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			f.line[r] = data[r*n+c]
		}
		if err := op(f.out, f.line); err != nil {
			return err
		}
		for r := 0; r < n; r++ {
			data[r*n+c] = f.out[r]
		}
	}
	return nil
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
