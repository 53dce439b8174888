package correlate

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lanes/kernel"
)

// ErrEmptyInput is returned when either signal is empty.
var ErrEmptyInput = errors.New("correlate: empty input")

// DirectThreshold is the largest len(b) for which Correlate uses Direct.
const DirectThreshold = 64

// Correlate computes the full cross-correlation of a and b with the faster
// of Direct and FFT for the given lengths.
func Correlate(a, b []float32) ([]float32, error) {
	if len(b) <= DirectThreshold {
		return Direct(a, b)
	}
	return FFT(a, b)
}

// Direct computes the cross-correlation lag by lag. Each lag is one dot
// product over the overlapping region.
func Direct(a, b []float32) ([]float32, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n, m := len(a), len(b)
	out := make([]float32, n+m-1)
	for k := range out {
		lag := LagFromIndex(k, m)
		start := max(0, -lag)
		end := min(m, n-lag)
		out[k] = kernel.DotProduct(end-start, a[start+lag:], b[start:])
	}
	return out, nil
}

// Auto computes the auto-correlation of a. The zero lag sits at index
// len(a)-1.
func Auto(a []float32) ([]float32, error) {
	return Correlate(a, a)
}

// Normalized computes the cross-correlation scaled by the product of the L2
// norms of a and b, so values fall in [-1, 1]. If either signal is all
// zeros the result is returned unscaled.
func Normalized(a, b []float32) ([]float32, error) {
	out, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	energy := float64(kernel.DotProduct(len(a), a, a)) * float64(kernel.DotProduct(len(b), b, b))
	if energy == 0 {
		return out, nil
	}

	scale := float32(1 / math.Sqrt(energy))
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}

// FFT computes the cross-correlation as IFFT(FFT(a) * conj(FFT(b))).
func FFT(a, b []float32) ([]float32, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n, m := len(a), len(b)
	size := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("correlate: failed to create FFT plan: %w", err)
	}

	aFreq, err := forward(plan, a, size)
	if err != nil {
		return nil, err
	}
	bFreq, err := forward(plan, b, size)
	if err != nil {
		return nil, err
	}

	s := getScratch(size)
	defer putScratch(s)

	for i := range size {
		s.ar[i], s.ai[i] = real(aFreq[i]), imag(aFreq[i])
		s.br[i], s.bi[i] = real(bFreq[i]), imag(bFreq[i])
	}

	// (ar + i*ai) * (br - i*bi)
	vecmath.MulBlock(s.re, s.ar, s.br)
	vecmath.MulBlock(s.tmp, s.ai, s.bi)
	vecmath.AddBlockInPlace(s.re, s.tmp)

	vecmath.MulBlock(s.im, s.ai, s.br)
	vecmath.ScaleBlock(s.tmp, s.bi, -1)
	vecmath.MulBlockInPlace(s.tmp, s.ar)
	vecmath.AddBlockInPlace(s.im, s.tmp)

	for i := range size {
		aFreq[i] = complex(s.re[i], s.im[i])
	}
	return inverse(plan, aFreq, n, m)
}

// forward zero-pads x to size and returns its spectrum.
func forward(plan *algofft.Plan[complex128], x []float32, size int) ([]complex128, error) {
	padded := make([]complex128, size)
	for i, v := range x {
		padded[i] = complex(float64(v), 0)
	}
	freq := make([]complex128, size)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("correlate: forward FFT failed: %w", err)
	}
	return freq, nil
}

// inverse transforms a correlation spectrum back and unwraps the circular
// result: non-negative lags lead the buffer, negative lags trail it.
func inverse(plan *algofft.Plan[complex128], freq []complex128, n, m int) ([]float32, error) {
	size := len(freq)
	timeDomain := make([]complex128, size)
	if err := plan.Inverse(timeDomain, freq); err != nil {
		return nil, fmt.Errorf("correlate: inverse FFT failed: %w", err)
	}

	out := make([]float32, n+m-1)
	for i := range n {
		out[m-1+i] = float32(real(timeDomain[i]))
	}
	for i := range m - 1 {
		out[i] = float32(real(timeDomain[size-m+1+i]))
	}
	return out, nil
}

// spectra holds split-complex scratch rows for one FFT call.
type spectra struct {
	data []float64

	ar, ai, br, bi []float64
	re, im, tmp    []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &spectra{} },
}

func getScratch(n int) *spectra {
	s := scratchPool.Get().(*spectra)
	const rows = 7
	if cap(s.data) < rows*n {
		s.data = make([]float64, rows*n)
	}
	d := s.data[:rows*n]
	s.ar, s.ai, s.br, s.bi = d[0:n], d[n:2*n], d[2*n:3*n], d[3*n:4*n]
	s.re, s.im, s.tmp = d[4*n:5*n], d[5*n:6*n], d[6*n:7*n]
	return s
}

func putScratch(s *spectra) {
	scratchPool.Put(s)
}

// FindPeak returns the index and value of the largest element of corr, or
// (-1, 0) for an empty slice.
func FindPeak(corr []float32) (index int, value float32) {
	if len(corr) == 0 {
		return -1, 0
	}

	index, value = 0, corr[0]
	for i, v := range corr {
		if v > value {
			index, value = i, v
		}
	}
	return index, value
}

// LagFromIndex converts a correlation index to a lag for a second signal of
// length lenB.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// IndexFromLag converts a lag to a correlation index for a second signal of
// length lenB.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
