package correlate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-lanes/internal/testutil"
)

func TestDirectKnownValues(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{0, 1, 0.5}

	got, err := Direct(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 2, 3.5, 3, 0}, got)
}

func TestDirectSingleElement(t *testing.T) {
	got, err := Direct([]float32{2}, []float32{3})
	require.NoError(t, err)
	assert.Equal(t, []float32{6}, got)
}

func TestFFTMatchesDirect(t *testing.T) {
	sizes := []struct{ n, m int }{
		{1, 1}, {5, 3}, {3, 5}, {64, 64}, {100, 70}, {257, 129}, {1000, 33},
	}
	for _, sz := range sizes {
		t.Run(fmt.Sprintf("%dx%d", sz.n, sz.m), func(t *testing.T) {
			a := testutil.DeterministicNoise(int64(sz.n), 1, sz.n)
			b := testutil.DeterministicNoise(int64(sz.m)+100, 1, sz.m)

			direct, err := Direct(a, b)
			require.NoError(t, err)
			fft, err := FFT(a, b)
			require.NoError(t, err)

			require.Len(t, fft, sz.n+sz.m-1)
			testutil.RequireSliceNearlyEqual(t, fft, direct, 1e-4)
		})
	}
}

func TestCorrelateSelectsDirect(t *testing.T) {
	a := testutil.DeterministicNoise(1, 1, 500)
	b := testutil.DeterministicNoise(2, 1, DirectThreshold)

	got, err := Correlate(a, b)
	require.NoError(t, err)
	want, err := Direct(a, b)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCorrelateFindsDelay(t *testing.T) {
	const delay = 37
	ref := testutil.DeterministicNoise(7, 1, 400)
	delayed := make([]float32, len(ref)+delay)
	copy(delayed[delay:], ref)

	for name, fn := range map[string]func(a, b []float32) ([]float32, error){
		"direct":    Direct,
		"fft":       FFT,
		"correlate": Correlate,
	} {
		t.Run(name, func(t *testing.T) {
			corr, err := fn(delayed, ref)
			require.NoError(t, err)

			idx, _ := FindPeak(corr)
			assert.Equal(t, delay, LagFromIndex(idx, len(ref)))
		})
	}
}

func TestAutoPeakAtZeroLag(t *testing.T) {
	a := testutil.DeterministicSine(440, 48000, 1, 300)

	corr, err := Auto(a)
	require.NoError(t, err)
	require.Len(t, corr, 2*len(a)-1)

	idx, _ := FindPeak(corr)
	assert.Equal(t, 0, LagFromIndex(idx, len(a)))
}

func TestNormalized(t *testing.T) {
	a := testutil.DeterministicNoise(3, 2, 90)

	corr, err := Normalized(a, a)
	require.NoError(t, err)

	zero := corr[IndexFromLag(0, len(a))]
	assert.InDelta(t, 1, zero, 1e-5)
	for i, v := range corr {
		assert.LessOrEqual(t, v, float32(1+1e-5), "index %d", i)
		assert.GreaterOrEqual(t, v, float32(-1-1e-5), "index %d", i)
	}
}

func TestNormalizedZeroSignal(t *testing.T) {
	corr, err := Normalized(make([]float32, 4), []float32{1, 2})
	require.NoError(t, err)
	assert.Equal(t, make([]float32, 5), corr)
}

func TestEmptyInput(t *testing.T) {
	for name, fn := range map[string]func(a, b []float32) ([]float32, error){
		"direct":     Direct,
		"fft":        FFT,
		"correlate":  Correlate,
		"normalized": Normalized,
	} {
		_, err := fn(nil, []float32{1})
		assert.ErrorIs(t, err, ErrEmptyInput, name)
		_, err = fn([]float32{1}, nil)
		assert.ErrorIs(t, err, ErrEmptyInput, name)
	}

	_, err := Auto(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestFindPeak(t *testing.T) {
	idx, v := FindPeak(nil)
	assert.Equal(t, -1, idx)
	assert.Zero(t, v)

	idx, v = FindPeak([]float32{-3, 1, 4, 1, 4})
	assert.Equal(t, 2, idx, "first maximum wins")
	assert.Equal(t, float32(4), v)
}

func TestLagIndexRoundTrip(t *testing.T) {
	for lenB := 1; lenB < 10; lenB++ {
		for lag := -lenB + 1; lag < 10; lag++ {
			assert.Equal(t, lag, LagFromIndex(IndexFromLag(lag, lenB), lenB))
		}
	}
}

func BenchmarkCorrelate(b *testing.B) {
	a := testutil.DeterministicNoise(1, 1, 4096)
	for _, m := range []int{16, 63, 64, 512} {
		kern := testutil.DeterministicNoise(2, 1, m)
		b.Run(fmt.Sprintf("direct/m=%d", m), func(b *testing.B) {
			for b.Loop() {
				_, _ = Direct(a, kern)
			}
		})
		b.Run(fmt.Sprintf("fft/m=%d", m), func(b *testing.B) {
			for b.Loop() {
				_, _ = FFT(a, kern)
			}
		})
	}
}
