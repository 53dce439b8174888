package kernel

import (
	"github.com/cwbudde/algo-lanes/internal/vecmath/arch/scalar"
	"github.com/cwbudde/algo-lanes/internal/vecmath/arch/wide4"
	"github.com/cwbudde/algo-lanes/internal/vecmath/arch/wide8"
	"github.com/cwbudde/algo-lanes/lane"
)

// Policies are constant-valued, so each switch below resolves to a single
// call once P is fixed. Widths other than 4 and 8 run the scalar kernels.

// DotProductFor returns sum(a[i] * b[i]) for i < n using policy P.
func DotProductFor[P lane.Policy](n int, a, b []float32) float32 {
	var p P
	switch p.Width() {
	case wide8.Lanes:
		if p.FusedOps() {
			return wide8.DotProductFMA(n, a, b)
		}
		return wide8.DotProduct(n, a, b)
	case wide4.Lanes:
		if p.FusedOps() {
			return wide4.DotProductFMA(n, a, b)
		}
		return wide4.DotProduct(n, a, b)
	default:
		return scalar.DotProduct(n, a, b)
	}
}

// ScaledAccumulateFor performs out[i] += vec[i] * c for i < n using policy P.
func ScaledAccumulateFor[P lane.Policy](n int, out, vec []float32, c float32) {
	var p P
	switch p.Width() {
	case wide8.Lanes:
		if p.FusedOps() {
			wide8.ScaledAccumulateFMA(n, out, vec, c)
			return
		}
		wide8.ScaledAccumulate(n, out, vec, c)
	case wide4.Lanes:
		if p.FusedOps() {
			wide4.ScaledAccumulateFMA(n, out, vec, c)
			return
		}
		wide4.ScaledAccumulate(n, out, vec, c)
	default:
		scalar.ScaledAccumulate(n, out, vec, c)
	}
}

// ScaledSubtractFor performs out[i] -= vec[i] * c for i < n using policy P.
func ScaledSubtractFor[P lane.Policy](n int, out, vec []float32, c float32) {
	var p P
	switch p.Width() {
	case wide8.Lanes:
		if p.FusedOps() {
			wide8.ScaledSubtractFMA(n, out, vec, c)
			return
		}
		wide8.ScaledSubtract(n, out, vec, c)
	case wide4.Lanes:
		if p.FusedOps() {
			wide4.ScaledSubtractFMA(n, out, vec, c)
			return
		}
		wide4.ScaledSubtract(n, out, vec, c)
	default:
		scalar.ScaledSubtract(n, out, vec, c)
	}
}

// ScaledSumFor returns sum(vec[i] * c) for i < n using policy P.
func ScaledSumFor[P lane.Policy](n int, vec []float32, c float32) float32 {
	var p P
	switch p.Width() {
	case wide8.Lanes:
		if p.FusedOps() {
			return wide8.ScaledSumFMA(n, vec, c)
		}
		return wide8.ScaledSum(n, vec, c)
	case wide4.Lanes:
		if p.FusedOps() {
			return wide4.ScaledSumFMA(n, vec, c)
		}
		return wide4.ScaledSum(n, vec, c)
	default:
		return scalar.ScaledSum(n, vec, c)
	}
}
