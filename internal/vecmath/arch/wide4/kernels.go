// Package wide4 implements the vector kernels over four-lane groups.
//
// The loop bodies live in package group; this package supplies the
// 4-lane vector and its arithmetic. Each operation has a variant with
// separately rounded multiply and add and an FMA variant.
package wide4

import "github.com/cwbudde/algo-lanes/internal/vecmath/arch/group"

// DotProduct returns sum(a[i] * b[i]) over the first n elements.
func DotProduct(n int, a, b []float32) float32 {
	return group.DotProduct[vec, ops](n, a, b, false)
}

// DotProductFMA is DotProduct with fused multiply-add in the lane loop.
func DotProductFMA(n int, a, b []float32) float32 {
	return group.DotProduct[vec, ops](n, a, b, true)
}

// ScaledSum returns sum(v[i] * c) over the first n elements.
func ScaledSum(n int, v []float32, c float32) float32 {
	return group.ScaledSum[vec, ops](n, v, c, false)
}

// ScaledSumFMA is ScaledSum with fused multiply-add in the lane loop.
func ScaledSumFMA(n int, v []float32, c float32) float32 {
	return group.ScaledSum[vec, ops](n, v, c, true)
}

// ScaledAccumulate performs out[i] += v[i] * c for the first n elements.
// out and v must be the same slice or not overlap.
func ScaledAccumulate(n int, out, v []float32, c float32) {
	group.ScaledAccumulate[vec, ops](n, out, v, c, false)
}

// ScaledAccumulateFMA is ScaledAccumulate with fused multiply-add.
func ScaledAccumulateFMA(n int, out, v []float32, c float32) {
	group.ScaledAccumulate[vec, ops](n, out, v, c, true)
}

// ScaledSubtract performs out[i] -= v[i] * c for the first n elements.
// out and v must be the same slice or not overlap.
func ScaledSubtract(n int, out, v []float32, c float32) {
	group.ScaledSubtract[vec, ops](n, out, v, c, false)
}

// ScaledSubtractFMA is ScaledSubtract with fused multiply-subtract.
func ScaledSubtractFMA(n int, out, v []float32, c float32) {
	group.ScaledSubtract[vec, ops](n, out, v, c, true)
}
