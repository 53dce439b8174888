package kernel

import "github.com/cwbudde/algo-lanes/lane"

// DotProduct returns sum(a[i] * b[i]) for i < n.
// Returns 0 for n == 0, even when a and b are nil.
func DotProduct(n int, a, b []float32) float32 {
	return DotProductFor[lane.Active](n, a, b)
}

// ScaledAccumulate performs out[i] += vec[i] * c for i < n.
func ScaledAccumulate(n int, out, vec []float32, c float32) {
	ScaledAccumulateFor[lane.Active](n, out, vec, c)
}

// ScaledSubtract performs out[i] -= vec[i] * c for i < n.
// It undoes ScaledAccumulate with the same arguments up to rounding.
func ScaledSubtract(n int, out, vec []float32, c float32) {
	ScaledSubtractFor[lane.Active](n, out, vec, c)
}

// ScaledSum returns sum(vec[i] * c) for i < n.
func ScaledSum(n int, vec []float32, c float32) float32 {
	return ScaledSumFor[lane.Active](n, vec, c)
}
