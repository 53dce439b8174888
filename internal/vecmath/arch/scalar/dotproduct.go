// Package scalar is the one-lane reference implementation of the vector
// kernels. The wide lane modes finish their tails with it.
package scalar

import "math"

// DotProduct returns sum(a[i] * b[i]) over the first n elements.
// Each product is rounded before it is added.
func DotProduct(n int, a, b []float32) float32 {
	a, b = a[:n], b[:n]

	var sum float32
	for i := range a {
		sum += float32(a[i] * b[i])
	}
	return sum
}

// ScaledSum returns sum(vec[i] * c) over the first n elements.
func ScaledSum(n int, vec []float32, c float32) float32 {
	vec = vec[:n]

	var sum float32
	for _, v := range vec {
		sum += float32(v * c)
	}
	return sum
}

// FusedMulAdd returns x*y + acc rounded once to float32.
func FusedMulAdd(x, y, acc float32) float32 {
	return float32(math.FMA(float64(x), float64(y), float64(acc)))
}
