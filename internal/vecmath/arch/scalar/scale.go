package scalar

// ScaledAccumulate performs out[i] += vec[i] * c for the first n elements.
// out and vec must be the same slice or not overlap.
func ScaledAccumulate(n int, out, vec []float32, c float32) {
	out, vec = out[:n], vec[:n]
	for i := range out {
		out[i] += float32(vec[i] * c)
	}
}

// ScaledSubtract performs out[i] -= vec[i] * c for the first n elements.
// out and vec must be the same slice or not overlap.
func ScaledSubtract(n int, out, vec []float32, c float32) {
	out, vec = out[:n], vec[:n]
	for i := range out {
		out[i] -= float32(vec[i] * c)
	}
}
