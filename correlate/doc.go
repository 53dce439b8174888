// Package correlate computes cross-correlations of float32 signals on top of
// the lane kernels.
//
// All functions return the full correlation of length len(a)+len(b)-1.
// Output index k holds lag k-(len(b)-1):
//
//	out[k] = sum_i a[i+lag] * b[i]
//
// Direct evaluates one kernel.DotProduct per lag and suits short signals.
// FFT multiplies spectra from algo-fft and suits long ones. Correlate picks
// between them by the length of b.
package correlate
