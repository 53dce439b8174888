// Package group holds the lane-group loop bodies shared by the fixed-width
// arch packages.
//
// A width package supplies its vector type and a zero-size Ops
// implementation; the functions here split n into full groups, run the lane
// arithmetic and finish the n%Lanes tail with the scalar kernels.
package group

import "github.com/cwbudde/algo-lanes/internal/vecmath/arch/scalar"

// Ops is the lane arithmetic of one width over its vector type V.
type Ops[V any] interface {
	Lanes() int
	Load(s []float32) V
	Store(s []float32, v V)
	Broadcast(c float32) V

	// MulAdd and MulSub round the product before the add.
	MulAdd(a, b, acc V) V
	MulSub(a, b, acc V) V

	// FMAdd and FMSub round once per lane.
	FMAdd(a, b, acc V) V
	FMSub(a, b, acc V) V

	// Sum reduces the lanes left to right.
	Sum(v V) float32
}

// DotProduct returns sum(a[i] * b[i]) over the first n elements.
func DotProduct[V any, O Ops[V]](n int, a, b []float32, fused bool) float32 {
	if n == 0 {
		return 0
	}
	var o O
	lanes := o.Lanes()
	a, b = a[:n], b[:n]
	fragments := n / lanes

	var acc V
	if fused {
		for f := range fragments {
			off := f * lanes
			acc = o.FMAdd(o.Load(a[off:]), o.Load(b[off:]), acc)
		}
	} else {
		for f := range fragments {
			off := f * lanes
			acc = o.MulAdd(o.Load(a[off:]), o.Load(b[off:]), acc)
		}
	}

	sum := o.Sum(acc)
	if partial := n - fragments*lanes; partial != 0 {
		off := fragments * lanes
		sum += scalar.DotProduct(partial, a[off:], b[off:])
	}
	return sum
}

// ScaledSum returns sum(v[i] * c) over the first n elements.
func ScaledSum[V any, O Ops[V]](n int, v []float32, c float32, fused bool) float32 {
	if n == 0 {
		return 0
	}
	var o O
	lanes := o.Lanes()
	v = v[:n]
	fragments := n / lanes
	k := o.Broadcast(c)

	var acc V
	if fused {
		for f := range fragments {
			acc = o.FMAdd(o.Load(v[f*lanes:]), k, acc)
		}
	} else {
		for f := range fragments {
			acc = o.MulAdd(o.Load(v[f*lanes:]), k, acc)
		}
	}

	sum := o.Sum(acc)
	if partial := n - fragments*lanes; partial != 0 {
		sum += scalar.ScaledSum(partial, v[fragments*lanes:], c)
	}
	return sum
}

// ScaledAccumulate performs out[i] += v[i] * c for the first n elements.
// out and v must be the same slice or not overlap.
func ScaledAccumulate[V any, O Ops[V]](n int, out, v []float32, c float32, fused bool) {
	var o O
	lanes := o.Lanes()
	out, v = out[:n], v[:n]
	fragments := n / lanes
	k := o.Broadcast(c)

	if fused {
		for f := range fragments {
			off := f * lanes
			o.Store(out[off:], o.FMAdd(o.Load(v[off:]), k, o.Load(out[off:])))
		}
	} else {
		for f := range fragments {
			off := f * lanes
			o.Store(out[off:], o.MulAdd(o.Load(v[off:]), k, o.Load(out[off:])))
		}
	}

	if partial := n - fragments*lanes; partial != 0 {
		off := fragments * lanes
		scalar.ScaledAccumulate(partial, out[off:], v[off:], c)
	}
}

// ScaledSubtract performs out[i] -= v[i] * c for the first n elements.
// out and v must be the same slice or not overlap.
func ScaledSubtract[V any, O Ops[V]](n int, out, v []float32, c float32, fused bool) {
	var o O
	lanes := o.Lanes()
	out, v = out[:n], v[:n]
	fragments := n / lanes
	k := o.Broadcast(c)

	if fused {
		for f := range fragments {
			off := f * lanes
			o.Store(out[off:], o.FMSub(o.Load(v[off:]), k, o.Load(out[off:])))
		}
	} else {
		for f := range fragments {
			off := f * lanes
			o.Store(out[off:], o.MulSub(o.Load(v[off:]), k, o.Load(out[off:])))
		}
	}

	if partial := n - fragments*lanes; partial != 0 {
		off := fragments * lanes
		scalar.ScaledSubtract(partial, out[off:], v[off:], c)
	}
}
