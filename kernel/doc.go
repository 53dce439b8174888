// Package kernel provides the lane-parallel float32 primitives.
//
// # Operations
//
//   - DotProduct: sum(a[i] * b[i])
//   - ScaledAccumulate: out[i] += vec[i] * c
//   - ScaledSubtract: out[i] -= vec[i] * c
//   - ScaledSum: sum(vec[i] * c)
//
// Every operation takes an element count n and slices holding at least n
// elements. The first n/W groups of W elements go through the lane path,
// where W is the width of the lane policy; the remaining n%W elements are
// finished one at a time. The unsuffixed functions use the policy compiled
// into the build ([lane.Active]); the generic *For variants take any policy
// from package lane:
//
//	s := kernel.DotProduct(n, a, b)                   // lane.Active
//	s = kernel.DotProductFor[lane.Wide4](n, a, b)     // explicit width
//
// # Numerics
//
// DotProduct and ScaledSum sum per lane, reduce the lanes left to right and
// then add the independently summed tail. Results can differ in the last
// bits from a single left-to-right loop. Policies with FusedOps round each
// multiply-accumulate once, in ScaledSubtract as well as ScaledAccumulate.
//
// # Contract
//
// The kernels check nothing. n larger than a slice panics with an index
// error; out and vec must be the same slice or not overlap at all.
// Buffers taken from package alloc satisfy the lane alignment; other
// buffers still compute correctly. The kernels hold no state and take no
// locks, so concurrent calls on disjoint buffers are safe and calls on
// overlapping outputs race. See package parallel for disjoint partitioning.
package kernel
