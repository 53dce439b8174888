// Package parallel spreads the kernel operations over goroutines.
//
// Buffers are cut into disjoint chunks, one kernel call per chunk. Chunk
// boundaries fall on multiples of lane.Alignment/4 elements, so a chunk of
// an aligned buffer is itself aligned. Dot products are combined in chunk
// order, which makes the result depend only on the input and the Options,
// never on scheduling.
package parallel

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-lanes/kernel"
	"github.com/cwbudde/algo-lanes/lane"
)

// ErrLengthMismatch is returned when the input slices differ in length.
var ErrLengthMismatch = errors.New("parallel: slice length mismatch")

// DefaultMinChunk is the smallest chunk handed to a worker when
// Options.MinChunk is unset.
const DefaultMinChunk = 4096

// chunkUnit is the granularity of chunk boundaries in elements.
const chunkUnit = lane.Alignment / lane.Float32Size

// Options controls partitioning.
type Options struct {
	// Workers bounds the number of concurrent kernel calls.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int

	// MinChunk is the minimum number of elements per chunk.
	// Zero or negative means DefaultMinChunk.
	MinChunk int
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.MinChunk <= 0 {
		o.MinChunk = DefaultMinChunk
	}
	return o
}

// Range is the half-open element interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of elements in r.
func (r Range) Len() int { return r.End - r.Start }

// Partition splits n elements into the chunks the operations in this
// package use. Every Start is a multiple of lane.Alignment/4; only the last
// chunk may be shorter than the others.
func Partition(n int, opts Options) []Range {
	if n <= 0 {
		return nil
	}
	opts = opts.withDefaults()

	size := (n + opts.Workers - 1) / opts.Workers
	size = max(size, opts.MinChunk)
	size = (size + chunkUnit - 1) / chunkUnit * chunkUnit

	ranges := make([]Range, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		ranges = append(ranges, Range{Start: start, End: min(start+size, n)})
	}
	return ranges
}

// DotProduct returns the dot product of a and b computed chunk-wise.
func DotProduct(ctx context.Context, opts Options, a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	ranges := Partition(len(a), opts)
	partials := make([]float32, len(ranges))

	err := run(ctx, opts, ranges, func(i int, r Range) {
		partials[i] = kernel.DotProduct(r.Len(), a[r.Start:], b[r.Start:])
	})
	if err != nil {
		return 0, err
	}

	var sum float32
	for _, p := range partials {
		sum += p
	}
	return sum, nil
}

// ScaledAccumulate performs out[i] += vec[i] * c chunk-wise. On error some
// chunks may already have been updated.
func ScaledAccumulate(ctx context.Context, opts Options, out, vec []float32, c float32) error {
	if len(out) != len(vec) {
		return ErrLengthMismatch
	}
	return run(ctx, opts, Partition(len(out), opts), func(_ int, r Range) {
		kernel.ScaledAccumulate(r.Len(), out[r.Start:], vec[r.Start:], c)
	})
}

// ScaledSubtract performs out[i] -= vec[i] * c chunk-wise. On error some
// chunks may already have been updated.
func ScaledSubtract(ctx context.Context, opts Options, out, vec []float32, c float32) error {
	if len(out) != len(vec) {
		return ErrLengthMismatch
	}
	return run(ctx, opts, Partition(len(out), opts), func(_ int, r Range) {
		kernel.ScaledSubtract(r.Len(), out[r.Start:], vec[r.Start:], c)
	})
}

// run calls fn for every range, at most opts.Workers at a time. A chunk that
// has not started when ctx is cancelled is skipped.
func run(ctx context.Context, opts Options, ranges []Range, fn func(i int, r Range)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// A single chunk runs on the calling goroutine.
	if len(ranges) == 1 {
		fn(0, ranges[0])
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.withDefaults().Workers)

	for i, r := range ranges {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i, r)
			return nil
		})
	}
	return g.Wait()
}
