// Command laneinfo reports the lane mode compiled into the kernels and the
// modes the host CPU runs natively.
//
// Usage:
//
//	laneinfo [flags]
//
// Without flags it prints the compiled configuration and the detected CPU
// features.
//
// Examples:
//
//	laneinfo
//	laneinfo -list
//	laneinfo -bench -size 65536
//	laneinfo -recommend
//	laneinfo -v -bench -workers 4
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-lanes/alloc"
	"github.com/cwbudde/algo-lanes/internal/cpu"
	"github.com/cwbudde/algo-lanes/kernel"
	"github.com/cwbudde/algo-lanes/lane"
	"github.com/cwbudde/algo-lanes/parallel"
)

// buildTags maps each mode to the tags that compile it in.
var buildTags = map[string]string{
	"scalar":    "lanes_scalar",
	"wide4":     "lanes_wide4,lanes_nofma",
	"wide4-fma": "lanes_wide4",
	"wide8":     "lanes_nofma",
	"wide8-fma": "",
}

// benchElements is the number of elements each benchmark row processes in
// total, split into repeated calls of the requested size.
const benchElements = 1 << 24

var errOutOfMemory = errors.New("laneinfo: buffer allocation failed")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("laneinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	list := fs.Bool("list", false, "list every lane mode and whether the host runs it natively")
	bench := fs.Bool("bench", false, "time DotProduct and ScaledAccumulate for every mode")
	size := fs.Int("size", 4096, "vector length in elements for -bench")
	workers := fs.Int("workers", 0, "workers for the parallel -bench row (0 = GOMAXPROCS)")
	recommend := fs.Bool("recommend", false, "print the best mode for this host and its build tags")
	verbose := fs.Bool("v", false, "enable debug logging on stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: laneinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Reports the compiled lane mode and the host CPU capabilities.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  laneinfo -list\n")
		fmt.Fprintf(stderr, "  laneinfo -bench -size 65536\n")
		fmt.Fprintf(stderr, "  laneinfo -recommend\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	features := cpu.DetectFeatures()
	logger.Debug("detected cpu features",
		"arch", features.Architecture,
		"simd", features.Level().String(),
		"vector_bits", features.VectorBits(),
		"fma", features.HasFMA,
	)

	var err error
	switch {
	case *list:
		err = printList(stdout)
	case *bench:
		if *size <= 0 {
			logger.Error("invalid -size", "size", *size)
			return 2
		}
		err = runBench(stdout, logger, *size, parallel.Options{Workers: *workers})
	case *recommend:
		err = printRecommendation(stdout)
	default:
		err = printConfig(stdout, features)
	}
	if err != nil {
		logger.Error("laneinfo failed", "err", err)
		return 1
	}
	return 0
}

func printConfig(w io.Writer, features cpu.Features) error {
	native := kernel.NativeMode()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Compiled mode", lane.Mode},
		{"Lane width", fmt.Sprint(lane.Width)},
		{"Alignment [bytes]", fmt.Sprint(lane.Alignment)},
		{"Fused multiply-add", fmt.Sprint(lane.FusedOps)},
		{"Architecture", features.Architecture},
		{"SIMD level", features.Level().String()},
		{"Vector width [bits]", fmt.Sprint(features.VectorBits())},
		{"Host FMA", fmt.Sprint(features.HasFMA)},
		{"Best native mode", native.Name},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1]); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	}
	return tw.Flush()
}

func printList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Mode\tLanes\tAlign\tFMA\tVector bits\tNative\tActive\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t-----\t-----\t---\t-----------\t------\t------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, m := range kernel.Modes() {
		active := ""
		if m.Active {
			active = "*"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%v\t%d\t%v\t%s\n",
			m.Name, m.Lanes, m.Alignment, m.FusedOps, m.VectorBits, m.Native, active,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

func printRecommendation(w io.Writer) error {
	native := kernel.NativeMode()
	active := kernel.ActiveMode()

	tags := buildTags[native.Name]
	build := "go build ./..."
	if tags != "" {
		build = "go build -tags " + tags + " ./..."
	}

	if _, err := fmt.Fprintf(w, "Recommended mode: %s\nBuild with:       %s\n", native.Name, build); err != nil {
		return fmt.Errorf("write recommendation: %w", err)
	}
	if native.Name != active.Name {
		if _, err := fmt.Fprintf(w, "Currently compiled: %s\n", active.Name); err != nil {
			return fmt.Errorf("write recommendation: %w", err)
		}
	}
	return nil
}

func runBench(w io.Writer, logger *slog.Logger, size int, opts parallel.Options) error {
	a := alloc.Default()
	x := alloc.Float32s(a, size)
	y := alloc.Float32s(a, size)
	if x == nil || y == nil {
		return errOutOfMemory
	}
	defer alloc.FreeFloat32s(a, x)
	defer alloc.FreeFloat32s(a, y)

	for i := range x {
		x[i] = float32(i%17) * 0.125
		y[i] = 1
	}

	iterations := max(1, benchElements/size)
	logger.Debug("benchmark", "size", size, "iterations", iterations)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Mode\tNative\tDot [ns/op]\tDot [GB/s]\tAccumulate [ns/op]\tAccumulate [GB/s]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bytesPerOp := float64(size * 2 * lane.Float32Size)
	for _, m := range kernel.Modes() {
		ops, ok := kernel.OpsFor(m.Name)
		if !ok {
			continue
		}

		var sink float32
		dot := timeOp(iterations, func() { sink += ops.DotProduct(size, x, y) })
		acc := timeOp(iterations, func() { ops.ScaledAccumulate(size, y, x, 0) })
		logger.Debug("mode timed", "mode", m.Name, "checksum", sink)

		if _, err := fmt.Fprintf(tw, "%s\t%v\t%.1f\t%.2f\t%.1f\t%.2f\n",
			m.Name, m.Native,
			nsPerOp(dot, iterations), gbPerSec(dot, iterations, bytesPerOp),
			nsPerOp(acc, iterations), gbPerSec(acc, iterations, bytesPerOp),
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	ctx := context.Background()
	var perr error
	pdot := timeOp(iterations, func() {
		if _, err := parallel.DotProduct(ctx, opts, x, y); err != nil {
			perr = err
		}
	})
	pacc := timeOp(iterations, func() {
		if err := parallel.ScaledAccumulate(ctx, opts, y, x, 0); err != nil {
			perr = err
		}
	})
	if perr != nil {
		return fmt.Errorf("parallel bench: %w", perr)
	}
	if _, err := fmt.Fprintf(tw, "parallel(%s)\t-\t%.1f\t%.2f\t%.1f\t%.2f\n",
		lane.Mode,
		nsPerOp(pdot, iterations), gbPerSec(pdot, iterations, bytesPerOp),
		nsPerOp(pacc, iterations), gbPerSec(pacc, iterations, bytesPerOp),
	); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return tw.Flush()
}

func timeOp(iterations int, fn func()) time.Duration {
	start := time.Now()
	for range iterations {
		fn()
	}
	return time.Since(start)
}

func nsPerOp(d time.Duration, iterations int) float64 {
	return float64(d.Nanoseconds()) / float64(iterations)
}

func gbPerSec(d time.Duration, iterations int, bytesPerOp float64) float64 {
	if d <= 0 {
		return 0
	}
	return bytesPerOp * float64(iterations) / d.Seconds() / 1e9
}
