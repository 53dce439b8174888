package kernel

import (
	"github.com/cwbudde/algo-lanes/internal/cpu"
	"github.com/cwbudde/algo-lanes/internal/vecmath/registry"
	"github.com/cwbudde/algo-lanes/lane"
)

// ModeInfo describes one lane mode implementation.
type ModeInfo struct {
	Name       string
	Lanes      int
	Alignment  int
	FusedOps   bool
	VectorBits int  // register width the mode maps onto, 0 for scalar
	Native     bool // the host CPU has matching vector registers
	Active     bool // the mode compiled into this build
}

// Ops is the operation set of one lane mode.
type Ops struct {
	DotProduct       func(n int, a, b []float32) float32
	ScaledAccumulate func(n int, out, vec []float32, c float32)
	ScaledSubtract   func(n int, out, vec []float32, c float32)
	ScaledSum        func(n int, vec []float32, c float32) float32
}

// Modes lists every lane mode, widest first.
func Modes() []ModeInfo {
	features := cpu.DetectFeatures()
	entries := registry.Global.ListEntries()

	out := make([]ModeInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, modeInfo(e, features))
	}
	return out
}

// NativeMode returns the widest mode the host CPU executes natively.
func NativeMode() ModeInfo {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("kernel: no lane mode registered")
	}
	return modeInfo(*entry, features)
}

// ActiveMode returns the mode compiled into this build.
func ActiveMode() ModeInfo {
	info, _ := Mode(lane.Mode)
	return info
}

// Mode returns the description of the named mode.
func Mode(name string) (ModeInfo, bool) {
	entry := registry.Global.ByName(name)
	if entry == nil {
		return ModeInfo{}, false
	}
	return modeInfo(*entry, cpu.DetectFeatures()), true
}

// OpsFor returns the operations of the named mode. Benchmarks and tools use
// it to compare modes; regular callers use the package functions.
func OpsFor(name string) (Ops, bool) {
	entry := registry.Global.ByName(name)
	if entry == nil {
		return Ops{}, false
	}
	return Ops{
		DotProduct:       entry.DotProduct,
		ScaledAccumulate: entry.ScaledAccumulate,
		ScaledSubtract:   entry.ScaledSubtract,
		ScaledSum:        entry.ScaledSum,
	}, true
}

func modeInfo(e registry.OpEntry, features cpu.Features) ModeInfo {
	return ModeInfo{
		Name:       e.Name,
		Lanes:      e.Lanes,
		Alignment:  e.Alignment,
		FusedOps:   e.FusedOps,
		VectorBits: e.VectorBits,
		Native:     cpu.Supports(features, e.VectorBits, e.FusedOps),
		Active:     e.Name == lane.Mode,
	}
}
