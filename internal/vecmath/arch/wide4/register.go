package wide4

import (
	"github.com/cwbudde/algo-lanes/internal/vecmath/registry"
	"github.com/cwbudde/algo-lanes/lane"
)

// init registers both four-lane modes with the vecmath registry.
//
// Four float32 lanes fill a 128-bit register (SSE2 on amd64, NEON on arm64).
// The fused mode needs FMA on 128-bit registers, which NEON always has.
//
// Priority: 10 / 15 (preferred over scalar, below the eight-lane modes)
func init() {
	var plain lane.Wide4
	registry.Global.Register(registry.OpEntry{
		Name:       plain.Name(),
		Lanes:      plain.Width(),
		Alignment:  plain.Alignment(),
		FusedOps:   plain.FusedOps(),
		VectorBits: 128,
		Priority:   10,

		DotProduct:       DotProduct,
		ScaledAccumulate: ScaledAccumulate,
		ScaledSubtract:   ScaledSubtract,
		ScaledSum:        ScaledSum,
	})

	var fused lane.Wide4FMA
	registry.Global.Register(registry.OpEntry{
		Name:       fused.Name(),
		Lanes:      fused.Width(),
		Alignment:  fused.Alignment(),
		FusedOps:   fused.FusedOps(),
		VectorBits: 128,
		Priority:   15,

		DotProduct:       DotProductFMA,
		ScaledAccumulate: ScaledAccumulateFMA,
		ScaledSubtract:   ScaledSubtractFMA,
		ScaledSum:        ScaledSumFMA,
	})
}
