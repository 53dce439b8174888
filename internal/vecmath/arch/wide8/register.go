package wide8

import (
	"github.com/cwbudde/algo-lanes/internal/vecmath/registry"
	"github.com/cwbudde/algo-lanes/lane"
)

// init registers both eight-lane modes with the vecmath registry.
//
// Eight float32 lanes fill a 256-bit register (AVX on amd64), so the modes
// need 256-bit vectors to run natively; the fused mode also needs FMA3.
//
// Priority: 20 / 25 (highest - preferred whenever the host has 256-bit vectors)
func init() {
	var plain lane.Wide8
	registry.Global.Register(registry.OpEntry{
		Name:       plain.Name(),
		Lanes:      plain.Width(),
		Alignment:  plain.Alignment(),
		FusedOps:   plain.FusedOps(),
		VectorBits: 256,
		Priority:   20,

		DotProduct:       DotProduct,
		ScaledAccumulate: ScaledAccumulate,
		ScaledSubtract:   ScaledSubtract,
		ScaledSum:        ScaledSum,
	})

	var fused lane.Wide8FMA
	registry.Global.Register(registry.OpEntry{
		Name:       fused.Name(),
		Lanes:      fused.Width(),
		Alignment:  fused.Alignment(),
		FusedOps:   fused.FusedOps(),
		VectorBits: 256,
		Priority:   25,

		DotProduct:       DotProductFMA,
		ScaledAccumulate: ScaledAccumulateFMA,
		ScaledSubtract:   ScaledSubtractFMA,
		ScaledSum:        ScaledSumFMA,
	})
}
