package scalar

import (
	"github.com/cwbudde/algo-lanes/internal/vecmath/registry"
	"github.com/cwbudde/algo-lanes/lane"
)

// init registers the scalar mode with the vecmath registry.
//
// Priority: 0 (lowest - runs everywhere, picked only when nothing wider does)
func init() {
	var p lane.Scalar
	registry.Global.Register(registry.OpEntry{
		Name:       p.Name(),
		Lanes:      p.Width(),
		Alignment:  p.Alignment(),
		FusedOps:   p.FusedOps(),
		VectorBits: 0,
		Priority:   0,

		DotProduct:       DotProduct,
		ScaledAccumulate: ScaledAccumulate,
		ScaledSubtract:   ScaledSubtract,
		ScaledSum:        ScaledSum,
	})
}
