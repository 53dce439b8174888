//go:build lanes_scalar

package lane

// Active is the lane policy compiled into this build.
type Active = Scalar

// Properties of [Active] as compile-time constants.
const (
	Width     = 1
	Alignment = 8
	FusedOps  = false
	Mode      = "scalar"
)
