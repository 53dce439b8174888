//go:build lanes_wide4 && !lanes_scalar && lanes_nofma

package lane

// Active is the lane policy compiled into this build.
type Active = Wide4

// Properties of [Active] as compile-time constants.
const (
	Width     = 4
	Alignment = 16
	FusedOps  = false
	Mode      = "wide4"
)
