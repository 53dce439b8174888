//go:build !lanes_scalar && !lanes_wide4 && lanes_nofma

package lane

// Active is the lane policy compiled into this build.
type Active = Wide8

// Properties of [Active] as compile-time constants.
const (
	Width     = 8
	Alignment = 32
	FusedOps  = false
	Mode      = "wide8"
)
