// Package lane describes the processing width of the vector kernels.
//
// A lane configuration is a policy type with three properties: how many
// float32 elements are processed together (the width), the byte alignment
// the widest load/store of that width expects, and whether the
// multiply-accumulate step is fused. The five policies are:
//
//	Policy    Width  Alignment  FusedOps
//	Scalar    1      8          false
//	Wide4     4      16         false
//	Wide4FMA  4      16         true
//	Wide8     8      32         false
//	Wide8FMA  8      32         true
//
// Exactly one policy is active per build and is exposed as the type alias
// [Active] together with the constants [Width], [Alignment], [FusedOps] and
// [Mode]. The choice is made with build tags:
//
//	(no tags)                      Wide8FMA
//	-tags lanes_nofma              Wide8
//	-tags lanes_wide4              Wide4FMA
//	-tags lanes_wide4,lanes_nofma  Wide4
//	-tags lanes_scalar             Scalar
//
// There is no runtime re-selection. Code that needs a different width can
// still name a policy explicitly through the generic kernel entry points.
package lane

// Policy is a lane configuration. Implementations are zero-size types whose
// methods return constants, so a policy carries no state.
type Policy interface {
	// Width is the number of float32 elements per lane group.
	Width() int
	// Alignment is the byte alignment expected of buffer base addresses.
	Alignment() int
	// FusedOps reports whether multiply-accumulate uses a single rounding.
	FusedOps() bool
	// Name identifies the policy, e.g. "wide8-fma".
	Name() string
}

// Float32Size is the size of one lane element in bytes.
const Float32Size = 4

// Scalar processes one element at a time. It is the reference fallback.
type Scalar struct{}

func (Scalar) Width() int     { return 1 }
func (Scalar) Alignment() int { return 8 }
func (Scalar) FusedOps() bool { return false }
func (Scalar) Name() string   { return "scalar" }

// Wide4 processes four elements per step with separate multiply and add.
type Wide4 struct{}

func (Wide4) Width() int     { return 4 }
func (Wide4) Alignment() int { return 16 }
func (Wide4) FusedOps() bool { return false }
func (Wide4) Name() string   { return "wide4" }

// Wide4FMA processes four elements per step with fused multiply-add.
type Wide4FMA struct{}

func (Wide4FMA) Width() int     { return 4 }
func (Wide4FMA) Alignment() int { return 16 }
func (Wide4FMA) FusedOps() bool { return true }
func (Wide4FMA) Name() string   { return "wide4-fma" }

// Wide8 processes eight elements per step with separate multiply and add.
type Wide8 struct{}

func (Wide8) Width() int     { return 8 }
func (Wide8) Alignment() int { return 32 }
func (Wide8) FusedOps() bool { return false }
func (Wide8) Name() string   { return "wide8" }

// Wide8FMA processes eight elements per step with fused multiply-add.
type Wide8FMA struct{}

func (Wide8FMA) Width() int     { return 8 }
func (Wide8FMA) Alignment() int { return 32 }
func (Wide8FMA) FusedOps() bool { return true }
func (Wide8FMA) Name() string   { return "wide8-fma" }

// Policies returns one value of every known policy, narrowest first.
func Policies() []Policy {
	return []Policy{Scalar{}, Wide4{}, Wide4FMA{}, Wide8{}, Wide8FMA{}}
}

// SplitFor divides n elements into full lane groups of P and a tail.
// fragments*Width + partial == n and 0 <= partial < Width.
func SplitFor[P Policy](n int) (fragments, partial int) {
	var p P
	w := p.Width()
	fragments = n / w
	partial = n - fragments*w
	return fragments, partial
}

// PaddedLenFor rounds n up to a whole number of lane groups of P.
func PaddedLenFor[P Policy](n int) int {
	var p P
	w := p.Width()
	return ((n + w - 1) / w) * w
}

// Split is SplitFor for the active policy.
func Split(n int) (fragments, partial int) {
	fragments = n / Width
	partial = n - fragments*Width
	return fragments, partial
}

// PaddedLen rounds n up to a whole number of active lane groups. Buffers of
// this length can be processed without a tail.
func PaddedLen(n int) int {
	return ((n + Width - 1) / Width) * Width
}
