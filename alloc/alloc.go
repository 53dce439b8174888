// Package alloc hands out byte blocks whose base address is a multiple of a
// power-of-two alignment, so kernel buffers can meet the lane alignment.
//
// There is no package-level allocator. Callers construct one (Default, NewGo
// or NewMmap) and pass it to the code that needs buffers:
//
//	a := alloc.Default()
//	buf := alloc.Float32s(a, n)
//	if buf == nil {
//		// out of memory
//	}
//	defer alloc.FreeFloat32s(a, buf)
//
// Alloc reports failure by returning nil, never by panicking or aborting.
// GoAllocator takes blocks of LargeBlockSize and up from the OS rather than
// the Go heap, whose out-of-memory failure is fatal. Blocks are
// not guaranteed to be zeroed. A block must go back to the allocator that
// produced it; freeing a foreign block or freeing twice is not detected.
package alloc

import (
	"errors"
	"unsafe"

	"github.com/cwbudde/algo-lanes/lane"
)

var (
	// ErrAlignment is returned for an alignment that is zero, not a power of
	// two, or larger than the allocator can honour.
	ErrAlignment = errors.New("alloc: invalid alignment")

	// ErrUnsupported is returned when an allocator is not available on the
	// current platform.
	ErrUnsupported = errors.New("alloc: unsupported on this platform")
)

// Allocator produces aligned blocks.
type Allocator interface {
	// Alloc returns a block of exactly size bytes, or nil on failure.
	Alloc(size uint64) []byte
	// Free releases a block returned by Alloc. Free(nil) is a no-op.
	Free(b []byte)
	// Alignment is the byte alignment of every block base.
	Alignment() int
}

// Default returns a new Go heap allocator aligned for the active lane mode.
func Default() *GoAllocator {
	return &GoAllocator{alignment: lane.Alignment}
}

// IsAligned reports whether p is a multiple of alignment, which must be a
// power of two.
func IsAligned(p unsafe.Pointer, alignment int) bool {
	return uintptr(p)&uintptr(alignment-1) == 0
}

// AddressOf returns the base address of b. It is valid for empty blocks
// returned by Alloc(0).
func AddressOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

func validAlignment(alignment int) bool {
	return alignment > 0 && alignment&(alignment-1) == 0
}
