package alloc

import (
	"unsafe"

	"github.com/cwbudde/algo-lanes/lane"
)

// Float32s allocates n float32 elements from a. It returns nil when the
// allocation fails. The slice keeps the block's full capacity so that
// FreeFloat32s can hand the exact block back.
func Float32s(a Allocator, n int) []float32 {
	if n < 0 {
		return nil
	}
	b := a.Alloc(uint64(n) * lane.Float32Size)
	if b == nil {
		return nil
	}
	ptr := (*float32)(unsafe.Pointer(unsafe.SliceData(b))) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice(ptr, cap(b)/lane.Float32Size)[:n]
}

// FreeFloat32s returns a slice obtained from Float32s to a.
func FreeFloat32s(a Allocator, s []float32) {
	if cap(s) == 0 {
		return
	}
	ptr := (*byte)(unsafe.Pointer(unsafe.SliceData(s))) //nolint:gosec // unsafe is required for memory alignment
	a.Free(unsafe.Slice(ptr, cap(s)*lane.Float32Size))
}
