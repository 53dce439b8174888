package alloc

import (
	"math"
	"os"
	"runtime"
	"unsafe"

	"github.com/cwbudde/algo-lanes/lane"
)

// LargeBlockSize is the request size from which GoAllocator stops using the
// Go heap. The runtime aborts the process when it cannot back a heap
// allocation, so large blocks come from the OS (an anonymous mapping on unix,
// VirtualAlloc on windows), where a refusal turns into a nil block.
const LargeBlockSize = 64 << 20

// GoAllocator carves aligned blocks out of ordinary Go heap allocations.
//
// Each block over-allocates by the alignment and starts at the first aligned
// byte. The garbage collector owns the memory, so Free only drops the
// caller's reference. Requests of LargeBlockSize bytes or more are served by
// the OS instead and released by Free. The zero value aligns to
// lane.Alignment.
type GoAllocator struct {
	alignment int
}

// NewGo returns a Go heap allocator for the given power-of-two alignment,
// which must not exceed the page size.
func NewGo(alignment int) (*GoAllocator, error) {
	if !validAlignment(alignment) || alignment > os.Getpagesize() {
		return nil, ErrAlignment
	}
	return &GoAllocator{alignment: alignment}, nil
}

// Alignment returns the block alignment in bytes.
func (g *GoAllocator) Alignment() int {
	if g.alignment == 0 {
		return lane.Alignment
	}
	return g.alignment
}

// Alloc returns size bytes starting at an aligned address, or nil when the
// memory cannot be obtained.
func (g *GoAllocator) Alloc(size uint64) []byte {
	alignment := g.Alignment()
	if size > uint64(math.MaxInt-alignment) {
		return nil
	}
	if size >= LargeBlockSize {
		return allocLarge(size, alignment)
	}
	return heapBlock(int(size), alignment)
}

// heapBlock carves n aligned bytes out of a Go heap allocation. It returns
// nil if make panics for a length beyond the heap limit.
func heapBlock(n, alignment int) (b []byte) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			b = nil
		}
	}()

	buf := make([]byte, n+alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	mask := uintptr(alignment - 1)
	offset := int((uintptr(alignment) - addr&mask) & mask)

	if n == 0 {
		// A zero-capacity reslice would reset the base to buf[0].
		return buf[offset:offset]
	}
	return buf[offset : offset+n : offset+n]
}

// Free releases blocks of LargeBlockSize bytes or more. Smaller blocks
// become garbage once the caller drops them. A large block must keep its
// original base address.
func (g *GoAllocator) Free(b []byte) {
	if cap(b) >= LargeBlockSize {
		freeLarge(b)
	}
}
