//go:build unix

package alloc

import (
	"math"

	"golang.org/x/sys/unix"

	"github.com/cwbudde/algo-lanes/lane"
)

// MmapAllocator backs every block with its own anonymous private mapping.
//
// Mappings start on a page boundary, which satisfies any alignment up to
// the page size. Memory comes back zeroed from the kernel, although callers
// must not rely on it. Free unmaps the block. The zero value aligns to
// lane.Alignment.
type MmapAllocator struct {
	alignment int
}

// NewMmap returns an mmap allocator. The alignment must be a power of two no
// larger than the page size.
func NewMmap(alignment int) (*MmapAllocator, error) {
	if !validAlignment(alignment) || alignment > unix.Getpagesize() {
		return nil, ErrAlignment
	}
	return &MmapAllocator{alignment: alignment}, nil
}

// Alignment returns the block alignment in bytes.
func (m *MmapAllocator) Alignment() int {
	if m.alignment == 0 {
		return lane.Alignment
	}
	return m.alignment
}

// Alloc maps size bytes, or returns nil if the kernel refuses the mapping.
// A zero size still maps one page so that the empty block has a valid,
// aligned base address.
func (m *MmapAllocator) Alloc(size uint64) []byte {
	if size == 0 {
		return mapAnon(uint64(unix.Getpagesize()))[:0]
	}
	return mapAnon(size)
}

// Free unmaps a block returned by Alloc. Resliced blocks are accepted as
// long as they keep the original base and capacity.
func (m *MmapAllocator) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	unmap(b)
}

// mapAnon returns a private read-write mapping of size bytes, or nil if the
// kernel refuses it.
func mapAnon(size uint64) []byte {
	if size > math.MaxInt {
		return nil
	}
	data, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	return data
}

// unmap releases a block from mapAnon. unix.Munmap identifies the mapping by
// its full extent, so the capacity is restored first. The error is dropped
// on purpose: it only reports a block that did not come from mapAnon, which
// the Free contract already leaves undefined.
func unmap(b []byte) {
	_ = unix.Munmap(b[:cap(b)])
}
