//go:build !unix

package alloc

// MmapAllocator is only available on unix platforms.
type MmapAllocator struct{}

// NewMmap always fails with ErrUnsupported on this platform.
func NewMmap(int) (*MmapAllocator, error) {
	return nil, ErrUnsupported
}

func (m *MmapAllocator) Alignment() int      { return 0 }
func (m *MmapAllocator) Alloc(uint64) []byte { return nil }
func (m *MmapAllocator) Free([]byte)         {}
