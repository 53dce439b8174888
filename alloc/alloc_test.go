package alloc

import (
	"fmt"
	"math"
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-lanes/kernel"
	"github.com/cwbudde/algo-lanes/lane"
)

func alignmentSizes(a int) []uint64 {
	return []uint64{0, 1, uint64(a - 1), uint64(a), uint64(a + 1), 3*uint64(a) + 5, 1 << 20}
}

func requireAligned(t *testing.T, a Allocator, sizes []uint64) {
	t.Helper()
	for _, size := range sizes {
		b := a.Alloc(size)
		require.NotNil(t, b, "Alloc(%d) failed", size)
		assert.Len(t, b, int(size))
		assert.Zero(t, AddressOf(b)%uintptr(a.Alignment()),
			"address %#x not aligned to %d for size %d", AddressOf(b), a.Alignment(), size)

		// The whole block must be writable.
		for i := range b {
			b[i] = byte(i)
		}
		a.Free(b)
	}
}

func TestGoAllocatorAlignment(t *testing.T) {
	for _, alignment := range []int{1, 8, 16, 32, 64, 4096} {
		t.Run(fmt.Sprintf("align=%d", alignment), func(t *testing.T) {
			a, err := NewGo(alignment)
			require.NoError(t, err)
			assert.Equal(t, alignment, a.Alignment())
			requireAligned(t, a, alignmentSizes(alignment))
		})
	}
}

func TestDefaultUsesLaneAlignment(t *testing.T) {
	a := Default()
	assert.Equal(t, lane.Alignment, a.Alignment())
	requireAligned(t, a, alignmentSizes(lane.Alignment))

	var zero GoAllocator
	assert.Equal(t, lane.Alignment, zero.Alignment())
	requireAligned(t, &zero, alignmentSizes(lane.Alignment))
}

func TestDefaultIsNotShared(t *testing.T) {
	assert.NotSame(t, Default(), Default())
}

func TestInvalidAlignment(t *testing.T) {
	for _, alignment := range []int{0, -8, 3, 12, 48, 2 * os.Getpagesize()} {
		_, err := NewGo(alignment)
		assert.ErrorIs(t, err, ErrAlignment, "alignment %d", alignment)
	}
}

func TestGoAllocatorOversized(t *testing.T) {
	a := Default()
	assert.Nil(t, a.Alloc(math.MaxUint64))
	assert.Nil(t, a.Alloc(1<<62))
}

func TestDefaultAllocUnbackableSize(t *testing.T) {
	// Larger than any user address space; must fail instead of aborting.
	assert.Nil(t, Default().Alloc(1<<47))
	assert.Nil(t, Float32s(Default(), 1<<45))
}

func TestGoAllocatorLargeBlock(t *testing.T) {
	a := Default()
	size := uint64(LargeBlockSize + 1)

	b := a.Alloc(size)
	require.NotNil(t, b)
	assert.Len(t, b, int(size))
	assert.Zero(t, AddressOf(b)%uintptr(a.Alignment()))
	b[0], b[len(b)-1] = 1, 2
	assert.Equal(t, byte(2), b[len(b)-1])
	a.Free(b)

	s := Float32s(a, LargeBlockSize/lane.Float32Size)
	require.NotNil(t, s)
	assert.True(t, IsAligned(unsafe.Pointer(unsafe.SliceData(s)), lane.Alignment))
	s[len(s)-1] = 1
	FreeFloat32s(a, s)
}

func TestFreeNil(t *testing.T) {
	a := Default()
	assert.NotPanics(t, func() {
		a.Free(nil)
		FreeFloat32s(a, nil)
	})
}

func TestFloat32s(t *testing.T) {
	a := Default()
	for _, n := range []int{0, 1, lane.Width - 1, lane.Width, lane.Width + 1, 1000} {
		s := Float32s(a, n)
		require.NotNil(t, s, "Float32s(%d)", n)
		assert.Len(t, s, n)
		assert.True(t, IsAligned(unsafe.Pointer(unsafe.SliceData(s)), lane.Alignment),
			"n=%d: base not aligned", n)
		FreeFloat32s(a, s)
	}

	assert.Nil(t, Float32s(a, -1))
}

func TestFloat32sWithKernel(t *testing.T) {
	a := Default()
	const n = 35

	x := Float32s(a, n)
	y := Float32s(a, n)
	require.NotNil(t, x)
	require.NotNil(t, y)
	defer FreeFloat32s(a, x)
	defer FreeFloat32s(a, y)

	for i := range x {
		x[i] = 1
		y[i] = 2
	}
	assert.Equal(t, float32(70), kernel.DotProduct(n, x, y))
}

func TestIsAligned(t *testing.T) {
	var buf [64]byte
	base := Default().Alloc(64)
	require.NotNil(t, base)

	p := unsafe.Pointer(unsafe.SliceData(base))
	assert.True(t, IsAligned(p, lane.Alignment))
	assert.False(t, IsAligned(unsafe.Add(p, 1), 2))
	assert.True(t, IsAligned(unsafe.Pointer(&buf[0]), 1))
}

func BenchmarkGoAllocator(b *testing.B) {
	a := Default()
	for _, size := range []uint64{64, 4096, 1 << 16} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				a.Free(a.Alloc(size))
			}
		})
	}
}
