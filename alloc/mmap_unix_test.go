//go:build unix

package alloc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/cwbudde/algo-lanes/lane"
)

func TestMmapAllocatorAlignment(t *testing.T) {
	for _, alignment := range []int{8, 16, 32, 64, unix.Getpagesize()} {
		t.Run(fmt.Sprintf("align=%d", alignment), func(t *testing.T) {
			a, err := NewMmap(alignment)
			require.NoError(t, err)
			requireAligned(t, a, alignmentSizes(alignment))
		})
	}
}

func TestMmapAllocatorAlignmentTooLarge(t *testing.T) {
	_, err := NewMmap(2 * unix.Getpagesize())
	assert.ErrorIs(t, err, ErrAlignment)

	_, err = NewMmap(24)
	assert.ErrorIs(t, err, ErrAlignment)
}

func TestMmapAllocatorFloat32s(t *testing.T) {
	a, err := NewMmap(lane.Alignment)
	require.NoError(t, err)

	for _, n := range []int{0, 3, 1 << 12} {
		s := Float32s(a, n)
		require.NotNil(t, s)
		assert.Len(t, s, n)
		for i := range s {
			s[i] = float32(i)
		}
		FreeFloat32s(a, s)
	}
}

func TestMmapAllocatorFreeResliced(t *testing.T) {
	var a MmapAllocator
	b := a.Alloc(100)
	require.NotNil(t, b)
	assert.NotPanics(t, func() { a.Free(b[:10]) })
	assert.NotPanics(t, func() { a.Free(nil) })
}

func TestMmapAllocatorOversized(t *testing.T) {
	a, err := NewMmap(lane.Alignment)
	require.NoError(t, err)
	assert.Nil(t, a.Alloc(1<<62))
}
