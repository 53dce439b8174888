//go:build windows

package alloc

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// allocLarge serves a GoAllocator block from VirtualAlloc. Regions start on
// the allocation granularity, which covers every GoAllocator alignment.
func allocLarge(size uint64, _ int) []byte {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil || addr == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(size)) //nolint:govet,gosec // memory owned by VirtualAlloc, not the Go heap
}

// freeLarge releases a region from allocLarge. A failure means the block did
// not come from allocLarge, which the Free contract leaves undefined.
func freeLarge(b []byte) {
	_ = windows.VirtualFree(uintptr(unsafe.Pointer(unsafe.SliceData(b))), 0, windows.MEM_RELEASE)
}
