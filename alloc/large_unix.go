//go:build unix

package alloc

// allocLarge serves a GoAllocator block from its own anonymous mapping.
// Mappings are page aligned, which covers every GoAllocator alignment.
func allocLarge(size uint64, _ int) []byte {
	return mapAnon(size)
}

func freeLarge(b []byte) {
	unmap(b)
}
