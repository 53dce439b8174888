//go:build !unix && !windows

package alloc

// maxLargeBlock bounds Go heap blocks on platforms without an OS allocation
// path. These targets (js/wasm, wasip1, plan9) address at most 4 GiB.
const maxLargeBlock = 1 << 32

// allocLarge falls back to the Go heap below maxLargeBlock.
func allocLarge(size uint64, alignment int) []byte {
	if size >= maxLargeBlock {
		return nil
	}
	return heapBlock(int(size), alignment)
}

func freeLarge([]byte) {}
