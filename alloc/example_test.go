package alloc_test

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-lanes/alloc"
	"github.com/cwbudde/algo-lanes/kernel"
	"github.com/cwbudde/algo-lanes/lane"
)

func ExampleFloat32s() {
	a := alloc.Default()

	vec := alloc.Float32s(a, 10)
	out := alloc.Float32s(a, 10)
	if vec == nil || out == nil {
		fmt.Println("out of memory")
		return
	}
	defer alloc.FreeFloat32s(a, vec)
	defer alloc.FreeFloat32s(a, out)

	for i := range vec {
		vec[i] = float32(i)
		out[i] = 0
	}
	kernel.ScaledAccumulate(len(out), out, vec, 0.5)

	fmt.Println(alloc.IsAligned(unsafe.Pointer(&out[0]), lane.Alignment))
	fmt.Println(out)
	// Output:
	// true
	// [0 0.5 1 1.5 2 2.5 3 3.5 4 4.5]
}
