package kernel_test

import (
	"fmt"

	"github.com/cwbudde/algo-lanes/kernel"
	"github.com/cwbudde/algo-lanes/lane"
)

func ExampleDotProduct() {
	a := []float32{1, 2, 3, 4, 5}
	b := []float32{5, 4, 3, 2, 1}

	fmt.Println(kernel.DotProduct(len(a), a, b))
	// Output: 35
}

func ExampleScaledAccumulate() {
	out := []float32{0, 0, 0, 0}
	vec := []float32{1, 1, 1, 1}

	kernel.ScaledAccumulate(len(out), out, vec, 3)
	fmt.Println(out)

	kernel.ScaledSubtract(len(out), out, vec, 3)
	fmt.Println(out)
	// Output:
	// [3 3 3 3]
	// [0 0 0 0]
}

func ExampleDotProductFor() {
	a := []float32{1, 1, 1, 1, 1, 1}
	b := []float32{2, 2, 2, 2, 2, 2}

	fused := kernel.DotProductFor[lane.Wide4FMA](len(a), a, b)
	plain := kernel.DotProductFor[lane.Scalar](len(a), a, b)
	fmt.Println(fused, plain)
	// Output: 12 12
}
