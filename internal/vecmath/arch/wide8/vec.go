package wide8

import "github.com/cwbudde/algo-lanes/internal/vecmath/arch/scalar"

// Lanes is the number of float32 elements per lane group.
const Lanes = 8

// vec is one lane group.
type vec [Lanes]float32

// ops implements group.Ops for vec.
type ops struct{}

func (ops) Lanes() int               { return Lanes }
func (ops) Load(s []float32) vec     { return vec(s[:Lanes]) }
func (ops) Store(s []float32, v vec) { *(*vec)(s[:Lanes]) = v }
func (ops) Broadcast(c float32) vec  { return vec{c, c, c, c, c, c, c, c} }
func (ops) MulAdd(a, b, acc vec) vec { return mulAdd(a, b, acc) }
func (ops) MulSub(a, b, acc vec) vec { return mulSub(a, b, acc) }
func (ops) FMAdd(a, b, acc vec) vec  { return fmAdd(a, b, acc) }
func (ops) FMSub(a, b, acc vec) vec  { return fmSub(a, b, acc) }
func (ops) Sum(v vec) float32        { return v.sum() }

// mulAdd returns acc + a*b with the product rounded first.
func mulAdd(a, b, acc vec) vec {
	for i := range acc {
		acc[i] += float32(a[i] * b[i])
	}
	return acc
}

// mulSub returns acc - a*b with the product rounded first.
func mulSub(a, b, acc vec) vec {
	for i := range acc {
		acc[i] -= float32(a[i] * b[i])
	}
	return acc
}

// fmAdd returns acc + a*b with a single rounding per lane.
func fmAdd(a, b, acc vec) vec {
	for i := range acc {
		acc[i] = scalar.FusedMulAdd(a[i], b[i], acc[i])
	}
	return acc
}

// fmSub returns acc - a*b with a single rounding per lane.
func fmSub(a, b, acc vec) vec {
	for i := range acc {
		acc[i] = scalar.FusedMulAdd(-a[i], b[i], acc[i])
	}
	return acc
}

// sum reduces the lanes left to right.
func (v *vec) sum() float32 {
	return v[0] + v[1] + v[2] + v[3] + v[4] + v[5] + v[6] + v[7]
}
