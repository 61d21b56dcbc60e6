// Package simdops exposes the SIMD-accelerated float64 kernels used by the
// trajectory packages.
//
// The function pointers are resolved once at package init so hot loops pay a
// single indirect call and never re-detect CPU features.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated float64 operations.
type Ops struct {
	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)
}

var ops64 = Ops{
	Sum:   f64.Sum,
	Scale: f64.Scale,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}

// Info describes the instruction set the kernels dispatch to.
func Info() string {
	return cpu.Info()
}
