// Package simd holds the element-wise addition kernels used by the
// throughput benchmarks. Both kernels are plain scalar loops; Add is the
// entry point selected on hosts that report AVX2.
package simd

import "github.com/cwbudde/algo-vecmath/cpu"

// Supported reports whether the host advertises AVX2 and the generic path
// has not been forced.
func Supported() bool {
	f := cpu.DetectFeatures()
	return f.HasAVX2 && !f.ForceGeneric
}

// Add writes a[i]+b[i] into c[i] for every index of c. Sums wrap on int32
// overflow. It panics if a or b is shorter than c.
func Add(a, b, c []int32) {
	for i := range c {
		c[i] = a[i] + b[i]
	}
}

// AddBasic is the reference kernel. Results are identical to Add.
func AddBasic(a, b, c []int32) {
	for i := range c {
		c[i] = a[i] + b[i]
	}
}
