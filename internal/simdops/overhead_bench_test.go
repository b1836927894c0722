package simdops

import (
	"testing"

	"github.com/tphakala/simd/f64"
)

func benchBlock(n int) []float64 {
	a := make([]float64, n)
	for i := range a {
		a[i] = float64(i) * 0.01
	}
	return a
}

// BenchmarkDirectF64Energy measures a direct SIMD call.
func BenchmarkDirectF64Energy(b *testing.B) {
	a := benchBlock(4096)
	b.ReportAllocs()
	for b.Loop() {
		_ = f64.DotProductUnsafe(a, a)
	}
}

// BenchmarkIndirectF64Energy measures the same call through the Ops struct.
func BenchmarkIndirectF64Energy(b *testing.B) {
	ops := For[float64]()
	a := benchBlock(4096)
	b.ReportAllocs()
	for b.Loop() {
		_ = ops.Energy(a)
	}
}

func BenchmarkF64Scale(b *testing.B) {
	ops := For[float64]()
	a := benchBlock(4096)
	dst := make([]float64, len(a))
	b.ReportAllocs()
	for b.Loop() {
		ops.Scale(dst, a, 0.5)
	}
}

func BenchmarkDeinterleave2(b *testing.B) {
	src := benchBlock(8192)
	l := make([]float64, 4096)
	r := make([]float64, 4096)
	b.ReportAllocs()
	for b.Loop() {
		Deinterleave2(l, r, src)
	}
}
