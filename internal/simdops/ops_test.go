package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor_ReturnsSharedInstances(t *testing.T) {
	assert.Same(t, Float64Ops(), For[float64]())
	assert.Same(t, Float32Ops(), For[float32]())
}

func TestOps_Float64(t *testing.T) {
	ops := For[float64]()
	a := []float64{1, 2, 3, 4, 5}

	assert.InDelta(t, 15.0, ops.Sum(a), 1e-12)
	assert.InDelta(t, 55.0, ops.Energy(a), 1e-12)

	dst := make([]float64, len(a))
	ops.Scale(dst, a, 0.5)
	assert.InDeltaSlice(t, []float64{0.5, 1, 1.5, 2, 2.5}, dst, 1e-12)
}

func TestOps_Float32(t *testing.T) {
	ops := For[float32]()
	a := []float32{0.5, -1, 2}

	assert.InDelta(t, 1.5, float64(ops.Sum(a)), 1e-6)
	assert.InDelta(t, 5.25, float64(ops.Energy(a)), 1e-6)
}

func TestInterleaveRoundTrip(t *testing.T) {
	left := []float64{1, 2, 3, 4, 5, 6, 7}
	right := []float64{-1, -2, -3, -4, -5, -6, -7}

	inter := make([]float64, 2*len(left))
	For[float64]().Interleave2(inter, left, right)
	assert.Equal(t, []float64{1, -1, 2, -2, 3, -3}, inter[:6])

	l := make([]float64, len(left))
	r := make([]float64, len(right))
	Deinterleave2(l, r, inter)
	assert.Equal(t, left, l)
	assert.Equal(t, right, r)
}

func TestWidenNarrow(t *testing.T) {
	src := []float32{0.25, -0.5, 1}
	wide := make([]float64, len(src))
	Widen(wide, src)
	assert.Equal(t, []float64{0.25, -0.5, 1}, wide)

	narrow := make([]float32, len(wide))
	Narrow(narrow, wide)
	assert.Equal(t, src, narrow)
}

func TestInfo(t *testing.T) {
	assert.NotEmpty(t, Info())
}
