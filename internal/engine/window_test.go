package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow_StartsSilent(t *testing.T) {
	var w Window
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, w.Recent(MaxNodes))
}

func TestWindow_PushShifts(t *testing.T) {
	var w Window
	for _, x := range []float64{1, 2, 3, 4, 5, 6} {
		w.Push(x)
	}
	assert.Equal(t, []float64{2, 3, 4, 5, 6}, w.Recent(MaxNodes))
	assert.Equal(t, []float64{5, 6}, w.Recent(2))
	assert.Equal(t, 6.0, w.At(0))
	assert.Equal(t, 2.0, w.At(4))
}

func TestWindow_Reset(t *testing.T) {
	var w Window
	w.Push(3)
	w.Push(-1)
	w.Reset()
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, w.Recent(MaxNodes))
}

func TestWindow_PushDoesNotAllocate(t *testing.T) {
	var w Window
	allocs := testing.AllocsPerRun(100, func() {
		w.Push(0.5)
		_ = w.Recent(3)
	})
	assert.Zero(t, allocs)
}
