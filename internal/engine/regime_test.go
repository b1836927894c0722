package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-adaa/internal/waveshaper"
)

func TestShortCut(t *testing.T) {
	hc := waveshaper.HardClip()
	sat := waveshaper.Saturator()

	tests := []struct {
		name   string
		family *waveshaper.Family
		window []float64
		want   bool
	}{
		{"hardclip linear", hc, []float64{-0.9, 0, 0.3, 1, -1}, true},
		{"hardclip silence", hc, []float64{0, 0, 0, 0, 0}, true},
		{"hardclip crosses knee", hc, []float64{0.2, 0.5, 1.01, 0.7, 0.1}, false},
		{"hardclip saturated high", hc, []float64{1, 1.5, 7, 2, 1}, true},
		{"hardclip saturated low", hc, []float64{-1, -3, -1.2, -9, -1}, true},
		{"hardclip both rails", hc, []float64{2, 3, -2, 4, 5}, false},
		{"saturator centre", sat, []float64{0, 0.1, 0.2, 0.1, 0}, false},
		{"saturator saturated high", sat, []float64{3, 4, 5, 3.5, 3}, true},
		{"saturator saturated low", sat, []float64{-3, -8, -3.01, -4, -5}, true},
		{"saturator just inside", sat, []float64{3, 4, 2.999, 3.5, 3}, false},
		{"short window", hc, []float64{0.5, 0.25}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortCut(tt.family, tt.window))
		})
	}
}

// In the saturated region w0 is constant, so the short cut and the engine
// agree exactly.
func TestShortCut_SaturatedMatchesEngine(t *testing.T) {
	windows := [][]float64{
		{1, 1.5, 7, 2, 1},
		{-1, -3, -1.2, -9, -1},
		{3, 4, 5, 3.5, 3},
		{-3, -8, -3.01, -4, -5},
	}
	for _, f := range families() {
		e := NewEngine(f)
		for _, z := range windows {
			if !ShortCut(f, z) {
				continue
			}
			assert.InDelta(t, f.W[0](z[2]), e.Divided(z), 1e-9, "%s window %v", f.Name, z)
		}
	}
}

// In the linear region the engine returns the mean of the window, while the
// short cut returns w0 of the centre sample.
func TestShortCut_LinearRegion(t *testing.T) {
	f := waveshaper.HardClip()
	e := NewEngine(f)
	z := []float64{-0.9, 0, 0.3, 1, -1}

	assert.True(t, ShortCut(f, z))
	assert.InDelta(t, (-0.9+0+0.3+1-1)/5, e.Divided(z), 1e-9)
	assert.Equal(t, 0.3, f.W[0](z[2]))
}
