package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHorner(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		x      float64
		want   float64
	}{
		{"empty", nil, 3, 0},
		{"constant", []float64{2.5}, 7, 2.5},
		{"linear", []float64{1, 2}, 3, 7},
		{"cubic", []float64{1, -1, 0.5, 2}, 2, 1 - 2 + 2 + 16},
		{"negative x", []float64{0, 0, 0, 1}, -2, -8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Horner(tt.coeffs, tt.x), 1e-15)
		})
	}
}

func TestHorner_NegationParity(t *testing.T) {
	// Odd polynomials evaluated at -x must be exactly the negation.
	odd := []float64{0, 1, 0, -1.0 / 3, 0, 1.0 / 60}
	for _, x := range []float64{0.1, 0.37, 1.9, 12.5} {
		assert.Equal(t, -Horner(odd, x), Horner(odd, -x), "x=%v", x)
	}
}
