// Package analysis measures how much aliasing a waveshaped signal contains.
//
// A periodic tone pushed through a nonlinearity only produces energy at
// multiples of its frequency. Anything the discrete-time implementation
// folds back from above Nyquist lands between those harmonics, so the ratio
// of in-between energy to harmonic energy measures aliasing directly.
package analysis

import (
	"math"

	"github.com/tphakala/go-adaa/internal/mathutil"
)

// KaiserWindow generates a Kaiser window of the specified length and β parameter.
//
// Unlike a filter design window it is not normalised: w[centre] = 1.
// The window is symmetric: w[i] = w[length-1-i]
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)
	if length == 1 {
		window[0] = 1
		return window
	}

	// w[n] = I₀(β * sqrt(1 - ((n - α)/α)²)) / I₀(β), α = (N-1)/2
	alpha := float64(length-1) / windowNormalizationFactor
	i0Beta := mathutil.BesselI0(beta)

	for n := range length {
		x := (float64(n) - alpha) / alpha
		arg := beta * math.Sqrt(math.Max(0, 1.0-x*x))
		window[n] = mathutil.BesselI0(arg) / i0Beta
	}

	return window
}

// SpectrumBeta returns the β used by Spectrum.
func SpectrumBeta() float64 {
	return mathutil.KaiserBeta(windowAttenuation)
}
