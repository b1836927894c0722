package engine

import (
	"math"

	"github.com/tphakala/go-adaa/internal/waveshaper"
)

// ShortCut reports whether every sample of the window lies in one region
// where w0 is a polynomial of degree at most one: the linear region of a
// family that has one, or the saturated region on a single side. In that
// case w0 can be evaluated directly instead of running the engine.
func ShortCut(f *waveshaper.Family, window []float64) bool {
	if f.HasLinearRegion() && allWithin(window, f.LinearLimit) {
		return true
	}
	return allAtLeast(window, f.SaturationLimit) || allAtMost(window, -f.SaturationLimit)
}

func allWithin(z []float64, limit float64) bool {
	for _, v := range z {
		if math.Abs(v) > limit {
			return false
		}
	}
	return true
}

func allAtLeast(z []float64, limit float64) bool {
	for _, v := range z {
		if v < limit {
			return false
		}
	}
	return true
}

func allAtMost(z []float64, limit float64) bool {
	for _, v := range z {
		if v > limit {
			return false
		}
	}
	return true
}
