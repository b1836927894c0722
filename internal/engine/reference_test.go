package engine

import (
	"slices"

	"github.com/tphakala/go-adaa/internal/waveshaper"
	"gonum.org/v1/gonum/integrate/quad"
)

// referencePoints is enough Gauss-Legendre nodes to integrate a cubic
// B-spline piece times a cubic waveshaper piece exactly.
const referencePoints = 16

// bspline evaluates the normalised B-spline with the given sorted knots
// (Curry-Schoenberg normalisation, unit integral) at t.
func bspline(knots []float64, t float64) float64 {
	k := len(knots) - 1
	if k == 1 {
		if knots[1] > knots[0] && t >= knots[0] && t < knots[1] {
			return 1 / (knots[1] - knots[0])
		}
		return 0
	}
	span := knots[k] - knots[0]
	if span == 0 {
		return 0
	}
	return float64(k) * ((t-knots[0])*bspline(knots[:k], t) + (knots[k]-t)*bspline(knots[1:], t)) /
		(float64(k-1) * span)
}

// referenceDivided computes the normalised divided difference of order
// len(nodes)-1 as the B-spline weighted integral of w0, independently of the
// antiderivatives. Nodes must not all coincide.
func referenceDivided(f *waveshaper.Family, nodes []float64) float64 {
	z := slices.Clone(nodes)
	slices.Sort(z)

	cuts := slices.Clone(z)
	for _, bp := range f.Breakpoints {
		if bp > z[0] && bp < z[len(z)-1] {
			cuts = append(cuts, bp)
		}
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	integrand := func(t float64) float64 {
		return bspline(z, t) * f.W[0](t)
	}
	var sum float64
	for k := 1; k < len(cuts); k++ {
		if cuts[k] > cuts[k-1] {
			sum += quad.Fixed(integrand, cuts[k-1], cuts[k], referencePoints, nil, 0)
		}
	}
	return sum
}
