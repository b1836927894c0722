// Package engine implements the antiderivative anti-aliasing core: divided
// differences of a waveshaper's antiderivatives over a short sample window.
package engine

import (
	"fmt"
	"math"

	"github.com/tphakala/go-adaa/internal/waveshaper"
)

// Engine computes normalised divided differences
//
//	D^k(x_0..x_k) = k! · w_k[x_0, ..., x_k]
//
// which equal the B-spline weighted mean of w0 over [min x, max x]. D^1 is
// the familiar first order ADAA quotient (w1(b) - w1(a)) / (b - a).
//
// Divided differences are symmetric in their arguments, so the nodes are
// sorted first. On sorted nodes each level takes the first branch that
// applies:
//
//  1. confluent: the outer span is at most epsilon, so the level collapses
//     to its analytic limit w_{k-m}(c) at the node centroid c;
//  2. local: at most one breakpoint lies inside the span. The divided
//     difference of the piece polynomial is taken in powers of (t - c),
//     plus truncated power terms for the jump at the breakpoint. Nothing
//     is divided by the span;
//  3. divided: m·(D^{m-1}(upper) - D^{m-1}(lower)) / span at level m.
//     Only windows crossing several breakpoints get here.
//
// The divided branch carries a running rounding error bound and yields to
// the confluent value when that bound is worse.
//
// Every family has an odd w0, so D(-x) = -D(x). The engine evaluates one
// canonical orientation of each window and mirrors the result.
//
// An Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	family *waveshaper.Family
	eps    float64
}

// NewEngine creates an engine for the given family.
func NewEngine(f *waveshaper.Family) *Engine {
	return &Engine{family: f, eps: f.Epsilon}
}

// Family returns the waveshaper family the engine evaluates.
func (e *Engine) Family() *waveshaper.Family {
	return e.family
}

// D1 returns the first order divided difference of w1 over two nodes.
func (e *Engine) D1(a, b float64) float64 {
	z := [2]float64{a, b}
	return e.divided(z[:])
}

// D2 returns the second order divided difference of w2 over three nodes.
func (e *Engine) D2(a, b, c float64) float64 {
	z := [3]float64{a, b, c}
	return e.divided(z[:])
}

// D3 returns the third order divided difference of w3 over four nodes.
func (e *Engine) D3(a, b, c, d float64) float64 {
	z := [4]float64{a, b, c, d}
	return e.divided(z[:])
}

// D4 returns the fourth order divided difference of w4 over five nodes.
func (e *Engine) D4(a, b, c, d, f float64) float64 {
	z := [5]float64{a, b, c, d, f}
	return e.divided(z[:])
}

// Divided returns the divided difference of order len(nodes)-1. A single
// node yields w0 at that node. The argument is not modified.
// It panics when nodes is empty or longer than MaxNodes.
func (e *Engine) Divided(nodes []float64) float64 {
	if len(nodes) == 0 || len(nodes) > MaxNodes {
		panic(fmt.Sprintf("engine: Divided needs 1 to %d nodes, got %d", MaxNodes, len(nodes)))
	}
	var z [MaxNodes]float64
	n := copy(z[:], nodes)
	return e.divided(z[:n])
}


// divided sorts z in place and evaluates it.
func (e *Engine) divided(z []float64) float64 {
	sortNodes(z)
	m := len(z) - 1
	for j := 0; j <= m/2; j++ {
		lo, hi := z[j], -z[m-j]
		if lo == hi {
			continue
		}
		if lo > hi {
			v, _ := e.level(m, z)
			return v
		}
		mirrorNodes(z)
		v, _ := e.level(m, z)
		return -v
	}
	// Symmetric about zero: the mean of an odd w0 vanishes.
	return 0
}

// level returns the normalised divided difference of w_top over the sorted
// nodes z, together with a bound on its accumulated error. The level
// m = len(z)-1 averages w_{top-m}.
func (e *Engine) level(top int, z []float64) (value, bound float64) {
	m := len(z) - 1
	if m == 0 {
		v := e.family.W[top](z[0])
		return v, evalRoundoff * math.Abs(v)
	}

	span := z[m] - z[0]
	if span <= e.eps {
		return e.confluent(top, z)
	}

	piece := e.family.Piece(z[0])
	if crossed := e.crossings(piece, z[m]); crossed <= 1 {
		return e.local(top, z, piece, crossed == 1)
	}

	upper, upperErr := e.level(top, z[1:])
	lower, lowerErr := e.level(top, z[:m])
	k := float64(m)
	v := k * (upper - lower) / span
	vErr := k*(upperErr+lowerErr)/span + evalRoundoff*math.Abs(v)
	if vErr <= acceptTolerance*math.Abs(v) {
		return v, vErr
	}

	c, cErr := e.confluent(top, z)
	if cErr < vErr {
		return c, cErr
	}
	return v, vErr
}

// crossings counts the breakpoints after the given piece that lie below hi.
func (e *Engine) crossings(piece int, hi float64) int {
	n := 0
	for _, b := range e.family.Breakpoints[piece:] {
		if b >= hi {
			break
		}
		n++
	}
	return n
}

// local evaluates a level whose nodes lie in one piece, or in two pieces
// when cross is set. The piece polynomial p of w_top contributes
//
//	[z] p = Σ_j a_j · h_{j-m}(z - c)
//
// where a_j are its Taylor coefficients about the centroid c and h_r is the
// complete homogeneous symmetric polynomial of degree r. Across a
// breakpoint b the right piece differs from the left by Σ r_j (t - b)^j.
// w_top is C^top there, so only j > top contribute, each through the
// divided difference of the truncated power (t - b)_+^j.
func (e *Engine) local(top int, z []float64, piece int, cross bool) (value, bound float64) {
	m := len(z) - 1
	p := e.family.Expand(top, piece, centroid(z))
	sum, mag := polynomialDivided(&p, z)

	if cross {
		b := e.family.Breakpoints[piece]
		left := e.family.Expand(top, piece, b)
		right := e.family.Expand(top, piece+1, b)
		for j := top + 1; j < waveshaper.MaxTerms; j++ {
			r := right.Coeffs[j] - left.Coeffs[j]
			if r == 0 {
				continue
			}
			t := truncatedPower(z, b, j)
			sum += r * t
			mag += (right.Mag[j] + left.Mag[j]) * math.Abs(t)
		}
	}

	scale := factorial[m]
	return scale * sum, evalRoundoff * scale * mag
}

// polynomialDivided returns the divided difference of the expansion over z
// and a bound on the magnitude of the terms it summed.
func polynomialDivided(p *waveshaper.Expansion, z []float64) (sum, mag float64) {
	m := len(z) - 1
	r := p.N - 1 - m
	if r < 0 {
		return 0, 0
	}

	var h, habs [waveshaper.MaxTerms]float64
	h[0], habs[0] = 1, 1
	for _, x := range z {
		d := x - p.At
		ad := math.Abs(d)
		for k := 1; k <= r; k++ {
			h[k] += d * h[k-1]
			habs[k] += ad * habs[k-1]
		}
	}

	for j := r; j >= 0; j-- {
		sum += p.Coeffs[m+j] * h[j]
		mag += p.Mag[m+j] * habs[j]
	}
	return sum, mag
}

// truncatedPower returns the divided difference of (t - b)_+^j over the
// sorted nodes z, for j >= len(z)-2. It peels one factor (t - b) at a time
// with the Leibniz rule and ends in a B-spline value, so no node difference
// is ever divided out.
func truncatedPower(z []float64, b float64, j int) float64 {
	n := len(z)
	if n == 1 {
		d := z[0] - b
		if d <= 0 {
			return 0
		}
		v := 1.0
		for range j {
			v *= d
		}
		return v
	}
	if j == n-2 {
		return splineAt(z, b) / float64(n-1)
	}
	return (z[0]-b)*truncatedPower(z, b, j-1) + truncatedPower(z[1:], b, j-1)
}

// splineAt evaluates the unit-integral B-spline with knots z at t by the
// Cox-de Boor recursion. Order one is the indicator of (z0, z1], matching
// (t - b)_+^0 = 1 for t >= b.
func splineAt(z []float64, t float64) float64 {
	k := len(z) - 1
	span := z[k] - z[0]
	if span == 0 {
		return 0
	}
	if k == 1 {
		if t > z[0] && t <= z[1] {
			return 1 / span
		}
		return 0
	}
	return float64(k) * ((t-z[0])*splineAt(z[:k], t) + (z[k]-t)*splineAt(z[1:], t)) /
		(float64(k-1) * span)
}

// confluent evaluates the analytic limit of a level whose nodes are treated
// as one point. The level is the mean of w_i(T) for T distributed as the
// B-spline of the nodes, whose mean is the centroid c. Where w_i'' is
// bounded by L the error is at most L·Var(T)/2; across a kink of w0 it is
// at most Slope·sqrt(Var(T)).
func (e *Engine) confluent(top int, z []float64) (value, bound float64) {
	f := e.family
	m := len(z) - 1
	i := top - m
	c := centroid(z)
	v := f.W[i](c)
	variance := splineVariance(z, c)
	roundoff := evalRoundoff * math.Abs(v)

	var curvature float64
	switch {
	case i >= 3:
		// w_i'' = w_{i-2}, and |w_j| for j >= 1 grows with |x|.
		below := f.W[i-2]
		curvature = math.Max(math.Abs(below(z[0])), math.Abs(below(z[m])))
	case i == 2:
		curvature = f.Peak
	case i == 1:
		curvature = f.Slope
	case f.Smooth || e.crossings(f.Piece(z[0]), z[m]) == 0:
		curvature = f.Curvature
	default:
		return v, f.Slope*math.Sqrt(variance) + roundoff
	}
	return v, 0.5*curvature*variance + roundoff
}

// splineVariance returns the variance of the B-spline with knots z about
// its mean c, Σ (z_j - c)² / ((m+1)(m+2)).
func splineVariance(z []float64, c float64) float64 {
	var ss float64
	for _, x := range z {
		d := x - c
		ss += d * d
	}
	n := float64(len(z))
	return ss / (n * (n + 1))
}

// centroid returns the mean of the sorted nodes. Terms are paired from both
// ends around the midpoint so that a constant window returns its value
// exactly.
func centroid(z []float64) float64 {
	n := len(z)
	mid := 0.5 * (z[0] + z[n-1])
	var sum float64
	for j := 0; j < n/2; j++ {
		sum += (z[j] - mid) + (z[n-1-j] - mid)
	}
	if n%2 == 1 {
		sum += z[n/2] - mid
	}
	return mid + sum/float64(n)
}

// mirrorNodes replaces sorted z by its negation, kept sorted.
func mirrorNodes(z []float64) {
	for i, j := 0, len(z)-1; i <= j; i, j = i+1, j-1 {
		z[i], z[j] = -z[j], -z[i]
	}
}

// sortNodes is an insertion sort; windows hold at most MaxNodes values.
func sortNodes(z []float64) {
	for i := 1; i < len(z); i++ {
		v := z[i]
		j := i - 1
		for j >= 0 && z[j] > v {
			z[j+1] = z[j]
			j--
		}
		z[j+1] = v
	}
}
