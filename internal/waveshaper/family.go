// Package waveshaper defines waveshaping nonlinearities together with their
// first four antiderivatives.
//
// A Family is resolved once at construction and then evaluated through plain
// function values, so the per-sample path never performs a lookup. Every
// family here has an odd w0 and is built from its positive half line, which
// makes w_i(-x) = ±w_i(x) hold exactly in floating point.
package waveshaper

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-adaa/internal/mathutil"
)

// ErrUnknownFamily is returned by Lookup for names it does not recognise.
var ErrUnknownFamily = errors.New("unknown waveshaper family")

// Func is a real function of one real variable.
type Func func(x float64) float64

// Family is a waveshaper w0 and its antiderivatives w1..w4, where w_i is the
// antiderivative of w_{i-1} with w_i(0) = 0.
type Family struct {
	// Name identifies the family ("hardclip", "saturator").
	Name string

	// W holds w0..w4.
	W [Antiderivatives + 1]Func

	// Epsilon is the distance below which two abscissas are treated as equal.
	Epsilon float64

	// Slope bounds |w0'| everywhere.
	Slope float64

	// Curvature bounds |w0''| inside every piece.
	Curvature float64

	// Peak bounds |w0| everywhere.
	Peak float64

	// Smooth reports whether w0' is continuous at the breakpoints.
	Smooth bool

	// LinearLimit is the half-width of the region where w0(x) = x.
	// Zero when w0 has no linear region.
	LinearLimit float64

	// SaturationLimit is the magnitude beyond which w0 is constant.
	SaturationLimit float64

	// Breakpoints lists the inputs where the piecewise definition changes,
	// in ascending order.
	Breakpoints []float64

	pieces halfLine
}

// Eval evaluates w_i at x.
func (f *Family) Eval(i int, x float64) float64 {
	return f.W[i](x)
}

// HasLinearRegion reports whether w0 is the identity on [-LinearLimit, LinearLimit].
func (f *Family) HasLinearRegion() bool {
	return f.LinearLimit > 0
}

// Lookup returns a new family by name.
func Lookup(name string) (*Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameHardClip, "hard-clip", "clip":
		return HardClip(), nil
	case NameSaturator, "soft", "tanh":
		return Saturator(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
}

// segment is one polynomial piece of the positive half line. Coefficients
// are ascending powers of the local variable u = |x| - start.
type segment struct {
	start  float64
	coeffs [Antiderivatives + 1][]float64
}

// halfLine is an odd-extended piecewise polynomial family, segments ordered
// by ascending start with the first segment starting at 0.
type halfLine []segment

func (h halfLine) eval(i int, x float64) float64 {
	a := math.Abs(x)
	s := &h[0]
	for k := len(h) - 1; k > 0; k-- {
		if a >= h[k].start {
			s = &h[k]
			break
		}
	}
	v := mathutil.Horner(s.coeffs[i], a-s.start)
	// w0 is odd, so even-indexed members are odd and odd-indexed are even.
	if x < 0 && i%2 == 0 {
		return -v
	}
	return v
}

// breakpoints mirrors the interior segment starts onto the negative axis.
func (h halfLine) breakpoints() []float64 {
	n := len(h) - 1
	bp := make([]float64, 0, 2*n)
	for k := n; k >= 1; k-- {
		bp = append(bp, -h[k].start)
	}
	for k := 1; k <= n; k++ {
		bp = append(bp, h[k].start)
	}
	return bp
}

// shape carries the scalar metadata of a family.
type shape struct {
	eps        float64
	slope      float64
	curvature  float64
	peak       float64
	smooth     bool
	linear     float64
	saturation float64
}

func (h halfLine) family(name string, sh shape) *Family {
	f := &Family{
		Name:            name,
		Epsilon:         sh.eps,
		Slope:           sh.slope,
		Curvature:       sh.curvature,
		Peak:            sh.peak,
		Smooth:          sh.smooth,
		LinearLimit:     sh.linear,
		SaturationLimit: sh.saturation,
		Breakpoints:     h.breakpoints(),
		pieces:          h,
	}
	for i := range f.W {
		f.W[i] = func(x float64) float64 { return h.eval(i, x) }
	}
	return f
}
