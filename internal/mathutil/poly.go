package mathutil

// Horner evaluates the polynomial with ascending coefficients c at x.
//
//	c[0] + c[1]*x + c[2]*x² + ...
//
// An empty coefficient slice is the zero polynomial.
func Horner(c []float64, x float64) float64 {
	if len(c) == 0 {
		return 0
	}
	r := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}
