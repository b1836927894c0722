package waveshaper

import "math"

// MaxTerms is the number of coefficients of the longest piece polynomial
// (w4 of the saturator is of degree 7).
const MaxTerms = 8

// Expansion is one polynomial piece of w_i rewritten in powers of (t - At):
//
//	w_i(t) = Σ Coeffs[j]·(t - At)^j
//
// It is exact on the piece it was taken from and extends that piece's
// polynomial everywhere else. Mag[j] bounds the magnitude of the terms
// summed into Coeffs[j], for rounding error estimates.
type Expansion struct {
	At     float64
	N      int
	Coeffs [MaxTerms]float64
	Mag    [MaxTerms]float64
}

// Pieces returns the number of polynomial pieces on the real line.
func (f *Family) Pieces() int {
	return len(f.Breakpoints) + 1
}

// Piece returns the index of the piece containing x. Pieces are numbered
// from the left; Breakpoints[k] separates piece k from piece k+1, and a
// breakpoint belongs to the piece on its right.
func (f *Family) Piece(x float64) int {
	k := 0
	for _, b := range f.Breakpoints {
		if x < b {
			break
		}
		k++
	}
	return k
}

// Expand returns the Taylor expansion of w_i about x using the polynomial
// of piece k.
func (f *Family) Expand(i, k int, x float64) Expansion {
	h := f.pieces
	core := len(h) - 1

	// Left of the core the piece mirrors a positive segment: w_i(t) =
	// ±q(-t - start), with the sign given by the parity of w_i.
	mirror := k < core
	var s *segment
	var u float64
	if mirror {
		s = &h[core-k]
		u = -x - s.start
	} else {
		s = &h[k-core]
		u = x - s.start
	}

	q := s.coeffs[i]
	e := Expansion{At: x, N: len(q)}
	copy(e.Coeffs[:], q)
	for j, c := range q {
		e.Mag[j] = math.Abs(c)
	}

	// Repeated synthetic division shifts the origin from the segment start to u.
	au := math.Abs(u)
	for j := 0; j < e.N-1; j++ {
		for l := e.N - 2; l >= j; l-- {
			e.Coeffs[l] += u * e.Coeffs[l+1]
			e.Mag[l] += au * e.Mag[l+1]
		}
	}

	if mirror {
		sign := 1.0
		if i%2 == 0 {
			sign = -1
		}
		for j := range e.N {
			e.Coeffs[j] *= sign
			sign = -sign
		}
	}
	return e
}
