package waveshaper

// HardClip returns the family of w0(x) = clamp(x, -1, 1).
//
// Inside the knee w_i(x) = x^(i+1)/(i+1)!. Outside it the pieces are
// continued so that every w_i with i >= 1 is C1 at ±1.
func HardClip() *Family {
	h := halfLine{
		{
			start: 0,
			coeffs: [Antiderivatives + 1][]float64{
				{0, 1},
				{0, 0, 1.0 / 2},
				{0, 0, 0, 1.0 / 6},
				{0, 0, 0, 0, 1.0 / 24},
				{0, 0, 0, 0, 0, 1.0 / 120},
			},
		},
		{
			start: hardClipKnee,
			coeffs: [Antiderivatives + 1][]float64{
				{1},
				{1.0 / 2, 1},
				{1.0 / 6, 1.0 / 2, 1.0 / 2},
				{1.0 / 24, 1.0 / 6, 1.0 / 4, 1.0 / 6},
				{1.0 / 120, 1.0 / 24, 1.0 / 12, 1.0 / 12, 1.0 / 24},
			},
		},
	}
	return h.family(NameHardClip, shape{
		eps:        hardClipEpsilon,
		slope:      1,
		peak:       1,
		linear:     hardClipKnee,
		saturation: hardClipKnee,
	})
}
