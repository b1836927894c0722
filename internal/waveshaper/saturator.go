package waveshaper

// Saturator returns a tanh-like soft clipper.
//
// The core |x| < 0.5 is x - x³/3. A cubic segment on [0.5, 3] matches the
// core's value and slope at 0.5 and reaches 1 with zero slope at 3; beyond 3
// the output is flat. The segment overshoots slightly (w0 peaks near 1.0037
// around x = 2.47). Antiderivative coefficients are exact rationals obtained
// by integrating piece by piece from w_i(0) = 0.
func Saturator() *Family {
	h := halfLine{
		{
			start: 0,
			coeffs: [Antiderivatives + 1][]float64{
				{0, 1, 0, -1.0 / 3},
				{0, 0, 1.0 / 2, 0, -1.0 / 12},
				{0, 0, 0, 1.0 / 6, 0, -1.0 / 60},
				{0, 0, 0, 0, 1.0 / 24, 0, -1.0 / 360},
				{0, 0, 0, 0, 0, 1.0 / 120, 0, -1.0 / 2520},
			},
		},
		{
			start: saturatorInner,
			coeffs: [Antiderivatives + 1][]float64{
				{11.0 / 24, 3.0 / 4, -17.0 / 50, 19.0 / 375},
				{23.0 / 192, 11.0 / 24, 3.0 / 8, -17.0 / 150, 19.0 / 1500},
				{13.0 / 640, 23.0 / 192, 11.0 / 48, 1.0 / 8, -17.0 / 600, 19.0 / 7500},
				{59.0 / 23040, 13.0 / 640, 23.0 / 384, 11.0 / 144, 1.0 / 32, -17.0 / 3000, 19.0 / 45000},
				{83.0 / 322560, 59.0 / 23040, 13.0 / 1280, 23.0 / 1152, 11.0 / 576, 1.0 / 160, -17.0 / 18000, 19.0 / 315000},
			},
		},
		{
			start: saturatorOuter,
			coeffs: [Antiderivatives + 1][]float64{
				{1},
				{7.0 / 3, 1},
				{683.0 / 240, 7.0 / 3, 1.0 / 2},
				{287.0 / 120, 683.0 / 240, 7.0 / 6, 1.0 / 6},
				{62281.0 / 40320, 287.0 / 120, 683.0 / 480, 7.0 / 18, 1.0 / 24},
			},
		},
	}
	return h.family(NameSaturator, shape{
		eps:        saturatorEpsilon,
		slope:      1,
		curvature:  saturatorCurvature,
		peak:       saturatorPeak,
		smooth:     true,
		saturation: saturatorOuter,
	})
}
