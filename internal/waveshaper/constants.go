package waveshaper

// Antiderivatives is the number of antiderivatives carried by every family.
const Antiderivatives = 4

// Family names accepted by Lookup.
const (
	NameHardClip  = "hardclip"
	NameSaturator = "saturator"
)

// Hard clip parameters
const (
	hardClipEpsilon = 1e-5
	hardClipKnee    = 1.0
)

// Saturator parameters
const (
	saturatorEpsilon = 1e-4
	saturatorInner   = 0.5 // end of the cubic core x - x³/3
	saturatorOuter   = 3.0 // start of the flat ±1 tails

	// |w0''| is largest at the edge of the core, 2·0.5
	saturatorCurvature = 1.0

	// Overshoot of the transition segment, w0(2.4737) ≈ 1.00369
	saturatorPeak = 1.0037
)
