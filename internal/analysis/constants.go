package analysis

// Spectral window design
const (
	// windowAttenuation is the sidelobe level of the Kaiser window in dB.
	// It gives β ≈ 20, whose main lobe spans about ±6.4 bins.
	windowAttenuation = 190.0

	// guardBins is the half-width around each harmonic (and DC) that is
	// attributed to the harmonic rather than to aliasing.
	guardBins = 10

	// windowNormalizationFactor maps the window length to its centre.
	windowNormalizationFactor = 2.0
)

// Measurement limits
const (
	minSignalLength = 64

	// energyFloor keeps ratios finite for perfectly clean signals.
	energyFloor = 1e-300
)
