package adaa

import "fmt"

// Gain is the pre-gain applied to the input before waveshaping, either one
// value for the whole block (control rate) or one value per sample (audio
// rate). The gain of the current sample scales the whole window, so a gain
// change takes effect immediately rather than being smeared over the window.
type Gain struct {
	value  float64
	values []float64
}

// ControlRate returns a gain that applies g to every sample of a block.
func ControlRate(g float64) Gain {
	return Gain{value: g}
}

// AudioRate returns a per-sample gain. Its length must equal the length of
// each block it is used with.
func AudioRate(gs []float64) Gain {
	if gs == nil {
		gs = []float64{}
	}
	return Gain{values: gs}
}

// Unity is a control rate gain of 1.
var Unity = ControlRate(1)

// IsAudioRate reports whether the gain supplies one value per sample.
func (g Gain) IsAudioRate() bool {
	return g.values != nil
}

// At returns the gain of sample i.
func (g Gain) At(i int) float64 {
	if g.values != nil {
		return g.values[i]
	}
	return g.value
}

// check verifies that the gain can drive a block of n samples.
func (g Gain) check(n int) error {
	if g.values != nil && len(g.values) != n {
		return fmt.Errorf("%w: got %d values for %d samples", ErrGainLength, len(g.values), n)
	}
	return nil
}
