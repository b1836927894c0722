package adaa

import (
	"github.com/tphakala/go-adaa/internal/simdops"
)

// NewHardClip creates a mono order-4 hard clipper.
func NewHardClip() (Processor, error) {
	return New(&Config{Variant: VariantHardClip, Channels: 1})
}

// NewSaturator creates a mono order-4 soft saturator.
func NewSaturator() (Processor, error) {
	return New(&Config{Variant: VariantSaturator, Channels: 1})
}

// NewStereo creates a stereo processor with the specified waveshaper.
func NewStereo(variant Variant) (Processor, error) {
	return New(&Config{
		Variant:  variant,
		Channels: stereoChannels,
	})
}

// NewMultiChannel creates a multi-channel processor.
func NewMultiChannel(variant Variant, channels int) (Processor, error) {
	return New(&Config{
		Variant:  variant,
		Channels: channels,
	})
}

// ProcessMono is a convenience function for one-shot mono processing at a
// fixed gain. It returns the wet signal and the delay-matched dry signal.
func ProcessMono(input []float64, variant Variant, gain float64) (wet, dry []float64, err error) {
	p, err := New(&Config{Variant: variant, Channels: 1})
	if err != nil {
		return nil, nil, err
	}
	return p.Process(input, ControlRate(gain))
}

// ProcessStereo is a convenience function for one-shot stereo processing
// at a fixed gain. Only the wet signals are returned.
func ProcessStereo(left, right []float64, variant Variant, gain float64) (leftOut, rightOut []float64, err error) {
	p, err := NewStereo(variant)
	if err != nil {
		return nil, nil, err
	}

	wet, _, err := p.ProcessMulti([][]float64{left, right}, ControlRate(gain))
	if err != nil {
		return nil, nil, err
	}
	return wet[0], wet[1], nil
}

// ProcessMonoFloat32 is the float32 equivalent of ProcessMono.
func ProcessMonoFloat32(input []float32, variant Variant, gain float64) (wet, dry []float32, err error) {
	p, err := New(&Config{Variant: variant, Channels: 1})
	if err != nil {
		return nil, nil, err
	}
	return p.ProcessFloat32(input, ControlRate(gain))
}

// InterleaveToStereo converts two mono channels to interleaved stereo.
// Output format: [L0, R0, L1, R1, L2, R2, ...]
func InterleaveToStereo(left, right []float64) []float64 {
	minLen := min(len(left), len(right))
	result := make([]float64, minLen*stereoChannels)
	simdops.Float64Ops().Interleave2(result, left[:minLen], right[:minLen])
	return result
}

// DeinterleaveFromStereo converts interleaved stereo to two mono channels.
// Input format: [L0, R0, L1, R1, L2, R2, ...]
func DeinterleaveFromStereo(interleaved []float64) (left, right []float64) {
	numSamples := len(interleaved) / stereoChannels
	left = make([]float64, numSamples)
	right = make([]float64, numSamples)
	simdops.Deinterleave2(left, right, interleaved)
	return left, right
}

// InterleaveToStereoFloat32 converts two mono float32 channels to interleaved stereo.
//
// This is the float32 equivalent of InterleaveToStereo.
func InterleaveToStereoFloat32(left, right []float32) []float32 {
	minLen := min(len(left), len(right))
	result := make([]float32, minLen*stereoChannels)
	simdops.Float32Ops().Interleave2(result, left[:minLen], right[:minLen])
	return result
}

// DeinterleaveFromStereoFloat32 converts interleaved stereo float32 to two mono channels.
//
// This is the float32 equivalent of DeinterleaveFromStereo.
func DeinterleaveFromStereoFloat32(interleaved []float32) (left, right []float32) {
	numSamples := len(interleaved) / stereoChannels
	left = make([]float32, numSamples)
	right = make([]float32, numSamples)
	simdops.Deinterleave2(left, right, interleaved)
	return left, right
}
