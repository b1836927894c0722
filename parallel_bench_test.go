package adaa

import (
	"math"
	"testing"
)

// BenchmarkProcessMultiSequential benchmarks sequential multi-channel processing.
func BenchmarkProcessMultiSequential(b *testing.B) {
	benchmarkProcessMulti(b, false)
}

// BenchmarkProcessMultiParallel benchmarks parallel multi-channel processing.
func BenchmarkProcessMultiParallel(b *testing.B) {
	benchmarkProcessMulti(b, true)
}

func benchmarkProcessMulti(b *testing.B, parallel bool) {
	b.Helper()

	const (
		sampleRate = 44100.0
		channels   = 2     // Stereo
		numSamples = 44100 // 1 second of audio
	)

	p, err := New(&Config{
		Variant:        VariantSaturator,
		Channels:       channels,
		EnableParallel: parallel,
	})
	if err != nil {
		b.Fatalf("Failed to create processor: %v", err)
	}

	input := make([][]float64, channels)
	for ch := range channels {
		input[ch] = make([]float64, numSamples)
		for i := range numSamples {
			input[ch][i] = math.Sin(2 * math.Pi * 440 * float64(i) / sampleRate)
		}
	}

	b.SetBytes(int64(channels * numSamples * 8))
	b.ResetTimer()
	for b.Loop() {
		if _, _, err := p.ProcessMulti(input, ControlRate(3)); err != nil {
			b.Fatal(err)
		}
	}
}
