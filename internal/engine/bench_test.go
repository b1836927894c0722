package engine

import (
	"math"
	"testing"

	"github.com/tphakala/go-adaa/internal/waveshaper"
)

func benchmarkStage(b *testing.B, f *waveshaper.Family, shortCut bool, gain float64) {
	const blockSize = 4096
	in := make([]float64, blockSize)
	for i := range in {
		in[i] = math.Sin(2 * math.Pi * 997 * float64(i) / 48000)
	}
	wet := make([]float64, blockSize)
	dry := make([]float64, blockSize)
	s := NewStage(f, DefaultOrder, shortCut)

	b.SetBytes(blockSize * 8)
	b.ResetTimer()
	for b.Loop() {
		s.ProcessControl(in, gain, wet, dry)
	}
}

func BenchmarkStage_HardClip(b *testing.B) {
	benchmarkStage(b, waveshaper.HardClip(), true, 4)
}

func BenchmarkStage_HardClipNoShortCut(b *testing.B) {
	benchmarkStage(b, waveshaper.HardClip(), false, 4)
}

func BenchmarkStage_Saturator(b *testing.B) {
	benchmarkStage(b, waveshaper.Saturator(), true, 4)
}

func BenchmarkStage_Clean(b *testing.B) {
	benchmarkStage(b, waveshaper.HardClip(), true, 0.5)
}
