package adaa

import (
	"math"
	"testing"
)

func TestConvenienceConstructors(t *testing.T) {
	hc, err := NewHardClip()
	if err != nil {
		t.Fatalf("NewHardClip failed: %v", err)
	}
	if hc.Variant() != VariantHardClip {
		t.Errorf("NewHardClip variant = %v", hc.Variant())
	}

	sat, err := NewSaturator()
	if err != nil {
		t.Fatalf("NewSaturator failed: %v", err)
	}
	if sat.Variant() != VariantSaturator {
		t.Errorf("NewSaturator variant = %v", sat.Variant())
	}

	stereo, err := NewStereo(VariantSaturator)
	if err != nil {
		t.Fatalf("NewStereo failed: %v", err)
	}
	if got := GetInfo(stereo).Channels; got != 2 {
		t.Errorf("NewStereo channels = %d, want 2", got)
	}

	multi, err := NewMultiChannel(VariantHardClip, 6)
	if err != nil {
		t.Fatalf("NewMultiChannel failed: %v", err)
	}
	if got := GetInfo(multi).Channels; got != 6 {
		t.Errorf("NewMultiChannel channels = %d, want 6", got)
	}

	if _, err := NewMultiChannel(VariantHardClip, maxChannels+1); err == nil {
		t.Error("NewMultiChannel accepted too many channels")
	}
}

func TestProcessMono(t *testing.T) {
	input := sine(1024, 1000, 44100, 1)
	wet, dry, err := ProcessMono(input, VariantHardClip, 3)
	if err != nil {
		t.Fatalf("ProcessMono failed: %v", err)
	}
	if len(wet) != len(input) || len(dry) != len(input) {
		t.Fatalf("lengths wet=%d dry=%d, want %d", len(wet), len(dry), len(input))
	}
	for i := 2; i < len(dry); i++ {
		if dry[i] != input[i-2] {
			t.Fatalf("dry[%d] = %v, want %v", i, dry[i], input[i-2])
		}
	}
}

func TestProcessStereo(t *testing.T) {
	left := sine(512, 1000, 44100, 2)
	right := sine(512, 1500, 44100, 2)

	leftOut, rightOut, err := ProcessStereo(left, right, VariantSaturator, 2)
	if err != nil {
		t.Fatalf("ProcessStereo failed: %v", err)
	}

	wantLeft, _, err := ProcessMono(left, VariantSaturator, 2)
	if err != nil {
		t.Fatalf("ProcessMono failed: %v", err)
	}
	wantRight, _, err := ProcessMono(right, VariantSaturator, 2)
	if err != nil {
		t.Fatalf("ProcessMono failed: %v", err)
	}

	for i := range left {
		if leftOut[i] != wantLeft[i] || rightOut[i] != wantRight[i] {
			t.Fatalf("sample %d: stereo (%v, %v), mono (%v, %v)",
				i, leftOut[i], rightOut[i], wantLeft[i], wantRight[i])
		}
	}
}

func TestProcessMonoFloat32(t *testing.T) {
	input := make([]float32, 1024)
	for i := range input {
		input[i] = float32(2 * math.Sin(2*math.Pi*1000*float64(i)/44100))
	}

	wet, dry, err := ProcessMonoFloat32(input, VariantSaturator, 1.5)
	if err != nil {
		t.Fatalf("ProcessMonoFloat32 failed: %v", err)
	}
	if len(wet) != len(input) || len(dry) != len(input) {
		t.Fatalf("lengths wet=%d dry=%d, want %d", len(wet), len(dry), len(input))
	}
	for i, v := range wet {
		if math.IsNaN(float64(v)) || math.Abs(float64(v)) > 1.01 {
			t.Fatalf("wet[%d] = %v out of range", i, v)
		}
	}
}

func TestInterleaveRoundTrip(t *testing.T) {
	left := []float64{1, 2, 3, 4, 5}
	right := []float64{-1, -2, -3, -4, -5, -6}

	inter := InterleaveToStereo(left, right)
	if len(inter) != 10 {
		t.Fatalf("interleaved length = %d, want 10", len(inter))
	}
	want := []float64{1, -1, 2, -2, 3, -3, 4, -4, 5, -5}
	for i := range want {
		if inter[i] != want[i] {
			t.Fatalf("inter[%d] = %v, want %v", i, inter[i], want[i])
		}
	}

	l, r := DeinterleaveFromStereo(inter)
	for i := range l {
		if l[i] != left[i] || r[i] != right[i] {
			t.Fatalf("sample %d: got (%v, %v), want (%v, %v)", i, l[i], r[i], left[i], right[i])
		}
	}
}

func TestInterleaveRoundTripFloat32(t *testing.T) {
	left := []float32{0.5, 0.25, 0.125}
	right := []float32{-0.5, -0.25, -0.125}

	inter := InterleaveToStereoFloat32(left, right)
	l, r := DeinterleaveFromStereoFloat32(inter)
	for i := range left {
		if l[i] != left[i] || r[i] != right[i] {
			t.Fatalf("sample %d: got (%v, %v), want (%v, %v)", i, l[i], r[i], left[i], right[i])
		}
	}

	odd := []float32{1, 2, 3}
	l, r = DeinterleaveFromStereoFloat32(odd)
	if len(l) != 1 || len(r) != 1 {
		t.Fatalf("odd input lengths = %d, %d, want 1, 1", len(l), len(r))
	}
}
