package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-adaa/internal/simdops"
	"github.com/tphakala/go-adaa/internal/waveshaper"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrSignalTooShort is returned when a signal is too short to analyse.
var ErrSignalTooShort = errors.New("signal too short for spectral analysis")

// AliasReport summarises the spectral content of a waveshaped tone.
type AliasReport struct {
	// Harmonics is the number of harmonics of f0 below Nyquist.
	Harmonics int

	// HarmonicEnergy is the energy near DC and near the harmonics.
	HarmonicEnergy float64

	// AliasEnergy is the energy everywhere else.
	AliasEnergy float64

	// RatioDB is 10·log10(AliasEnergy / HarmonicEnergy).
	RatioDB float64

	// RMS is the root mean square level of the signal.
	RMS float64
}

// Spectrum returns the power spectrum |X[k]|² of the Kaiser-windowed,
// mean-removed signal for bins 0..len/2.
func Spectrum(signal []float64) []float64 {
	n := len(signal)
	if n == 0 {
		return []float64{}
	}

	ops := simdops.Float64Ops()
	window := KaiserWindow(n, SpectrumBeta())
	mean := ops.Sum(signal) / float64(n)

	seq := make([]float64, n)
	for i, v := range signal {
		seq[i] = (v - mean) * window[i]
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, seq)

	power := make([]float64, len(coeffs))
	for k, c := range coeffs {
		power[k] = real(c)*real(c) + imag(c)*imag(c)
	}
	return power
}

// MeasureAliasing splits the spectrum of a tone of fundamental f0 into
// harmonic and non-harmonic energy.
func MeasureAliasing(signal []float64, f0, sampleRate float64) (AliasReport, error) {
	n := len(signal)
	if n < minSignalLength {
		return AliasReport{}, fmt.Errorf("%w: %d samples (minimum %d)", ErrSignalTooShort, n, minSignalLength)
	}
	nyquist := sampleRate / 2
	if f0 <= 0 || f0 >= nyquist {
		return AliasReport{}, fmt.Errorf("fundamental %v Hz outside (0, %v)", f0, nyquist)
	}

	power := Spectrum(signal)
	binWidth := sampleRate / float64(n)

	var harmonicBins []float64
	for k := 1; float64(k)*f0 < nyquist; k++ {
		harmonicBins = append(harmonicBins, float64(k)*f0/binWidth)
	}

	harmonic := make([]float64, 0, len(power))
	alias := make([]float64, 0, len(power))
	for b, p := range power {
		if b < guardBins || nearAny(float64(b), harmonicBins) {
			harmonic = append(harmonic, p)
		} else {
			alias = append(alias, p)
		}
	}

	ops := simdops.Float64Ops()
	report := AliasReport{
		Harmonics:      len(harmonicBins),
		HarmonicEnergy: ops.Sum(harmonic),
		AliasEnergy:    ops.Sum(alias),
		RMS:            math.Sqrt(ops.Energy(signal) / float64(n)),
	}
	report.RatioDB = ToDB(math.Max(report.AliasEnergy, energyFloor) / math.Max(report.HarmonicEnergy, energyFloor))
	return report, nil
}

// nearAny reports whether bin lies within guardBins of any of the centres.
func nearAny(bin float64, centres []float64) bool {
	for _, c := range centres {
		if math.Abs(bin-c) <= guardBins {
			return true
		}
	}
	return false
}

// ToDB converts a power ratio to decibels.
func ToDB(ratio float64) float64 {
	return 10 * math.Log10(ratio)
}

// Sine returns n samples of amp·sin(2π·freq·i/rate).
func Sine(n int, freq, rate, amp float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/rate)
	}
	return s
}

// Naive applies w0 sample by sample after scaling by gain. It is the
// aliasing baseline ADAA is compared against.
func Naive(f *waveshaper.Family, gain float64, x []float64) []float64 {
	out := make([]float64, len(x))
	simdops.Float64Ops().Scale(out, x, gain)
	for i, v := range out {
		out[i] = f.W[0](v)
	}
	return out
}
