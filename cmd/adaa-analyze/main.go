// Command adaa-analyze compares the aliasing of naive waveshaping with
// antiderivative anti-aliasing for a sweep of test tones.
//
// Usage:
//
//	adaa-analyze
//	adaa-analyze -shaper saturator -gain 5
//	adaa-analyze -order 2 -rate 48000 -tones 1000,5000,9000
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/tphakala/go-adaa"
	"github.com/tphakala/go-adaa/internal/analysis"
	"github.com/tphakala/go-adaa/internal/waveshaper"
)

const (
	// Analysis length in samples; a power of two keeps the FFT fast
	defaultLength = 8192

	defaultRate  = 44100.0
	defaultGain  = 3.0
	defaultTones = "1245,2489,4987,9973"

	// Amplitude of the test tone before gain
	toneAmplitude = 1.0
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	shaper := flag.String("shaper", "hardclip", "Waveshaper: hardclip, saturator, all")
	gain := flag.Float64("gain", defaultGain, "Linear pre-gain (drive)")
	order := flag.Int("order", 0, "ADAA order 1-4 (0 = compare all orders)")
	rate := flag.Float64("rate", defaultRate, "Sample rate in Hz")
	length := flag.Int("n", defaultLength, "Analysis length in samples")
	toneList := flag.String("tones", defaultTones, "Comma separated test tone frequencies in Hz")
	flag.Parse()

	tones, err := parseTones(*toneList, *rate)
	if err != nil {
		return err
	}

	variants := []adaa.Variant{adaa.VariantHardClip, adaa.VariantSaturator}
	if *shaper != "all" {
		v, err := adaa.ParseVariant(*shaper)
		if err != nil {
			return err
		}
		variants = []adaa.Variant{v}
	}

	orders := []int{1, 2, 3, 4}
	if *order != 0 {
		orders = []int{*order}
	}

	for _, v := range variants {
		if err := analyzeVariant(v, orders, tones, *gain, *rate, *length); err != nil {
			return err
		}
	}
	return nil
}

// parseTones parses a comma separated list of frequencies below Nyquist.
func parseTones(list string, rate float64) ([]float64, error) {
	var tones []float64
	for field := range strings.SplitSeq(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tone %q: %w", field, err)
		}
		if f <= 0 || f >= rate/2 {
			return nil, fmt.Errorf("tone %.1f Hz outside (0, %.1f)", f, rate/2)
		}
		tones = append(tones, f)
	}
	if len(tones) == 0 {
		return nil, fmt.Errorf("no test tones given")
	}
	return tones, nil
}

func analyzeVariant(v adaa.Variant, orders []int, tones []float64, gain, rate float64, length int) error {
	family, err := waveshaper.Lookup(v.String())
	if err != nil {
		return err
	}

	fmt.Printf("=== %s, gain %.2f, %d samples at %.0f Hz ===\n", v, gain, length, rate)
	fmt.Printf("%10s %10s %10s", "tone (Hz)", "naive rms", "naive dB")
	for _, order := range orders {
		fmt.Printf(" %9s", fmt.Sprintf("ADAA%d dB", order))
	}
	fmt.Println()

	for _, f0 := range tones {
		input := analysis.Sine(length, f0, rate, toneAmplitude)

		naive, err := analysis.MeasureAliasing(analysis.Naive(family, gain, input), f0, rate)
		if err != nil {
			return err
		}
		fmt.Printf("%10.1f %10.4f %10.1f", f0, naive.RMS, naive.RatioDB)

		for _, order := range orders {
			report, err := measureADAA(v, order, input, gain, f0, rate)
			if err != nil {
				return err
			}
			fmt.Printf(" %9.1f", report.RatioDB)
		}
		fmt.Println()
	}
	fmt.Println()
	return nil
}

func measureADAA(v adaa.Variant, order int, input []float64, gain, f0, rate float64) (analysis.AliasReport, error) {
	p, err := adaa.New(&adaa.Config{Variant: v, Order: order})
	if err != nil {
		return analysis.AliasReport{}, err
	}
	wet, _, err := p.Process(input, adaa.ControlRate(gain))
	if err != nil {
		return analysis.AliasReport{}, err
	}
	return analysis.MeasureAliasing(wet, f0, rate)
}
