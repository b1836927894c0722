// Command adaa-wav applies anti-aliased waveshaping to WAV audio files.
//
// Usage:
//
//	adaa-wav -gain 4 input.wav output.wav
//	adaa-wav -shaper saturator -gain 2 input.wav output.wav
//	adaa-wav -gain 1 -gain-end 10 input.wav output.wav   # Drive ramp over the file
//	adaa-wav -gain 4 -dry dry.wav input.wav wet.wav      # Also write the dry signal
//	adaa-wav -fast input.wav output.wav                  # float32 sample path
//
// The output is time aligned with the input: the processing latency is
// compensated, so wet and dry files can be mixed or compared sample by
// sample with the original.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/tphakala/go-adaa"
)

const (
	// Buffer size for processing (number of frames per chunk)
	bufferSize = 65536

	// Channel count constants for fast paths
	monoChannels   = 1
	stereoChannels = 2

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16         = 32767.0
	maxInt24         = 8388607.0
	maxInt32         = 2147483647.0
	progressInterval = 10 // Print progress every N%

	// CLI defaults
	defaultGain     = 1.0
	minRequiredArgs = 2
	percentScale    = 100

	// WAV format tag for integer PCM
	wavFormatPCM = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// options holds the parsed command line.
type options struct {
	inputPath  string
	outputPath string
	dryPath    string

	variant    adaa.Variant
	order      int
	gain       float64
	gainEnd    float64
	ramp       bool
	noShortCut bool
	fast       bool
	parallel   bool
	verbose    bool
}

func run() error {
	shaper := flag.String("shaper", "hardclip", "Waveshaper: hardclip, saturator")
	gain := flag.Float64("gain", defaultGain, "Linear pre-gain (drive)")
	gainEnd := flag.Float64("gain-end", defaultGain, "Linear gain at the end of the file; ramps from -gain when set")
	order := flag.Int("order", 0, "ADAA order 1-4 (0 = default 4)")
	noShortCut := flag.Bool("no-shortcut", false, "Run the divided difference engine for every sample")
	dryPath := flag.String("dry", "", "Also write the latency matched dry signal to this file")
	fast := flag.Bool("fast", false, "Use float32 sample buffers")
	parallel := flag.Bool("parallel", true, "Enable parallel channel processing (faster for stereo/multichannel)")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -gain 4 guitar.wav driven.wav                 # Hard clip at 12 dB drive\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -shaper saturator -gain 3 mix.wav warm.wav     # Soft saturation\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -gain 1 -gain-end 20 tone.wav sweep.wav        # Drive sweep\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	variant, err := adaa.ParseVariant(*shaper)
	if err != nil {
		return err
	}

	opts := options{
		inputPath:  args[0],
		outputPath: args[1],
		dryPath:    *dryPath,
		variant:    variant,
		order:      *order,
		gain:       *gain,
		gainEnd:    *gainEnd,
		noShortCut: *noShortCut,
		fast:       *fast,
		parallel:   *parallel,
		verbose:    *verbose,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "gain-end" {
			opts.ramp = true
		}
	})

	// Start CPU profiling if requested (for PGO)
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if opts.verbose {
		log.Printf("Input: %s", opts.inputPath)
		log.Printf("Output: %s", opts.outputPath)
		if opts.dryPath != "" {
			log.Printf("Dry output: %s", opts.dryPath)
		}
		log.Printf("Shaper: %s", opts.variant)
		if opts.ramp {
			log.Printf("Gain: %g -> %g (audio rate)", opts.gain, opts.gainEnd)
		} else {
			log.Printf("Gain: %g", opts.gain)
		}
		if opts.fast {
			log.Printf("Precision: float32 buffers (fast mode)")
		} else {
			log.Printf("Precision: float64 (high precision)")
		}
		if opts.parallel {
			log.Printf("Parallel: enabled (concurrent channel processing)")
		} else {
			log.Printf("Parallel: disabled (sequential processing)")
		}
	}

	start := time.Now()
	var stats *shapeStats
	if opts.fast {
		stats, err = shapeWAV(opts, newFloat32Runner)
	} else {
		stats, err = shapeWAV(opts, newFloat64Runner)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Processed %s -> %s\n", filepath.Base(opts.inputPath), filepath.Base(opts.outputPath))
	fmt.Printf("  %s, order %d, %d Hz (%d channels, %d-bit)\n",
		opts.variant, stats.order, stats.rate, stats.channels, stats.bitDepth)
	fmt.Printf("  %d samples, latency %d compensated\n", stats.samples, stats.latency)
	if elapsed > 0 && stats.rate > 0 {
		fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
			elapsed.Seconds(),
			float64(stats.samples)/float64(stats.rate)/elapsed.Seconds())
	}

	return nil
}
