// Package adaa provides antiderivative anti-aliasing (ADAA) for audio
// waveshapers in pure Go.
//
// A waveshaper w0 applied sample by sample creates harmonics above the
// Nyquist frequency that fold back into the audible band as aliasing.
// ADAA replaces w0(x[n]) with the normalised divided difference of the
// waveshaper's 4th antiderivative over the last five samples, which is the
// mean of w0 weighted by a cubic B-spline spanning the window. That mean is
// a band-limited version of the nonlinearity's output.
//
// # Features
//
//   - Order 4 ADAA by default, with orders 1 to 3 available
//   - Hard clipper and smooth saturator waveshapers with exact piecewise
//     polynomial antiderivatives
//   - Robust handling of coincident and nearly coincident samples: output is
//     finite for every finite input, including silence and DC
//   - Control-rate and audio-rate pre-gain
//   - Delay-matched dry output for parallel (wet/dry) mixing
//   - Multi-channel support with optional parallel channel processing
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// For simple one-shot processing:
//
//	wet, dry, err := adaa.ProcessMono(input, adaa.VariantHardClip, 4.0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For streaming processing with a reusable processor:
//
//	p, err := adaa.New(&adaa.Config{
//	    Variant:  adaa.VariantSaturator,
//	    Channels: 2,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for block := range audioBlocks {
//	    wet, dry, err := p.ProcessMulti(block, adaa.ControlRate(drive))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    writeOutput(wet, dry)
//	}
//
// # Gain
//
// The pre-gain is applied inside the processor rather than by the caller
// because the gain of the current sample scales the whole window. A sudden
// drive change therefore acts immediately instead of being averaged over
// the window. Use [ControlRate] for one value per block and [AudioRate] for
// one value per sample.
//
// # Latency
//
// Both outputs are delayed by Order/2 samples (2 samples at the default
// order). [Processor.GetLatency] reports the value.
//
// # Waveshapers
//
//   - [VariantHardClip]: w0(x) = clamp(x, -1, 1).
//   - [VariantSaturator]: w0(x) = x - x³/3 near zero, a polynomial
//     transition to ±1 with zero slope at ±3, constant beyond.
//
// # Thread Safety
//
// A [Processor] keeps one independent sample history per channel. Every
// method is safe to call from several goroutines: processing calls and
// [Processor.Reset] hold an exclusive lock, so concurrent calls on one
// instance are serialized and each sees a consistent history.
// [Processor.ProcessMulti] with EnableParallel still runs its channels
// concurrently inside that lock.
package adaa
