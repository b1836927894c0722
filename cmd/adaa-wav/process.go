package main

import (
	"fmt"
	"sync"

	"github.com/tphakala/go-adaa"
)

// channelRunner processes one block per channel with a shared gain.
type channelRunner[F Float] interface {
	process(in [][]F, gain adaa.Gain) (wet, dry [][]F, err error)
	info() adaa.Info
}

// float64Runner drives a single multi-channel processor.
type float64Runner struct {
	p adaa.Processor
}

func newFloat64Runner(config *adaa.Config) (channelRunner[float64], error) {
	p, err := adaa.New(config)
	if err != nil {
		return nil, err
	}
	return &float64Runner{p: p}, nil
}

func (r *float64Runner) process(in [][]float64, gain adaa.Gain) (wet, dry [][]float64, err error) {
	return r.p.ProcessMulti(in, gain)
}

func (r *float64Runner) info() adaa.Info {
	return adaa.GetInfo(r.p)
}

// float32Runner keeps float32 buffers end to end and uses one mono
// processor per channel.
type float32Runner struct {
	channels []adaa.Processor
	parallel bool
}

func newFloat32Runner(config *adaa.Config) (channelRunner[float32], error) {
	channels := max(config.Channels, 1)
	r := &float32Runner{
		channels: make([]adaa.Processor, channels),
		parallel: config.EnableParallel,
	}
	for ch := range channels {
		p, err := adaa.New(&adaa.Config{
			Variant:         config.Variant,
			Order:           config.Order,
			Channels:        1,
			DisableShortCut: config.DisableShortCut,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create processor for channel %d: %w", ch, err)
		}
		r.channels[ch] = p
	}
	return r, nil
}

func (r *float32Runner) process(in [][]float32, gain adaa.Gain) (wet, dry [][]float32, err error) {
	if len(in) != len(r.channels) {
		return nil, nil, fmt.Errorf("%w: expected %d channels, got %d", adaa.ErrChannelMismatch, len(r.channels), len(in))
	}

	wet = make([][]float32, len(in))
	dry = make([][]float32, len(in))

	if !r.parallel || len(in) <= 1 {
		for ch := range in {
			wet[ch], dry[ch], err = r.channels[ch].ProcessFloat32(in[ch], gain)
			if err != nil {
				return nil, nil, fmt.Errorf("processing failed on channel %d: %w", ch, err)
			}
		}
		return wet, dry, nil
	}

	var wg sync.WaitGroup
	var processErr error
	var errMu sync.Mutex

	for ch := range in {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			w, d, err := r.channels[channel].ProcessFloat32(in[channel], gain)
			if err != nil {
				errMu.Lock()
				if processErr == nil {
					processErr = fmt.Errorf("processing failed on channel %d: %w", channel, err)
				}
				errMu.Unlock()
				return
			}
			wet[channel], dry[channel] = w, d
		}(ch)
	}
	wg.Wait()

	if processErr != nil {
		return nil, nil, processErr
	}
	return wet, dry, nil
}

func (r *float32Runner) info() adaa.Info {
	info := adaa.GetInfo(r.channels[0])
	info.Channels = len(r.channels)
	return info
}

// shapeStats summarises a processed file.
type shapeStats struct {
	rate     int
	channels int
	bitDepth int
	order    int
	latency  int
	samples  int64
}

// shapeSession moves frames from the decoder through the runner to the
// writers, dropping the first latency frames of output and flushing the
// same number at the end so that output lines up with input.
type shapeSession[F Float] struct {
	runner  channelRunner[F]
	wet     *wavOutputWriter
	dry     *wavOutputWriter
	buffers *shapeBuffers[F]
	gain    gainRamp

	channels int
	skip     int   // output frames still to drop
	consumed int64 // frames fed to the runner
	written  int64 // frames written
}

// processFrames runs the first n frames of the channel buffers.
func (s *shapeSession[F]) processFrames(n int) error {
	in := make([][]F, s.channels)
	for ch := range in {
		in[ch] = s.buffers.channelBufs[ch][:n]
	}

	gain := s.gain.block(s.consumed, n, s.buffers.gains)
	wet, dry, err := s.runner.process(in, gain)
	if err != nil {
		return err
	}
	s.consumed += int64(n)

	drop := min(s.skip, n)
	s.skip -= drop
	if drop == n {
		return nil
	}
	for ch := range wet {
		wet[ch] = wet[ch][drop:]
		dry[ch] = dry[ch][drop:]
	}

	outLen := interleaveInto(wet, s.buffers.wetIntBuf, s.buffers.maxVal)
	if err := s.wet.WriteSamples(s.buffers.wetIntBuf[:outLen]); err != nil {
		return err
	}
	if s.dry != nil {
		outLen = interleaveInto(dry, s.buffers.dryIntBuf, s.buffers.maxVal)
		if err := s.dry.WriteSamples(s.buffers.dryIntBuf[:outLen]); err != nil {
			return err
		}
	}
	s.written += int64(n - drop)
	return nil
}

// flush feeds silence to push the last latency frames out.
func (s *shapeSession[F]) flush(latency int) error {
	if latency == 0 {
		return nil
	}
	for ch := range s.channels {
		clear(s.buffers.channelBufs[ch][:latency])
	}
	return s.processFrames(latency)
}

// shapeWAV processes one WAV file using the runner built by newRunner.
func shapeWAV[F Float](opts options, newRunner func(*adaa.Config) (channelRunner[F], error)) (stats *shapeStats, err error) {
	// 1. Open and validate input
	input, err := openWAVInput(opts.inputPath, opts.verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	// 2. Create processors
	runner, err := newRunner(&adaa.Config{
		Variant:         opts.variant,
		Order:           opts.order,
		Channels:        input.channels,
		EnableParallel:  opts.parallel,
		DisableShortCut: opts.noShortCut,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create processor: %w", err)
	}
	info := runner.info()

	// 3. Create output writers, capturing close errors on the success path
	wetOut, err := createWAVOutput(opts.outputPath, input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := wetOut.Close(); err == nil {
			err = closeErr
		}
	}()

	var dryOut *wavOutputWriter
	if opts.dryPath != "" {
		dryOut, err = createWAVOutput(opts.dryPath, input.rate, input.bitDepth, input.channels)
		if err != nil {
			return nil, err
		}
		defer func() {
			if closeErr := dryOut.Close(); err == nil {
				err = closeErr
			}
		}()
	}

	// 4. Initialize session
	session := &shapeSession[F]{
		runner:   runner,
		wet:      wetOut,
		dry:      dryOut,
		buffers:  newShapeBuffers[F](input.channels, input.bitDepth, input.format),
		gain:     newGainRamp(opts, input.totalSamples),
		channels: input.channels,
		skip:     info.Latency,
	}
	progress := newProgressTracker(input.totalSamples, opts.verbose)

	// 5. Main processing loop
	for {
		frames, err := input.readFrames(session.buffers.intBuffer)
		if err != nil {
			return nil, err
		}
		if frames == 0 {
			break
		}

		deinterleaveInto(
			session.buffers.intBuffer.Data,
			session.buffers.channelBufs,
			input.channels, frames,
			session.buffers.invMaxVal,
		)
		if err := session.processFrames(frames); err != nil {
			return nil, err
		}

		progress.reportIfNeeded(session.consumed)
	}

	// 6. Flush the latency tail
	if err := session.flush(info.Latency); err != nil {
		return nil, err
	}

	return &shapeStats{
		rate:     input.rate,
		channels: input.channels,
		bitDepth: input.bitDepth,
		order:    info.Order,
		latency:  info.Latency,
		samples:  session.written,
	}, nil
}
