package adaa

import (
	"fmt"
	"sync"

	"github.com/tphakala/go-adaa/internal/engine"
	"github.com/tphakala/go-adaa/internal/simdops"
	"github.com/tphakala/go-adaa/internal/waveshaper"
)

// multiChannelProcessor runs one independent engine stage per channel.
type multiChannelProcessor struct {
	config Config
	family *waveshaper.Family

	// Per-channel state
	channels []*engine.Stage

	// mu guards the channel histories. Every processing call advances
	// them, so all of them take the exclusive lock.
	mu sync.Mutex
}

// newMultiChannelProcessor creates a processor from a validated, defaulted config.
func newMultiChannelProcessor(config *Config) (*multiChannelProcessor, error) {
	family, err := config.Variant.family()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	p := &multiChannelProcessor{
		config:   *config,
		family:   family,
		channels: make([]*engine.Stage, config.Channels),
	}
	for i := range p.channels {
		p.channels[i] = engine.NewStage(family, config.Order, !config.DisableShortCut)
	}

	return p, nil
}

// ProcessSample processes one sample of channel 0.
func (p *multiChannelProcessor) ProcessSample(x, gain float64) (wet, dry float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channels[0].Tick(x, gain)
}

// Process processes a block of channel 0.
func (p *multiChannelProcessor) Process(input []float64, gain Gain) (wet, dry []float64, err error) {
	wet = make([]float64, len(input))
	dry = make([]float64, len(input))
	if err := p.ProcessInto(input, gain, wet, dry); err != nil {
		return nil, nil, err
	}
	return wet, dry, nil
}

// ProcessInto processes a block of channel 0 into caller supplied buffers.
func (p *multiChannelProcessor) ProcessInto(input []float64, gain Gain, wet, dry []float64) error {
	if err := gain.check(len(input)); err != nil {
		return err
	}
	if len(wet) < len(input) || len(dry) < len(input) {
		return fmt.Errorf("%w: need %d samples, have wet=%d dry=%d",
			ErrBufferTooSmall, len(input), len(wet), len(dry))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	processChannel(p.channels[0], input, gain, wet, dry)
	return nil
}

// ProcessFloat32 processes float32 audio data.
// Internally converts to float64 so the divided differences keep their
// precision near the confluent threshold, then converts back.
func (p *multiChannelProcessor) ProcessFloat32(input []float32, gain Gain) (wet, dry []float32, err error) {
	input64 := make([]float64, len(input))
	simdops.Widen(input64, input)

	wet64, dry64, err := p.Process(input64, gain)
	if err != nil {
		return nil, nil, err
	}

	wet = make([]float32, len(wet64))
	dry = make([]float32, len(dry64))
	simdops.Narrow(wet, wet64)
	simdops.Narrow(dry, dry64)
	return wet, dry, nil
}

// ProcessMulti processes multiple audio channels.
// When EnableParallel is true in config, channels are processed concurrently.
// Otherwise, channels are processed sequentially.
func (p *multiChannelProcessor) ProcessMulti(input [][]float64, gain Gain) (wet, dry [][]float64, err error) {
	if len(input) != len(p.channels) {
		return nil, nil, fmt.Errorf("%w: expected %d channels, got %d",
			ErrChannelMismatch, len(p.channels), len(input))
	}
	for ch := range input {
		if err := gain.check(len(input[ch])); err != nil {
			return nil, nil, fmt.Errorf("channel %d: %w", ch, err)
		}
	}

	wet = make([][]float64, len(input))
	dry = make([][]float64, len(input))
	for ch := range input {
		wet[ch] = make([]float64, len(input[ch]))
		dry[ch] = make([]float64, len(input[ch]))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Sequential processing (default or when parallel disabled)
	if !p.config.EnableParallel || len(input) <= 1 {
		for ch := range input {
			processChannel(p.channels[ch], input[ch], gain, wet[ch], dry[ch])
		}
		return wet, dry, nil
	}

	// Parallel processing: each stage is owned by exactly one goroutine
	var wg sync.WaitGroup
	for ch := range input {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			processChannel(p.channels[channel], input[channel], gain, wet[channel], dry[channel])
		}(ch)
	}
	wg.Wait()

	return wet, dry, nil
}

// processChannel resolves the gain dispatch once for the whole block.
func processChannel(stage *engine.Stage, input []float64, gain Gain, wet, dry []float64) {
	if gain.IsAudioRate() {
		stage.ProcessAudio(input, gain.values, wet, dry)
		return
	}
	stage.ProcessControl(input, gain.value, wet, dry)
}

// GetLatency returns the delay of both outputs in samples.
func (p *multiChannelProcessor) GetLatency() int {
	return p.channels[0].Latency()
}

// Reset zeroes the sample history of every channel.
func (p *multiChannelProcessor) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, stage := range p.channels {
		stage.Reset()
	}
}

// Variant returns the waveshaper in use.
func (p *multiChannelProcessor) Variant() Variant {
	return p.config.Variant
}

// GetInfo returns information about the processor.
func (p *multiChannelProcessor) GetInfo() Info {
	var memUsage int64
	for _, stage := range p.channels {
		memUsage += stage.GetMemoryUsage()
	}

	return Info{
		Variant:     p.config.Variant,
		Order:       p.channels[0].Order(),
		Channels:    len(p.channels),
		Epsilon:     p.family.Epsilon,
		Latency:     p.GetLatency(),
		ShortCut:    p.channels[0].ShortCutEnabled(),
		MemoryUsage: memUsage,
		SIMDType:    simdops.Info(),
	}
}
