package adaa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tphakala/go-adaa/internal/waveshaper"
)

// Processor is the main interface for anti-aliased waveshaping.
//
// Every call produces two outputs per input sample: the wet (waveshaped)
// signal and the dry signal, which is the input delayed by the same latency
// as the wet path so the two can be mixed without comb filtering.
type Processor interface {
	// ProcessSample processes one sample of channel 0.
	ProcessSample(x, gain float64) (wet, dry float64)

	// Process processes a block of channel 0.
	Process(input []float64, gain Gain) (wet, dry []float64, err error)

	// ProcessInto is like Process but writes into caller supplied buffers,
	// which must be at least as long as input. It does not allocate.
	ProcessInto(input []float64, gain Gain, wet, dry []float64) error

	// ProcessFloat32 is like Process but for float32 samples.
	ProcessFloat32(input []float32, gain Gain) (wet, dry []float32, err error)

	// ProcessMulti processes one block per channel. The gain is shared by
	// all channels.
	ProcessMulti(input [][]float64, gain Gain) (wet, dry [][]float64, err error)

	// GetLatency returns the delay of both outputs in samples.
	GetLatency() int

	// Reset zeroes the sample history of every channel.
	Reset()

	// Variant returns the waveshaper in use.
	Variant() Variant
}

// Config holds processor configuration.
type Config struct {
	// Variant selects the waveshaper.
	Variant Variant

	// Order is the ADAA order (1 to 4). Zero selects the default of 4.
	// Higher orders suppress more aliasing at the cost of a gentle
	// high-frequency roll-off and order/2 samples of latency.
	Order int

	// Channels is the number of independent audio channels.
	// Zero selects mono.
	Channels int

	// EnableParallel processes channels concurrently in ProcessMulti.
	// Has no effect on mono audio.
	EnableParallel bool

	// DisableShortCut forces the divided difference engine for every
	// sample, even where the whole window lies in a linear or saturated
	// region of the waveshaper.
	DisableShortCut bool
}

// Variant enumerates the available waveshapers.
type Variant int

const (
	// VariantHardClip clamps the signal to [-1, 1].
	VariantHardClip Variant = iota

	// VariantSaturator is a smooth tanh-like soft clipper that reaches
	// ±1 with zero slope at ±3.
	VariantSaturator
)

// String returns the waveshaper name as accepted by ParseVariant.
func (v Variant) String() string {
	switch v {
	case VariantHardClip:
		return waveshaper.NameHardClip
	case VariantSaturator:
		return waveshaper.NameSaturator
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant resolves a waveshaper by name. It accepts the names
// returned by Variant.String and a few common aliases.
func ParseVariant(name string) (Variant, error) {
	f, err := waveshaper.Lookup(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, strings.TrimSpace(name))
	}
	switch f.Name {
	case waveshaper.NameSaturator:
		return VariantSaturator, nil
	default:
		return VariantHardClip, nil
	}
}

// family returns the waveshaper family for v.
func (v Variant) family() (*waveshaper.Family, error) {
	switch v {
	case VariantHardClip:
		return waveshaper.HardClip(), nil
	case VariantSaturator:
		return waveshaper.Saturator(), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, v)
	}
}

// Common errors returned by processors.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid ADAA configuration")

	// ErrUnknownVariant indicates an unsupported waveshaper.
	ErrUnknownVariant = errors.New("unknown waveshaper variant")

	// ErrChannelMismatch indicates a channel count that does not match
	// the configuration.
	ErrChannelMismatch = errors.New("channel count mismatch")

	// ErrGainLength indicates an audio-rate gain whose length differs
	// from the block length.
	ErrGainLength = errors.New("gain length does not match block length")

	// ErrBufferTooSmall indicates an output buffer shorter than the input.
	ErrBufferTooSmall = errors.New("output buffer too small")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.Variant.family(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Order < 0 || c.Order > maxOrder {
		return fmt.Errorf("%w: order must be 1-%d", ErrInvalidConfig, maxOrder)
	}

	if c.Channels < 0 {
		return fmt.Errorf("%w: channels must not be negative", ErrInvalidConfig)
	}

	if c.Channels > maxChannels {
		return fmt.Errorf("%w: too many channels (max %d)", ErrInvalidConfig, maxChannels)
	}

	return nil
}

// New creates a processor with the specified configuration.
// Zero Order and Channels are replaced by their defaults in config.
func New(config *Config) (Processor, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if config.Order == 0 {
		config.Order = defaultOrder
	}
	if config.Channels == 0 {
		config.Channels = 1
	}

	return newMultiChannelProcessor(config)
}

// Info returns information about a processor.
type Info struct {
	// Variant is the waveshaper in use.
	Variant Variant

	// Order is the ADAA order.
	Order int

	// Channels is the number of channels.
	Channels int

	// Epsilon is the node spread below which the engine switches to its
	// confluent limit.
	Epsilon float64

	// Latency is the processing latency in samples.
	Latency int

	// ShortCut reports whether the linear/saturated region short cut is enabled.
	ShortCut bool

	// MemoryUsage is the approximate memory usage in bytes.
	MemoryUsage int64

	// SIMDType describes the SIMD instruction set used by the buffer helpers.
	SIMDType string
}

// infoProvider is an optional interface for processors that can provide detailed info.
type infoProvider interface {
	GetInfo() Info
}

// GetInfo returns information about a processor.
// If the processor implements the infoProvider interface, it returns actual values.
// Otherwise, it returns basic info based on the processor's public methods.
func GetInfo(p Processor) Info {
	if provider, ok := p.(infoProvider); ok {
		return provider.GetInfo()
	}

	return Info{
		Variant:  p.Variant(),
		Latency:  p.GetLatency(),
		SIMDType: "none",
	}
}
