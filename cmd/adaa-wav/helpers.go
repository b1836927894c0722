package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/go-adaa"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file         *os.File
	decoder      *wav.Decoder
	rate         int
	channels     int
	bitDepth     int
	totalSamples int64
	format       *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		_ = inputFile.Close()
		return nil, fmt.Errorf("unsupported bit depth %d in %s", bitDepth, path)
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	// Get total duration for progress reporting and gain ramps
	duration, err := decoder.Duration()
	if err != nil {
		duration = 0
	}
	totalSamples := int64(math.Round(duration.Seconds() * float64(format.SampleRate)))

	return &wavInputInfo{
		file:         inputFile,
		decoder:      decoder,
		rate:         format.SampleRate,
		channels:     format.NumChannels,
		bitDepth:     bitDepth,
		totalSamples: totalSamples,
		format:       format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// readFrames reads the next chunk into buf and returns the number of
// complete frames read. Zero means end of data.
func (w *wavInputInfo) readFrames(buf *audio.IntBuffer) (int, error) {
	buf.Data = buf.Data[:cap(buf.Data)]
	n, err := w.decoder.PCMBuffer(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("failed to read audio data: %w", err)
	}
	return n / w.channels, nil
}

// wavOutputWriter wraps an output file and its go-audio encoder.
type wavOutputWriter struct {
	file    *os.File
	encoder *wav.Encoder
	buf     *audio.IntBuffer
	written bool
}

// createWAVOutput creates output file and writer.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutputWriter{
		file:    outputFile,
		encoder: wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM),
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
	}, nil
}

// WriteSamples writes interleaved samples to the output file.
func (w *wavOutputWriter) WriteSamples(samples []int) error {
	w.buf.Data = samples
	w.written = true
	if err := w.encoder.Write(w.buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	return nil
}

// Close finalises the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	// The encoder only emits its header on the first write.
	if !w.written {
		if err := w.WriteSamples(nil); err != nil {
			_ = w.file.Close()
			return err
		}
	}
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("failed to finalise WAV file: %w", err)
	}
	return w.file.Close()
}

// Float constraint for generic sample buffers.
type Float interface {
	float32 | float64
}

// shapeBuffers holds all preallocated buffers for one processing session.
type shapeBuffers[F Float] struct {
	intBuffer   *audio.IntBuffer
	channelBufs [][]F
	gains       []float64
	wetIntBuf   []int
	dryIntBuf   []int
	invMaxVal   float64
	maxVal      float64
}

// newShapeBuffers creates and preallocates all processing buffers.
func newShapeBuffers[F Float](channels, bitDepth int, format *audio.Format) *shapeBuffers[F] {
	channelBufs := make([][]F, channels)
	for ch := range channels {
		channelBufs[ch] = make([]F, bufferSize)
	}

	maxVal := getMaxValue(bitDepth)
	return &shapeBuffers[F]{
		intBuffer: &audio.IntBuffer{
			Data:   make([]int, bufferSize*channels),
			Format: format,
		},
		channelBufs: channelBufs,
		gains:       make([]float64, bufferSize),
		wetIntBuf:   make([]int, bufferSize*channels),
		dryIntBuf:   make([]int, bufferSize*channels),
		invMaxVal:   1.0 / maxVal,
		maxVal:      maxVal,
	}
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// gainRamp produces the gain for each block: constant, or a linear ramp
// from start to end over the length of the file.
type gainRamp struct {
	start float64
	end   float64
	total int64
	ramp  bool
}

func newGainRamp(opts options, totalSamples int64) gainRamp {
	return gainRamp{
		start: opts.gain,
		end:   opts.gainEnd,
		total: totalSamples,
		ramp:  opts.ramp && opts.gainEnd != opts.gain,
	}
}

// block returns the gain for n samples starting at offset, using dst as
// storage for audio-rate values.
func (g gainRamp) block(offset int64, n int, dst []float64) adaa.Gain {
	if !g.ramp {
		return adaa.ControlRate(g.start)
	}
	for i := range n {
		dst[i] = g.at(offset + int64(i))
	}
	return adaa.AudioRate(dst[:n])
}

// at returns the gain of sample pos. Positions past the end hold the final gain.
func (g gainRamp) at(pos int64) float64 {
	if g.total <= 1 {
		return g.end
	}
	t := min(float64(pos)/float64(g.total-1), 1)
	return g.start + (g.end-g.start)*t
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalSamples int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalSamples int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalSamples: totalSamples,
		verbose:      verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentSamples int64) {
	if !p.verbose || p.totalSamples == 0 {
		return
	}

	progress := int(float64(currentSamples) / float64(p.totalSamples) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}

// deinterleaveInto converts interleaved int samples into preallocated per-channel buffers.
func deinterleaveInto[F Float](data []int, channelBufs [][]F, numChannels, samplesPerChannel int, invMaxVal float64) {
	// Fast path for mono
	if numChannels == monoChannels {
		buf := channelBufs[0]
		for i := range samplesPerChannel {
			buf[i] = F(float64(data[i]) * invMaxVal)
		}
		return
	}

	// Fast path for stereo
	if numChannels == stereoChannels {
		buf0, buf1 := channelBufs[0], channelBufs[1]
		for i := range samplesPerChannel {
			idx := i * stereoChannels
			buf0[i] = F(float64(data[idx]) * invMaxVal)
			buf1[i] = F(float64(data[idx+1]) * invMaxVal)
		}
		return
	}

	for i := range samplesPerChannel {
		base := i * numChannels
		for ch := range numChannels {
			channelBufs[ch][i] = F(float64(data[base+ch]) * invMaxVal)
		}
	}
}

// interleaveInto converts per-channel float slices into a preallocated int
// buffer, clamping to full scale. Returns the number of elements written.
func interleaveInto[F Float](channels [][]F, dst []int, maxVal float64) int {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return 0
	}

	numChannels := len(channels)
	samplesPerChannel := len(channels[0])
	totalLen := samplesPerChannel * numChannels
	if len(dst) < totalLen {
		return 0
	}

	for i := range samplesPerChannel {
		base := i * numChannels
		for ch := range numChannels {
			sample := max(-1.0, min(1.0, float64(channels[ch][i])))
			dst[base+ch] = int(math.Round(sample * maxVal))
		}
	}

	return totalLen
}
