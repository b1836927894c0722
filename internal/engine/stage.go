package engine

import (
	"github.com/tphakala/go-adaa/internal/waveshaper"
)

// Stage applies ADAA to one channel. It owns its window exclusively and
// must be driven sequentially; independent channels use independent stages.
//
// For every input sample x_n with gain g_n the stage emits
//
//	dry_n = x_{n-d}                          (d = order/2)
//	wet_n = w0(g_n · x_{n-d})                when the short cut holds
//	wet_n = D^order(g_n · x_n, ..., g_n · x_{n-order})   otherwise
//
// The current gain scales the whole window, so history is kept raw.
type Stage struct {
	engine   *Engine
	family   *waveshaper.Family
	window   Window
	order    int
	delay    int
	shortCut bool
}

// NewStage creates a stage of the given order (1..MaxOrder, 0 selects
// DefaultOrder). Orders outside the range are clamped.
func NewStage(f *waveshaper.Family, order int, shortCut bool) *Stage {
	if order <= 0 {
		order = DefaultOrder
	}
	order = min(order, MaxOrder)
	return &Stage{
		engine:   NewEngine(f),
		family:   f,
		order:    order,
		delay:    order / 2,
		shortCut: shortCut,
	}
}

// Tick processes one sample.
func (s *Stage) Tick(x, gain float64) (wet, dry float64) {
	s.window.Push(x)

	n := s.order + 1
	centre := n - 1 - s.delay
	raw := s.window.Recent(n)

	var z [MaxNodes]float64
	for j, v := range raw {
		z[j] = gain * v
	}

	dry = raw[centre]
	if s.shortCut && ShortCut(s.family, z[:n]) {
		return s.family.W[0](z[centre]), dry
	}
	return s.engine.divided(z[:n]), dry
}

// ProcessControl processes a block with one gain for every sample.
// wet and dry must be at least as long as in.
func (s *Stage) ProcessControl(in []float64, gain float64, wet, dry []float64) {
	for i, x := range in {
		wet[i], dry[i] = s.Tick(x, gain)
	}
}

// ProcessAudio processes a block with one gain per sample.
// gains, wet and dry must be at least as long as in.
func (s *Stage) ProcessAudio(in, gains, wet, dry []float64) {
	for i, x := range in {
		wet[i], dry[i] = s.Tick(x, gains[i])
	}
}

// Reset zeroes the window, as if the stage had only ever seen silence.
func (s *Stage) Reset() {
	s.window.Reset()
}

// Latency returns the delay of both outputs relative to the input, in samples.
func (s *Stage) Latency() int {
	return s.delay
}

// Order returns the ADAA order.
func (s *Stage) Order() int {
	return s.order
}

// ShortCutEnabled reports whether the regime short cut is in use.
func (s *Stage) ShortCutEnabled() bool {
	return s.shortCut
}

// Engine returns the stage's divided difference engine.
func (s *Stage) Engine() *Engine {
	return s.engine
}

// GetMemoryUsage returns approximate memory usage in bytes.
func (s *Stage) GetMemoryUsage() int64 {
	return stageMemoryUsage
}
