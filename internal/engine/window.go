package engine

// Window is the rolling history of the most recent raw input samples,
// oldest first. It starts zero filled, which is the same as a stream that
// was preceded by silence.
type Window struct {
	samples [MaxNodes]float64
}

// Push shifts the window by one sample and appends x as the newest entry.
func (w *Window) Push(x float64) {
	w.samples[0] = w.samples[1]
	w.samples[1] = w.samples[2]
	w.samples[2] = w.samples[3]
	w.samples[3] = w.samples[4]
	w.samples[4] = x
}

// Recent returns the n newest samples, oldest first. The slice aliases the
// window and is only valid until the next Push.
func (w *Window) Recent(n int) []float64 {
	return w.samples[MaxNodes-n:]
}

// At returns x[n-age], where age 0 is the newest sample.
func (w *Window) At(age int) float64 {
	return w.samples[MaxNodes-1-age]
}

// Reset zeroes the window.
func (w *Window) Reset() {
	w.samples = [MaxNodes]float64{}
}
