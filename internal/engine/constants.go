package engine

// Window and order limits
const (
	// MaxOrder is the highest supported ADAA order.
	MaxOrder = 4

	// MaxNodes is the window length at MaxOrder.
	MaxNodes = MaxOrder + 1

	// DefaultOrder is used when a stage is created with order 0.
	DefaultOrder = MaxOrder
)

// Rounding error model
const (
	// evalRoundoff bounds the relative error of one antiderivative evaluation
	// (a short Horner chain), in units of the float64 machine epsilon.
	evalRoundoff = 8 * 0x1p-52

	// acceptTolerance lets a divided branch through without computing the
	// confluent alternative when its error bound is this small relative to
	// its value.
	acceptTolerance = 1e-9
)

// factorial holds m! for every level.
var factorial = [MaxNodes]float64{1, 1, 2, 6, 24}

// Memory usage estimate for one stage (bytes)
const stageMemoryUsage = 96
