package adaa

import "github.com/tphakala/go-adaa/internal/engine"

// Channel constants
const (
	stereoChannels = 2   // Stereo channel count (used by interleave functions)
	maxChannels    = 256 // Maximum supported channel count
)

// Order limits
const (
	defaultOrder = engine.DefaultOrder
	maxOrder     = engine.MaxOrder
)

