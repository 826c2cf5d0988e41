package domain

// DefaultPixelsPerSecond is the timeline scale used when none is configured.
const DefaultPixelsPerSecond = 4.0

// Timescale converts between horizontal pixel offsets and time offsets.
// The scale is fixed for the lifetime of an edit session.
type Timescale struct {
	PixelsPerSecond float64
}

// NewTimescale returns a Timescale, substituting the default for a
// non-positive scale.
func NewTimescale(pixelsPerSecond float64) Timescale {
	if pixelsPerSecond <= 0 {
		pixelsPerSecond = DefaultPixelsPerSecond
	}
	return Timescale{PixelsPerSecond: pixelsPerSecond}
}

// TimeToPixel converts a time offset in seconds to a pixel offset
func (s Timescale) TimeToPixel(t float64) float64 {
	return t * s.PixelsPerSecond
}

// PixelToTime converts a pixel offset to a time offset in seconds
func (s Timescale) PixelToTime(x float64) float64 {
	return x / s.PixelsPerSecond
}
