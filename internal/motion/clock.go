package motion

import (
	"time"

	"github.com/iburimskiy/orbit-network/internal/config"
)

// NormalizeDelta converts elapsed wall-clock time into frame units where 1.0
// is one 60fps frame. Long gaps, e.g. after the window was hidden, are capped
// at config.MaxDelta.
func NormalizeDelta(elapsed time.Duration) float64 {
	d := float64(elapsed) / float64(config.ReferenceFrame)
	if d > config.MaxDelta {
		return config.MaxDelta
	}
	return d
}

// FrameClock measures the time between consecutive frames.
type FrameClock struct {
	last time.Time
}

func NewFrameClock(now time.Time) *FrameClock {
	return &FrameClock{last: now}
}

// Tick returns the normalized delta since the previous tick.
func (c *FrameClock) Tick(now time.Time) float64 {
	d := NormalizeDelta(now.Sub(c.last))
	c.last = now
	return d
}
