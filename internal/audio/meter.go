package audio

import (
	"math"

	"github.com/iburimskiy/orbit-network/internal/config"
)

// Meter turns raw samples into a smoothed loudness level in [0, 1].
type Meter struct {
	Smoothing float64
	level     float64
}

func NewMeter() *Meter {
	return &Meter{Smoothing: config.SmoothingFactor}
}

// Update folds a block of stereo samples into the level and returns it.
func (m *Meter) Update(samples [][2]float64) float64 {
	var target float64
	if len(samples) > 0 {
		var sumSquares float64
		for _, s := range samples {
			mono := (s[0] + s[1]) * 0.5
			sumSquares += mono * mono
		}
		rms := math.Sqrt(sumSquares / float64(len(samples)))
		// Strong compression so quiet passages still move the lines.
		target = clamp01(math.Pow(rms, 0.3))
	}
	m.level = m.Smoothing*m.level + (1-m.Smoothing)*target
	return m.level
}

func (m *Meter) Level() float64 { return m.level }

// Reset drops the level back to silence.
func (m *Meter) Reset() { m.level = 0 }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
