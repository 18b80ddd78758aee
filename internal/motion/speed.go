package motion

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/orbit-network/internal/config"
)

// SpeedSampler hands out angular speeds that keep a minimum distance from
// every speed it handed out before. The distance is best effort: after
// MaxAttempts redraws the last draw is accepted even if it is too close.
type SpeedSampler struct {
	Min           float64
	Max           float64
	MinDifference float64
	MaxAttempts   int

	rng      *rand.Rand
	accepted []float64
	capped   []bool
}

func NewSpeedSampler(rng *rand.Rand) *SpeedSampler {
	return &SpeedSampler{
		Min:           config.MinSpeed,
		Max:           config.MaxSpeed,
		MinDifference: config.MinDifference,
		MaxAttempts:   config.MaxSpeedAttempts,
		rng:           rng,
	}
}

// Next draws a speed in [Min, Max].
func (s *SpeedSampler) Next() float64 {
	v := s.draw()
	for attempt := 0; attempt < s.MaxAttempts && s.tooClose(v); attempt++ {
		v = s.draw()
	}
	s.capped = append(s.capped, s.tooClose(v))
	s.accepted = append(s.accepted, v)
	return v
}

// Capped reports whether the i-th speed was accepted after running out of
// redraws while still too close to an earlier speed.
func (s *SpeedSampler) Capped(i int) bool {
	return i >= 0 && i < len(s.capped) && s.capped[i]
}

// Accepted returns every speed handed out so far, in order.
func (s *SpeedSampler) Accepted() []float64 {
	out := make([]float64, len(s.accepted))
	copy(out, s.accepted)
	return out
}

func (s *SpeedSampler) draw() float64 {
	return s.Min + s.rng.Float64()*(s.Max-s.Min)
}

func (s *SpeedSampler) tooClose(v float64) bool {
	for _, a := range s.accepted {
		if math.Abs(a-v) < s.MinDifference {
			return true
		}
	}
	return false
}
