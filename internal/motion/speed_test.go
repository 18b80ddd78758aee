package motion

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeedSamplerKeepsDistance(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		s := NewSpeedSampler(rand.New(rand.NewPCG(seed, seed*7)))
		for i := 0; i < 7; i++ {
			v := s.Next()
			assert.GreaterOrEqual(t, v, s.Min)
			assert.LessOrEqual(t, v, s.Max)
		}

		speeds := s.Accepted()
		require.Len(t, speeds, 7)
		for j := range speeds {
			if s.Capped(j) {
				continue
			}
			for i := 0; i < j; i++ {
				assert.GreaterOrEqual(t, math.Abs(speeds[i]-speeds[j]), s.MinDifference,
					"seed %d: speeds %d and %d too close", seed, i, j)
			}
		}
	}
}

func TestSpeedSamplerWideRangeNeverCaps(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		s := NewSpeedSampler(rand.New(rand.NewPCG(seed, seed*7)))
		s.Max = s.Min + 1
		for i := 0; i < 7; i++ {
			s.Next()
		}

		speeds := s.Accepted()
		for j := range speeds {
			require.False(t, s.Capped(j), "seed %d: speed %d capped", seed, j)
			for i := 0; i < j; i++ {
				assert.GreaterOrEqual(t, math.Abs(speeds[i]-speeds[j]), s.MinDifference,
					"seed %d: speeds %d and %d too close", seed, i, j)
			}
		}
	}
}

func TestSpeedSamplerAcceptsAfterAttemptCap(t *testing.T) {
	s := NewSpeedSampler(rand.New(rand.NewPCG(3, 4)))
	// Only room for one speed; every later draw collides.
	s.Max = s.Min + s.MinDifference/2

	first := s.Next()
	second := s.Next()

	assert.Less(t, math.Abs(first-second), s.MinDifference)
	assert.Len(t, s.Accepted(), 2)
	assert.False(t, s.Capped(0))
	assert.True(t, s.Capped(1))
	assert.False(t, s.Capped(2))
}

func TestSpeedSamplerRedrawCount(t *testing.T) {
	var draws int
	s := NewSpeedSampler(rand.New(&countingSource{n: &draws}))
	s.Max = s.Min + s.MinDifference/2

	s.Next()
	assert.Equal(t, 1, draws)

	draws = 0
	s.Next()
	assert.Equal(t, 1+s.MaxAttempts, draws)
}

type countingSource struct {
	n *int
	x uint64
}

func (c *countingSource) Uint64() uint64 {
	*c.n++
	c.x += 0x9e3779b97f4a7c15
	return c.x
}
