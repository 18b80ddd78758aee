package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeterSilence(t *testing.T) {
	m := NewMeter()
	assert.Equal(t, 0.0, m.Update(make([][2]float64, 64)))
	assert.Equal(t, 0.0, m.Update(nil))
}

func TestMeterSmoothing(t *testing.T) {
	m := NewMeter()
	full := [][2]float64{{1, 1}, {-1, -1}}

	first := m.Update(full)
	assert.InDelta(t, 0.4, first, 1e-12)

	second := m.Update(full)
	assert.InDelta(t, 0.6*0.4+0.4, second, 1e-12)

	// Decays toward zero once the input goes quiet.
	assert.Less(t, m.Update(nil), second)
}

func TestMeterCompression(t *testing.T) {
	m := NewMeter()
	m.Smoothing = 0
	quiet := [][2]float64{{0.01, 0.01}}

	assert.InDelta(t, math.Pow(0.01, 0.3), m.Update(quiet), 1e-12)
	m.Reset()
	assert.Equal(t, 0.0, m.Level())
}
