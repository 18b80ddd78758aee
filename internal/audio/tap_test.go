package audio

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ramp streams samples whose left channel counts up from 1.
func ramp() beep.Streamer {
	var n float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			n++
			samples[i] = [2]float64{n, -n}
		}
		return len(samples), true
	})
}

func TestTapSnapshotOrder(t *testing.T) {
	tap := NewTap(ramp(), 8)
	buf := make([][2]float64, 5)

	_, ok := tap.Stream(buf)
	require.True(t, ok)
	assert.Equal(t, [][2]float64{{4, -4}, {5, -5}}, tap.Snapshot(2))

	// Before the ring fills only recorded samples come back.
	assert.Len(t, tap.Snapshot(100), 5)
}

func TestTapSnapshotWraps(t *testing.T) {
	tap := NewTap(ramp(), 4)
	buf := make([][2]float64, 3)
	tap.Stream(buf)
	tap.Stream(buf)

	got := tap.Snapshot(10)
	require.Len(t, got, 4)
	assert.Equal(t, []float64{3, 4, 5, 6}, []float64{got[0][0], got[1][0], got[2][0], got[3][0]})
}

func TestTapPassesThrough(t *testing.T) {
	tap := NewTap(beep.Silence(2), 4)
	buf := make([][2]float64, 3)

	n, ok := tap.Stream(buf)
	assert.Equal(t, 2, n)
	assert.True(t, ok)
	assert.NoError(t, tap.Err())
}
