package term

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/iburimskiy/orbit-network/internal/motion"
	"github.com/jbeda/geom"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	blue  = colorful.Color{B: 1}
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestCellCentersOrigin(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	r := NewRenderer(s, motion.NewNetwork(rand.New(rand.NewPCG(1, 2))), white, blue)

	x, y := r.Cell(geom.Coord{})
	assert.Equal(t, 40, x)
	assert.Equal(t, 12, y)
}

func TestDrawPaintsPointsAndLines(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	n := motion.NewNetwork(rand.New(rand.NewPCG(1, 2)))
	r := NewRenderer(s, n, white, blue)
	r.Draw()

	for _, p := range n.Points {
		x, y := r.Cell(p.Position)
		ch, _, _, _ := s.GetContent(x, y)
		assert.Equal(t, pointRune, ch)
	}

	var lines int
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if ch, _, _, _ := s.GetContent(x, y); ch == lineRune {
				lines++
			}
		}
	}
	assert.Greater(t, lines, 0)
}

func TestLineEndpoints(t *testing.T) {
	s := newSimScreen(t, 20, 10)
	r := NewRenderer(s, motion.NewNetwork(rand.New(rand.NewPCG(1, 2))), white, blue)

	r.line(1, 1, 7, 4)
	for _, c := range [][2]int{{1, 1}, {7, 4}} {
		ch, _, _, _ := s.GetContent(c[0], c[1])
		assert.Equal(t, lineRune, ch)
	}
	// Off-screen cells are ignored.
	assert.NotPanics(t, func() { r.line(-5, -5, 30, 30) })
}

func TestRunQuitsOnEscape(t *testing.T) {
	s := newSimScreen(t, 40, 12)
	n := motion.NewNetwork(rand.New(rand.NewPCG(1, 2)))
	r := NewRenderer(s, n, white, blue)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	go func() {
		time.Sleep(50 * time.Millisecond)
		s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	}()
	assert.NoError(t, Run(ctx, r, 100))
	assert.Greater(t, n.Frame(), uint64(0))
}

func TestRunStopsOnContext(t *testing.T) {
	s := newSimScreen(t, 40, 12)
	r := NewRenderer(s, motion.NewNetwork(rand.New(rand.NewPCG(1, 2))), white, blue)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, Run(ctx, r, 100), context.DeadlineExceeded)
}
