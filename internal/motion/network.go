package motion

import (
	"math/rand/v2"

	"github.com/iburimskiy/orbit-network/internal/config"
	"github.com/jbeda/geom"
)

// Network owns the orbiting points and the segments drawn between them.
type Network struct {
	Points   []Point
	Segments []Segment
	States   []SegmentState

	speeds *SpeedSampler
	frame  uint64
}

func NewNetwork(rng *rand.Rand) *Network {
	speeds := NewSpeedSampler(rng)
	n := &Network{
		Points:   InitPoints(rng, speeds, config.PointCount),
		Segments: InitSegments(config.PointCount),
		speeds:   speeds,
	}
	n.States = make([]SegmentState, len(n.Segments))
	for i := range n.Segments {
		start, end := n.Endpoints(i)
		n.States[i] = NewSegmentState(start, end, config.LineThickness)
	}
	return n
}

// Step advances all points by delta frames, then refreshes every segment.
func (n *Network) Step(delta float64) {
	Advance(n.Points, delta)
	for i := range n.Segments {
		start, end := n.Endpoints(i)
		n.States[i].Update(start, end)
	}
	n.frame++
}

// Endpoints returns the current positions joined by segment i.
func (n *Network) Endpoints(i int) (geom.Coord, geom.Coord) {
	s := n.Segments[i]
	return n.Points[s.Start].Position, n.Points[s.End].Position
}

// Frame counts calls to Step.
func (n *Network) Frame() uint64 { return n.frame }

// Speeds returns the speeds drawn for the points, in draw order.
func (n *Network) Speeds() []float64 { return n.speeds.Accepted() }
