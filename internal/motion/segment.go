package motion

import (
	"math"

	"github.com/jbeda/geom"
)

// Neighbour offsets: every point links to the next point and to the one
// three steps ahead.
var segmentOffsets = [...]int{1, 3}

// Segment joins two points by index.
type Segment struct {
	Start int
	End   int
}

// InitSegments builds the fixed topology over n points. Links are generated
// in both passes, so the same pair may appear twice in opposite directions.
func InitSegments(n int) []Segment {
	segments := make([]Segment, 0, n*len(segmentOffsets))
	for i := 0; i < n; i++ {
		for _, off := range segmentOffsets {
			segments = append(segments, Segment{Start: i, End: (i + off) % n})
		}
	}
	return segments
}

// Body is the thick bar between two points.
type Body struct {
	Center    geom.Coord
	Length    float64
	Angle     float64
	Thickness float64

	// ScaleX stretches the bar relative to the length it had when built.
	ScaleX     float64
	BaseLength float64
}

// Cap is a round disc closing one end of a bar.
type Cap struct {
	Center geom.Coord
	Radius float64
}

// SegmentState is everything needed to draw one segment this frame.
type SegmentState struct {
	Body     Body
	StartCap Cap
	EndCap   Cap
}

func NewSegmentState(start, end geom.Coord, thickness float64) SegmentState {
	s := SegmentState{
		Body: Body{
			Thickness:  thickness,
			BaseLength: end.Minus(start).Magnitude(),
		},
		StartCap: Cap{Radius: thickness / 2},
		EndCap:   Cap{Radius: thickness / 2},
	}
	s.Update(start, end)
	return s
}

// Update re-derives the bar and caps from the current endpoints.
func (s *SegmentState) Update(start, end geom.Coord) {
	s.Body.Length = end.Minus(start).Magnitude()
	s.Body.Center = start.Plus(end).Times(0.5)
	s.Body.Angle = math.Atan2(end.Y-start.Y, end.X-start.X)
	s.Body.ScaleX = 1
	if s.Body.BaseLength > 0 {
		s.Body.ScaleX = s.Body.Length / s.Body.BaseLength
	}

	s.StartCap.Center = start
	s.EndCap.Center = end
}

// Ends returns the endpoints of the bar's centre line.
func (b Body) Ends() (geom.Coord, geom.Coord) {
	half := geom.Coord{X: math.Cos(b.Angle), Y: math.Sin(b.Angle)}.Times(b.Length / 2)
	return b.Center.Minus(half), b.Center.Plus(half)
}
