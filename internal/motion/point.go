package motion

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/orbit-network/internal/config"
	"github.com/jbeda/geom"
)

// Point orbits the origin on a circle of radius config.Radius.
type Point struct {
	Position  geom.Coord
	Speed     float64
	Direction float64 // +1 or -1
	Angle     float64
}

// InitPoints places n points at random angles, each with its own speed and
// a random direction of rotation.
func InitPoints(rng *rand.Rand, speeds *SpeedSampler, n int) []Point {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := speeds.Next()
		direction := 1.0
		if rng.Float64() < 0.5 {
			direction = -1
		}

		p := Point{Speed: speed, Direction: direction, Angle: angle}
		p.place()
		points = append(points, p)
	}
	return points
}

// Advance moves every point along its circle by delta frames.
func Advance(points []Point, delta float64) {
	for i := range points {
		p := &points[i]
		p.Angle += p.Speed * p.Direction * delta * config.TimeScale
		p.place()
	}
}

func (p *Point) place() {
	p.Position = geom.Coord{
		X: math.Cos(p.Angle) * config.Radius,
		Y: math.Sin(p.Angle) * config.Radius,
	}
}
