package view

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
)

func TestCanvasSize(t *testing.T) {
	w, h := CanvasSize(991, 600)
	assert.Equal(t, 991.0, w)
	assert.Equal(t, 600.0, h)

	w, _ = CanvasSize(992, 600)
	assert.Equal(t, 496.0, w)
}

func TestViewportWideSplit(t *testing.T) {
	v := NewViewport(1280, 720)

	assert.Equal(t, geom.Coord{X: 640, Y: 0}, v.Canvas.Min)
	assert.Equal(t, geom.Coord{X: 1280, Y: 720}, v.Canvas.Max)
	assert.Equal(t, geom.Coord{X: 640, Y: 720}, v.Panel.Max)
	assert.InDelta(t, 640.0/720.0, v.Camera.Aspect, 1e-12)
}

func TestViewportNarrowOverlaps(t *testing.T) {
	v := NewViewport(800, 600)

	assert.Equal(t, v.Canvas, v.Panel)
	assert.Equal(t, 800.0, v.Canvas.Width())
}

func TestViewportResize(t *testing.T) {
	v := NewViewport(1280, 720)
	assert.False(t, v.Resize(1280, 720))
	assert.True(t, v.Resize(600, 900))
	assert.InDelta(t, 600.0/900.0, v.Camera.Aspect, 1e-12)
}

func TestProject(t *testing.T) {
	v := NewViewport(1280, 720)
	c := v.Camera

	center := c.Project(geom.Coord{})
	assert.Equal(t, geom.Coord{X: 960, Y: 360}, center)

	// The top edge of the canvas sits at d*tan(fov/2) world units.
	top := c.Project(geom.Coord{Y: 5 * math.Tan(75*math.Pi/360)})
	assert.InDelta(t, 0, top.Y, 1e-9)
	assert.InDelta(t, 960, top.X, 1e-9)

	right := c.Project(geom.Coord{X: 1})
	assert.InDelta(t, 960+c.Scale(), right.X, 1e-9)
}

func TestNDCMatchesPerspective(t *testing.T) {
	v := NewViewport(1280, 720)
	c := v.Camera
	halfHeight := 5 * math.Tan(75*math.Pi/360)

	n, ok := c.ndc(geom.Coord{X: halfHeight * c.Aspect, Y: halfHeight})
	assert.True(t, ok)
	assert.InDelta(t, 1, n.X, 1e-12)
	assert.InDelta(t, 1, n.Y, 1e-12)

	// Edges of NDC land on the canvas edges.
	corner := c.Project(geom.Coord{X: halfHeight * c.Aspect, Y: halfHeight})
	assert.InDelta(t, 1280, corner.X, 1e-9)
	assert.InDelta(t, 0, corner.Y, 1e-9)
}

func TestProjectDegenerateCamera(t *testing.T) {
	c := NewCamera()
	c.UpdateProjection(geom.Rect{Max: geom.Coord{X: 100, Y: 50}})
	c.Distance = 0

	assert.Equal(t, 0.0, c.Scale())
	assert.Equal(t, geom.Coord{X: 50, Y: 25}, c.Project(geom.Coord{X: 3, Y: 4}))
}
