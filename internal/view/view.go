// Package view sizes the drawing surface and projects world coordinates on
// the z = 0 plane into screen pixels.
package view

import (
	"math"

	"github.com/iburimskiy/orbit-network/internal/config"
	"github.com/jbeda/geom"
)

// Camera is a perspective camera on the z axis looking at the origin.
type Camera struct {
	FOV      float64 // vertical, degrees
	Distance float64
	Aspect   float64

	// Canvas the projection fills, in screen pixels.
	Bounds geom.Rect
}

func NewCamera() Camera {
	return Camera{FOV: config.CameraFOV, Distance: config.CameraDistance, Aspect: 1}
}

// UpdateProjection fits the camera to a new canvas.
func (c *Camera) UpdateProjection(bounds geom.Rect) {
	c.Bounds = bounds
	if h := bounds.Height(); h > 0 {
		c.Aspect = bounds.Width() / h
	}
}

// focal is the perspective focal length, 1/tan(fov/2).
func (c Camera) focal() float64 {
	fov := c.FOV * math.Pi / 180
	if fov == 0 {
		fov = 1
	}
	return 1 / math.Tan(fov/2)
}

// Scale is the number of pixels per world unit on the z = 0 plane.
func (c Camera) Scale() float64 {
	if c.Distance == 0 {
		return 0
	}
	return c.Bounds.Height() / 2 * c.focal() / c.Distance
}

// ndc projects a point on the z = 0 plane into normalized device
// coordinates. The camera sits at z = Distance, so clip w is Distance.
func (c Camera) ndc(p geom.Coord) (geom.Coord, bool) {
	if c.Distance == 0 {
		return geom.Coord{}, false
	}
	aspect := c.Aspect
	if aspect == 0 {
		aspect = 1
	}
	f := c.focal()
	invW := 1 / c.Distance
	return geom.Coord{X: p.X * f / aspect * invW, Y: p.Y * f * invW}, true
}

// Project maps a world point to screen pixels. World y points up, screen y
// points down.
func (c Camera) Project(p geom.Coord) geom.Coord {
	n, ok := c.ndc(p)
	if !ok {
		return c.Bounds.Min.Plus(c.Bounds.Max).Times(0.5)
	}
	return geom.Coord{
		X: c.Bounds.Min.X + (n.X*0.5+0.5)*c.Bounds.Width(),
		Y: c.Bounds.Min.Y + (1-(n.Y*0.5+0.5))*c.Bounds.Height(),
	}
}

// Viewport splits the window into the network canvas and the page panel.
type Viewport struct {
	Width  int
	Height int
	Canvas geom.Rect
	Panel  geom.Rect
	Camera Camera
}

func NewViewport(width, height int) *Viewport {
	v := &Viewport{Camera: NewCamera()}
	v.Resize(width, height)
	return v
}

// CanvasSize applies the page's sizing rule: half the width on wide
// screens, the full width otherwise.
func CanvasSize(width, height int) (float64, float64) {
	w := float64(width)
	if width > config.WideBreakpoint {
		w *= 0.5
	}
	return w, float64(height)
}

// Resize recomputes the layout and reports whether the size changed.
func (v *Viewport) Resize(width, height int) bool {
	if width == v.Width && height == v.Height {
		return false
	}
	v.Width, v.Height = width, height

	cw, ch := CanvasSize(width, height)
	full := geom.Rect{Min: geom.Coord{}, Max: geom.Coord{X: float64(width), Y: float64(height)}}
	if cw < float64(width) {
		v.Canvas = geom.Rect{
			Min: geom.Coord{X: float64(width) - cw, Y: 0},
			Max: geom.Coord{X: float64(width), Y: ch},
		}
		v.Panel = geom.Rect{Min: geom.Coord{}, Max: geom.Coord{X: float64(width) - cw, Y: ch}}
	} else {
		// Narrow screens draw the page on top of the canvas.
		v.Canvas = full
		v.Panel = full
	}
	v.Camera.UpdateProjection(v.Canvas)
	return true
}
