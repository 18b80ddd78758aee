// Package export writes a frame of the network as a standalone SVG file.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/iburimskiy/orbit-network/internal/motion"
	"github.com/jbeda/geom"
	"github.com/pkg/errors"
)

const (
	lineStyle  = "stroke-linecap: round; fill: none"
	pointStyle = "stroke: none"
)

// SVG serialization helper
type SVG struct {
	w   *bufio.Writer
	err error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{w: bufio.NewWriter(w)}
}

func (svg *SVG) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.w, format, a...)
}

func (svg *SVG) Start(viewBox geom.Rect, color string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg"
     stroke="%s" fill="%s">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), color, color)
}

func (svg *SVG) Line(a, b geom.Coord, width float64) {
	svg.printf("  <line x1='%f' y1='%f' x2='%f' y2='%f' stroke-width='%f' style='%s'/>\n",
		a.X, a.Y, b.X, b.Y, width, lineStyle)
}

func (svg *SVG) Circle(c geom.Coord, r float64) {
	svg.printf("  <circle cx='%f' cy='%f' r='%f' style='%s'/>\n", c.X, c.Y, r, pointStyle)
}

// End closes the document and flushes it.
func (svg *SVG) End() error {
	svg.printf("</svg>\n")
	if svg.err != nil {
		return svg.err
	}
	return svg.w.Flush()
}

// flip maps world coordinates (y up) to SVG coordinates (y down).
func flip(p geom.Coord) geom.Coord {
	return geom.Coord{X: p.X, Y: -p.Y}
}

// Bounds returns the smallest rectangle holding every point, grown by pad.
func Bounds(n *motion.Network, pad float64) geom.Rect {
	if len(n.Points) == 0 {
		return geom.Rect{}
	}
	first := flip(n.Points[0].Position)
	r := geom.Rect{Min: first, Max: first}
	for _, p := range n.Points[1:] {
		r.ExpandToContainCoord(flip(p.Position))
	}
	r.Min = r.Min.Minus(geom.Coord{X: pad, Y: pad})
	r.Max = r.Max.Plus(geom.Coord{X: pad, Y: pad})
	return r
}

// WriteNetwork writes one <line> per segment and one <circle> per point.
func WriteNetwork(w io.Writer, n *motion.Network, color string) error {
	svg := NewSVG(w)
	var thickness float64
	if len(n.States) > 0 {
		thickness = n.States[0].Body.Thickness
	}
	svg.Start(Bounds(n, 4*thickness), color)

	for _, st := range n.States {
		a, b := st.Body.Ends()
		svg.Line(flip(a), flip(b), st.Body.Thickness)
	}
	for _, p := range n.Points {
		svg.Circle(flip(p.Position), thickness/2)
	}
	return errors.Wrap(svg.End(), "write svg")
}
