// Package term draws the network into a terminal with tcell.
package term

import (
	"context"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/iburimskiy/orbit-network/internal/motion"
	"github.com/iburimskiy/orbit-network/internal/view"
	"github.com/jbeda/geom"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	lineRune  = '·'
	pointRune = '●'

	// Terminal cells are roughly twice as tall as they are wide.
	cellAspect = 2.0
)

// Renderer paints the network's segments and points as cells.
type Renderer struct {
	screen tcell.Screen
	net    *motion.Network
	camera view.Camera

	lineStyle  tcell.Style
	pointStyle tcell.Style
}

func NewRenderer(screen tcell.Screen, n *motion.Network, line, accent colorful.Color) *Renderer {
	r := &Renderer{
		screen:     screen,
		net:        n,
		camera:     view.NewCamera(),
		lineStyle:  tcell.StyleDefault.Foreground(rgb(line)),
		pointStyle: tcell.StyleDefault.Foreground(rgb(accent)),
	}
	r.Resize()
	return r
}

func rgb(c colorful.Color) tcell.Color {
	cr, cg, cb := c.RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}

// Resize fits the projection to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	// Project onto a square-pixel canvas, then squash rows into cells.
	r.camera.UpdateProjection(geom.Rect{Max: geom.Coord{X: float64(w), Y: float64(h) * cellAspect}})
}

// Cell returns the screen cell a world point lands in.
func (r *Renderer) Cell(p geom.Coord) (int, int) {
	s := r.camera.Project(p)
	return int(math.Floor(s.X)), int(math.Floor(s.Y / cellAspect))
}

// Draw paints one frame and shows it.
func (r *Renderer) Draw() {
	r.screen.Clear()
	for _, st := range r.net.States {
		x0, y0 := r.Cell(st.StartCap.Center)
		x1, y1 := r.Cell(st.EndCap.Center)
		r.line(x0, y0, x1, y1)
	}
	for _, p := range r.net.Points {
		x, y := r.Cell(p.Position)
		r.set(x, y, pointRune, r.pointStyle)
	}
	r.screen.Show()
}

// line rasterizes with Bresenham's algorithm.
func (r *Renderer) line(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		r.set(x0, y0, lineRune, r.lineStyle)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Run steps and draws the network at hz frames per second until ctx ends or
// the user presses Esc or Ctrl-C.
func Run(ctx context.Context, r *Renderer, hz int) error {
	ticker := time.NewTicker(time.Second / time.Duration(hz))
	defer ticker.Stop()
	clock := motion.NewFrameClock(time.Now())

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
			case *tcell.EventResize:
				r.Resize()
				r.screen.Sync()
			}
		case now := <-ticker.C:
			r.net.Step(clock.Tick(now))
			r.Draw()
		}
	}
}
