package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/orbit-network/internal/config"
	"github.com/iburimskiy/orbit-network/internal/nav"
	"github.com/jbeda/geom"
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawNetwork(screen)
	g.drawPanel(screen)
	g.drawStatus(screen)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	t := time.Since(g.started).Seconds()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	const bands = 48
	bandHeight := float32(h) / bands
	for i := 0; i < bands; i++ {
		ratio := float64(i) / bands
		vector.DrawFilledRect(screen, 0, float32(i)*bandHeight, float32(w), bandHeight+1, backgroundColor(t, ratio), false)
	}
}

func (g *Game) drawNetwork(screen *ebiten.Image) {
	cam := g.viewport.Camera
	scale := cam.Scale()
	grow := pulse(g.level, config.PulseGain)
	clr := lineColor(g.lineColor, g.accentColor, g.level)

	for _, st := range g.net.States {
		a, b := st.Body.Ends()
		pa, pb := cam.Project(a), cam.Project(b)
		width := st.Body.Thickness * scale * grow
		vector.StrokeLine(screen, float32(pa.X), float32(pa.Y), float32(pb.X), float32(pb.Y), float32(width), clr, true)

		for _, c := range [...]geom.Coord{st.StartCap.Center, st.EndCap.Center} {
			p := cam.Project(c)
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(st.StartCap.Radius*scale*grow), clr, true)
		}
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	g.drawBrand(screen)
	for _, a := range g.page.Links {
		g.drawLink(screen, a)
	}
	g.drawButton(screen, g.page.Open)
}

func (g *Game) drawBrand(screen *ebiten.Image) {
	brand := g.page.Brand
	w := len(brand.Text)*nav.GlyphWidth + 2
	if g.brandImg == nil || g.brandImg.Bounds().Dx() != w {
		if g.brandImg != nil {
			g.brandImg.Deallocate()
		}
		g.brandImg = ebiten.NewImage(w, nav.GlyphHeight)
		ebitenutil.DebugPrint(g.brandImg, brand.Text)
	}

	// The brand is drawn at twice the debug font size and shrinks once a
	// nav link has been used.
	s := 2 * g.brandScale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(brand.Bounds.Min.X, brand.Bounds.Min.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.brandImg, op)
}

func (g *Game) drawLink(screen *ebiten.Image, a *nav.Element) {
	if g.hover == a {
		fillRect(screen, a.Bounds, color.RGBA{R: 255, G: 255, B: 255, A: 30})
	}
	ebitenutil.DebugPrintAt(screen, a.Text, int(a.Bounds.Min.X)+8, int(a.Bounds.Min.Y)+8)
}

func (g *Game) drawButton(screen *ebiten.Image, b *nav.Element) {
	// Button background
	var bgColor color.Color
	switch {
	case g.hover == b && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	case g.hover == b:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	fillRect(screen, b.Bounds, bgColor)

	r := b.Bounds
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Width()), float32(r.Height()), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	// Button text
	textWidth := len(b.Text) * nav.GlyphWidth
	textX := int(r.Min.X) + (int(r.Width())-textWidth)/2
	textY := int(r.Min.Y) + (int(r.Height())-nav.GlyphHeight)/2
	ebitenutil.DebugPrintAt(screen, b.Text, textX, textY)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf("%s  frame %d", formatDuration(time.Since(g.started)), g.net.Frame())
	switch {
	case !g.player.Loaded():
		status += " | O: open audio, Esc/Q: quit"
	case g.player.Playing():
		status += " | Playing - Space to pause, O to open another"
	default:
		status += " | Paused - Space to play, O to open another"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, screen.Bounds().Dy()-nav.GlyphHeight-4)
}

func fillRect(screen *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Width()), float32(r.Height()), clr, false)
}
