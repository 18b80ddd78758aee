package nav

import (
	"github.com/iburimskiy/orbit-network/internal/config"
	"github.com/jbeda/geom"
)

// Approximate glyph box of the debug font the window draws with.
const (
	GlyphWidth  = 6
	GlyphHeight = 16

	linkPadding = 8
	margin      = 24
)

// Page is the document shown in the panel next to the network.
type Page struct {
	Doc   *Document
	Brand *Element
	Nav   *Element
	Links []*Element
	Open  *Element
}

// NewPage builds the panel document with the given nav link labels.
func NewPage(brand string, links ...string) *Page {
	d := NewDocument()
	p := &Page{Doc: d}

	header := d.Body.Append(NewElement("header"))
	p.Brand = header.Append(NewElement("div", "brand"))
	p.Brand.Text = brand

	p.Nav = header.Append(NewElement("nav"))
	for _, label := range links {
		a := p.Nav.Append(NewElement("a", "nav-link"))
		a.Text = label
		p.Links = append(p.Links, a)
	}

	p.Open = d.Body.Append(NewElement("button", "open"))
	p.Open.Text = "Open audio"
	return p
}

// Layout positions every element inside panel.
func (p *Page) Layout(panel geom.Rect) {
	p.Doc.Body.Bounds = panel

	x := panel.Min.X + margin
	y := panel.Min.Y + margin
	p.Brand.Bounds = textBox(x, y, p.Brand.Text)

	y += 2 * GlyphHeight
	navMin := geom.Coord{X: x, Y: y}
	for _, a := range p.Links {
		a.Bounds = textBox(x, y, a.Text)
		x = a.Bounds.Max.X + linkPadding
	}
	p.Nav.Bounds = geom.Rect{Min: navMin, Max: geom.Coord{X: x, Y: y + GlyphHeight + 2*linkPadding}}

	header := p.Brand.Parent()
	header.Bounds = geom.Rect{Min: panel.Min, Max: geom.Coord{X: panel.Max.X, Y: p.Nav.Bounds.Max.Y}}

	// The open button keeps a fixed size in the panel's bottom-left corner.
	bx := panel.Min.X + config.ButtonX
	by := panel.Max.Y - config.ButtonY - config.ButtonHeight
	p.Open.Bounds = geom.Rect{
		Min: geom.Coord{X: bx, Y: by},
		Max: geom.Coord{X: bx + config.ButtonWidth, Y: by + config.ButtonHeight},
	}
}

func textBox(x, y float64, text string) geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: x, Y: y},
		Max: geom.Coord{
			X: x + float64(len(text)*GlyphWidth+2*linkPadding),
			Y: y + GlyphHeight + 2*linkPadding,
		},
	}
}
