// Package game hosts the orbit network in an ebiten window, next to the page
// panel with its nav links.
package game

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/orbit-network/internal/audio"
	"github.com/iburimskiy/orbit-network/internal/config"
	"github.com/iburimskiy/orbit-network/internal/motion"
	"github.com/iburimskiy/orbit-network/internal/nav"
	"github.com/iburimskiy/orbit-network/internal/view"
	"github.com/jbeda/geom"
	"github.com/lucasb-eyer/go-colorful"
)

// Game implements ebiten.Game.
type Game struct {
	net      *motion.Network
	clock    *motion.FrameClock
	viewport *view.Viewport
	page     *nav.Page
	started  time.Time

	// audio pulse
	player *audio.Player
	meter  *audio.Meter
	level  float64

	// brand shrink animation
	spring     harmonica.Spring
	brandScale float64
	brandVel   float64
	brandImg   *ebiten.Image

	hover *nav.Element

	lineColor   colorful.Color
	accentColor colorful.Color
	lastErr     error
}

func New(cfg config.Config, rng *rand.Rand) (*Game, error) {
	line, accent, err := cfg.Colors()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	g := &Game{
		net:         motion.NewNetwork(rng),
		clock:       motion.NewFrameClock(now),
		viewport:    view.NewViewport(cfg.Width, cfg.Height),
		page:        nav.NewPage("Orbit Network", "Home", "Work", "Contact"),
		started:     now,
		player:      audio.NewPlayer(),
		meter:       audio.NewMeter(),
		spring:      harmonica.NewSpring(harmonica.FPS(ebiten.DefaultTPS), 6.0, 0.7),
		brandScale:  1,
		lineColor:   line,
		accentColor: accent,
	}
	g.page.Layout(g.viewport.Panel)
	nav.NewHighlighter().Install(g.page.Doc)
	g.page.Open.AddEventListener("click", func(*nav.Event) {
		g.openAudio()
	})
	return g, nil
}

func (g *Game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()
	cursor := geom.Coord{X: float64(mouseX), Y: float64(mouseY)}
	g.hover = g.page.Doc.HitTest(cursor)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.page.Doc.Click(g.hover)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.openAudio()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.player.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.player.Close()
		return ebiten.Termination
	}

	// Points first, then segments, then the frame is drawn.
	g.net.Step(g.clock.Tick(time.Now()))

	g.level = g.meter.Update(g.player.Samples(2048))

	target := 1.0
	if g.page.Brand.HasClass(nav.SmallClass) {
		target = config.BrandSmallScale
	}
	g.brandScale, g.brandVel = g.spring.Update(g.brandScale, g.brandVel, target)
	return nil
}

// Layout doubles as the resize notification.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.viewport.Resize(outsideWidth, outsideHeight) {
		g.page.Layout(g.viewport.Panel)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) openAudio() {
	if err := g.player.OpenDialog(); err != nil {
		log.Printf("audio: %v", err)
		g.lastErr = err
		return
	}
	g.lastErr = nil
	g.meter.Reset()
}
