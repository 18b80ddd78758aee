package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/orbit-network/internal/broadcast"
	"github.com/iburimskiy/orbit-network/internal/config"
	"github.com/iburimskiy/orbit-network/internal/export"
	"github.com/iburimskiy/orbit-network/internal/game"
	"github.com/iburimskiy/orbit-network/internal/headless"
	"github.com/iburimskiy/orbit-network/internal/motion"
	"github.com/iburimskiy/orbit-network/internal/term"
	"github.com/pkg/errors"
)

func main() {
	cfg := config.Default()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Window width.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Window height.")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (0 = time based).")
	flag.StringVar(&cfg.LineColor, "line-color", cfg.LineColor, "Line colour as #rrggbb.")
	flag.StringVar(&cfg.AccentColor, "accent-color", cfg.AccentColor, "Accent colour as #rrggbb.")
	flag.BoolVar(&cfg.Headless, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", cfg.Hz, "Frame rate in headless and terminal mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.Uint64Var(&cfg.LogEvery, "log-every", cfg.LogEvery, "Frames between headless status lines (0 = quiet).")
	flag.StringVar(&cfg.Listen, "listen", "", "Serve frames over websocket at this address in headless mode.")
	flag.BoolVar(&cfg.Term, "term", false, "Draw in the terminal instead of a window.")
	flag.StringVar(&cfg.SVG, "svg", "", "Write the last frame as SVG to this file (headless mode).")
	flag.Parse()

	if err := run(cfg); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))

	switch {
	case cfg.Headless:
		return runHeadless(cfg, motion.NewNetwork(rng))
	case cfg.Term:
		return runTerm(cfg, motion.NewNetwork(rng))
	}

	g, err := game.New(cfg, rng)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Orbit Network - O: open audio, Space: play/pause, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runHeadless(cfg config.Config, n *motion.Network) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancelCause(sigCtx)
	defer cancel(nil)

	var sinks []headless.Sink
	if cfg.Listen != "" {
		hub := broadcast.NewHub()
		defer hub.Close()
		srv, err := broadcast.Listen(cfg.Listen, hub)
		if err != nil {
			return err
		}
		defer srv.Close()
		log.Printf("broadcast: serving frames on ws://%s%s", srv.Addr(), broadcast.FramesPath)
		go func() {
			if err, ok := <-srv.Err(); ok {
				cancel(err)
			}
		}()
		sinks = append(sinks, hub)
	}

	err := headless.Run(ctx, n, headless.Config{Hz: cfg.Hz, Ticks: cfg.Ticks, LogEvery: cfg.LogEvery}, sinks...)
	if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
		return cause
	}
	if cfg.SVG != "" && (err == nil || errors.Is(err, context.Canceled)) {
		if werr := writeSVG(cfg, n); werr != nil {
			return werr
		}
	}
	return err
}

func writeSVG(cfg config.Config, n *motion.Network) error {
	f, err := os.Create(cfg.SVG)
	if err != nil {
		return errors.Wrap(err, "create svg")
	}
	if err := export.WriteNetwork(f, n, cfg.LineColor); err != nil {
		f.Close()
		return err
	}
	log.Printf("svg: wrote frame %d to %s", n.Frame(), cfg.SVG)
	return f.Close()
}

func runTerm(cfg config.Config, n *motion.Network) error {
	line, accent, err := cfg.Colors()
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "terminal init")
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return term.Run(ctx, term.NewRenderer(screen, n, line, accent), cfg.Hz)
}
