// Package headless steps the network on a ticker without opening a window.
package headless

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/iburimskiy/orbit-network/internal/motion"
	"github.com/pkg/errors"
)

// Config controls the no-window runner.
type Config struct {
	Hz       int
	Ticks    uint64 // stop after this many frames, 0 runs until ctx ends
	LogEvery uint64 // frames between status lines, 0 disables them
}

// Sink receives every frame after it has been stepped.
type Sink interface {
	Publish(n *motion.Network)
}

// Run steps n once per tick using wall-clock deltas until ctx is done or
// cfg.Ticks frames have been produced.
func Run(ctx context.Context, n *motion.Network, cfg Config, sinks ...Sink) error {
	if cfg.Hz <= 0 {
		return errors.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()
	clock := motion.NewFrameClock(time.Now())

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			delta := clock.Tick(now)
			n.Step(delta)
			for _, s := range sinks {
				s.Publish(n)
			}
			tick++
			if cfg.LogEvery > 0 && tick%cfg.LogEvery == 0 {
				log.Printf("headless: frame %d delta %.3f angles %s", n.Frame(), delta, angles(n))
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func angles(n *motion.Network) string {
	parts := make([]string, len(n.Points))
	for i, p := range n.Points {
		parts[i] = fmt.Sprintf("%.3f", p.Angle)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
