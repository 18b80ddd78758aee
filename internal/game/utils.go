package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// backgroundColor drifts slowly through dark blues over time t in seconds.
func backgroundColor(t, ratio float64) color.Color {
	hue := 220 + 20*math.Sin(t*0.05+ratio*math.Pi)
	value := 0.08 + 0.04*math.Cos(t*0.03+ratio*math.Pi)
	return colorful.Hsv(hue, 0.6, value)
}

// lineColor blends the base colour toward the accent as the level rises.
func lineColor(base, accent colorful.Color, level float64) color.Color {
	return base.BlendLab(accent, clamp01(level)).Clamped()
}

// pulse is the thickness multiplier for an audio level.
func pulse(level, gain float64) float64 {
	return 1 + clamp01(level)*gain
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
