package config

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Canvas takes half the viewport above this width
	WideBreakpoint = 991

	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Open button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	// Network parameters
	PointCount       = 7
	Radius           = 2.0
	MinSpeed         = 0.0015
	MaxSpeed         = 0.019
	MinDifference    = 0.0025
	MaxSpeedAttempts = 40
	TimeScale        = 0.65
	LineThickness    = 0.025
	MaxDelta         = 2.0

	// Camera
	CameraFOV      = 75.0
	CameraDistance = 5.0

	// Audio pulse
	PulseGain = 2.5

	// Brand shrink
	BrandSmallScale = 0.6
)

// ReferenceFrame is the frame duration that maps to a delta of 1.0.
const ReferenceFrame = 16666 * time.Microsecond

// Config holds the settings a run can override from the command line.
type Config struct {
	Width       int
	Height      int
	Seed        uint64
	LineColor   string
	AccentColor string

	Headless bool
	Hz       int
	Ticks    uint64
	LogEvery uint64
	Listen   string

	Term bool
	SVG  string
}

func Default() Config {
	return Config{
		Width:       WindowWidth,
		Height:      WindowHeight,
		LineColor:   "#ffffff",
		AccentColor: "#5ec8ff",
		Hz:          60,
		LogEvery:    60,
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Hz <= 0 {
		return errors.Errorf("invalid tick rate: %d", c.Hz)
	}
	if c.Headless && c.Term {
		return errors.New("-headless and -term are mutually exclusive")
	}
	if c.Listen != "" && !c.Headless {
		return errors.New("-listen requires -headless")
	}
	if _, _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

// Colors parses the line and accent colours.
func (c Config) Colors() (line, accent colorful.Color, err error) {
	line, err = colorful.Hex(c.LineColor)
	if err != nil {
		return line, accent, errors.Wrapf(err, "line color %q", c.LineColor)
	}
	accent, err = colorful.Hex(c.AccentColor)
	if err != nil {
		return line, accent, errors.Wrapf(err, "accent color %q", c.AccentColor)
	}
	return line, accent, nil
}
