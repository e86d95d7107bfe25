package neopixel

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a single RGB pixel value.
type Color struct {
	R, G, B uint8
}

var (
	Black   = Color{}
	Red     = Color{R: 0xff}
	Green   = Color{G: 0xff}
	Blue    = Color{B: 0xff}
	Yellow  = Color{R: 0xff, G: 0xff}
	Magenta = Color{R: 0xff, B: 0xff}
	Cyan    = Color{G: 0xff, B: 0xff}
	White   = Color{R: 0xff, G: 0xff, B: 0xff}
)

// RGB builds a Color, clamping every channel into [0,255].
func RGB(r, g, b int) Color {
	return Color{R: clamp(r), G: clamp(g), B: clamp(b)}
}

// ParseColor reads a hex color such as "#ff8000".
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Black, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Uint32 packs the color as 0xRRGGBB, the layout the ws281x engine expects.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", c.Uint32())
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}

// Get the same color, but with a lower or equal brightness, where 1 is the same as the input.
func withBrightness(c Color, level float64) uint32 {
	if level >= 1 {
		return c.Uint32()
	}
	if level <= 0 {
		return 0
	}

	scale := func(v uint8) uint32 {
		return uint32(float64(v) * level)
	}

	return scale(c.R)<<16 | scale(c.G)<<8 | scale(c.B)
}
