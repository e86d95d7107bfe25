// Package neopixeltest provides a PixelBuffer that records every flushed frame.
package neopixeltest

import (
	"fmt"

	"github.com/callebjorkell/pixel-ring/internal/neopixel"
)

type Recorder struct {
	Pixels     []neopixel.Color
	Frames     [][]neopixel.Color
	Brightness float64
	AutoWrite  bool
}

var _ neopixel.PixelBuffer = &Recorder{}

func NewRecorder(size int) *Recorder {
	return &Recorder{
		Pixels:     make([]neopixel.Color, size),
		Brightness: 1,
		AutoWrite:  true,
	}
}

func (r *Recorder) Len() int {
	return len(r.Pixels)
}

func (r *Recorder) SetBrightness(level float64) {
	r.Brightness = level
}

func (r *Recorder) DisableAutoWrite() {
	r.AutoWrite = false
}

func (r *Recorder) SetPixel(index int, c neopixel.Color) error {
	if index < 0 || index >= len(r.Pixels) {
		return fmt.Errorf("%w: %d", neopixel.ErrIndexOutOfRange, index)
	}
	r.Pixels[index] = c
	return r.written()
}

func (r *Recorder) Fill(c neopixel.Color) error {
	for i := range r.Pixels {
		r.Pixels[i] = c
	}
	return r.written()
}

func (r *Recorder) Show() error {
	frame := make([]neopixel.Color, len(r.Pixels))
	copy(frame, r.Pixels)
	r.Frames = append(r.Frames, frame)
	return nil
}

// Last returns the most recently flushed frame, or nil if nothing was flushed.
func (r *Recorder) Last() []neopixel.Color {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1]
}

// Lit lists the indices in frame that are not black.
func Lit(frame []neopixel.Color) []int {
	lit := []int{}
	for i, c := range frame {
		if c != neopixel.Black {
			lit = append(lit, i)
		}
	}
	return lit
}

func (r *Recorder) written() error {
	if r.AutoWrite {
		return r.Show()
	}
	return nil
}
