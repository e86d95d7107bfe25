package neopixel

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// RingSize is the number of pixels on the board ring.
const RingSize = 10

var ErrIndexOutOfRange = errors.New("pixel index out of range")

// PixelBuffer is an ordered set of pixels where writes only become visible on Show.
type PixelBuffer interface {
	Len() int
	SetBrightness(level float64)
	DisableAutoWrite()
	SetPixel(index int, c Color) error
	Fill(c Color) error
	Show() error
}

type wsEngine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
}

// Strip keeps the pixel state in memory and pushes it to the engine on Show.
type Strip struct {
	ws         wsEngine
	pixels     []Color
	brightness float64
	autoWrite  bool
}

// NewStrip initializes the engine for a ring of count pixels. Like the boards it mirrors, a
// new strip starts at full brightness with auto write enabled.
func NewStrip(count int) (*Strip, error) {
	ws, err := newEngine(count)
	if err != nil {
		return nil, fmt.Errorf("could not create pixel engine: %w", err)
	}
	return newStrip(ws)
}

func newStrip(ws wsEngine) (*Strip, error) {
	if err := ws.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize pixel engine: %w", err)
	}
	return &Strip{
		ws:         ws,
		pixels:     make([]Color, len(ws.Leds(0))),
		brightness: 1,
		autoWrite:  true,
	}, nil
}

func (s *Strip) Len() int {
	return len(s.pixels)
}

func (s *Strip) SetBrightness(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	log.Debugf("Setting brightness to %.2f", level)
	s.brightness = level
}

func (s *Strip) DisableAutoWrite() {
	s.autoWrite = false
}

func (s *Strip) SetPixel(index int, c Color) error {
	if index < 0 || index >= len(s.pixels) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	s.pixels[index] = c
	return s.written()
}

func (s *Strip) Fill(c Color) error {
	for i := range s.pixels {
		s.pixels[i] = c
	}
	return s.written()
}

func (s *Strip) Show() error {
	leds := s.ws.Leds(0)
	for i, c := range s.pixels {
		leds[i] = withBrightness(c, s.brightness)
	}
	if err := s.ws.Render(); err != nil {
		return err
	}
	return s.ws.Wait()
}

// Pixel returns the buffered value at index, shown or not.
func (s *Strip) Pixel(index int) (Color, error) {
	if index < 0 || index >= len(s.pixels) {
		return Black, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return s.pixels[index], nil
}

// Close turns the ring off and releases the engine.
func (s *Strip) Close() {
	if err := s.Fill(Black); err != nil {
		log.Warn("Unable to clear pixels: ", err)
	}
	if err := s.Show(); err != nil {
		log.Warn("Unable to clear pixels: ", err)
	}
	s.ws.Fini()
}

func (s *Strip) written() error {
	if s.autoWrite {
		return s.Show()
	}
	return nil
}
