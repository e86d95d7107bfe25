// Package pattern holds the ring animations. Every animation leaves its last frame flushed
// and blocks on the clock between frames.
package pattern

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/callebjorkell/pixel-ring/internal/clock"
	"github.com/callebjorkell/pixel-ring/internal/neopixel"
	log "github.com/sirupsen/logrus"
)

const (
	halfStep     = 500 * time.Millisecond
	randomRounds = 5
	randomPicks  = 5
	minSnake     = 2
)

// Sides maps a side of the board to the ring indices along it.
var Sides = map[int][]int{
	0: {1, 2, 3},
	1: {6, 7, 8},
	2: {4, 5},
	3: {0, 9},
}

type Renderer struct {
	pixels neopixel.PixelBuffer
	clock  clock.Clock
	rand   *rand.Rand
}

// NewRenderer sets the brightness and switches the buffer to explicit flushing.
func NewRenderer(px neopixel.PixelBuffer, clk clock.Clock, brightness float64) *Renderer {
	px.SetBrightness(brightness)
	px.DisableAutoWrite()
	return &Renderer{
		pixels: px,
		clock:  clk,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithSource replaces the random source used by RandomLight.
func (r *Renderer) WithSource(src rand.Source) *Renderer {
	r.rand = rand.New(src)
	return r
}

// HalfPattern lights the ring in symmetric pairs from both ends inwards, then clears it.
func (r *Renderer) HalfPattern(c neopixel.Color) error {
	log.Debugf("Half pattern in %v", c)
	n := r.pixels.Len()
	for i := 0; i < n/2; i++ {
		if err := r.set(c, i, n-1-i); err != nil {
			return err
		}
		if err := r.pixels.Show(); err != nil {
			return err
		}
		r.clock.Sleep(halfStep)
	}
	return r.Clear()
}

// Light sets the pixels of one side and flushes, leaving the rest of the ring as it was. An
// unknown side changes nothing but is still flushed.
func (r *Renderer) Light(side int, c neopixel.Color) error {
	indices, ok := Sides[side]
	if !ok {
		log.Warnf("Unknown side %d, nothing to light", side)
	}
	if err := r.set(c, indices...); err != nil {
		return err
	}
	return r.pixels.Show()
}

// Snake slides a block of size pixels once across the ring, from index 0 to the end. Sizes
// outside [2, n/2] do nothing at all.
func (r *Renderer) Snake(size int, c neopixel.Color, interval time.Duration) error {
	n := r.pixels.Len()
	if size < minSnake || size > n/2 {
		log.Warnf("Snake size %d outside [%d, %d], skipping", size, minSnake, n/2)
		return nil
	}

	log.Debugf("Snake of %d in %v", size, c)
	for i := 0; i <= n-size; i++ {
		if err := r.pixels.Fill(neopixel.Black); err != nil {
			return err
		}
		for j := i; j < i+size; j++ {
			if err := r.pixels.SetPixel(j, c); err != nil {
				return err
			}
		}
		if err := r.pixels.Show(); err != nil {
			return err
		}
		r.clock.Sleep(interval)
	}
	return nil
}

// RandomLight blinks five distinct random pixels, five times over. Only the picked pixels are
// turned off again, anything lit before the call stays lit.
func (r *Renderer) RandomLight(c neopixel.Color, interval time.Duration) error {
	n := r.pixels.Len()
	picks := randomPicks
	if picks > n {
		picks = n
	}

	for round := 0; round < randomRounds; round++ {
		indices := r.rand.Perm(n)[:picks]
		log.Debugf("Random light %v on %v", c, indices)

		if err := r.flash(indices, c); err != nil {
			return err
		}
		r.clock.Sleep(interval)
		if err := r.flash(indices, neopixel.Black); err != nil {
			return err
		}
		r.clock.Sleep(interval)
	}
	return nil
}

// Clear blacks out the whole ring and flushes.
func (r *Renderer) Clear() error {
	if err := r.pixels.Fill(neopixel.Black); err != nil {
		return err
	}
	return r.pixels.Show()
}

func (r *Renderer) flash(indices []int, c neopixel.Color) error {
	if err := r.set(c, indices...); err != nil {
		return err
	}
	return r.pixels.Show()
}

func (r *Renderer) set(c neopixel.Color, indices ...int) error {
	for _, i := range indices {
		if err := r.pixels.SetPixel(i, c); err != nil {
			return fmt.Errorf("could not set pixel: %w", err)
		}
	}
	return nil
}
