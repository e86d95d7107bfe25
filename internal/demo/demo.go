// Package demo runs the animation cycle on the ring until it is told to stop.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/callebjorkell/pixel-ring/internal/accel"
	"github.com/callebjorkell/pixel-ring/internal/clock"
	"github.com/callebjorkell/pixel-ring/internal/neopixel"
	"github.com/callebjorkell/pixel-ring/internal/pattern"
	"github.com/callebjorkell/pixel-ring/internal/tilt"
	log "github.com/sirupsen/logrus"
)

const (
	snakeSize      = 3
	snakeInterval  = 200 * time.Millisecond
	randomInterval = 250 * time.Millisecond
	effectPause    = 500 * time.Millisecond
	cyclePause     = 100 * time.Millisecond
	demoSide       = 0
)

// Palette holds the color of each effect in the cycle.
type Palette struct {
	Half   neopixel.Color
	Snake  neopixel.Color
	Side   neopixel.Color
	Random neopixel.Color
	Tilt   neopixel.Color
}

var DefaultPalette = Palette{
	Half:   neopixel.Red,
	Snake:  neopixel.Yellow,
	Side:   neopixel.Green,
	Random: neopixel.Blue,
	Tilt:   neopixel.White,
}

type Loop struct {
	renderer *pattern.Renderer
	mapper   *tilt.Mapper
	sensor   accel.Accelerometer
	clock    clock.Clock
	palette  Palette
	cycles   int
}

func NewLoop(r *pattern.Renderer, m *tilt.Mapper, sensor accel.Accelerometer, clk clock.Clock, p Palette) *Loop {
	return &Loop{
		renderer: r,
		mapper:   m,
		sensor:   sensor,
		clock:    clk,
		palette:  p,
	}
}

// Run repeats the cycle until ctx is done. The context is only checked between cycles, a
// started cycle always completes.
func (l *Loop) Run(ctx context.Context) error {
	log.Info("Starting pixel demo")
	for {
		select {
		case <-ctx.Done():
			log.Infof("Stopping pixel demo after %d cycles", l.cycles)
			return nil
		default:
		}

		if err := l.Cycle(); err != nil {
			return fmt.Errorf("cycle %d failed: %w", l.cycles+1, err)
		}
	}
}

// Cycle runs every effect once, clearing the ring in between. Only cycles that run to the
// end are counted.
func (l *Loop) Cycle() error {
	log.Debugf("Cycle %d", l.cycles+1)

	steps := []func() error{
		func() error { return l.renderer.HalfPattern(l.palette.Half) },
		l.clearAndPause,
		func() error { return l.renderer.Snake(snakeSize, l.palette.Snake, snakeInterval) },
		l.clearAndPause,
		func() error { return l.renderer.Light(demoSide, l.palette.Side) },
		l.pause,
		l.renderer.Clear,
		func() error { return l.renderer.RandomLight(l.palette.Random, randomInterval) },
		l.renderer.Clear,
		l.tiltLight,
		l.renderer.Clear,
		l.tiltFeedback,
		l.renderer.Clear,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	l.clock.Sleep(cyclePause)
	l.cycles++
	return nil
}

func (l *Loop) tiltLight() error {
	s, err := l.sensor.ReadAcceleration()
	if err != nil {
		return err
	}
	return l.mapper.Light(s, l.palette.Tilt)
}

func (l *Loop) tiltFeedback() error {
	s, err := l.sensor.ReadAcceleration()
	if err != nil {
		return err
	}
	return l.mapper.ControlFeedbackY(s.Y)
}

func (l *Loop) clearAndPause() error {
	if err := l.renderer.Clear(); err != nil {
		return err
	}
	return l.pause()
}

func (l *Loop) pause() error {
	l.clock.Sleep(effectPause)
	return nil
}
