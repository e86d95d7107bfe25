// Package tilt turns accelerometer readings into light on the ring.
package tilt

import (
	"fmt"
	"math"
	"sort"

	"github.com/callebjorkell/pixel-ring/internal/accel"
	"github.com/callebjorkell/pixel-ring/internal/neopixel"
	log "github.com/sirupsen/logrus"
)

const (
	// Threshold in m/s² a reading has to pass before it counts as a tilt.
	Threshold = 3.0
	// MaxTilt is the reading at which the board stands on its edge.
	MaxTilt = 9.81
)

const (
	DirectionalSegments = "directional-segments"
	ZonedFill           = "zoned-fill"
)

// Strategy lights the ring for one reading. Strategies start from a black ring and flush once.
type Strategy func(px neopixel.PixelBuffer, s accel.Sample, c neopixel.Color) error

var strategies = map[string]Strategy{
	DirectionalSegments: directionalSegments,
	ZonedFill:           zonedFill,
}

// StrategyByName looks up one of the registered strategies.
func StrategyByName(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown tilt strategy %q, expected one of %v", name, StrategyNames())
	}
	return s, nil
}

func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for n := range strategies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type Mapper struct {
	pixels   neopixel.PixelBuffer
	strategy Strategy
}

// NewMapper sets the brightness and switches the buffer to explicit flushing.
func NewMapper(px neopixel.PixelBuffer, brightness float64, strategy Strategy) *Mapper {
	px.SetBrightness(brightness)
	px.DisableAutoWrite()
	return &Mapper{pixels: px, strategy: strategy}
}

func (m *Mapper) Light(s accel.Sample, c neopixel.Color) error {
	return m.strategy(m.pixels, s, c)
}

// ControlFeedbackY fills the ring with blue, brighter the further the board tilts along y.
// Readings outside ±MaxTilt are ignored without a flush.
func (m *Mapper) ControlFeedbackY(y float64) error {
	if math.IsNaN(y) || y < -MaxTilt || y > MaxTilt {
		log.Warnf("Acceleration %.2f outside ±%.2f, ignoring", y, MaxTilt)
		return nil
	}

	intensity := int(math.Round(math.Abs(y) / MaxTilt * 255))
	c := neopixel.RGB(0, 0, intensity)
	log.Debugf("Feedback for y=%.2f: %v", y, c)

	if err := m.pixels.Fill(c); err != nil {
		return err
	}
	return m.pixels.Show()
}

// directionalSegments lights the side of the ring facing the tilt, first match wins.
func directionalSegments(px neopixel.PixelBuffer, s accel.Sample, c neopixel.Color) error {
	if err := px.Fill(neopixel.Black); err != nil {
		return err
	}

	var indices []int
	switch {
	case s.X < -Threshold && s.X < s.Y:
		indices = []int{6, 7, 8}
	case s.X > Threshold && s.X > s.Y:
		indices = []int{1, 2, 3}
	case s.Y > Threshold && s.Y > s.X:
		indices = []int{4, 5}
	case s.Y < -Threshold && s.Y < s.X:
		indices = []int{0, 9}
	}

	log.Debugf("Tilt %v lights %v", s, indices)
	for _, i := range indices {
		if err := px.SetPixel(i, c); err != nil {
			return err
		}
	}
	return px.Show()
}

// zonedFill colors the whole ring by tilt direction and ignores the given color.
func zonedFill(px neopixel.PixelBuffer, s accel.Sample, _ neopixel.Color) error {
	if err := px.Fill(neopixel.Black); err != nil {
		return err
	}

	zone := neopixel.Black
	switch {
	case s.X < -Threshold:
		zone = neopixel.Green
	case s.X > Threshold:
		zone = neopixel.Red
	case s.Y < -Threshold:
		zone = neopixel.Magenta
	case s.Y > Threshold:
		zone = neopixel.Cyan
	}

	log.Debugf("Tilt %v fills %v", s, zone)
	if zone != neopixel.Black {
		if err := px.Fill(zone); err != nil {
			return err
		}
	}
	return px.Show()
}
