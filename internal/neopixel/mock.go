//go:build !pi

package neopixel

import (
	log "github.com/sirupsen/logrus"
)

type mockEngine struct {
	colors []uint32
}

func (d mockEngine) Init() error {
	log.Debug("neopixel: Init")
	return nil
}

func (d mockEngine) Render() error {
	log.Debugf("neopixel: Render %06x", d.colors)
	return nil
}

func (d mockEngine) Wait() error {
	return nil
}

func (d mockEngine) Fini() {
	log.Debug("neopixel: Fini")
}

func (d mockEngine) Leds(_ int) []uint32 {
	return d.colors
}

func newEngine(count int) (wsEngine, error) {
	return mockEngine{
		colors: make([]uint32, count),
	}, nil
}
