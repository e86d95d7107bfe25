//go:build pi

package accel

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

type busDevice struct {
	*LIS3DH
	bus i2c.BusCloser
}

func (b *busDevice) Close() error {
	return b.bus.Close()
}

// Open initializes periph and the LIS3DH on the named I2C bus. An empty name picks the first bus.
func Open(busName string, addr uint16) (Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize periph: %w", err)
	}

	log.Infof("Opening I2C bus %q", busName)
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("could not open I2C bus %q: %w", busName, err)
	}

	l, err := NewLIS3DH(bus, addr)
	if err != nil {
		bus.Close()
		return nil, err
	}
	return &busDevice{LIS3DH: l, bus: bus}, nil
}
