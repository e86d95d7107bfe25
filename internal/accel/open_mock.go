//go:build !pi

package accel

import (
	log "github.com/sirupsen/logrus"
)

func Open(busName string, addr uint16) (Device, error) {
	log.Infof("Simulating accelerometer for bus %q at 0x%02x", busName, addr)
	return NewSimulated(), nil
}
