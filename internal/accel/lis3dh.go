package accel

import (
	"encoding/binary"
	"fmt"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddress of the LIS3DH on the Circuit Playground boards. Breakouts usually answer on 0x18.
const DefaultAddress = 0x19

const (
	regWhoAmI  = 0x0f
	regCtrl1   = 0x20
	regCtrl4   = 0x23
	regOutXL   = 0x28
	autoInc    = 0x80
	deviceID   = 0x33
	ctrl1Value = 0x77 // 400Hz, normal mode, x/y/z enabled
	ctrl4Value = 0x88 // block data update, high resolution, ±2g

	// Raw counts per g at ±2g, left aligned 16 bit samples.
	countsPerG = 16380
)

// LIS3DH reads acceleration from an ST LIS3DH over I2C.
type LIS3DH struct {
	dev i2c.Dev
}

var _ Accelerometer = &LIS3DH{}

func NewLIS3DH(bus i2c.Bus, addr uint16) (*LIS3DH, error) {
	l := &LIS3DH{dev: i2c.Dev{Bus: bus, Addr: addr}}

	id, err := l.readReg(regWhoAmI)
	if err != nil {
		return nil, fmt.Errorf("could not identify accelerometer at 0x%02x: %w", addr, err)
	}
	if id != deviceID {
		return nil, fmt.Errorf("unexpected device id 0x%02x at 0x%02x, not a LIS3DH", id, addr)
	}
	if err := l.writeReg(regCtrl1, ctrl1Value); err != nil {
		return nil, err
	}
	if err := l.writeReg(regCtrl4, ctrl4Value); err != nil {
		return nil, err
	}

	log.Infof("LIS3DH ready at 0x%02x", addr)
	return l, nil
}

func (l *LIS3DH) ReadAcceleration() (Sample, error) {
	raw := make([]byte, 6)
	if err := l.dev.Tx([]byte{regOutXL | autoInc}, raw); err != nil {
		return Sample{}, fmt.Errorf("could not read acceleration: %w", err)
	}

	axis := func(i int) float64 {
		v := int16(binary.LittleEndian.Uint16(raw[i:]))
		return float64(v) / countsPerG * StandardGravity
	}

	s := Sample{X: axis(0), Y: axis(2), Z: axis(4)}
	log.Debugf("Acceleration: %v", s)
	return s, nil
}

func (l *LIS3DH) readReg(reg byte) (byte, error) {
	r := make([]byte, 1)
	if err := l.dev.Tx([]byte{reg}, r); err != nil {
		return 0, err
	}
	return r[0], nil
}

func (l *LIS3DH) writeReg(reg, value byte) error {
	if err := l.dev.Tx([]byte{reg, value}, nil); err != nil {
		return fmt.Errorf("could not write register 0x%02x: %w", reg, err)
	}
	return nil
}
