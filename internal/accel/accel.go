package accel

import (
	"fmt"
	"io"
)

// StandardGravity in m/s².
const StandardGravity = 9.80665

// Sample is a single acceleration reading in m/s².
type Sample struct {
	X, Y, Z float64
}

func (s Sample) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", s.X, s.Y, s.Z)
}

// Accelerometer is polled synchronously, one reading per call.
type Accelerometer interface {
	ReadAcceleration() (Sample, error)
}

// Device is an Accelerometer that holds on to a hardware resource.
type Device interface {
	Accelerometer
	io.Closer
}
