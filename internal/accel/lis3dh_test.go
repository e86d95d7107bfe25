package accel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

var initOps = []i2ctest.IO{
	{Addr: DefaultAddress, W: []byte{regWhoAmI}, R: []byte{deviceID}},
	{Addr: DefaultAddress, W: []byte{regCtrl1, ctrl1Value}},
	{Addr: DefaultAddress, W: []byte{regCtrl4, ctrl4Value}},
}

func TestReadAcceleration(t *testing.T) {
	ops := append([]i2ctest.IO{}, initOps...)
	ops = append(ops, i2ctest.IO{
		Addr: DefaultAddress,
		W:    []byte{regOutXL | autoInc},
		// x = +1g, y = -0.5g, z = 0
		R: []byte{0xfc, 0x3f, 0x02, 0xe0, 0x00, 0x00},
	})
	bus := &i2ctest.Playback{Ops: ops}

	l, err := NewLIS3DH(bus, DefaultAddress)
	require.NoError(t, err)

	s, err := l.ReadAcceleration()
	require.NoError(t, err)

	assert.InDelta(t, StandardGravity, s.X, 0.01)
	assert.InDelta(t, -StandardGravity/2, s.Y, 0.01)
	assert.InDelta(t, 0, s.Z, 0.001)
	assert.NoError(t, bus.Close())
}

func TestWrongDevice(t *testing.T) {
	bus := &i2ctest.Playback{Ops: []i2ctest.IO{
		{Addr: DefaultAddress, W: []byte{regWhoAmI}, R: []byte{0x44}},
	}}

	_, err := NewLIS3DH(bus, DefaultAddress)
	assert.Error(t, err)
}

type brokenBus struct{}

func (brokenBus) String() string                    { return "broken" }
func (brokenBus) Tx(_ uint16, _, _ []byte) error    { return errors.New("nack") }
func (brokenBus) SetSpeed(_ physic.Frequency) error { return nil }

func TestBusFailure(t *testing.T) {
	_, err := NewLIS3DH(brokenBus{}, DefaultAddress)
	assert.Error(t, err)
}

func TestSimulatedWraps(t *testing.T) {
	s := &Simulated{Samples: []Sample{{X: 1}, {X: 2}}}

	var got []float64
	for i := 0; i < 3; i++ {
		sample, err := s.ReadAcceleration()
		require.NoError(t, err)
		got = append(got, sample.X)
	}
	assert.Equal(t, []float64{1, 2, 1}, got)
	assert.NoError(t, s.Close())
}
