package pattern

import (
	"math/rand"
	"testing"
	"time"

	"github.com/callebjorkell/pixel-ring/internal/clock"
	"github.com/callebjorkell/pixel-ring/internal/neopixel"
	"github.com/callebjorkell/pixel-ring/internal/neopixel/neopixeltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer() (*Renderer, *neopixeltest.Recorder, *clock.Fake) {
	px := neopixeltest.NewRecorder(neopixel.RingSize)
	clk := &clock.Fake{}
	return NewRenderer(px, clk, 0.1).WithSource(rand.NewSource(42)), px, clk
}

func TestNewRendererConfiguresBuffer(t *testing.T) {
	_, px, _ := newTestRenderer()

	assert.Equal(t, 0.1, px.Brightness)
	assert.False(t, px.AutoWrite)
	assert.Empty(t, px.Frames)
}

func TestLight(t *testing.T) {
	tt := []struct {
		side int
		lit  []int
	}{
		{0, []int{1, 2, 3}},
		{1, []int{6, 7, 8}},
		{2, []int{4, 5}},
		{3, []int{0, 9}},
	}

	for _, tc := range tt {
		t.Run(sideName(tc.side), func(t *testing.T) {
			r, px, _ := newTestRenderer()
			px.Pixels[tc.lit[0]] = neopixel.Blue
			other := otherIndex(tc.lit)
			px.Pixels[other] = neopixel.Blue

			require.NoError(t, r.Light(tc.side, neopixel.Green))

			require.Len(t, px.Frames, 1)
			frame := px.Last()
			for _, i := range tc.lit {
				assert.Equal(t, neopixel.Green, frame[i])
			}
			assert.Equal(t, neopixel.Blue, frame[other], "pixels outside the side are left alone")
			assert.ElementsMatch(t, append(tc.lit, other), neopixeltest.Lit(frame))
		})
	}
}

func TestLightUnknownSide(t *testing.T) {
	r, px, _ := newTestRenderer()
	px.Pixels[4] = neopixel.Red

	require.NoError(t, r.Light(99, neopixel.Green))

	require.Len(t, px.Frames, 1, "an unknown side still flushes")
	assert.Equal(t, []int{4}, neopixeltest.Lit(px.Last()))
	assert.Equal(t, neopixel.Red, px.Last()[4])
}

func TestSnakeOutOfRange(t *testing.T) {
	for _, size := range []int{-1, 0, 1, 6, 11} {
		r, px, clk := newTestRenderer()

		require.NoError(t, r.Snake(size, neopixel.Yellow, 100*time.Millisecond))

		assert.Empty(t, px.Frames, "size %d", size)
		assert.Empty(t, clk.Slept, "size %d", size)
	}
}

func TestSnake(t *testing.T) {
	r, px, clk := newTestRenderer()
	px.Pixels[9] = neopixel.Red

	require.NoError(t, r.Snake(3, neopixel.Yellow, 100*time.Millisecond))

	require.Len(t, px.Frames, 8)
	for i, frame := range px.Frames {
		assert.Equal(t, []int{i, i + 1, i + 2}, neopixeltest.Lit(frame), "frame %d", i)
		assert.Equal(t, neopixel.Yellow, frame[i])
	}
	require.Len(t, clk.Slept, 8)
	assert.Equal(t, 800*time.Millisecond, clk.Total())
}

func TestSnakeLargest(t *testing.T) {
	r, px, _ := newTestRenderer()

	require.NoError(t, r.Snake(5, neopixel.Yellow, time.Millisecond))

	require.Len(t, px.Frames, 6)
	assert.Equal(t, []int{5, 6, 7, 8, 9}, neopixeltest.Lit(px.Last()))
}

func TestHalfPattern(t *testing.T) {
	r, px, clk := newTestRenderer()

	require.NoError(t, r.HalfPattern(neopixel.Red))

	require.Len(t, px.Frames, 6)
	expected := [][]int{
		{0, 9},
		{0, 1, 8, 9},
		{0, 1, 2, 7, 8, 9},
		{0, 1, 2, 3, 6, 7, 8, 9},
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	}
	for i, lit := range expected {
		assert.Equal(t, lit, neopixeltest.Lit(px.Frames[i]), "step %d", i)
	}
	assert.Empty(t, neopixeltest.Lit(px.Last()), "ring ends black")
	assert.Equal(t, []time.Duration{halfStep, halfStep, halfStep, halfStep, halfStep}, clk.Slept)
}

func TestRandomLight(t *testing.T) {
	r, px, clk := newTestRenderer()
	interval := 50 * time.Millisecond

	require.NoError(t, r.RandomLight(neopixel.Blue, interval))

	require.Len(t, px.Frames, 10)
	require.Len(t, clk.Slept, 10)
	for _, d := range clk.Slept {
		assert.Equal(t, interval, d)
	}
	for i := 0; i < 10; i += 2 {
		lit := neopixeltest.Lit(px.Frames[i])
		assert.Len(t, lit, 5, "on frame %d", i)
		for _, idx := range lit {
			assert.Equal(t, neopixel.Blue, px.Frames[i][idx])
		}
		assert.Empty(t, neopixeltest.Lit(px.Frames[i+1]), "off frame %d", i+1)
	}
}

func TestRandomLightKeepsStalePixels(t *testing.T) {
	r, px, _ := newTestRenderer()
	for i := range px.Pixels {
		px.Pixels[i] = neopixel.Red
	}

	require.NoError(t, r.RandomLight(neopixel.Blue, time.Millisecond))

	for i := 0; i < 10; i += 2 {
		blue := 0
		for _, c := range px.Frames[i] {
			if c == neopixel.Blue {
				blue++
			}
		}
		assert.Equal(t, 5, blue, "on frame %d", i)
	}
	assert.Len(t, neopixeltest.Lit(px.Frames[0]), 10, "pixels that were not picked stay lit")
	for _, c := range px.Last() {
		assert.Contains(t, []neopixel.Color{neopixel.Red, neopixel.Black}, c)
	}
}

func TestClear(t *testing.T) {
	r, px, _ := newTestRenderer()
	px.Pixels[2] = neopixel.White

	require.NoError(t, r.Clear())

	require.Len(t, px.Frames, 1)
	assert.Empty(t, neopixeltest.Lit(px.Last()))
}

func sideName(side int) string {
	return []string{"side 0", "side 1", "side 2", "side 3"}[side]
}

func otherIndex(lit []int) int {
	for i := 0; i < neopixel.RingSize; i++ {
		found := false
		for _, l := range lit {
			found = found || l == i
		}
		if !found {
			return i
		}
	}
	return -1
}
