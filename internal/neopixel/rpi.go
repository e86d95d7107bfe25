//go:build pi

package neopixel

import (
	ws "github.com/rpi-ws281x/rpi-ws281x-go"
)

// Brightness is scaled per pixel by the Strip, the channel itself always runs at full.
const channelBrightness = 255

func newEngine(count int) (wsEngine, error) {
	opt := ws.DefaultOptions
	opt.Channels[0].Brightness = channelBrightness
	opt.Channels[0].LedCount = count

	dev, err := ws.MakeWS2811(&opt)
	if err != nil {
		return nil, err
	}
	return dev, nil
}
