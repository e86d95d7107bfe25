package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/callebjorkell/pixel-ring/internal/accel"
	"github.com/callebjorkell/pixel-ring/internal/demo"
	"github.com/callebjorkell/pixel-ring/internal/neopixel"
	"github.com/callebjorkell/pixel-ring/internal/tilt"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultBrightness = 0.1

type Config struct {
	Brightness float64 `yaml:"brightness"`
	Colors     struct {
		Half   string `yaml:"half"`
		Snake  string `yaml:"snake"`
		Side   string `yaml:"side"`
		Random string `yaml:"random"`
		Tilt   string `yaml:"tilt"`
	} `yaml:"colors"`
	Tilt struct {
		Strategy string `yaml:"strategy"`
	} `yaml:"tilt"`
	Sensor struct {
		Bus     string `yaml:"bus"`
		Address uint16 `yaml:"address"`
	} `yaml:"sensor"`
}

// Palette resolves the configured colors, falling back to the defaults for anything unset.
func (c Config) Palette() (demo.Palette, error) {
	p := demo.DefaultPalette
	entries := []struct {
		name  string
		value string
		dst   *neopixel.Color
	}{
		{"half", c.Colors.Half, &p.Half},
		{"snake", c.Colors.Snake, &p.Snake},
		{"side", c.Colors.Side, &p.Side},
		{"random", c.Colors.Random, &p.Random},
		{"tilt", c.Colors.Tilt, &p.Tilt},
	}
	for _, e := range entries {
		if e.value == "" {
			continue
		}
		color, err := neopixel.ParseColor(e.value)
		if err != nil {
			return p, fmt.Errorf("color %s: %w", e.name, err)
		}
		*e.dst = color
	}
	return p, nil
}

func readConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Infof("No configuration at %s, using defaults", path)
		return parseConfig(nil)
	}
	if err != nil {
		return nil, err
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{Brightness: defaultBrightness}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.Brightness < 0 || c.Brightness > 1 {
		return nil, fmt.Errorf("brightness must be between 0 and 1, got %v", c.Brightness)
	}
	if c.Tilt.Strategy == "" {
		c.Tilt.Strategy = tilt.DirectionalSegments
	}
	if _, err := tilt.StrategyByName(c.Tilt.Strategy); err != nil {
		return nil, err
	}
	if c.Sensor.Address == 0 {
		c.Sensor.Address = accel.DefaultAddress
	}
	if _, err := c.Palette(); err != nil {
		return nil, err
	}

	return c, nil
}
