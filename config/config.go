// Package config loads the demo's YAML configuration: an embedded default
// with user files decoded on top of it in order.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DEFAULT []byte

type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Title      string `yaml:"title"`
}

type Render struct {
	TPS           int    `yaml:"tps"`
	VSync         bool   `yaml:"vsync"`
	ShowFPS       bool   `yaml:"show_fps"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	// Bubbles is the size of the screen-space bubble overlay. Zero disables it.
	Bubbles       int    `yaml:"bubbles"`
	BubbleTexture string `yaml:"bubble_texture"`
}

type Data struct {
	// Dir holds the Cmfs, Entities and Textures directories.
	Dir             string `yaml:"dir"`
	VerifyChecksums bool   `yaml:"verify_checksums"`
}

type Log struct {
	Level      string `yaml:"level"`
	Debug      bool   `yaml:"debug"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type Game struct {
	World    string  `yaml:"world"`
	Player   string  `yaml:"player"`
	PlayerX  float64 `yaml:"player_x"`
	PlayerY  float64 `yaml:"player_y"`
	LeftKey  string  `yaml:"left_key"`
	RightKey string  `yaml:"right_key"`
}

type Config struct {
	Window Window `yaml:"window"`
	Render Render `yaml:"render"`
	Data   Data   `yaml:"data"`
	Log    Log    `yaml:"log"`
	Game   Game   `yaml:"game"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	var c Config
	if err := decode(bytes.NewReader(DEFAULT), &c); err != nil {
		return nil, fmt.Errorf("config: invalid default config: %w", err)
	}
	c.normalize()
	return &c, nil
}

// Load reads the provided configuration files in order on top of the
// default. Keys absent from a file keep their previous value.
func Load(paths ...string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: could not open %s: %w", path, err)
		}
		err = decode(f, c)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("config: could not process config file %s: %w", path, err)
		}
	}

	c.normalize()
	return c, nil
}

// decode decodes one YAML document into c, rejecting unknown keys. An empty
// document changes nothing.
func decode(r io.Reader, c *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) normalize() {
	c.Window.Width = max(c.Window.Width, 0)
	c.Window.Height = max(c.Window.Height, 0)
	c.Render.TPS = max(c.Render.TPS, 1)
	c.Render.Bubbles = max(c.Render.Bubbles, 0)
	c.Log.MaxSizeMB = max(c.Log.MaxSizeMB, 0)
	c.Log.MaxBackups = max(c.Log.MaxBackups, 0)
	c.Log.MaxAgeDays = max(c.Log.MaxAgeDays, 0)
}
