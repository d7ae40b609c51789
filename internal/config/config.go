// Package config loads ggart settings from an optional YAML file, a .env
// file and GGART_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggart"
)

// Environment variables that override the file.
const (
	EnvOutputDir   = "GGART_OUTPUT_DIR"
	EnvWidth       = "GGART_WIDTH"
	EnvSeed        = "GGART_SEED"
	EnvSupersample = "GGART_SUPERSAMPLE"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "ggart.yaml"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Animation controls the animate command.
type Animation struct {
	// Frames also writes every frame as a PNG.
	Frames bool `yaml:"frames"`
	// Stride keeps every Stride-th frame in the GIF.
	Stride int `yaml:"stride"`
}

// Config is the merged configuration.
type Config struct {
	OutputDir   string    `yaml:"output_dir"`
	Width       int       `yaml:"width"`
	Seed        uint64    `yaml:"seed"`
	Supersample int       `yaml:"supersample"`
	Collections []string  `yaml:"collections"`
	Manifest    bool      `yaml:"manifest"`
	Animation   Animation `yaml:"animation"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		OutputDir:   "img",
		Width:       ggart.DefaultWidth,
		Seed:        ggart.DefaultSeed,
		Supersample: 1,
		Manifest:    true,
		Animation:   Animation{Stride: 1},
	}
}

// Load reads path if it exists, then applies .env and the environment.
// A missing file is not an error.
func Load(path string) (Config, error) {
	return load(path, ".env")
}

func load(path, envFile string) (Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return c, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &c); err != nil {
				return c, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	for _, e := range []struct {
		name string
		dst  *int
	}{
		{EnvWidth, &c.Width},
		{EnvSupersample, &c.Supersample},
	} {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
		*e.dst = n
	}
	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = n
	}
	return nil
}

// Validate checks the numeric settings.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width %d must be positive", ErrInvalid, c.Width)
	case c.Supersample < 1:
		return fmt.Errorf("%w: supersample %d must be at least 1", ErrInvalid, c.Supersample)
	case c.Animation.Stride < 1:
		return fmt.Errorf("%w: animation stride %d must be at least 1", ErrInvalid, c.Animation.Stride)
	}
	return nil
}

// Options converts the render settings.
func (c Config) Options() ggart.Options {
	return ggart.Options{Width: c.Width, Seed: c.Seed, Supersample: c.Supersample}
}
