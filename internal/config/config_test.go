package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}

func clearEnv(t *testing.T) {
	for _, k := range []string{EnvOutputDir, EnvWidth, EnvSeed, EnvSupersample} {
		unsetenv(t, k)
	}
}

func write(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c, err := load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	if err != nil {
		t.Fatal(err)
	}
	if c.OutputDir != "img" || c.Width != 1200 || c.Seed != 1 || c.Supersample != 1 || !c.Manifest || c.Animation.Stride != 1 {
		t.Errorf("defaults = %+v", c)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	p := write(t, "ggart.yaml", `
output_dir: out
width: 640
seed: 7
collections: [repolygon, "spindles/spindles-instance-in-bone"]
manifest: false
animation:
  frames: true
  stride: 4
`)
	c, err := load(p, "")
	if err != nil {
		t.Fatal(err)
	}
	if c.OutputDir != "out" || c.Width != 640 || c.Seed != 7 || c.Manifest || !c.Animation.Frames || c.Animation.Stride != 4 {
		t.Errorf("loaded = %+v", c)
	}
	if c.Supersample != 1 {
		t.Errorf("unset supersample = %d, want default 1", c.Supersample)
	}
	if want := []string{"repolygon", "spindles/spindles-instance-in-bone"}; !slices.Equal(c.Collections, want) {
		t.Errorf("collections = %v", c.Collections)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	p := write(t, "ggart.yaml", "width: 640\noutput_dir: out\n")
	t.Setenv(EnvWidth, "300")
	t.Setenv(EnvSeed, "42")
	env := write(t, ".env", "GGART_OUTPUT_DIR=from-dotenv\nGGART_WIDTH=999\nGGART_SUPERSAMPLE=2\n")

	c, err := load(p, env)
	if err != nil {
		t.Fatal(err)
	}
	// The process environment wins over .env, which wins over the file.
	if c.Width != 300 || c.Seed != 42 || c.OutputDir != "from-dotenv" || c.Supersample != 2 {
		t.Errorf("merged = %+v", c)
	}
}

func TestBadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvWidth, "wide")
	if _, err := load("", ""); err == nil {
		t.Error("expected error for non-numeric width")
	}
}

func TestBadYAML(t *testing.T) {
	clearEnv(t)
	p := write(t, "ggart.yaml", "width: [1, 2\n")
	if _, err := load(p, ""); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
		ok   bool
	}{
		{"default", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"supersample", func(c *Config) { c.Supersample = 0 }, false},
		{"stride", func(c *Config) { c.Animation.Stride = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.edit(&c)
			err := c.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	c := Default()
	c.Width, c.Seed, c.Supersample = 10, 3, 2
	o := c.Options()
	if o.Width != 10 || o.Seed != 3 || o.Supersample != 2 {
		t.Errorf("Options() = %+v", o)
	}
}
