package sketch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a sketch run in a YAML file:
//
//	sketch: letters
//	width: 800
//	height: 800
//	seed: 42
//	iterations: 120
//	background: "#fdfdfb"
//	palette: ["#264653", "#2a9d8f", "#e9c46a", "#f4a261", "#e76f51"]
//	output: letters.png
//
// Zero fields inherit the sketch's own defaults.
type Config struct {
	Sketch     string   `yaml:"sketch"`
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Seed       int64    `yaml:"seed"`
	Iterations int      `yaml:"iterations"`
	Background string   `yaml:"background"`
	Palette    []string `yaml:"palette"`
	Output     string   `yaml:"output"`
}

// LoadConfig reads and validates a YAML run configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sketch: reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("sketch: parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sketch: config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks field ranges and color syntax. Whether the named
// sketch exists is the runner's concern, not the config's.
func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("negative canvas size %dx%d", c.Width, c.Height)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("negative iterations %d", c.Iterations)
	}
	if c.Background != "" {
		if _, err := ParseHex(c.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	for i, s := range c.Palette {
		if _, err := ParseHex(s); err != nil {
			return fmt.Errorf("palette[%d]: %w", i, err)
		}
	}
	return nil
}

// Params converts the config to render parameters. Validate must have
// passed; colors are assumed well-formed.
func (c *Config) Params() Params {
	p := Params{
		Width:      c.Width,
		Height:     c.Height,
		Iterations: c.Iterations,
		Seed:       c.Seed,
	}
	if c.Background != "" {
		p.Background = Hex(c.Background)
	}
	for _, s := range c.Palette {
		p.Palette = append(p.Palette, Hex(s))
	}
	return p
}
