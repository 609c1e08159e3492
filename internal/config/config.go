package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 15
	DefaultHeight   = 15
	DefaultCellSize = 40
	DefaultColormap = "plasma"
)

// Config describes a visualizer session: grid dimensions, display options
// and an optional initial wall layout (explicit coordinates or a named
// preset).
type Config struct {
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	CellSize int      `yaml:"cell_size"`
	Colormap string   `yaml:"colormap"`
	Preset   string   `yaml:"preset"`
	Walls    [][2]int `yaml:"walls"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		CellSize: DefaultCellSize,
		Colormap: DefaultColormap,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Normalize clamps nonsensical values back to defaults so a partial or
// sloppy config file still yields a usable session.
func (c *Config) Normalize() {
	if c.Width < 1 {
		c.Width = DefaultWidth
	}
	if c.Height < 1 {
		c.Height = DefaultHeight
	}
	if c.CellSize < 1 {
		c.CellSize = DefaultCellSize
	}
	if c.Colormap == "" {
		c.Colormap = DefaultColormap
	}
}

// InitialWalls resolves the starting wall layout: explicit walls first,
// then the named preset. Unknown preset names yield no walls.
func (c *Config) InitialWalls() [][2]int {
	if len(c.Walls) > 0 {
		return c.Walls
	}
	if c.Preset != "" {
		return GetPreset(c.Preset, c.Width, c.Height)
	}
	return nil
}
