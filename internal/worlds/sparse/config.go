package sparse

import (
	"strconv"

	"golife/internal/core"
)

// Config holds parameters for the unbounded world. Width and Height bound
// only the random sampling window, never the simulation.
type Config struct {
	Width  int
	Height int
	Prob   float64
	Seed   int64

	Cells []core.Coordinate
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 96, Prob: 0.1, Seed: 42}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["p"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Prob = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["cells"]; ok && v != "" {
		cells, err := core.ParseCells(v)
		if err != nil {
			return c, err
		}
		c.Cells = cells
	}
	return c, nil
}

// NewWithConfig builds a World from a Config: an explicit pattern when one
// is given, a seeded random sample of the window otherwise.
func NewWithConfig(c Config) *World {
	if len(c.Cells) > 0 {
		w := New(c.Cells)
		w.prob = c.Prob
		w.window = core.Size{W: c.Width, H: c.Height}
		return w
	}
	return Random(c.Width, c.Height, c.Prob, c.Seed)
}

func init() {
	core.Register("sparse", func(cfg map[string]string) (core.World, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return NewWithConfig(c), nil
	})
}
