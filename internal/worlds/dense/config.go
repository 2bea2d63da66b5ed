package dense

import (
	"fmt"
	"strconv"

	"golife/internal/core"
)

// Config holds parameters for the bounded grid world.
type Config struct {
	Width  int
	Height int
	Prob   float64
	Seed   int64

	// Cells, when non-empty, seeds the world with an explicit pattern
	// instead of random sampling.
	Cells []core.Coordinate
}

// DefaultConfig returns the default configuration. The 0.1 live probability
// matches a one-in-ten draw per cell.
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
// is given, a seeded random fill otherwise. Pattern cells must lie inside
// the configured grid.
func NewWithConfig(c Config) (*World, error) {
	if len(c.Cells) == 0 {
		return Random(c.Width, c.Height, c.Prob, c.Seed), nil
	}
	raw := make([][]uint8, c.Height)
	for i := range raw {
		raw[i] = make([]uint8, c.Width)
	}
	for _, cell := range c.Cells {
		if cell.Row < 0 || cell.Row >= c.Height || cell.Col < 0 || cell.Col >= c.Width {
			return nil, fmt.Errorf("cell (%d,%d) outside %dx%d grid: %w",
				cell.Row, cell.Col, c.Width, c.Height, core.ErrValueOutOfRange)
		}
		raw[cell.Row][cell.Col] = 1
	}
	w, err := New(raw)
	if err != nil {
		return nil, err
	}
	w.prob = c.Prob
	return w, nil
}

func init() {
	core.Register("dense", func(cfg map[string]string) (core.World, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return NewWithConfig(c)
	})
}
