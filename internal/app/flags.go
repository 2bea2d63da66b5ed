package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	World string
	Width int
	// Height is the grid height in cells; Width the grid width.
	Height int
	// Cell is the rendered size of one cell in pixels.
	Cell int
	Prob float64
	Rate int
	Seed int64
	// Cells is an explicit initial pattern of "row,col" pairs; when set it
	// overrides random sampling.
	Cells string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{World: "dense", Width: 128, Height: 96, Cell: 6, Prob: 0.1, Rate: 10, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.World, "world", c.World, "world variant to run (dense or sparse)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Cell, "cell", c.Cell, "rendered cell size in pixels")
	fs.Float64Var(&c.Prob, "p", c.Prob, "live probability for random initial states")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial state")
	fs.StringVar(&c.Cells, "cells", c.Cells, `initial pattern as "row,col" pairs, e.g. "1,2 2,2 3,2"`)
}

// WorldConfig lowers the flags into the key/value form the world factories
// consume.
func (c *Config) WorldConfig() map[string]string {
	m := map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"p":    strconv.FormatFloat(c.Prob, 'g', -1, 64),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
	if c.Cells != "" {
		m["cells"] = c.Cells
	}
	return m
}
