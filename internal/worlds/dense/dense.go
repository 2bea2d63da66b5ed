// Package dense implements Conway's Game of Life on a bounded rectangular
// grid. The universe is closed: coordinates outside the grid read as dead,
// there is no wraparound.
package dense

import (
	"fmt"

	"golife/internal/core"
	rng "golife/pkg/core"
)

// World holds one generation of a bounded grid. Each Step computes a fresh
// generation and reseats the reference; a generation is never mutated after
// it is built. Not safe for concurrent use.
type World struct {
	w, h int
	cur  []uint8

	prob float64
}

// New constructs a World from raw rows of 0/1 cell bytes. It fails with
// core.ErrInvalidShape when rows have unequal length and core.ErrInvalidType
// when a cell holds anything but 0 or 1. The rows are copied, so the caller's
// slices are never aliased. An empty raw value yields a 0x0 world.
func New(raw [][]uint8) (*World, error) {
	h := len(raw)
	w := 0
	if h > 0 {
		w = len(raw[0])
	}
	cells := make([]uint8, 0, w*h)
	for i, row := range raw {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), w, core.ErrInvalidShape)
		}
		for j, c := range row {
			if c > 1 {
				return nil, fmt.Errorf("cell (%d,%d) holds %d, want 0 or 1: %w", i, j, c, core.ErrInvalidType)
			}
			cells = append(cells, c)
		}
	}
	if w == 0 {
		h = 0
	}
	return &World{w: w, h: h, cur: cells, prob: DefaultConfig().Prob}, nil
}

// Random constructs a w-by-h World whose cells are live with probability p,
// drawn from the provided seed.
func Random(w, h int, p float64, seed int64) *World {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	world := &World{w: w, h: h, cur: make([]uint8, w*h), prob: p}
	rng.FillBinary(rng.NewRNG(seed).Source(), world.cur, p)
	return world
}

// Name returns the variant identifier.
func (w *World) Name() string { return "dense" }

// Size returns the grid dimensions: W columns by H rows, (0,0) when empty.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Get reports whether the cell at c is live. Coordinates outside the grid
// read as dead; Get never fails, which keeps the transition total.
func (w *World) Get(c core.Coordinate) bool {
	if c.Row < 0 || c.Row >= w.h || c.Col < 0 || c.Col >= w.w {
		return false
	}
	return w.cur[c.Row*w.w+c.Col] == 1
}

// State returns the current generation as rows of 0/1 bytes. The rows are
// copies and round-trip the input given to New.
func (w *World) State() [][]uint8 {
	rows := make([][]uint8, w.h)
	for i := range rows {
		rows[i] = append([]uint8(nil), w.cur[i*w.w:(i+1)*w.w]...)
	}
	return rows
}

// Live returns the coordinates of all live cells, scanning in row-major
// order.
func (w *World) Live() []core.Coordinate {
	var out []core.Coordinate
	for i, c := range w.cur {
		if c == 1 {
			out = append(out, core.Coordinate{Row: i / w.w, Col: i % w.w})
		}
	}
	return out
}

// Reset replaces the current generation with a random one drawn with the
// world's configured live probability.
func (w *World) Reset(seed int64) {
	cells := make([]uint8, w.w*w.h)
	rng.FillBinary(rng.NewRNG(seed).Source(), cells, w.prob)
	w.cur = cells
}

// Step advances the world by one generation. Every cell in the bounding
// rectangle is rescanned; a live cell with 2 or 3 live neighbors survives
// and a dead cell with exactly 3 is born.
func (w *World) Step() {
	nxt := make([]uint8, len(w.cur))
	for row := 0; row < w.h; row++ {
		for col := 0; col < w.w; col++ {
			here := core.Coordinate{Row: row, Col: col}
			neighbors := 0
			for _, n := range here.Neighbors() {
				if w.Get(n) {
					neighbors++
				}
			}
			if nextCell(neighbors, w.Get(here)) {
				nxt[row*w.w+col] = 1
			}
		}
	}
	w.cur = nxt
}

// nextCell applies Conway's rule to a single cell.
func nextCell(neighbors int, live bool) bool {
	return (live && neighbors == 2) || neighbors == 3
}
