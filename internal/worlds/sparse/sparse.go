// Package sparse implements Conway's Game of Life on an unbounded plane. A
// generation is the set of live coordinates; absence means dead, and there
// is no grid to bound the simulation.
package sparse

import (
	"fmt"

	"golife/internal/core"
	rng "golife/pkg/core"
)

type cellSet map[core.Coordinate]struct{}

// World holds one generation as a set of live coordinates. Each Step builds
// a fresh set and reseats the reference. Not safe for concurrent use.
type World struct {
	live cellSet

	prob float64
	// window is the region Reset samples into; the world itself grows
	// past it freely.
	window core.Size
}

// New constructs a World live at exactly the given coordinates. Duplicates
// collapse; the input slice is not retained.
func New(cells []core.Coordinate) *World {
	w := &World{live: make(cellSet, len(cells)), prob: DefaultConfig().Prob, window: core.Size{W: DefaultConfig().Width, H: DefaultConfig().Height}}
	for _, c := range cells {
		w.live[c] = struct{}{}
	}
	return w
}

// FromPairs constructs a World from raw coordinate pairs, rejecting any
// pair that does not have exactly two components with core.ErrInvalidShape.
func FromPairs(pairs [][]int) (*World, error) {
	cells := make([]core.Coordinate, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("pair %d has %d components, want 2: %w", i, len(p), core.ErrInvalidShape)
		}
		cells = append(cells, core.Coordinate{Row: p[0], Col: p[1]})
	}
	return New(cells), nil
}

// Random constructs a World by sampling the w-by-h window at the origin,
// making each cell live with probability p.
func Random(w, h int, p float64, seed int64) *World {
	world := New(nil)
	world.prob = p
	world.window = core.Size{W: w, H: h}
	world.sample(seed)
	return world
}

func (w *World) sample(seed int64) {
	r := rng.NewRNG(seed)
	live := make(cellSet)
	for row := 0; row < w.window.H; row++ {
		for col := 0; col < w.window.W; col++ {
			if r.Bool(w.prob) {
				live[core.Coordinate{Row: row, Col: col}] = struct{}{}
			}
		}
	}
	w.live = live
}

// Name returns the variant identifier.
func (w *World) Name() string { return "sparse" }

// Has reports whether the cell at c is live.
func (w *World) Has(c core.Coordinate) bool {
	_, ok := w.live[c]
	return ok
}

// Len returns the number of live cells.
func (w *World) Len() int { return len(w.live) }

// Live returns the coordinates of all live cells in unspecified order.
func (w *World) Live() []core.Coordinate {
	out := make([]core.Coordinate, 0, len(w.live))
	for c := range w.live {
		out = append(out, c)
	}
	return out
}

// Bounds returns the envelope of the live set. The sparse model has no
// intrinsic dimensions; this is derived from the current generation on
// demand and is empty (ok == false) when no cell is live.
func (w *World) Bounds() (min, max core.Coordinate, ok bool) {
	for c := range w.live {
		if !ok {
			min, max, ok = c, c, true
			continue
		}
		if c.Row < min.Row {
			min.Row = c.Row
		}
		if c.Col < min.Col {
			min.Col = c.Col
		}
		if c.Row > max.Row {
			max.Row = c.Row
		}
		if c.Col > max.Col {
			max.Col = c.Col
		}
	}
	return min, max, ok
}

// Reset replaces the current generation with a fresh random sample of the
// configured window.
func (w *World) Reset(seed int64) {
	w.sample(seed)
}

// Step advances the world by one generation. Only cells that can change are
// considered: the live set and its neighbors. Counting is by set
// membership, so births at any coordinate are found without ever bounding
// the plane.
func (w *World) Step() {
	counts := make(map[core.Coordinate]int, len(w.live)*3)
	for c := range w.live {
		for _, n := range c.Neighbors() {
			counts[n]++
		}
	}

	next := make(cellSet, len(w.live))
	for c, neighbors := range counts {
		_, alive := w.live[c]
		if (alive && neighbors == 2) || neighbors == 3 {
			next[c] = struct{}{}
		}
	}
	w.live = next
}
