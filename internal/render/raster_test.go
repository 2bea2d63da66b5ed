package render

import (
	"slices"
	"testing"

	"golife/internal/core"
)

func TestRasterize(t *testing.T) {
	view := core.Size{W: 3, H: 2}
	buf := []uint8{1, 1, 1, 1, 1, 1}

	live := []core.Coordinate{
		{Row: 0, Col: 0},
		{Row: 1, Col: 2},
		{Row: -1, Col: 0},
		{Row: 0, Col: 3},
		{Row: 5, Col: 5},
	}
	Rasterize(buf, live, view)

	want := []uint8{1, 0, 0, 0, 0, 1}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestRasterizeClearsStaleCells(t *testing.T) {
	view := core.Size{W: 2, H: 2}
	buf := make([]uint8, 4)

	Rasterize(buf, []core.Coordinate{{Row: 0, Col: 1}}, view)
	Rasterize(buf, []core.Coordinate{{Row: 1, Col: 0}}, view)

	want := []uint8{0, 0, 1, 0}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}
