package render

import "golife/internal/core"

// Rasterize clears buf and marks each live coordinate that falls inside the
// view, in row-major order. Coordinates outside [0,H)x[0,W) are clipped;
// the sparse world can hold cells far beyond any viewport.
func Rasterize(buf []uint8, live []core.Coordinate, view core.Size) {
	for i := range buf {
		buf[i] = 0
	}
	for _, c := range live {
		if c.Row < 0 || c.Row >= view.H || c.Col < 0 || c.Col >= view.W {
			continue
		}
		buf[c.Row*view.W+c.Col] = 1
	}
}
