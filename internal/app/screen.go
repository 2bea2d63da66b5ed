//go:build ebiten

package app

import (
	"golife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// DisplayBounds returns the dimensions of the primary display in pixels.
func DisplayBounds() core.Size {
	w, h := ebiten.ScreenSizeInFullscreen()
	return core.Size{W: w, H: h}
}
