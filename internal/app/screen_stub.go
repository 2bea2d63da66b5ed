//go:build !ebiten

package app

import "golife/internal/core"

// DisplayBounds returns nominal display dimensions for headless builds.
func DisplayBounds() core.Size {
	return core.Size{W: 1920, H: 1080}
}
