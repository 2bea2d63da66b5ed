package app

import (
	"fmt"

	"golife/internal/core"
)

// ValidateCellSize checks that a cell size can be rendered at all on a
// display with the given bounds.
func ValidateCellSize(cellSize int, display core.Size) error {
	if cellSize < 0 {
		return fmt.Errorf("cell size %d is negative: %w", cellSize, core.ErrValueOutOfRange)
	}
	if cellSize > display.W || cellSize > display.H {
		return fmt.Errorf("cell size %d exceeds display %dx%d: %w",
			cellSize, display.W, display.H, core.ErrValueOutOfRange)
	}
	return nil
}

// ValidateGridFits checks that a grid scaled by cellSize fits the display.
// It runs before a World is constructed, so a rejected configuration never
// produces a half-built game.
func ValidateGridFits(grid core.Size, cellSize int, display core.Size) error {
	if err := ValidateCellSize(cellSize, display); err != nil {
		return err
	}
	if grid.W*cellSize > display.W {
		return fmt.Errorf("scaled width %d exceeds display width %d: %w",
			grid.W*cellSize, display.W, core.ErrValueOutOfRange)
	}
	if grid.H*cellSize > display.H {
		return fmt.Errorf("scaled height %d exceeds display height %d: %w",
			grid.H*cellSize, display.H, core.ErrValueOutOfRange)
	}
	return nil
}
