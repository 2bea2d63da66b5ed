package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCells parses a whitespace-separated list of "row,col" pairs into
// coordinates. A pair without exactly two components fails with
// ErrInvalidShape; a component that is not an integer fails with
// ErrInvalidType.
func ParseCells(s string) ([]Coordinate, error) {
	var out []Coordinate
	for _, field := range strings.Fields(s) {
		parts := strings.Split(field, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("cell %q has %d components, want 2: %w", field, len(parts), ErrInvalidShape)
		}
		row, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("cell %q row is not an integer: %w", field, ErrInvalidType)
		}
		col, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("cell %q col is not an integer: %w", field, ErrInvalidType)
		}
		out = append(out, Coordinate{Row: row, Col: col})
	}
	return out, nil
}
