package core

// Coordinate addresses a single cell as a (row, column) pair. Rows grow
// downward and columns rightward; both may be negative in an unbounded world.
type Coordinate struct {
	Row int
	Col int
}

// Neighbors returns the eight coordinates surrounding c.
func (c Coordinate) Neighbors() [8]Coordinate {
	var out [8]Coordinate
	i := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			out[i] = Coordinate{Row: c.Row + dr, Col: c.Col + dc}
			i++
		}
	}
	return out
}

// Size describes the dimensions of a bounded grid: W columns by H rows.
type Size struct {
	W int
	H int
}

// World is the capability contract shared by the competing state
// representations. Implementations hold exactly one generation at a time;
// Step replaces it wholesale with a freshly computed one. A World is not
// safe for concurrent use.
type World interface {
	Name() string
	Reset(seed int64)
	Step()
	Live() []Coordinate
}

// Factory constructs a World from flag-style key/value configuration.
// Construction validates the configured initial state and fails rather than
// returning a partially built value.
type Factory func(cfg map[string]string) (World, error)

var worlds = map[string]Factory{}

// Register adds a world factory under the provided variant name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	worlds[name] = f
}

// Worlds exposes the registry of available world factories.
func Worlds() map[string]Factory {
	return worlds
}
