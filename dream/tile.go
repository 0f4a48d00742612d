package dream

// Tile is one cell of a pipe dream. The zero value is Elbow.
type Tile uint8

const (
	// Elbow marks an empty cell: two wires bend past each other.
	Elbow Tile = iota
	// Cross marks a wire crossing.
	Cross
)

// String renders a tile as "." (Elbow) or "+" (Cross).
func (t Tile) String() string {
	if t == Cross {
		return "+"
	}

	return "."
}
