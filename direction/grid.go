package direction

// Wrap selects how coordinates behave at the grid boundary.
type Wrap uint8

const (
	// Clipped means boundary cells have fewer than 4 neighbours.
	Clipped Wrap = iota
	// Torus means every cell has exactly 4 neighbours, wrapping modulo
	// the grid dimensions.
	Torus
)

// Size describes a rectangular W×H grid and its boundary policy.
type Size struct {
	Width, Height int
	Wrap          Wrap
}

// NumCells returns Width*Height.
func (s Size) NumCells() int {
	return s.Width * s.Height
}

// Index maps (x, y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (s Size) Index(x, y int) int {
	return y*s.Width + x
}

// Coord converts a row-major index back to (x, y).
// Complexity: O(1).
func (s Size) Coord(idx int) (x, y int) {
	return idx % s.Width, idx / s.Width
}

// Neighbour returns the coordinate reached from (x, y) by moving one step
// in direction d, and whether that neighbour exists under the grid's wrap
// policy. Under Torus it always exists (coordinates wrap modulo Width/
// Height); under Clipped it does not exist past the grid edge.
//
// Complexity: O(1).
func (s Size) Neighbour(x, y int, d Direction) (nx, ny int, ok bool) {
	off := offset[d]
	nx, ny = x+off[0], y+off[1]

	switch s.Wrap {
	case Torus:
		nx = ((nx % s.Width) + s.Width) % s.Width
		ny = ((ny % s.Height) + s.Height) % s.Height
		return nx, ny, true
	default: // Clipped
		if nx < 0 || nx >= s.Width || ny < 0 || ny >= s.Height {
			return 0, 0, false
		}
		return nx, ny, true
	}
}

// NeighbourIndex is Neighbour followed by Index, for callers that work in
// flat cell-index space (the wave, the propagator, the priority queue).
func (s Size) NeighbourIndex(idx int, d Direction) (nidx int, ok bool) {
	x, y := s.Coord(idx)
	nx, ny, ok := s.Neighbour(x, y, d)
	if !ok {
		return 0, false
	}
	return s.Index(nx, ny), true
}
