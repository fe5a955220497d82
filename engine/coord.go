package engine

type Coord struct {
	Row int
	Col int
}

var neighborOffsets = [8]Coord{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

// Neighbors returns the up-to-8 grid neighbors of c. Neighbors past the
// grid edge are excluded, not wrapped.
func (c Coord) Neighbors(rows, cols int) []Coord {
	out := make([]Coord, 0, 8)
	for _, off := range neighborOffsets {
		dest := Coord{Row: c.Row + off.Row, Col: c.Col + off.Col}
		if dest.Row >= 0 && dest.Row < rows && dest.Col >= 0 && dest.Col < cols {
			out = append(out, dest)
		}
	}
	return out
}
