package engine

type Board struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

func newBoard(rows, cols int) Board {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return Board{Rows: rows, Cols: cols, Cells: cells}
}

func (b *Board) SetCell(c Coord, cell Cell) {
	b.Cells[c.Row][c.Col] = cell
}

func (b *Board) GetCell(c Coord) Cell {
	return b.Cells[c.Row][c.Col]
}

func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}
