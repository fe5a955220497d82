package engine

// State is the whole game state for one session. A new game builds a fresh
// State, nothing is reused across games.
type State struct {
	Board  Board
	Status Status
	Mines  int
	Hidden int
}

func (s *State) GetCell(c Coord) Cell {
	return s.Board.GetCell(c)
}

func (s *State) SetCell(c Coord, cell Cell) {
	s.Board.SetCell(c, cell)
}

func (s *State) Rows() int {
	return s.Board.Rows
}

func (s *State) Cols() int {
	return s.Board.Cols
}
