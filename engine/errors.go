package engine

import "fmt"

// InvalidConfigurationError reports game parameters that cannot produce a
// playable board.
type InvalidConfigurationError struct {
	Rows  int
	Cols  int
	Mines int
}

func (e *InvalidConfigurationError) Error() string {
	switch {
	case e.Rows <= 0:
		return fmt.Sprintf("invalid configuration: row count must be positive, got %d", e.Rows)
	case e.Cols <= 0:
		return fmt.Sprintf("invalid configuration: column count must be positive, got %d", e.Cols)
	case e.Mines < 0:
		return fmt.Sprintf("invalid configuration: mine count must not be negative, got %d", e.Mines)
	default:
		return fmt.Sprintf("invalid configuration: %d mines do not fit a %dx%d board", e.Mines, e.Rows, e.Cols)
	}
}

// OutOfBoundsError reports a click outside the grid.
type OutOfBoundsError struct {
	Coord Coord
	Rows  int
	Cols  int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("click at (%d, %d) outside %dx%d board", e.Coord.Row, e.Coord.Col, e.Rows, e.Cols)
}
