package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

/**
 * Minesweeper engine (game logic only, no rendering).
 *
 * The engine owns the grid, the mine set, per-cell adjacency counts and the
 * revealed/hidden state of every cell. The presentation layer calls Click
 * and renders the returned change-set; the engine never calls back into
 * presentation.
 */

type Engine struct {
	// ID tags one game session, used for log correlation.
	ID    uuid.UUID
	State State
}

// CellView is the display value of a single cell: either a mine marker or
// an adjacency count in [0, 8].
type CellView struct {
	Coord
	Mine     bool
	Adjacent int
}

// Result is what one click changed: the resulting status and the cells
// whose revealed state flipped during the call. The presentation layer can
// update its display from this set alone, without re-scanning the board.
type Result struct {
	Status   Status
	Revealed []CellView
}

// New starts a game with mines sampled from a time-seeded random source.
func New(rows, cols, mines int) (*Engine, error) {
	return NewSeeded(rows, cols, mines, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSeeded starts a game drawing mine positions from r. Placement is a
// Fisher-Yates shuffle of every coordinate, so each of the C(rows*cols, mines)
// layouts is equally likely. A failed call allocates nothing, any previous
// game held by the caller is untouched.
func NewSeeded(rows, cols, mines int, r *rand.Rand) (*Engine, error) {
	if rows <= 0 || cols <= 0 || mines < 0 || mines >= rows*cols {
		return nil, &InvalidConfigurationError{Rows: rows, Cols: cols, Mines: mines}
	}

	e := &Engine{
		ID: uuid.New(),
		State: State{
			Board:  newBoard(rows, cols),
			Status: InProgress,
			Mines:  mines,
			Hidden: rows * cols,
		},
	}
	e.placeMines(mines, r)
	e.computeAdjacency()

	return e, nil
}

func (e *Engine) placeMines(mines int, r *rand.Rand) {
	coords := make([]Coord, 0, e.State.Rows()*e.State.Cols())
	for row := 0; row < e.State.Rows(); row++ {
		for col := 0; col < e.State.Cols(); col++ {
			coords = append(coords, Coord{Row: row, Col: col})
		}
	}

	r.Shuffle(len(coords), func(i, j int) {
		coords[i], coords[j] = coords[j], coords[i]
	})

	for _, c := range coords[:mines] {
		cell := e.State.GetCell(c)
		cell.Mine = true
		e.State.SetCell(c, cell)
	}
}

func (e *Engine) computeAdjacency() {
	for row := 0; row < e.State.Rows(); row++ {
		for col := 0; col < e.State.Cols(); col++ {
			c := Coord{Row: row, Col: col}
			cell := e.State.GetCell(c)
			if cell.Mine {
				continue
			}

			count := 0
			for _, n := range c.Neighbors(e.State.Rows(), e.State.Cols()) {
				if e.State.GetCell(n).Mine {
					count++
				}
			}
			cell.Adjacent = count
			e.State.SetCell(c, cell)
		}
	}
}

// Click processes one click at (row, col) and returns the change-set.
//
// Out-of-bounds coordinates fail with OutOfBoundsError and mutate nothing.
// Clicks after the game is Won or Lost are accepted no-ops: they return the
// terminal status with an empty change-set. Clicking a mine sets Lost and
// reveals every mine cell. Otherwise the cell is flood revealed and the win
// condition (hidden cells == mine count) is evaluated.
func (e *Engine) Click(row, col int) (Result, error) {
	c := Coord{Row: row, Col: col}
	if !e.State.Board.InBounds(c) {
		return Result{Status: e.State.Status}, &OutOfBoundsError{
			Coord: c,
			Rows:  e.State.Rows(),
			Cols:  e.State.Cols(),
		}
	}

	if e.State.Status.Terminal() {
		return Result{Status: e.State.Status}, nil
	}

	if e.State.GetCell(c).Mine {
		return e.lose(), nil
	}

	revealed := e.floodReveal(c)
	if e.State.Hidden == e.State.Mines {
		e.State.Status = Won
	}

	return Result{Status: e.State.Status, Revealed: revealed}, nil
}

// floodReveal reveals the cell at start and, for zero-adjacency cells,
// cascades to their neighbors. The traversal uses an explicit stack so the
// depth stays bounded on large grids; each cell flips Hidden to Revealed at
// most once, which terminates the walk.
func (e *Engine) floodReveal(start Coord) []CellView {
	var revealed []CellView

	stack := []Coord{start}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := e.State.GetCell(c)
		if cell.Revealed {
			continue
		}

		cell.Revealed = true
		e.State.SetCell(c, cell)
		e.State.Hidden--
		revealed = append(revealed, CellView{Coord: c, Adjacent: cell.Adjacent})

		if cell.Adjacent == 0 {
			stack = append(stack, c.Neighbors(e.State.Rows(), e.State.Cols())...)
		}
	}

	return revealed
}

// lose marks the game Lost and reveals every mine cell so the presentation
// layer can show where they were.
func (e *Engine) lose() Result {
	e.State.Status = Lost

	var revealed []CellView
	for row := 0; row < e.State.Rows(); row++ {
		for col := 0; col < e.State.Cols(); col++ {
			c := Coord{Row: row, Col: col}
			cell := e.State.GetCell(c)
			if !cell.Mine || cell.Revealed {
				continue
			}

			cell.Revealed = true
			e.State.SetCell(c, cell)
			e.State.Hidden--
			revealed = append(revealed, CellView{Coord: c, Mine: true})
		}
	}

	return Result{Status: Lost, Revealed: revealed}
}

func (e *Engine) Status() Status {
	return e.State.Status
}

// Revealed returns the display values of every revealed cell, for a full
// redraw or for a solver that only sees published state.
func (e *Engine) Revealed() []CellView {
	var views []CellView
	for row := 0; row < e.State.Rows(); row++ {
		for col := 0; col < e.State.Cols(); col++ {
			c := Coord{Row: row, Col: col}
			cell := e.State.GetCell(c)
			if cell.Revealed {
				views = append(views, CellView{Coord: c, Mine: cell.Mine, Adjacent: cell.Adjacent})
			}
		}
	}
	return views
}
