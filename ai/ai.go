package ai

import (
	"math/rand"

	"minesweeper/engine"
)

// AI is a single-point minesweeper solver. It only sees what the engine has
// published: board dimensions and the revealed cell views. From the revealed
// frontier it deduces certain mines (a cell's count equals its hidden
// neighbor count) and certain-safe cells (a cell's count is already covered
// by deduced mines), and falls back to a random guess when neither applies.
type AI struct {
	Rand *rand.Rand
}

// FindMove picks the next cell to click. ok is false when no hidden cell is
// worth clicking, which happens once every hidden cell is a deduced mine.
func (ai *AI) FindMove(rows, cols int, revealed []engine.CellView) (move engine.Coord, ok bool) {
	known := make(map[engine.Coord]engine.CellView, len(revealed))
	for _, v := range revealed {
		known[v.Coord] = v
	}

	var hidden []engine.Coord
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := engine.Coord{Row: row, Col: col}
			if _, seen := known[c]; !seen {
				hidden = append(hidden, c)
			}
		}
	}
	if len(hidden) == 0 {
		return engine.Coord{}, false
	}

	inferredMines := map[engine.Coord]bool{}

	// A numbered cell whose count equals its hidden neighbor count pins
	// every one of those neighbors as a mine.
	for _, v := range revealed {
		if v.Mine || v.Adjacent == 0 {
			continue
		}
		hiddenNbrs := hiddenNeighbors(v.Coord, rows, cols, known)
		if len(hiddenNbrs) == v.Adjacent {
			for _, n := range hiddenNbrs {
				inferredMines[n] = true
			}
		}
	}

	// A numbered cell whose count is fully covered by deduced mines makes
	// its remaining hidden neighbors safe.
	for _, v := range revealed {
		if v.Mine || v.Adjacent == 0 {
			continue
		}
		hiddenNbrs := hiddenNeighbors(v.Coord, rows, cols, known)
		mined := 0
		for _, n := range hiddenNbrs {
			if inferredMines[n] {
				mined++
			}
		}
		if mined != v.Adjacent {
			continue
		}
		for _, n := range hiddenNbrs {
			if !inferredMines[n] {
				return n, true
			}
		}
	}

	// No certain move: guess among hidden cells not deduced to be mines.
	var guesses []engine.Coord
	for _, c := range hidden {
		if !inferredMines[c] {
			guesses = append(guesses, c)
		}
	}
	if len(guesses) == 0 {
		return engine.Coord{}, false
	}
	return guesses[ai.intn(len(guesses))], true
}

func (ai *AI) intn(n int) int {
	if ai.Rand != nil {
		return ai.Rand.Intn(n)
	}
	return rand.Intn(n)
}

func hiddenNeighbors(c engine.Coord, rows, cols int, known map[engine.Coord]engine.CellView) []engine.Coord {
	var out []engine.Coord
	for _, n := range c.Neighbors(rows, cols) {
		if _, seen := known[n]; !seen {
			out = append(out, n)
		}
	}
	return out
}
