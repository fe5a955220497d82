package engine

// Cell is a single square of the board. Adjacent is only meaningful for
// non-mine cells.
type Cell struct {
	Mine     bool
	Adjacent int
	Revealed bool
}
