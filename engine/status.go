package engine

// Status is the three-valued game outcome. It is monotonic: once Won or
// Lost, no further click mutates the board.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}
