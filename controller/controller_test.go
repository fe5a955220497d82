package controller

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"

	"minesweeper/engine"
)

type recordingView struct {
	resets   int
	rows     int
	cols     int
	updates  []engine.CellView
	statuses []engine.Status
}

func (v *recordingView) Reset(rows, cols int) {
	v.resets++
	v.rows, v.cols = rows, cols
	v.updates = nil
}

func (v *recordingView) ApplyUpdates(updates []engine.CellView) {
	v.updates = append(v.updates, updates...)
}

func (v *recordingView) SetStatus(status engine.Status) {
	v.statuses = append(v.statuses, status)
}

func (v *recordingView) lastStatus() engine.Status {
	return v.statuses[len(v.statuses)-1]
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNewRejectsBadConfig(t *testing.T) {
	view := &recordingView{}
	if _, err := New(Config{Rows: 0, Cols: 5, Mines: 1}, view, quietLogger()); err == nil {
		t.Fatal("New accepted a zero-row configuration")
	}
	if view.resets != 0 {
		t.Error("view was reset despite the configuration being rejected")
	}
}

func TestNewGameResetsView(t *testing.T) {
	view := &recordingView{}
	c, err := New(Config{Rows: 3, Cols: 4, Mines: 2}, view, quietLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if view.resets != 1 || view.rows != 3 || view.cols != 4 {
		t.Fatalf("view reset %d times with %dx%d, want once with 3x4", view.resets, view.rows, view.cols)
	}

	if err := c.NewGame(); err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if view.resets != 2 {
		t.Errorf("view reset %d times after NewGame, want 2", view.resets)
	}
	if c.Status() != engine.InProgress {
		t.Errorf("status = %v after NewGame, want %v", c.Status(), engine.InProgress)
	}
}

func TestHandleClickForwardsChangeSet(t *testing.T) {
	// A mine-free 1x2 board floods completely on the first click, so the
	// outcome is deterministic regardless of sampling.
	view := &recordingView{}
	c, err := New(Config{Rows: 1, Cols: 2, Mines: 0}, view, quietLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c.HandleClick(engine.Coord{Row: 0, Col: 0})

	if len(view.updates) != 2 {
		t.Fatalf("view received %d updates, want the whole 1x2 board", len(view.updates))
	}
	if view.lastStatus() != engine.Won {
		t.Errorf("view status = %v, want %v", view.lastStatus(), engine.Won)
	}
}

func TestHandleClickOutOfBounds(t *testing.T) {
	view := &recordingView{}
	c, err := New(Config{Rows: 2, Cols: 2, Mines: 1}, view, quietLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	before := len(view.statuses)

	c.HandleClick(engine.Coord{Row: 5, Col: 5})

	if len(view.updates) != 0 || len(view.statuses) != before {
		t.Error("out-of-bounds click reached the view")
	}
	if c.Status() != engine.InProgress {
		t.Errorf("status = %v after rejected click, want %v", c.Status(), engine.InProgress)
	}
}

func TestLossReportsMines(t *testing.T) {
	view := &recordingView{}
	c, err := New(Config{Rows: 2, Cols: 2, Mines: 1}, view, quietLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Seeded board so the mine position can be looked up and clicked.
	c.newEngine = func(rows, cols, mines int) (*engine.Engine, error) {
		return engine.NewSeeded(rows, cols, mines, rand.New(rand.NewSource(11)))
	}
	if err := c.NewGame(); err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	var mine engine.Coord
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if c.engine.State.GetCell(engine.Coord{Row: row, Col: col}).Mine {
				mine = engine.Coord{Row: row, Col: col}
			}
		}
	}

	c.HandleClick(mine)

	if c.Status() != engine.Lost {
		t.Fatalf("status = %v, want %v", c.Status(), engine.Lost)
	}
	mineSeen := false
	for _, u := range view.updates {
		if u.Mine {
			mineSeen = true
		}
	}
	if !mineSeen {
		t.Error("view never received the revealed mine")
	}
}

func TestStepPlaysUntilTerminal(t *testing.T) {
	view := &recordingView{}
	c, err := New(Config{Rows: 4, Cols: 4, Mines: 0}, view, quietLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 16 && c.Status() == engine.InProgress; i++ {
		c.Step()
	}
	if c.Status() != engine.Won {
		t.Errorf("status = %v after autoplay on a mine-free board, want %v", c.Status(), engine.Won)
	}

	// The next step restarts.
	c.Step()
	if view.resets != 2 {
		t.Errorf("view reset %d times, want autoplay to restart the finished game", view.resets)
	}
	if c.Status() != engine.InProgress {
		t.Errorf("status = %v after restart, want %v", c.Status(), engine.InProgress)
	}
}
