package controller

import (
	"github.com/sirupsen/logrus"

	"minesweeper/ai"
	"minesweeper/engine"
)

// View is the presentation side of the game. The controller pushes pure
// state descriptions through it; translating them into visuals is entirely
// the view's business.
type View interface {
	// Reset tells the view a fresh game with the given dimensions started
	// and every cell is hidden again.
	Reset(rows, cols int)
	// ApplyUpdates delivers the cells whose revealed state changed.
	ApplyUpdates(updates []engine.CellView)
	// SetStatus reports the game status after a click.
	SetStatus(status engine.Status)
}

type Config struct {
	Rows  int
	Cols  int
	Mines int
}

// Controller wires the engine to a view: coordinate clicks in, change-sets
// out. It owns the engine instance and replaces it wholesale on NewGame.
type Controller struct {
	cfg    Config
	engine *engine.Engine
	view   View
	solver *ai.AI
	log    *logrus.Logger

	// newEngine builds the next game, swapped out in tests for seeded boards.
	newEngine func(rows, cols, mines int) (*engine.Engine, error)
}

func New(cfg Config, view View, log *logrus.Logger) (*Controller, error) {
	c := &Controller{
		cfg:       cfg,
		view:      view,
		solver:    &ai.AI{},
		log:       log,
		newEngine: engine.New,
	}
	if err := c.NewGame(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewGame discards the current game and starts a fresh one with the same
// configuration. On failure the running game is kept as is.
func (c *Controller) NewGame() error {
	e, err := c.newEngine(c.cfg.Rows, c.cfg.Cols, c.cfg.Mines)
	if err != nil {
		return err
	}

	c.engine = e
	c.view.Reset(c.cfg.Rows, c.cfg.Cols)
	c.view.SetStatus(engine.InProgress)
	c.log.WithFields(logrus.Fields{
		"game":  e.ID,
		"rows":  c.cfg.Rows,
		"cols":  c.cfg.Cols,
		"mines": c.cfg.Mines,
	}).Info("new game")

	return nil
}

// HandleClick feeds one cell click into the engine and forwards the
// change-set to the view.
func (c *Controller) HandleClick(coord engine.Coord) {
	res, err := c.engine.Click(coord.Row, coord.Col)
	if err != nil {
		// The view produced a coordinate outside its own grid.
		c.log.WithField("game", c.engine.ID).WithError(err).Error("rejected click")
		return
	}

	if len(res.Revealed) > 0 {
		c.view.ApplyUpdates(res.Revealed)
	}
	c.view.SetStatus(res.Status)

	if res.Status.Terminal() {
		c.log.WithFields(logrus.Fields{
			"game":   c.engine.ID,
			"coord":  coord,
			"status": res.Status.String(),
		}).Info("game over")
	}
}

// Step plays one solver move, used by autoplay. Finished games are restarted
// so the demo keeps running.
func (c *Controller) Step() {
	if c.engine.Status().Terminal() {
		if err := c.NewGame(); err != nil {
			c.log.WithError(err).Error("autoplay restart failed")
		}
		return
	}

	move, ok := c.solver.FindMove(c.cfg.Rows, c.cfg.Cols, c.engine.Revealed())
	if !ok {
		return
	}
	c.HandleClick(move)
}

func (c *Controller) Status() engine.Status {
	return c.engine.Status()
}
