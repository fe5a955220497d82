package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"minesweeper/controller"
	"minesweeper/ui"
)

func main() {
	rows := flag.Int("rows", 8, "number of board rows")
	cols := flag.Int("cols", 8, "number of board columns")
	mines := flag.Int("mines", 5, "number of mines, must be less than rows*cols")
	autoplay := flag.Bool("autoplay", false, "let the solver play the game")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	view := ui.New(log)

	ctrl, err := controller.New(controller.Config{
		Rows:  *rows,
		Cols:  *cols,
		Mines: *mines,
	}, view, log)
	if err != nil {
		log.WithError(err).Fatal("invalid game configuration")
	}

	view.OnCellClicked = ctrl.HandleClick
	view.OnNewGame = func() {
		if err := ctrl.NewGame(); err != nil {
			log.WithError(err).Error("could not start a new game")
		}
	}
	if *autoplay {
		view.AutoStep = ctrl.Step
	}

	view.Run()
}
