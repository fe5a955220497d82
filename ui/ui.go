package ui

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/sirupsen/logrus"

	"minesweeper/engine"
	"minesweeper/utils"
)

// ui constants
const cellSizeDp = unit.Dp(40)
const headerHeightDp = unit.Dp(48)
const revealAnimationMs = 180
const autoStepInterval = 350 * time.Millisecond

var theme = material.NewTheme()

// cellDisplay caches what the change-sets said about one cell. The UI never
// reads engine internals, it only accumulates the updates it was handed.
type cellDisplay struct {
	revealed bool
	mine     bool
	adjacent int
}

type UI struct {
	log *logrus.Logger

	rows   int
	cols   int
	cells  [][]cellDisplay
	status engine.Status

	clickables []widget.Clickable
	newGameBtn widget.Clickable

	animationStep  AnimationStep
	animationSince time.Time
	justRevealed   map[engine.Coord]struct{}

	lastAutoStep time.Time

	// OnCellClicked receives every grid click. The UI does not filter or
	// interpret clicks, that is the controller's job.
	OnCellClicked func(engine.Coord)
	OnNewGame     func()
	// AutoStep, when set, is invoked from the frame loop on a fixed
	// interval so autoplay stays on the UI thread.
	AutoStep func()
}

func New(log *logrus.Logger) *UI {
	return &UI{
		log:    log,
		status: engine.InProgress,
	}
}

// Reset implements controller.View.
func (ui *UI) Reset(rows, cols int) {
	ui.rows = rows
	ui.cols = cols
	ui.cells = make([][]cellDisplay, rows)
	for i := range ui.cells {
		ui.cells[i] = make([]cellDisplay, cols)
	}
	ui.clickables = make([]widget.Clickable, rows*cols)
	ui.justRevealed = nil
	ui.animationStep = Idle
	ui.status = engine.InProgress
}

// ApplyUpdates implements controller.View.
func (ui *UI) ApplyUpdates(updates []engine.CellView) {
	ui.justRevealed = make(map[engine.Coord]struct{}, len(updates))
	for _, u := range updates {
		ui.cells[u.Row][u.Col] = cellDisplay{
			revealed: true,
			mine:     u.Mine,
			adjacent: u.Adjacent,
		}
		ui.justRevealed[u.Coord] = struct{}{}
	}
	ui.animationStep = Reveal
	ui.animationSince = time.Now()
}

// SetStatus implements controller.View.
func (ui *UI) SetStatus(status engine.Status) {
	ui.status = status
	if status.Terminal() {
		ui.animationStep = GameOver
	}
}

// Run opens the window and blocks until it is closed. Reset must have been
// called once before so the grid dimensions are known.
func (ui *UI) Run() {
	go func() {
		window := new(app.Window)

		window.Option(
			app.Title("Minesweeper"),
			app.Size(
				unit.Dp(ui.cols)*cellSizeDp,
				unit.Dp(ui.rows)*cellSizeDp+headerHeightDp,
			),
		)

		if err := ui.loop(window); err != nil {
			ui.log.WithError(err).Fatal("window closed with error")
		}
		os.Exit(0)
	}()
	app.Main()
}

func (ui *UI) loop(window *app.Window) error {
	var ops op.Ops

	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			ui.maybeAutoStep()

			if ui.animationStep == Reveal && time.Since(ui.animationSince).Milliseconds() > revealAnimationMs {
				ui.animationStep = Idle
			}

			drawRect(gtx, 0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y, ui.backgroundColor())
			ui.drawHeader(gtx)
			ui.drawGrid(gtx)

			e.Frame(gtx.Ops)
			window.Invalidate()
		}
	}
}

func (ui *UI) maybeAutoStep() {
	if ui.AutoStep == nil {
		return
	}
	if time.Since(ui.lastAutoStep) < autoStepInterval {
		return
	}
	ui.lastAutoStep = time.Now()
	ui.AutoStep()
}

func (ui *UI) drawHeader(gtx layout.Context) {
	drawRect(gtx, 0, 0, gtx.Constraints.Max.X, gtx.Dp(headerHeightDp), headerColor)

	if ui.newGameBtn.Clicked(gtx) && ui.OnNewGame != nil {
		ui.OnNewGame()
	}

	tight := gtx
	tight.Constraints.Min = image.Point{}

	stack := op.Offset(image.Point{X: gtx.Dp(8), Y: gtx.Dp(8)}).Push(gtx.Ops)
	material.Button(theme, &ui.newGameBtn, "New Game").Layout(tight)
	stack.Pop()

	stack = op.Offset(image.Point{X: gtx.Dp(130), Y: gtx.Dp(14)}).Push(gtx.Ops)
	label := material.Label(theme, unit.Sp(16), ui.statusText())
	label.Color = whiteColor
	label.Layout(tight)
	stack.Pop()
}

func (ui *UI) statusText() string {
	switch ui.status {
	case engine.Won:
		return "Congratulations, you've cleared the board!"
	case engine.Lost:
		return "You hit a mine!"
	default:
		return "Playing"
	}
}

func (ui *UI) drawGrid(gtx layout.Context) {
	for row := 0; row < ui.rows; row++ {
		for col := 0; col < ui.cols; col++ {
			ui.drawCell(gtx, row, col)
		}
	}
}

func (ui *UI) drawCell(gtx layout.Context, row, col int) {
	cell := ui.cells[row][col]
	clickable := &ui.clickables[row*ui.cols+col]

	if clickable.Clicked(gtx) && ui.OnCellClicked != nil {
		ui.OnCellClicked(engine.Coord{Row: row, Col: col})
	}

	// newly revealed cells scale in
	sizePct := 0.95
	if ui.animationStep == Reveal && cell.revealed {
		if _, ok := ui.justRevealed[engine.Coord{Row: row, Col: col}]; ok {
			sizePct = utils.Lerp(0, 0.95, 0, revealAnimationMs, float64(time.Since(ui.animationSince).Milliseconds()))
		}
	}

	cellPx := gtx.Dp(cellSizeDp)
	emptyPx := int(float64(cellPx) * (1 - sizePct) / 2)

	cellGlobalX := col*cellPx + emptyPx
	cellGlobalY := row*cellPx + gtx.Dp(headerHeightDp) + emptyPx

	stack := op.Offset(image.Point{X: cellGlobalX, Y: cellGlobalY}).Push(gtx.Ops)
	defer stack.Pop()

	clickable.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		side := int(float64(cellPx) * sizePct)

		area := clip.Rect{Max: image.Point{X: side, Y: side}}.Push(gtx.Ops)
		paint.Fill(gtx.Ops, ui.cellColor(cell))
		area.Pop()

		return layout.Dimensions{
			Size: image.Point{X: side, Y: side},
		}
	})

	if text := cellText(cell); text != "" {
		tight := gtx
		tight.Constraints.Min = image.Point{}

		textStack := op.Offset(image.Point{X: cellPx / 3, Y: cellPx / 6}).Push(gtx.Ops)
		label := material.Label(theme, unit.Sp(20), text)
		label.Color = digitColors[utils.Clamp(cell.adjacent, 1, 8)]
		if cell.mine {
			label.Color = whiteColor
		}
		label.Layout(tight)
		textStack.Pop()
	}
}

func (ui *UI) cellColor(cell cellDisplay) color.NRGBA {
	switch {
	case !cell.revealed:
		return hiddenColor
	case cell.mine:
		return mineColor
	default:
		return revealedColor
	}
}

func cellText(cell cellDisplay) string {
	if !cell.revealed {
		return ""
	}
	if cell.mine {
		return "*"
	}
	if cell.adjacent == 0 {
		return ""
	}
	return fmt.Sprintf("%d", cell.adjacent)
}

func (ui *UI) backgroundColor() color.NRGBA {
	switch ui.status {
	case engine.Won:
		return wonTint
	case engine.Lost:
		return lostTint
	default:
		return boardColor
	}
}

func drawRect(gtx layout.Context, x, y, width, height int, color color.NRGBA) {
	if width <= 0 || height <= 0 {
		return
	}

	stack := op.Offset(image.Point{X: x, Y: y}).Push(gtx.Ops)
	defer stack.Pop()

	area := clip.Rect{Max: image.Point{X: width, Y: height}}.Push(gtx.Ops)
	defer area.Pop()

	paint.Fill(gtx.Ops, color)
}
