package viz

import (
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/katalvlaran/mazeviz/logging"
	"github.com/katalvlaran/mazeviz/maze"
	"github.com/katalvlaran/mazeviz/search"
)

// Window is the desktop front end: the maze board, DFS/BFS/New Maze buttons,
// an interval picker, and frontier/explored lists.
//
// All fields below are touched only on the fyne main goroutine; the Runner
// goroutine reaches them through fyne.Do.
type Window struct {
	cfg    Config
	log    *slog.Logger
	win    fyne.Window
	runner *Runner

	board *Board
	runID int

	rects        [][]*canvas.Rectangle
	frontierData []string
	exploredData []string
	frontierList *widget.List
	exploredList *widget.List
	statusLabel  *widget.Label
	interval     *widget.Select
}

// NewWindow generates the first maze and lays out the window on a.
// Returns ErrConfig or a maze.New error for a bad cfg.
func NewWindow(a fyne.App, cfg Config, log *slog.Logger) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := maze.New(cfg.MazeOptions()...)
	if err != nil {
		return nil, fmt.Errorf("viz: generate maze: %w", err)
	}
	if log == nil {
		log = logging.Discard()
	}

	w := &Window{
		cfg:    cfg,
		log:    log,
		win:    a.NewWindow(cfg.Title),
		runner: NewRunner(cfg.DefaultInterval, log),
		board:  NewBoard(g),
	}
	w.win.SetContent(w.layout())
	w.win.SetOnClosed(w.runner.Stop)
	w.render()
	log.Info("maze generated", "rows", g.Rows(), "cols", g.Cols(), "solvable", g.Solvable())

	return w, nil
}

// ShowAndRun shows the window and runs the fyne event loop until it closes.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}

// Board exposes the display model.
func (w *Window) Board() *Board { return w.board }

func (w *Window) layout() fyne.CanvasObject {
	rows, cols := w.cfg.Rows, w.cfg.Cols

	// row labels on the left, column labels along the bottom
	cells := make([]fyne.CanvasObject, 0, (rows+1)*(cols+1))
	w.rects = make([][]*canvas.Rectangle, rows)
	for r := 0; r < rows; r++ {
		cells = append(cells, centered(strconv.Itoa(r)))
		w.rects[r] = make([]*canvas.Rectangle, cols)
		for c := 0; c < cols; c++ {
			rect := canvas.NewRectangle(w.cfg.Palette.Color(maze.Empty))
			rect.SetMinSize(fyne.NewSize(w.cfg.CellSize, w.cfg.CellSize))
			rect.StrokeColor = w.cfg.Palette.Color(maze.Blocked)
			rect.StrokeWidth = 1
			w.rects[r][c] = rect
			cells = append(cells, rect)
		}
	}
	cells = append(cells, widget.NewLabel(""))
	for c := 0; c < cols; c++ {
		cells = append(cells, centered(strconv.Itoa(c)))
	}
	boardView := container.NewGridWithColumns(cols+1, cells...)

	w.frontierList = newLabelList(&w.frontierData)
	w.exploredList = newLabelList(&w.exploredData)
	lists := container.NewVSplit(
		container.NewBorder(centered("Frontier"), nil, nil, nil, w.frontierList),
		container.NewBorder(centered("Explored"), nil, nil, nil, w.exploredList),
	)

	choices := make([]string, len(w.cfg.Intervals))
	defaultIdx := 0
	for i, d := range w.cfg.Intervals {
		choices[i] = d.String()
		if d == w.cfg.DefaultInterval {
			defaultIdx = i
		}
	}
	w.interval = widget.NewSelect(choices, func(string) {
		if i := w.interval.SelectedIndex(); i >= 0 {
			w.runner.SetInterval(w.cfg.Intervals[i])
		}
	})
	w.interval.SetSelectedIndex(defaultIdx)

	w.statusLabel = widget.NewLabel("")
	controls := container.NewHBox(
		widget.NewButton("Run DFS", func() { w.run(search.DFS) }),
		widget.NewButton("Run BFS", func() { w.run(search.BFS) }),
		widget.NewButton("New Maze", w.newMaze),
		widget.NewLabel("Interval"),
		w.interval,
		w.statusLabel,
	)

	split := container.NewHSplit(boardView, lists)
	split.Offset = 0.75

	return container.NewBorder(nil, controls, nil, nil, split)
}

// run clears the board and animates strategy from scratch.
func (w *Window) run(strategy search.Strategy) {
	s, err := search.New(w.board.Grid(), strategy)
	if err != nil {
		w.log.Error("search setup failed", "strategy", strategy.String(), "err", err)
		w.statusLabel.SetText(err.Error())
		return
	}
	w.runID++
	id := w.runID
	w.board.Reset()
	w.render()
	w.statusLabel.SetText(strategy.String() + ": " + search.InProgress.String())

	w.runner.Start(s, func(step search.Step) {
		fyne.Do(func() { w.applyStep(id, strategy, step) })
	})
}

// applyStep folds step into the board unless a newer run has started.
func (w *Window) applyStep(id int, strategy search.Strategy, step search.Step) {
	if id != w.runID {
		return
	}
	w.board.Apply(step)
	w.render()
	text := strategy.String() + ": " + step.Status.String()
	if step.Status == search.Found {
		text += fmt.Sprintf(" (%d cells)", len(step.Path))
	}
	w.statusLabel.SetText(text)
}

// newMaze stops any run and swaps in a fresh random maze.
func (w *Window) newMaze() {
	w.runner.Stop()
	g, err := maze.New(w.cfg.MazeOptions()...)
	if err != nil {
		w.log.Error("maze generation failed", "err", err)
		return
	}
	w.runID++
	w.board = NewBoard(g)
	w.render()
	w.statusLabel.SetText("")
	w.log.Info("maze generated", "rows", g.Rows(), "cols", g.Cols(), "solvable", g.Solvable())
}

// render pushes the board state into the widgets.
func (w *Window) render() {
	for r, row := range w.rects {
		for c, rect := range row {
			rect.FillColor = w.cfg.Palette.Color(w.board.At(maze.Location{Row: r, Column: c}))
			rect.Refresh()
		}
	}
	w.frontierData = w.board.FrontierLabels()
	w.exploredData = w.board.ExploredLabels()
	w.frontierList.Refresh()
	w.exploredList.Refresh()
	if len(w.frontierData) > 0 {
		w.frontierList.ScrollToBottom()
	}
	if len(w.exploredData) > 0 {
		w.exploredList.ScrollToBottom()
	}
}

func newLabelList(data *[]string) *widget.List {
	return widget.NewList(
		func() int { return len(*data) },
		func() fyne.CanvasObject { return widget.NewLabel("(00, 00)") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(*data) {
				obj.(*widget.Label).SetText((*data)[id])
			}
		},
	)
}

func centered(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}
