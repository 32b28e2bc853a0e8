// Command mazeviz opens a window with a random maze and animates depth-first
// and breadth-first search over it. It takes no flags; closing the window
// exits the process.
package main

import (
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/katalvlaran/mazeviz/logging"
	"github.com/katalvlaran/mazeviz/viz"
)

func main() {
	cfg := viz.DefaultConfig()
	log := logging.New(cfg.Logging)

	a := app.New()
	w, err := viz.NewWindow(a, cfg, log)
	if err != nil {
		log.Error("cannot build window", "err", err)
		os.Exit(1)
	}
	w.ShowAndRun()
}
