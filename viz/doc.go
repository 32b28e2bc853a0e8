// Package viz animates a maze search in a desktop window.
//
// Board is the display model: it folds search.Step records into per-cell
// states (Frontier, Explored, Current, Path) over the base maze. Runner pulls
// steps from a search.Stepper on its own goroutine at a user-selected
// interval. Window wires both into a fyne UI; every widget update is routed
// through fyne.Do.
package viz
