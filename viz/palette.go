package viz

import (
	"image/color"

	"github.com/katalvlaran/mazeviz/maze"
)

// Palette maps a display state to its fill color.
type Palette map[maze.Cell]color.Color

// DefaultPalette matches the classic maze-solving colors.
func DefaultPalette() Palette {
	return Palette{
		maze.Empty:    color.White,
		maze.Blocked:  color.Black,
		maze.Start:    color.RGBA{0, 128, 0, 255},
		maze.Goal:     color.RGBA{255, 0, 0, 255},
		maze.Path:     color.RGBA{0, 255, 255, 255},
		maze.Explored: color.RGBA{255, 255, 0, 255},
		maze.Current:  color.RGBA{0, 0, 255, 255},
		maze.Frontier: color.RGBA{255, 165, 0, 255},
	}
}

// Color returns the color for c, falling back to white.
func (p Palette) Color(c maze.Cell) color.Color {
	if col, ok := p[c]; ok {
		return col
	}

	return color.White
}
