package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size is a terminal size in character cells.
type Size struct {
	Cols, Rows int
}

// GetSize returns the current terminal size.
// Falls back to defaults if the size cannot be determined.
func GetSize() Size {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return Size{Cols: DefaultWidth, Rows: DefaultHeight}
	}
	return Size{Cols: width, Rows: height}
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	return GetSize().Cols
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// CellGrid maps pixel coordinates onto a grid of character cells of a fixed pixel size.
type CellGrid struct {
	CellW, CellH float32
}

// DefaultGrid treats a cell as 8x16 pixels, a common fixed-width glyph box.
var DefaultGrid = CellGrid{CellW: 8, CellH: 16}

// Cell returns the column and row containing the pixel (x, y).
func (g CellGrid) Cell(x, y float32) (col, row int) {
	return floorDiv(x, g.CellW), floorDiv(y, g.CellH)
}

// Fit returns the grid that maps a window of the given pixel size onto s.
func Fit(windowW, windowH float32, s Size) CellGrid {
	if windowW <= 0 || windowH <= 0 || s.Cols <= 0 || s.Rows <= 0 {
		return DefaultGrid
	}
	return CellGrid{CellW: windowW / float32(s.Cols), CellH: windowH / float32(s.Rows)}
}

func floorDiv(v, d float32) int {
	if d <= 0 {
		return 0
	}
	q := v / d
	if q < 0 {
		return int(q) - 1
	}
	return int(q)
}
