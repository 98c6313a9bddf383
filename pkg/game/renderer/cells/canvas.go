// Package cells rasterizes overlay drawing onto a grid of character cells and presents it
// on a tcell screen.
package cells

import (
	"image/color"

	"github.com/mattn/go-runewidth"

	"templewatch/pkg/engine/geom"
	"templewatch/pkg/engine/terminal"
)

// Glyphs used for non-text primitives.
const (
	GlyphLine  = '•'
	GlyphFrame = '▒'
	glyphBlank = ' '
)

// Cell is one character cell. A zero Fg or Bg alpha means the terminal default.
type Cell struct {
	Rune rune
	Fg   color.NRGBA
	Bg   color.NRGBA
}

// Canvas is a fixed-size grid of cells addressed by pixel coordinates through a CellGrid.
// Drawing outside the grid is clipped.
type Canvas struct {
	Cols, Rows int
	Grid       terminal.CellGrid
	cells      []Cell
}

// NewCanvas returns a blank canvas.
func NewCanvas(cols, rows int, grid terminal.CellGrid) *Canvas {
	c := &Canvas{Cols: max(cols, 0), Rows: max(rows, 0), Grid: grid}
	c.cells = make([]Cell, c.Cols*c.Rows)
	c.Clear()
	return c
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: glyphBlank}
	}
}

// At returns the cell at (col, row); outside the grid it returns a blank cell.
func (c *Canvas) At(col, row int) Cell {
	if !c.inside(col, row) {
		return Cell{Rune: glyphBlank}
	}
	return c.cells[row*c.Cols+col]
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < c.Cols && row < c.Rows
}

func (c *Canvas) cell(col, row int) *Cell {
	if !c.inside(col, row) {
		return nil
	}
	return &c.cells[row*c.Cols+col]
}

// cellRange returns the inclusive cell bounds covered by r.
func (c *Canvas) cellRange(r geom.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = c.Grid.Cell(r.Left(), r.Top())
	c1, r1 = c.Grid.Cell(r.Right()-0.001, r.Bottom()-0.001)
	return
}

// Box fills r with a background color, keeping any glyphs already there.
func (c *Canvas) Box(r geom.Rect, col color.NRGBA) {
	if r.Empty() {
		return
	}
	c0, r0, c1, r1 := c.cellRange(r)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			if cell := c.cell(x, y); cell != nil {
				cell.Bg = col
				cell.Rune = glyphBlank
			}
		}
	}
}

// Frame outlines r one cell thick.
func (c *Canvas) Frame(r geom.Rect, col color.NRGBA) {
	if r.Empty() {
		return
	}
	c0, r0, c1, r1 := c.cellRange(r)
	for x := c0; x <= c1; x++ {
		c.plot(x, r0, GlyphFrame, col)
		c.plot(x, r1, GlyphFrame, col)
	}
	for y := r0; y <= r1; y++ {
		c.plot(c0, y, GlyphFrame, col)
		c.plot(c1, y, GlyphFrame, col)
	}
}

// Line plots a cell-resolution Bresenham line.
func (c *Canvas) Line(from, to geom.Vec2, col color.NRGBA) {
	x0, y0 := c.Grid.Cell(from.X, from.Y)
	x1, y1 := c.Grid.Cell(to.X, to.Y)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.plot(x0, y0, GlyphLine, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Text writes s starting at the cell containing pos. Wide runes take two cells.
func (c *Canvas) Text(s string, pos geom.Vec2, col color.NRGBA) {
	x, y := c.Grid.Cell(pos.X, pos.Y)
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.plot(x, y, r, col)
		for i := 1; i < w; i++ {
			if cell := c.cell(x+i, y); cell != nil {
				cell.Rune = 0
			}
		}
		x += w
	}
}

func (c *Canvas) plot(x, y int, r rune, col color.NRGBA) {
	if cell := c.cell(x, y); cell != nil {
		cell.Rune = r
		cell.Fg = col
	}
}

// Row returns the glyphs of one row as a string, skipping wide-rune continuations.
func (c *Canvas) Row(row int) string {
	var b []rune
	for x := 0; x < c.Cols; x++ {
		if r := c.At(x, row).Rune; r != 0 {
			b = append(b, r)
		}
	}
	return string(b)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
