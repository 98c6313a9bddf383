package cells

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"templewatch/pkg/engine/geom"
	"templewatch/pkg/engine/input"
	"templewatch/pkg/engine/terminal"
)

// Renderer draws onto a Canvas and flushes it to a tcell screen on EndFrame.
type Renderer struct {
	screen tcell.Screen
	canvas *Canvas
	own    bool
}

// New returns a renderer on screen. A nil screen opens the terminal on Init.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Init opens the screen if needed.
func (r *Renderer) Init() error {
	if r.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		r.screen = s
		r.own = true
	}
	if err := r.screen.Init(); err != nil {
		return err
	}
	r.screen.Clear()
	return nil
}

// Screen returns the underlying screen.
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// Canvas returns the canvas of the current frame.
func (r *Renderer) Canvas() *Canvas { return r.canvas }

// MeasureText implements renderer.Measurer in pixels of the current grid.
func (r *Renderer) MeasureText(s string, scale float32) geom.Vec2 {
	grid := terminal.DefaultGrid
	if r.canvas != nil {
		grid = r.canvas.Grid
	}
	// Cells cannot scale text; a label always takes one row.
	return geom.V(float32(runewidth.StringWidth(s))*grid.CellW, grid.CellH)
}

// BeginFrame fits the window onto the screen's cells and starts a blank canvas.
func (r *Renderer) BeginFrame(window geom.Rect) {
	cols, rows := r.screen.Size()
	grid := terminal.Fit(window.W, window.H, terminal.Size{Cols: cols, Rows: rows})
	if r.canvas == nil || r.canvas.Cols != cols || r.canvas.Rows != rows || r.canvas.Grid != grid {
		r.canvas = NewCanvas(cols, rows, grid)
		return
	}
	r.canvas.Clear()
}

func (r *Renderer) DrawBox(rect geom.Rect, c color.NRGBA) { r.canvas.Box(rect, c) }

func (r *Renderer) DrawFrame(rect geom.Rect, c color.NRGBA, _ float32) { r.canvas.Frame(rect, c) }

func (r *Renderer) DrawLine(from, to geom.Vec2, _ float32, c color.NRGBA) { r.canvas.Line(from, to, c) }

func (r *Renderer) DrawText(s string, pos geom.Vec2, c color.NRGBA, _ float32) {
	r.canvas.Text(s, pos, c)
}

// EndFrame copies the canvas to the screen and shows it.
func (r *Renderer) EndFrame() {
	Flush(r.screen, r.canvas)
	r.screen.Show()
}

// Close finalizes a screen the renderer opened itself.
func (r *Renderer) Close() {
	if r.own && r.screen != nil {
		r.screen.Fini()
	}
}

// NextKey blocks until a key is pressed. It returns false once the screen is finalized.
func (r *Renderer) NextKey() (input.RawInput, bool) {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return input.RawInput{}, false
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if code := keyCode(ev); code != "" {
				return input.RawInput{Device: input.DeviceTerminal, Code: code, Timestamp: ev.When()}, true
			}
		}
	}
}

func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "space"
		}
		return strings.ToLower(string(ev.Rune()))
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyCtrlC:
		return "q"
	}
	if k := ev.Key(); k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return fmt.Sprintf("f%d", k-tcell.KeyF1+1)
	}
	return ""
}

// Flush writes every canvas cell to screen.
func Flush(screen tcell.Screen, c *Canvas) {
	if c == nil {
		return
	}
	for y := 0; y < c.Rows; y++ {
		for x := 0; x < c.Cols; x++ {
			cell := c.At(x, y)
			if cell.Rune == 0 {
				continue
			}
			screen.SetContent(x, y, cell.Rune, nil, style(cell))
		}
	}
}

func style(c Cell) tcell.Style {
	st := tcell.StyleDefault
	if c.Fg.A != 0 {
		st = st.Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B)))
	}
	if c.Bg.A != 0 {
		st = st.Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	}
	return st
}
