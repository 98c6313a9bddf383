package tui

import (
	"fmt"
	stdcolor "image/color"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"templewatch/pkg/engine/geom"
	"templewatch/pkg/engine/palette"
	"templewatch/pkg/engine/terminal"
)

const swatch = "██"

type op struct {
	kind string
	geom string
	col  stdcolor.NRGBA
	text string
}

// TUIRenderer lists each frame's drawing operations as colored terminal lines. Text
// is measured in character cells of a fixed pixel size.
type TUIRenderer struct {
	out   io.Writer
	grid  terminal.CellGrid
	width int
	plain bool

	frame  int
	window geom.Rect
	ops    []op
}

// New creates a new TUI renderer writing to out; nil means stdout.
func New(out io.Writer) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TUIRenderer{out: out, grid: terminal.DefaultGrid, width: terminal.DefaultWidth}
}

// Init sizes the listing to the terminal and disables colors when stdout is not a
// terminal.
func (t *TUIRenderer) Init() error {
	t.width = terminal.GetWidth()
	t.plain = !terminal.IsTerminal()
	return nil
}

// SetPlain turns ANSI colors off or on.
func (t *TUIRenderer) SetPlain(plain bool) { t.plain = plain }

// MeasureText implements renderer.Measurer.
func (t *TUIRenderer) MeasureText(s string, scale float32) geom.Vec2 {
	if scale <= 0 {
		scale = 1
	}
	return geom.V(float32(runewidth.StringWidth(s))*t.grid.CellW*scale, t.grid.CellH*scale)
}

func (t *TUIRenderer) BeginFrame(window geom.Rect) {
	t.frame++
	t.window = window
	t.ops = t.ops[:0]
}

func (t *TUIRenderer) DrawBox(r geom.Rect, c stdcolor.NRGBA) {
	t.ops = append(t.ops, op{kind: "box", geom: rect(r), col: c})
}

func (t *TUIRenderer) DrawFrame(r geom.Rect, c stdcolor.NRGBA, thickness float32) {
	t.ops = append(t.ops, op{kind: "frame", geom: fmt.Sprintf("%s w%g", rect(r), thickness), col: c})
}

func (t *TUIRenderer) DrawLine(from, to geom.Vec2, thickness float32, c stdcolor.NRGBA) {
	t.ops = append(t.ops, op{kind: "line", geom: fmt.Sprintf("%s-%s w%g", point(from), point(to), thickness), col: c})
}

func (t *TUIRenderer) DrawText(s string, pos geom.Vec2, c stdcolor.NRGBA, scale float32) {
	t.ops = append(t.ops, op{kind: "text", geom: fmt.Sprintf("%s x%g", point(pos), scale), col: c, text: s})
}

// EndFrame writes the frame's listing.
func (t *TUIRenderer) EndFrame() {
	fmt.Fprint(t.out, t.render(!t.plain))
}

// Close implements renderer.Renderer.
func (t *TUIRenderer) Close() {}

// Listing returns the last frame's listing without colors.
func (t *TUIRenderer) Listing() string {
	return t.render(false)
}

// Len returns the number of operations in the current frame.
func (t *TUIRenderer) Len() int { return len(t.ops) }

func (t *TUIRenderer) render(colored bool) string {
	var b strings.Builder
	header := fmt.Sprintf("frame %d  window %gx%g  %d ops", t.frame, t.window.W, t.window.H, len(t.ops))
	if colored {
		header = color.Style{color.OpBold}.Sprint(header)
	}
	b.WriteString(header)
	b.WriteByte('\n')

	for _, o := range t.ops {
		line := fmt.Sprintf("%-5s %s %s", o.kind, palette.Hex(o.col), o.geom)
		if o.text != "" {
			line += " " + o.text
		}
		if t.width > 0 {
			line = runewidth.Truncate(line, t.width-runewidth.StringWidth(swatch)-1, "…")
		}
		if colored {
			sw := color.RGB(o.col.R, o.col.G, o.col.B).Sprint(swatch)
			b.WriteString(sw + " " + line)
		} else {
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func rect(r geom.Rect) string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.W, r.H)
}

func point(p geom.Vec2) string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
