// Package ebiten draws the overlay into an Ebiten window.
package ebiten

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"templewatch/pkg/engine/geom"
)

// baseFontSize is the pixel size of text drawn at scale 1.
const baseFontSize = 14

// EbitenRenderer implements renderer.Renderer on an *ebiten.Image. Drawing only happens
// between BeginFrame and EndFrame while a target is set, which the Viewer does from
// inside Ebiten's Draw callback.
type EbitenRenderer struct {
	source *text.GoTextFaceSource
	faces  map[float32]*text.GoTextFace
	target *ebiten.Image
}

// New creates a renderer. Init must be called before text is measured.
func New() *EbitenRenderer {
	return &EbitenRenderer{faces: make(map[float32]*text.GoTextFace)}
}

// Init loads the UI font.
func (e *EbitenRenderer) Init() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("ebiten: load font: %w", err)
	}
	e.source = src
	clear(e.faces)
	return nil
}

// SetTarget sets the image the next frame draws into.
func (e *EbitenRenderer) SetTarget(img *ebiten.Image) { e.target = img }

// face returns a cached face for scale.
func (e *EbitenRenderer) face(scale float32) *text.GoTextFace {
	if scale <= 0 {
		scale = 1
	}
	if f, ok := e.faces[scale]; ok {
		return f
	}
	f := &text.GoTextFace{Source: e.source, Size: baseFontSize * float64(scale)}
	e.faces[scale] = f
	return f
}

// MeasureText implements renderer.Measurer.
func (e *EbitenRenderer) MeasureText(s string, scale float32) geom.Vec2 {
	if e.source == nil {
		return geom.Zero
	}
	f := e.face(scale)
	w, h := text.Measure(s, f, f.Size)
	return geom.V(float32(w), float32(h))
}

func (e *EbitenRenderer) BeginFrame(geom.Rect) {}

func (e *EbitenRenderer) EndFrame() { e.target = nil }

func (e *EbitenRenderer) DrawBox(r geom.Rect, c color.NRGBA) {
	if e.target == nil || r.Empty() {
		return
	}
	vector.DrawFilledRect(e.target, r.X, r.Y, r.W, r.H, c, false)
}

func (e *EbitenRenderer) DrawFrame(r geom.Rect, c color.NRGBA, thickness float32) {
	if e.target == nil || r.Empty() {
		return
	}
	vector.StrokeRect(e.target, r.X, r.Y, r.W, r.H, thickness, c, false)
}

func (e *EbitenRenderer) DrawLine(from, to geom.Vec2, thickness float32, c color.NRGBA) {
	if e.target == nil {
		return
	}
	vector.StrokeLine(e.target, from.X, from.Y, to.X, to.Y, thickness, c, true)
}

func (e *EbitenRenderer) DrawText(s string, pos geom.Vec2, c color.NRGBA, scale float32) {
	if e.target == nil || e.source == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(e.target, s, e.face(scale), op)
}

// Close implements renderer.Renderer.
func (e *EbitenRenderer) Close() { e.target = nil }
