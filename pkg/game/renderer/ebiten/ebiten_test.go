package ebiten

import (
	"image/color"
	"testing"

	"templewatch/pkg/engine/geom"
	"templewatch/pkg/game/renderer"
)

var _ renderer.Renderer = (*EbitenRenderer)(nil)

func TestMeasureText(t *testing.T) {
	e := New()
	if got := e.MeasureText("NEXT", 1); got != geom.Zero {
		t.Errorf("measure before Init = %v", got)
	}
	if err := e.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	small := e.MeasureText("Incursion: 2/4", 1)
	large := e.MeasureText("Incursion: 2/4", 2)
	if small.X <= 0 || small.Y <= 0 {
		t.Fatalf("measure = %v", small)
	}
	if large.X <= small.X || large.Y <= small.Y {
		t.Errorf("scale 2 (%v) not larger than scale 1 (%v)", large, small)
	}
	if e.face(0) != e.face(1) {
		t.Error("zero scale should share the scale 1 face")
	}
}

func TestDrawWithoutTarget(t *testing.T) {
	e := New()
	// Drawing outside a frame is a no-op rather than a panic.
	e.DrawBox(geom.R(0, 0, 10, 10), color.NRGBA{A: 255})
	e.DrawText("x", geom.Zero, color.NRGBA{A: 255}, 1)
	e.EndFrame()
	e.Close()
}
