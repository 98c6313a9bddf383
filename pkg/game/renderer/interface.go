package renderer

import (
	"image/color"

	"templewatch/pkg/engine/geom"
)

// Measurer sizes text the way a renderer would draw it.
type Measurer interface {
	// MeasureText returns the width and height of s at the given scale.
	MeasureText(s string, scale float32) geom.Vec2
}

// Renderer defines the interface for overlay drawing backends.
// Implementations include a colored terminal listing, a character-cell view and Ebiten.
type Renderer interface {
	Measurer

	// Init prepares the backend (screen, fonts, window).
	Init() error

	// BeginFrame starts a new frame in a window of the given size.
	BeginFrame(window geom.Rect)

	// EndFrame presents what was drawn since BeginFrame.
	EndFrame()

	// DrawBox fills rect.
	DrawBox(rect geom.Rect, c color.NRGBA)

	// DrawFrame outlines rect with the given stroke thickness.
	DrawFrame(rect geom.Rect, c color.NRGBA, thickness float32)

	// DrawLine draws a straight segment.
	DrawLine(from, to geom.Vec2, thickness float32, c color.NRGBA)

	// DrawText draws s with its top-left corner at pos.
	DrawText(s string, pos geom.Vec2, c color.NRGBA, scale float32)

	// Close releases the backend.
	Close()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() error {
	if Current != nil {
		return Current.Init()
	}
	return nil
}

// Close releases the current renderer and clears Current
func Close() {
	if Current != nil {
		Current.Close()
		Current = nil
	}
}
