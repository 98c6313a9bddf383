// Package annotate decides what the overlay draws: every label, box, frame and line, with
// its color and anchor. Sizes come from a renderer.Measurer; drawing is left to Draw.
package annotate

import (
	"image/color"

	"templewatch/pkg/engine/geom"
	"templewatch/pkg/game/renderer"
)

// Kind selects which fields of an Annotation are meaningful.
type Kind int

const (
	KindBox Kind = iota
	KindFrame
	KindLine
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindFrame:
		return "frame"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Annotation is one drawing instruction.
type Annotation struct {
	Kind  Kind
	Color color.NRGBA

	// Rect is used by boxes and frames.
	Rect geom.Rect
	// From and To are used by lines.
	From, To geom.Vec2
	// Pos is the top-left corner of text.
	Pos  geom.Vec2
	Text string

	Thickness float32
	Scale     float32
}

// Box fills r with c.
func Box(r geom.Rect, c color.NRGBA) Annotation {
	return Annotation{Kind: KindBox, Rect: r, Color: c}
}

// Frame outlines r with a stroke of the given thickness.
func Frame(r geom.Rect, c color.NRGBA, thickness float32) Annotation {
	return Annotation{Kind: KindFrame, Rect: r, Color: c, Thickness: thickness}
}

// Line joins from and to with a straight segment.
func Line(from, to geom.Vec2, thickness float32, c color.NRGBA) Annotation {
	return Annotation{Kind: KindLine, From: from, To: to, Thickness: thickness, Color: c}
}

// Text places s with its top-left corner at pos.
func Text(s string, pos geom.Vec2, c color.NRGBA, scale float32) Annotation {
	return Annotation{Kind: KindText, Text: s, Pos: pos, Color: c, Scale: scale}
}

// Polyline appends one line per consecutive pair of pts.
func Polyline(dst []Annotation, pts []geom.Vec2, thickness float32, c color.NRGBA) []Annotation {
	for i := 1; i < len(pts); i++ {
		dst = append(dst, Line(pts[i-1], pts[i], thickness, c))
	}
	return dst
}

// Draw sends anns to r in order.
func Draw(r renderer.Renderer, anns []Annotation) {
	for _, a := range anns {
		switch a.Kind {
		case KindBox:
			r.DrawBox(a.Rect, a.Color)
		case KindFrame:
			r.DrawFrame(a.Rect, a.Color, a.Thickness)
		case KindLine:
			r.DrawLine(a.From, a.To, a.Thickness, a.Color)
		case KindText:
			r.DrawText(a.Text, a.Pos, a.Color, a.Scale)
		}
	}
}
