// Package palette holds the named colors used by the room catalog, the settings defaults
// and the renderers, plus helpers to derive translucent variants. Every overlay color is a
// color.NRGBA: alpha is carried alongside the full-strength channels, never premultiplied.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Named colors. Values follow the common web/X11 color names.
var (
	Black      = color.NRGBA{0, 0, 0, 255}
	White      = color.NRGBA{255, 255, 255, 255}
	Red        = color.NRGBA{255, 0, 0, 255}
	Orange     = color.NRGBA{255, 165, 0, 255}
	Gold       = color.NRGBA{255, 215, 0, 255}
	Yellow     = color.NRGBA{255, 255, 0, 255}
	LightGreen = color.NRGBA{144, 238, 144, 255}
	LimeGreen  = color.NRGBA{50, 205, 50, 255}
	Cyan       = color.NRGBA{0, 255, 255, 255}
	Aqua       = color.NRGBA{0, 255, 255, 255}
	Blue       = color.NRGBA{0, 0, 255, 255}
	Magenta    = color.NRGBA{255, 0, 255, 255}
	Pink       = color.NRGBA{255, 192, 203, 255}
	Wheat      = color.NRGBA{245, 222, 179, 255}
	LightGray  = color.NRGBA{211, 211, 211, 255}
)

// ARGB builds a color from alpha-first components, the order the settings defaults use.
func ARGB(a, r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// Hex formats c as #RRGGBBAA.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseHex parses #RRGGBB or #RRGGBBAA. A missing alpha means opaque.
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 && len(s) != 9 {
		return color.NRGBA{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	c, err := colorful.Hex(s[:7])
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	out := color.NRGBA{R: r, G: g, B: b, A: 255}
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("color %q alpha: %w", s, err)
		}
		out.A = uint8(a)
	}
	return out, nil
}
