package annotate

import (
	"image/color"

	"github.com/leonelquinteros/gotext"

	"templewatch/pkg/engine/geom"
	"templewatch/pkg/engine/palette"
	"templewatch/pkg/engine/ui"
	"templewatch/pkg/game/catalog"
	"templewatch/pkg/game/renderer"
	"templewatch/pkg/game/settings"
	"templewatch/pkg/game/upgrade"
)

// dynamicGet translates keys that are not string literals.
var dynamicGet = gotext.Get

// Backdrops behind text. Alpha-first to match the settings defaults.
var (
	rewardBackdrop  = palette.ARGB(160, 0, 0, 0)
	counterBackdrop = palette.ARGB(180, 0, 0, 0)
	numberBackdrop  = palette.ARGB(100, 0, 0, 0)
	nextBackdrop    = palette.ARGB(150, 0, 100, 50)
	labelBackdrop   = palette.Black
)

const (
	labelPad       = 2
	cardGap        = 10
	windowMargin   = 10
	tileLabelLift  = 15
	rewardLift     = 40
	counterPad     = 8
	numberPad      = 3
	numberGap      = 5
	medallionFrame = 3
	upgradeLineW   = 2
	upgradeLineA   = 150
	arcSteps       = 16
	consoleScale   = 1
)

// Config wires a Composer.
type Config struct {
	Rooms      *catalog.Catalog
	Medallions []catalog.Medallion
	Measurer   renderer.Measurer
	// Settings is read on every call, so edits take effect on the next frame.
	Settings *settings.Settings
	// Layout locates the temple console sections; nil means ui.TempleConsoleLayout.
	Layout ui.Layout
}

// Composer builds annotations for both overlay modes.
type Composer struct {
	rooms      *catalog.Catalog
	medallions []catalog.Medallion
	assigner   *upgrade.Assigner
	measure    renderer.Measurer
	settings   *settings.Settings
	layout     ui.Layout
}

// New returns a composer for cfg.
func New(cfg Config) *Composer {
	if cfg.Medallions == nil {
		cfg.Medallions = catalog.DefaultMedallions
	}
	if cfg.Layout == nil {
		cfg.Layout = ui.TempleConsoleLayout
	}
	if cfg.Settings == nil {
		s := settings.Default()
		cfg.Settings = &s
	}
	return &Composer{
		rooms:      cfg.Rooms,
		medallions: cfg.Medallions,
		assigner:   upgrade.NewAssigner(cfg.Rooms),
		measure:    cfg.Measurer,
		settings:   cfg.Settings,
		layout:     cfg.Layout,
	}
}

// Layout returns the console layout in use.
func (c *Composer) Layout() ui.Layout { return c.layout }

func (c *Composer) size(s string, scale float32) geom.Vec2 {
	return c.measure.MeasureText(s, scale)
}

// labelAt appends a padded backdrop and s on top of it, and returns the backdrop.
func labelAt(dst []Annotation, s string, pos, size geom.Vec2, fg, bg color.NRGBA, scale, pad float32) ([]Annotation, geom.Rect) {
	back := geom.R(pos.X-pad, pos.Y-pad, size.X+2*pad, size.Y+2*pad)
	return append(dst, Box(back, bg), Text(s, pos, fg, scale)), back
}
