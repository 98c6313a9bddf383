// Package temple is the overlay engine for one dungeon instance. The host feeds it object
// notifications and calls Render once per frame; everything it tracks is dropped on area
// change. All methods must be called from the same goroutine.
package temple

import (
	"errors"
	"log/slog"
	"time"

	"templewatch/pkg/engine/geom"
	"templewatch/pkg/engine/ui"
	"templewatch/pkg/engine/world"
	"templewatch/pkg/game/annotate"
	"templewatch/pkg/game/catalog"
	"templewatch/pkg/game/pedestal"
	"templewatch/pkg/game/renderer"
	"templewatch/pkg/game/settings"
	"templewatch/pkg/game/tiles"
	"templewatch/pkg/game/tracker"
)

var (
	ErrNoCatalog  = errors.New("temple: catalog is required")
	ErrNoRenderer = errors.New("temple: renderer is required")
)

// Host is the per-frame view of the game client.
type Host interface {
	InGame() bool
	// TempleConsole returns the temple console panel, or nil when the client has none.
	TempleConsole() ui.Element
	// BlockingPanelVisible reports whether a full-screen panel covers the world.
	BlockingPanelVisible() bool
	GroundLabels() []ui.Element
	Camera() world.Camera
	Window() geom.Rect
}

// Mode is which overlay a frame produced.
type Mode int

const (
	ModeOff Mode = iota
	ModeBlocked
	ModeWorld
	ModeConsole
)

func (m Mode) String() string {
	switch m {
	case ModeBlocked:
		return "blocked"
	case ModeWorld:
		return "world"
	case ModeConsole:
		return "console"
	default:
		return "off"
	}
}

// Frame is the composed output of one render pass.
type Frame struct {
	Mode        Mode
	Annotations []annotate.Annotation
	// Progress is the pedestal summary; zero outside world mode.
	Progress pedestal.Progress
}

// Config wires an Engine.
type Config struct {
	Catalog  *catalog.Catalog
	Rewards  map[string]catalog.Reward
	Settings *settings.Settings
	Renderer renderer.Renderer
	Logger   *slog.Logger
	// Now and RefreshInterval drive the tile cache; zero values use the wall clock and
	// tiles.DefaultRefreshInterval.
	Now             func() time.Time
	RefreshInterval time.Duration
}

// Engine is the overlay for one game client.
type Engine struct {
	settings *settings.Settings
	render   renderer.Renderer
	log      *slog.Logger

	tracked  *tracker.Set
	cache    *tiles.Cache
	composer *annotate.Composer
}

// New builds an engine. Settings default when nil; the catalog and renderer are required.
func New(cfg Config) (*Engine, error) {
	if cfg.Catalog == nil {
		return nil, ErrNoCatalog
	}
	if cfg.Renderer == nil {
		return nil, ErrNoRenderer
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Settings == nil {
		s := settings.Default()
		cfg.Settings = &s
	}
	if cfg.Rewards == nil {
		cfg.Rewards = catalog.DefaultRewards
	}

	return &Engine{
		settings: cfg.Settings,
		render:   cfg.Renderer,
		log:      cfg.Logger,
		tracked:  tracker.New(cfg.Rewards, cfg.Logger),
		cache: tiles.NewCache(tiles.NewAnalyzer(cfg.Catalog), tiles.CacheConfig{
			Interval: cfg.RefreshInterval,
			Now:      cfg.Now,
			Logger:   cfg.Logger,
		}),
		composer: annotate.New(annotate.Config{
			Rooms:    cfg.Catalog,
			Measurer: cfg.Renderer,
			Settings: cfg.Settings,
		}),
	}, nil
}

// Initialise feeds every object already present in the area through ObjectAppeared.
func (e *Engine) Initialise(objects []world.Object) {
	for _, o := range objects {
		e.ObjectAppeared(o)
	}
	e.log.Debug("initial sweep", "objects", len(objects), "tracked", e.tracked.Len())
}

// ObjectAppeared starts tracking o if it is relevant.
func (e *Engine) ObjectAppeared(o world.Object) { e.tracked.Appeared(o) }

// ObjectDisappeared stops tracking o.
func (e *Engine) ObjectDisappeared(o world.Object) { e.tracked.Disappeared(o) }

// AreaChanged drops everything tied to the previous area.
func (e *Engine) AreaChanged() {
	e.tracked.Reset()
	e.cache.Invalidate()
	e.log.Info("area changed, overlay state cleared")
}

// Tracked exposes the tracked objects.
func (e *Engine) Tracked() *tracker.Set { return e.tracked }

// Compose runs one render pass without drawing. The console overlay takes precedence; the
// world overlay is skipped while a blocking panel is open.
func (e *Engine) Compose(h Host) Frame {
	if !e.settings.Enable || h == nil || !h.InGame() {
		return Frame{Mode: ModeOff}
	}

	if panel := h.TempleConsole(); !ui.IsNil(panel) && panel.IsVisible() {
		return Frame{Mode: ModeConsole, Annotations: e.console(panel, h.Window())}
	}

	if h.BlockingPanelVisible() {
		return Frame{Mode: ModeBlocked}
	}

	cam := h.Camera()
	if cam == nil {
		return Frame{Mode: ModeWorld}
	}
	peds := e.tracked.Pedestals()
	progress := pedestal.Update(peds, cam)
	altar, _ := e.tracked.Altar()
	anns := e.composer.World(annotate.WorldFrame{
		Camera:       cam,
		Pedestals:    peds,
		Progress:     progress,
		Altar:        altar,
		Rewards:      e.tracked.Rewards(),
		GroundLabels: h.GroundLabels(),
	})
	return Frame{Mode: ModeWorld, Annotations: anns, Progress: progress}
}

func (e *Engine) console(panel ui.Element, window geom.Rect) []annotate.Annotation {
	if grid, ok := e.composer.Layout().Find(panel, ui.RoleTiles); ok {
		e.cache.RefreshIfDue(grid.Children())
	} else {
		e.log.Debug("temple console has no tile grid")
	}
	return e.composer.Console(annotate.ConsoleFrame{Panel: panel, Tiles: e.cache, Window: window})
}

// Render composes a frame and draws it. The frame is begun first so text is measured
// against this window's layout.
func (e *Engine) Render(h Host) Frame {
	window := geom.Rect{}
	if h != nil {
		window = h.Window()
	}
	e.render.BeginFrame(window)
	f := e.Compose(h)
	annotate.Draw(e.render, f.Annotations)
	e.render.EndFrame()
	return f
}
