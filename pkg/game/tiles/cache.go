package tiles

import (
	"log/slog"
	"time"

	"github.com/zyedidia/generic/mapset"

	"templewatch/pkg/engine/ui"
)

// DefaultRefreshInterval is how long a completed sweep stays authoritative.
const DefaultRefreshInterval = time.Second

// CacheConfig configures a Cache. Zero fields take defaults.
type CacheConfig struct {
	Interval time.Duration
	Now      func() time.Time
	Logger   *slog.Logger
}

// Cache memoizes analyzer results by tile identity. It is rebuilt wholesale by each sweep,
// never patched, so a lookup reflects the last sweep rather than the current instant.
type Cache struct {
	analyzer *Analyzer
	interval time.Duration
	now      func() time.Time
	log      *slog.Logger

	lastSweep time.Time
	forced    bool

	entries map[ui.ID]Entry
	rooms   mapset.Set[string]
	types   mapset.Set[string]
}

// NewCache returns an empty cache; the first RefreshIfDue always sweeps.
func NewCache(a *Analyzer, cfg CacheConfig) *Cache {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultRefreshInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	c := &Cache{
		analyzer: a,
		interval: cfg.Interval,
		now:      cfg.Now,
		log:      cfg.Logger,
		forced:   true,
	}
	c.clear()
	return c
}

func (c *Cache) clear() {
	c.entries = make(map[ui.ID]Entry)
	c.rooms = mapset.New[string]()
	c.types = mapset.New[string]()
}

// Invalidate drops every entry and forces the next RefreshIfDue to sweep.
func (c *Cache) Invalidate() {
	c.clear()
	c.forced = true
}

// Due reports whether a sweep would run now.
func (c *Cache) Due() bool {
	return c.forced || c.now().Sub(c.lastSweep) >= c.interval
}

// RefreshIfDue sweeps tiles when the interval has elapsed since the last sweep or the
// cache was invalidated. It reports whether a sweep ran.
func (c *Cache) RefreshIfDue(tiles []ui.Element) bool {
	if !c.Due() {
		return false
	}
	c.lastSweep = c.now()
	c.forced = false
	c.sweep(tiles)
	return true
}

func (c *Cache) sweep(tiles []ui.Element) {
	c.clear()
	visible := 0
	for _, tile := range tiles {
		if ui.IsNil(tile) || !tile.IsVisible() {
			continue
		}
		visible++
		tip := tile.Tooltip()
		if ui.IsNil(tip) {
			continue
		}
		e, ok := c.analyzer.Analyze(tip)
		if !ok {
			continue
		}
		c.entries[tile.ID()] = e
		c.rooms.Put(e.ID)
		if typ, ok := c.analyzer.rooms.Type(e.ID); ok {
			c.types.Put(typ)
		}
	}
	c.log.Debug("tile cache refreshed", "visible", visible, "identified", len(c.entries))
}

// Lookup returns the entry recorded for a tile by the last sweep.
func (c *Cache) Lookup(id ui.ID) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Len returns the number of identified tiles.
func (c *Cache) Len() int { return len(c.entries) }

// HasRoom reports whether any identified tile is the named room.
func (c *Cache) HasRoom(name string) bool { return c.rooms.Has(name) }

// HasType reports whether any identified tile is a room of the given type.
func (c *Cache) HasType(typ string) bool { return c.types.Has(typ) }
