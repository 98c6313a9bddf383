package world

import "templewatch/pkg/engine/geom"

// Entity is a plain Object used by scenes and tests.
type Entity struct {
	EntityID   ObjectID  `yaml:"id"`
	Path       string    `yaml:"metadata"`
	Position   geom.Vec3 `yaml:"pos"`
	Invalid    bool      `yaml:"invalid"`
	Untargeted bool      `yaml:"untargetable"`
	States     []Counter `yaml:"counters"`
}

// ID implements Object.
func (e *Entity) ID() ObjectID { return e.EntityID }

// Metadata implements Object.
func (e *Entity) Metadata() string { return e.Path }

// Pos implements Object.
func (e *Entity) Pos() geom.Vec3 { return e.Position }

// IsValid implements Object.
func (e *Entity) IsValid() bool { return e != nil && !e.Invalid }

// IsTargetable implements Object.
func (e *Entity) IsTargetable() bool { return !e.Untargeted }

// Counters implements Object.
func (e *Entity) Counters() []Counter { return e.States }

// SetCounter sets (or adds) a named counter.
func (e *Entity) SetCounter(name string, v int64) {
	for i := range e.States {
		if e.States[i].Name == name {
			e.States[i].Value = v
			return
		}
	}
	e.States = append(e.States, Counter{Name: name, Value: v})
}

// TopDown is an orthographic camera looking straight down on the X/Y plane. It maps world
// units to pixels with Scale, puts Origin at the top-left of the viewport, and reports
// anything outside the viewport as off-screen.
type TopDown struct {
	Origin   geom.Vec2 `yaml:"origin"`
	Scale    float32   `yaml:"scale"`
	Viewport geom.Rect `yaml:"viewport"`
}

// WorldToScreen implements Camera.
func (c TopDown) WorldToScreen(p geom.Vec3) geom.Vec2 {
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}
	s := geom.V((p.X-c.Origin.X)*scale, (p.Y-c.Origin.Y)*scale)
	if !c.Viewport.Empty() && !c.Viewport.Contains(s) {
		return geom.Zero
	}
	return s
}
