// Package world describes the tracked-object side of the host: objects that appear and
// disappear in the current area, their positions, their counter readouts, and the camera
// that projects them onto the screen.
package world

import "templewatch/pkg/engine/geom"

// ObjectID is the stable identity the host assigns to a tracked object.
type ObjectID uint64

// Counter is one named entry of an object's state-machine readout.
type Counter struct {
	Name  string `yaml:"name"`
	Value int64  `yaml:"value"`
}

// Object is a world object as reported by the host's tracker.
type Object interface {
	ID() ObjectID
	// Metadata is the object's opaque type tag, e.g. a resource path.
	Metadata() string
	Pos() geom.Vec3
	IsValid() bool
	IsTargetable() bool
	// Counters returns the live state-machine readout; nil when the object has none.
	Counters() []Counter
}

// Camera projects world positions to screen positions. Points it cannot place on screen
// project to geom.Zero.
type Camera interface {
	WorldToScreen(p geom.Vec3) geom.Vec2
}

// CounterValue returns the value of the named counter, or 0 if it is absent.
func CounterValue(o Object, name string) int64 {
	var v int64
	for _, c := range o.Counters() {
		if c.Name == name {
			v = c.Value
		}
	}
	return v
}
