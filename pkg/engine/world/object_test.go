package world

import (
	"testing"

	"templewatch/pkg/engine/geom"
)

func TestCounterValue(t *testing.T) {
	e := &Entity{States: []Counter{{Name: "queued", Value: 3}}}
	if got := CounterValue(e, "queued"); got != 3 {
		t.Errorf("CounterValue(queued) = %d, want 3", got)
	}
	if got := CounterValue(e, "activated"); got != 0 {
		t.Errorf("CounterValue(activated) = %d, want 0", got)
	}

	e.SetCounter("activated", 2)
	e.SetCounter("queued", 0)
	if got := CounterValue(e, "activated"); got != 2 {
		t.Errorf("after SetCounter, activated = %d, want 2", got)
	}
	if len(e.States) != 2 {
		t.Errorf("len(States) = %d, want 2", len(e.States))
	}
}

func TestTopDown(t *testing.T) {
	cam := TopDown{Origin: geom.V(10, 10), Scale: 2, Viewport: geom.R(0, 0, 100, 100)}

	if got := cam.WorldToScreen(geom.Vec3{X: 20, Y: 30}); got != geom.V(20, 40) {
		t.Errorf("WorldToScreen = %v, want {20 40}", got)
	}
	if got := cam.WorldToScreen(geom.Vec3{X: 500, Y: 10}); !got.IsZero() {
		t.Errorf("off-viewport point projected to %v, want zero sentinel", got)
	}

	unbounded := TopDown{}
	if got := unbounded.WorldToScreen(geom.Vec3{X: 3, Y: 4}); got != geom.V(3, 4) {
		t.Errorf("unbounded WorldToScreen = %v, want {3 4}", got)
	}
}
