// Package pedestal derives each pedestal's activation state from its counter readout and
// reconstructs the activation sequence for drawing.
package pedestal

import (
	"templewatch/pkg/engine/geom"
	"templewatch/pkg/engine/world"
)

// Counter names in a pedestal's state-machine readout.
const (
	CounterActivated = "activated"
	CounterQueued    = "queued"
)

// State is a pedestal's position in the activation sequence.
type State int

const (
	NotActivated State = iota
	Queued
	Activated
)

func (s State) String() string {
	switch s {
	case Queued:
		return "queued"
	case Activated:
		return "activated"
	default:
		return "not activated"
	}
}

// Derive maps the two counters to a state. Activated wins whenever its counter is set.
func Derive(activatedSeq, queuePos int64) State {
	switch {
	case activatedSeq > 0:
		return Activated
	case queuePos > 0:
		return Queued
	default:
		return NotActivated
	}
}

// Pedestal is a tracked numbered pedestal. Only Object and Number are owned; the other
// fields are recomputed by Update every frame.
type Pedestal struct {
	Object world.Object
	Number int

	ActivatedSeq  int64
	QueuePosition int64
	State         State
	Screen        geom.Vec2
}

// Update refreshes the counters, the derived state and the screen position. An invalid
// object keeps its last values.
func (p *Pedestal) Update(cam world.Camera) {
	if p.Object == nil || !p.Object.IsValid() {
		return
	}

	p.ActivatedSeq = 0
	p.QueuePosition = 0
	for _, c := range p.Object.Counters() {
		switch c.Name {
		case CounterActivated:
			p.ActivatedSeq = max(c.Value, 0)
		case CounterQueued:
			p.QueuePosition = max(c.Value, 0)
		}
	}
	p.State = Derive(p.ActivatedSeq, p.QueuePosition)
	p.Screen = cam.WorldToScreen(p.Object.Pos())
}

// OnScreen reports whether the last projection placed the pedestal on screen.
func (p *Pedestal) OnScreen() bool {
	return !p.Screen.IsZero()
}
