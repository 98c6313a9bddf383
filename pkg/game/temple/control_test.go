package temple

import (
	"testing"

	"templewatch/pkg/engine/input"
	"templewatch/pkg/engine/world"
	"templewatch/pkg/game/settings"
)

func TestHandle_Toggles(t *testing.T) {
	s := settings.Default()
	e, _, _ := newEngine(t, &s)

	tests := []struct {
		action input.Action
		field  *bool
	}{
		{input.ActionToggleOverlay, &s.Enable},
		{input.ActionToggleCircles, &s.ShowCircles},
		{input.ActionToggleConnections, &s.ShowConnections},
		{input.ActionToggleNumbers, &s.ShowNumbers},
		{input.ActionToggleRewards, &s.ShowRewards},
		{input.ActionToggleUpgradeLines, &s.ShowUpgradeLines},
		{input.ActionToggleMultiColor, &s.UseMultiColorUpgrades},
	}
	for _, tt := range tests {
		t.Run(input.ActionName(tt.action), func(t *testing.T) {
			before := *tt.field
			if !e.Handle(tt.action, nil) {
				t.Fatal("not handled")
			}
			if *tt.field == before {
				t.Error("setting not flipped")
			}
			e.Handle(tt.action, nil)
			if *tt.field != before {
				t.Error("second toggle did not restore")
			}
		})
	}

	for _, a := range []input.Action{input.ActionQuit, input.ActionCopy, input.ActionNone} {
		if e.Handle(a, nil) {
			t.Errorf("%s handled by the engine", input.ActionName(a))
		}
	}
}

func TestHandle_AreaChangeAndResweep(t *testing.T) {
	e, _, _ := newEngine(t, nil)
	objs := []world.Object{pedestalEnt(1, 1), pedestalEnt(2, 2)}
	e.Initialise(objs)

	e.Handle(input.ActionAreaChange, objs)
	if e.Tracked().Len() != 0 {
		t.Fatalf("tracked after area change = %d", e.Tracked().Len())
	}

	// Resweeping twice must not double-count.
	e.Handle(input.ActionResweep, objs)
	e.Handle(input.ActionResweep, objs)
	if got := len(e.Tracked().Pedestals()); got != 2 {
		t.Errorf("pedestals after resweep = %d, want 2", got)
	}
}
