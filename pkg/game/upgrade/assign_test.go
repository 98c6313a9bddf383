package upgrade

import (
	"image/color"
	"testing"

	"templewatch/pkg/engine/palette"
	"templewatch/pkg/game/catalog"
)

// placed is a Presence over a fixed list of room names.
type placed struct {
	cat   *catalog.Catalog
	names []string
}

func (p placed) HasRoom(name string) bool {
	for _, n := range p.names {
		if n == name {
			return true
		}
	}
	return false
}

func (p placed) HasType(typ string) bool {
	for _, n := range p.names {
		if t, ok := p.cat.Type(n); ok && t == typ {
			return true
		}
	}
	return false
}

func setup(t *testing.T, names ...string) (*Assigner, placed) {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	return NewAssigner(cat), placed{cat: cat, names: names}
}

func TestAssign_GarrisonToCommander(t *testing.T) {
	a, present := setup(t, "Commander's Chamber")
	res := a.Assign([]string{"Guardhouse"}, present, true)

	typeColor, ok := res.TypeColors["Garrison"]
	if !ok {
		t.Fatal("Garrison has no type color")
	}
	if got, ok := res.TargetColor("Commander's Chamber"); !ok || got != typeColor {
		t.Errorf("Commander's Chamber = %v, %v; want %v", got, ok, typeColor)
	}
}

func TestAssign_MaxTierExcluded(t *testing.T) {
	a, present := setup(t, "Commander's Headquarters")
	res := a.Assign([]string{"Guardhouse"}, present, true)
	if _, ok := res.TargetColor("Commander's Headquarters"); ok {
		t.Error("max-tier room received an upgrade color")
	}
	if len(res.TargetColors) != 0 {
		t.Errorf("TargetColors = %v, want empty", res.TargetColors)
	}
}

func TestAssign_AbsentTargetsIgnored(t *testing.T) {
	a, present := setup(t)
	res := a.Assign([]string{"Guardhouse"}, present, true)
	if len(res.TargetColors) != 0 {
		t.Errorf("TargetColors = %v, want empty", res.TargetColors)
	}
	if _, ok := res.TypeColors["Garrison"]; !ok {
		t.Error("type color should be assigned even with nothing to upgrade")
	}
}

func TestAssign_FirstWriterWins(t *testing.T) {
	// Thaumaturge and Sacrificial Chamber both upgrade Dynamo.
	a, present := setup(t, "Dynamo")
	res := a.Assign([]string{"Thaumaturge's Laboratory", "Altar of Sacrifice"}, present, true)

	if res.TypeColors["Thaumaturge"] != Palette[0] || res.TypeColors["Sacrificial Chamber"] != Palette[1] {
		t.Fatalf("TypeColors = %v", res.TypeColors)
	}
	if got := res.TargetColors["Dynamo"]; got != Palette[0] {
		t.Errorf("Dynamo = %v, want first card's color %v", got, Palette[0])
	}

	// Reversing the card order flips the winner.
	res = a.Assign([]string{"Altar of Sacrifice", "Thaumaturge's Laboratory"}, present, true)
	if got := res.TargetColors["Dynamo"]; got != res.TypeColors["Sacrificial Chamber"] {
		t.Errorf("Dynamo = %v, want Sacrificial Chamber's color", got)
	}
}

func TestAssign_PaletteAdvance(t *testing.T) {
	a, present := setup(t)
	tests := []struct {
		name       string
		cards      []string
		multiColor bool
		want       map[string]color.NRGBA
	}{
		{
			name:       "same type twice",
			cards:      []string{"Guardhouse", "Barracks", "Depot"},
			multiColor: true,
			want:       map[string]color.NRGBA{"Garrison": Palette[0], "Armoury": Palette[1]},
		},
		{
			name:       "unknown card does not consume a color",
			cards:      []string{"Broom Closet", "Depot"},
			multiColor: true,
			want:       map[string]color.NRGBA{"Armoury": Palette[0]},
		},
		{
			name:       "single color",
			cards:      []string{"Guardhouse", "Depot", "Workshop"},
			multiColor: false,
			want:       map[string]color.NRGBA{"Garrison": SingleColor, "Armoury": SingleColor, "Golem Works": SingleColor},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := a.Assign(tt.cards, present, tt.multiColor)
			if len(res.TypeColors) != len(tt.want) {
				t.Fatalf("TypeColors = %v, want %v", res.TypeColors, tt.want)
			}
			for typ, c := range tt.want {
				if res.TypeColors[typ] != c {
					t.Errorf("TypeColors[%q] = %v, want %v", typ, res.TypeColors[typ], c)
				}
			}
		})
	}
}

func TestAssign_PaletteWraps(t *testing.T) {
	a, present := setup(t)
	cards := []string{"Guardhouse", "Depot", "Workshop", "Dynamo", "Bronzeworks", "Surgeon's Ward", "Commander's Chamber"}
	res := a.Assign(cards, present, true)
	if got := res.TypeColors["Commander"]; got != Palette[0] {
		t.Errorf("seventh type = %v, want wrap to %v", got, Palette[0])
	}
}

func TestPresentUpgrader(t *testing.T) {
	a, present := setup(t, "Bronzeworks")
	typ, ok := a.PresentUpgrader("Depot", present)
	if !ok || typ != "Smithy" {
		t.Errorf("PresentUpgrader(Depot) = %q, %v; want Smithy", typ, ok)
	}
	if _, ok := a.PresentUpgrader("Workshop", present); ok {
		t.Error("Workshop has no upgrader; want none")
	}

	// Guardhouse is upgraded by Commander and Armoury; only Armoury is placed.
	a, present = setup(t, "Arsenal")
	if typ, _ := a.PresentUpgrader("Guardhouse", present); typ != "Armoury" {
		t.Errorf("PresentUpgrader(Guardhouse) = %q, want Armoury", typ)
	}
}

func TestUpgraderColor(t *testing.T) {
	a, _ := setup(t)
	res := Result{TypeColors: map[string]color.NRGBA{"Smithy": palette.Pink}}
	if got := a.UpgraderColor(res, "Smithy"); got != palette.Pink {
		t.Errorf("card color = %v, want pink", got)
	}
	if got := a.UpgraderColor(res, "Commander"); got != palette.Wheat {
		t.Errorf("catalog color = %v, want wheat", got)
	}
	if got := a.UpgraderColor(res, "Nothing"); got != fallbackUpgraderColor {
		t.Errorf("fallback = %v", got)
	}
}
