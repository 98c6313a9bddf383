package scene

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"templewatch/pkg/engine/ui"
	"templewatch/pkg/game/annotate"
	"templewatch/pkg/game/catalog"
	"templewatch/pkg/game/renderer/tui"
	"templewatch/pkg/game/temple"
)

func TestBuiltins(t *testing.T) {
	names := Builtins()
	for _, want := range []string{"console", "world"} {
		if !slices.Contains(names, want) {
			t.Errorf("Builtins() = %v, missing %q", names, want)
		}
	}
}

func TestLoad_World(t *testing.T) {
	s, err := Load("world")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.InGame() || s.BlockingPanelVisible() {
		t.Errorf("flags = in_game %v, blocked %v", s.InGame(), s.BlockingPanelVisible())
	}
	if s.TempleConsole() != nil {
		t.Error("world scene should have no console")
	}
	if got := len(s.Objects()); got != 8 {
		t.Errorf("objects = %d, want 8", got)
	}
	labels := s.GroundLabels()
	if len(labels) != 2 || labels[0].ID() == 0 || labels[0].ID() == labels[1].ID() {
		t.Errorf("ground labels not numbered: %+v", labels)
	}
	if w := s.Window(); w.W != 1280 || w.H != 720 {
		t.Errorf("window = %+v", w)
	}
}

func TestLoad_ConsoleIDsUnique(t *testing.T) {
	s, err := Load("console")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	seen := map[ui.ID]bool{}
	var walk func(e ui.Element)
	walk = func(e ui.Element) {
		if ui.IsNil(e) {
			return
		}
		if e.ID() == 0 || seen[e.ID()] {
			t.Errorf("node %q has id %d", e.Text(), e.ID())
		}
		seen[e.ID()] = true
		walk(e.Tooltip())
		for _, k := range e.Children() {
			walk(k)
		}
	}
	walk(s.TempleConsole())
	if len(seen) < 20 {
		t.Errorf("only %d nodes numbered", len(seen))
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"no window", "in_game: true\n"},
		{"missing id", "window: {w: 10, h: 10}\nobjects:\n  - metadata: a\n"},
		{"duplicate id", "window: {w: 10, h: 10}\nobjects:\n  - id: 1\n  - id: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if !errors.Is(err, ErrInvalidScene) {
				t.Errorf("err = %v, want ErrInvalidScene", err)
			}
		})
	}

	if _, err := Decode(strings.NewReader("window: {w: 10, h: 10}\nweather: rain\n")); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocked.yaml")
	doc := "in_game: true\nblocking_panel: true\nwindow: {w: 800, h: 600}\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.BlockingPanelVisible() {
		t.Error("blocking panel not read")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file loaded")
	}
}

func newEngine(t *testing.T) *temple.Engine {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	e, err := temple.New(temple.Config{
		Catalog:  cat,
		Renderer: tui.New(&bytes.Buffer{}),
	})
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func texts(anns []annotate.Annotation) []string {
	var out []string
	for _, a := range anns {
		if a.Kind == annotate.KindText {
			out = append(out, a.Text)
		}
	}
	return out
}

func TestEngine_WorldScene(t *testing.T) {
	s, err := Load("world")
	if err != nil {
		t.Fatal(err)
	}
	e := newEngine(t)
	e.Initialise(s.Objects())

	f := e.Compose(s)
	if f.Mode != temple.ModeWorld {
		t.Fatalf("mode = %v", f.Mode)
	}
	if f.Progress.Total != 4 || f.Progress.Count() != 1 {
		t.Errorf("progress = %+v", f.Progress)
	}
	got := texts(f.Annotations)
	for _, want := range []string{"Incursion: 1/4", "Gemcutter", "Gem Corrupter", "NEXT"} {
		if !slices.Contains(got, want) {
			t.Errorf("texts %q missing %q", got, want)
		}
	}
	// The Regal bench is untargetable.
	if slices.Contains(got, "Regal Bench") {
		t.Error("untargetable bench labelled")
	}
}

func TestEngine_ConsoleScene(t *testing.T) {
	s, err := Load("console")
	if err != nil {
		t.Fatal(err)
	}
	e := newEngine(t)

	f := e.Compose(s)
	if f.Mode != temple.ModeConsole {
		t.Fatalf("mode = %v", f.Mode)
	}
	got := texts(f.Annotations)
	for _, want := range []string{
		"Upgrades: Commander's Chamber",
		"Upgrades: Dynamo",
		"Unique Item (1-Use)",
		"Mirror of Kalandra",
		"Adds: Hall of Shadows",
		"Increase Max Crystal Capacity",
	} {
		if !slices.Contains(got, want) {
			t.Errorf("texts %q missing %q", got, want)
		}
	}
}
