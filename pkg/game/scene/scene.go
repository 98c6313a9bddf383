// Package scene loads static snapshots of a game client from YAML. A scene stands in for
// both the world tracker (its objects) and the UI tree provider (its console panel and
// ground labels), so the overlay can be run and inspected without a live client.
package scene

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"templewatch/pkg/engine/geom"
	"templewatch/pkg/engine/ui"
	"templewatch/pkg/engine/world"
)

var ErrInvalidScene = errors.New("scene: invalid scene")

//go:embed scenes/*.yaml
var builtin embed.FS

// Scene is one frame's worth of host state.
type Scene struct {
	Playing  bool            `yaml:"in_game"`
	Blocked  bool            `yaml:"blocking_panel"`
	Bounds   geom.Rect       `yaml:"window"`
	View     world.TopDown   `yaml:"camera"`
	Console  *ui.Node        `yaml:"console"`
	Labels   []*ui.Node      `yaml:"ground_labels"`
	Entities []*world.Entity `yaml:"objects"`
}

// InGame implements temple.Host.
func (s *Scene) InGame() bool { return s.Playing }

// TempleConsole implements temple.Host.
func (s *Scene) TempleConsole() ui.Element {
	if s.Console == nil {
		return nil
	}
	return s.Console
}

// BlockingPanelVisible implements temple.Host.
func (s *Scene) BlockingPanelVisible() bool { return s.Blocked }

// GroundLabels implements temple.Host.
func (s *Scene) GroundLabels() []ui.Element {
	out := make([]ui.Element, 0, len(s.Labels))
	for _, l := range s.Labels {
		out = append(out, l)
	}
	return out
}

// Camera implements temple.Host.
func (s *Scene) Camera() world.Camera { return s.View }

// Window implements temple.Host.
func (s *Scene) Window() geom.Rect { return s.Bounds }

// Objects returns the scene's objects for the engine's initial sweep.
func (s *Scene) Objects() []world.Object {
	out := make([]world.Object, 0, len(s.Entities))
	for _, e := range s.Entities {
		out = append(out, e)
	}
	return out
}

// AssignIDs numbers every UI node that has no ID yet.
func (s *Scene) AssignIDs() {
	next := s.Console.AssignIDs(1)
	for _, l := range s.Labels {
		next = l.AssignIDs(next)
	}
}

// Validate reports every defect in the scene.
func (s *Scene) Validate() error {
	var errs []error
	if s.Bounds.Empty() {
		errs = append(errs, fmt.Errorf("%w: window %vx%v is empty", ErrInvalidScene, s.Bounds.W, s.Bounds.H))
	}
	seen := make(map[world.ObjectID]bool, len(s.Entities))
	for i, e := range s.Entities {
		switch {
		case e == nil:
			errs = append(errs, fmt.Errorf("%w: object %d is empty", ErrInvalidScene, i))
		case e.EntityID == 0:
			errs = append(errs, fmt.Errorf("%w: object %d (%s) has no id", ErrInvalidScene, i, e.Path))
		case seen[e.EntityID]:
			errs = append(errs, fmt.Errorf("%w: duplicate object id %d", ErrInvalidScene, e.EntityID))
		default:
			seen[e.EntityID] = true
		}
	}
	return errors.Join(errs...)
}

// Decode reads a scene, rejecting unknown fields, and numbers its UI nodes.
func Decode(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScene)
		}
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.AssignIDs()
	return &s, nil
}

// Load reads a scene from a file, or a built-in scene when name has no extension and a
// built-in of that name exists.
func Load(name string) (*Scene, error) {
	if path.Ext(name) == "" && slices.Contains(Builtins(), name) {
		f, err := builtin.Open("scenes/" + name + ".yaml")
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return Decode(f)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// Builtins lists the names of the embedded scenes.
func Builtins() []string {
	entries, _ := builtin.ReadDir("scenes")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names
}
