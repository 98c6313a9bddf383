// Package settings is the overlay's configuration surface: display toggles, numeric ranges
// and colors. Defaults are compiled in; a YAML file may override any subset of them.
package settings

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"templewatch/pkg/engine/palette"
)

// ErrOutOfRange is wrapped by Validate for every numeric setting outside its range.
var ErrOutOfRange = errors.New("setting out of range")

// Color is a straight-alpha color.NRGBA that reads and writes as "#RRGGBBAA".
type Color struct {
	color.NRGBA
}

// C wraps c.
func C(c color.NRGBA) Color { return Color{c} }

func (c Color) MarshalYAML() (any, error) {
	return palette.Hex(c.NRGBA), nil
}

func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	nrgba, err := palette.ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	c.NRGBA = nrgba
	return nil
}

// Settings holds every user-adjustable option.
type Settings struct {
	Enable          bool `yaml:"enable"`
	ShowNumbers     bool `yaml:"show_numbers"`
	ShowCircles     bool `yaml:"show_circles"`
	ShowConnections bool `yaml:"show_connections"`
	ShowRewards     bool `yaml:"show_rewards"`

	RewardTitleColor Color   `yaml:"reward_title_color"`
	RewardDescColor  Color   `yaml:"reward_desc_color"`
	RewardTextScale  float32 `yaml:"reward_text_scale"`

	UseMultiColorUpgrades bool `yaml:"use_multi_color_upgrades"`
	ShowUpgradeLines      bool `yaml:"show_upgrade_lines"`

	ActivatedColor    Color `yaml:"activated_color"`
	QueuedColor       Color `yaml:"queued_color"`
	NextUpColor       Color `yaml:"next_up_color"`
	NotActivatedColor Color `yaml:"not_activated_color"`
	NumberColor       Color `yaml:"number_color"`

	CircleRadius    float32 `yaml:"circle_radius"`
	CircleSegments  int     `yaml:"circle_segments"`
	CircleThickness int     `yaml:"circle_thickness"`
	NumberScale     float32 `yaml:"number_scale"`
	ArcMultiplier   float32 `yaml:"arc_multiplier"`

	AutoHideOnHover bool `yaml:"auto_hide_on_hover"`
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		Enable:          true,
		ShowNumbers:     true,
		ShowCircles:     true,
		ShowConnections: true,
		ShowRewards:     true,

		RewardTitleColor: C(palette.Cyan),
		RewardDescColor:  C(palette.White),
		RewardTextScale:  1,

		UseMultiColorUpgrades: true,
		ShowUpgradeLines:      true,

		ActivatedColor:    C(palette.ARGB(128, 0, 255, 0)),
		QueuedColor:       C(palette.ARGB(128, 255, 165, 0)),
		NextUpColor:       C(palette.ARGB(200, 0, 255, 100)),
		NotActivatedColor: C(palette.ARGB(128, 255, 0, 0)),
		NumberColor:       C(palette.White),

		CircleRadius:    25,
		CircleSegments:  32,
		CircleThickness: 3,
		NumberScale:     1,
		ArcMultiplier:   0.2,

		AutoHideOnHover: true,
	}
}

type bounds[T int | float32] struct {
	name     string
	val      *T
	min, max T
}

func (b bounds[T]) clamp() { *b.val = min(max(*b.val, b.min), b.max) }

func (b bounds[T]) check() error {
	if *b.val < b.min || *b.val > b.max {
		return fmt.Errorf("%w: %s = %v, want [%v, %v]", ErrOutOfRange, b.name, *b.val, b.min, b.max)
	}
	return nil
}

func (s *Settings) floats() []bounds[float32] {
	return []bounds[float32]{
		{"reward_text_scale", &s.RewardTextScale, 0.5, 3},
		{"circle_radius", &s.CircleRadius, 10, 50},
		{"number_scale", &s.NumberScale, 0.5, 2},
		{"arc_multiplier", &s.ArcMultiplier, 0, 1},
	}
}

func (s *Settings) ints() []bounds[int] {
	return []bounds[int]{
		{"circle_segments", &s.CircleSegments, 8, 64},
		{"circle_thickness", &s.CircleThickness, 1, 10},
	}
}

// Validate reports every numeric setting outside its declared range.
func (s *Settings) Validate() error {
	var errs []error
	for _, b := range s.floats() {
		errs = append(errs, b.check())
	}
	for _, b := range s.ints() {
		errs = append(errs, b.check())
	}
	return errors.Join(errs...)
}

// Normalize clamps every numeric setting into its declared range.
func (s *Settings) Normalize() {
	for _, b := range s.floats() {
		b.clamp()
	}
	for _, b := range s.ints() {
		b.clamp()
	}
}

// Decode reads YAML overrides on top of the defaults. Unknown keys are rejected; an empty
// document yields the defaults. Out-of-range values are clamped.
func Decode(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	s.Normalize()
	return s, nil
}

// Load reads settings from path. An empty path yields the defaults.
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode writes s as YAML.
func (s Settings) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return enc.Close()
}
