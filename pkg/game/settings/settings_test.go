package settings

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"templewatch/pkg/engine/palette"
)

func TestDefault_Valid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if s.ActivatedColor.NRGBA != palette.ARGB(128, 0, 255, 0) {
		t.Errorf("ActivatedColor = %v", s.ActivatedColor)
	}
	if s.CircleSegments != 32 || s.ArcMultiplier != 0.2 {
		t.Errorf("ranges = %d segments, %v arc", s.CircleSegments, s.ArcMultiplier)
	}
}

func TestDecode_Overrides(t *testing.T) {
	in := `
show_numbers: false
circle_radius: 40
next_up_color: "#112233"
queued_color: "#11223380"
`
	s, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s.ShowNumbers {
		t.Error("show_numbers not applied")
	}
	if !s.ShowCircles {
		t.Error("unspecified toggle lost its default")
	}
	if s.CircleRadius != 40 {
		t.Errorf("CircleRadius = %v, want 40", s.CircleRadius)
	}
	if got := s.NextUpColor.NRGBA; got != palette.ARGB(255, 0x11, 0x22, 0x33) {
		t.Errorf("NextUpColor = %v", got)
	}
	if got := s.QueuedColor.A; got != 0x80 {
		t.Errorf("QueuedColor alpha = %d, want 128", got)
	}
}

func TestDecode_Clamps(t *testing.T) {
	s, err := Decode(strings.NewReader("circle_segments: 500\nnumber_scale: 0.1\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s.CircleSegments != 64 || s.NumberScale != 0.5 {
		t.Errorf("clamped = %d segments, %v scale", s.CircleSegments, s.NumberScale)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown key", "show_everything: true\n"},
		{"bad color", "number_color: purple\n"},
		{"wrong type", "circle_segments: many\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.in)); err == nil {
				t.Error("Decode succeeded, want error")
			}
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	s, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s != Default() {
		t.Error("empty document did not yield defaults")
	}
}

func TestValidate(t *testing.T) {
	s := Default()
	s.CircleThickness = 0
	s.ArcMultiplier = 2
	err := s.Validate()
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Validate() = %v, want ErrOutOfRange", err)
	}
	for _, name := range []string{"circle_thickness", "arc_multiplier"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	s := Default()
	s.ShowRewards = false
	s.RewardTitleColor = C(palette.Gold)

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), `"#FFD700FF"`) && !strings.Contains(buf.String(), "'#FFD700FF'") {
		t.Errorf("encoded color missing:\n%s", buf.String())
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != s {
		t.Errorf("round trip = %+v, want %+v", got, s)
	}
}
