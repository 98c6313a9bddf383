package palette

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#FF0000", Red, false},
		{"#00FF0080", color.NRGBA{0, 255, 0, 128}, false},
		{"  #F5DEB3FF ", Wheat, false},
		{"#12345", color.NRGBA{}, true},
		{"#GG0000", color.NRGBA{}, true},
		{"#000000ZZ", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := ARGB(128, 255, 165, 0)
	got, err := ParseHex(Hex(c))
	if err != nil {
		t.Fatalf("ParseHex(Hex(%v)): %v", c, err)
	}
	if got != c {
		t.Errorf("round trip = %v, want %v", got, c)
	}
}

func TestWithAlpha(t *testing.T) {
	if got := WithAlpha(Cyan, 150); got.A != 150 || got.G != 255 {
		t.Errorf("WithAlpha(Cyan, 150) = %v", got)
	}
}

func TestTranslucentColorsAreNotPremultiplied(t *testing.T) {
	got, err := ParseHex("#FF000080")
	if err != nil {
		t.Fatal(err)
	}
	if got != (color.NRGBA{R: 255, A: 128}) {
		t.Fatalf("ParseHex(#FF000080) = %v", got)
	}
	// Half-transparent red premultiplies to half-strength red, not an out-of-range channel.
	if pre := color.RGBAModel.Convert(got).(color.RGBA); pre != (color.RGBA{R: 128, A: 128}) {
		t.Errorf("premultiplied = %v, want {128 0 0 128}", pre)
	}
	if pre := color.RGBAModel.Convert(ARGB(100, 0, 200, 0)).(color.RGBA); pre.G > pre.A {
		t.Errorf("ARGB(100, 0, 200, 0) premultiplies to %v, channel above alpha", pre)
	}
}
