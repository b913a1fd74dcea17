package gui

import (
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"short rgb", "#f00", RGBA{R: 1, G: 0, B: 0, A: 1}},
		{"short rgba", "#f008", RGBA{R: 1, G: 0, B: 0, A: 136.0 / 255}},
		{"long rgb", "#3498db", RGBA{R: 52.0 / 255, G: 152.0 / 255, B: 219.0 / 255, A: 1}},
		{"long rgba", "#ff000080", RGBA{R: 1, G: 0, B: 0, A: 128.0 / 255}},
		{"no hash", "00ff00", RGBA{R: 0, G: 1, B: 0, A: 1}},
		{"uppercase", "#FF00FF", RGBA{R: 1, G: 0, B: 1, A: 1}},
		{"invalid length", "#ff", RGBA{R: 0, G: 0, B: 0, A: 1}},
	}

	const tolerance = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.in)
			if math.Abs(got.R-tt.want.R) > tolerance ||
				math.Abs(got.G-tt.want.G) > tolerance ||
				math.Abs(got.B-tt.want.B) > tolerance ||
				math.Abs(got.A-tt.want.A) > tolerance {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGBA
	}{
		{"red", 0, 1, 0.5, Red},
		{"green", 120, 1, 0.5, Green},
		{"blue", 240, 1, 0.5, Blue},
		{"white", 0, 0, 1, White},
		{"black", 0, 0, 0, Black},
		{"gray", 0, 0, 0.5, RGB(0.5, 0.5, 0.5)},
		{"hue wraps", 360, 1, 0.5, Red},
		{"negative hue", -120, 1, 0.5, Blue},
	}

	const tolerance = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSL(tt.h, tt.s, tt.l)
			if math.Abs(got.R-tt.want.R) > tolerance ||
				math.Abs(got.G-tt.want.G) > tolerance ||
				math.Abs(got.B-tt.want.B) > tolerance {
				t.Errorf("HSL(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestFromColorRoundtrip(t *testing.T) {
	original := RGBA{R: 0.8, G: 0.3, B: 0.5, A: 1}
	roundtripped := FromColor(original.Color())

	const tolerance = 0.005
	if math.Abs(original.R-roundtripped.R) > tolerance ||
		math.Abs(original.G-roundtripped.G) > tolerance ||
		math.Abs(original.B-roundtripped.B) > tolerance ||
		math.Abs(original.A-roundtripped.A) > tolerance {
		t.Errorf("roundtrip: %v became %v", original, roundtripped)
	}
}
