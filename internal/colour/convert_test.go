package colour

import (
	"strings"
	"testing"
)

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want HSL
	}{
		{name: "pure red", hex: "#FF0000", want: HSL{H: 0, S: 100, L: 50}},
		{name: "pure green", hex: "#00FF00", want: HSL{H: 120, S: 100, L: 50}},
		{name: "pure blue", hex: "#0000FF", want: HSL{H: 240, S: 100, L: 50}},
		{name: "white", hex: "#FFFFFF", want: HSL{H: 0, S: 0, L: 100}},
		{name: "black", hex: "#000000", want: HSL{H: 0, S: 0, L: 0}},
		{name: "mid grey", hex: "#808080", want: HSL{H: 0, S: 0, L: 50}},
		{name: "documented example", hex: "#FF5733", want: HSL{H: 11, S: 100, L: 60}},
		{name: "sky blue", hex: "#87CEEB", want: HSL{H: 197, S: 71, L: 73}},
		{name: "lowercase accepted", hex: "#ff5733", want: HSL{H: 11, S: 100, L: 60}},
		{name: "no hash prefix", hex: "FF5733", want: HSL{H: 11, S: 100, L: 60}},
		{name: "malformed short", hex: "#FFF", want: HSL{}},
		{name: "malformed non-hex", hex: "#GGGGGG", want: HSL{}},
		{name: "empty", hex: "", want: HSL{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HexToHSL(tt.hex)
			if got != tt.want {
				t.Errorf("HexToHSL(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexToHSLRanges(t *testing.T) {
	// Sweep a grid of the RGB cube and check the output stays in range.
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				hex := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}.Hex()
				hsl := HexToHSL(hex)
				if hsl.H < 0 || hsl.H > 360 {
					t.Fatalf("HexToHSL(%q).H = %d out of range", hex, hsl.H)
				}
				if hsl.S < 0 || hsl.S > 100 {
					t.Fatalf("HexToHSL(%q).S = %d out of range", hex, hsl.S)
				}
				if hsl.L < 0 || hsl.L > 100 {
					t.Fatalf("HexToHSL(%q).L = %d out of range", hex, hsl.L)
				}
			}
		}
	}
}

func TestHexToHSLDeterminism(t *testing.T) {
	// Same input must produce identical output, including rounding.
	for i := 0; i < 100; i++ {
		if got := HexToHSL("#87CEEB"); got != (HSL{H: 197, S: 71, L: 73}) {
			t.Fatalf("conversion unstable on iteration %d: %+v", i, got)
		}
	}
}

func TestParseHex(t *testing.T) {
	rgb, ok := ParseHex("#FF5733")
	if !ok {
		t.Fatal("ParseHex rejected a valid hex")
	}
	if rgb != (RGB{R: 0xFF, G: 0x57, B: 0x33}) {
		t.Errorf("ParseHex(#FF5733) = %+v", rgb)
	}

	if _, ok := ParseHex("not-a-colour"); ok {
		t.Error("ParseHex accepted malformed input")
	}
}

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#ff5733", "#FF5733"},
		{"ff5733", "#FF5733"},
		{"#FF5733", "#FF5733"},
		{"#xyz", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeHex(tt.in); got != tt.want {
			t.Errorf("NormalizeHex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHSLToRGBRoundTrip(t *testing.T) {
	// HSL -> RGB -> HSL should land close to where it started. Exact
	// round-trips are not possible with integer percentages, so allow a
	// small tolerance.
	inputs := []HSL{
		{H: 0, S: 100, L: 50},
		{H: 120, S: 100, L: 50},
		{H: 240, S: 100, L: 50},
		{H: 33, S: 45, L: 60},
		{H: 197, S: 71, L: 73},
		{H: 0, S: 0, L: 50},
	}

	for _, in := range inputs {
		rgb := HSLToRGB(in)
		out := HexToHSL(rgb.Hex())
		if in.S == 0 {
			if out.S != 0 || abs(out.L-in.L) > 1 {
				t.Errorf("round trip %+v -> %s -> %+v", in, rgb.Hex(), out)
			}
			continue
		}
		if HueDistance(float64(in.H), float64(out.H)) > 2 || abs(out.S-in.S) > 2 || abs(out.L-in.L) > 2 {
			t.Errorf("round trip %+v -> %s -> %+v", in, rgb.Hex(), out)
		}
	}
}

func TestVividness(t *testing.T) {
	tests := []struct {
		hex  string
		want float64
	}{
		{"#FF0000", 1.0},
		{"#808080", 0.0},
		{"#000000", 0.0},
		{"invalid", 0.0},
	}

	for _, tt := range tests {
		if got := Vividness(tt.hex); !closeTo(got, tt.want, 0.001) {
			t.Errorf("Vividness(%q) = %f, want %f", tt.hex, got, tt.want)
		}
	}

	// A saturated dark red is less vivid than pure red but more vivid than grey.
	v := Vividness("#400000")
	if v <= 0 || v >= Vividness("#FF0000") {
		t.Errorf("Vividness(#400000) = %f, want in (0, 1)", v)
	}
}

func TestRGBHexFormat(t *testing.T) {
	rgb := RGB{R: 26, G: 43, B: 60}
	if got := rgb.Hex(); got != "#1A2B3C" {
		t.Errorf("Hex() = %q, want #1A2B3C", got)
	}
	if !strings.HasPrefix(rgb.String(), "rgb(") {
		t.Errorf("String() = %q", rgb.String())
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func closeTo(got, want, tolerance float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
