// Package colour implements the colour analysis core: hex parsing and HSL
// conversion, style/temperature/family classification, deterministic name
// generation, similarity matching, and free-text query scoring.
package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// hexPattern matches a 6-digit RGB hex triplet with an optional leading hash.
var hexPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// HSL represents a colour in HSL space.
// H is in degrees [0, 360], S and L are integer percentages [0, 100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as an uppercase hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// IsValidHex reports whether s is a well-formed 6-digit hex colour,
// with or without the leading hash.
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// NormalizeHex canonicalises a hex colour string to "#RRGGBB" uppercase form.
// Returns an empty string for malformed input.
func NormalizeHex(s string) string {
	if !IsValidHex(s) {
		return ""
	}
	return "#" + strings.ToUpper(strings.TrimPrefix(s, "#"))
}

// ParseHex parses a hex colour string into RGB.
// Malformed input yields black and ok=false.
func ParseHex(s string) (RGB, bool) {
	if !IsValidHex(s) {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

// HexToHSL converts a hex colour string to HSL.
// Malformed input yields HSL{0, 0, 0}; callers must treat that defensively
// rather than expecting an error.
func HexToHSL(hex string) HSL {
	rgb, ok := ParseHex(hex)
	if !ok {
		return HSL{}
	}

	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic.
		return HSL{H: 0, S: 0, L: int(math.Round(l * 100))}
	}

	var s float64
	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSL{
		H: int(math.Round(h)),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToRGB converts HSL (degrees, percentages) back to RGB.
// Used by the catalog generator to synthesise filler colours.
func HSLToRGB(hsl HSL) RGB {
	h := float64(hsl.H)
	s := float64(hsl.S) / 100.0
	l := float64(hsl.L) / 100.0

	if s == 0 {
		// Achromatic (grey).
		v := uint8(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToRGB(p, q, h+120)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-120)

	return RGB{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	// Normalize t to 0-360 range.
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// Vividness returns saturation multiplied by value in HSV space, in [0, 1].
// It tracks perceived colourfulness better than HSL saturation alone, which
// saturates for very light and very dark colours.
func Vividness(hex string) float64 {
	rgb, ok := ParseHex(hex)
	if !ok {
		return 0
	}

	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	if maxVal == 0 {
		return 0
	}

	// HSV: value is max, saturation is chroma over value.
	sat := (maxVal - minVal) / maxVal
	return sat * maxVal
}

// HueDistance calculates the angular distance between two hues on the colour
// wheel. Returns a value between 0 and 180 degrees (shortest path).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}
