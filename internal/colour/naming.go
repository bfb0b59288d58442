package colour

import (
	"fmt"
	"strings"
)

// Name generation is fully deterministic: every "random" choice below is a
// pure function of the colour's hue, so the same hex with the same prior
// used-name state always produces the same name.

// achromaticLadder maps low-saturation colours to names by lightness,
// lightest first. Each step covers a 10 point band.
var achromaticLadder = [10]string{
	"Snow White",
	"Ivory",
	"Silver",
	"Ash Gray",
	"Pewter",
	"Slate Gray",
	"Graphite",
	"Charcoal",
	"Onyx",
	"Ebony",
}

// hueBand holds the two base-name variants of a 30 degree hue band.
// The low name covers the first half of the band, the high name the second.
type hueBand struct {
	low  string
	high string
}

// hueBands covers the colour wheel in twelve 30 degree bands starting at 345
// degrees, so the red band wraps across 0.
var hueBands = [12]hueBand{
	{"Red", "Cherry"},       // [345, 15)
	{"Crimson", "Orange"},   // [15, 45)
	{"Amber", "Yellow"},     // [45, 75)
	{"Chartreuse", "Lime"},  // [75, 105)
	{"Green", "Emerald"},    // [105, 135)
	{"Jade", "Teal"},        // [135, 165)
	{"Cyan", "Sky"},         // [165, 195)
	{"Azure", "Blue"},       // [195, 225)
	{"Sapphire", "Indigo"},  // [225, 255)
	{"Violet", "Purple"},    // [255, 285)
	{"Magenta", "Fuchsia"},  // [285, 315)
	{"Pink", "Rose"},        // [315, 345)
}

// specialNames replaces generic prefix+base combinations with evocative
// names. Each entry holds three alternatives; the pick is keyed on hue.
var specialNames = map[string][3]string{
	"Deep Red":       {"Burgundy", "Wine", "Maroon"},
	"Dark Red":       {"Oxblood", "Garnet", "Mahogany"},
	"Deep Orange":    {"Rust", "Sienna", "Copper"},
	"Dark Crimson":   {"Brick", "Cordovan", "Russet"},
	"Pale Yellow":    {"Cream", "Vanilla", "Parchment"},
	"Light Yellow":   {"Lemon Chiffon", "Butter", "Daffodil"},
	"Deep Green":     {"Forest", "Hunter Green", "Pine"},
	"Dark Green":     {"Moss", "Evergreen", "Juniper"},
	"Deep Teal":      {"Deep Sea", "Spruce", "Lagoon"},
	"Deep Blue":      {"Navy", "Midnight Blue", "Cobalt"},
	"Dark Azure":     {"Prussian Blue", "Abyss", "Marine"},
	"Pale Blue":      {"Powder Blue", "Mist", "Glacier"},
	"Deep Purple":    {"Aubergine", "Plum", "Mulberry"},
	"Dark Violet":    {"Eggplant", "Blackberry", "Raisin"},
	"Pale Pink":      {"Blush", "Ballet Slipper", "Petal"},
	"Deep Pink":      {"Raspberry", "Cranberry", "Beetroot"},
	"Pale Green":     {"Honeydew", "Celadon", "Mint Cream"},
	"Bright Orange":  {"Tangerine", "Marigold", "Apricot"},
	"Vibrant Orange": {"Tangerine", "Persimmon", "Clementine"},
	"Muted Green":    {"Sage", "Artichoke", "Fern"},
	"Muted Blue":     {"Steel Blue", "Slate Blue", "Denim"},
	"Soft Pink":      {"Rose Quartz", "Peony", "Carnation"},
}

// saturatedSuffixes decorate highly saturated mid-lightness colours.
var saturatedSuffixes = [3]string{"Burst", "Flash", "Glow"}

// Variation word pools for uniqueness resolution. All picks are keyed on the
// colour's own HSL components so resolution stays deterministic.
var (
	altPrefixes  = [6]string{"Dusky", "Misty", "Shaded", "Gleaming", "Faded", "Polished"}
	hueSuffixes  = [6]string{"Dawn", "Dusk", "Haze", "Tide", "Ember", "Frost"}
	satSuffixes  = [4]string{"Whisper", "Veil", "Accent", "Blaze"}
	lightSuffixes = [4]string{"Shadow", "Smoke", "Mist", "Shine"}
	romanNumerals = []string{"II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}
)

// GenerateName synthesises a human-readable name for a hex colour that is
// unique against used. The used set is owned by the caller and threaded
// through a whole catalog build; the chosen name is registered in it before
// returning. Same hex plus same prior set state always yields the same name.
func GenerateName(hex string, used map[string]bool) string {
	hsl := HexToHSL(hex)
	candidate := baseName(hsl)

	if used[candidate] {
		candidate = resolveCollision(candidate, hsl, used)
	}

	used[candidate] = true
	return candidate
}

// baseName builds the initial candidate name from HSL alone.
func baseName(hsl HSL) string {
	h, s, l := hsl.H, hsl.S, hsl.L

	// Achromatic colours come from the fixed lightness ladder.
	if s <= 8 {
		step := (100 - l) / 10
		if step > 9 {
			step = 9
		}
		return achromaticLadder[step]
	}

	base := hueBaseName(h)
	name := base
	if prefix := modifierPrefix(l, s); prefix != "" {
		name = prefix + " " + base
	}

	// Swap generic combinations for evocative special names, picked by hue.
	if alts, ok := specialNames[name]; ok {
		name = alts[(h/5)%3]
	}

	// Saturated mid-lightness colours get a glow suffix.
	if s >= 80 && l >= 40 && l <= 70 {
		name = name + " " + saturatedSuffixes[(h/7)%3]
	}

	return name
}

// hueBaseName picks the base word for a hue, with a sub-band variant per
// half band (e.g. the [15, 45) band is Crimson below 30 and Orange above).
func hueBaseName(h int) string {
	// Shift so the wrapped red band [345, 360)+[0, 15) starts at zero.
	shifted := (h + 15) % 360
	band := hueBands[shifted/30]
	if shifted%30 < 15 {
		return band.low
	}
	return band.high
}

// modifierPrefix picks a lightness/saturation modifier from a fixed decision
// table. The empty string means the base name stands alone.
func modifierPrefix(l, s int) string {
	switch {
	case l >= 85:
		if s >= 50 {
			return "Light"
		}
		return "Pale"
	case l >= 70:
		if s >= 50 {
			return "Bright"
		}
		return "Soft"
	case l >= 55:
		switch {
		case s >= 75:
			return "Vibrant"
		case s < 40:
			return "Muted"
		default:
			return ""
		}
	case l >= 40:
		switch {
		case s >= 75:
			return "Bold"
		case s < 40:
			return "Muted"
		default:
			return "Rich"
		}
	case l >= 25:
		if s >= 60 {
			return "Deep"
		}
		return "Dark"
	default:
		return "Midnight"
	}
}

// resolveCollision applies an escalating sequence of deterministic variation
// strategies until a free name is found. Roman numerals are the terminal
// strategy and always succeed eventually.
func resolveCollision(name string, hsl HSL, used map[string]bool) string {
	h, s, l := hsl.H, hsl.S, hsl.L

	// Strategy 1: swap in an alternative prefix chosen by lightness and
	// saturation, replacing any existing one.
	stripped := stripKnownPrefix(name)
	alt := altPrefixes[(l/20+s/25)%len(altPrefixes)] + " " + stripped
	if !used[alt] {
		return alt
	}

	// Strategy 2: hue-keyed suffix.
	if candidate := name + " " + hueSuffixes[(h/60)%len(hueSuffixes)]; !used[candidate] {
		return candidate
	}

	// Strategy 3: saturation-keyed suffix.
	if candidate := name + " " + satSuffixes[(s/25)%len(satSuffixes)]; !used[candidate] {
		return candidate
	}

	// Strategy 4: lightness-keyed suffix.
	if candidate := name + " " + lightSuffixes[(l/25)%len(lightSuffixes)]; !used[candidate] {
		return candidate
	}

	// Strategy 5: Roman numeral suffixes, then plain counters beyond X.
	for _, numeral := range romanNumerals {
		if candidate := name + " " + numeral; !used[candidate] {
			return candidate
		}
	}
	for i := 11; ; i++ {
		if candidate := fmt.Sprintf("%s %d", name, i); !used[candidate] {
			return candidate
		}
	}
}

// stripKnownPrefix removes a leading modifier word so an alternative prefix
// can take its place.
func stripKnownPrefix(name string) string {
	known := []string{
		"Pale", "Light", "Bright", "Soft", "Vibrant", "Muted",
		"Bold", "Dark", "Deep", "Rich", "Midnight",
	}
	for _, p := range known {
		if strings.HasPrefix(name, p+" ") {
			return strings.TrimPrefix(name, p+" ")
		}
	}
	return name
}
