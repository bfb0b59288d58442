// Package catalog builds and serves the named-colour collection: seed
// colours plus deterministically synthesised filler, each classified and
// named once at build time and read-only afterwards.
package catalog

import (
	"strings"

	"swatchbook/internal/colour"
)

// Color is one catalog record. Records are immutable once built; bulk
// replace swaps whole catalogs rather than mutating colours in place.
type Color struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Hex      string     `json:"hex"`
	Hue      colour.Hue `json:"hue"`
	Keywords []string   `json:"keywords"`
}

// styleSynonyms expands each style tag into the keyword set attached to a
// colour. The tag itself always comes first.
var styleSynonyms = map[colour.Style][]string{
	colour.StylePastel:        {"pastel", "soft", "delicate"},
	colour.StyleLightNeutrals: {"light-neutrals", "neutral", "airy"},
	colour.StyleDarkNeutrals:  {"dark-neutrals", "neutral", "moody"},
	colour.StyleMuted:         {"muted", "dusty", "calm"},
	colour.StyleJewel:         {"jewel", "rich", "luxurious"},
	colour.StyleVibrant:       {"vibrant", "bright", "energetic"},
	colour.StyleEarthy:        {"earthy", "natural", "organic"},
}

// NewColor classifies and names a hex colour, producing a complete record.
// The used set threads through a whole catalog build so names stay unique;
// the caller owns its lifecycle.
func NewColor(hex string, used map[string]bool) Color {
	hex = colour.NormalizeHex(hex)
	name := colour.GenerateName(hex, used)
	return Color{
		ID:       slugify(name),
		Name:     name,
		Hex:      hex,
		Hue:      colour.ClassifyHue(hex),
		Keywords: keywordsFor(hex),
	}
}

// newSeedColor builds a record for a curated colour that already has a name.
// The name is still registered in the used set so generated filler cannot
// collide with it.
func newSeedColor(name, hex string, used map[string]bool) Color {
	hex = colour.NormalizeHex(hex)
	used[name] = true
	return Color{
		ID:       slugify(name),
		Name:     name,
		Hex:      hex,
		Hue:      colour.ClassifyHue(hex),
		Keywords: keywordsFor(hex),
	}
}

// keywordsFor derives the style keyword set for a colour. Never empty: every
// style maps to at least its own tag.
func keywordsFor(hex string) []string {
	style := colour.ClassifyStyle(hex)

	base := styleSynonyms[style]
	keywords := make([]string, len(base))
	copy(keywords, base)

	// Dark neutrals in the navy and emerald hue windows read as those
	// colours to searchers even though the style tag stays dark-neutrals.
	if style == colour.StyleDarkNeutrals {
		hsl := colour.HexToHSL(hex)
		if hsl.S >= 20 {
			switch {
			case hsl.H >= 200 && hsl.H <= 260:
				keywords = append(keywords, "navy")
			case hsl.H >= 120 && hsl.H <= 160:
				keywords = append(keywords, "emerald")
			}
		}
	}
	return keywords
}

// slugify turns a display name into a stable identifier.
func slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

// HasKeyword reports whether the colour carries the given style keyword.
func (c Color) HasKeyword(keyword string) bool {
	for _, k := range c.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

// Temperature classifies the colour as warm, cool, or neutral. Derived on
// demand rather than stored, matching the filter endpoint contract.
func (c Color) Temperature() colour.Temperature {
	return colour.ClassifyTemperature(c.Hex)
}

// Family classifies the colour into one of the sixteen families.
func (c Color) Family() colour.Family {
	return colour.ClassifyFamily(c.Hex)
}
