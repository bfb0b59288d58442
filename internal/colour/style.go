package colour

// Style is a categorical style tag describing the aesthetic character of a
// colour. The vocabulary is fixed; classification always yields exactly one.
type Style string

const (
	StylePastel        Style = "pastel"
	StyleLightNeutrals Style = "light-neutrals"
	StyleDarkNeutrals  Style = "dark-neutrals"
	StyleMuted         Style = "muted"
	StyleJewel         Style = "jewel"
	StyleVibrant       Style = "vibrant"
	StyleEarthy        Style = "earthy"
)

// Temperature describes whether a colour reads as warm, cool, or neutral.
type Temperature string

const (
	TemperatureWarm    Temperature = "warm"
	TemperatureCool    Temperature = "cool"
	TemperatureNeutral Temperature = "neutral"
)

// Family is one of sixteen named colour families.
type Family string

const (
	FamilyWhite   Family = "white"
	FamilyBlack   Family = "black"
	FamilyGray    Family = "gray"
	FamilyBrown   Family = "brown"
	FamilyRed     Family = "red"
	FamilyOrange  Family = "orange"
	FamilyYellow  Family = "yellow"
	FamilyLime    Family = "lime"
	FamilyGreen   Family = "green"
	FamilyTeal    Family = "teal"
	FamilyCyan    Family = "cyan"
	FamilyBlue    Family = "blue"
	FamilyIndigo  Family = "indigo"
	FamilyViolet  Family = "violet"
	FamilyMagenta Family = "magenta"
	FamilyPink    Family = "pink"
)

// ClassifyStyle maps a hex colour to its style tag.
//
// The rules form an ordered cascade: regions deliberately overlap and the
// first match wins. The boundaries encode a curated aesthetic taxonomy, not
// a disjoint partition of HSL space, so the order must not be rearranged.
func ClassifyStyle(hex string) Style {
	hsl := HexToHSL(hex)
	h, s, l := hsl.H, hsl.S, hsl.L

	switch {
	case s <= 10 && l >= 80:
		return StyleLightNeutrals
	case l <= 30 || (l <= 35 && s <= 25):
		return StyleDarkNeutrals
	case l >= 75 && s >= 15 && s <= 45:
		return StylePastel
	case s >= 55 && l >= 30 && l <= 55:
		return StyleJewel
	case s >= 70 && l >= 45 && l <= 70:
		return StyleVibrant
	case h >= 20 && h <= 110 && s >= 15 && s <= 50 && l >= 35 && l <= 70:
		return StyleEarthy
	case s >= 20 && s <= 45 && l >= 40 && l <= 75:
		return StyleMuted
	}

	// Fallback cascade for colours outside every primary region.
	switch {
	case l >= 80:
		return StyleLightNeutrals
	case l <= 30:
		return StyleDarkNeutrals
	case s >= 55:
		return StyleJewel
	case s >= 15:
		return StyleMuted
	default:
		return StyleDarkNeutrals
	}
}

// ClassifyTemperature maps a hex colour to warm, cool, or neutral.
// Near-achromatic, very dark, and very light colours are neutral regardless
// of hue; otherwise the wheel splits at 105 and 315 degrees.
func ClassifyTemperature(hex string) Temperature {
	hsl := HexToHSL(hex)
	h, s, l := hsl.H, hsl.S, hsl.L

	if s <= 12 || l <= 12 || l >= 92 {
		return TemperatureNeutral
	}
	if h >= 345 || h <= 105 || (h >= 315 && h < 345) {
		return TemperatureWarm
	}
	if h > 105 && h < 315 {
		return TemperatureCool
	}
	return TemperatureNeutral
}

// ClassifyFamily maps a hex colour into one of sixteen families.
// Achromatic checks (white, black, gray) take precedence, then the brown
// carve-out, then twelve 30-degree hue bands with red wrapping across 0.
func ClassifyFamily(hex string) Family {
	hsl := HexToHSL(hex)
	h, s, l := hsl.H, hsl.S, hsl.L

	switch {
	case s <= 8 && l >= 94:
		return FamilyWhite
	case s <= 10 && l <= 20:
		return FamilyBlack
	case s <= 10:
		return FamilyGray
	case h >= 15 && h <= 60 && s >= 25 && s <= 60 && l >= 20 && l <= 55:
		return FamilyBrown
	}

	switch {
	case h >= 345 || h < 15:
		return FamilyRed
	case h < 45:
		return FamilyOrange
	case h < 75:
		return FamilyYellow
	case h < 105:
		return FamilyLime
	case h < 135:
		return FamilyGreen
	case h < 165:
		return FamilyTeal
	case h < 195:
		return FamilyCyan
	case h < 225:
		return FamilyBlue
	case h < 255:
		return FamilyIndigo
	case h < 285:
		return FamilyViolet
	case h < 315:
		return FamilyMagenta
	default:
		return FamilyPink
	}
}
