package colour

// Hue is the coarse hue grouping used by the catalog and by query matching.
// It is deliberately coarser than Family: searchers think in ten buckets,
// not sixteen.
type Hue string

const (
	HueRed     Hue = "red"
	HueOrange  Hue = "orange"
	HueYellow  Hue = "yellow"
	HueGreen   Hue = "green"
	HueBlue    Hue = "blue"
	HuePurple  Hue = "purple"
	HuePink    Hue = "pink"
	HueNeutral Hue = "neutral"
	HueWhite   Hue = "white"
	HueBlack   Hue = "black"
)

// familyToHue collapses the sixteen families into the ten hue buckets.
var familyToHue = map[Family]Hue{
	FamilyWhite:   HueWhite,
	FamilyBlack:   HueBlack,
	FamilyGray:    HueNeutral,
	FamilyBrown:   HueOrange,
	FamilyRed:     HueRed,
	FamilyOrange:  HueOrange,
	FamilyYellow:  HueYellow,
	FamilyLime:    HueGreen,
	FamilyGreen:   HueGreen,
	FamilyTeal:    HueBlue,
	FamilyCyan:    HueBlue,
	FamilyBlue:    HueBlue,
	FamilyIndigo:  HuePurple,
	FamilyViolet:  HuePurple,
	FamilyMagenta: HuePink,
	FamilyPink:    HuePink,
}

// ClassifyHue maps a hex colour to its coarse hue bucket.
func ClassifyHue(hex string) Hue {
	if hue, ok := familyToHue[ClassifyFamily(hex)]; ok {
		return hue
	}
	return HueNeutral
}
