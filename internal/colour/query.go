package colour

import (
	"math"
	"sort"
	"strings"
)

// LightnessDescriptor is a parsed lightness intent from a search query.
type LightnessDescriptor string

const (
	LightnessLight  LightnessDescriptor = "light"
	LightnessDark   LightnessDescriptor = "dark"
	LightnessMedium LightnessDescriptor = "medium"
)

// SaturationDescriptor is a parsed saturation intent from a search query.
type SaturationDescriptor string

const (
	SaturationNeon    SaturationDescriptor = "neon"
	SaturationVibrant SaturationDescriptor = "vibrant"
	SaturationMuted   SaturationDescriptor = "muted"
	SaturationNeutral SaturationDescriptor = "neutral"
)

// ParsedQuery is the structured interpretation of a free-text colour search.
type ParsedQuery struct {
	Hues       map[Hue]bool
	Lightness  map[LightnessDescriptor]bool
	Saturation map[SaturationDescriptor]bool

	// IsDescriptive reports whether the query carries enough signal to
	// warrant ranked scoring. A lightness or saturation descriptor alone
	// qualifies; a single hue does not.
	IsDescriptive bool
}

// hueAliases maps each hue bucket to the words searchers use for it.
var hueAliases = map[Hue][]string{
	HueRed: {
		"red", "crimson", "scarlet", "ruby", "cherry", "brick", "rust",
		"blood", "fire", "cardinal", "vermilion", "carmine",
	},
	HueOrange: {
		"orange", "tangerine", "apricot", "peach", "amber", "marigold",
		"pumpkin", "copper", "persimmon", "sunset", "carrot", "clementine",
	},
	HueYellow: {
		"yellow", "gold", "golden", "lemon", "butter", "mustard", "honey",
		"canary", "sunshine", "daffodil", "banana", "saffron",
	},
	HueGreen: {
		"green", "emerald", "lime", "mint", "sage", "olive", "forest",
		"jade", "fern", "moss", "pine", "grass", "chartreuse",
	},
	HueBlue: {
		"blue", "navy", "azure", "cobalt", "sapphire", "cerulean", "sky",
		"denim", "teal", "cyan", "turquoise", "ocean", "aqua",
	},
	HuePurple: {
		"purple", "violet", "lavender", "lilac", "plum", "indigo",
		"amethyst", "orchid", "mauve", "grape", "eggplant", "periwinkle",
	},
	HuePink: {
		"pink", "rose", "blush", "fuchsia", "magenta", "salmon", "coral",
		"flamingo", "bubblegum", "raspberry", "peony", "watermelon",
	},
	HueNeutral: {
		"neutral", "gray", "grey", "beige", "taupe", "tan", "greige",
		"stone", "sand", "khaki", "ash", "slate",
	},
	HueWhite: {
		"white", "ivory", "cream", "snow", "pearl", "eggshell",
		"alabaster", "chalk", "porcelain", "linen", "bone", "frost",
	},
	HueBlack: {
		"black", "ebony", "onyx", "charcoal", "jet", "ink", "midnight",
		"coal", "obsidian", "raven", "soot", "pitch",
	},
}

// lightnessAliases maps lightness descriptors to their synonyms.
var lightnessAliases = map[LightnessDescriptor][]string{
	LightnessLight:  {"light", "pale", "fair", "airy", "faded", "washed", "bleached", "luminous"},
	LightnessDark:   {"dark", "deep", "dim", "dusky", "shadowy", "moody", "somber"},
	LightnessMedium: {"medium", "mid", "middle", "moderate", "balanced"},
}

// saturationAliases maps saturation descriptors to their synonyms.
var saturationAliases = map[SaturationDescriptor][]string{
	SaturationNeon:    {"neon", "fluorescent", "electric", "glowing", "radiant", "dayglo"},
	SaturationVibrant: {"vibrant", "vivid", "bright", "bold", "saturated", "intense", "rich", "punchy"},
	SaturationMuted:   {"muted", "dusty", "subdued", "desaturated", "mellow", "toned", "hazy"},
	SaturationNeutral: {"grayish", "greyish", "achromatic", "colorless", "drab"},
}

// tokenMatches reports whether a query token matches an alias. Containment
// runs in both directions so "greens" finds "green" and "nav" finds "navy".
func tokenMatches(token, alias string) bool {
	return strings.Contains(token, alias) || strings.Contains(alias, token)
}

// ParseQuery interprets a free-text search string into hue, lightness, and
// saturation intents. Matching is case-insensitive over whitespace tokens.
func ParseQuery(query string) ParsedQuery {
	parsed := ParsedQuery{
		Hues:       make(map[Hue]bool),
		Lightness:  make(map[LightnessDescriptor]bool),
		Saturation: make(map[SaturationDescriptor]bool),
	}

	for _, token := range strings.Fields(strings.ToLower(query)) {
		for hue, aliases := range hueAliases {
			for _, alias := range aliases {
				if tokenMatches(token, alias) {
					parsed.Hues[hue] = true
					break
				}
			}
		}
		for desc, aliases := range lightnessAliases {
			for _, alias := range aliases {
				if tokenMatches(token, alias) {
					parsed.Lightness[desc] = true
					break
				}
			}
		}
		for desc, aliases := range saturationAliases {
			for _, alias := range aliases {
				if tokenMatches(token, alias) {
					parsed.Saturation[desc] = true
					break
				}
			}
		}
		// "neutral" names both a hue bucket and a saturation intent.
		if tokenMatches(token, "neutral") {
			parsed.Saturation[SaturationNeutral] = true
		}
	}

	parsed.IsDescriptive = len(parsed.Lightness) > 0 ||
		len(parsed.Saturation) > 0 ||
		len(parsed.Hues) >= 2

	return parsed
}

// Score holds the per-axis and combined relevance of one colour against one
// parsed query. All components are in [0, 1].
type Score struct {
	Hue        float64 `json:"hue_score"`
	Lightness  float64 `json:"lightness_score"`
	Saturation float64 `json:"saturation_score"`
	Total      float64 `json:"total_score"`
}

// Axis weights for the combined score. Hue intent dominates; saturation is
// the weakest signal because its synonyms are the most ambiguous.
const (
	hueWeight        = 0.5
	lightnessWeight  = 0.3
	saturationWeight = 0.2
)

// hueTolerance is the falloff window, in degrees, beyond a hue range edge.
const hueTolerance = 60.0

// hueRange is a closed degree interval on the colour wheel.
type hueRange struct {
	lo, hi float64
}

// hueRanges gives the degree intervals for the chromatic hue buckets. Red
// owns two intervals because it wraps across zero.
var hueRanges = map[Hue][]hueRange{
	HueRed:    {{345, 360}, {0, 15}},
	HueOrange: {{15, 45}},
	HueYellow: {{45, 75}},
	HueGreen:  {{75, 165}},
	HueBlue:   {{165, 255}},
	HuePurple: {{255, 315}},
	HuePink:   {{315, 345}},
}

// ScoreColor rates a single colour against a parsed query. Each axis scores
// independently in [0, 1]; the total is their weighted sum.
func ScoreColor(hex string, query ParsedQuery) Score {
	hsl := HexToHSL(hex)

	score := Score{
		Hue:        hueScore(hsl, query.Hues),
		Lightness:  lightnessScore(hsl.L, query.Lightness),
		Saturation: saturationScore(hsl, query.Saturation),
	}
	score.Total = hueWeight*score.Hue +
		lightnessWeight*score.Lightness +
		saturationWeight*score.Saturation
	return score
}

// hueScore takes the best score across all queried hues.
func hueScore(hsl HSL, hues map[Hue]bool) float64 {
	best := 0.0
	for hue := range hues {
		if s := scoreOneHue(hsl, hue); s > best {
			best = s
		}
	}
	return best
}

// scoreOneHue rates the colour against a single queried hue. Chromatic hues
// score by angular distance to the nearest range edge with a linear falloff;
// the achromatic buckets score by saturation and lightness proximity instead.
func scoreOneHue(hsl HSL, hue Hue) float64 {
	h := float64(hsl.H)
	s := float64(hsl.S)
	l := float64(hsl.L)

	switch hue {
	case HueNeutral:
		// Proximity of saturation to zero.
		return clamp01(1 - s/50)
	case HueWhite:
		return clamp01(1-(100-l)/30) * clamp01(1-s/50)
	case HueBlack:
		return clamp01(1-l/30) * clamp01(1-s/50)
	}

	ranges, ok := hueRanges[hue]
	if !ok {
		return 0
	}

	minDist := math.MaxFloat64
	for _, r := range ranges {
		if h >= r.lo && h <= r.hi {
			minDist = 0
			break
		}
		// Distance to the nearest edge, allowing for wraparound.
		d := math.Min(HueDistance(h, r.lo), HueDistance(h, r.hi))
		if d < minDist {
			minDist = d
		}
	}

	degreeScore := clamp01(1 - minDist/hueTolerance)

	// Near-achromatic colours should not match chromatic hue intents even
	// when their nominal hue angle lands inside the range.
	return degreeScore * clamp01(s/25)
}

// lightnessScore takes the best score across the queried lightness
// descriptors. Each descriptor has a target zone scored with two linear
// segments: a steep ramp inside the zone, a shallower one approaching it.
func lightnessScore(l int, descriptors map[LightnessDescriptor]bool) float64 {
	lf := float64(l)
	best := 0.0
	for desc := range descriptors {
		var s float64
		switch desc {
		case LightnessLight:
			if lf >= 75 {
				s = 0.7 + 0.3*(lf-75)/25
			} else {
				s = 0.7 * clamp01(1-(75-lf)/40)
			}
		case LightnessDark:
			if lf <= 30 {
				s = 0.7 + 0.3*(30-lf)/30
			} else {
				s = 0.7 * clamp01(1-(lf-30)/40)
			}
		case LightnessMedium:
			if lf >= 40 && lf <= 60 {
				s = 1 - 0.3*math.Abs(lf-50)/10
			} else {
				dist := math.Min(math.Abs(lf-40), math.Abs(lf-60))
				s = 0.7 * clamp01(1-dist/30)
			}
		}
		if s > best {
			best = s
		}
	}
	return best
}

// saturationScore takes the best score across the queried saturation
// descriptors. Neon additionally demands a bright lightness band; raw
// saturation alone is what distinguishes vibrant from neon.
func saturationScore(hsl HSL, descriptors map[SaturationDescriptor]bool) float64 {
	s := float64(hsl.S)
	l := float64(hsl.L)
	best := 0.0
	for desc := range descriptors {
		var v float64
		switch desc {
		case SaturationVibrant:
			if s >= 70 {
				v = 0.7 + 0.3*(s-70)/30
			} else {
				v = 0.7 * clamp01(1-(70-s)/50)
			}
		case SaturationNeon:
			var sat float64
			if s >= 85 {
				sat = 0.7 + 0.3*(s-85)/15
			} else {
				sat = 0.7 * clamp01(1-(85-s)/40)
			}
			v = sat * brightBandGate(l)
		case SaturationMuted:
			if s >= 15 && s <= 45 {
				v = 1 - 0.3*math.Abs(s-30)/15
			} else {
				dist := math.Min(math.Abs(s-15), math.Abs(s-45))
				v = 0.7 * clamp01(1-dist/30)
			}
		case SaturationNeutral:
			if s <= 12 {
				v = 0.7 + 0.3*(12-s)/12
			} else {
				v = 0.7 * clamp01(1-(s-12)/30)
			}
		}
		if v > best {
			best = v
		}
	}
	return best
}

// brightBandGate is 1 inside the lightness band where neon colours live and
// falls off linearly over 20 points on either side.
func brightBandGate(l float64) float64 {
	const lo, hi = 45.0, 70.0
	switch {
	case l >= lo && l <= hi:
		return 1
	case l < lo:
		return clamp01(1 - (lo-l)/20)
	default:
		return clamp01(1 - (l-hi)/20)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Candidate is the minimal colour view the ranker needs.
type Candidate struct {
	ID  string
	Hex string
}

// Ranked pairs a candidate with its relevance score.
type Ranked struct {
	Candidate
	Score
}

// scoreEpsilon is the margin under which two totals count as tied and the
// comparison cascades to the per-axis scores.
const scoreEpsilon = 0.01

// Categorize scores and ranks candidates against a free-text query. A
// non-descriptive query yields an empty result, signalling the caller to
// fall back to plain substring search.
func Categorize(candidates []Candidate, query string) []Ranked {
	parsed := ParseQuery(query)
	if !parsed.IsDescriptive {
		return nil
	}

	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, Ranked{Candidate: c, Score: ScoreColor(c.Hex, parsed)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if math.Abs(a.Total-b.Total) >= scoreEpsilon {
			return a.Total > b.Total
		}
		if math.Abs(a.Hue-b.Hue) >= scoreEpsilon {
			return a.Hue > b.Hue
		}
		return a.Lightness > b.Lightness
	})
	return ranked
}
