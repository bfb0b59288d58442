package catalog

import (
	"math"

	"github.com/hashicorp/go-hclog"

	"swatchbook/internal/colour"
)

// goldenAngle steps the hue wheel so consecutive filler colours land far
// apart, giving even coverage without repetition.
const goldenAngle = 137.508

// saturation and lightness cycles for filler generation. The combinations
// sweep through pastel, jewel, vibrant, muted, and neutral territory.
var (
	fillerSaturations = []int{88, 65, 42, 25, 10}
	fillerLightnesses = []int{28, 42, 55, 68, 82}
)

// DefaultSize is the catalog size built when no size is configured.
const DefaultSize = 200

// fillerStallLimit is one full period of the filler lattice: 360 integer
// hues times the 25 saturation/lightness combinations. A full period with
// no new hex means the lattice is exhausted and the loop must stop.
const fillerStallLimit = 360 * 25

// Build constructs the full catalog: the curated seed colours first, then
// filler colours synthesised by golden-angle hue stepping until size is
// reached. The build is deterministic; building twice yields identical
// catalogs.
func Build(size int, logger hclog.Logger) *Catalog {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if size < len(seedColors) {
		size = len(seedColors)
	}

	used := make(map[string]bool)
	colors := make([]Color, 0, size)
	seenHex := make(map[string]bool)

	for _, s := range seedColors {
		c := newSeedColor(s.name, s.hex, used)
		colors = append(colors, c)
		seenHex[c.Hex] = true
	}

	// Golden-angle filler beyond the seed set. The lattice produces a
	// finite number of distinct hexes, so the loop stops either at the
	// requested size or when a full period passes without a new colour.
	stalled := 0
	for i := 0; len(colors) < size && stalled < fillerStallLimit; i++ {
		hsl := colour.HSL{
			H: int(math.Mod(float64(i)*goldenAngle, 360)),
			S: fillerSaturations[i%len(fillerSaturations)],
			L: fillerLightnesses[(i/len(fillerSaturations))%len(fillerLightnesses)],
		}
		hex := colour.HSLToRGB(hsl).Hex()
		if seenHex[hex] {
			stalled++
			continue
		}
		stalled = 0
		seenHex[hex] = true
		colors = append(colors, NewColor(hex, used))
	}
	if len(colors) < size {
		logger.Warn("colour space exhausted before requested size",
			"requested", size, "built", len(colors))
	}

	logger.Debug("catalog built", "seed", len(seedColors), "total", len(colors))
	return New(colors)
}
