package colour

import (
	"math"
	"sort"
)

// maxRGBDistance is the Euclidean distance between opposite corners of the
// RGB cube (black to white).
var maxRGBDistance = math.Sqrt(255 * 255 * 3)

// DefaultSimilarityThreshold is the minimum similarity for a colour to count
// as a match in similarity search.
const DefaultSimilarityThreshold = 90.0

// Similarity returns how alike two hex colours are on a 0-100 scale, where
// 100 is identical. The measure is Euclidean RGB distance normalised against
// the maximum possible distance and inverted. Malformed input scores zero.
func Similarity(hex1, hex2 string) float64 {
	c1, ok1 := ParseHex(hex1)
	c2, ok2 := ParseHex(hex2)
	if !ok1 || !ok2 {
		return 0
	}

	dr := float64(c1.R) - float64(c2.R)
	dg := float64(c1.G) - float64(c2.G)
	db := float64(c1.B) - float64(c2.B)
	dist := math.Sqrt(dr*dr + dg*dg + db*db)

	return (1 - dist/maxRGBDistance) * 100
}

// Match pairs a candidate hex colour with its similarity to a target.
type Match struct {
	Hex        string  `json:"hex"`
	Similarity float64 `json:"similarity"`
}

// FindSimilar returns the candidates whose similarity to target meets the
// threshold, sorted by descending similarity. A malformed target yields an
// empty result rather than an error.
func FindSimilar(target string, candidates []string, threshold float64) []Match {
	if !IsValidHex(target) {
		return nil
	}

	matches := make([]Match, 0)
	for _, hex := range candidates {
		if sim := Similarity(target, hex); sim >= threshold {
			matches = append(matches, Match{Hex: hex, Similarity: sim})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches
}
