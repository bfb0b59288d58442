package catalog

import (
	"strings"

	"swatchbook/internal/colour"
)

// Result is one search hit. Exactly one of Similarity or Score is populated
// depending on which search path produced it; substring hits carry neither.
type Result struct {
	Color      Color         `json:"color"`
	Similarity float64       `json:"similarity,omitempty"`
	Score      *colour.Score `json:"score,omitempty"`
}

// minRelevance is the total score under which a ranked hit is dropped. It
// keeps descriptive searches from returning the entire catalog in
// near-arbitrary tail order.
const minRelevance = 0.1

// Search runs the full query dispatch:
//
//  1. A hex-shaped query finds visually similar colours.
//  2. A descriptive query is scored and ranked.
//  3. Anything else, including a descriptive query with no relevant hits,
//     falls back to substring matching over name, hex, hue, and keywords.
func (c *Catalog) Search(query string) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	if colour.IsValidHex(query) {
		return c.searchSimilar(query, colour.DefaultSimilarityThreshold)
	}

	parsed := colour.ParseQuery(query)
	if parsed.IsDescriptive {
		if results := c.searchRanked(query); len(results) > 0 {
			return results
		}
	}

	return c.searchSubstring(query)
}

// SimilarTo finds catalog colours visually similar to the target hex.
// An invalid target yields an empty result.
func (c *Catalog) SimilarTo(target string, threshold float64) []Result {
	return c.searchSimilar(target, threshold)
}

func (c *Catalog) searchSimilar(target string, threshold float64) []Result {
	colors := c.All()

	hexes := make([]string, len(colors))
	byHex := make(map[string][]Color, len(colors))
	for i, col := range colors {
		hexes[i] = col.Hex
		byHex[col.Hex] = append(byHex[col.Hex], col)
	}

	matches := colour.FindSimilar(target, hexes, threshold)

	results := make([]Result, 0, len(matches))
	emitted := make(map[string]bool)
	for _, m := range matches {
		if emitted[m.Hex] {
			continue
		}
		emitted[m.Hex] = true
		for _, col := range byHex[m.Hex] {
			results = append(results, Result{Color: col, Similarity: m.Similarity})
		}
	}
	return results
}

func (c *Catalog) searchRanked(query string) []Result {
	colors := c.All()

	candidates := make([]colour.Candidate, len(colors))
	byID := make(map[string]Color, len(colors))
	for i, col := range colors {
		candidates[i] = colour.Candidate{ID: col.ID, Hex: col.Hex}
		byID[col.ID] = col
	}

	ranked := colour.Categorize(candidates, query)

	results := make([]Result, 0, len(ranked))
	for _, r := range ranked {
		if r.Total < minRelevance {
			continue
		}
		score := r.Score
		results = append(results, Result{Color: byID[r.ID], Score: &score})
	}
	return results
}

func (c *Catalog) searchSubstring(query string) []Result {
	needle := strings.ToLower(query)

	results := make([]Result, 0)
	for _, col := range c.All() {
		if matchesSubstring(col, needle) {
			results = append(results, Result{Color: col})
		}
	}
	return results
}

// matchesSubstring checks the query against every searchable text field of
// a colour.
func matchesSubstring(col Color, needle string) bool {
	if strings.Contains(strings.ToLower(col.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(col.Hex), needle) {
		return true
	}
	if strings.Contains(string(col.Hue), needle) {
		return true
	}
	for _, k := range col.Keywords {
		if strings.Contains(k, needle) {
			return true
		}
	}
	return false
}
