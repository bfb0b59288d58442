package catalog

import (
	"sort"
	"sync"

	"swatchbook/internal/colour"
)

// Catalog is the in-memory colour collection. Reads vastly outnumber
// writes: the only mutation is a wholesale replace during bulk import, so a
// read-write mutex guards a swap of the backing slice.
type Catalog struct {
	mu     sync.RWMutex
	colors []Color
	byID   map[string]int
}

// New creates a catalog from a prebuilt colour list.
func New(colors []Color) *Catalog {
	c := &Catalog{}
	c.set(colors)
	return c
}

func (c *Catalog) set(colors []Color) {
	byID := make(map[string]int, len(colors))
	for i, col := range colors {
		byID[col.ID] = i
	}
	c.colors = colors
	c.byID = byID
}

// All returns a copy of the colour list.
func (c *Catalog) All() []Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Color, len(c.colors))
	copy(out, c.colors)
	return out
}

// Len returns the number of colours in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.colors)
}

// Get returns a colour by its ID.
func (c *Catalog) Get(id string) (Color, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i, ok := c.byID[id]; ok {
		return c.colors[i], true
	}
	return Color{}, false
}

// Replace swaps the whole catalog for a new colour list. This is the bulk
// import path; individual colours are never mutated in place.
func (c *Catalog) Replace(colors []Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(colors)
}

// Append adds colours to the catalog, skipping IDs that already exist.
// Used by image import to merge extracted colours in.
func (c *Catalog) Append(colors []Color) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	added := 0
	for _, col := range colors {
		if _, exists := c.byID[col.ID]; exists {
			continue
		}
		c.byID[col.ID] = len(c.colors)
		c.colors = append(c.colors, col)
		added++
	}
	return added
}

// UsedNames returns the set of names currently in the catalog, for seeding
// the used-name set of an incremental build.
func (c *Catalog) UsedNames() map[string]bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	used := make(map[string]bool, len(c.colors))
	for _, col := range c.colors {
		used[col.Name] = true
	}
	return used
}

// FilterKeyword returns the colours carrying the given style keyword.
func (c *Catalog) FilterKeyword(keyword string) []Color {
	return c.filter(func(col Color) bool { return col.HasKeyword(keyword) })
}

// FilterTemperature returns the colours with the given temperature.
func (c *Catalog) FilterTemperature(temp colour.Temperature) []Color {
	return c.filter(func(col Color) bool { return col.Temperature() == temp })
}

// FilterFamily returns the colours in the given family.
func (c *Catalog) FilterFamily(family colour.Family) []Color {
	return c.filter(func(col Color) bool { return col.Family() == family })
}

func (c *Catalog) filter(keep func(Color) bool) []Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Color, 0)
	for _, col := range c.colors {
		if keep(col) {
			out = append(out, col)
		}
	}
	return out
}

// hueOrder fixes the display order of the hue buckets: the colour wheel
// first, then the achromatic groups.
var hueOrder = map[colour.Hue]int{
	colour.HueRed:     0,
	colour.HueOrange:  1,
	colour.HueYellow:  2,
	colour.HueGreen:   3,
	colour.HueBlue:    4,
	colour.HuePurple:  5,
	colour.HuePink:    6,
	colour.HueNeutral: 7,
	colour.HueWhite:   8,
	colour.HueBlack:   9,
}

// SortColors orders a colour list by the named sort key. Unknown keys leave
// the list in catalog order.
func SortColors(colors []Color, key string) {
	switch key {
	case "hue":
		sort.SliceStable(colors, func(i, j int) bool {
			oi, oj := hueOrder[colors[i].Hue], hueOrder[colors[j].Hue]
			if oi != oj {
				return oi < oj
			}
			return colour.HexToHSL(colors[i].Hex).H < colour.HexToHSL(colors[j].Hex).H
		})
	case "lightness":
		sort.SliceStable(colors, func(i, j int) bool {
			return colour.HexToHSL(colors[i].Hex).L > colour.HexToHSL(colors[j].Hex).L
		})
	case "vividness":
		sort.SliceStable(colors, func(i, j int) bool {
			return colour.Vividness(colors[i].Hex) > colour.Vividness(colors[j].Hex)
		})
	case "name":
		sort.SliceStable(colors, func(i, j int) bool {
			return colors[i].Name < colors[j].Name
		})
	}
}
