package catalog

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swatchbook/internal/colour"
)

func TestBuild(t *testing.T) {
	cat := Build(100, hclog.NewNullLogger())

	require.Equal(t, 100, cat.Len())

	seen := make(map[string]bool)
	for _, col := range cat.All() {
		assert.NotEmpty(t, col.ID)
		assert.NotEmpty(t, col.Name)
		assert.True(t, colour.IsValidHex(col.Hex), "hex %q invalid", col.Hex)
		assert.Equal(t, colour.NormalizeHex(col.Hex), col.Hex, "hex not normalised")
		assert.NotEmpty(t, col.Keywords, "keywords empty for %s", col.Name)
		assert.False(t, seen[col.Name], "duplicate name %q", col.Name)
		seen[col.Name] = true
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := Build(120, hclog.NewNullLogger())
	b := Build(120, hclog.NewNullLogger())

	require.Equal(t, a.Len(), b.Len())
	ca, cb := a.All(), b.All()
	for i := range ca {
		assert.Equal(t, ca[i], cb[i], "catalog differs at index %d", i)
	}
}

func TestBuildClampsToSeedSize(t *testing.T) {
	cat := Build(1, hclog.NewNullLogger())
	assert.Equal(t, len(seedColors), cat.Len())
}

func TestBuildTerminatesWhenColourSpaceExhausted(t *testing.T) {
	// The filler lattice can produce at most 360*25 distinct HSL values,
	// so a size beyond that must return a smaller catalog rather than
	// spin forever.
	cat := Build(20000, hclog.NewNullLogger())

	require.Greater(t, cat.Len(), len(seedColors))
	require.Less(t, cat.Len(), 20000)

	seen := make(map[string]bool, cat.Len())
	for _, col := range cat.All() {
		assert.False(t, seen[col.Hex], "duplicate hex %s", col.Hex)
		seen[col.Hex] = true
	}
}

func TestNewColor(t *testing.T) {
	used := make(map[string]bool)
	col := NewColor("#8a0f24", used)

	assert.Equal(t, "#8A0F24", col.Hex, "hex must be normalised to uppercase")
	assert.Equal(t, "Wine", col.Name)
	assert.Equal(t, "wine", col.ID)
	assert.Equal(t, colour.HueRed, col.Hue)
	assert.NotEmpty(t, col.Keywords)
	assert.True(t, used["Wine"])
}

func TestKeywordsNavyWindow(t *testing.T) {
	// A dark saturated blue carries the navy synonym while keeping the
	// dark-neutrals tag.
	used := make(map[string]bool)
	col := NewColor(colour.HSLToRGB(colour.HSL{H: 230, S: 60, L: 20}).Hex(), used)

	assert.True(t, col.HasKeyword("dark-neutrals"), "keywords: %v", col.Keywords)
	assert.True(t, col.HasKeyword("navy"), "keywords: %v", col.Keywords)
}

func TestKeywordsEmeraldWindow(t *testing.T) {
	used := make(map[string]bool)
	col := NewColor(colour.HSLToRGB(colour.HSL{H: 140, S: 55, L: 22}).Hex(), used)

	assert.True(t, col.HasKeyword("dark-neutrals"), "keywords: %v", col.Keywords)
	assert.True(t, col.HasKeyword("emerald"), "keywords: %v", col.Keywords)
}

func TestCatalogGetAndReplace(t *testing.T) {
	cat := Build(60, hclog.NewNullLogger())

	first := cat.All()[0]
	got, ok := cat.Get(first.ID)
	require.True(t, ok)
	assert.Equal(t, first, got)

	_, ok = cat.Get("no-such-colour")
	assert.False(t, ok)

	used := make(map[string]bool)
	replacement := []Color{NewColor("#FF0000", used), NewColor("#00FF00", used)}
	cat.Replace(replacement)

	assert.Equal(t, 2, cat.Len())
	_, ok = cat.Get(first.ID)
	assert.False(t, ok, "old colour survived the replace")
}

func TestCatalogAppend(t *testing.T) {
	used := make(map[string]bool)
	cat := New([]Color{NewColor("#FF0000", used)})

	added := cat.Append([]Color{
		cat.All()[0],            // duplicate ID, skipped
		NewColor("#0000FF", used),
	})

	assert.Equal(t, 1, added)
	assert.Equal(t, 2, cat.Len())
}

func TestFilters(t *testing.T) {
	cat := Build(150, hclog.NewNullLogger())

	t.Run("keyword", func(t *testing.T) {
		for _, col := range cat.FilterKeyword("pastel") {
			assert.True(t, col.HasKeyword("pastel"))
		}
	})

	t.Run("temperature", func(t *testing.T) {
		warm := cat.FilterTemperature(colour.TemperatureWarm)
		require.NotEmpty(t, warm)
		for _, col := range warm {
			assert.Equal(t, colour.TemperatureWarm, col.Temperature())
		}
	})

	t.Run("family", func(t *testing.T) {
		for _, col := range cat.FilterFamily(colour.FamilyBlue) {
			assert.Equal(t, colour.FamilyBlue, col.Family())
		}
	})
}

func TestSortColors(t *testing.T) {
	cat := Build(80, hclog.NewNullLogger())

	t.Run("lightness", func(t *testing.T) {
		colors := cat.All()
		SortColors(colors, "lightness")
		for i := 1; i < len(colors); i++ {
			assert.GreaterOrEqual(t,
				colour.HexToHSL(colors[i-1].Hex).L,
				colour.HexToHSL(colors[i].Hex).L)
		}
	})

	t.Run("vividness", func(t *testing.T) {
		colors := cat.All()
		SortColors(colors, "vividness")
		for i := 1; i < len(colors); i++ {
			assert.GreaterOrEqual(t,
				colour.Vividness(colors[i-1].Hex),
				colour.Vividness(colors[i].Hex))
		}
	})

	t.Run("name", func(t *testing.T) {
		colors := cat.All()
		SortColors(colors, "name")
		for i := 1; i < len(colors); i++ {
			assert.LessOrEqual(t, colors[i-1].Name, colors[i].Name)
		}
	})

	t.Run("unknown key keeps order", func(t *testing.T) {
		colors := cat.All()
		SortColors(colors, "bogus")
		assert.Equal(t, cat.All(), colors)
	})
}
