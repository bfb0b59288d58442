package catalog

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	return Build(DefaultSize, hclog.NewNullLogger())
}

func TestSearchEmptyQuery(t *testing.T) {
	cat := buildTestCatalog(t)

	assert.Nil(t, cat.Search(""))
	assert.Nil(t, cat.Search("   "))
}

func TestSearchHexQuery(t *testing.T) {
	cat := buildTestCatalog(t)

	results := cat.Search("#DC143C")
	require.NotEmpty(t, results)

	// Crimson itself is in the seed set, so the top hit is an exact match.
	assert.Equal(t, "#DC143C", results[0].Color.Hex)
	assert.Equal(t, 100.0, results[0].Similarity)
	assert.Nil(t, results[0].Score)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Similarity, results[i].Similarity)
	}
}

func TestSearchHexQueryWithoutHash(t *testing.T) {
	cat := buildTestCatalog(t)

	results := cat.Search("DC143C")
	require.NotEmpty(t, results)
	assert.Equal(t, "#DC143C", results[0].Color.Hex)
}

func TestSearchDescriptiveQuery(t *testing.T) {
	cat := buildTestCatalog(t)

	results := cat.Search("dark red")
	require.NotEmpty(t, results)

	for _, r := range results {
		require.NotNil(t, r.Score)
		assert.GreaterOrEqual(t, r.Score.Total, minRelevance)
		assert.Zero(t, r.Similarity)
	}
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score.Total, results[i].Score.Total)
	}
}

func TestSearchSubstringFallback(t *testing.T) {
	cat := buildTestCatalog(t)

	// A bare hue word is not descriptive, so it takes the substring path
	// over name, hue, and keywords.
	results := cat.Search("crimson")
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Nil(t, r.Score)
		assert.Zero(t, r.Similarity)
	}
}

func TestSearchSubstringMatchesHue(t *testing.T) {
	cat := buildTestCatalog(t)

	results := cat.Search("purple")
	require.NotEmpty(t, results)
	found := false
	for _, r := range results {
		if string(r.Color.Hue) == "purple" {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestSearchNoMatch(t *testing.T) {
	cat := buildTestCatalog(t)

	assert.Empty(t, cat.Search("zzzzqqqq"))
}

func TestSimilarTo(t *testing.T) {
	cat := buildTestCatalog(t)

	t.Run("exact only at threshold 100", func(t *testing.T) {
		results := cat.SimilarTo("#DC143C", 100)
		require.NotEmpty(t, results)
		for _, r := range results {
			assert.Equal(t, "#DC143C", r.Color.Hex)
		}
	})

	t.Run("invalid target", func(t *testing.T) {
		assert.Empty(t, cat.SimilarTo("not-a-hex", 90))
	})

	t.Run("lower threshold widens the net", func(t *testing.T) {
		tight := cat.SimilarTo("#DC143C", 95)
		loose := cat.SimilarTo("#DC143C", 80)
		assert.GreaterOrEqual(t, len(loose), len(tight))
	})
}

func TestSearchDeterministic(t *testing.T) {
	cat := buildTestCatalog(t)

	a := cat.Search("light vibrant blue")
	b := cat.Search("light vibrant blue")
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Color.ID, b[i].Color.ID)
	}
}
