package store

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swatchbook/internal/catalog"
)

func testColors(t *testing.T) []catalog.Color {
	t.Helper()
	used := make(map[string]bool)
	return []catalog.Color{
		catalog.NewColor("#DC143C", used),
		catalog.NewColor("#1E90FF", used),
		catalog.NewColor("#2E8B57", used),
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"), hclog.NewNullLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	colors := testColors(t)

	require.NoError(t, s.Save(ctx, colors))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, colors, loaded)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(colors), n)
}

func TestSaveReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testColors(t)))

	used := make(map[string]bool)
	second := []catalog.Color{catalog.NewColor("#FFD700", used)}
	require.NoError(t, s.Save(ctx, second))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
}

func TestLoadEmpty(t *testing.T) {
	s := openTestStore(t)

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSnapshotRoundTrip(t *testing.T) {
	colors := testColors(t)

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, colors))

	loaded, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, colors, loaded)
}

func TestReadSnapshotRejectsGarbage(t *testing.T) {
	_, err := ReadSnapshot(bytes.NewReader([]byte("not an xz stream")))
	assert.Error(t, err)
}

func TestReadSnapshotRejectsInvalidColours(t *testing.T) {
	used := make(map[string]bool)
	bad := catalog.NewColor("#DC143C", used)
	bad.Hex = "nope"

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, []catalog.Color{bad}))

	_, err := ReadSnapshot(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid hex")
}

func TestReadSnapshotRejectsDuplicateIDs(t *testing.T) {
	used := make(map[string]bool)
	col := catalog.NewColor("#DC143C", used)

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, []catalog.Color{col, col}))

	_, err := ReadSnapshot(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
