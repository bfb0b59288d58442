package cli

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hashicorp/go-hclog"

	"swatchbook/internal/config"
)

func TestOpenCatalogBuildsThenReloads(t *testing.T) {
	cfg := config.Default()
	cfg.Catalog.DBPath = filepath.Join(t.TempDir(), "catalog.db")
	cfg.Catalog.Size = 60
	ctx := context.Background()

	cat, st, err := openCatalog(ctx, cfg, hclog.NewNullLogger())
	if err != nil {
		t.Fatalf("openCatalog() first run error: %v", err)
	}
	if cat.Len() != 60 {
		t.Errorf("openCatalog() built %d colours, want 60", cat.Len())
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// A second open must load the persisted catalog, not rebuild it.
	cat2, st2, err := openCatalog(ctx, cfg, hclog.NewNullLogger())
	if err != nil {
		t.Fatalf("openCatalog() second run error: %v", err)
	}
	defer st2.Close()

	if cat2.Len() != cat.Len() {
		t.Fatalf("reloaded catalog has %d colours, want %d", cat2.Len(), cat.Len())
	}
	a, b := cat.All(), cat2.All()
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			t.Errorf("reloaded colour %d = %+v, want %+v", i, b[i], a[i])
		}
	}
}
