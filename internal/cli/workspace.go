package cli

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"swatchbook/internal/catalog"
	"swatchbook/internal/config"
	"swatchbook/internal/store"
)

// openCatalog loads the catalog from the configured database, building and
// persisting a fresh one when the database is empty. The returned store is
// open; the caller closes it.
func openCatalog(ctx context.Context, cfg *config.Config, logger hclog.Logger) (*catalog.Catalog, *store.Store, error) {
	st, err := store.Open(cfg.Catalog.DBPath, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	n, err := st.Count(ctx)
	if err != nil {
		st.Close() //nolint:errcheck
		return nil, nil, fmt.Errorf("failed to inspect catalog database: %w", err)
	}

	if n > 0 {
		colors, err := st.Load(ctx)
		if err != nil {
			st.Close() //nolint:errcheck
			return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		logger.Debug("catalog loaded from database", "colors", len(colors))
		return catalog.New(colors), st, nil
	}

	logger.Info("building catalog", "size", cfg.Catalog.Size)
	cat := catalog.Build(cfg.Catalog.Size, logger)
	if err := st.Save(ctx, cat.All()); err != nil {
		st.Close() //nolint:errcheck
		return nil, nil, fmt.Errorf("failed to persist catalog: %w", err)
	}
	return cat, st, nil
}
