package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"swatchbook/internal/catalog"
	"swatchbook/internal/store"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the colour catalog",
	}
	cmd.AddCommand(newCatalogBuildCmd())
	cmd.AddCommand(newCatalogExportCmd())
	cmd.AddCommand(newCatalogImportCmd())
	return cmd
}

func newCatalogBuildCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the catalog and persist it",
		Long: `Build a fresh colour catalog and write it to the database, replacing any
existing catalog. The build is deterministic: the same size always
produces the same colours and names.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if size > 0 {
				cfg.Catalog.Size = size
			}
			logger := newLogger(cmd, cfg)

			st, err := store.Open(cfg.Catalog.DBPath, logger)
			if err != nil {
				return fmt.Errorf("failed to open catalog database: %w", err)
			}
			defer st.Close()

			cat := catalog.Build(cfg.Catalog.Size, logger)
			if err := st.Save(cmd.Context(), cat.All()); err != nil {
				return fmt.Errorf("failed to persist catalog: %w", err)
			}

			fmt.Printf("Built catalog with %d colours (%s)\n", cat.Len(), cfg.Catalog.DBPath)
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 0, "catalog size (default from config)")
	return cmd
}

func newCatalogExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export the catalog to a compressed snapshot",
		Long: `Export the catalog as an xz-compressed JSON snapshot, suitable for
backup or for importing into another swatchbook instance.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			cat, st, err := openCatalog(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer st.Close()

			out, err := os.Create(filepath.Clean(args[0]))
			if err != nil {
				return fmt.Errorf("failed to create snapshot file: %w", err)
			}

			if err := store.WriteSnapshot(out, cat.All()); err != nil {
				out.Close() //nolint:errcheck
				return fmt.Errorf("failed to write snapshot: %w", err)
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("failed to close snapshot file: %w", err)
			}

			fmt.Printf("Exported %d colours to %s\n", cat.Len(), args[0])
			return nil
		},
	}
}

func newCatalogImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a catalog snapshot",
		Long: `Import an xz-compressed catalog snapshot, replacing the current catalog
in the database.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			in, err := os.Open(filepath.Clean(args[0]))
			if err != nil {
				return fmt.Errorf("failed to open snapshot file: %w", err)
			}
			defer in.Close()

			colors, err := store.ReadSnapshot(in)
			if err != nil {
				return fmt.Errorf("failed to read snapshot: %w", err)
			}

			st, err := store.Open(cfg.Catalog.DBPath, logger)
			if err != nil {
				return fmt.Errorf("failed to open catalog database: %w", err)
			}
			defer st.Close()

			if err := st.Save(cmd.Context(), colors); err != nil {
				return fmt.Errorf("failed to persist catalog: %w", err)
			}

			fmt.Printf("Imported %d colours from %s\n", len(colors), args[0])
			return nil
		},
	}
}
