package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"swatchbook/internal/catalog"
	"swatchbook/internal/colour"
	"swatchbook/internal/image"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import colours from external sources",
	}
	cmd.AddCommand(newImportImageCmd())
	return cmd
}

func newImportImageCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "image <path>",
		Short: "Extract dominant colours from an image into the catalog",
		Long: `Extract the dominant colours from an image with k-means clustering and
add them to the catalog. Extraction is deterministic: the same image
always yields the same colours.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Add the 8 dominant colours of a wallpaper
  swatchbook import image wallpaper.jpg

  # Extract more colours
  swatchbook import image --colors 16 photo.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imagePath := args[0]

			if err := image.ValidateImagePath(imagePath); err != nil {
				return fmt.Errorf("invalid image path: %w", err)
			}
			if count < 1 || count > 64 {
				return fmt.Errorf("colour count must be between 1 and 64 (got %d)", count)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Fprintf(os.Stderr, "Loading image: %s\n", imagePath)
			}

			img, err := image.NewFileLoader().Load(imagePath)
			if err != nil {
				return fmt.Errorf("failed to load image: %w", err)
			}
			if verbose {
				bounds := img.Bounds()
				fmt.Fprintf(os.Stderr, "Image loaded: %dx%d\n", bounds.Dx(), bounds.Dy())
			}

			extracted, err := colour.NewKMeansExtractor().Extract(img, count)
			if err != nil {
				return fmt.Errorf("failed to extract colours: %w", err)
			}

			cat, st, err := openCatalog(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer st.Close()

			used := cat.UsedNames()
			colors := make([]catalog.Color, 0, len(extracted))
			for _, rgb := range extracted {
				colors = append(colors, catalog.NewColor(rgb.Hex(), used))
			}

			added := cat.Append(colors)
			if err := st.Save(cmd.Context(), cat.All()); err != nil {
				return fmt.Errorf("failed to persist catalog: %w", err)
			}

			fmt.Printf("Added %d colours from %s:\n", added, imagePath)
			for _, col := range colors {
				rgb, _ := colour.ParseHex(col.Hex)
				fmt.Printf("  %s %s %s\n", colour.Preview(rgb, 4), col.Hex, col.Name)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "colors", "c", 8, "number of colours to extract (1-64)")
	return cmd
}
