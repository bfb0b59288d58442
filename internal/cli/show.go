package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"swatchbook/internal/colour"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id-or-hex>",
		Short: "Show details for a colour",
		Long: `Show the full classification of a colour: its HSL values, style,
temperature, family, and hue bucket.

The argument is either a catalog colour ID or any hex code. A hex code
not present in the catalog is classified on the fly and given its
deterministic generated name.

Examples:
  swatchbook show crimson
  swatchbook show "#FF5733"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				colour.DisableColourOutput = true
			}

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

			arg := args[0]

			if col, ok := cat.Get(arg); ok {
				printColourDetails(col.Name, col.Hex, col.Keywords)
				return nil
			}

			if colour.IsValidHex(arg) {
				hex := colour.NormalizeHex(arg)
				name := colour.GenerateName(hex, cat.UsedNames())
				printColourDetails(name, hex, nil)
				return nil
			}

			return fmt.Errorf("no colour with id %q; pass a catalog id or a hex code", arg)
		},
	}
	return cmd
}

func printColourDetails(name, hex string, keywords []string) {
	rgb, _ := colour.ParseHex(hex)
	hsl := colour.HexToHSL(hex)

	fmt.Println(colour.FormatWithLabel(rgb, name, 24))
	fmt.Printf("  Hex:         %s\n", hex)
	fmt.Printf("  RGB:         %d, %d, %d\n", rgb.R, rgb.G, rgb.B)
	fmt.Printf("  HSL:         %d, %d%%, %d%%\n", hsl.H, hsl.S, hsl.L)
	fmt.Printf("  Style:       %s\n", colour.ClassifyStyle(hex))
	fmt.Printf("  Temperature: %s\n", colour.ClassifyTemperature(hex))
	fmt.Printf("  Family:      %s\n", colour.ClassifyFamily(hex))
	fmt.Printf("  Hue:         %s\n", colour.ClassifyHue(hex))
	fmt.Printf("  Vividness:   %.2f\n", colour.Vividness(hex))
	if len(keywords) > 0 {
		fmt.Printf("  Keywords:    %s\n", strings.Join(keywords, ", "))
	}
}
