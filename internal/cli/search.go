package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"swatchbook/internal/catalog"
	"swatchbook/internal/colour"
)

func newSearchCmd() *cobra.Command {
	var (
		limit   int
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the colour catalog",
		Long: `Search the catalog with a free-text query, a colour name fragment, or a
hex code.

A hex code finds visually similar colours. A descriptive query such as
"light vibrant blue" or "dark muted green" ranks the catalog by how well
each colour matches. Anything else falls back to substring matching over
names, hex codes, and keywords.

Examples:
  # Find colours similar to a hex code
  swatchbook search "#336699"

  # Descriptive search
  swatchbook search "light vibrant blue"

  # Substring search over names and keywords
  swatchbook search crimson

  # Show colour previews and cap the result count
  swatchbook search --preview --limit 5 "dark red"`,
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

			results := cat.Search(args[0])
			if len(results) == 0 {
				fmt.Println("No colours found.")
				return nil
			}
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			fmt.Print(renderResults(results, preview))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of results (0 = no limit)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show colour previews")
	return cmd
}

func renderResults(results []catalog.Result, preview bool) string {
	headers := []string{"NAME", "HEX", "HUE", "MATCH", "KEYWORDS"}
	nameCol := 0
	if preview {
		headers = append([]string{""}, headers...)
		nameCol = 1
	}

	tbl := NewTable(headers)
	tbl.SetColumnMaxWidth(nameCol, 24)
	tbl.EnableTerminalAwareWidth(len(headers)-1, 30)

	for _, r := range results {
		row := []string{
			r.Color.Name,
			r.Color.Hex,
			string(r.Color.Hue),
			matchLabel(r),
			strings.Join(r.Color.Keywords, ", "),
		}
		if preview {
			rgb, _ := colour.ParseHex(r.Color.Hex)
			row = append([]string{colour.Preview(rgb, 4)}, row...)
		}
		tbl.AddRow(row)
	}
	return tbl.Render()
}

// matchLabel describes why a result matched: similarity percentage for hex
// searches, relevance score for descriptive ones, blank for substring hits.
func matchLabel(r catalog.Result) string {
	switch {
	case r.Score != nil:
		return fmt.Sprintf("score %.2f", r.Score.Total)
	case r.Similarity > 0:
		return fmt.Sprintf("%.1f%%", r.Similarity)
	default:
		return ""
	}
}
