// Package cli provides the command-line interface for swatchbook.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"swatchbook/internal/config"
	"swatchbook/internal/version"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swatchbook",
		Short: "A colour catalog and lookup tool",
		Long: `Swatchbook maintains a named colour catalog and answers colour questions:
classify a hex code by style and temperature, find catalog colours similar
to a target, or search the catalog with free-text queries like "light
vibrant blue".`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "swatchbook.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable ANSI colour output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newImportCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}

// loadConfig reads the config file named by the --config flag, falling back
// to defaults when the file does not exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.LoadOrDefault(path)
}

// newLogger builds the application logger honouring --verbose and the
// configured level.
func newLogger(cmd *cobra.Command, cfg *config.Config) hclog.Logger {
	level := cfg.Log.Level
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  "swatchbook",
		Level: hclog.LevelFromString(level),
	})
}
