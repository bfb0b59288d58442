package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"swatchbook/internal/server"
)

func newServeCmd() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Long: `Start the HTTP API server. The catalog is loaded from the database,
building a fresh one on first run. The server shuts down gracefully on
SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if listenAddr != "" {
				cfg.Server.ListenAddr = listenAddr
			}
			logger := newLogger(cmd, cfg)

			cat, st, err := openCatalog(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(cat, st, cfg.Server, logger)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "listen address (default from config)")
	return cmd
}
