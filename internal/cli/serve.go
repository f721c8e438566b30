package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"staffdir/internal/app/server"
	"staffdir/internal/platform/logging"
)

// NewServeCommand runs the HTTP server until SIGINT or SIGTERM.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Serve the directory API and web pages",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(opts)
			if addr != "" {
				cfg.Addr = addr
			}
			logger := logging.Setup(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := server.New(ctx, cfg, nil)
			if err != nil {
				logger.Error("startup failed", "error", err)
				return err
			}
			return app.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to APP_ADDR)")

	return cmd
}
