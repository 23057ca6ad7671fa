package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gopherchem/isospec/internal/logging"
	"github.com/gopherchem/isospec/internal/metrics"
	"github.com/gopherchem/isospec/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string
	var noMetrics bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the isospec HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cliCtx.Config.Server.Addr
			}

			var m *metrics.Metrics
			if !noMetrics {
				m = metrics.New()
			}

			router := server.NewRouter(server.Deps{
				Config:  cliCtx.Config.Generator,
				Logger:  cliCtx.Logger,
				Metrics: m,
			})

			httpServer := &http.Server{Addr: addr, Handler: router}

			cliCtx.Logger.Info("serving", logging.String("addr", addr))

			errCh := make(chan error, 1)
			go func() {
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				cliCtx.Logger.Info("shutting down")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (empty = use config default)")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "disable the /metrics endpoint")
	return cmd
}
