package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/smellview/smellview/internal/adapters/inbound/httpapi"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard JSON API",
		Long:  "Start an HTTP server exposing projects, commits, smells, refactorings, history and /metrics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withHistoryApp(cmd, func(ctx context.Context, a *app) error {
				if addr == "" {
					addr = a.cfg.ListenAddr
				}
				if a.cfg.ValidateSchema {
					if err := a.client.ValidateSchema(ctx); err != nil {
						return err
					}
				}
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()

				srv := &http.Server{
					Addr:              addr,
					Handler:           httpapi.NewRouter(httpapi.NewHandler(a.services), a.logger),
					ReadHeaderTimeout: 10 * time.Second,
				}

				errCh := make(chan error, 1)
				go func() {
					a.logger.Info("dashboard API listening", "addr", addr, "backend", a.cfg.Endpoint)
					errCh <- srv.ListenAndServe()
				}()

				select {
				case err := <-errCh:
					if errors.Is(err, http.ErrServerClosed) {
						return nil
					}
					return fmt.Errorf("serving dashboard: %w", err)
				case <-ctx.Done():
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				a.logger.Info("shutting down dashboard API")
				return srv.Shutdown(shutdownCtx)
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to listen_addr from config)")

	return cmd
}
