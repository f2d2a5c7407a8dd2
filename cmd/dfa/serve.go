package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/dfa/internal/cli"
	httpAdapter "github.com/aretw0/dfa/pkg/adapters/http"
	"github.com/aretw0/dfa/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts an HTTP server exposing the automaton registry: register descriptions
with PUT /automata/{name}, classify with POST /automata/{name}/classify.
Prometheus metrics are served on /metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics := observability.NewMetrics()
		eng, cfg, logger, closeStore, err := newEngine(cmd, metrics)
		if err != nil {
			return err
		}
		defer closeStore()

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Stop()

		preload, _ := cmd.Flags().GetStringArray("register")
		for _, spec := range preload {
			name, path, ok := strings.Cut(spec, "=")
			if !ok {
				return fmt.Errorf("--register expects name=path, got %q", spec)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("cannot open %s: %w", path, err)
			}
			if _, err := eng.Register(ctx, name, string(data)); err != nil {
				return &cli.LoadFailure{Err: fmt.Errorf("%s: %w", path, err)}
			}
		}

		srv := &http.Server{
			Addr: fmt.Sprintf(":%d", cfg.Server.Port),
			Handler: httpAdapter.NewHandler(eng,
				httpAdapter.WithMetricsHandler(metrics.Handler()),
				httpAdapter.WithLogger(logger),
			),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("Starting DFA Server", "address", srv.Addr, "store", cfg.Store.Driver)
			serverErrors <- srv.ListenAndServe()
		}()

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("Start shutdown", "signal", ctx.Signal())

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", cfg.Server.ShutdownTimeout, "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("DFA Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringArray("register", nil, "Preload a description file as name=path (repeatable)")
}
