package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/plexus-metrics/plexus/internal/config"
	"github.com/plexus-metrics/plexus/pkg/observability"
)

// NewServeCommand creates the serve command, which runs pkg/observability's
// Prometheus meter provider and exposes it over HTTP for scraping, using
// the independent registry observability.Init builds for each run.
func NewServeCommand() *cobra.Command {
	var addr string

	cobraCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve Prometheus metrics for a long-running plexus instance",
		Long: `Serve starts an HTTP server exposing /metrics in the Prometheus
exposition format. It enables metrics collection regardless of the
metrics.enabled config setting, since a server with nothing to scrape
has no purpose.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			return runServe(cmd.Context(), cfg, addr, cmd.OutOrStdout())
		},
	}

	cobraCmd.Flags().StringVar(&addr, "addr", ":9090", "address to listen on")

	return cobraCmd
}

func runServe(ctx context.Context, cfg *config.Config, addr string, out io.Writer) error {
	providers, err := observability.Init(observability.Config{
		ServiceName:    "plexus",
		LogLevel:       parseLogLevel(cfg.Logging.Level),
		LogJSON:        cfg.Logging.JSON,
		MetricsEnabled: true,
	}, os.Stderr)
	if err != nil {
		return fmt.Errorf("serve: init observability: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(providers.Registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		fmt.Fprintf(out, "serving metrics on %s/metrics\n", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("serve: shutdown: %w", err)
		}

		return providers.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: listen: %w", err)
		}

		return nil
	}
}
