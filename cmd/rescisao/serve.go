package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/warp/rescisao/api"
	"github.com/warp/rescisao/config"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("config", "c", "", "Path to a TOML config file")
	serveCmd.Flags().IntP("port", "p", 0, "HTTP port (overrides config and PORT)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metrics *api.Metrics
	if cfg.Metrics.Enabled {
		metrics = api.NewMetrics()
	}
	handler := api.NewHandler(metrics)

	opts := api.RouterOptions{
		CORS:       cfg.CORS,
		StaticDir:  cfg.Server.StaticDir,
		TrustProxy: cfg.Server.TrustProxy,
	}
	if cfg.RateLimit.RPS > 0 {
		opts.RateLimiter = api.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		opts.RateLimiter.StartJanitor(ctx, 2*time.Minute)
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewRouter(handler, opts),
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  cfg.Server.IdleTimeout.Duration,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on http://%s", server.Addr)
		log.Printf("API available at http://%s/api/calcular", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		return err
	}

	log.Println("Server stopped")
	return nil
}
