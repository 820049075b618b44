package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dinotradez/backend/internal/api"
)

var apiPort string

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP API server",
	Long: `Start the DinoTradez API server.

The server exposes market data passthroughs and the analytics features
(dark pool, lotto picks, watchlists, SEC filings) under /api.

Example:
  go run ./cmd/dinotradez api
  go run ./cmd/dinotradez api --port 8080`,
	RunE: runAPIServer,
}

func init() {
	rootCmd.AddCommand(apiCmd)
	apiCmd.Flags().StringVarP(&apiPort, "port", "p", "", "server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== DinoTradez API Server ===")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	// Override port if flag is set
	if apiPort != "" {
		a.cfg.Port = apiPort
	}

	a.log.WithFields(map[string]interface{}{
		"port":    a.cfg.Port,
		"env":     a.cfg.Env,
		"redis":   a.redis.Enabled(),
		"symbols": a.repo != nil,
	}).Info("Initializing API server")

	router := api.NewRouter(api.Deps{
		Aggregator: a.agg,
		Provider:   a.provider,
		Metrics:    a.metrics,
		RateLimit:  a.cfg.RateLimit,
		Logger:     a.log,
	})
	server := api.New(a.cfg, a.log, router)

	// Start server with graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	a.log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", a.cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	if a.metrics != nil {
		fmt.Println("  GET  /metrics")
	}
	fmt.Println("  GET  /api/quotes?symbols=AAPL,TSLA")
	fmt.Println("  GET  /api/market-movers?type=gainers")
	fmt.Println("  GET  /api/stock-screener")
	fmt.Println("  GET  /api/insider-trades?symbol=AAPL")
	fmt.Println("  GET  /api/news")
	fmt.Println("  GET  /api/market-overview")
	fmt.Println("  GET  /api/sec-filings?form=S-3&limit=20")
	fmt.Println("  GET  /api/dark-pool")
	fmt.Println("  GET  /api/lotto-picks")
	fmt.Println("  GET  /api/watchlists/bullish")
	fmt.Println("  GET  /api/watchlists/bearish")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal or a failed listener
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}

	a.log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	a.log.Info("Server stopped")
	return nil
}
