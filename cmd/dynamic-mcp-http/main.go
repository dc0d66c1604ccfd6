// Command dynamic-mcp-http starts the MCP registry HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dynamic-mcp/internal/logging"
	"dynamic-mcp/internal/registry"
	"dynamic-mcp/internal/server"
)

var (
	port    string
	profile string
	logFile string
)

func main() {
	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "dynamic-mcp-http",
		Short: "HTTP server for static MCP endpoint configurations",
		RunE:  run,
	}
	rootCmd.Flags().StringVar(&port, "port", getEnv("PORT", "8000"), "port to listen on")
	rootCmd.Flags().StringVar(&profile, "profile", getEnv("PROFILE", "dev"), "log profile: dev (console) or prod (rotating file)")
	rootCmd.Flags().StringVar(&logFile, "log-file", getEnv("LOG_FILE", "app.log"), "log file path for the prod profile")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	logger := logging.Init(profile, logFile)
	defer func() { _ = logger.Sync() }()

	reg := registry.New()
	srv := server.New(server.Config{Port: port}, reg, logger)

	httpSrv := &http.Server{
		Addr:    ":" + port,
		Handler: srv.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting MCP registry server",
			zap.String("port", port),
			zap.String("profile", profile),
			zap.Strings("endpoints", reg.Keys()),
		)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
