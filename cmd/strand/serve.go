package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dreamware/strand/internal/config"
	"github.com/dreamware/strand/internal/logger"
	"github.com/dreamware/strand/internal/server"
	"github.com/dreamware/strand/internal/storage"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the strand HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

// runServe wires the store, server, and HTTP listener together and runs
// until SIGINT/SIGTERM, then shuts down gracefully.
func runServe(ctx context.Context) error {
	cfg, err := config.NewLoader(configFile).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Initialize(cfg.Log.JSON); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Cleanup()

	store := storage.NewStore()
	srv := server.New(store, server.Options{
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	})

	httpSrv := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: time.Duration(cfg.Server.ReadHeaderTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("server listening", "addr", cfg.Server.Listen)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-stop:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("server shutdown error", "error", err)
		return err
	}

	logger.Infow("server stopped")
	return nil
}
