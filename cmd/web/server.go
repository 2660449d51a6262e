package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"prestige-properties/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// create the HTTP server
func (a *App) InitializeServer() {
	addr := fmt.Sprintf(":%d", a.Config.Server.Port)
	a.Server = &http.Server{
		Addr:              addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Serve runs the HTTP server and background loops until ctx is cancelled, then
// shuts down gracefully.
func (a *App) Serve(ctx context.Context) error {
	eg, egctx := errgroup.WithContext(ctx)
	a.Server.BaseContext = func(_ net.Listener) context.Context {
		return egctx
	}

	a.runBackground(egctx)

	eg.Go(func() error {
		logger.GlobalLogger.Printf("Starting server on %s", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		logger.GlobalLogger.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		logger.GlobalLogger.Println("Server exited")
		return nil
	})

	return eg.Wait()
}
