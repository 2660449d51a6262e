package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"prestige-properties/pkg/config"
	"prestige-properties/pkg/logger"
)

func main() {
	cfg, err := LoadConfiguration()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.GlobalLogger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	app, err := NewApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	app.InitializeServer()
	return app.Serve(ctx)
}
