package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jorgeutermoehl/agenda/internal/cli"
	"github.com/jorgeutermoehl/agenda/internal/config"
	"github.com/jorgeutermoehl/agenda/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	cfg := config.LoadConfig()
	app := cli.NewApp(cfg, logger)

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "fatal", "error", err)
		os.Exit(1)
	}
	if ctx.Err() != nil {
		fmt.Println("\nInterrupted. Leaving...")
	}
}
