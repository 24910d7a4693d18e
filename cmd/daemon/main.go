package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/taskcard/internal/app"
	"github.com/thenoetrevino/taskcard/internal/config"
	"github.com/thenoetrevino/taskcard/internal/httpapi"
	"github.com/thenoetrevino/taskcard/internal/logging"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	closer, err := logging.Init(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		slog.Error("failed to initialize logging", "error", err)
		os.Exit(1)
	}
	defer closer.Close()

	a, err := app.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to open app", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	slog.Info("taskcard daemon starting", "addr", cfg.Server.Addr, "pid", os.Getpid())

	// Start the server (blocks until shutdown)
	server := httpapi.NewServer(a, slog.Default())
	if err := server.Start(ctx, cfg.Server.Addr); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}

	slog.Info("taskcard daemon shutting down gracefully")
}
