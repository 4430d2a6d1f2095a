// cmd/server/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go-card-defense/internal/app"
	"go-card-defense/internal/config"
	"go-card-defense/internal/gametime"
	"go-card-defense/internal/server"
	"go-card-defense/internal/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	var store storage.LibraryStore
	if cfg.LibraryPath != "" {
		sqlStore, err := storage.OpenSQLite(cfg.LibraryPath)
		if err != nil {
			logger.Error("open library store", "path", cfg.LibraryPath, "error", err)
			os.Exit(1)
		}
		store = sqlStore
	} else {
		logger.Info("no library path configured, discoveries will not persist")
		store = storage.NewMemoryStore()
	}
	defer store.Close()

	game, err := app.NewGame(cfg, gametime.SystemClock{}, store, logger)
	if err != nil {
		logger.Error("create game", "error", err)
		os.Exit(1)
	}

	hub := server.NewHub(game, cfg.SnapshotRateHz, logger)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go hub.Run(ctx)

	mux := http.NewServeMux()
	mux.Handle("/ws", server.NewHandler(hub, logger))

	httpServer := &http.Server{Addr: cfg.ListenAddr, Handler: mux}
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	logger.Info("listening", "addr", cfg.ListenAddr, "snapshot_hz", cfg.SnapshotRateHz)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
}
