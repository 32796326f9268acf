package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fr0stylo/pfsync/internal/app/bootstrap"
	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/config"
	"github.com/fr0stylo/pfsync/internal/observability"
	"github.com/fr0stylo/pfsync/internal/server"
	"github.com/fr0stylo/pfsync/internal/server/routes"
	"github.com/fr0stylo/pfsync/internal/webhooks/inbound"
)

func main() {
	log := observability.NewLogger(os.Stdout, slog.LevelInfo)
	slog.SetDefault(log)

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOtel, err := observability.SetupOpenTelemetry(ctx, log, observability.OpenTelemetryConfig(cfg.Observability))
	if err != nil {
		slog.Error("Failed to set up OpenTelemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOtel(flushCtx); err != nil {
			slog.Error("Failed to flush telemetry", "error", err)
		}
	}()

	engine, err := bootstrap.New(ctx, cfg, log, bootstrap.Options{})
	if err != nil {
		slog.Error("Failed to start sync engine", "error", err)
		return
	}
	defer func() {
		engine.LogQueryTimings()
		if err := engine.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()
	if !cfg.API.Configured() {
		slog.Warn("API credentials are not configured, sync and webhook fetches will fail")
	}
	go engine.PurgeExpiredLoop(ctx, time.Minute)

	serviceName := ""
	if cfg.Observability.Enabled {
		serviceName = cfg.Observability.ServiceName
	}
	srv := server.New(log, serviceName)

	syncRoutes := routes.NewSyncRoutes(routes.SyncRoutesConfig{AdminToken: cfg.Server.AdminToken, PerPage: cfg.Sync.PerPage}, engine.Lock, engine.State, engine.Records, log)
	for _, kind := range domain.Kinds {
		syncRoutes.WithKind(engine.Runner(kind), engine.Catalog(kind))
	}
	srv.RegisterRouter(syncRoutes)
	srv.RegisterRouter(routes.NewWebhookRoutes(inbound.NewHandler(cfg.Webhook.Secret, engine.Webhooks, log)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shut down server", "error", err)
		}
	}()

	slog.Info("Starting server", "port", cfg.Server.Port)
	if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Closing server", "error", err)
	}
}
