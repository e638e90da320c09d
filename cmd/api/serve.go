// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taibuivan/scriptwriter/internal/api"
	"github.com/taibuivan/scriptwriter/internal/platform/config"
	"github.com/taibuivan/scriptwriter/internal/platform/constants"
	"github.com/taibuivan/scriptwriter/internal/platform/metrics"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Connect the document store selected by STORE_DRIVER and serve the API
until SIGINT or SIGTERM.`,
		RunE: runServe,
	}
}

// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect the document store (and migrate it for postgres).
//  4. Wire entity services and handlers.
//  5. Start HTTP server with graceful shutdown.
func runServe(_ *cobra.Command, _ []string) error {

	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(false)
	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(true)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
	)

	// Root context for the process lifetime; cancelled on shutdown.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Startup deadline so misconfiguration is caught quickly.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Document Store ─────────────────────────────────────────────────
	registry := metrics.NewRegistry()

	store, err := connectStore(startupCtx, cfg, registry, log)
	must(log, err, "connect document store")
	defer store.close()

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	resources, err := api.NewResources(startupCtx, store.backend, cfg.Collections, log)
	must(log, err, "open collections")

	liveness, readiness := api.NewHealthHandlers(store.checks, log)

	server := api.NewServer(rootCtx, cfg, log, registry, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Resources: resources,
	})

	// ── 5. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		return err
	}

	log.Info("server stopped cleanly")
	return nil
}
