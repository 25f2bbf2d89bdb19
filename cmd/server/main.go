// Catalograph - Streaming Catalog Analytics and Reporting
// Copyright 2026 Catalograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

// Command server loads the catalog dataset and serves the report API.
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

	"github.com/catalograph/catalograph/internal/api"
	"github.com/catalograph/catalograph/internal/config"
	"github.com/catalograph/catalograph/internal/loader"
	"github.com/catalograph/catalograph/internal/logging"
	"github.com/catalograph/catalograph/internal/reports"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		// Default logger, config not yet available.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("dataset", cfg.Dataset.Path).
		Str("parse_policy", cfg.Reports.ParsePolicy).
		Msg("Starting Catalograph")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The catalog is loaded once at startup into an immutable snapshot;
	// there is no write path and no incremental update.
	snap, err := loader.LoadFile(ctx, cfg.Dataset.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Dataset.Path).Msg("Failed to load catalog dataset")
	}
	loadedAt := time.Now()

	policy := reports.SkipInvalid
	if cfg.Reports.ParsePolicy == "fail" {
		policy = reports.FailFast
	}
	engine := reports.NewEngine(snap, reports.WithParsePolicy(policy))

	handler := api.NewHandler(engine, cfg, loadedAt)
	router := api.NewRouter(handler, api.NewChiMiddleware(cfg.Security))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logging.Info().Msg("Application stopped gracefully")
}
