// Copyright 2025 Fanstake Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fanstake/fanstake/api"
	"github.com/fanstake/fanstake/auth"
	"github.com/fanstake/fanstake/database"
	"github.com/fanstake/fanstake/event"
	"github.com/fanstake/fanstake/internal/config"
	"github.com/fanstake/fanstake/ledger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run assembles the service from config and blocks until shutdown
func Run(cfg *config.Config, logger *slog.Logger) error {
	if cfg.JwtSecret == "" {
		return errors.New(
			"no JWT secret configured, set jwtSecret or FANSTAKE_JWT_SECRET",
		)
	}
	shutdownTimeout, err := time.ParseDuration(cfg.ShutdownTimeout)
	if err != nil {
		return fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	promRegistry := prometheus.NewRegistry()

	db, err := database.New(&database.Config{
		DataDir:      cfg.DatabasePath,
		Logger:       logger,
		PromRegistry: promRegistry,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error(
				"failed to close database",
				"error", err,
			)
		}
	}()

	eventBus := event.NewEventBus(promRegistry)
	defer eventBus.Stop()

	ledgerInstance := ledger.NewLedger(ledger.LedgerConfig{
		Logger:       logger,
		Database:     db,
		EventBus:     eventBus,
		PromRegistry: promRegistry,
	})
	authenticator := auth.NewAuthenticator(cfg.JwtSecret, 0)

	apiServer := api.New(api.ApiConfig{
		ListenAddress: fmt.Sprintf("%s:%d", cfg.BindAddr, cfg.ApiPort),
		Logger:        logger,
		Database:      db,
		Ledger:        ledgerInstance,
		Auth:          authenticator,
		EventBus:      eventBus,
	})
	if err := apiServer.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}

	metricsServer := startMetricsListener(cfg, logger, promRegistry)

	// Wait for interrupt
	<-ctx.Done()
	logger.Info(
		"shutting down",
		"component", "service",
	)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		shutdownTimeout,
	)
	defer cancel()
	if err := apiServer.Stop(shutdownCtx); err != nil {
		logger.Error(
			"failed to stop API server",
			"error", err,
		)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error(
			"failed to stop metrics listener",
			"error", err,
		)
	}
	return nil
}

func startMetricsListener(
	cfg *config.Config,
	logger *slog.Logger,
	promRegistry *prometheus.Registry,
) *http.Server {
	metricsMux := http.NewServeMux()
	metricsMux.Handle(
		"/metrics",
		promhttp.HandlerFor(
			promRegistry,
			promhttp.HandlerOpts{Registry: promRegistry},
		),
	)
	metricsServer := &http.Server{
		Addr: fmt.Sprintf(
			"%s:%d",
			cfg.BindAddr,
			cfg.MetricsPort,
		),
		Handler:           metricsMux,
		ReadHeaderTimeout: 60 * time.Second,
	}
	go func() {
		logger.Info(
			"metrics listener started on " + metricsServer.Addr,
			"component", "service",
		)
		if err := metricsServer.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			logger.Error(
				"metrics listener error",
				"error", err,
			)
		}
	}()
	return metricsServer
}
