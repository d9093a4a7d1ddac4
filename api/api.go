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

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/fanstake/fanstake/auth"
	"github.com/fanstake/fanstake/database"
	"github.com/fanstake/fanstake/event"
	"github.com/fanstake/fanstake/ledger"
)

// ApiConfig is the configuration for the REST API server
type ApiConfig struct {
	ListenAddress string
	Logger        *slog.Logger
	Database      *database.Database
	Ledger        *ledger.Ledger
	Auth          *auth.Authenticator
	EventBus      *event.EventBus
}

// Api is the REST API server
type Api struct {
	config     ApiConfig
	logger     *slog.Logger
	db         *database.Database
	ledger     *ledger.Ledger
	auth       *auth.Authenticator
	httpServer *http.Server
	mu         sync.Mutex
}

// New creates a new API server instance
func New(cfg ApiConfig) *Api {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	logger = logger.With("component", "api")
	if cfg.ListenAddress == "" {
		cfg.ListenAddress = ":8000"
	}
	return &Api{
		config: cfg,
		logger: logger,
		db:     cfg.Database,
		ledger: cfg.Ledger,
		auth:   cfg.Auth,
	}
}

// Start starts the HTTP server in a background goroutine
func (a *Api) Start(ctx context.Context) error {
	a.mu.Lock()
	if a.httpServer != nil {
		a.mu.Unlock()
		return errors.New("server already started")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.handleHealth)
	mux.HandleFunc("POST /api/auth/register", a.handleRegister)
	mux.HandleFunc("POST /api/auth/login", a.handleLogin)
	mux.HandleFunc("GET /api/auth/me", a.requireUser(a.handleMe))
	mux.HandleFunc(
		"POST /api/channels",
		a.requireUser(a.handleCreateChannel),
	)
	mux.HandleFunc("GET /api/channels", a.handleListChannels)
	mux.HandleFunc(
		"GET /api/channels/my/created",
		a.requireUser(a.handleMyChannels),
	)
	mux.HandleFunc("GET /api/channels/{id}", a.handleGetChannel)
	mux.HandleFunc(
		"POST /api/channels/{id}/team",
		a.requireUser(a.handleAddTeamMember),
	)
	mux.HandleFunc("GET /api/channels/{id}/team", a.handleListTeamMembers)
	mux.HandleFunc(
		"GET /api/channels/{id}/investors",
		a.handleChannelInvestors,
	)
	mux.HandleFunc(
		"POST /api/investments",
		a.requireUser(a.handleCreateInvestment),
	)
	mux.HandleFunc(
		"GET /api/investments/my",
		a.requireUser(a.handleMyInvestments),
	)
	mux.HandleFunc(
		"POST /api/profits/distribute",
		a.requireUser(a.handleDistributeProfit),
	)
	mux.HandleFunc(
		"GET /api/profits/{channelId}",
		a.handleDistributionHistory,
	)

	server := &http.Server{
		Addr:              a.config.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 60 * time.Second,
	}
	a.httpServer = server
	a.mu.Unlock()

	if err := a.startServer(server); err != nil {
		a.mu.Lock()
		a.httpServer = nil
		a.mu.Unlock()
		return err
	}

	a.logger.Info(
		"API listener started on " + a.config.ListenAddress,
	)

	// Monitor context for cancellation
	go func() {
		<-ctx.Done()
		a.mu.Lock()
		srv := a.httpServer
		a.httpServer = nil
		a.mu.Unlock()

		if srv != nil {
			a.logger.Debug(
				"context cancelled, shutting down API server",
			)
			//nolint:contextcheck
			shutdownCtx, cancel := context.WithTimeout(
				context.Background(),
				30*time.Second,
			)
			defer cancel()
			//nolint:contextcheck
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.logger.Error(
					"failed to shutdown API server on context cancellation",
					"error", err,
				)
			}
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server
func (a *Api) Stop(ctx context.Context) error {
	a.mu.Lock()
	srv := a.httpServer
	a.httpServer = nil
	a.mu.Unlock()

	if srv != nil {
		a.logger.Debug("shutting down API server")
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf(
				"failed to shutdown API server: %w",
				err,
			)
		}
	}
	return nil
}

// startServer binds the listening socket first so port conflicts are
// detected immediately, then serves in a background goroutine
func (a *Api) startServer(server *http.Server) error {
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf(
			"failed to listen for API server: %w",
			err,
		)
	}
	go func() {
		if err := server.Serve(ln); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			a.logger.Error(
				"API server error",
				"error", err,
			)
		}
	}()
	return nil
}
