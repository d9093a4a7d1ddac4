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

package ledger

import (
	"io"
	"log/slog"

	"github.com/fanstake/fanstake/database"
	"github.com/fanstake/fanstake/event"
	"github.com/prometheus/client_golang/prometheus"
)

// LedgerConfig is the configuration for Ledger
type LedgerConfig struct {
	Logger       *slog.Logger
	Database     *database.Database
	EventBus     *event.EventBus
	PromRegistry prometheus.Registerer
}

// Ledger implements the equity and profit accounting rules. All balance
// and total-raised mutations go through here, each inside a single
// database transaction.
type Ledger struct {
	config  LedgerConfig
	logger  *slog.Logger
	db      *database.Database
	metrics ledgerMetrics
}

// NewLedger returns a new Ledger using the provided configuration
func NewLedger(cfg LedgerConfig) *Ledger {
	logger := cfg.Logger
	if logger == nil {
		// Create logger to throw away logs
		// We do this so we don't have to add guards around every log operation
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	l := &Ledger{
		config: cfg,
		logger: logger.With("component", "ledger"),
		db:     cfg.Database,
	}
	l.metrics.init(cfg.PromRegistry)
	return l
}

func (l *Ledger) publishEvent(eventType event.EventType, data any) {
	if l.config.EventBus == nil {
		return
	}
	l.config.EventBus.Publish(
		eventType,
		event.NewEvent(eventType, data),
	)
}
