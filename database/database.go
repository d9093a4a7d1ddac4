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

package database

import (
	"io"
	"log/slog"

	"github.com/fanstake/fanstake/database/plugin/journal"
	"github.com/fanstake/fanstake/database/plugin/metadata"
	"github.com/prometheus/client_golang/prometheus"
)

// Database provides a unified interface to the metadata and journal
// stores. Ledger state lives in the metadata store; the journal keeps an
// append-only audit record of every accepted investment and distribution.
type Database struct {
	logger       *slog.Logger
	journal      journal.JournalStore
	metadata     metadata.MetadataStore
	promRegistry prometheus.Registerer
	dataDir      string
}

type Config struct {
	Logger       *slog.Logger
	PromRegistry prometheus.Registerer
	DataDir      string
}

// New creates a database instance with the provided config. An empty
// DataDir results in stores that lose all data on shutdown.
func New(cfg *Config) (*Database, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	logger := cfg.Logger
	if logger == nil {
		// Create logger to throw away logs
		// We do this so we don't have to add guards around every log operation
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	metadataDb, err := metadata.New(
		"sqlite",
		cfg.DataDir,
		logger,
		cfg.PromRegistry,
	)
	if err != nil {
		return nil, err
	}
	journalDb, err := journal.New(
		"badger",
		cfg.DataDir,
		logger,
		cfg.PromRegistry,
	)
	if err != nil {
		_ = metadataDb.Close()
		return nil, err
	}
	db := &Database{
		logger:       logger,
		journal:      journalDb,
		metadata:     metadataDb,
		promRegistry: cfg.PromRegistry,
		dataDir:      cfg.DataDir,
	}
	return db, nil
}

// Logger returns the logger instance
func (d *Database) Logger() *slog.Logger {
	return d.logger
}

// DataDir returns the path to the data directory
func (d *Database) DataDir() string {
	return d.dataDir
}

// Journal returns the underlying journal store
func (d *Database) Journal() journal.JournalStore {
	return d.journal
}

// Metadata returns the underlying metadata store
func (d *Database) Metadata() metadata.MetadataStore {
	return d.metadata
}

// Transaction starts a new database transaction and returns a handle to it
func (d *Database) Transaction(readWrite bool) *Txn {
	return NewTxn(d, readWrite)
}

// Close cleans up the database connections
func (d *Database) Close() error {
	var err error
	if d.metadata != nil {
		err = d.metadata.Close()
	}
	if d.journal != nil {
		if journalErr := d.journal.Close(); journalErr != nil && err == nil {
			err = journalErr
		}
	}
	return err
}
