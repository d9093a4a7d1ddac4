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

package badger

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/fanstake/fanstake/database/types"
	"github.com/prometheus/client_golang/prometheus"
)

// badgerTxn wraps a badger transaction and implements types.Txn
type badgerTxn struct {
	store    *JournalStoreBadger
	tx       *badger.Txn
	finished bool
}

func newBadgerTxn(store *JournalStoreBadger, tx *badger.Txn) *badgerTxn {
	return &badgerTxn{store: store, tx: tx}
}

// validateTxn validates a types.Txn for this JournalStore and returns
// the underlying *badgerTxn if valid.
func (d *JournalStoreBadger) validateTxn(txn types.Txn) (*badgerTxn, error) {
	if txn == nil {
		return nil, types.ErrNilTxn
	}
	bTxn, ok := txn.(*badgerTxn)
	if !ok {
		return nil, types.ErrTxnWrongType
	}
	if bTxn.store != d {
		return nil, errors.New("transaction from different store")
	}
	if err := bTxn.validate(); err != nil {
		return nil, err
	}
	return bTxn, nil
}

func (t *badgerTxn) validate() error {
	if t.finished {
		return errors.New("transaction already finished")
	}
	if t.tx == nil {
		return types.ErrJournalUnavailable
	}
	return nil
}

func (t *badgerTxn) Commit() error {
	if t.finished {
		return nil
	}
	if t.tx == nil {
		t.finished = true
		return nil
	}
	if err := t.tx.Commit(); err != nil {
		return err
	}
	t.finished = true
	return nil
}

func (t *badgerTxn) Rollback() error {
	if t.finished {
		return nil
	}
	if t.tx != nil {
		t.tx.Discard()
	}
	t.finished = true
	return nil
}

type badgerIterator struct {
	iter *badger.Iterator
}

func (it *badgerIterator) Rewind() { it.iter.Rewind() }

func (it *badgerIterator) Valid() bool { return it.iter.Valid() }

func (it *badgerIterator) Next() { it.iter.Next() }

func (it *badgerIterator) Item() types.JournalItem {
	return &badgerItem{item: it.iter.Item()}
}

func (it *badgerIterator) Close() { it.iter.Close() }

func (it *badgerIterator) Err() error { return nil }

type errorIterator struct {
	err error
}

func (it *errorIterator) Rewind() {}

func (it *errorIterator) Valid() bool { return false }

func (it *errorIterator) Next() {}

func (it *errorIterator) Item() types.JournalItem { return nil }

func (it *errorIterator) Close() {}

func (it *errorIterator) Err() error { return it.err }

type badgerItem struct {
	item *badger.Item
}

func (i *badgerItem) Key() []byte {
	return i.item.KeyCopy(nil)
}

func (i *badgerItem) ValueCopy(dst []byte) ([]byte, error) {
	return i.item.ValueCopy(dst)
}

// JournalStoreBadger stores journal documents in badger. Data may not be
// persisted when no data directory is configured.
type JournalStoreBadger struct {
	promRegistry prometheus.Registerer
	db           *badger.DB
	logger       *slog.Logger
	gcTicker     *time.Ticker
	gcStopCh     chan struct{}
	dataDir      string
	gcWg         sync.WaitGroup
	gcEnabled    bool
}

// New creates a new journal store
func New(opts ...JournalStoreBadgerOptionFunc) (*JournalStoreBadger, error) {
	db := &JournalStoreBadger{
		// Enable GC by default for disk-backed stores
		gcEnabled: true,
	}
	for _, opt := range opts {
		opt(db)
	}

	var journalDb *badger.DB
	var err error

	if db.dataDir == "" {
		// No dataDir, use in-memory config
		badgerOpts := badger.DefaultOptions("").
			WithLogger(newBadgerLogger(db.logger)).
			// The default INFO logging is a bit verbose
			WithLoggingLevel(badger.WARNING).
			WithInMemory(true)
		journalDb, err = badger.Open(badgerOpts)
		if err != nil {
			return nil, err
		}
	} else {
		// Make sure that we can read data dir, and create if it doesn't exist
		if _, err := os.Stat(db.dataDir); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read data dir: %w", err)
			}
			if err := os.MkdirAll(db.dataDir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data dir: %w", err)
			}
		}
		journalDir := filepath.Join(
			db.dataDir,
			"journal",
		)
		badgerOpts := badger.DefaultOptions(journalDir).
			WithLogger(newBadgerLogger(db.logger)).
			WithLoggingLevel(badger.WARNING).
			WithCompression(options.Snappy)
		journalDb, err = badger.Open(badgerOpts)
		if err != nil {
			return nil, err
		}
	}
	db.db = journalDb
	if err := db.init(); err != nil {
		return db, err
	}
	return db, nil
}

func (d *JournalStoreBadger) init() error {
	if d.logger == nil {
		// Create logger to throw away logs
		// We do this so we don't have to add guards around every log operation
		d.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	// Configure GC
	if d.gcEnabled {
		d.gcTicker = time.NewTicker(5 * time.Minute)
		d.gcStopCh = make(chan struct{})
		d.gcWg.Add(1)
		go d.journalGc(d.gcTicker, d.gcStopCh)
	}
	return nil
}

func (d *JournalStoreBadger) journalGc(t *time.Ticker, stop <-chan struct{}) {
	defer d.gcWg.Done()
	for {
		select {
		case <-t.C:
		again:
			err := d.DB().RunValueLogGC(0.5)
			if err != nil {
				// Log any actual errors
				if !errors.Is(err, badger.ErrNoRewrite) {
					d.logger.Warn(
						fmt.Sprintf("journal DB: GC failure: %s", err),
						"component", "database",
					)
				}
			} else {
				// Run it again if it just ran successfully
				goto again
			}
		case <-stop:
			return
		}
	}
}

// Close gets the database handle from our JournalStore and closes it
func (d *JournalStoreBadger) Close() error {
	// Stop GC ticker if it exists
	if d.gcTicker != nil {
		d.gcTicker.Stop()
		if d.gcStopCh != nil {
			close(d.gcStopCh)
			d.gcStopCh = nil
		}
		// Wait for GC goroutine to finish
		d.gcWg.Wait()
		d.gcTicker = nil
	}
	db := d.DB()
	return db.Close()
}

// DB returns the database handle
func (d *JournalStoreBadger) DB() *badger.DB {
	return d.db
}

// NewTransaction creates a new badger transaction
func (d *JournalStoreBadger) NewTransaction(update bool) types.Txn {
	return newBadgerTxn(d, d.DB().NewTransaction(update))
}

// Append stores an immutable document within a transaction. Appending
// over an existing key is refused: journal entries are write-once.
func (d *JournalStoreBadger) Append(txn types.Txn, key, doc []byte) error {
	bTxn, err := d.validateTxn(txn)
	if err != nil {
		return err
	}
	_, err = bTxn.tx.Get(key)
	if err == nil {
		return fmt.Errorf("journal key already exists: %s", key)
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return err
	}
	return bTxn.tx.Set(key, doc)
}

// Get retrieves a document from the journal within a transaction
func (d *JournalStoreBadger) Get(
	txn types.Txn,
	key []byte,
) ([]byte, error) {
	bTxn, err := d.validateTxn(txn)
	if err != nil {
		return nil, err
	}
	item, err := bTxn.tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, types.ErrJournalKeyNotFound
		}
		return nil, err
	}
	return item.ValueCopy(nil)
}

// NewIterator creates an iterator over journal documents with the given
// key prefix. Items must only be accessed while the transaction used to
// create the iterator is still active.
func (d *JournalStoreBadger) NewIterator(
	txn types.Txn,
	prefix []byte,
) types.JournalIterator {
	bTxn, err := d.validateTxn(txn)
	if err != nil {
		return &errorIterator{err: err}
	}
	iterOpts := badger.IteratorOptions{
		Prefix:         prefix,
		PrefetchValues: true,
		PrefetchSize:   100,
	}
	return &badgerIterator{iter: bTxn.tx.NewIterator(iterOpts)}
}
