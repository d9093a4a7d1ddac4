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
	"errors"
	"fmt"

	"github.com/fanstake/fanstake/database/types"
	"gorm.io/gorm"
)

// Txn is a wrapper around the transaction objects for the journal and
// metadata stores. The journal transaction commits first: a metadata
// commit failure leaves an orphaned journal entry rather than ledger
// state with no audit record.
type Txn struct {
	db          *Database
	journalTxn  types.Txn
	metadataTxn *gorm.DB
	finished    bool
	readWrite   bool
}

func NewTxn(db *Database, readWrite bool) *Txn {
	return &Txn{
		db:          db,
		journalTxn:  db.Journal().NewTransaction(readWrite),
		metadataTxn: db.Metadata().Transaction(),
		readWrite:   readWrite,
	}
}

// Journal returns the journal transaction handle
func (t *Txn) Journal() types.Txn {
	return t.journalTxn
}

// Metadata returns the metadata transaction handle
func (t *Txn) Metadata() *gorm.DB {
	return t.metadataTxn
}

// DB returns the parent database
func (t *Txn) DB() *Database {
	return t.db
}

// Do executes the specified function in the context of the transaction.
// The transaction is automatically committed if the function returns no
// error, and rolled back otherwise.
func (t *Txn) Do(fn func(*Txn) error) error {
	if err := fn(t); err != nil {
		if err2 := t.Rollback(); err2 != nil {
			return fmt.Errorf(
				"rollback failed: %w after error: %w",
				err2,
				err,
			)
		}
		return err
	}
	return t.Commit()
}

// Commit commits the staged changes, journal store first
func (t *Txn) Commit() error {
	if t.finished {
		return errors.New("transaction already finished")
	}
	t.finished = true
	if t.journalTxn != nil {
		if err := t.journalTxn.Commit(); err != nil {
			if t.metadataTxn != nil {
				_ = t.metadataTxn.Rollback().Error
			}
			return err
		}
	}
	if t.metadataTxn != nil {
		if err := t.metadataTxn.Commit().Error; err != nil {
			return err
		}
	}
	return nil
}

// Rollback discards the staged changes
func (t *Txn) Rollback() error {
	if t.finished {
		return nil
	}
	t.finished = true
	if t.journalTxn != nil {
		if err := t.journalTxn.Rollback(); err != nil {
			if t.metadataTxn != nil {
				_ = t.metadataTxn.Rollback().Error
			}
			return err
		}
	}
	if t.metadataTxn != nil {
		if err := t.metadataTxn.Rollback().Error; err != nil {
			return err
		}
	}
	return nil
}

// Release discards the transaction unless it was already committed or
// rolled back. Meant to be used with defer after creating a transaction.
func (t *Txn) Release() {
	if !t.finished {
		_ = t.Rollback()
	}
}
