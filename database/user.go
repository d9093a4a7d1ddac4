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
	"github.com/fanstake/fanstake/database/models"
	"github.com/shopspring/decimal"
)

// CreateUser stores a new user
func (d *Database) CreateUser(user *models.User, txn *Txn) error {
	if txn == nil {
		txn = d.Transaction(true)
		defer txn.Release()
		if err := d.metadata.CreateUser(user, txn.Metadata()); err != nil {
			return err
		}
		return txn.Commit()
	}
	return d.metadata.CreateUser(user, txn.Metadata())
}

// GetUser returns a user by ID, or nil when no user matches
func (d *Database) GetUser(userId string, txn *Txn) (*models.User, error) {
	if txn == nil {
		return d.metadata.GetUser(userId, nil)
	}
	return d.metadata.GetUser(userId, txn.Metadata())
}

// GetUserByEmail returns a user by email, or nil when no user matches
func (d *Database) GetUserByEmail(
	email string,
	txn *Txn,
) (*models.User, error) {
	if txn == nil {
		return d.metadata.GetUserByEmail(email, nil)
	}
	return d.metadata.GetUserByEmail(email, txn.Metadata())
}

// AddUserBalance adjusts a user's balance by delta, which may be
// negative. The adjustment happens in SQL to avoid read-modify-write
// races between concurrent transactions.
func (d *Database) AddUserBalance(
	userId string,
	delta decimal.Decimal,
	txn *Txn,
) error {
	if txn == nil {
		txn = d.Transaction(true)
		defer txn.Release()
		if err := d.metadata.AddUserBalance(userId, delta, txn.Metadata()); err != nil {
			return err
		}
		return txn.Commit()
	}
	return d.metadata.AddUserBalance(userId, delta, txn.Metadata())
}
