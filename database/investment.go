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
)

// CreateInvestment stores a new investment record
func (d *Database) CreateInvestment(
	investment *models.Investment,
	txn *Txn,
) error {
	if txn == nil {
		txn = d.Transaction(true)
		defer txn.Release()
		if err := d.metadata.CreateInvestment(investment, txn.Metadata()); err != nil {
			return err
		}
		return txn.Commit()
	}
	return d.metadata.CreateInvestment(investment, txn.Metadata())
}

// GetInvestmentsByChannel returns a channel's investments in the order
// they were made
func (d *Database) GetInvestmentsByChannel(
	channelId string,
	txn *Txn,
) ([]models.Investment, error) {
	if txn == nil {
		return d.metadata.GetInvestmentsByChannel(channelId, nil)
	}
	return d.metadata.GetInvestmentsByChannel(channelId, txn.Metadata())
}

// GetInvestmentsByInvestor returns an investor's investments in the
// order they were made
func (d *Database) GetInvestmentsByInvestor(
	investorId string,
	txn *Txn,
) ([]models.Investment, error) {
	if txn == nil {
		return d.metadata.GetInvestmentsByInvestor(investorId, nil)
	}
	return d.metadata.GetInvestmentsByInvestor(investorId, txn.Metadata())
}
