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

// CreateDistribution stores a new distribution record and its lines
func (d *Database) CreateDistribution(
	distribution *models.Distribution,
	txn *Txn,
) error {
	if txn == nil {
		txn = d.Transaction(true)
		defer txn.Release()
		if err := d.metadata.CreateDistribution(distribution, txn.Metadata()); err != nil {
			return err
		}
		return txn.Commit()
	}
	return d.metadata.CreateDistribution(distribution, txn.Metadata())
}

// GetDistributionsByChannel returns a channel's distributions in the
// order they happened
func (d *Database) GetDistributionsByChannel(
	channelId string,
	txn *Txn,
) ([]models.Distribution, error) {
	if txn == nil {
		return d.metadata.GetDistributionsByChannel(channelId, nil)
	}
	return d.metadata.GetDistributionsByChannel(channelId, txn.Metadata())
}
