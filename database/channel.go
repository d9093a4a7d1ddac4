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

// CreateChannel stores a new channel
func (d *Database) CreateChannel(channel *models.Channel, txn *Txn) error {
	if txn == nil {
		txn = d.Transaction(true)
		defer txn.Release()
		if err := d.metadata.CreateChannel(channel, txn.Metadata()); err != nil {
			return err
		}
		return txn.Commit()
	}
	return d.metadata.CreateChannel(channel, txn.Metadata())
}

// GetChannel returns a channel by ID, or nil when no channel matches
func (d *Database) GetChannel(
	channelId string,
	txn *Txn,
) (*models.Channel, error) {
	if txn == nil {
		return d.metadata.GetChannel(channelId, nil)
	}
	return d.metadata.GetChannel(channelId, txn.Metadata())
}

// GetChannels returns all channels in creation order
func (d *Database) GetChannels(txn *Txn) ([]models.Channel, error) {
	if txn == nil {
		return d.metadata.GetChannels(nil)
	}
	return d.metadata.GetChannels(txn.Metadata())
}

// GetChannelsByCreator returns a creator's channels in creation order
func (d *Database) GetChannelsByCreator(
	creatorId string,
	txn *Txn,
) ([]models.Channel, error) {
	if txn == nil {
		return d.metadata.GetChannelsByCreator(creatorId, nil)
	}
	return d.metadata.GetChannelsByCreator(creatorId, txn.Metadata())
}

// AddChannelRaised adjusts a channel's total raised amount in SQL
func (d *Database) AddChannelRaised(
	channelId string,
	delta decimal.Decimal,
	txn *Txn,
) error {
	if txn == nil {
		txn = d.Transaction(true)
		defer txn.Release()
		if err := d.metadata.AddChannelRaised(channelId, delta, txn.Metadata()); err != nil {
			return err
		}
		return txn.Commit()
	}
	return d.metadata.AddChannelRaised(channelId, delta, txn.Metadata())
}
