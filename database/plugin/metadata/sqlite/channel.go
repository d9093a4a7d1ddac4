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

package sqlite

import (
	"errors"

	"github.com/fanstake/fanstake/database/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateChannel inserts a new channel record
func (d *MetadataStoreSqlite) CreateChannel(
	channel *models.Channel,
	txn *gorm.DB,
) error {
	return d.handle(txn).Create(channel).Error
}

// GetChannel returns the channel with the given ID, or nil if absent
func (d *MetadataStoreSqlite) GetChannel(
	channelId string,
	txn *gorm.DB,
) (*models.Channel, error) {
	var tmpChannel models.Channel
	result := d.handle(txn).First(&tmpChannel, "id = ?", channelId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpChannel, nil
}

// GetChannels returns all channels ordered by creation time
func (d *MetadataStoreSqlite) GetChannels(
	txn *gorm.DB,
) ([]models.Channel, error) {
	var channels []models.Channel
	result := d.handle(txn).
		Order("created_at ASC, id ASC").
		Find(&channels)
	if result.Error != nil {
		return nil, result.Error
	}
	return channels, nil
}

// GetChannelsByCreator returns channels owned by the given creator
func (d *MetadataStoreSqlite) GetChannelsByCreator(
	creatorId string,
	txn *gorm.DB,
) ([]models.Channel, error) {
	var channels []models.Channel
	result := d.handle(txn).
		Where("creator_id = ?", creatorId).
		Order("created_at ASC, id ASC").
		Find(&channels)
	if result.Error != nil {
		return nil, result.Error
	}
	return channels, nil
}

// AddChannelRaised applies a raised-total delta as a SQL-level increment
func (d *MetadataStoreSqlite) AddChannelRaised(
	channelId string,
	delta decimal.Decimal,
	txn *gorm.DB,
) error {
	result := d.handle(txn).Model(&models.Channel{}).
		Where("id = ?", channelId).
		Update("total_raised", gorm.Expr("total_raised + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
