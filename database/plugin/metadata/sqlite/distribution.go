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
	"github.com/fanstake/fanstake/database/models"
	"gorm.io/gorm"
)

// CreateDistribution inserts a distribution record along with its
// ordered line items
func (d *MetadataStoreSqlite) CreateDistribution(
	distribution *models.Distribution,
	txn *gorm.DB,
) error {
	return d.handle(txn).Create(distribution).Error
}

// GetDistributionsByChannel returns a channel's distributions, newest
// last, with line items in their original order
func (d *MetadataStoreSqlite) GetDistributionsByChannel(
	channelId string,
	txn *gorm.DB,
) ([]models.Distribution, error) {
	var distributions []models.Distribution
	result := d.handle(txn).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("distribution_line.id ASC")
		}).
		Where("channel_id = ?", channelId).
		Order("created_at ASC, id ASC").
		Find(&distributions)
	if result.Error != nil {
		return nil, result.Error
	}
	return distributions, nil
}
