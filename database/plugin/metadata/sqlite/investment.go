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

// CreateInvestment inserts a new investment record
func (d *MetadataStoreSqlite) CreateInvestment(
	investment *models.Investment,
	txn *gorm.DB,
) error {
	return d.handle(txn).Create(investment).Error
}

// GetInvestmentsByChannel returns a channel's investments in the order
// they were made. The order matters: it determines investor payout
// enumeration during a distribution.
func (d *MetadataStoreSqlite) GetInvestmentsByChannel(
	channelId string,
	txn *gorm.DB,
) ([]models.Investment, error) {
	var investments []models.Investment
	result := d.handle(txn).
		Where("channel_id = ?", channelId).
		Order("created_at ASC, id ASC").
		Find(&investments)
	if result.Error != nil {
		return nil, result.Error
	}
	return investments, nil
}

// GetInvestmentsByInvestor returns all investments made by the given user
func (d *MetadataStoreSqlite) GetInvestmentsByInvestor(
	investorId string,
	txn *gorm.DB,
) ([]models.Investment, error) {
	var investments []models.Investment
	result := d.handle(txn).
		Where("investor_id = ?", investorId).
		Order("created_at ASC, id ASC").
		Find(&investments)
	if result.Error != nil {
		return nil, result.Error
	}
	return investments, nil
}
