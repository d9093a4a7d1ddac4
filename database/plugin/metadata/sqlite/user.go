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

// CreateUser inserts a new user record
func (d *MetadataStoreSqlite) CreateUser(
	user *models.User,
	txn *gorm.DB,
) error {
	return d.handle(txn).Create(user).Error
}

// GetUser returns the user with the given ID, or nil if absent
func (d *MetadataStoreSqlite) GetUser(
	userId string,
	txn *gorm.DB,
) (*models.User, error) {
	var tmpUser models.User
	result := d.handle(txn).First(&tmpUser, "id = ?", userId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpUser, nil
}

// GetUserByEmail returns the user with the given email, or nil if absent
func (d *MetadataStoreSqlite) GetUserByEmail(
	email string,
	txn *gorm.DB,
) (*models.User, error) {
	var tmpUser models.User
	result := d.handle(txn).First(&tmpUser, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpUser, nil
}

// AddUserBalance applies a balance delta as a SQL-level increment to
// avoid read-modify-write races between concurrent requests
func (d *MetadataStoreSqlite) AddUserBalance(
	userId string,
	delta decimal.Decimal,
	txn *gorm.DB,
) error {
	result := d.handle(txn).Model(&models.User{}).
		Where("id = ?", userId).
		Update("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
