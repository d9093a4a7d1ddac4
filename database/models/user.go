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

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	UserRoleCreator  = "creator"
	UserRoleInvestor = "investor"
)

// User is a registered account. Balance is a stored running total and is
// only ever mutated through the ledger's debit/credit operations.
type User struct {
	ID           string          `gorm:"primaryKey;size:36"`
	Email        string          `gorm:"uniqueIndex;size:255"`
	PasswordHash string          `gorm:"size:255"`
	Name         string          `gorm:"size:255"`
	Role         string          `gorm:"index;size:16"`
	Balance      decimal.Decimal `gorm:"type:decimal(20,8)"`
	CreatedAt    time.Time
}

func (User) TableName() string {
	return "user"
}
