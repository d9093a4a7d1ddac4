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

// Investment is an append-only record of an accepted investment.
// EquityPercentage is derived from the channel's state at the time of
// investment and is never recomputed.
type Investment struct {
	ID               string          `gorm:"primaryKey;size:36"`
	ChannelID        string          `gorm:"index;size:36"`
	ChannelName      string          `gorm:"size:255"`
	InvestorID       string          `gorm:"index;size:36"`
	InvestorName     string          `gorm:"size:255"`
	Amount           decimal.Decimal `gorm:"type:decimal(20,8)"`
	EquityPercentage decimal.Decimal `gorm:"type:decimal(20,8)"`
	CreatedAt        time.Time       `gorm:"index"`
}

func (Investment) TableName() string {
	return "investment"
}
