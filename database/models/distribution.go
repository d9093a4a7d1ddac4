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
	DistributionKindTeam     = "team"
	DistributionKindInvestor = "investor"
	DistributionKindCreator  = "creator"
)

// Distribution is an append-only record of one profit-sharing event.
type Distribution struct {
	ID          string          `gorm:"primaryKey;size:36"`
	ChannelID   string          `gorm:"index;size:36"`
	ChannelName string          `gorm:"size:255"`
	TotalProfit decimal.Decimal `gorm:"type:decimal(20,8)"`
	CreatedAt   time.Time       `gorm:"index"`
	// Lines are ordered: team members first, then investors, then the
	// creator. The order determines which intermediate pool each amount
	// was computed from.
	Lines []DistributionLine `gorm:"foreignKey:DistributionID;references:ID"`
}

func (Distribution) TableName() string {
	return "distribution"
}

// DistributionLine is one recipient's share within a distribution. The
// autoincrement ID preserves line ordering.
type DistributionLine struct {
	ID             uint            `gorm:"primarykey"`
	DistributionID string          `gorm:"index;size:36"`
	UserID         string          `gorm:"index;size:36"`
	UserName       string          `gorm:"size:255"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,8)"`
	Kind           string          `gorm:"size:16"`
	Percentage     decimal.Decimal `gorm:"type:decimal(20,8)"`
}

func (DistributionLine) TableName() string {
	return "distribution_line"
}
