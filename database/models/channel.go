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
	ChannelStatusActive = "active"
	ChannelStatusClosed = "closed"
)

// Channel is a creator's fundraising project. TotalRaised is monotonically
// non-decreasing and only mutated by the funding tracker.
type Channel struct {
	ID               string          `gorm:"primaryKey;size:36"`
	Name             string          `gorm:"size:255"`
	Description      string          `gorm:"type:text"`
	Category         string          `gorm:"size:64"`
	CreatorID        string          `gorm:"index;size:36"`
	CreatorName      string          `gorm:"size:255"`
	GoalAmount       decimal.Decimal `gorm:"type:decimal(20,8)"`
	TotalRaised      decimal.Decimal `gorm:"type:decimal(20,8)"`
	EquityPercentage decimal.Decimal `gorm:"type:decimal(20,8)"`
	CoverImage       string          `gorm:"type:text"`
	Status           string          `gorm:"index;size:16"`
	CreatedAt        time.Time
}

func (Channel) TableName() string {
	return "channel"
}
