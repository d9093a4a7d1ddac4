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

// TeamMember is a channel contributor owed a fixed percentage of any
// distributed profit. A given user appears at most once per channel.
// Members are immutable once added.
type TeamMember struct {
	ID                    string          `gorm:"primaryKey;size:36"`
	ChannelID             string          `gorm:"index:idx_team_member_channel_user,unique;size:36"`
	UserID                string          `gorm:"index:idx_team_member_channel_user,unique;size:36"`
	UserName              string          `gorm:"size:255"`
	UserEmail             string          `gorm:"size:255"`
	Role                  string          `gorm:"size:64"`
	ProfitSplitPercentage decimal.Decimal `gorm:"type:decimal(20,8)"`
	JoinedAt              time.Time       `gorm:"index"`
}

func (TeamMember) TableName() string {
	return "team_member"
}
