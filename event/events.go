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

package event

import (
	"github.com/shopspring/decimal"
)

const (
	UserRegisteredEventType    EventType = "user.registered"
	ChannelCreatedEventType    EventType = "channel.created"
	TeamMemberAddedEventType   EventType = "team.member_added"
	InvestmentCreatedEventType EventType = "investment.created"
	ProfitDistributedEventType EventType = "profit.distributed"
)

type UserRegisteredEvent struct {
	UserId string
	Email  string
	Role   string
}

type ChannelCreatedEvent struct {
	ChannelId string
	CreatorId string
	Name      string
}

type TeamMemberAddedEvent struct {
	ChannelId             string
	UserId                string
	ProfitSplitPercentage decimal.Decimal
}

type InvestmentCreatedEvent struct {
	InvestmentId     string
	ChannelId        string
	InvestorId       string
	Amount           decimal.Decimal
	EquityPercentage decimal.Decimal
}

type ProfitDistributedEvent struct {
	DistributionId string
	ChannelId      string
	TotalProfit    decimal.Decimal
	RecipientCount int
}
