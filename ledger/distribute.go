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

package ledger

import (
	"time"

	"github.com/fanstake/fanstake/database"
	"github.com/fanstake/fanstake/database/models"
	"github.com/fanstake/fanstake/event"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// DistributeProfit splits totalProfit across a channel's team members,
// investors, and creator, credits each recipient's balance, and appends
// a Distribution record. Only the channel's creator may distribute.
//
// The computation order is part of the contract: team members first, in
// the order they were added, each receiving their split percentage of
// the original total; then investors, in the order they invested, each
// receiving a share of the post-team remainder proportional to their
// equity; then the creator, who receives whatever is left if positive.
// Team splits summing past 100% drive the remainder negative, which
// flows into the investor and creator math unclamped.
func (l *Ledger) DistributeProfit(
	channelId string,
	requesterId string,
	totalProfit decimal.Decimal,
) (*models.Distribution, error) {
	var distribution *models.Distribution
	txn := l.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		channel, err := l.db.GetChannel(channelId, txn)
		if err != nil {
			return err
		}
		if channel == nil {
			return ErrChannelNotFound
		}
		if channel.CreatorID != requesterId {
			return ErrNotChannelOwner
		}
		if !totalProfit.IsPositive() {
			return ErrInvalidProfitAmount
		}
		teamMembers, err := l.db.GetTeamMembers(channelId, txn)
		if err != nil {
			return err
		}
		investments, err := l.db.GetInvestmentsByChannel(channelId, txn)
		if err != nil {
			return err
		}

		var lines []models.DistributionLine
		credit := func(userId string, amount decimal.Decimal) error {
			return l.db.AddUserBalance(userId, amount, txn)
		}

		// Team splits come off the original total
		remaining := totalProfit
		for _, member := range teamMembers {
			share := totalProfit.Mul(member.ProfitSplitPercentage).
				Div(oneHundred)
			lines = append(lines, models.DistributionLine{
				UserID:     member.UserID,
				UserName:   member.UserName,
				Amount:     share,
				Kind:       models.DistributionKindTeam,
				Percentage: member.ProfitSplitPercentage,
			})
			if err := credit(member.UserID, share); err != nil {
				return err
			}
			remaining = remaining.Sub(share)
		}
		if remaining.IsNegative() {
			l.logger.Warn(
				"team splits exceed total profit",
				"channel_id", channelId,
				"total_profit", totalProfit.String(),
				"remaining", remaining.String(),
			)
		}

		// Investors split the post-team pool pro-rata by equity,
		// re-normalized across whatever equity has been sold
		totalInvestorEquity := decimal.Zero
		for _, inv := range investments {
			totalInvestorEquity = totalInvestorEquity.Add(
				inv.EquityPercentage,
			)
		}
		investorPaid := decimal.Zero
		if totalInvestorEquity.IsPositive() {
			for _, inv := range investments {
				share := remaining.Mul(inv.EquityPercentage).
					Div(totalInvestorEquity)
				lines = append(lines, models.DistributionLine{
					UserID:     inv.InvestorID,
					UserName:   inv.InvestorName,
					Amount:     share,
					Kind:       models.DistributionKindInvestor,
					Percentage: inv.EquityPercentage,
				})
				if err := credit(inv.InvestorID, share); err != nil {
					return err
				}
				investorPaid = investorPaid.Add(share)
			}
		}

		// The creator gets the leftover only when positive
		creatorShare := remaining.Sub(investorPaid)
		if creatorShare.IsPositive() {
			lines = append(lines, models.DistributionLine{
				UserID:     channel.CreatorID,
				UserName:   channel.CreatorName,
				Amount:     creatorShare,
				Kind:       models.DistributionKindCreator,
				Percentage: decimal.Zero,
			})
			if err := credit(channel.CreatorID, creatorShare); err != nil {
				return err
			}
		}

		distribution = &models.Distribution{
			ID:          uuid.NewString(),
			ChannelID:   channel.ID,
			ChannelName: channel.Name,
			TotalProfit: totalProfit,
			CreatedAt:   time.Now().UTC(),
			Lines:       lines,
		}
		if err := l.db.CreateDistribution(distribution, txn); err != nil {
			return err
		}
		return l.db.JournalDistribution(distribution, txn)
	})
	if err != nil {
		return nil, err
	}
	if l.metrics.distributionsTotal != nil {
		l.metrics.distributionsTotal.Inc()
		l.metrics.distributedAmount.Add(totalProfit.InexactFloat64())
	}
	l.publishEvent(
		event.ProfitDistributedEventType,
		event.ProfitDistributedEvent{
			DistributionId: distribution.ID,
			ChannelId:      distribution.ChannelID,
			TotalProfit:    distribution.TotalProfit,
			RecipientCount: len(distribution.Lines),
		},
	)
	l.logger.Info(
		"profit distributed",
		"distribution_id", distribution.ID,
		"channel_id", distribution.ChannelID,
		"total_profit", distribution.TotalProfit.String(),
		"recipients", len(distribution.Lines),
	)
	return distribution, nil
}
