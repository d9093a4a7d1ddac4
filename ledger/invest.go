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

// Invest records an investment into a channel. The investment record,
// the channel's raised total, the investor's balance debit, and the
// journal entry are committed as one transaction. The granted equity is
// a function of the channel's terms at the time of investment and is
// never recomputed.
func (l *Ledger) Invest(
	channelId string,
	investorId string,
	amount decimal.Decimal,
) (*models.Investment, error) {
	var investment *models.Investment
	txn := l.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		channel, err := l.db.GetChannel(channelId, txn)
		if err != nil {
			return err
		}
		if channel == nil {
			return ErrChannelNotFound
		}
		investor, err := l.db.GetUser(investorId, txn)
		if err != nil {
			return err
		}
		if investor == nil {
			return ErrUserNotFound
		}
		if amount.LessThan(MinInvestment) {
			return ErrBelowMinimumInvestment
		}
		if investor.Balance.LessThan(amount) {
			return ErrInsufficientBalance
		}
		investment = &models.Investment{
			ID:           uuid.NewString(),
			ChannelID:    channel.ID,
			ChannelName:  channel.Name,
			InvestorID:   investor.ID,
			InvestorName: investor.Name,
			Amount:       amount,
			EquityPercentage: ComputeEquity(
				channel.GoalAmount,
				channel.EquityPercentage,
				amount,
			),
			CreatedAt: time.Now().UTC(),
		}
		if err := l.db.CreateInvestment(investment, txn); err != nil {
			return err
		}
		if err := l.db.AddChannelRaised(channel.ID, amount, txn); err != nil {
			return err
		}
		if err := l.db.AddUserBalance(investor.ID, amount.Neg(), txn); err != nil {
			return err
		}
		return l.db.JournalInvestment(investment, txn)
	})
	if err != nil {
		return nil, err
	}
	if l.metrics.investmentsTotal != nil {
		l.metrics.investmentsTotal.Inc()
		l.metrics.investedAmount.Add(amount.InexactFloat64())
	}
	l.publishEvent(
		event.InvestmentCreatedEventType,
		event.InvestmentCreatedEvent{
			InvestmentId:     investment.ID,
			ChannelId:        investment.ChannelID,
			InvestorId:       investment.InvestorID,
			Amount:           investment.Amount,
			EquityPercentage: investment.EquityPercentage,
		},
	)
	l.logger.Info(
		"investment accepted",
		"investment_id", investment.ID,
		"channel_id", investment.ChannelID,
		"investor_id", investment.InvestorID,
		"amount", investment.Amount.String(),
		"equity_percentage", investment.EquityPercentage.String(),
	)
	return investment, nil
}
