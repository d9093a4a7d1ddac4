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

package ledger_test

import (
	"testing"
	"time"

	"github.com/fanstake/fanstake/database"
	"github.com/fanstake/fanstake/database/models"
	"github.com/fanstake/fanstake/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testHarness struct {
	db     *database.Database
	ledger *ledger.Ledger
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	db, err := database.New(&database.Config{})
	require.NoError(t, err, "failed to create database")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close database: %s", err)
		}
	})
	return &testHarness{
		db: db,
		ledger: ledger.NewLedger(ledger.LedgerConfig{
			Database: db,
		}),
	}
}

func (h *testHarness) createUser(
	t *testing.T,
	name string,
	role string,
	balance int64,
) *models.User {
	t.Helper()
	user := &models.User{
		ID:        uuid.NewString(),
		Email:     name + "@example.com",
		Name:      name,
		Role:      role,
		Balance:   decimal.NewFromInt(balance),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, h.db.CreateUser(user, nil))
	return user
}

func (h *testHarness) createChannel(
	t *testing.T,
	creator *models.User,
	goal int64,
	equityPct int64,
) *models.Channel {
	t.Helper()
	channel := &models.Channel{
		ID:               uuid.NewString(),
		Name:             "Channel by " + creator.Name,
		CreatorID:        creator.ID,
		CreatorName:      creator.Name,
		GoalAmount:       decimal.NewFromInt(goal),
		TotalRaised:      decimal.Zero,
		EquityPercentage: decimal.NewFromInt(equityPct),
		Status:           models.ChannelStatusActive,
		CreatedAt:        time.Now().UTC(),
	}
	require.NoError(t, h.db.CreateChannel(channel, nil))
	return channel
}

func (h *testHarness) addTeamMember(
	t *testing.T,
	channel *models.Channel,
	user *models.User,
	splitPct int64,
) *models.TeamMember {
	t.Helper()
	member := &models.TeamMember{
		ID:                    uuid.NewString(),
		ChannelID:             channel.ID,
		UserID:                user.ID,
		UserName:              user.Name,
		UserEmail:             user.Email,
		Role:                  "editor",
		ProfitSplitPercentage: decimal.NewFromInt(splitPct),
		JoinedAt:              time.Now().UTC(),
	}
	require.NoError(t, h.db.CreateTeamMember(member, nil))
	return member
}

func (h *testHarness) balance(t *testing.T, userId string) decimal.Decimal {
	t.Helper()
	user, err := h.db.GetUser(userId, nil)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user.Balance
}

func decEq(t *testing.T, expected int64, actual decimal.Decimal) {
	t.Helper()
	assert.True(
		t,
		actual.Equal(decimal.NewFromInt(expected)),
		"expected %d, got %s",
		expected,
		actual,
	)
}

func TestComputeEquity(t *testing.T) {
	goal := decimal.NewFromInt(10000)
	equityPct := decimal.NewFromInt(20)

	// 500 into a 10000 goal offering 20% yields 1%
	equity := ledger.ComputeEquity(goal, equityPct, decimal.NewFromInt(500))
	assert.True(t, equity.Equal(decimal.NewFromInt(1)))

	// Equity scales linearly with amount
	double := ledger.ComputeEquity(goal, equityPct, decimal.NewFromInt(1000))
	assert.True(t, double.Equal(equity.Mul(decimal.NewFromInt(2))))

	// Investing the full goal grants the full offered percentage, and
	// going past the goal is not capped
	full := ledger.ComputeEquity(goal, equityPct, goal)
	assert.True(t, full.Equal(equityPct))
	over := ledger.ComputeEquity(
		goal,
		equityPct,
		decimal.NewFromInt(20000),
	)
	assert.True(t, over.Equal(decimal.NewFromInt(40)))

	// Zero goal yields zero equity rather than dividing by zero
	zero := ledger.ComputeEquity(
		decimal.Zero,
		equityPct,
		decimal.NewFromInt(500),
	)
	assert.True(t, zero.IsZero())
}

func TestInvestChannelNotFound(t *testing.T) {
	h := newTestHarness(t)
	investor := h.createUser(t, "investor", models.UserRoleInvestor, 10000)
	_, err := h.ledger.Invest(
		uuid.NewString(),
		investor.ID,
		decimal.NewFromInt(500),
	)
	assert.ErrorIs(t, err, ledger.ErrChannelNotFound)
}

func TestInvestBelowMinimum(t *testing.T) {
	h := newTestHarness(t)
	creator := h.createUser(t, "creator", models.UserRoleCreator, 10000)
	investor := h.createUser(t, "investor", models.UserRoleInvestor, 10000)
	channel := h.createChannel(t, creator, 10000, 20)

	_, err := h.ledger.Invest(
		channel.ID,
		investor.ID,
		decimal.NewFromInt(499),
	)
	assert.ErrorIs(t, err, ledger.ErrBelowMinimumInvestment)

	// Balance and raised total are untouched after a rejected investment
	decEq(t, 10000, h.balance(t, investor.ID))
	fetched, err := h.db.GetChannel(channel.ID, nil)
	require.NoError(t, err)
	assert.True(t, fetched.TotalRaised.IsZero())
}

func TestInvestInsufficientBalance(t *testing.T) {
	h := newTestHarness(t)
	creator := h.createUser(t, "creator", models.UserRoleCreator, 10000)
	investor := h.createUser(t, "investor", models.UserRoleInvestor, 600)
	channel := h.createChannel(t, creator, 10000, 20)

	_, err := h.ledger.Invest(
		channel.ID,
		investor.ID,
		decimal.NewFromInt(601),
	)
	assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)
}

func TestInvestSideEffects(t *testing.T) {
	h := newTestHarness(t)
	creator := h.createUser(t, "creator", models.UserRoleCreator, 10000)
	investor := h.createUser(t, "investor", models.UserRoleInvestor, 10000)
	channel := h.createChannel(t, creator, 10000, 20)

	investment, err := h.ledger.Invest(
		channel.ID,
		investor.ID,
		decimal.NewFromInt(1000),
	)
	require.NoError(t, err)
	require.NotNil(t, investment)

	// 1000 into a 10000 goal at 20% equity grants 2%
	decEq(t, 2, investment.EquityPercentage)
	// Investor was debited
	decEq(t, 9000, h.balance(t, investor.ID))
	// Channel raised total was credited
	fetched, err := h.db.GetChannel(channel.ID, nil)
	require.NoError(t, err)
	decEq(t, 1000, fetched.TotalRaised)
	// The investment was journaled
	fromJournal, err := h.db.GetJournalInvestment(investment.ID, nil)
	require.NoError(t, err)
	assert.True(t, fromJournal.Amount.Equal(investment.Amount))
}

func TestDistributeChannelNotFound(t *testing.T) {
	h := newTestHarness(t)
	creator := h.createUser(t, "creator", models.UserRoleCreator, 10000)
	_, err := h.ledger.DistributeProfit(
		uuid.NewString(),
		creator.ID,
		decimal.NewFromInt(1000),
	)
	assert.ErrorIs(t, err, ledger.ErrChannelNotFound)
}

func TestDistributeNotOwner(t *testing.T) {
	h := newTestHarness(t)
	creator := h.createUser(t, "creator", models.UserRoleCreator, 10000)
	other := h.createUser(t, "other", models.UserRoleCreator, 10000)
	channel := h.createChannel(t, creator, 10000, 20)

	_, err := h.ledger.DistributeProfit(
		channel.ID,
		other.ID,
		decimal.NewFromInt(1000),
	)
	assert.ErrorIs(t, err, ledger.ErrNotChannelOwner)
}

func TestDistributeInvalidProfit(t *testing.T) {
	h := newTestHarness(t)
	creator := h.createUser(t, "creator", models.UserRoleCreator, 10000)
	channel := h.createChannel(t, creator, 10000, 20)

	_, err := h.ledger.DistributeProfit(
		channel.ID,
		creator.ID,
		decimal.Zero,
	)
	assert.ErrorIs(t, err, ledger.ErrInvalidProfitAmount)
	_, err = h.ledger.DistributeProfit(
		channel.ID,
		creator.ID,
		decimal.NewFromInt(-100),
	)
	assert.ErrorIs(t, err, ledger.ErrInvalidProfitAmount)
}

func TestDistributeTeamShareOfOriginalTotal(t *testing.T) {
	h := newTestHarness(t)
	creator := h.createUser(t, "creator", models.UserRoleCreator, 10000)
	member := h.createUser(t, "member", models.UserRoleInvestor, 10000)
	channel := h.createChannel(t, creator, 10000, 20)
	h.addTeamMember(t, channel, member, 20)

	distribution, err := h.ledger.DistributeProfit(
		channel.ID,
		creator.ID,
		decimal.NewFromInt(10000),
	)
	require.NoError(t, err)
	require.Len(t, distribution.Lines, 2)

	// Team member gets 20% of the original total
	assert.Equal(t, models.DistributionKindTeam, distribution.Lines[0].Kind)
	decEq(t, 2000, distribution.Lines[0].Amount)
	// No investors, so the creator takes the remaining 8000
	assert.Equal(
		t,
		models.DistributionKindCreator,
		distribution.Lines[1].Kind,
	)
	decEq(t, 8000, distribution.Lines[1].Amount)

	decEq(t, 12000, h.balance(t, member.ID))
	decEq(t, 18000, h.balance(t, creator.ID))
}

func TestDistributeNoTeamNoInvestors(t *testing.T) {
	h := newTestHarness(t)
	creator := h.createUser(t, "creator", models.UserRoleCreator, 10000)
	channel := h.createChannel(t, creator, 10000, 20)

	distribution, err := h.ledger.DistributeProfit(
		channel.ID,
		creator.ID,
		decimal.NewFromInt(5000),
	)
	require.NoError(t, err)
	require.Len(t, distribution.Lines, 1)
	assert.Equal(
		t,
		models.DistributionKindCreator,
		distribution.Lines[0].Kind,
	)
	decEq(t, 5000, distribution.Lines[0].Amount)
	decEq(t, 15000, h.balance(t, creator.ID))
}

func TestDistributeInvestorProRata(t *testing.T) {
	h := newTestHarness(t)
	creator := h.createUser(t, "creator", models.UserRoleCreator, 10000)
	member := h.createUser(t, "member", models.UserRoleInvestor, 10000)
	investorA := h.createUser(t, "investor-a", models.UserRoleInvestor, 10000)
	investorB := h.createUser(t, "investor-b", models.UserRoleInvestor, 10000)
	channel := h.createChannel(t, creator, 10000, 20)
	h.addTeamMember(t, channel, member, 20)

	// Equities: 2% for A, 6% for B
	_, err := h.ledger.Invest(
		channel.ID,
		investorA.ID,
		decimal.NewFromInt(1000),
	)
	require.NoError(t, err)
	_, err = h.ledger.Invest(
		channel.ID,
		investorB.ID,
		decimal.NewFromInt(3000),
	)
	require.NoError(t, err)

	distribution, err := h.ledger.DistributeProfit(
		channel.ID,
		creator.ID,
		decimal.NewFromInt(10000),
	)
	require.NoError(t, err)

	// Team 2000 off the top, then 8000 split 2:6 between the
	// investors, leaving nothing for the creator
	require.Len(t, distribution.Lines, 3)
	assert.Equal(t, models.DistributionKindTeam, distribution.Lines[0].Kind)
	decEq(t, 2000, distribution.Lines[0].Amount)
	assert.Equal(
		t,
		models.DistributionKindInvestor,
		distribution.Lines[1].Kind,
	)
	assert.Equal(t, investorA.ID, distribution.Lines[1].UserID)
	decEq(t, 2000, distribution.Lines[1].Amount)
	assert.Equal(t, investorB.ID, distribution.Lines[2].UserID)
	decEq(t, 6000, distribution.Lines[2].Amount)

	// Investor line amounts sum to the post-team pool
	investorTotal := distribution.Lines[1].Amount.
		Add(distribution.Lines[2].Amount)
	decEq(t, 8000, investorTotal)

	// Balances: each investor paid in earlier, then got credited
	decEq(t, 11000, h.balance(t, investorA.ID))
	decEq(t, 13000, h.balance(t, investorB.ID))
	decEq(t, 12000, h.balance(t, member.ID))
	decEq(t, 10000, h.balance(t, creator.ID))
}

// Team splits summing past 100% drive the remainder negative. The
// shortfall flows into the investor math unclamped and the creator line
// is omitted. This pins down observed behavior rather than a desirable
// outcome.
func TestDistributeNegativeRemainder(t *testing.T) {
	h := newTestHarness(t)
	creator := h.createUser(t, "creator", models.UserRoleCreator, 10000)
	memberA := h.createUser(t, "member-a", models.UserRoleInvestor, 10000)
	memberB := h.createUser(t, "member-b", models.UserRoleInvestor, 10000)
	investor := h.createUser(t, "investor", models.UserRoleInvestor, 10000)
	channel := h.createChannel(t, creator, 10000, 20)
	h.addTeamMember(t, channel, memberA, 60)
	h.addTeamMember(t, channel, memberB, 60)

	_, err := h.ledger.Invest(
		channel.ID,
		investor.ID,
		decimal.NewFromInt(1000),
	)
	require.NoError(t, err)

	distribution, err := h.ledger.DistributeProfit(
		channel.ID,
		creator.ID,
		decimal.NewFromInt(10000),
	)
	require.NoError(t, err)

	// 6000 + 6000 to the team leaves -2000, which lands entirely on
	// the sole investor; no creator line is produced
	require.Len(t, distribution.Lines, 3)
	decEq(t, 6000, distribution.Lines[0].Amount)
	decEq(t, 6000, distribution.Lines[1].Amount)
	assert.Equal(
		t,
		models.DistributionKindInvestor,
		distribution.Lines[2].Kind,
	)
	decEq(t, -2000, distribution.Lines[2].Amount)

	// The investor paid 1000 in, then was debited another 2000
	decEq(t, 7000, h.balance(t, investor.ID))
	decEq(t, 10000, h.balance(t, creator.ID))
}

// Reading a distribution back never mutates balances
func TestDistributionReadIsIdempotent(t *testing.T) {
	h := newTestHarness(t)
	creator := h.createUser(t, "creator", models.UserRoleCreator, 10000)
	channel := h.createChannel(t, creator, 10000, 20)

	_, err := h.ledger.DistributeProfit(
		channel.ID,
		creator.ID,
		decimal.NewFromInt(1000),
	)
	require.NoError(t, err)
	before := h.balance(t, creator.ID)

	for range 3 {
		distributions, err := h.db.GetDistributionsByChannel(
			channel.ID,
			nil,
		)
		require.NoError(t, err)
		require.Len(t, distributions, 1)
	}
	assert.True(t, before.Equal(h.balance(t, creator.ID)))
}
