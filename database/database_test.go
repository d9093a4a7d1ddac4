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

package database_test

import (
	"testing"
	"time"

	"github.com/fanstake/fanstake/database"
	"github.com/fanstake/fanstake/database/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.New(&database.Config{
		DataDir: "",
	})
	require.NoError(t, err, "failed to create database")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close database: %s", err)
		}
	})
	return db
}

func TestUserRoundTrip(t *testing.T) {
	db := newTestDatabase(t)
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        "alice@example.com",
		PasswordHash: "not-a-real-hash",
		Name:         "Alice",
		Role:         models.UserRoleCreator,
		Balance:      decimal.NewFromInt(10000),
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, db.CreateUser(user, nil))

	fetched, err := db.GetUser(user.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, user.Email, fetched.Email)
	assert.True(t, fetched.Balance.Equal(decimal.NewFromInt(10000)))

	byEmail, err := db.GetUserByEmail("alice@example.com", nil)
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	missing, err := db.GetUser(uuid.NewString(), nil)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserDuplicateEmail(t *testing.T) {
	db := newTestDatabase(t)
	first := &models.User{
		ID:      uuid.NewString(),
		Email:   "dupe@example.com",
		Name:    "First",
		Role:    models.UserRoleInvestor,
		Balance: decimal.NewFromInt(10000),
	}
	require.NoError(t, db.CreateUser(first, nil))
	second := &models.User{
		ID:      uuid.NewString(),
		Email:   "dupe@example.com",
		Name:    "Second",
		Role:    models.UserRoleInvestor,
		Balance: decimal.NewFromInt(10000),
	}
	assert.Error(t, db.CreateUser(second, nil))
}

func TestAddUserBalance(t *testing.T) {
	db := newTestDatabase(t)
	user := &models.User{
		ID:      uuid.NewString(),
		Email:   "bob@example.com",
		Name:    "Bob",
		Role:    models.UserRoleInvestor,
		Balance: decimal.NewFromInt(10000),
	}
	require.NoError(t, db.CreateUser(user, nil))

	require.NoError(
		t,
		db.AddUserBalance(user.ID, decimal.NewFromInt(-2500), nil),
	)
	fetched, err := db.GetUser(user.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.True(
		t,
		fetched.Balance.Equal(decimal.NewFromInt(7500)),
		"expected balance 7500, got %s",
		fetched.Balance,
	)

	// Unknown user is an error rather than a silent no-op
	err = db.AddUserBalance(uuid.NewString(), decimal.NewFromInt(1), nil)
	assert.Error(t, err)
}

func TestTxnRollback(t *testing.T) {
	db := newTestDatabase(t)
	user := &models.User{
		ID:      uuid.NewString(),
		Email:   "carol@example.com",
		Name:    "Carol",
		Role:    models.UserRoleInvestor,
		Balance: decimal.NewFromInt(10000),
	}
	require.NoError(t, db.CreateUser(user, nil))

	txn := db.Transaction(true)
	require.NoError(
		t,
		db.AddUserBalance(user.ID, decimal.NewFromInt(-9999), txn),
	)
	require.NoError(t, txn.Rollback())

	fetched, err := db.GetUser(user.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.True(t, fetched.Balance.Equal(decimal.NewFromInt(10000)))
}

func TestChannelRoundTrip(t *testing.T) {
	db := newTestDatabase(t)
	creatorId := uuid.NewString()
	channel := &models.Channel{
		ID:               uuid.NewString(),
		Name:             "Test Channel",
		Description:      "A channel for testing",
		Category:         "gaming",
		CreatorID:        creatorId,
		CreatorName:      "Creator",
		GoalAmount:       decimal.NewFromInt(10000),
		TotalRaised:      decimal.Zero,
		EquityPercentage: decimal.NewFromInt(20),
		Status:           models.ChannelStatusActive,
	}
	require.NoError(t, db.CreateChannel(channel, nil))

	fetched, err := db.GetChannel(channel.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "Test Channel", fetched.Name)

	require.NoError(
		t,
		db.AddChannelRaised(channel.ID, decimal.NewFromInt(500), nil),
	)
	fetched, err = db.GetChannel(channel.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.True(t, fetched.TotalRaised.Equal(decimal.NewFromInt(500)))

	byCreator, err := db.GetChannelsByCreator(creatorId, nil)
	require.NoError(t, err)
	assert.Len(t, byCreator, 1)

	all, err := db.GetChannels(nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTeamMemberUniqueness(t *testing.T) {
	db := newTestDatabase(t)
	channelId := uuid.NewString()
	userId := uuid.NewString()
	member := &models.TeamMember{
		ID:                    uuid.NewString(),
		ChannelID:             channelId,
		UserID:                userId,
		UserName:              "Member",
		UserEmail:             "member@example.com",
		Role:                  "editor",
		ProfitSplitPercentage: decimal.NewFromInt(10),
		JoinedAt:              time.Now().UTC(),
	}
	require.NoError(t, db.CreateTeamMember(member, nil))

	dupe := &models.TeamMember{
		ID:                    uuid.NewString(),
		ChannelID:             channelId,
		UserID:                userId,
		UserName:              "Member",
		UserEmail:             "member@example.com",
		Role:                  "editor",
		ProfitSplitPercentage: decimal.NewFromInt(5),
	}
	assert.Error(t, db.CreateTeamMember(dupe, nil))

	fetched, err := db.GetTeamMember(channelId, userId, nil)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "editor", fetched.Role)
}

func TestInvestmentJournalRoundTrip(t *testing.T) {
	db := newTestDatabase(t)
	investment := &models.Investment{
		ID:               uuid.NewString(),
		ChannelID:        uuid.NewString(),
		ChannelName:      "Test Channel",
		InvestorID:       uuid.NewString(),
		InvestorName:     "Investor",
		Amount:           decimal.NewFromInt(500),
		EquityPercentage: decimal.NewFromInt(1),
		CreatedAt:        time.Now().UTC(),
	}

	txn := db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		if err := db.CreateInvestment(investment, txn); err != nil {
			return err
		}
		return db.JournalInvestment(investment, txn)
	})
	require.NoError(t, err)

	fromJournal, err := db.GetJournalInvestment(investment.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, investment.ID, fromJournal.ID)
	assert.True(t, fromJournal.Amount.Equal(investment.Amount))

	ids, err := db.JournalInvestmentIds(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{investment.ID}, ids)

	byChannel, err := db.GetInvestmentsByChannel(investment.ChannelID, nil)
	require.NoError(t, err)
	require.Len(t, byChannel, 1)
	assert.Equal(t, investment.ID, byChannel[0].ID)
}

func TestDistributionLineOrder(t *testing.T) {
	db := newTestDatabase(t)
	distribution := &models.Distribution{
		ID:          uuid.NewString(),
		ChannelID:   uuid.NewString(),
		ChannelName: "Test Channel",
		TotalProfit: decimal.NewFromInt(1000),
		CreatedAt:   time.Now().UTC(),
		Lines: []models.DistributionLine{
			{
				UserID:     uuid.NewString(),
				UserName:   "Team Member",
				Amount:     decimal.NewFromInt(100),
				Kind:       models.DistributionKindTeam,
				Percentage: decimal.NewFromInt(10),
			},
			{
				UserID:     uuid.NewString(),
				UserName:   "Investor",
				Amount:     decimal.NewFromInt(200),
				Kind:       models.DistributionKindInvestor,
				Percentage: decimal.NewFromInt(20),
			},
			{
				UserID:     uuid.NewString(),
				UserName:   "Creator",
				Amount:     decimal.NewFromInt(700),
				Kind:       models.DistributionKindCreator,
				Percentage: decimal.Zero,
			},
		},
	}
	require.NoError(t, db.CreateDistribution(distribution, nil))

	fetched, err := db.GetDistributionsByChannel(distribution.ChannelID, nil)
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	require.Len(t, fetched[0].Lines, 3)
	assert.Equal(t, models.DistributionKindTeam, fetched[0].Lines[0].Kind)
	assert.Equal(t, models.DistributionKindInvestor, fetched[0].Lines[1].Kind)
	assert.Equal(t, models.DistributionKindCreator, fetched[0].Lines[2].Kind)
}
