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

package api

import (
	"time"

	"github.com/fanstake/fanstake/database/models"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the error body returned by all endpoints
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

type HealthResponse struct {
	IsHealthy bool `json:"is_healthy"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		Balance:   user.Balance,
		CreatedAt: user.CreatedAt,
	}
}

type CreateChannelRequest struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	GoalAmount       decimal.Decimal `json:"goal_amount"`
	EquityPercentage decimal.Decimal `json:"equity_percentage"`
	CoverImage       string          `json:"cover_image"`
}

type ChannelResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	CreatorID        string          `json:"creator_id"`
	CreatorName      string          `json:"creator_name"`
	GoalAmount       decimal.Decimal `json:"goal_amount"`
	TotalRaised      decimal.Decimal `json:"total_raised"`
	EquityPercentage decimal.Decimal `json:"equity_percentage"`
	CoverImage       string          `json:"cover_image"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

func newChannelResponse(channel *models.Channel) ChannelResponse {
	return ChannelResponse{
		ID:               channel.ID,
		Name:             channel.Name,
		Description:      channel.Description,
		Category:         channel.Category,
		CreatorID:        channel.CreatorID,
		CreatorName:      channel.CreatorName,
		GoalAmount:       channel.GoalAmount,
		TotalRaised:      channel.TotalRaised,
		EquityPercentage: channel.EquityPercentage,
		CoverImage:       channel.CoverImage,
		Status:           channel.Status,
		CreatedAt:        channel.CreatedAt,
	}
}

type AddTeamMemberRequest struct {
	Email                 string          `json:"email"`
	Role                  string          `json:"role"`
	ProfitSplitPercentage decimal.Decimal `json:"profit_split_percentage"`
}

type TeamMemberResponse struct {
	ID                    string          `json:"id"`
	ChannelID             string          `json:"channel_id"`
	UserID                string          `json:"user_id"`
	UserName              string          `json:"user_name"`
	UserEmail             string          `json:"user_email"`
	Role                  string          `json:"role"`
	ProfitSplitPercentage decimal.Decimal `json:"profit_split_percentage"`
	JoinedAt              time.Time       `json:"joined_at"`
}

func newTeamMemberResponse(member *models.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:                    member.ID,
		ChannelID:             member.ChannelID,
		UserID:                member.UserID,
		UserName:              member.UserName,
		UserEmail:             member.UserEmail,
		Role:                  member.Role,
		ProfitSplitPercentage: member.ProfitSplitPercentage,
		JoinedAt:              member.JoinedAt,
	}
}

type CreateInvestmentRequest struct {
	ChannelID string          `json:"channel_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type InvestmentResponse struct {
	ID               string          `json:"id"`
	ChannelID        string          `json:"channel_id"`
	ChannelName      string          `json:"channel_name"`
	InvestorID       string          `json:"investor_id"`
	InvestorName     string          `json:"investor_name"`
	Amount           decimal.Decimal `json:"amount"`
	EquityPercentage decimal.Decimal `json:"equity_percentage"`
	CreatedAt        time.Time       `json:"created_at"`
}

func newInvestmentResponse(investment *models.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:               investment.ID,
		ChannelID:        investment.ChannelID,
		ChannelName:      investment.ChannelName,
		InvestorID:       investment.InvestorID,
		InvestorName:     investment.InvestorName,
		Amount:           investment.Amount,
		EquityPercentage: investment.EquityPercentage,
		CreatedAt:        investment.CreatedAt,
	}
}

type DistributeRequest struct {
	ChannelID   string          `json:"channel_id"`
	TotalProfit decimal.Decimal `json:"total_profit"`
}

type DistributionLineResponse struct {
	UserID     string          `json:"user_id"`
	UserName   string          `json:"user_name"`
	Amount     decimal.Decimal `json:"amount"`
	Kind       string          `json:"kind"`
	Percentage decimal.Decimal `json:"percentage"`
}

type DistributionResponse struct {
	ID          string                     `json:"id"`
	ChannelID   string                     `json:"channel_id"`
	ChannelName string                     `json:"channel_name"`
	TotalProfit decimal.Decimal            `json:"total_profit"`
	Lines       []DistributionLineResponse `json:"distributions"`
	CreatedAt   time.Time                  `json:"created_at"`
}

func newDistributionResponse(
	distribution *models.Distribution,
) DistributionResponse {
	lines := make([]DistributionLineResponse, 0, len(distribution.Lines))
	for _, line := range distribution.Lines {
		lines = append(lines, DistributionLineResponse{
			UserID:     line.UserID,
			UserName:   line.UserName,
			Amount:     line.Amount,
			Kind:       line.Kind,
			Percentage: line.Percentage,
		})
	}
	return DistributionResponse{
		ID:          distribution.ID,
		ChannelID:   distribution.ChannelID,
		ChannelName: distribution.ChannelName,
		TotalProfit: distribution.TotalProfit,
		Lines:       lines,
		CreatedAt:   distribution.CreatedAt,
	}
}
