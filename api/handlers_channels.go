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
	"net/http"
	"time"

	"github.com/fanstake/fanstake/database/models"
	"github.com/fanstake/fanstake/event"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// handleCreateChannel handles POST /api/channels
func (a *Api) handleCreateChannel(
	w http.ResponseWriter,
	r *http.Request,
	user *models.User,
) {
	if user.Role != models.UserRoleCreator {
		writeError(
			w,
			http.StatusForbidden,
			"Forbidden",
			"only creators can create channels",
		)
		return
	}
	var req CreateChannelRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"name is required",
		)
		return
	}
	if !req.GoalAmount.IsPositive() {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"goal amount must be positive",
		)
		return
	}
	if req.EquityPercentage.IsNegative() ||
		req.EquityPercentage.GreaterThan(decimal.NewFromInt(100)) {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"equity percentage must be between 0 and 100",
		)
		return
	}
	channel := &models.Channel{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		CreatorID:        user.ID,
		CreatorName:      user.Name,
		GoalAmount:       req.GoalAmount,
		TotalRaised:      decimal.Zero,
		EquityPercentage: req.EquityPercentage,
		CoverImage:       req.CoverImage,
		Status:           models.ChannelStatusActive,
		CreatedAt:        time.Now().UTC(),
	}
	if err := a.db.CreateChannel(channel, nil); err != nil {
		a.logger.Error("failed to create channel", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"storage failure",
		)
		return
	}
	if a.config.EventBus != nil {
		a.config.EventBus.Publish(
			event.ChannelCreatedEventType,
			event.NewEvent(
				event.ChannelCreatedEventType,
				event.ChannelCreatedEvent{
					ChannelId: channel.ID,
					CreatorId: channel.CreatorID,
					Name:      channel.Name,
				},
			),
		)
	}
	a.logger.Info(
		"channel created",
		"channel_id", channel.ID,
		"creator_id", channel.CreatorID,
	)
	writeJSON(w, http.StatusOK, newChannelResponse(channel))
}

// handleListChannels handles GET /api/channels
func (a *Api) handleListChannels(w http.ResponseWriter, _ *http.Request) {
	channels, err := a.db.GetChannels(nil)
	if err != nil {
		a.logger.Error("failed to list channels", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"storage failure",
		)
		return
	}
	resp := make([]ChannelResponse, 0, len(channels))
	for i := range channels {
		resp = append(resp, newChannelResponse(&channels[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleGetChannel handles GET /api/channels/{id}
func (a *Api) handleGetChannel(w http.ResponseWriter, r *http.Request) {
	channel, err := a.db.GetChannel(r.PathValue("id"), nil)
	if err != nil {
		a.logger.Error("failed to get channel", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"storage failure",
		)
		return
	}
	if channel == nil {
		writeError(
			w,
			http.StatusNotFound,
			"Not Found",
			"channel not found",
		)
		return
	}
	writeJSON(w, http.StatusOK, newChannelResponse(channel))
}

// handleMyChannels handles GET /api/channels/my/created
func (a *Api) handleMyChannels(
	w http.ResponseWriter,
	_ *http.Request,
	user *models.User,
) {
	channels, err := a.db.GetChannelsByCreator(user.ID, nil)
	if err != nil {
		a.logger.Error("failed to list channels", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"storage failure",
		)
		return
	}
	resp := make([]ChannelResponse, 0, len(channels))
	for i := range channels {
		resp = append(resp, newChannelResponse(&channels[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleAddTeamMember handles POST /api/channels/{id}/team
func (a *Api) handleAddTeamMember(
	w http.ResponseWriter,
	r *http.Request,
	user *models.User,
) {
	channel, err := a.db.GetChannel(r.PathValue("id"), nil)
	if err != nil {
		a.logger.Error("failed to get channel", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"storage failure",
		)
		return
	}
	if channel == nil {
		writeError(
			w,
			http.StatusNotFound,
			"Not Found",
			"channel not found",
		)
		return
	}
	if channel.CreatorID != user.ID {
		writeError(
			w,
			http.StatusForbidden,
			"Forbidden",
			"only the channel owner can add team members",
		)
		return
	}
	var req AddTeamMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	member, err := a.db.GetUserByEmail(req.Email, nil)
	if err != nil {
		a.logger.Error("failed to look up user", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"storage failure",
		)
		return
	}
	if member == nil {
		writeError(
			w,
			http.StatusNotFound,
			"Not Found",
			"user not found",
		)
		return
	}
	existing, err := a.db.GetTeamMember(channel.ID, member.ID, nil)
	if err != nil {
		a.logger.Error("failed to check team member", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"storage failure",
		)
		return
	}
	if existing != nil {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"user is already a team member",
		)
		return
	}
	teamMember := &models.TeamMember{
		ID:                    uuid.NewString(),
		ChannelID:             channel.ID,
		UserID:                member.ID,
		UserName:              member.Name,
		UserEmail:             member.Email,
		Role:                  req.Role,
		ProfitSplitPercentage: req.ProfitSplitPercentage,
		JoinedAt:              time.Now().UTC(),
	}
	if err := a.db.CreateTeamMember(teamMember, nil); err != nil {
		a.logger.Error("failed to create team member", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"storage failure",
		)
		return
	}
	if a.config.EventBus != nil {
		a.config.EventBus.Publish(
			event.TeamMemberAddedEventType,
			event.NewEvent(
				event.TeamMemberAddedEventType,
				event.TeamMemberAddedEvent{
					ChannelId:             channel.ID,
					UserId:                member.ID,
					ProfitSplitPercentage: req.ProfitSplitPercentage,
				},
			),
		)
	}
	writeJSON(w, http.StatusOK, newTeamMemberResponse(teamMember))
}

// handleListTeamMembers handles GET /api/channels/{id}/team
func (a *Api) handleListTeamMembers(
	w http.ResponseWriter,
	r *http.Request,
) {
	members, err := a.db.GetTeamMembers(r.PathValue("id"), nil)
	if err != nil {
		a.logger.Error("failed to list team members", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"storage failure",
		)
		return
	}
	resp := make([]TeamMemberResponse, 0, len(members))
	for i := range members {
		resp = append(resp, newTeamMemberResponse(&members[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleChannelInvestors handles GET /api/channels/{id}/investors
func (a *Api) handleChannelInvestors(
	w http.ResponseWriter,
	r *http.Request,
) {
	investments, err := a.db.GetInvestmentsByChannel(r.PathValue("id"), nil)
	if err != nil {
		a.logger.Error("failed to list investments", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"storage failure",
		)
		return
	}
	resp := make([]InvestmentResponse, 0, len(investments))
	for i := range investments {
		resp = append(resp, newInvestmentResponse(&investments[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}
