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

// Every new account starts with the same play-money balance
var startingBalance = decimal.NewFromInt(10000)

// handleRegister handles POST /api/auth/register
func (a *Api) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"email, password, and name are required",
		)
		return
	}
	if req.Role != models.UserRoleCreator &&
		req.Role != models.UserRoleInvestor {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"role must be creator or investor",
		)
		return
	}
	existing, err := a.db.GetUserByEmail(req.Email, nil)
	if err != nil {
		a.logger.Error("failed to check email", "error", err)
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
			"email already registered",
		)
		return
	}
	passwordHash, err := a.auth.HashPassword(req.Password)
	if err != nil {
		a.logger.Error("failed to hash password", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"failed to process credentials",
		)
		return
	}
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Role:         req.Role,
		Balance:      startingBalance,
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.db.CreateUser(user, nil); err != nil {
		a.logger.Error("failed to create user", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"storage failure",
		)
		return
	}
	token, err := a.auth.NewToken(user.ID)
	if err != nil {
		a.logger.Error("failed to issue token", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"failed to issue token",
		)
		return
	}
	if a.config.EventBus != nil {
		a.config.EventBus.Publish(
			event.UserRegisteredEventType,
			event.NewEvent(
				event.UserRegisteredEventType,
				event.UserRegisteredEvent{
					UserId: user.ID,
					Email:  user.Email,
					Role:   user.Role,
				},
			),
		)
	}
	a.logger.Info(
		"user registered",
		"user_id", user.ID,
		"role", user.Role,
	)
	writeJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        newUserResponse(user),
	})
}

// handleLogin handles POST /api/auth/login
func (a *Api) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := a.db.GetUserByEmail(req.Email, nil)
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
	// Same response whether the email or the password was wrong
	if user == nil ||
		a.auth.CheckPassword(user.PasswordHash, req.Password) != nil {
		writeError(
			w,
			http.StatusUnauthorized,
			"Unauthorized",
			"invalid email or password",
		)
		return
	}
	token, err := a.auth.NewToken(user.ID)
	if err != nil {
		a.logger.Error("failed to issue token", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"failed to issue token",
		)
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        newUserResponse(user),
	})
}

// handleMe handles GET /api/auth/me
func (a *Api) handleMe(
	w http.ResponseWriter,
	_ *http.Request,
	user *models.User,
) {
	writeJSON(w, http.StatusOK, newUserResponse(user))
}
