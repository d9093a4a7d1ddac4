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
	"strings"

	"github.com/fanstake/fanstake/database/models"
)

type authedHandler func(http.ResponseWriter, *http.Request, *models.User)

// requireUser wraps a handler with bearer token verification. The
// resolved user is passed to the handler; anything short of a valid
// token for an existing user yields a 401.
func (a *Api) requireUser(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			writeError(
				w,
				http.StatusUnauthorized,
				"Unauthorized",
				"missing bearer token",
			)
			return
		}
		userId, err := a.auth.VerifyToken(token)
		if err != nil {
			writeError(
				w,
				http.StatusUnauthorized,
				"Unauthorized",
				"invalid or expired token",
			)
			return
		}
		user, err := a.db.GetUser(userId, nil)
		if err != nil {
			a.logger.Error("failed to load user", "error", err)
			writeError(
				w,
				http.StatusInternalServerError,
				"Internal Server Error",
				"storage failure",
			)
			return
		}
		if user == nil {
			writeError(
				w,
				http.StatusUnauthorized,
				"Unauthorized",
				"unknown user",
			)
			return
		}
		next(w, r, user)
	}
}
