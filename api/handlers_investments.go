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

	"github.com/fanstake/fanstake/database/models"
)

// handleCreateInvestment handles POST /api/investments
func (a *Api) handleCreateInvestment(
	w http.ResponseWriter,
	r *http.Request,
	user *models.User,
) {
	if user.Role != models.UserRoleInvestor {
		writeError(
			w,
			http.StatusForbidden,
			"Forbidden",
			"only investors can invest",
		)
		return
	}
	var req CreateInvestmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	investment, err := a.ledger.Invest(req.ChannelID, user.ID, req.Amount)
	if err != nil {
		a.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newInvestmentResponse(investment))
}

// handleMyInvestments handles GET /api/investments/my
func (a *Api) handleMyInvestments(
	w http.ResponseWriter,
	_ *http.Request,
	user *models.User,
) {
	investments, err := a.db.GetInvestmentsByInvestor(user.ID, nil)
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
