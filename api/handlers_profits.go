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

// handleDistributeProfit handles POST /api/profits/distribute
func (a *Api) handleDistributeProfit(
	w http.ResponseWriter,
	r *http.Request,
	user *models.User,
) {
	var req DistributeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	distribution, err := a.ledger.DistributeProfit(
		req.ChannelID,
		user.ID,
		req.TotalProfit,
	)
	if err != nil {
		a.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newDistributionResponse(distribution))
}

// handleDistributionHistory handles GET /api/profits/{channelId}
func (a *Api) handleDistributionHistory(
	w http.ResponseWriter,
	r *http.Request,
) {
	distributions, err := a.db.GetDistributionsByChannel(
		r.PathValue("channelId"),
		nil,
	)
	if err != nil {
		a.logger.Error("failed to list distributions", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"storage failure",
		)
		return
	}
	resp := make([]DistributionResponse, 0, len(distributions))
	for i := range distributions {
		resp = append(resp, newDistributionResponse(&distributions[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}
