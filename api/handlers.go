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
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fanstake/fanstake/ledger"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,errchkjson
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response
func writeError(
	w http.ResponseWriter,
	status int,
	errStr string,
	message string,
) {
	writeJSON(w, status, ErrorResponse{
		StatusCode: status,
		Error:      errStr,
		Message:    message,
	})
}

// decodeJSON decodes a request body, writing a 400 response on failure
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(
			w,
			http.StatusBadRequest,
			"Bad Request",
			"invalid request body",
		)
		return false
	}
	return true
}

// writeLedgerError maps ledger errors onto HTTP status codes. Anything
// unrecognized is treated as a storage failure.
func (a *Api) writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrChannelNotFound),
		errors.Is(err, ledger.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ledger.ErrNotChannelOwner):
		writeError(w, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, ledger.ErrBelowMinimumInvestment),
		errors.Is(err, ledger.ErrInsufficientBalance),
		errors.Is(err, ledger.ErrInvalidProfitAmount):
		writeError(w, http.StatusBadRequest, "Bad Request", err.Error())
	default:
		a.logger.Error("storage failure", "error", err)
		writeError(
			w,
			http.StatusInternalServerError,
			"Internal Server Error",
			"storage failure",
		)
	}
}

// handleHealth handles GET /health
func (a *Api) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		IsHealthy: true,
	})
}
