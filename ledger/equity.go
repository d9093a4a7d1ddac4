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
	"github.com/shopspring/decimal"
)

// MinInvestment is the smallest amount a single investment may be for
var MinInvestment = decimal.NewFromInt(500)

// ComputeEquity returns the equity percentage granted for an investment
// of the given amount into a channel offering equityPercentage of itself
// for goalAmount. Equity scales linearly with the amount and is not
// capped at the channel's offered percentage, even when the channel is
// funded past its goal.
func ComputeEquity(
	goalAmount decimal.Decimal,
	equityPercentage decimal.Decimal,
	amount decimal.Decimal,
) decimal.Decimal {
	if goalAmount.IsZero() {
		return decimal.Zero
	}
	return equityPercentage.Mul(amount).Div(goalAmount)
}
