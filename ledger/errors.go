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

import "errors"

// ErrChannelNotFound is returned when an operation references a channel
// that does not exist
var ErrChannelNotFound = errors.New("channel not found")

// ErrUserNotFound is returned when an operation references a user that
// does not exist
var ErrUserNotFound = errors.New("user not found")

// ErrNotChannelOwner is returned when a channel-owner operation is
// attempted by someone other than the channel's creator
var ErrNotChannelOwner = errors.New("not the channel owner")

// ErrBelowMinimumInvestment is returned when an investment amount is
// below the minimum
var ErrBelowMinimumInvestment = errors.New("investment below minimum amount")

// ErrInsufficientBalance is returned when an investor's balance cannot
// cover the investment amount
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrInvalidProfitAmount is returned when a distribution is requested
// with a zero or negative profit amount
var ErrInvalidProfitAmount = errors.New("profit amount must be positive")
