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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type ledgerMetrics struct {
	investmentsTotal   prometheus.Counter
	investedAmount     prometheus.Counter
	distributionsTotal prometheus.Counter
	distributedAmount  prometheus.Counter
}

func (m *ledgerMetrics) init(promRegistry prometheus.Registerer) {
	if promRegistry == nil {
		return
	}
	promFactory := promauto.With(promRegistry)
	m.investmentsTotal = promFactory.NewCounter(prometheus.CounterOpts{
		Name: "fanstake_ledger_investments_total",
		Help: "total number of accepted investments",
	})
	m.investedAmount = promFactory.NewCounter(prometheus.CounterOpts{
		Name: "fanstake_ledger_invested_amount_total",
		Help: "total amount invested across all channels",
	})
	m.distributionsTotal = promFactory.NewCounter(prometheus.CounterOpts{
		Name: "fanstake_ledger_distributions_total",
		Help: "total number of profit distributions",
	})
	m.distributedAmount = promFactory.NewCounter(prometheus.CounterOpts{
		Name: "fanstake_ledger_distributed_amount_total",
		Help: "total profit distributed across all channels",
	})
}
