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

package journal

import (
	"fmt"
	"log/slog"

	"github.com/fanstake/fanstake/database/plugin/journal/badger"
	"github.com/fanstake/fanstake/database/types"
	"github.com/prometheus/client_golang/prometheus"
)

// JournalStore is the append-only audit log behind the ledger. Every
// accepted investment and distribution is journaled as an immutable
// document; reads never mutate ledger state.
type JournalStore interface {
	Close() error
	NewTransaction(readWrite bool) types.Txn
	Append(txn types.Txn, key, doc []byte) error
	Get(txn types.Txn, key []byte) ([]byte, error)
	NewIterator(txn types.Txn, prefix []byte) types.JournalIterator
}

// New returns the journal store selected by name
func New(
	pluginName string,
	dataDir string,
	logger *slog.Logger,
	promRegistry prometheus.Registerer,
) (JournalStore, error) {
	switch pluginName {
	case "badger":
		return badger.New(
			badger.WithDataDir(dataDir),
			badger.WithLogger(logger),
			badger.WithPromRegistry(promRegistry),
		)
	default:
		return nil, fmt.Errorf("unknown journal plugin: %s", pluginName)
	}
}
