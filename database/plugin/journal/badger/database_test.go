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

package badger

import (
	"testing"

	"github.com/fanstake/fanstake/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *JournalStoreBadger {
	t.Helper()
	store, err := New(WithGc(false))
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %s", err)
		}
	})
	return store
}

func TestAppendGet(t *testing.T) {
	store := newTestStore(t)
	txn := store.NewTransaction(true)
	require.NoError(t, store.Append(txn, []byte("invest:1"), []byte("{}")))
	require.NoError(t, txn.Commit())

	readTxn := store.NewTransaction(false)
	defer func() { _ = readTxn.Rollback() }()
	doc, err := store.Get(readTxn, []byte("invest:1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), doc)

	_, err = store.Get(readTxn, []byte("invest:missing"))
	assert.ErrorIs(t, err, types.ErrJournalKeyNotFound)
}

func TestAppendIsWriteOnce(t *testing.T) {
	store := newTestStore(t)
	txn := store.NewTransaction(true)
	require.NoError(t, store.Append(txn, []byte("dist:1"), []byte("a")))
	require.NoError(t, txn.Commit())

	txn = store.NewTransaction(true)
	defer func() { _ = txn.Rollback() }()
	err := store.Append(txn, []byte("dist:1"), []byte("b"))
	assert.Error(t, err)
}

func TestIteratorPrefix(t *testing.T) {
	store := newTestStore(t)
	txn := store.NewTransaction(true)
	require.NoError(t, store.Append(txn, []byte("invest:a"), []byte("1")))
	require.NoError(t, store.Append(txn, []byte("invest:b"), []byte("2")))
	require.NoError(t, store.Append(txn, []byte("dist:c"), []byte("3")))
	require.NoError(t, txn.Commit())

	readTxn := store.NewTransaction(false)
	defer func() { _ = readTxn.Rollback() }()
	iter := store.NewIterator(readTxn, []byte("invest:"))
	defer iter.Close()
	var keys []string
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Item().Key()))
	}
	require.NoError(t, iter.Err())
	assert.Equal(t, []string{"invest:a", "invest:b"}, keys)
}

func TestTxnValidation(t *testing.T) {
	store := newTestStore(t)
	other := newTestStore(t)

	// Nil and foreign transactions are rejected
	err := store.Append(nil, []byte("k"), []byte("v"))
	assert.ErrorIs(t, err, types.ErrNilTxn)

	foreignTxn := other.NewTransaction(true)
	defer func() { _ = foreignTxn.Rollback() }()
	err = store.Append(foreignTxn, []byte("k"), []byte("v"))
	assert.Error(t, err)
}
