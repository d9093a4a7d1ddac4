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

package database

import (
	"encoding/json"
	"fmt"

	"github.com/fanstake/fanstake/database/models"
)

const (
	journalPrefixInvestment   = "invest:"
	journalPrefixDistribution = "dist:"
)

func journalInvestmentKey(id string) []byte {
	return fmt.Appendf(nil, "%s%s", journalPrefixInvestment, id)
}

func journalDistributionKey(id string) []byte {
	return fmt.Appendf(nil, "%s%s", journalPrefixDistribution, id)
}

// JournalInvestment appends an investment document to the audit journal
func (d *Database) JournalInvestment(
	investment *models.Investment,
	txn *Txn,
) error {
	doc, err := json.Marshal(investment)
	if err != nil {
		return err
	}
	if txn == nil {
		txn = d.Transaction(true)
		defer txn.Release()
		if err := d.journal.Append(txn.Journal(), journalInvestmentKey(investment.ID), doc); err != nil {
			return err
		}
		return txn.Commit()
	}
	return d.journal.Append(
		txn.Journal(),
		journalInvestmentKey(investment.ID),
		doc,
	)
}

// JournalDistribution appends a distribution document to the audit journal
func (d *Database) JournalDistribution(
	distribution *models.Distribution,
	txn *Txn,
) error {
	doc, err := json.Marshal(distribution)
	if err != nil {
		return err
	}
	if txn == nil {
		txn = d.Transaction(true)
		defer txn.Release()
		if err := d.journal.Append(txn.Journal(), journalDistributionKey(distribution.ID), doc); err != nil {
			return err
		}
		return txn.Commit()
	}
	return d.journal.Append(
		txn.Journal(),
		journalDistributionKey(distribution.ID),
		doc,
	)
}

// GetJournalInvestment reads an investment document back from the journal
func (d *Database) GetJournalInvestment(
	investmentId string,
	txn *Txn,
) (*models.Investment, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	doc, err := d.journal.Get(
		txn.Journal(),
		journalInvestmentKey(investmentId),
	)
	if err != nil {
		return nil, err
	}
	var investment models.Investment
	if err := json.Unmarshal(doc, &investment); err != nil {
		return nil, err
	}
	return &investment, nil
}

// GetJournalDistribution reads a distribution document back from the journal
func (d *Database) GetJournalDistribution(
	distributionId string,
	txn *Txn,
) (*models.Distribution, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	doc, err := d.journal.Get(
		txn.Journal(),
		journalDistributionKey(distributionId),
	)
	if err != nil {
		return nil, err
	}
	var distribution models.Distribution
	if err := json.Unmarshal(doc, &distribution); err != nil {
		return nil, err
	}
	return &distribution, nil
}

// JournalInvestmentIds returns the IDs of all journaled investments in
// key order
func (d *Database) JournalInvestmentIds(txn *Txn) ([]string, error) {
	return d.journalIds(journalPrefixInvestment, txn)
}

// JournalDistributionIds returns the IDs of all journaled distributions
// in key order
func (d *Database) JournalDistributionIds(txn *Txn) ([]string, error) {
	return d.journalIds(journalPrefixDistribution, txn)
}

func (d *Database) journalIds(prefix string, txn *Txn) ([]string, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	iter := d.journal.NewIterator(txn.Journal(), []byte(prefix))
	defer iter.Close()
	var ids []string
	for iter.Rewind(); iter.Valid(); iter.Next() {
		key := iter.Item().Key()
		ids = append(ids, string(key[len(prefix):]))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
