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
	"github.com/fanstake/fanstake/database/models"
)

// CreateTeamMember stores a new team membership
func (d *Database) CreateTeamMember(
	member *models.TeamMember,
	txn *Txn,
) error {
	if txn == nil {
		txn = d.Transaction(true)
		defer txn.Release()
		if err := d.metadata.CreateTeamMember(member, txn.Metadata()); err != nil {
			return err
		}
		return txn.Commit()
	}
	return d.metadata.CreateTeamMember(member, txn.Metadata())
}

// GetTeamMember returns a channel membership for a user, or nil when the
// user is not on the channel's team
func (d *Database) GetTeamMember(
	channelId string,
	userId string,
	txn *Txn,
) (*models.TeamMember, error) {
	if txn == nil {
		return d.metadata.GetTeamMember(channelId, userId, nil)
	}
	return d.metadata.GetTeamMember(channelId, userId, txn.Metadata())
}

// GetTeamMembers returns a channel's team in join order
func (d *Database) GetTeamMembers(
	channelId string,
	txn *Txn,
) ([]models.TeamMember, error) {
	if txn == nil {
		return d.metadata.GetTeamMembers(channelId, nil)
	}
	return d.metadata.GetTeamMembers(channelId, txn.Metadata())
}
