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

package sqlite

import (
	"errors"

	"github.com/fanstake/fanstake/database/models"
	"gorm.io/gorm"
)

// CreateTeamMember inserts a new team member record
func (d *MetadataStoreSqlite) CreateTeamMember(
	member *models.TeamMember,
	txn *gorm.DB,
) error {
	return d.handle(txn).Create(member).Error
}

// GetTeamMember returns the membership for the given channel and user,
// or nil if absent
func (d *MetadataStoreSqlite) GetTeamMember(
	channelId string,
	userId string,
	txn *gorm.DB,
) (*models.TeamMember, error) {
	var tmpMember models.TeamMember
	result := d.handle(txn).First(
		&tmpMember,
		"channel_id = ? AND user_id = ?",
		channelId,
		userId,
	)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tmpMember, nil
}

// GetTeamMembers returns a channel's team members in the order they were
// added. The order matters: it determines profit split enumeration.
func (d *MetadataStoreSqlite) GetTeamMembers(
	channelId string,
	txn *gorm.DB,
) ([]models.TeamMember, error) {
	var members []models.TeamMember
	result := d.handle(txn).
		Where("channel_id = ?", channelId).
		Order("joined_at ASC, id ASC").
		Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}
