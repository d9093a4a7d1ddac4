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

package metadata

import (
	"fmt"
	"log/slog"

	"github.com/fanstake/fanstake/database/models"
	"github.com/fanstake/fanstake/database/plugin/metadata/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MetadataStore is the relational store behind the ledger. All accessors
// accept an optional *gorm.DB transaction handle; when nil the base
// connection is used.
type MetadataStore interface {
	// Database
	Close() error
	DB() *gorm.DB
	Transaction() *gorm.DB

	// Users
	CreateUser(*models.User, *gorm.DB) error
	GetUser(string, *gorm.DB) (*models.User, error)
	GetUserByEmail(string, *gorm.DB) (*models.User, error)
	AddUserBalance(string, decimal.Decimal, *gorm.DB) error

	// Channels
	CreateChannel(*models.Channel, *gorm.DB) error
	GetChannel(string, *gorm.DB) (*models.Channel, error)
	GetChannels(*gorm.DB) ([]models.Channel, error)
	GetChannelsByCreator(string, *gorm.DB) ([]models.Channel, error)
	AddChannelRaised(string, decimal.Decimal, *gorm.DB) error

	// Team members
	CreateTeamMember(*models.TeamMember, *gorm.DB) error
	GetTeamMember(string, string, *gorm.DB) (*models.TeamMember, error)
	GetTeamMembers(string, *gorm.DB) ([]models.TeamMember, error)

	// Investments
	CreateInvestment(*models.Investment, *gorm.DB) error
	GetInvestmentsByChannel(string, *gorm.DB) ([]models.Investment, error)
	GetInvestmentsByInvestor(string, *gorm.DB) ([]models.Investment, error)

	// Distributions
	CreateDistribution(*models.Distribution, *gorm.DB) error
	GetDistributionsByChannel(string, *gorm.DB) ([]models.Distribution, error)
}

// New returns the metadata store selected by name
func New(
	pluginName string,
	dataDir string,
	logger *slog.Logger,
	promRegistry prometheus.Registerer,
) (MetadataStore, error) {
	switch pluginName {
	case "sqlite":
		return sqlite.New(dataDir, logger, promRegistry)
	default:
		return nil, fmt.Errorf("unknown metadata plugin: %s", pluginName)
	}
}
