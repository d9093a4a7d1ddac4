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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type ctxKey string

const configContextKey ctxKey = "fanstake.config"

const DefaultShutdownTimeout = "30s"

func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configContextKey, cfg)
}

func FromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok {
		return nil
	}
	return cfg
}

type Config struct {
	BindAddr        string `yaml:"bindAddr"                            split_words:"true"`
	DatabasePath    string `yaml:"databasePath"                        split_words:"true"`
	JwtSecret       string `yaml:"jwtSecret"       envconfig:"JWT_SECRET"`
	ShutdownTimeout string `yaml:"shutdownTimeout"                     split_words:"true"`
	ApiPort         uint   `yaml:"apiPort"         envconfig:"port"`
	MetricsPort     uint   `yaml:"metricsPort"                         split_words:"true"`
}

var globalConfig = &Config{
	BindAddr:        "0.0.0.0",
	DatabasePath:    ".fanstake",
	JwtSecret:       "",
	ShutdownTimeout: DefaultShutdownTimeout,
	ApiPort:         8000,
	MetricsPort:     12798,
}

// LoadConfig loads the config file (if available) and applies any
// environment variable overrides. When no file is given, well-known
// user and system paths are tried before falling back to defaults.
func LoadConfig(configFile string) (*Config, error) {
	if configFile == "" {
		// Check for config file in this path: ~/.fanstake/fanstake.yaml
		if homeDir, err := os.UserHomeDir(); err == nil {
			userPath := filepath.Join(homeDir, ".fanstake", "fanstake.yaml")
			if _, err := os.Stat(userPath); err == nil {
				configFile = userPath
			}
		}
		if configFile == "" {
			systemPath := "/etc/fanstake/fanstake.yaml"
			if _, err := os.Stat(systemPath); err == nil {
				configFile = systemPath
			}
		}
	}
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, globalConfig); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	if err := envconfig.Process("fanstake", globalConfig); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	return globalConfig, nil
}

// GetConfig returns the global config instance
func GetConfig() *Config {
	return globalConfig
}
