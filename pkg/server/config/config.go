/* Copyright 2025 Gymsync Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads the dev server configuration from the environment
package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config holds the dev server configuration. Values come from environment
// variables prefixed with GYMSYNC_SERVER, optionally loaded from a .env file.
type Config struct {
	Port    int    `envconfig:"PORT" default:"3001"`
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:3001/api"`
}

// Load reads the configuration from the given .env file and the environment.
// A missing .env file is not an error.
func Load(envPath string, logger *zap.Logger) (Config, error) {
	if err := godotenv.Load(envPath); err != nil {
		logger.Info("no .env file loaded, using environment variables", zap.Error(err))
	}

	var cfg Config
	if err := envconfig.Process("gymsync_server", &cfg); err != nil {
		return cfg, errors.Wrap(err, "processing environment")
	}

	return cfg, nil
}
