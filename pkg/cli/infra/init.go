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

// Package infra provides operations and definitions for the
// local infrastructure for gymsync
package infra

import (
	"fmt"
	"path/filepath"

	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/cli/config"
	"github.com/gymsync/gymsync/pkg/cli/consts"
	"github.com/gymsync/gymsync/pkg/cli/context"
	"github.com/gymsync/gymsync/pkg/cli/database"
	"github.com/gymsync/gymsync/pkg/cli/log"
	"github.com/gymsync/gymsync/pkg/cli/utils"
	"github.com/gymsync/gymsync/pkg/clock"
	"github.com/gymsync/gymsync/pkg/dirs"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	// DefaultAPIEndpoint is the default member collection endpoint used when none is configured
	DefaultAPIEndpoint = "http://localhost:3001/api"
	// DefaultLedgerEndpoint is the default realtime revenue store endpoint
	DefaultLedgerEndpoint = "http://localhost:3001/api"
	// DefaultStorageEndpoint is the default object storage endpoint
	DefaultStorageEndpoint = "http://localhost:3001/api"
)

// RunEFunc is a function type of gymsync commands
type RunEFunc func(*cobra.Command, []string) error

func getDBPath(paths context.Paths, customPath string) string {
	if customPath != "" {
		return customPath
	}

	return fmt.Sprintf("%s/%s/%s", paths.Data, consts.GymsyncDirName, consts.GymsyncDBFileName)
}

// newBaseCtx creates a minimal context with paths and database connection.
// This base context is used for file and database initialization before
// being enriched with config values by setupCtx.
func newBaseCtx(versionTag, customDBPath string) (context.GymCtx, error) {
	paths := context.Paths{
		Home:   dirs.Home,
		Config: dirs.ConfigHome,
		Data:   dirs.DataHome,
		Cache:  dirs.CacheHome,
	}

	if err := context.InitGymsyncDirs(paths); err != nil {
		return context.GymCtx{}, errors.Wrap(err, "creating the gymsync dirs")
	}

	dbPath := getDBPath(paths, customDBPath)

	db, err := database.Open(dbPath)
	if err != nil {
		return context.GymCtx{}, errors.Wrap(err, "connecting to db")
	}

	ctx := context.GymCtx{
		Paths:   paths,
		Version: versionTag,
		DB:      db,
	}

	return ctx, nil
}

// Init initializes the gymsync environment and returns a new gymsync context
func Init(versionTag, dbPath string) (*context.GymCtx, error) {
	// a .env file next to the config may hold environment overrides; a missing
	// file is fine
	if err := godotenv.Load(filepath.Join(dirs.ConfigHome, consts.GymsyncDirName, ".env")); err != nil {
		log.Debug("no .env file loaded: %v\n", err)
	}

	ctx, err := newBaseCtx(versionTag, dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "initializing a context")
	}

	if err := initConfigFile(ctx); err != nil {
		return nil, errors.Wrap(err, "generating the config file")
	}

	if err := database.Migrate(ctx.DB); err != nil {
		return nil, errors.Wrap(err, "running migration")
	}

	ctx, err = setupCtx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "setting up the context")
	}

	return &ctx, nil
}

// setupCtx enriches the base context with values from the config file.
// This is called after files and database have been initialized.
func setupCtx(ctx context.GymCtx) (context.GymCtx, error) {
	cf, err := config.Read(ctx)
	if err != nil {
		return ctx, errors.Wrap(err, "reading config")
	}

	ret := context.GymCtx{
		Paths:           ctx.Paths,
		Version:         ctx.Version,
		DB:              ctx.DB,
		APIEndpoint:     cf.APIEndpoint,
		LedgerEndpoint:  cf.LedgerEndpoint,
		StorageEndpoint: cf.StorageEndpoint,
		Clock:           clock.New(),
		HTTPClient:      client.NewRateLimitedHTTPClient(),
	}

	return ret, nil
}

// initConfigFile populates a new config file if it does not exist yet
func initConfigFile(ctx context.GymCtx) error {
	path := config.GetPath(ctx)
	ok, err := utils.FileExists(path)
	if err != nil {
		return errors.Wrap(err, "checking if config exists")
	}
	if ok {
		return nil
	}

	cf := config.Config{
		APIEndpoint:     DefaultAPIEndpoint,
		LedgerEndpoint:  DefaultLedgerEndpoint,
		StorageEndpoint: DefaultStorageEndpoint,
	}

	if err := config.Write(ctx, cf); err != nil {
		return errors.Wrap(err, "writing config")
	}

	return nil
}
