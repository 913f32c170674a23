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

// Package context defines the gymsync runtime context
package context

import (
	"net/http"

	"github.com/gymsync/gymsync/pkg/cli/database"
	"github.com/gymsync/gymsync/pkg/clock"
)

// Paths contain directory definitions
type Paths struct {
	Home   string
	Config string
	Data   string
	Cache  string
}

// GymCtx is a context holding the information of the current runtime
type GymCtx struct {
	Paths Paths
	// APIEndpoint is the base URL of the remote member document collection
	APIEndpoint string
	// LedgerEndpoint is the base URL of the realtime revenue store
	LedgerEndpoint string
	// StorageEndpoint is the base URL of the object storage service
	StorageEndpoint string
	Version         string
	DB              *database.DB
	Clock           clock.Clock
	HTTPClient      *http.Client
}
