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

// Package app holds the dev server state. Everything lives in memory; the
// server exists for development and tests, not for durable storage.
package app

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/cli/database"
	"github.com/gymsync/gymsync/pkg/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// App is the dev server application state
type App struct {
	Clock   clock.Clock
	Logger  *zap.Logger
	BaseURL string

	mu      sync.Mutex
	members map[string]database.Member
	total   int64
	keys    []string
	entries map[string]client.RevenueEntry
	objects map[string][]byte
}

// New returns an empty app
func New(cl clock.Clock, logger *zap.Logger, baseURL string) *App {
	return &App{
		Clock:   cl,
		Logger:  logger,
		BaseURL: baseURL,
		members: map[string]database.Member{},
		entries: map[string]client.RevenueEntry{},
		objects: map[string][]byte{},
	}
}

// CreateMember stores the member under a newly assigned id and returns the id
func (a *App) CreateMember(m database.Member) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := uuid.NewString()
	m.ID = id
	a.members[id] = m

	return id
}

// SetMember overwrites the member document with the given member's id
func (a *App) SetMember(m database.Member) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.members[m.ID] = m
}

// DeleteMember removes the member document. It is a no-op for an unknown id.
func (a *App) DeleteMember(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.members, id)
}

// QueryMembers returns members whose lastUpdateDate is strictly greater than
// after, ordered by lastUpdateDate descending. after == 0 returns everything.
func (a *App) QueryMembers(after int64) []database.Member {
	a.mu.Lock()
	defer a.mu.Unlock()

	ret := []database.Member{}
	for _, m := range a.members {
		if m.LastUpdateDate > after {
			ret = append(ret, m)
		}
	}

	sort.Slice(ret, func(i, j int) bool {
		return ret[i].LastUpdateDate > ret[j].LastUpdateDate
	})

	return ret
}

// GetTotal returns the running revenue total
func (a *App) GetTotal() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.total
}

// SetTotal overwrites the running revenue total
func (a *App) SetTotal(total int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.total = total
}

// PushEntry appends a ledger entry under a generated key and returns the key.
// Keys preserve insertion order.
func (a *App) PushEntry(entry client.RevenueEntry) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := fmt.Sprintf("-%s", uuid.NewString())
	a.keys = append(a.keys, key)
	a.entries[key] = entry

	return key
}

// GetEntries returns the ledger entries in insertion order
func (a *App) GetEntries() []client.RevenueEntry {
	a.mu.Lock()
	defer a.mu.Unlock()

	ret := []client.RevenueEntry{}
	for _, key := range a.keys {
		ret = append(ret, a.entries[key])
	}

	return ret
}

// PutObject stores a blob under the given key and returns its URL
func (a *App) PutObject(key string, data []byte) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.objects[key] = data

	return fmt.Sprintf("%s/v1/objects/%s", a.BaseURL, key)
}

// GetObject returns the blob stored under the given key
func (a *App) GetObject(key string) ([]byte, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	data, ok := a.objects[key]
	return data, ok
}
