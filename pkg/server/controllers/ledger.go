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

package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/server/app"
)

// Ledger serves the realtime revenue store endpoints
type Ledger struct {
	app *app.App
}

type totalPayload struct {
	Total int64 `json:"total"`
}

// GetTotal returns the running revenue total
func (c *Ledger) GetTotal(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, c.app, totalPayload{Total: c.app.GetTotal()})
}

// SetTotal overwrites the running revenue total
func (c *Ledger) SetTotal(w http.ResponseWriter, r *http.Request) {
	var payload totalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	c.app.SetTotal(payload.Total)

	w.WriteHeader(http.StatusOK)
}

type pushEntryResp struct {
	Key string `json:"key"`
}

// PushEntry appends a ledger entry and returns its generated key
func (c *Ledger) PushEntry(w http.ResponseWriter, r *http.Request) {
	var entry client.RevenueEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	key := c.app.PushEntry(entry)

	respondJSON(w, c.app, pushEntryResp{Key: key})
}

type getEntriesResp struct {
	Entries []client.RevenueEntry `json:"entries"`
}

// GetEntries returns all ledger entries in insertion order
func (c *Ledger) GetEntries(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, c.app, getEntriesResp{Entries: c.app.GetEntries()})
}
