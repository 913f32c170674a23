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
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gymsync/gymsync/pkg/cli/database"
	"github.com/gymsync/gymsync/pkg/server/app"
)

// Members serves the member collection endpoints
type Members struct {
	app *app.App
}

type queryMembersResp struct {
	Members []database.Member `json:"members"`
}

// Index returns members changed strictly after the given watermark
func (c *Members) Index(w http.ResponseWriter, r *http.Request) {
	var after int64
	if v := r.URL.Query().Get("after"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid after parameter", http.StatusBadRequest)
			return
		}
		after = parsed
	}

	respondJSON(w, c.app, queryMembersResp{Members: c.app.QueryMembers(after)})
}

type createMemberResp struct {
	ID string `json:"id"`
}

// Create stores a new member document and returns the assigned id
func (c *Members) Create(w http.ResponseWriter, r *http.Request) {
	var m database.Member
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	id := c.app.CreateMember(m)

	respondJSON(w, c.app, createMemberResp{ID: id})
}

// Update overwrites the member document with the id in the path
func (c *Members) Update(w http.ResponseWriter, r *http.Request) {
	var m database.Member
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	m.ID = mux.Vars(r)["memberID"]
	c.app.SetMember(m)

	w.WriteHeader(http.StatusOK)
}

// Delete removes the member document with the id in the path
func (c *Members) Delete(w http.ResponseWriter, r *http.Request) {
	c.app.DeleteMember(mux.Vars(r)["memberID"])

	w.WriteHeader(http.StatusOK)
}
