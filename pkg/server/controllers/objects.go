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
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gymsync/gymsync/pkg/server/app"
)

// Objects serves the object storage endpoints
type Objects struct {
	app *app.App
}

type putObjectResp struct {
	URL string `json:"url"`
}

// Put stores the request body under the key in the path and returns the
// retrievable URL
func (c *Objects) Put(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "reading body", http.StatusBadRequest)
		return
	}

	url := c.app.PutObject(key, data)

	respondJSON(w, c.app, putObjectResp{URL: url})
}

// Get serves the blob stored under the key in the path
func (c *Objects) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	data, ok := c.app.GetObject(key)
	if !ok {
		http.Error(w, "object not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(data)
}
