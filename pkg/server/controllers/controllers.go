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

// Package controllers provides the HTTP handlers of the dev server
package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gymsync/gymsync/pkg/server/app"
	"go.uber.org/zap"
)

// Controllers is a group of controllers
type Controllers struct {
	Members *Members
	Ledger  *Ledger
	Objects *Objects
	Health  *Health
}

// New returns a new group of controllers
func New(a *app.App) *Controllers {
	return &Controllers{
		Members: &Members{app: a},
		Ledger:  &Ledger{app: a},
		Objects: &Objects{app: a},
		Health:  &Health{},
	}
}

func respondJSON(w http.ResponseWriter, a *app.App, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.Logger.Error("encoding response", zap.Error(err))
	}
}

// Health serves the health check endpoint
type Health struct{}

// Index returns a 200 with no body
func (h *Health) Index(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
