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
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gymsync/gymsync/pkg/server/app"
	"go.uber.org/zap"
)

// Route represents a single route
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// NewAPIRoutes returns the api routes
func NewAPIRoutes(c *Controllers) []Route {
	return []Route{
		{"GET", "/v1/members", c.Members.Index},
		{"POST", "/v1/members", c.Members.Create},
		{"PUT", "/v1/members/{memberID}", c.Members.Update},
		{"DELETE", "/v1/members/{memberID}", c.Members.Delete},

		{"GET", "/v1/ledger/total", c.Ledger.GetTotal},
		{"PUT", "/v1/ledger/total", c.Ledger.SetTotal},
		{"POST", "/v1/ledger/entries", c.Ledger.PushEntry},
		{"GET", "/v1/ledger/entries", c.Ledger.GetEntries},

		{"PUT", `/v1/objects/{key:.+}`, c.Objects.Put},
		{"GET", `/v1/objects/{key:.+}`, c.Objects.Get},

		{"GET", "/health", c.Health.Index},
	}
}

// logMw logs each request with its duration
func logMw(a *app.App, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		a.Logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// NewRouter creates and returns a new router
func NewRouter(a *app.App, c *Controllers) http.Handler {
	router := mux.NewRouter().StrictSlash(true)

	apiRouter := router.PathPrefix("/api").Subrouter()
	for _, route := range NewAPIRoutes(c) {
		apiRouter.
			Handle(route.Pattern, route.Handler).
			Methods(route.Method)
	}

	return logMw(a, router)
}
