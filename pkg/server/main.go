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

package main

import (
	"fmt"
	"net/http"

	"github.com/gymsync/gymsync/pkg/clock"
	"github.com/gymsync/gymsync/pkg/server/app"
	"github.com/gymsync/gymsync/pkg/server/config"
	"github.com/gymsync/gymsync/pkg/server/controllers"
	"github.com/gymsync/gymsync/pkg/server/log"
	"go.uber.org/zap"
)

func main() {
	logger, err := log.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(".env", logger)
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}

	a := app.New(clock.New(), logger, cfg.BaseURL)
	router := controllers.NewRouter(a, controllers.New(a))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("gymsync dev server listening", zap.String("addr", addr))

	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
