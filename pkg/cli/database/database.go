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

// Package database provides access to the local SQLite cache of gymsync
package database

import (
	"database/sql"

	// sqlite3 driver for database/sql
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// DB is a database connection to the local cache
type DB struct {
	*sql.DB
}

// Open opens a database connection to the database at the given path
func Open(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrapf(err, "opening database at %s", dbPath)
	}

	// the cache is accessed by the sync engine and the mutation coordinator;
	// serialize writers at the connection level
	db.SetMaxOpenConns(1)

	return &DB{DB: db}, nil
}
