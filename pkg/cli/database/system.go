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

package database

import (
	"database/sql"

	"github.com/pkg/errors"
)

// ErrSystemKeyNotFound is an error for a missing key in the system table
var ErrSystemKeyNotFound = errors.New("system key not found")

// GetSystem scans the value under the given key in the system table into dest
func GetSystem(db *DB, key string, dest interface{}) error {
	err := db.QueryRow("SELECT value FROM system WHERE key = ?", key).Scan(dest)
	if err == sql.ErrNoRows {
		return ErrSystemKeyNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "querying system key %s", key)
	}

	return nil
}

// UpdateSystem upserts the value under the given key in the system table
func UpdateSystem(db *DB, key string, val interface{}) error {
	_, err := db.Exec("INSERT OR REPLACE INTO system (key, value) VALUES (?, ?)", key, val)
	if err != nil {
		return errors.Wrapf(err, "updating system key %s", key)
	}

	return nil
}
