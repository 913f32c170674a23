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
	"github.com/pkg/errors"
)

// Member represents a gym member. The JSON field names match the remote
// document fields one to one.
type Member struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	PhotoURL          string `json:"photoUrl"`
	SubscriptionStart string `json:"subscriptionStart"`
	SubscriptionEnd   string `json:"subscriptionEnd"`
	AmountPaid        int64  `json:"amountPaid"`
	AadhaarNumber     string `json:"aadhaarNumber"`
	Address           string `json:"address"`
	Phone             string `json:"phone"`
	// LastUpdateDate is set by the writer at every create and update, in epoch
	// milliseconds. It is the sole field used for incremental sync and merge
	// ordering.
	LastUpdateDate int64 `json:"lastUpdateDate"`
}

const memberColumns = "id, name, photo_url, subscription_start, subscription_end, amount_paid, aadhaar_number, address, phone, last_update_date"

// Insert upserts the member. A member with a matching id is overwritten in
// full; last write wins.
func (m Member) Insert(db *DB) error {
	_, err := db.Exec("INSERT OR REPLACE INTO members ("+memberColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		m.ID, m.Name, m.PhotoURL, m.SubscriptionStart, m.SubscriptionEnd, m.AmountPaid, m.AadhaarNumber, m.Address, m.Phone, m.LastUpdateDate)

	if err != nil {
		return errors.Wrapf(err, "inserting member with id %s", m.ID)
	}

	return nil
}

// Expunge hard-deletes the member from the database. It is a no-op if no
// member has the given id.
func (m Member) Expunge(db *DB) error {
	_, err := db.Exec("DELETE FROM members WHERE id = ?", m.ID)
	if err != nil {
		return errors.Wrapf(err, "expunging member with id %s", m.ID)
	}

	return nil
}

func scanMember(s interface {
	Scan(dest ...interface{}) error
}) (Member, error) {
	var m Member
	err := s.Scan(&m.ID, &m.Name, &m.PhotoURL, &m.SubscriptionStart, &m.SubscriptionEnd,
		&m.AmountPaid, &m.AadhaarNumber, &m.Address, &m.Phone, &m.LastUpdateDate)

	return m, err
}

// GetAllMembers returns all members ordered by last update date, newest first
func GetAllMembers(db *DB) ([]Member, error) {
	rows, err := db.Query("SELECT " + memberColumns + " FROM members ORDER BY last_update_date DESC")
	if err != nil {
		return nil, errors.Wrap(err, "querying members")
	}
	defer rows.Close()

	var ret []Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning a row for member")
		}

		ret = append(ret, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating member rows")
	}

	return ret, nil
}

// GetMember returns the member with the given id
func GetMember(db *DB, id string) (Member, error) {
	row := db.QueryRow("SELECT "+memberColumns+" FROM members WHERE id = ?", id)

	m, err := scanMember(row)
	if err != nil {
		return m, errors.Wrapf(err, "getting member with id %s", id)
	}

	return m, nil
}
