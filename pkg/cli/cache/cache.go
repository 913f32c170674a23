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

// Package cache is a typed wrapper over the local cache store. It holds the
// member records and the sync watermark, and is shared by the sync engine and
// the mutation coordinator. Both must mutate members through the upsert and
// delete primitives here so neither can leave a partially-applied record.
package cache

import (
	"github.com/gymsync/gymsync/pkg/cli/consts"
	"github.com/gymsync/gymsync/pkg/cli/database"
	"github.com/gymsync/gymsync/pkg/cli/fault"
	"github.com/pkg/errors"
)

// Cache provides typed access to the locally cached members and metadata
type Cache struct {
	db *database.DB
}

// New returns a cache backed by the given database
func New(db *database.DB) *Cache {
	return &Cache{db: db}
}

// GetAllMembers returns a snapshot of all cached members ordered by last
// update date, newest first. It reflects the store state at call time.
func (c *Cache) GetAllMembers() ([]database.Member, error) {
	ret, err := database.GetAllMembers(c.db)
	if err != nil {
		return nil, fault.Wrap(err, fault.KindCacheIO, "reading cached members")
	}

	return ret, nil
}

// GetMember returns the cached member with the given id
func (c *Cache) GetMember(id string) (database.Member, error) {
	m, err := database.GetMember(c.db, id)
	if err != nil {
		return m, fault.Wrap(err, fault.KindCacheIO, "reading cached member")
	}

	return m, nil
}

// InsertMember upserts a member keyed by id; last write wins
func (c *Cache) InsertMember(m database.Member) error {
	if err := m.Insert(c.db); err != nil {
		return fault.Wrap(err, fault.KindCacheIO, "caching member")
	}

	return nil
}

// InsertMembers upserts the given members in a single transaction
func (c *Cache) InsertMembers(ms []database.Member) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fault.Wrap(err, fault.KindCacheIO, "beginning a transaction")
	}

	for _, m := range ms {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO members
			(id, name, photo_url, subscription_start, subscription_end, amount_paid, aadhaar_number, address, phone, last_update_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.Name, m.PhotoURL, m.SubscriptionStart, m.SubscriptionEnd, m.AmountPaid, m.AadhaarNumber, m.Address, m.Phone, m.LastUpdateDate); err != nil {
			tx.Rollback()
			return fault.Wrap(errors.Wrapf(err, "caching member %s", m.ID), fault.KindCacheIO, "caching members")
		}
	}

	if err := tx.Commit(); err != nil {
		return fault.Wrap(err, fault.KindCacheIO, "committing cached members")
	}

	return nil
}

// UpdateMember upserts the member. A member whose id is not cached yet becomes
// an insert rather than a not-found error.
func (c *Cache) UpdateMember(m database.Member) error {
	return c.InsertMember(m)
}

// DeleteMember removes the member with the given id. Deleting a member that
// is not cached is a no-op.
func (c *Cache) DeleteMember(id string) error {
	if err := (database.Member{ID: id}).Expunge(c.db); err != nil {
		return fault.Wrap(err, fault.KindCacheIO, "deleting cached member")
	}

	return nil
}

// ReplaceAll atomically replaces the cached members with the given list.
// Members absent from the list are removed, which is how a full resync
// propagates hard deletes.
func (c *Cache) ReplaceAll(ms []database.Member) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fault.Wrap(err, fault.KindCacheIO, "beginning a transaction")
	}

	if _, err := tx.Exec("DELETE FROM members"); err != nil {
		tx.Rollback()
		return fault.Wrap(err, fault.KindCacheIO, "clearing cached members")
	}

	for _, m := range ms {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO members
			(id, name, photo_url, subscription_start, subscription_end, amount_paid, aadhaar_number, address, phone, last_update_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.Name, m.PhotoURL, m.SubscriptionStart, m.SubscriptionEnd, m.AmountPaid, m.AadhaarNumber, m.Address, m.Phone, m.LastUpdateDate); err != nil {
			tx.Rollback()
			return fault.Wrap(errors.Wrapf(err, "caching member %s", m.ID), fault.KindCacheIO, "replacing cached members")
		}
	}

	if err := tx.Commit(); err != nil {
		return fault.Wrap(err, fault.KindCacheIO, "committing replaced members")
	}

	return nil
}

// GetWatermark returns the last fetch time in epoch milliseconds. It returns
// 0 when no sync has completed yet.
func (c *Cache) GetWatermark() (int64, error) {
	var ret int64
	err := database.GetSystem(c.db, consts.SystemLastFetchTime, &ret)
	if err == database.ErrSystemKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, fault.Wrap(err, fault.KindCacheIO, "querying last fetch time")
	}

	return ret, nil
}

// SetWatermark persists the last fetch time in epoch milliseconds
func (c *Cache) SetWatermark(t int64) error {
	if err := database.UpdateSystem(c.db, consts.SystemLastFetchTime, t); err != nil {
		return fault.Wrap(err, fault.KindCacheIO, "updating last fetch time")
	}

	return nil
}
