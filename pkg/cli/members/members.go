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

// Package members coordinates member mutations across the remote collection,
// the local cache and the revenue ledger. The remote write is authoritative;
// failures past it are logged and left for the next sync to repair, so the
// overall flow is at-least-once with idempotent cache upserts.
package members

import (
	"io"

	"github.com/gymsync/gymsync/pkg/cli/cache"
	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/cli/database"
	"github.com/gymsync/gymsync/pkg/cli/fault"
	"github.com/gymsync/gymsync/pkg/cli/log"
	"github.com/gymsync/gymsync/pkg/cli/validate"
	"github.com/gymsync/gymsync/pkg/clock"
	"github.com/pkg/errors"
)

// Remote is the slice of the remote API that mutations need
type Remote interface {
	CreateMember(m database.Member) (string, error)
	SetMember(m database.Member) error
	DeleteMember(id string) error
	UploadPhoto(photo io.Reader) (string, error)
}

// Ledger records revenue movements that accompany member mutations
type Ledger interface {
	Append(entry client.RevenueEntry) error
}

// Coordinator runs member mutations in their required order
type Coordinator struct {
	remote Remote
	cache  *cache.Cache
	ledger Ledger
	clock  clock.Clock
}

// NewCoordinator returns a coordinator over the given collaborators
func NewCoordinator(remote Remote, c *cache.Cache, ledger Ledger, cl clock.Clock) *Coordinator {
	return &Coordinator{remote: remote, cache: c, ledger: ledger, clock: cl}
}

// Create registers a new member. The photo, when given, is uploaded first so
// the document never points at a missing object. The collection assigns the
// id on the first write; a second write stores the document again with the id
// attached, matching what every reader expects to find in the id field.
//
// Once the remote writes succeed the member exists. Cache and ledger failures
// after that point are logged, not returned.
func (co *Coordinator) Create(m database.Member, photo io.Reader) (database.Member, error) {
	if err := validate.Member(m); err != nil {
		return m, fault.Wrap(err, fault.KindValidation, "validating member")
	}

	if photo != nil {
		url, err := co.remote.UploadPhoto(photo)
		if err != nil {
			return m, fault.Wrap(err, fault.KindUpload, "uploading member photo")
		}

		m.PhotoURL = url
	}

	m.LastUpdateDate = co.clock.Now().UnixMilli()

	id, err := co.remote.CreateMember(m)
	if err != nil {
		return m, fault.Wrap(err, fault.KindRemoteWrite, "creating member")
	}

	m.ID = id
	if err := co.remote.SetMember(m); err != nil {
		return m, fault.Wrap(err, fault.KindRemoteWrite, "attaching member id")
	}

	if err := co.cache.InsertMember(m); err != nil {
		log.Debug("failed to cache member %s: %v\n", m.ID, err)
	}

	if m.AmountPaid > 0 {
		entry := client.RevenueEntry{Name: m.Name, Amount: m.AmountPaid, RevenueType: "income"}
		if err := co.ledger.Append(entry); err != nil {
			log.Debug("failed to record revenue for member %s: %v\n", m.ID, err)
		}
	}

	return m, nil
}

// Update overwrites the member document and stamps a fresh last update date so
// other devices pick the change up on their next incremental sync
func (co *Coordinator) Update(m database.Member) (database.Member, error) {
	if err := validate.Member(m); err != nil {
		return m, fault.Wrap(err, fault.KindValidation, "validating member")
	}

	m.LastUpdateDate = co.clock.Now().UnixMilli()

	if err := co.remote.SetMember(m); err != nil {
		return m, fault.Wrap(err, fault.KindRemoteWrite, "updating member")
	}

	if err := co.cache.UpdateMember(m); err != nil {
		log.Debug("failed to cache member %s: %v\n", m.ID, err)
	}

	return m, nil
}

// Delete removes the member document remotely and drops the cached copy.
// A 404 from the remote means the member is already gone, which is the
// outcome the caller wanted, so it is not an error. The remote delete is a
// hard delete; devices that only sync incrementally keep their stale copy
// until a full sync.
func (co *Coordinator) Delete(id string) error {
	if err := co.remote.DeleteMember(id); err != nil {
		var httpErr *client.HTTPError
		if !errors.As(err, &httpErr) || !httpErr.IsNotFound() {
			return fault.Wrap(err, fault.KindRemoteWrite, "deleting member")
		}

		log.Debug("member %s was already deleted remotely\n", id)
	}

	if err := co.cache.DeleteMember(id); err != nil {
		log.Debug("failed to drop cached member %s: %v\n", id, err)
	}

	return nil
}
