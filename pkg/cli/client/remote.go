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

package client

import (
	"io"

	"github.com/gymsync/gymsync/pkg/cli/context"
	"github.com/gymsync/gymsync/pkg/cli/database"
)

// Remote binds the client operations to a runtime context. It satisfies the
// remote interfaces that the sync engine, the mutation coordinator, and the
// revenue ledger accept by injection.
type Remote struct {
	Ctx context.GymCtx
}

// QueryMembers fetches members changed strictly after the given watermark
func (r Remote) QueryMembers(after int64) ([]database.Member, error) {
	return QueryMembers(r.Ctx, after)
}

// CreateMember adds a member document and returns the server-assigned id
func (r Remote) CreateMember(m database.Member) (string, error) {
	resp, err := CreateMember(r.Ctx, m)
	if err != nil {
		return "", err
	}

	return resp.ID, nil
}

// SetMember overwrites the remote member document by id
func (r Remote) SetMember(m database.Member) error {
	return SetMember(r.Ctx, m)
}

// DeleteMember deletes the remote member document by id
func (r Remote) DeleteMember(id string) error {
	return DeleteMember(r.Ctx, id)
}

// GetTotal reads the running revenue total
func (r Remote) GetTotal() (int64, error) {
	return GetTotal(r.Ctx)
}

// SetTotal writes the running revenue total
func (r Remote) SetTotal(total int64) error {
	return SetTotal(r.Ctx, total)
}

// PushEntry appends a ledger entry and returns its generated key
func (r Remote) PushEntry(entry RevenueEntry) (string, error) {
	resp, err := PushEntry(r.Ctx, entry)
	if err != nil {
		return "", err
	}

	return resp.Key, nil
}

// GetEntries reads all ledger entries
func (r Remote) GetEntries() ([]RevenueEntry, error) {
	return GetEntries(r.Ctx)
}

// UploadPhoto uploads a member photo and returns its URL
func (r Remote) UploadPhoto(photo io.Reader) (string, error) {
	return UploadPhoto(r.Ctx, photo)
}
