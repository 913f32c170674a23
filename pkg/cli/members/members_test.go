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

package members

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gymsync/gymsync/pkg/assert"
	"github.com/gymsync/gymsync/pkg/cli/cache"
	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/cli/database"
	"github.com/gymsync/gymsync/pkg/cli/fault"
	"github.com/gymsync/gymsync/pkg/clock"
	"github.com/pkg/errors"
)

type fakeRemote struct {
	nextID    string
	created   []database.Member
	set       []database.Member
	deleted   []string
	uploads   int
	uploadURL string
	uploadErr error
	createErr error
	setErr    error
	deleteErr error
}

func (r *fakeRemote) CreateMember(m database.Member) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}

	r.created = append(r.created, m)
	return r.nextID, nil
}

func (r *fakeRemote) SetMember(m database.Member) error {
	if r.setErr != nil {
		return r.setErr
	}

	r.set = append(r.set, m)
	return nil
}

func (r *fakeRemote) DeleteMember(id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}

	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRemote) UploadPhoto(photo io.Reader) (string, error) {
	if r.uploadErr != nil {
		return "", r.uploadErr
	}

	r.uploads++
	return r.uploadURL, nil
}

type fakeLedger struct {
	entries []client.RevenueEntry
	err     error
}

func (l *fakeLedger) Append(entry client.RevenueEntry) error {
	if l.err != nil {
		return l.err
	}

	l.entries = append(l.entries, entry)
	return nil
}

func newTestCoordinator(t *testing.T, remote Remote, ledger Ledger) (*Coordinator, *cache.Cache, *clock.Mock) {
	t.Helper()

	c := cache.New(database.InitTestMemoryDB(t))
	cl := clock.NewMock()

	return NewCoordinator(remote, c, ledger, cl), c, cl
}

func validMember() database.Member {
	return database.Member{
		Name:              "anita",
		Phone:             "9876543210",
		AmountPaid:        500,
		SubscriptionStart: "01/01/2025",
		SubscriptionEnd:   "01/07/2025",
	}
}

func TestCreate(t *testing.T) {
	remote := &fakeRemote{nextID: "m1", uploadURL: "https://storage.example.com/member_images/a.jpg"}
	ledger := &fakeLedger{}
	co, c, cl := newTestCoordinator(t, remote, ledger)
	cl.SetNow(time.UnixMilli(4000))

	got, err := co.Create(validMember(), strings.NewReader("jpeg bytes"))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, got.ID, "m1", "returned member should carry the assigned id")
	assert.Equal(t, got.PhotoURL, remote.uploadURL, "photo url mismatch")
	assert.Equal(t, got.LastUpdateDate, int64(4000), "last update date should be stamped")

	// the first write has no id yet; the second stores the document with it
	assert.Equal(t, len(remote.created), 1, "create call count mismatch")
	assert.Equal(t, remote.created[0].ID, "", "first write should have no id")
	assert.Equal(t, len(remote.set), 1, "set call count mismatch")
	assert.Equal(t, remote.set[0].ID, "m1", "second write should carry the id")

	cached, err := c.GetMember("m1")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, cached.Name, "anita", "cached member mismatch")

	assert.Equal(t, len(ledger.entries), 1, "ledger entry count mismatch")
	assert.Equal(t, ledger.entries[0].Amount, int64(500), "ledger amount mismatch")
	assert.Equal(t, ledger.entries[0].RevenueType, "income", "ledger type mismatch")
}

func TestCreateWithoutPhoto(t *testing.T) {
	remote := &fakeRemote{nextID: "m1"}
	co, _, _ := newTestCoordinator(t, remote, &fakeLedger{})

	got, err := co.Create(validMember(), nil)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, remote.uploads, 0, "no upload should happen without a photo")
	assert.Equal(t, got.PhotoURL, "", "photo url should be empty")
}

func TestCreateInvalidMember(t *testing.T) {
	remote := &fakeRemote{nextID: "m1"}
	co, _, _ := newTestCoordinator(t, remote, &fakeLedger{})

	m := validMember()
	m.Name = ""

	_, err := co.Create(m, nil)
	if err == nil {
		t.Fatal("expected an error")
	}

	assert.Equal(t, fault.KindOf(err), fault.KindValidation, "error kind mismatch")
	assert.Equal(t, len(remote.created), 0, "no remote write should happen for an invalid member")
}

func TestCreateUploadFailureAborts(t *testing.T) {
	remote := &fakeRemote{nextID: "m1", uploadErr: errors.New("storage quota exceeded")}
	co, _, _ := newTestCoordinator(t, remote, &fakeLedger{})

	_, err := co.Create(validMember(), strings.NewReader("jpeg bytes"))
	if err == nil {
		t.Fatal("expected an error")
	}

	assert.Equal(t, fault.KindOf(err), fault.KindUpload, "error kind mismatch")
	assert.Equal(t, len(remote.created), 0, "document must not be written without its photo")
}

func TestCreateNoLedgerEntryForZeroAmount(t *testing.T) {
	remote := &fakeRemote{nextID: "m1"}
	ledger := &fakeLedger{}
	co, _, _ := newTestCoordinator(t, remote, ledger)

	m := validMember()
	m.AmountPaid = 0

	if _, err := co.Create(m, nil); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, len(ledger.entries), 0, "no entry should be recorded for a zero amount")
}

func TestCreateLedgerFailureIsNotFatal(t *testing.T) {
	remote := &fakeRemote{nextID: "m1"}
	ledger := &fakeLedger{err: errors.New("unavailable")}
	co, c, _ := newTestCoordinator(t, remote, ledger)

	got, err := co.Create(validMember(), nil)
	if err != nil {
		t.Fatal(err)
	}

	// the member exists remotely and locally even though the ledger write failed
	assert.Equal(t, got.ID, "m1", "member should have been created")
	if _, err := c.GetMember("m1"); err != nil {
		t.Fatal(err)
	}
}

func TestUpdate(t *testing.T) {
	remote := &fakeRemote{}
	co, c, cl := newTestCoordinator(t, remote, &fakeLedger{})

	m := validMember()
	m.ID = "m1"
	m.LastUpdateDate = 100
	if err := c.InsertMember(m); err != nil {
		t.Fatal(err)
	}

	cl.SetNow(time.UnixMilli(8000))

	m.Name = "anita k"
	got, err := co.Update(m)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, got.LastUpdateDate, int64(8000), "update should stamp a fresh last update date")
	assert.Equal(t, len(remote.set), 1, "set call count mismatch")
	assert.Equal(t, remote.set[0].LastUpdateDate, int64(8000), "remote write should carry the fresh date")

	cached, err := c.GetMember("m1")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, cached.Name, "anita k", "cached member should reflect the update")
}

func TestUpdateRemoteFailure(t *testing.T) {
	remote := &fakeRemote{setErr: errors.New("permission denied")}
	co, c, _ := newTestCoordinator(t, remote, &fakeLedger{})

	m := validMember()
	m.ID = "m1"
	m.LastUpdateDate = 100
	if err := c.InsertMember(m); err != nil {
		t.Fatal(err)
	}

	m.Name = "anita k"
	_, err := co.Update(m)
	if err == nil {
		t.Fatal("expected an error")
	}

	assert.Equal(t, fault.KindOf(err), fault.KindRemoteWrite, "error kind mismatch")

	// the cached copy must not run ahead of the remote
	cached, err := c.GetMember("m1")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, cached.Name, "anita", "cache should be untouched when the remote write fails")
}

func TestDelete(t *testing.T) {
	remote := &fakeRemote{}
	co, c, _ := newTestCoordinator(t, remote, &fakeLedger{})

	m := validMember()
	m.ID = "m1"
	if err := c.InsertMember(m); err != nil {
		t.Fatal(err)
	}

	if err := co.Delete("m1"); err != nil {
		t.Fatal(err)
	}

	assert.DeepEqual(t, remote.deleted, []string{"m1"}, "remote delete mismatch")

	all, err := c.GetAllMembers()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, len(all), 0, "cached member should be gone")
}

func TestDeleteRemoteFailure(t *testing.T) {
	remote := &fakeRemote{deleteErr: errors.New("unavailable")}
	co, c, _ := newTestCoordinator(t, remote, &fakeLedger{})

	m := validMember()
	m.ID = "m1"
	if err := c.InsertMember(m); err != nil {
		t.Fatal(err)
	}

	err := co.Delete("m1")
	if err == nil {
		t.Fatal("expected an error")
	}

	assert.Equal(t, fault.KindOf(err), fault.KindRemoteWrite, "error kind mismatch")

	all, err := c.GetAllMembers()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, len(all), 1, "cache should be untouched when the remote delete fails")
}

func TestDeleteAlreadyGoneRemotely(t *testing.T) {
	remote := &fakeRemote{deleteErr: &client.HTTPError{StatusCode: 404, Message: "member not found"}}
	co, c, _ := newTestCoordinator(t, remote, &fakeLedger{})

	m := validMember()
	m.ID = "m1"
	if err := c.InsertMember(m); err != nil {
		t.Fatal(err)
	}

	// a 404 means another device already deleted the member; the local
	// copy should still be dropped
	if err := co.Delete("m1"); err != nil {
		t.Fatal(err)
	}

	all, err := c.GetAllMembers()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, len(all), 0, "cached member should be gone")
}
