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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gymsync/gymsync/pkg/assert"
	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/cli/context"
	"github.com/gymsync/gymsync/pkg/cli/database"
	"github.com/gymsync/gymsync/pkg/clock"
	"github.com/gymsync/gymsync/pkg/server/app"
	"go.uber.org/zap"
)

// newTestServer boots the full router and returns a CLI context pointed at it
func newTestServer(t *testing.T) (*httptest.Server, context.GymCtx, *app.App) {
	t.Helper()

	a := app.New(clock.NewMock(), zap.NewNop(), "")
	server := httptest.NewServer(NewRouter(a, New(a)))
	t.Cleanup(server.Close)

	// objects are served back under the test server's own address
	a.BaseURL = server.URL + "/api"

	ctx := context.GymCtx{
		APIEndpoint:     server.URL + "/api",
		LedgerEndpoint:  server.URL + "/api",
		StorageEndpoint: server.URL + "/api",
		Version:         "0.1.0-test",
	}

	return server, ctx, a
}

func TestMemberLifecycle(t *testing.T) {
	_, ctx, _ := newTestServer(t)

	created, err := client.CreateMember(ctx, database.Member{Name: "anita", Phone: "9876543210", LastUpdateDate: 100})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Fatal("expected an assigned id")
	}

	if err := client.SetMember(ctx, database.Member{ID: created.ID, Name: "anita k", LastUpdateDate: 200}); err != nil {
		t.Fatal(err)
	}

	got, err := client.QueryMembers(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, len(got), 1, "member count mismatch")
	assert.Equal(t, got[0].ID, created.ID, "id mismatch")
	assert.Equal(t, got[0].Name, "anita k", "name should reflect the overwrite")

	if err := client.DeleteMember(ctx, created.ID); err != nil {
		t.Fatal(err)
	}

	got, err = client.QueryMembers(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, len(got), 0, "member should be gone")
}

func TestQueryMembersAfterFilter(t *testing.T) {
	_, ctx, a := newTestServer(t)

	a.SetMember(database.Member{ID: "1", Name: "anita", LastUpdateDate: 100})
	a.SetMember(database.Member{ID: "2", Name: "vikram", LastUpdateDate: 200})
	a.SetMember(database.Member{ID: "3", Name: "meera", LastUpdateDate: 300})

	got, err := client.QueryMembers(ctx, 200)
	if err != nil {
		t.Fatal(err)
	}

	// the filter is a strict greater-than; the record at the watermark is excluded
	assert.Equal(t, len(got), 1, "member count mismatch")
	assert.Equal(t, got[0].ID, "3", "filtered member mismatch")

	got, err = client.QueryMembers(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, len(got), 3, "full query count mismatch")
	assert.Equal(t, got[0].ID, "3", "ordering should be newest first")
	assert.Equal(t, got[2].ID, "1", "ordering should be newest first")
}

func TestLedgerEndpoints(t *testing.T) {
	_, ctx, _ := newTestServer(t)

	resp, err := client.PushEntry(ctx, client.RevenueEntry{Name: "anita", Amount: 100, RevenueType: "income"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Key == "" {
		t.Fatal("expected a generated key")
	}

	resp2, err := client.PushEntry(ctx, client.RevenueEntry{Name: "repairs", Amount: -30, RevenueType: "expense"})
	if err != nil {
		t.Fatal(err)
	}
	assert.NotEqual(t, resp2.Key, resp.Key, "push keys should be unique")

	if err := client.SetTotal(ctx, 100); err != nil {
		t.Fatal(err)
	}

	total, err := client.GetTotal(ctx)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, total, int64(100), "total mismatch")

	entries, err := client.GetEntries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, len(entries), 2, "entry count mismatch")
	assert.Equal(t, entries[0].Name, "anita", "entry name mismatch")
}

func TestObjectEndpoints(t *testing.T) {
	server, ctx, a := newTestServer(t)

	url, err := client.UploadPhoto(ctx, strings.NewReader("jpeg bytes"))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(url, server.URL+"/api/v1/objects/member_images/") {
		t.Fatalf("unexpected object url %s", url)
	}

	key := strings.TrimPrefix(url, server.URL+"/api/v1/objects/")
	data, ok := a.GetObject(key)
	if !ok {
		t.Fatal("object should be stored")
	}
	assert.Equal(t, string(data), "jpeg bytes", "stored blob mismatch")
}
