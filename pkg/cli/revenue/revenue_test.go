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

package revenue

import (
	"sync"
	"testing"

	"github.com/gymsync/gymsync/pkg/assert"
	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/cli/fault"
	"github.com/pkg/errors"
)

// fakeRemote keeps the ledger state in memory. It is safe for concurrent use
// so the watcher tests can mutate it while a poll loop reads it.
type fakeRemote struct {
	mu       sync.Mutex
	total    int64
	entries  []client.RevenueEntry
	pushErr  error
	totalErr error
}

func (r *fakeRemote) GetTotal() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.totalErr != nil {
		return 0, r.totalErr
	}
	return r.total, nil
}

func (r *fakeRemote) SetTotal(total int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total = total
	return nil
}

func (r *fakeRemote) PushEntry(entry client.RevenueEntry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pushErr != nil {
		return "", r.pushErr
	}
	r.entries = append(r.entries, entry)
	return "k", nil
}

func (r *fakeRemote) GetEntries() ([]client.RevenueEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]client.RevenueEntry, len(r.entries))
	copy(entries, r.entries)
	return entries, nil
}

func (r *fakeRemote) storedTotal() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.total
}

func (r *fakeRemote) storedEntries() []client.RevenueEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.entries
}

func TestAppendMaintainsRunningTotal(t *testing.T) {
	remote := &fakeRemote{}
	l := NewLedger(remote)

	if err := l.Append(client.RevenueEntry{Name: "anita", Amount: 100, RevenueType: "income"}); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(client.RevenueEntry{Name: "repairs", Amount: -30, RevenueType: "expense"}); err != nil {
		t.Fatal(err)
	}

	// two sequential read-modify-writes from a zero total
	assert.Equal(t, remote.storedTotal(), int64(70), "running total mismatch")
	assert.Equal(t, len(remote.storedEntries()), 2, "entry count mismatch")
}

func TestAppendPushFailureLeavesTotalUntouched(t *testing.T) {
	remote := &fakeRemote{total: 500, pushErr: errors.New("permission denied")}
	l := NewLedger(remote)

	err := l.Append(client.RevenueEntry{Name: "anita", Amount: 100, RevenueType: "income"})
	if err == nil {
		t.Fatal("expected an error")
	}

	assert.Equal(t, fault.KindOf(err), fault.KindRemoteWrite, "error kind mismatch")
	assert.Equal(t, remote.storedTotal(), int64(500), "total should be untouched when the push fails")
}

func TestAppendTotalReadFailure(t *testing.T) {
	remote := &fakeRemote{totalErr: errors.New("unavailable")}
	l := NewLedger(remote)

	err := l.Append(client.RevenueEntry{Name: "anita", Amount: 100, RevenueType: "income"})
	if err == nil {
		t.Fatal("expected an error")
	}

	// the entry itself was pushed; only the total update failed
	assert.Equal(t, len(remote.storedEntries()), 1, "entry should have been pushed")
}
