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

// Package revenue maintains the append-only revenue ledger and its running
// total. The total is kept as a separate scalar in the realtime store; it is
// not derived by summing entries at read time, so concurrent appends can make
// it drift from the entry sum. That staleness is an accepted approximation.
package revenue

import (
	"reflect"
	"time"

	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/cli/fault"
	"github.com/gymsync/gymsync/pkg/cli/result"
)

// Remote is the realtime revenue store as seen by the ledger
type Remote interface {
	GetTotal() (int64, error)
	SetTotal(total int64) error
	PushEntry(entry client.RevenueEntry) (string, error)
	GetEntries() ([]client.RevenueEntry, error)
}

// Ledger provides access to the revenue ledger and its running total
type Ledger struct {
	remote Remote
	// interval between polls for the live-updating reads
	pollInterval time.Duration
}

// NewLedger returns a ledger backed by the given remote store
func NewLedger(remote Remote) *Ledger {
	return &Ledger{remote: remote, pollInterval: 2 * time.Second}
}

// Append pushes a new entry under the append-only path, then reads the
// current total, adds the entry's amount and writes the new total back.
// The read-modify-write is not transactional; concurrent appenders can lose
// updates.
func (l *Ledger) Append(entry client.RevenueEntry) error {
	if _, err := l.remote.PushEntry(entry); err != nil {
		return fault.Wrap(err, fault.KindRemoteWrite, "pushing revenue entry")
	}

	total, err := l.remote.GetTotal()
	if err != nil {
		return fault.Wrap(err, fault.KindRemoteWrite, "reading current total")
	}

	if err := l.remote.SetTotal(total + entry.Amount); err != nil {
		return fault.Wrap(err, fault.KindRemoteWrite, "writing new total")
	}

	return nil
}

// Total reads the running revenue total
func (l *Ledger) Total() (int64, error) {
	total, err := l.remote.GetTotal()
	if err != nil {
		return 0, fault.Wrap(err, fault.KindRemoteQuery, "reading total")
	}

	return total, nil
}

// Entries reads all ledger entries
func (l *Ledger) Entries() ([]client.RevenueEntry, error) {
	entries, err := l.remote.GetEntries()
	if err != nil {
		return nil, fault.Wrap(err, fault.KindRemoteQuery, "reading entries")
	}

	return entries, nil
}

// send delivers a result unless the watcher has been stopped. It returns
// false when the watcher should shut down.
func send[T any](ch chan result.Result[T], stop chan struct{}, r result.Result[T]) bool {
	select {
	case ch <- r:
		return true
	case <-stop:
		return false
	}
}

// TotalWatcher is a live-updating subscription to the running total
type TotalWatcher struct {
	// C receives a result whenever the total changes
	C    <-chan result.Result[int64]
	stop chan struct{}
}

// Stop unsubscribes the watcher. C is closed afterwards.
func (w *TotalWatcher) Stop() {
	close(w.stop)
}

// WatchTotal subscribes to the running total. The current value is emitted
// immediately, then again whenever it changes, until Stop is called.
func (l *Ledger) WatchTotal() *TotalWatcher {
	ch := make(chan result.Result[int64], 1)
	stop := make(chan struct{})

	go func() {
		defer close(ch)

		var last int64
		first := true

		ticker := time.NewTicker(l.pollInterval)
		defer ticker.Stop()

		for {
			total, err := l.remote.GetTotal()
			if err != nil {
				if !send(ch, stop, result.Error[int64](fault.Wrap(err, fault.KindRemoteQuery, "reading total"))) {
					return
				}
			} else if first || total != last {
				if !send(ch, stop, result.Success(total)) {
					return
				}
				last = total
				first = false
			}

			select {
			case <-stop:
				return
			case <-ticker.C:
			}
		}
	}()

	return &TotalWatcher{C: ch, stop: stop}
}

// EntriesWatcher is a live-updating subscription to the ledger entries
type EntriesWatcher struct {
	C    <-chan result.Result[[]client.RevenueEntry]
	stop chan struct{}
}

// Stop unsubscribes the watcher. C is closed afterwards.
func (w *EntriesWatcher) Stop() {
	close(w.stop)
}

// WatchEntries subscribes to the ledger entries. The current list is emitted
// immediately, then again whenever it changes, until Stop is called.
func (l *Ledger) WatchEntries() *EntriesWatcher {
	ch := make(chan result.Result[[]client.RevenueEntry], 1)
	stop := make(chan struct{})

	go func() {
		defer close(ch)

		var last []client.RevenueEntry
		first := true

		ticker := time.NewTicker(l.pollInterval)
		defer ticker.Stop()

		for {
			entries, err := l.remote.GetEntries()
			if err != nil {
				if !send(ch, stop, result.Error[[]client.RevenueEntry](fault.Wrap(err, fault.KindRemoteQuery, "reading entries"))) {
					return
				}
			} else if first || !reflect.DeepEqual(entries, last) {
				if !send(ch, stop, result.Success(entries)) {
					return
				}
				last = entries
				first = false
			}

			select {
			case <-stop:
				return
			case <-ticker.C:
			}
		}
	}()

	return &EntriesWatcher{C: ch, stop: stop}
}
