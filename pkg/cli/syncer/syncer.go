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

// Package syncer reconciles the local member cache with the remote collection
// using the last fetch time watermark. It fetches incrementally, merges into
// the cached list, and falls back to the cache when the remote is unreachable.
package syncer

import (
	"sort"

	"github.com/gymsync/gymsync/pkg/cli/cache"
	"github.com/gymsync/gymsync/pkg/cli/database"
	"github.com/gymsync/gymsync/pkg/cli/fault"
	"github.com/gymsync/gymsync/pkg/cli/log"
	"github.com/gymsync/gymsync/pkg/cli/result"
	"github.com/gymsync/gymsync/pkg/clock"
)

// Remote is the remote member collection as seen by the sync engine
type Remote interface {
	// QueryMembers returns members whose lastUpdateDate is strictly greater
	// than after, ordered by lastUpdateDate descending. after == 0 returns the
	// full collection.
	QueryMembers(after int64) ([]database.Member, error)
}

// Engine orchestrates fetch from remote, merge with cache, and watermark
// advancement. Concurrent syncs are not serialized here; callers should drop
// a new sync request while one is in flight.
type Engine struct {
	cache  *cache.Cache
	remote Remote
	clock  clock.Clock
}

// NewEngine returns a sync engine with the given dependencies
func NewEngine(c *cache.Cache, r Remote, cl clock.Clock) *Engine {
	return &Engine{cache: c, remote: r, clock: cl}
}

// merge combines freshly fetched records into the cached list by id. A
// fetched record overwrites the cached record with the matching id in full,
// or is appended when there is no match. Equality is by id only; an incoming
// record overwrites even when its lastUpdateDate is not newer, because the
// watermark-filtered query guarantees newer-or-equal timestamps by
// construction. The merged list is sorted by lastUpdateDate descending.
func merge(cached, fetched []database.Member) []database.Member {
	merged := make([]database.Member, len(cached))
	copy(merged, cached)

	for _, f := range fetched {
		found := false
		for i := range merged {
			if merged[i].ID == f.ID {
				merged[i] = f
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, f)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].LastUpdateDate > merged[j].LastUpdateDate
	})

	return merged
}

// Stream performs one sync and emits its results in order: an in-progress
// marker, a provisional success with the cached list when the cache is
// non-empty, and a final outcome. The channel is closed when the sync
// completes. A remote failure after the cached list was emitted is logged
// and swallowed; it becomes the terminal error only when no cached data
// exists at all.
func (e *Engine) Stream() <-chan result.Result[[]database.Member] {
	out := make(chan result.Result[[]database.Member], 4)

	go func() {
		defer close(out)

		out <- result.InProgress[[]database.Member]()

		cached, err := e.cache.GetAllMembers()
		if err != nil {
			// treat as an empty cache; the remote fetch below can still
			// satisfy the caller
			log.Debug("reading cached members: %v\n", err)
			cached = nil
		}

		emitted := false
		if len(cached) > 0 {
			out <- result.Success(cached)
			emitted = true
		}

		lastFetchTime, err := e.cache.GetWatermark()
		if err != nil {
			if !emitted {
				out <- result.Error[[]database.Member](err)
			} else {
				log.Debug("reading watermark: %v\n", err)
			}
			return
		}

		// captured before any network call so that records committed remotely
		// during this sync window are not missed by the next one
		syncStart := e.clock.Now().UnixMilli()

		fetched, err := e.remote.QueryMembers(lastFetchTime)
		if err != nil {
			qerr := fault.Wrap(err, fault.KindRemoteQuery, "fetching members")
			if !emitted {
				out <- result.Error[[]database.Member](qerr)
			} else {
				log.Debug("remote query failed, cache already emitted: %v\n", qerr)
			}
			return
		}

		if len(fetched) == 0 {
			// the query succeeded; advancing the watermark is safe even with
			// nothing to merge because the remote filter is a strict >
			if err := e.cache.SetWatermark(syncStart); err != nil {
				log.Debug("advancing watermark: %v\n", err)
			}

			if !emitted {
				out <- result.Success([]database.Member{})
			}
			return
		}

		var final []database.Member
		if lastFetchTime > 0 {
			final = merge(cached, fetched)
		} else {
			final = merge(nil, fetched)
		}

		if err := e.cache.InsertMembers(final); err != nil {
			// the watermark is not advanced, so a retried sync re-fetches the
			// same window; the merge is idempotent by id
			if !emitted {
				out <- result.Error[[]database.Member](err)
			} else {
				log.Debug("persisting merged members: %v\n", err)
			}
			return
		}

		if err := e.cache.SetWatermark(syncStart); err != nil {
			log.Debug("advancing watermark: %v\n", err)
		}

		out <- result.Success(final)
	}()

	return out
}

// FullSync fetches the entire remote collection and replaces the cache with
// it. Unlike the incremental sync, this propagates hard deletes: members that
// no longer exist remotely are removed locally.
func (e *Engine) FullSync() ([]database.Member, error) {
	syncStart := e.clock.Now().UnixMilli()

	fetched, err := e.remote.QueryMembers(0)
	if err != nil {
		return nil, fault.Wrap(err, fault.KindRemoteQuery, "fetching members")
	}

	final := merge(nil, fetched)

	if err := e.cache.ReplaceAll(final); err != nil {
		return nil, err
	}
	if err := e.cache.SetWatermark(syncStart); err != nil {
		return nil, err
	}

	return final, nil
}
