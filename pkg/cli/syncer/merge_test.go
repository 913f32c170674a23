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

package syncer

import (
	"testing"

	"github.com/gymsync/gymsync/pkg/assert"
	"github.com/gymsync/gymsync/pkg/cli/database"
)

func TestMerge(t *testing.T) {
	cached := []database.Member{
		{ID: "1", LastUpdateDate: 100},
		{ID: "2", LastUpdateDate: 90},
	}
	fetched := []database.Member{
		{ID: "2", LastUpdateDate: 150},
		{ID: "3", LastUpdateDate: 140},
	}

	got := merge(cached, fetched)

	expected := []database.Member{
		{ID: "2", LastUpdateDate: 150},
		{ID: "3", LastUpdateDate: 140},
		{ID: "1", LastUpdateDate: 100},
	}
	assert.DeepEqual(t, got, expected, "merged result mismatch")
}

func TestMergeIdempotent(t *testing.T) {
	cached := []database.Member{
		{ID: "1", Name: "anita", LastUpdateDate: 100},
		{ID: "2", Name: "vikram", LastUpdateDate: 90},
	}
	fetched := []database.Member{
		{ID: "2", Name: "vikram s", LastUpdateDate: 150},
		{ID: "3", Name: "meera", LastUpdateDate: 140},
	}

	once := merge(cached, fetched)
	twice := merge(once, fetched)

	assert.DeepEqual(t, twice, once, "applying the same fetch result twice should not change the outcome")
}

func TestMergeOverwritesOnIDMatchRegardlessOfTimestamp(t *testing.T) {
	cached := []database.Member{
		{ID: "1", Name: "anita", LastUpdateDate: 200},
	}
	// equal timestamp still overwrites; match is by id, not by recency
	fetched := []database.Member{
		{ID: "1", Name: "anita sharma", LastUpdateDate: 200},
	}

	got := merge(cached, fetched)

	assert.Equal(t, len(got), 1, "merged length mismatch")
	assert.Equal(t, got[0].Name, "anita sharma", "fetched record should win on id match")
}

func TestMergeEmptyCache(t *testing.T) {
	fetched := []database.Member{
		{ID: "2", LastUpdateDate: 90},
		{ID: "1", LastUpdateDate: 100},
	}

	got := merge(nil, fetched)

	assert.Equal(t, len(got), 2, "merged length mismatch")
	assert.Equal(t, got[0].ID, "1", "merged result should be sorted newest first")
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	cached := []database.Member{
		{ID: "1", Name: "anita", LastUpdateDate: 100},
	}
	fetched := []database.Member{
		{ID: "1", Name: "changed", LastUpdateDate: 150},
	}

	merge(cached, fetched)

	assert.Equal(t, cached[0].Name, "anita", "cached input should not be mutated")
}
