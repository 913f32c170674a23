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
	"encoding/json"
	"strconv"

	"github.com/gymsync/gymsync/pkg/cli/context"
	"github.com/pkg/errors"
)

// RevenueEntry represents an entry in the append-only revenue ledger.
// Positive amounts are income, negative amounts are expenses.
type RevenueEntry struct {
	Name        string `json:"name"`
	Amount      int64  `json:"amount"`
	RevenueType string `json:"revenueType"`
}

type getTotalResp struct {
	Total int64 `json:"total"`
}

// GetTotal reads the running revenue total from the realtime store
func GetTotal(ctx context.GymCtx) (int64, error) {
	res, err := doReq(ctx, "GET", ctx.LedgerEndpoint, "/v1/ledger/total", "")
	if err != nil {
		return 0, errors.Wrap(err, "getting the total")
	}

	var resp getTotalResp
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return 0, errors.Wrap(err, "decoding payload")
	}

	return resp.Total, nil
}

// SetTotal writes the running revenue total to the realtime store
func SetTotal(ctx context.GymCtx, total int64) error {
	body := `{"total": ` + strconv.FormatInt(total, 10) + `}`
	if _, err := doReq(ctx, "PUT", ctx.LedgerEndpoint, "/v1/ledger/total", body); err != nil {
		return errors.Wrap(err, "setting the total")
	}

	return nil
}

// PushEntryResp is the response from the push entry endpoint
type PushEntryResp struct {
	Key string `json:"key"`
}

// PushEntry appends an entry under the revenue path. The server generates and
// returns a new unique key for the entry.
func PushEntry(ctx context.GymCtx, entry RevenueEntry) (PushEntryResp, error) {
	b, err := json.Marshal(entry)
	if err != nil {
		return PushEntryResp{}, errors.Wrap(err, "marshaling payload")
	}

	res, err := doReq(ctx, "POST", ctx.LedgerEndpoint, "/v1/ledger/entries", string(b))
	if err != nil {
		return PushEntryResp{}, errors.Wrap(err, "pushing an entry")
	}

	var resp PushEntryResp
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return resp, errors.Wrap(err, "decoding payload")
	}

	return resp, nil
}

type getEntriesResp struct {
	Entries []RevenueEntry `json:"entries"`
}

// GetEntries reads all ledger entries
func GetEntries(ctx context.GymCtx) ([]RevenueEntry, error) {
	res, err := doReq(ctx, "GET", ctx.LedgerEndpoint, "/v1/ledger/entries", "")
	if err != nil {
		return nil, errors.Wrap(err, "getting entries")
	}

	var resp getEntriesResp
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, errors.Wrap(err, "decoding payload")
	}

	return resp.Entries, nil
}
