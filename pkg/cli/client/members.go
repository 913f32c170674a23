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
	"fmt"
	"net/url"
	"strconv"

	"github.com/gymsync/gymsync/pkg/cli/context"
	"github.com/gymsync/gymsync/pkg/cli/database"
	"github.com/pkg/errors"
)

// QueryMembersResp is the response from the member query endpoint
type QueryMembersResp struct {
	Members []database.Member `json:"members"`
}

// QueryMembers fetches members from the remote collection ordered by
// lastUpdateDate descending. When after is greater than 0, only members whose
// lastUpdateDate is strictly greater than it are returned; otherwise the full
// collection is returned.
func QueryMembers(ctx context.GymCtx, after int64) ([]database.Member, error) {
	path := "/v1/members"
	if after > 0 {
		v := url.Values{}
		v.Set("after", strconv.FormatInt(after, 10))
		path = fmt.Sprintf("%s?%s", path, v.Encode())
	}

	res, err := doReq(ctx, "GET", ctx.APIEndpoint, path, "")
	if err != nil {
		return nil, errors.Wrap(err, "making the request")
	}

	var resp QueryMembersResp
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, errors.Wrap(err, "decoding payload")
	}

	return resp.Members, nil
}

// CreateMemberResp is the response from the create member endpoint
type CreateMemberResp struct {
	ID string `json:"id"`
}

// CreateMember adds a member document to the remote collection. The server
// assigns and returns the document id; the id field of the given member is
// ignored.
func CreateMember(ctx context.GymCtx, m database.Member) (CreateMemberResp, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return CreateMemberResp{}, errors.Wrap(err, "marshaling payload")
	}

	res, err := doReq(ctx, "POST", ctx.APIEndpoint, "/v1/members", string(b))
	if err != nil {
		return CreateMemberResp{}, errors.Wrap(err, "posting a member to the server")
	}

	var resp CreateMemberResp
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return resp, errors.Wrap(err, "decoding payload")
	}

	return resp, nil
}

// SetMember overwrites the remote member document with the given member's id
func SetMember(ctx context.GymCtx, m database.Member) error {
	b, err := json.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "marshaling payload")
	}

	path := fmt.Sprintf("/v1/members/%s", m.ID)
	if _, err := doReq(ctx, "PUT", ctx.APIEndpoint, path, string(b)); err != nil {
		return errors.Wrap(err, "putting a member to the server")
	}

	return nil
}

// DeleteMember deletes the remote member document with the given id
func DeleteMember(ctx context.GymCtx, id string) error {
	path := fmt.Sprintf("/v1/members/%s", id)
	if _, err := doReq(ctx, "DELETE", ctx.APIEndpoint, path, ""); err != nil {
		return errors.Wrap(err, "deleting a member in the server")
	}

	return nil
}
