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
	"io"
	"net/http"

	"github.com/gymsync/gymsync/pkg/cli/context"
	"github.com/gymsync/gymsync/pkg/cli/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// UploadPhotoResp is the response from the object storage upload endpoint
type UploadPhotoResp struct {
	URL string `json:"url"`
}

// UploadPhoto uploads a member photo to object storage under a generated
// object key and returns the retrievable URL.
func UploadPhoto(ctx context.GymCtx, r io.Reader) (string, error) {
	key := fmt.Sprintf("member_images/%s.jpg", uuid.NewString())

	url := fmt.Sprintf("%s/v1/objects/%s", ctx.StorageEndpoint, key)
	req, err := http.NewRequest("PUT", url, r)
	if err != nil {
		return "", errors.Wrap(err, "constructing http request")
	}
	req.Header.Set("CLI-Version", ctx.Version)
	req.Header.Set("Content-Type", "image/jpeg")

	log.Debug("HTTP PUT /v1/objects/%s\n", key)

	res, err := getHTTPClient(ctx).Do(req)
	if err != nil {
		return "", errors.Wrap(err, "making http request")
	}

	if err := checkRespErr(res); err != nil {
		return "", errors.Wrap(err, "server responded with an error")
	}

	var resp UploadPhotoResp
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return "", errors.Wrap(err, "decoding payload")
	}

	return resp.URL, nil
}
