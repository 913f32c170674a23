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

package fault

import (
	"testing"

	"github.com/gymsync/gymsync/pkg/assert"
	"github.com/pkg/errors"
)

func TestKindOf(t *testing.T) {
	err := Wrap(errors.New("disk full"), KindCacheIO, "inserting member")

	assert.Equal(t, KindOf(err), KindCacheIO, "kind mismatch")
	assert.Equal(t, KindOf(errors.New("plain")), KindUnknown, "plain error kind mismatch")
	assert.Equal(t, KindOf(nil), KindUnknown, "nil kind mismatch")
}

func TestKindOfWrapped(t *testing.T) {
	inner := Wrap(errors.New("409 conflict"), KindRemoteWrite, "setting member")
	outer := errors.Wrap(inner, "creating member")

	assert.Equal(t, KindOf(outer), KindRemoteWrite, "kind should survive pkg/errors wrapping")
	assert.Equal(t, Is(outer, KindRemoteWrite), true, "Is mismatch")
	assert.Equal(t, Is(outer, KindUpload), false, "Is mismatch for wrong kind")
}

func TestMessageVerbatim(t *testing.T) {
	cause := errors.New("Failed to fetch members: network unreachable")
	err := Wrap(cause, KindRemoteQuery, "querying members")

	assert.Equal(t, err.Error(), "querying members: Failed to fetch members: network unreachable", "cause message should be preserved verbatim")
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, KindCacheIO, "noop"); err != nil {
		t.Errorf("wrapping nil should return nil, got %v", err)
	}
}
