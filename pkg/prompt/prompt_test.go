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

package prompt

import (
	"strings"
	"testing"

	"github.com/gymsync/gymsync/pkg/assert"
)

func TestFormatQuestion(t *testing.T) {
	assert.Equal(t, FormatQuestion("delete the member", false), "delete the member (y/N)", "pessimistic format mismatch")
	assert.Equal(t, FormatQuestion("delete the member", true), "delete the member (Y/n)", "optimistic format mismatch")
}

func TestReadYesNo(t *testing.T) {
	testCases := []struct {
		input      string
		optimistic bool
		expected   bool
	}{
		{input: "y\n", optimistic: false, expected: true},
		{input: "Y\n", optimistic: false, expected: true},
		{input: "n\n", optimistic: false, expected: false},
		{input: "\n", optimistic: false, expected: false},
		{input: "\n", optimistic: true, expected: true},
		{input: "n\n", optimistic: true, expected: false},
		{input: "maybe\n", optimistic: true, expected: false},
	}

	for _, tc := range testCases {
		got, err := ReadYesNo(strings.NewReader(tc.input), tc.optimistic)
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, got, tc.expected, "result mismatch for input "+strings.TrimSpace(tc.input))
	}
}
