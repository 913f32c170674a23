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

package validate

import (
	"testing"

	"github.com/gymsync/gymsync/pkg/assert"
	"github.com/gymsync/gymsync/pkg/cli/database"
)

func TestMember(t *testing.T) {
	valid := database.Member{
		Name:              "anita",
		Phone:             "9876543210",
		AmountPaid:        500,
		AadhaarNumber:     "123412341234",
		SubscriptionStart: "01/01/2025",
		SubscriptionEnd:   "01/07/2025",
	}

	testCases := []struct {
		name     string
		mutate   func(m *database.Member)
		expected error
	}{
		{
			name:     "valid member",
			mutate:   func(m *database.Member) {},
			expected: nil,
		},
		{
			name:     "empty name",
			mutate:   func(m *database.Member) { m.Name = "" },
			expected: ErrNameEmpty,
		},
		{
			name:     "phone too short",
			mutate:   func(m *database.Member) { m.Phone = "12345" },
			expected: ErrPhoneTooShort,
		},
		{
			name:     "phone with letters",
			mutate:   func(m *database.Member) { m.Phone = "98765abcde" },
			expected: ErrPhoneTooShort,
		},
		{
			name:     "negative amount",
			mutate:   func(m *database.Member) { m.AmountPaid = -1 },
			expected: ErrAmountNegative,
		},
		{
			name:     "aadhaar with letters",
			mutate:   func(m *database.Member) { m.AadhaarNumber = "1234x" },
			expected: ErrAadhaarInvalid,
		},
		{
			name:     "aadhaar optional",
			mutate:   func(m *database.Member) { m.AadhaarNumber = "" },
			expected: nil,
		},
		{
			name:     "malformed start date",
			mutate:   func(m *database.Member) { m.SubscriptionStart = "2025-01-01" },
			expected: ErrDateInvalid,
		},
		{
			name:     "end before start",
			mutate:   func(m *database.Member) { m.SubscriptionEnd = "31/12/2024" },
			expected: ErrEndBeforeStart,
		},
		{
			name: "dates optional together",
			mutate: func(m *database.Member) {
				m.SubscriptionStart = ""
				m.SubscriptionEnd = ""
			},
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := valid
			tc.mutate(&m)

			assert.Equal(t, Member(m), tc.expected, "validation result mismatch")
		})
	}
}
