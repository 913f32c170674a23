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

// Package validate provides client-side validation, run before any remote call
package validate

import (
	"regexp"
	"time"

	"github.com/gymsync/gymsync/pkg/cli/consts"
	"github.com/gymsync/gymsync/pkg/cli/database"
	"github.com/pkg/errors"
)

// ErrNameEmpty is an error for an empty member name
var ErrNameEmpty = errors.New("The member name is empty")

// ErrPhoneTooShort is an error for a phone number with fewer than 10 digits
var ErrPhoneTooShort = errors.New("The phone number must have at least 10 digits")

// ErrAmountNegative is an error for a negative paid amount
var ErrAmountNegative = errors.New("The amount paid cannot be negative")

// ErrAadhaarInvalid is an error for an aadhaar number with non-digit characters
var ErrAadhaarInvalid = errors.New("The aadhaar number must contain only digits")

// ErrDateInvalid is an error for a subscription date not in DD/MM/YYYY form
var ErrDateInvalid = errors.New("The subscription dates must be in DD/MM/YYYY form")

// ErrEndBeforeStart is an error for a subscription that ends before it starts
var ErrEndBeforeStart = errors.New("The subscription end date is before the start date")

var regexDigits = regexp.MustCompile(`^\d+$`)

// Member validates a member before it is written to the remote collection
func Member(m database.Member) error {
	if m.Name == "" {
		return ErrNameEmpty
	}

	if len(m.Phone) < 10 || !regexDigits.MatchString(m.Phone) {
		return ErrPhoneTooShort
	}

	if m.AmountPaid < 0 {
		return ErrAmountNegative
	}

	if m.AadhaarNumber != "" && !regexDigits.MatchString(m.AadhaarNumber) {
		return ErrAadhaarInvalid
	}

	if m.SubscriptionStart != "" || m.SubscriptionEnd != "" {
		start, err := time.Parse(consts.DateLayout, m.SubscriptionStart)
		if err != nil {
			return ErrDateInvalid
		}

		end, err := time.Parse(consts.DateLayout, m.SubscriptionEnd)
		if err != nil {
			return ErrDateInvalid
		}

		if end.Before(start) {
			return ErrEndBeforeStart
		}
	}

	return nil
}
