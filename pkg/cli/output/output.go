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

// Package output provides functions to print informations on the terminal
// in a consistent manner
package output

import (
	"time"

	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/cli/database"
	"github.com/gymsync/gymsync/pkg/cli/log"
)

// MemberInfo prints a member's full details
func MemberInfo(m database.Member) {
	log.Infof("id: %s\n", m.ID)
	log.Infof("name: %s\n", m.Name)
	log.Infof("phone: %s\n", m.Phone)
	if m.Address != "" {
		log.Infof("address: %s\n", m.Address)
	}
	if m.AadhaarNumber != "" {
		log.Infof("aadhaar: %s\n", m.AadhaarNumber)
	}
	if m.SubscriptionStart != "" {
		log.Infof("subscription: %s to %s\n", m.SubscriptionStart, m.SubscriptionEnd)
	}
	log.Infof("amount paid: %d\n", m.AmountPaid)
	if m.PhotoURL != "" {
		log.Infof("photo: %s\n", m.PhotoURL)
	}
	log.Infof("updated at: %s\n", time.UnixMilli(m.LastUpdateDate).Format("Jan 2, 2006 3:04pm (MST)"))
}

// MemberLine prints a one-line summary of a member
func MemberLine(m database.Member) {
	log.Plainf("%s  %s  %s\n", m.ID, m.Name, m.Phone)
}

// MemberList prints a one-line summary for each member
func MemberList(ms []database.Member) {
	if len(ms) == 0 {
		log.Plain("no members\n")
		return
	}

	for _, m := range ms {
		MemberLine(m)
	}
}

// RevenueTotal prints the running revenue total
func RevenueTotal(total int64) {
	log.Infof("total: %d\n", total)
}

// RevenueEntries prints the ledger entries
func RevenueEntries(entries []client.RevenueEntry) {
	for _, e := range entries {
		log.Plainf("%s  %d  %s\n", e.Name, e.Amount, e.RevenueType)
	}
}
