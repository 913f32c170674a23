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

package edit

import (
	"github.com/gymsync/gymsync/pkg/cli/cache"
	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/cli/context"
	"github.com/gymsync/gymsync/pkg/cli/infra"
	"github.com/gymsync/gymsync/pkg/cli/log"
	"github.com/gymsync/gymsync/pkg/cli/members"
	"github.com/gymsync/gymsync/pkg/cli/output"
	"github.com/gymsync/gymsync/pkg/cli/revenue"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var nameFlag string
var phoneFlag string
var addressFlag string
var aadhaarFlag string
var startFlag string
var endFlag string
var amountFlag int64

var example = `
  * Change a member's phone number
  gymsync edit 5b3f2 -p 9876543210

  * Renew a subscription
  gymsync edit 5b3f2 --start 01/07/2025 --end 01/01/2026 --amount 500
`

func preRun(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("Incorrect number of argument")
	}

	return nil
}

// NewCmd returns a new edit command
func NewCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit <member id>",
		Short:   "Edit a member",
		Aliases: []string{"e"},
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&nameFlag, "name", "n", "", "a new name for the member")
	f.StringVarP(&phoneFlag, "phone", "p", "", "a new phone number")
	f.StringVar(&addressFlag, "address", "", "a new address")
	f.StringVar(&aadhaarFlag, "aadhaar", "", "a new aadhaar number")
	f.StringVar(&startFlag, "start", "", "a new subscription start date in DD/MM/YYYY")
	f.StringVar(&endFlag, "end", "", "a new subscription end date in DD/MM/YYYY")
	f.Int64Var(&amountFlag, "amount", -1, "a new amount paid")

	return cmd
}

func newRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		c := cache.New(ctx.DB)

		m, err := c.GetMember(args[0])
		if err != nil {
			return errors.Wrap(err, "finding the member")
		}

		if nameFlag != "" {
			m.Name = nameFlag
		}
		if phoneFlag != "" {
			m.Phone = phoneFlag
		}
		if addressFlag != "" {
			m.Address = addressFlag
		}
		if aadhaarFlag != "" {
			m.AadhaarNumber = aadhaarFlag
		}
		if startFlag != "" {
			m.SubscriptionStart = startFlag
		}
		if endFlag != "" {
			m.SubscriptionEnd = endFlag
		}
		if amountFlag >= 0 {
			m.AmountPaid = amountFlag
		}

		remote := client.Remote{Ctx: ctx}
		co := members.NewCoordinator(remote, c, revenue.NewLedger(remote), ctx.Clock)

		updated, err := co.Update(m)
		if err != nil {
			return errors.Wrap(err, "updating the member")
		}

		log.Successf("edited %s\n", updated.Name)
		output.MemberInfo(updated)

		return nil
	}
}
