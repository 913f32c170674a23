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

package remove

import (
	"fmt"

	"github.com/gymsync/gymsync/pkg/cli/cache"
	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/cli/context"
	"github.com/gymsync/gymsync/pkg/cli/infra"
	"github.com/gymsync/gymsync/pkg/cli/log"
	"github.com/gymsync/gymsync/pkg/cli/members"
	"github.com/gymsync/gymsync/pkg/cli/revenue"
	"github.com/gymsync/gymsync/pkg/cli/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  gymsync remove 5b3f2`

var yesFlag bool

func preRun(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("Incorrect number of argument")
	}

	return nil
}

// NewCmd returns a new remove command
func NewCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <member id>",
		Short:   "Remove a member",
		Aliases: []string{"rm", "d", "delete"},
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVarP(&yesFlag, "yes", "y", false, "remove without confirmation")

	return cmd
}

func newRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		id := args[0]
		c := cache.New(ctx.DB)

		name := id
		if m, err := c.GetMember(id); err == nil {
			name = m.Name
		}

		if !yesFlag {
			ok, err := ui.Confirm(fmt.Sprintf("remove member %s?", name), false)
			if err != nil {
				return errors.Wrap(err, "getting confirmation")
			}
			if !ok {
				log.Warnf("aborted\n")
				return nil
			}
		}

		remote := client.Remote{Ctx: ctx}
		co := members.NewCoordinator(remote, c, revenue.NewLedger(remote), ctx.Clock)

		if err := co.Delete(id); err != nil {
			return errors.Wrap(err, "removing the member")
		}

		log.Successf("removed %s\n", name)

		return nil
	}
}
