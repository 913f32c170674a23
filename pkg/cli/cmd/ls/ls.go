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

package ls

import (
	"github.com/gymsync/gymsync/pkg/cli/cache"
	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/cli/context"
	"github.com/gymsync/gymsync/pkg/cli/database"
	"github.com/gymsync/gymsync/pkg/cli/infra"
	"github.com/gymsync/gymsync/pkg/cli/output"
	"github.com/gymsync/gymsync/pkg/cli/syncer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * List members from the local cache
  gymsync ls

  * Sync with the server first, showing cached members while the
    fetch is in flight
  gymsync ls --sync

  * Show a single member in detail
  gymsync ls 5b3f2
`

var syncFirst bool

// NewCmd returns a new ls command
func NewCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls [member id]",
		Aliases: []string{"l", "list"},
		Short:   "List members",
		Example: example,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVarP(&syncFirst, "sync", "s", false, "sync with the server before listing")

	return cmd
}

func newRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		c := cache.New(ctx.DB)

		if len(args) == 1 {
			m, err := c.GetMember(args[0])
			if err != nil {
				return errors.Wrap(err, "finding the member")
			}

			output.MemberInfo(m)
			return nil
		}

		if syncFirst {
			return runWithSync(ctx, c)
		}

		members, err := c.GetAllMembers()
		if err != nil {
			return errors.Wrap(err, "reading cached members")
		}

		output.MemberList(members)
		return nil
	}
}

// runWithSync lists members as they become available: the cached list first,
// then the reconciled list once the fetch lands
func runWithSync(ctx context.GymCtx, c *cache.Cache) error {
	engine := syncer.NewEngine(c, client.Remote{Ctx: ctx}, ctx.Clock)

	var members []database.Member
	for r := range engine.Stream() {
		if r.IsError() {
			return errors.New(r.Message)
		}
		if r.IsSuccess() {
			members = r.Data
		}
	}

	output.MemberList(members)
	return nil
}
