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

package sync

import (
	"github.com/gymsync/gymsync/pkg/cli/cache"
	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/cli/context"
	"github.com/gymsync/gymsync/pkg/cli/infra"
	"github.com/gymsync/gymsync/pkg/cli/log"
	"github.com/gymsync/gymsync/pkg/cli/result"
	"github.com/gymsync/gymsync/pkg/cli/syncer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  gymsync sync

  * Replace the local cache with the full remote collection,
    removing members that were deleted remotely
  gymsync sync --full`

var isFullSync bool

// NewCmd returns a new sync command
func NewCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync",
		Aliases: []string{"s"},
		Short:   "Sync the member cache with the server",
		Example: example,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVarP(&isFullSync, "full", "f", false, "perform a full sync instead of incrementally syncing only the changed data.")

	return cmd
}

func newRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		c := cache.New(ctx.DB)
		engine := syncer.NewEngine(c, client.Remote{Ctx: ctx}, ctx.Clock)

		if isFullSync {
			members, err := engine.FullSync()
			if err != nil {
				return errors.Wrap(err, "performing a full sync")
			}

			log.Successf("full sync done. %d members in the cache\n", len(members))
			return nil
		}

		var count int
		for r := range engine.Stream() {
			switch r.State {
			case result.StateInProgress:
				log.Info("syncing...\n")
			case result.StateSuccess:
				count = len(r.Data)
			case result.StateError:
				return errors.New(r.Message)
			}
		}

		// keep the summary apart from the engine's debug output
		log.DebugNewline()
		log.Successf("sync done. %d members in the cache\n", count)

		return nil
	}
}
