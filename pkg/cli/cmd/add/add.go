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

package add

import (
	"io"
	"os"

	"github.com/gymsync/gymsync/pkg/cli/cache"
	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/cli/context"
	"github.com/gymsync/gymsync/pkg/cli/database"
	"github.com/gymsync/gymsync/pkg/cli/fault"
	"github.com/gymsync/gymsync/pkg/cli/infra"
	"github.com/gymsync/gymsync/pkg/cli/log"
	"github.com/gymsync/gymsync/pkg/cli/members"
	"github.com/gymsync/gymsync/pkg/cli/output"
	"github.com/gymsync/gymsync/pkg/cli/revenue"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var phoneFlag string
var addressFlag string
var aadhaarFlag string
var startFlag string
var endFlag string
var amountFlag int64
var photoFlag string

var example = `
 * Register a member with a subscription
 gymsync add "Anita Kumar" -p 9876543210 --start 01/01/2025 --end 01/07/2025 --amount 500

 * Attach a photo
 gymsync add "Anita Kumar" -p 9876543210 --photo ./anita.jpg`

func preRun(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("Incorrect number of argument")
	}

	return nil
}

// NewCmd returns a new add command
func NewCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <name>",
		Short:   "Register a new member",
		Aliases: []string{"a", "new"},
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&phoneFlag, "phone", "p", "", "the member's phone number")
	f.StringVar(&addressFlag, "address", "", "the member's address")
	f.StringVar(&aadhaarFlag, "aadhaar", "", "the member's aadhaar number")
	f.StringVar(&startFlag, "start", "", "the subscription start date in DD/MM/YYYY")
	f.StringVar(&endFlag, "end", "", "the subscription end date in DD/MM/YYYY")
	f.Int64Var(&amountFlag, "amount", 0, "the amount paid")
	f.StringVar(&photoFlag, "photo", "", "the path to a photo file to upload")

	return cmd
}

func newRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		m := database.Member{
			Name:              args[0],
			Phone:             phoneFlag,
			Address:           addressFlag,
			AadhaarNumber:     aadhaarFlag,
			SubscriptionStart: startFlag,
			SubscriptionEnd:   endFlag,
			AmountPaid:        amountFlag,
		}

		remote := client.Remote{Ctx: ctx}
		co := members.NewCoordinator(remote, cache.New(ctx.DB), revenue.NewLedger(remote), ctx.Clock)

		var photo *os.File
		if photoFlag != "" {
			f, err := os.Open(photoFlag)
			if err != nil {
				return errors.Wrap(err, "opening the photo file")
			}
			defer f.Close()

			photo = f
		}

		created, err := co.Create(m, readerOrNil(photo))
		if err != nil {
			// validation messages already read well on their own
			if fault.Is(err, fault.KindValidation) {
				return err
			}

			return errors.Wrap(err, "registering the member")
		}

		log.Successf("added %s\n", created.Name)
		output.MemberInfo(created)

		return nil
	}
}

// readerOrNil avoids passing a typed nil *os.File as a non-nil io.Reader
func readerOrNil(f *os.File) io.Reader {
	if f == nil {
		return nil
	}

	return f
}
