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

package revenue

import (
	"os"
	"os/signal"
	"strconv"

	"github.com/gymsync/gymsync/pkg/cli/client"
	"github.com/gymsync/gymsync/pkg/cli/context"
	"github.com/gymsync/gymsync/pkg/cli/fault"
	"github.com/gymsync/gymsync/pkg/cli/infra"
	"github.com/gymsync/gymsync/pkg/cli/log"
	"github.com/gymsync/gymsync/pkg/cli/output"
	"github.com/gymsync/gymsync/pkg/cli/revenue"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * Show the running total and all entries
  gymsync revenue

  * Keep watching the total until interrupted
  gymsync revenue --watch

  * Keep watching the entry list until interrupted
  gymsync revenue ls --watch

  * Record an income of 500
  gymsync revenue add "Anita Kumar" 500

  * Record an expense of 200
  gymsync revenue add "equipment repair" 200 --expense`

var watchFlag bool
var lsWatchFlag bool
var expenseFlag bool

// NewCmd returns a new revenue command
func NewCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "revenue",
		Short:   "Show the revenue ledger",
		Aliases: []string{"rev"},
		Example: example,
		RunE:    newRun(ctx),
	}

	cmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "keep watching the total for changes")

	addCmd := &cobra.Command{
		Use:   "add <name> <amount>",
		Short: "Record a revenue entry",
		Args:  cobra.ExactArgs(2),
		RunE:  newAddRun(ctx),
	}
	addCmd.Flags().BoolVar(&expenseFlag, "expense", false, "record the amount as an expense")

	totalCmd := &cobra.Command{
		Use:   "total",
		Short: "Show the running total",
		RunE:  newTotalRun(ctx),
	}

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List the ledger entries",
		RunE:  newLsRun(ctx),
	}
	lsCmd.Flags().BoolVarP(&lsWatchFlag, "watch", "w", false, "keep watching the entries for changes")

	cmd.AddCommand(addCmd)
	cmd.AddCommand(totalCmd)
	cmd.AddCommand(lsCmd)

	return cmd
}

func newTotalRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		ledger := revenue.NewLedger(client.Remote{Ctx: ctx})

		total, err := ledger.Total()
		if err != nil {
			return errors.Wrap(err, "reading the total")
		}

		output.RevenueTotal(total)
		return nil
	}
}

func newLsRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		ledger := revenue.NewLedger(client.Remote{Ctx: ctx})

		if lsWatchFlag {
			return watchEntries(ledger)
		}

		entries, err := ledger.Entries()
		if err != nil {
			return errors.Wrap(err, "reading entries")
		}

		output.RevenueEntries(entries)
		return nil
	}
}

func newRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		ledger := revenue.NewLedger(client.Remote{Ctx: ctx})

		if watchFlag {
			return watchTotal(ledger)
		}

		total, err := ledger.Total()
		if err != nil {
			return errors.Wrap(err, "reading the total")
		}
		output.RevenueTotal(total)

		entries, err := ledger.Entries()
		if err != nil {
			return errors.Wrap(err, "reading entries")
		}
		output.RevenueEntries(entries)

		return nil
	}
}

// watchTotal prints the total as it changes until the process is interrupted
func watchTotal(ledger *revenue.Ledger) error {
	w := ledger.WatchTotal()
	defer w.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	for {
		select {
		case r, ok := <-w.C:
			if !ok {
				return nil
			}
			if r.IsError() {
				log.Errorf("%s\n", r.Message)
				continue
			}
			output.RevenueTotal(r.Data)
		case <-interrupt:
			return nil
		}
	}
}

// watchEntries reprints the entry list as it changes until the process is
// interrupted
func watchEntries(ledger *revenue.Ledger) error {
	w := ledger.WatchEntries()
	defer w.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	for {
		select {
		case r, ok := <-w.C:
			if !ok {
				return nil
			}
			if r.IsError() {
				log.Errorf("%s\n", r.Message)
				continue
			}
			output.RevenueEntries(r.Data)
		case <-interrupt:
			return nil
		}
	}
}

func newAddRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return errors.Wrap(err, "parsing the amount")
		}
		if amount < 0 {
			return fault.New(fault.KindValidation, "The amount cannot be negative")
		}

		entry := client.RevenueEntry{Name: args[0], Amount: amount, RevenueType: "income"}
		if expenseFlag {
			entry.Amount = -amount
			entry.RevenueType = "expense"
		}

		ledger := revenue.NewLedger(client.Remote{Ctx: ctx})
		if err := ledger.Append(entry); err != nil {
			return errors.Wrap(err, "recording the entry")
		}

		total, err := ledger.Total()
		if err != nil {
			return errors.Wrap(err, "reading the total")
		}

		log.Successf("recorded %s\n", args[0])
		output.RevenueTotal(total)

		return nil
	}
}
