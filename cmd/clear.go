package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	ledger string
	force  bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "remove all expenses, keeping groups and settings" }
func (*clearCmd) Usage() string {
	return `tl clear -f [-l <ledger>]

  Removes every expense from the ledger. Groups, currencies and the
  exchange rate are kept.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to clear. Defaults to the only ledger if one exists.")
	f.BoolVar(&c.force, "f", false, "Confirm the deletion.")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := findLedger(c.ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !c.force {
		fmt.Fprintf(os.Stderr, "This would delete %d expenses from %q. Re-run with -f to confirm.\n", l.NumExpenses(), l.Name())
		return subcommands.ExitUsageError
	}

	n := l.NumExpenses()
	l.ClearExpenses()
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Cleared %d expenses from %q\n", n, l.Name())
	return subcommands.ExitSuccess
}
