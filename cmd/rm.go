package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	ledger string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an expense by id" }
func (*rmCmd) Usage() string {
	return `tl rm [-l <ledger>] <expense-id>...

  Deletes one or more expenses from the ledger.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to delete from. Defaults to the only ledger if one exists.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: rm takes at least one expense id\n")
		return subcommands.ExitUsageError
	}

	l, err := findLedger(c.ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, id := range f.Args() {
		if !l.RemoveExpense(id) {
			fmt.Fprintf(os.Stderr, "Error: no expense %q in ledger %q\n", id, l.Name())
			status = subcommands.ExitFailure
		}
	}

	if s := saveLedger(l); s != subcommands.ExitSuccess {
		return s
	}
	return status
}
