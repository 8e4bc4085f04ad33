package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/fairsplit/tripledger"
)

// restoreCmd holds the flags for the 'restore' subcommand.
type restoreCmd struct {
	input string
	fresh bool
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "load a ledger from a JSON backup" }
func (*restoreCmd) Usage() string {
	return `tl restore [-new] [<file>]

  Reads a JSON backup, documents from older versions of the app
  included, and stores it in the books folder. Without a file argument
  it reads stdin. A backup with the same id overwrites the stored
  ledger; use -new to import it as a fresh ledger instead.
`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.fresh, "new", false, "Assign a new id instead of overwriting the ledger with the backup's id.")
}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if f.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: restore takes at most one file argument\n")
		return subcommands.ExitUsageError
	}
	if f.NArg() == 1 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	l, err := tripledger.DecodeLedger(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding backup: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.fresh {
		l.SetID(tripledger.NewLedgerID())
	}

	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Restored ledger %q (%s) with %d expenses\n", l.Name(), l.ID(), l.NumExpenses())
	return subcommands.ExitSuccess
}
