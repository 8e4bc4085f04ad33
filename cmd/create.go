package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/fairsplit/tripledger"
)

// createCmd holds the flags for the 'create' subcommand.
type createCmd struct {
	destination string
	currency    string
	base        string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new trip ledger" }
func (*createCmd) Usage() string {
	return `tl create [-dest <label>] [-cur <code>] [-base <code>] <name>

  Creates a new ledger with two default groups, ready for expense entry.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.destination, "dest", "", "Destination display label.")
	f.StringVar(&c.currency, "cur", tripledger.DefaultDestinationCurrency, "Destination currency code, expenses are recorded in it.")
	f.StringVar(&c.base, "base", tripledger.DefaultBaseCurrency, "Base currency code for secondary display.")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: create takes exactly one ledger name\n")
		return subcommands.ExitUsageError
	}

	l := tripledger.NewLedger(f.Arg(0))
	l.SetDestination(c.destination)
	l.SetCurrencies(c.currency, c.base)

	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Created ledger %q (%s)\n", l.Name(), l.ID())
	return subcommands.ExitSuccess
}
