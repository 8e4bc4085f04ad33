package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// setCmd holds the flags for the 'set' subcommand.
type setCmd struct {
	ledger      string
	name        string
	destination string
	currency    string
	base        string
	rate        string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "update ledger settings" }
func (*setCmd) Usage() string {
	return `tl set [-l <ledger>] [-name <name>] [-dest <label>] [-cur <code>] [-base <code>] [-rate <value>]

  Updates the ledger's name, destination label, currency codes or
  exchange rate. Flags left out keep their current value.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to update. Defaults to the only ledger if one exists.")
	f.StringVar(&c.name, "name", "", "New ledger name.")
	f.StringVar(&c.destination, "dest", "", "New destination display label.")
	f.StringVar(&c.currency, "cur", "", "New destination currency code.")
	f.StringVar(&c.base, "base", "", "New base currency code.")
	f.StringVar(&c.rate, "rate", "", "New exchange rate, destination units per base unit.")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := findLedger(c.ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.name != "" {
		l.SetName(c.name)
	}
	if c.destination != "" {
		l.SetDestination(c.destination)
	}
	l.SetCurrencies(c.currency, c.base)
	if c.rate != "" {
		rate, err := decimal.NewFromString(c.rate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing rate %q: %v\n", c.rate, err)
			return subcommands.ExitUsageError
		}
		if err := l.SetRate(rate); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	return saveLedger(l)
}
