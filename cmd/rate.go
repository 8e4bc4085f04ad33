package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/fairsplit/tripledger"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct {
	ledger string
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "fetch and store the latest exchange rate" }
func (*rateCmd) Usage() string {
	return `tl rate [-l <ledger>]

  Fetches the latest destination-per-base exchange rate from the rate
  service and stores it in the ledger. Use 'tl set -rate' to set a rate
  manually.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to update. Defaults to the only ledger if one exists.")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := findLedger(c.ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rate, err := tripledger.FetchRate(l.BaseCurrency(), l.Currency())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := l.SetRate(rate); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Updated rate: 1 %s = %s %s\n", l.BaseCurrency(), rate, l.Currency())
	return subcommands.ExitSuccess
}
