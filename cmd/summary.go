package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/fairsplit/tripledger"
	"github.com/fairsplit/tripledger/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	ledger string
	full   bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the allocation and settlement summary" }
func (*summaryCmd) Usage() string {
	return `tl summary [-l <ledger>] [-full]

  Displays who paid what, each group's fair share, and the transfers
  that settle the trip.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to report on. Defaults to the only ledger if one exists.")
	f.BoolVar(&c.full, "full", false, "Include the expense list.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := findLedger(c.ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := tripledger.NewReport(l)
	if c.full {
		printMarkdown(renderer.ReportMarkdown(report))
	} else {
		printMarkdown(renderer.SummaryMarkdown(report))
	}
	return subcommands.ExitSuccess
}
