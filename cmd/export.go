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

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	ledger string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the full trip report as markdown" }
func (*exportCmd) Usage() string {
	return `tl export [-l <ledger>] [-o <file>]

  Writes the full trip report, expense list included, as a markdown
  document. Without -o the document goes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to export. Defaults to the only ledger if one exists.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := findLedger(c.ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	doc := renderer.ReportMarkdown(tripledger.NewReport(l))

	if c.output == "" {
		fmt.Print(doc)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, []byte(doc), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report to %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %q to %s\n", l.Name(), c.output)
	return subcommands.ExitSuccess
}
