package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/fairsplit/tripledger"
)

// backupCmd holds the flags for the 'backup' subcommand.
type backupCmd struct {
	ledger string
	output string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "write a ledger as a portable JSON document" }
func (*backupCmd) Usage() string {
	return `tl backup [-l <ledger>] [-o <file>]

  Writes the ledger as a self-contained JSON document, the same shape
  'tl restore' reads. Without -o the document goes to stdout.
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to back up. Defaults to the only ledger if one exists.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := findLedger(c.ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		out = f
	}

	if err := tripledger.EncodeLedger(out, l); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger %q: %v\n", l.Name(), err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
