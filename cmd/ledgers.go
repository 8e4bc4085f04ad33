package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"

	"github.com/fairsplit/tripledger"
)

type ledgersCmd struct{}

func (*ledgersCmd) Name() string           { return "ledgers" }
func (*ledgersCmd) Synopsis() string       { return "list the stored ledgers" }
func (*ledgersCmd) SetFlags(*flag.FlagSet) {}
func (*ledgersCmd) Usage() string {
	return `tl ledgers

  Lists every ledger stored in the books folder.
`
}

func (c *ledgersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	infos, err := tripledger.ListLedgers(BooksPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing ledgers: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(infos) == 0 {
		fmt.Printf("No ledgers in %q. Create one with 'tl create'.\n", BooksPath())
		return subcommands.ExitSuccess
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	table := md.TableSet{
		Header: []string{"Name", "Id", "Last updated"},
		Rows:   [][]string{},
	}
	for _, info := range infos {
		table.Rows = append(table.Rows, []string{
			info.Name,
			info.ID,
			time.UnixMilli(info.LastUpdated).Format("2006-01-02 15:04"),
		})
	}
	doc.Table(table)
	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}
