// Package cmd implements the CLI application to manage trip ledgers.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/fairsplit/tripledger"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&createCmd{},
	&ledgersCmd{},
	&addCmd{},
	&rmCmd{},
	&clearCmd{},
	&setCmd{},
	&groupCmd{},
	&rateCmd{},
	&summaryCmd{},
	&exportCmd{},
	&backupCmd{},
	&restoreCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var booksPath = flag.String("books", defaultBooksPath(), "Path to the books folder holding the ledger files")

func defaultBooksPath() string {
	if p := os.Getenv("TRIPLEDGER_BOOKS"); p != "" {
		return p
	}
	return "books"
}

// BooksPath returns the books folder the app operates on.
func BooksPath() string { return *booksPath }

// findLedger resolves a -l query against the books folder. An empty query
// resolves only when a single ledger is stored.
func findLedger(query string) (*tripledger.Ledger, error) {
	return tripledger.FindLedger(BooksPath(), query)
}

// saveLedger writes the ledger back and reports on stderr.
func saveLedger(l *tripledger.Ledger) subcommands.ExitStatus {
	if err := tripledger.SaveLedger(BooksPath(), l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", l.Name(), err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// document when the terminal renderer fails.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
