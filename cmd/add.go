package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/fairsplit/tripledger"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	ledger      string
	date        string
	description string
	amount      string
	category    string
	payer       string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a shared expense" }
func (*addCmd) Usage() string {
	return `tl add -desc <text> -amount <value> -payer <group> [-d <date>] [-cat <category>] [-l <ledger>]

  Records an expense in the ledger's destination currency, paid by one of
  the participant groups.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to add to. Defaults to the only ledger if one exists.")
	f.StringVar(&c.date, "d", time.Now().Format("2006-01-02"), "Expense date (YYYY-MM-DD).")
	f.StringVar(&c.description, "desc", "", "What the expense was for.")
	f.StringVar(&c.amount, "amount", "", "Amount in the destination currency.")
	f.StringVar(&c.category, "cat", tripledger.Other.String(), "Category: accommodation, transport, food, entertainment, shopping or other.")
	f.StringVar(&c.payer, "payer", "", "Group that paid, by id or name.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := findLedger(c.ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	date, err := time.ParseInLocation("2006-01-02", c.date, time.Local)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	category, err := tripledger.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	e, err := l.AddExpense(tripledger.Expense{
		Date:        date.UnixMilli(),
		Description: c.description,
		Amount:      tripledger.M(amount, l.Currency()),
		Category:    category,
		PayerID:     resolveGroup(l, c.payer),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added expense %s: %s %s paid by %s\n", e.ID, e.Description, e.Amount, l.PayerName(e.PayerID))
	return subcommands.ExitSuccess
}

// resolveGroup accepts a group id or a group name. An unknown value passes
// through unchanged so validation reports it.
func resolveGroup(l *tripledger.Ledger, query string) string {
	for _, g := range l.Groups() {
		if g.ID == query || g.Name == query {
			return g.ID
		}
	}
	return query
}
