package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// groupCmd holds the flags for the 'group' subcommand.
type groupCmd struct {
	ledger string
	add    string
	rm     string
	rename string
	name   string
	count  int
}

func (*groupCmd) Name() string     { return "group" }
func (*groupCmd) Synopsis() string { return "manage the participant groups" }
func (*groupCmd) Usage() string {
	return `tl group [-l <ledger>] [-add <name> -n <count>] [-rm <group>] [-rename <group> -name <name>] [-n <count> <group>]

  Manages the participant groups of a ledger. Without flags it lists
  the groups. A ledger keeps between 2 and 5 groups.

Usage Examples:
# Add a third group of 3 people.
$ tl group -add "Family 3" -n 3

# Rename a group.
$ tl group -rename f1 -name "The Smiths"

# Change a group's headcount.
$ tl group -n 5 f2
`
}

func (c *groupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to update. Defaults to the only ledger if one exists.")
	f.StringVar(&c.add, "add", "", "Add a group with this name.")
	f.StringVar(&c.rm, "rm", "", "Remove this group, by id or name.")
	f.StringVar(&c.rename, "rename", "", "Rename this group, by id or name.")
	f.StringVar(&c.name, "name", "", "New name, with -rename.")
	f.IntVar(&c.count, "n", 0, "Headcount, with -add or a group argument.")
}

func (c *groupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := findLedger(c.ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add != "":
		g, err := l.AddGroup(c.add, c.count)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added group %q (%s) with %d people\n", g.Name, g.ID, g.Count)

	case c.rm != "":
		if err := l.RemoveGroup(resolveGroup(l, c.rm)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}

	case c.rename != "":
		if err := l.RenameGroup(resolveGroup(l, c.rename), c.name); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}

	case f.NArg() == 1:
		if err := l.SetGroupCount(resolveGroup(l, f.Arg(0)), c.count); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}

	default:
		for _, g := range l.Groups() {
			fmt.Printf("%s  %q  %d people\n", g.ID, g.Name, g.Count)
		}
		return subcommands.ExitSuccess
	}

	return saveLedger(l)
}
