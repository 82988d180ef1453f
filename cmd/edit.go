package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	name     string
	supplier string
	quantity string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change the name, supplier or quantity of a product" }
func (*editCmd) Usage() string {
	return `inv edit [-n <name>] [-s <supplier>] [-q <quantity>] <id>

  Edits a product. Values not given as flags are asked interactively, an empty
  answer keeps the current value and end of input cancels the whole edit.

Usage Examples:
$ inv edit -q 25 PROD-001
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "New product name")
	f.StringVar(&c.supplier, "s", "", "New supplier")
	f.StringVar(&c.quantity, "q", "", "New quantity, an integer of at least 0")
}

// asker answers the edit questions with the flags, falling back to the terminal.
func (c *editCmd) asker(term *terminal) inventory.Asker {
	given := map[string]string{
		"New product name": c.name,
		"New supplier":     c.supplier,
		"New quantity":     c.quantity,
	}
	return inventory.AskFunc(func(ctx context.Context, question, current string) (string, bool) {
		if v := given[question]; v != "" {
			return v, true
		}
		return term.Ask(ctx, question, current)
	})
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one product id is expected")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)
	return withStore(ctx, true, func(store *inventory.Store) subcommands.ExitStatus {
		p, err := store.Edit(ctx, id, c.asker(newTerminal()))
		if err != nil {
			return fail("editing product", err)
		}
		fmt.Fprintf(stdout, "Product %s updated: supplier %s, %d units.\n", p.Label(), p.Supplier, p.Quantity)
		return subcommands.ExitSuccess
	})
}
